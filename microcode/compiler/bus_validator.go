// This file is part of IRATA2.
//
// IRATA2 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// IRATA2 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with IRATA2.  If not, see <https://www.gnu.org/licenses/>.

package compiler

import (
	"strings"

	"github.com/davecarr1024/irata2/errors"
	"github.com/davecarr1024/irata2/microcode/ir"
)

// busKind identifies which shared bus a control path's component is wired
// to, or busNone for controls (status sets, resets, opcode bits) that don't
// touch a bus at all.
type busKind int

const (
	busNone busKind = iota
	busAddress
	busData
)

// busOp classifies a control's effect on its bus: reading from it, writing
// to it, or neither.
type busOp int

const (
	opNone busOp = iota
	opRead
	opWrite
)

// classifyBus maps a control path to the bus it touches, mirroring the
// component-name based classification the CPU's construction fixes: pc and
// tmp sit on the address bus, a/x/alu/status/controller sit on the data
// bus, and memory is split by whether it's the MAR's byte ports or offset
// register (data bus, since they move a single byte) or anything else on
// MAR/memory (address bus for whole-word MAR operations, data bus for
// memory.read/write).
func classifyBus(path string) busKind {
	component := componentPath(path)
	first := component
	if i := strings.IndexByte(component, '.'); i >= 0 {
		first = component[:i]
	}
	switch first {
	case "pc", "tmp":
		return busAddress
	case "a", "x", "alu", "status", "controller":
		return busData
	case "memory":
		if strings.Contains(path, "mar") {
			if strings.Contains(path, "mar.low") || strings.Contains(path, "mar.high") || strings.Contains(path, "mar.offset") {
				return busData
			}
			return busAddress
		}
		return busData
	default:
		return busNone
	}
}

func classifyOp(path string) busOp {
	switch {
	case strings.Contains(path, ".read"):
		return opRead
	case strings.Contains(path, ".write"):
		return opWrite
	default:
		return opNone
	}
}

// BusValidator enforces, per step, that at most one control writes to a
// given bus and that any control reading from a bus has a writer on that
// same bus in the same step.
type BusValidator struct{}

func (BusValidator) Run(instructionSet *ir.InstructionSet) {
	validateBusSteps(instructionSet.FetchPreamble, -1)
	for _, instruction := range instructionSet.Instructions {
		for _, variant := range instruction.Variants {
			validateBusSteps(variant.Steps, int(instruction.Opcode))
		}
	}
}

func validateBusSteps(steps []ir.Step, opcode int) {
	for i, step := range steps {
		writers := map[busKind]int{}
		readers := map[busKind]bool{}
		for _, control := range step.Controls {
			kind := classifyBus(control.Path)
			if kind == busNone {
				continue
			}
			switch classifyOp(control.Path) {
			case opWrite:
				writers[kind]++
			case opRead:
				readers[kind] = true
			}
		}
		for kind, count := range writers {
			if count > 1 {
				panic(errors.Errorf(errors.BusConflict, opcode, i,
					"multiple writers on "+busName(kind)))
			}
		}
		for kind := range readers {
			if writers[kind] == 0 {
				panic(errors.Errorf(errors.BusConflict, opcode, i,
					"reader without writer on "+busName(kind)))
			}
		}
	}
}

func busName(kind busKind) string {
	switch kind {
	case busAddress:
		return "address bus"
	case busData:
		return "data bus"
	default:
		return "no bus"
	}
}
