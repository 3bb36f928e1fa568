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
	"github.com/davecarr1024/irata2/errors"
	"github.com/davecarr1024/irata2/microcode/ir"
)

// ControlConflictValidator rejects steps that assert contradictory controls
// on the same component: read and write, set and clear, or increment and
// decrement together. Multiple ALU opcode-bit controls in one step are not a
// conflict -- the opcode is binary encoded, not one-hot.
type ControlConflictValidator struct{}

func (ControlConflictValidator) Run(instructionSet *ir.InstructionSet) {
	validateConflictStep(instructionSet.FetchPreamble, -1)
	for _, instruction := range instructionSet.Instructions {
		for _, variant := range instruction.Variants {
			validateConflictStep(variant.Steps, int(instruction.Opcode))
		}
	}
}

func validateConflictStep(steps []ir.Step, opcode int) {
	for i, step := range steps {
		ops := map[string]map[string]bool{}
		for _, control := range step.Controls {
			component := componentPath(control.Path)
			op := operation(control.Path)
			if ops[component] == nil {
				ops[component] = map[string]bool{}
			}
			ops[component][op] = true
		}
		for component, seen := range ops {
			if seen["read"] && seen["write"] {
				panic(errors.Errorf(errors.ControlConflict, opcode, i, "read+write on "+component))
			}
			if seen["set"] && seen["clear"] {
				panic(errors.Errorf(errors.ControlConflict, opcode, i, "set+clear on "+component))
			}
			if seen["increment"] && seen["decrement"] {
				panic(errors.Errorf(errors.ControlConflict, opcode, i, "increment+decrement on "+component))
			}
		}
	}
}
