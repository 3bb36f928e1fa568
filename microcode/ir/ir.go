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

// Package ir is the microcode intermediate representation: the uncompiled,
// hand- or generator-authored description of what each instruction does,
// before the compiler's validators and optimizers turn it into a dense
// lookup table. An InstructionSet is a fetch preamble shared by every
// instruction plus a list of per-opcode Instructions; each Instruction can
// have several status-conditioned Variants (e.g. branch-taken vs.
// branch-not-taken), each a sequence of Steps; each Step names the controls
// to assert at a given stage.
package ir

import "github.com/davecarr1024/irata2/base"

// ControlInfo is everything the compiler needs to know about a control
// signal without holding a live reference to it: its bound phase, whether
// it auto-resets, and its stable dotted path.
type ControlInfo struct {
	Phase     base.TickPhase
	AutoReset bool
	Path      string
}

// Step is one stage of an instruction variant: the set of controls
// asserted together.
type Step struct {
	Stage    int
	Controls []ControlInfo
}

// InstructionVariant is one status-conditioned execution path for an
// opcode. StatusConditions maps a status bit name to the value it must have
// for this variant to apply; an empty map means the variant is
// unconditional. At most one status bit may be named.
type InstructionVariant struct {
	StatusConditions map[string]bool
	Steps            []Step
}

// Instruction is the full microcode definition for one opcode: one or more
// status-conditioned variants, together expected to cover every possible
// status combination exactly once.
type Instruction struct {
	Opcode   byte
	Variants []InstructionVariant
}

// InstructionSet is the complete microcode program source: a fetch
// preamble run before every instruction's own steps, plus the per-opcode
// instruction table.
type InstructionSet struct {
	FetchPreamble []Step
	Instructions  []Instruction
}
