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

// StageValidator checks that a step sequence's stages start at 0, never
// decrease, and never skip a value.
type StageValidator struct{}

func (StageValidator) Run(instructionSet *ir.InstructionSet) {
	validateStages(instructionSet.FetchPreamble, -1)
	for _, instruction := range instructionSet.Instructions {
		for _, variant := range instruction.Variants {
			validateStages(variant.Steps, int(instruction.Opcode))
		}
	}
}

func validateStages(steps []ir.Step, opcode int) {
	if len(steps) == 0 {
		return
	}
	if steps[0].Stage != 0 {
		panic(errors.Errorf(errors.StageNotZero, opcode, steps[0].Stage))
	}
	prev := -1
	seen := map[int]bool{}
	for _, step := range steps {
		if step.Stage < prev {
			panic(errors.Errorf(errors.StageNonMonotonic, opcode))
		}
		prev = step.Stage
		seen[step.Stage] = true
	}
	for expected := 0; expected < len(seen); expected++ {
		if !seen[expected] {
			panic(errors.Errorf(errors.StageGap, opcode))
		}
	}
}
