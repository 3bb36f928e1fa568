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

import "github.com/davecarr1024/irata2/microcode/ir"

// EmptyStepOptimizer drops steps that assert no controls at all.
type EmptyStepOptimizer struct{}

func (EmptyStepOptimizer) Run(instructionSet *ir.InstructionSet) {
	instructionSet.FetchPreamble = dropEmpty(instructionSet.FetchPreamble)
	for i := range instructionSet.Instructions {
		instruction := &instructionSet.Instructions[i]
		for j := range instruction.Variants {
			instruction.Variants[j].Steps = dropEmpty(instruction.Variants[j].Steps)
		}
	}
}

func dropEmpty(steps []ir.Step) []ir.Step {
	nonEmpty := make([]ir.Step, 0, len(steps))
	for _, step := range steps {
		if len(step.Controls) != 0 {
			nonEmpty = append(nonEmpty, step)
		}
	}
	return nonEmpty
}
