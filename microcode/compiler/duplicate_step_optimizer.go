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

// DuplicateStepOptimizer collapses consecutive identical steps into one.
type DuplicateStepOptimizer struct{}

func (DuplicateStepOptimizer) Run(instructionSet *ir.InstructionSet) {
	instructionSet.FetchPreamble = dedupeSteps(instructionSet.FetchPreamble)
	for i := range instructionSet.Instructions {
		instruction := &instructionSet.Instructions[i]
		for j := range instruction.Variants {
			instruction.Variants[j].Steps = dedupeSteps(instruction.Variants[j].Steps)
		}
	}
}

func dedupeSteps(steps []ir.Step) []ir.Step {
	if len(steps) == 0 {
		return steps
	}
	deduped := make([]ir.Step, 0, len(steps))
	deduped = append(deduped, steps[0])
	for i := 1; i < len(steps); i++ {
		if !stepsEqual(deduped[len(deduped)-1], steps[i]) {
			deduped = append(deduped, steps[i])
		}
	}
	return deduped
}
