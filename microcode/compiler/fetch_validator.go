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

// FetchValidator checks that FetchTransformer did its job: every variant's
// stage-0 steps must equal the fetch preamble exactly, step for step.
type FetchValidator struct{}

func (FetchValidator) Run(instructionSet *ir.InstructionSet) {
	if len(instructionSet.FetchPreamble) == 0 {
		return
	}
	preamble := instructionSet.FetchPreamble
	for _, instruction := range instructionSet.Instructions {
		for _, variant := range instruction.Variants {
			var stageZero []ir.Step
			for _, step := range variant.Steps {
				if step.Stage == 0 {
					stageZero = append(stageZero, step)
				}
			}
			if len(stageZero) != len(preamble) {
				panic(errors.Errorf(errors.MicrocodeError,
					"opcode %#02x: fetch preamble mismatch: expected %d stage-0 steps, got %d",
					instruction.Opcode, len(preamble), len(stageZero)))
			}
			for i := range preamble {
				if !stepsEqual(stageZero[i], preamble[i]) {
					panic(errors.Errorf(errors.MicrocodeError,
						"opcode %#02x: fetch preamble mismatch at step %d",
						instruction.Opcode, i))
				}
			}
		}
	}
}
