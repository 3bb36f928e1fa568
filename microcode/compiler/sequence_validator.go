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

// SequenceValidator checks that SequenceTransformer's output held: every
// non-final step carries the increment control, and the final step carries
// the reset control.
type SequenceValidator struct {
	IncrementControl ir.ControlInfo
	ResetControl     ir.ControlInfo
}

func NewSequenceValidator(incrementControl, resetControl ir.ControlInfo) SequenceValidator {
	return SequenceValidator{IncrementControl: incrementControl, ResetControl: resetControl}
}

func (v SequenceValidator) Run(instructionSet *ir.InstructionSet) {
	for _, instruction := range instructionSet.Instructions {
		for _, variant := range instruction.Variants {
			if len(variant.Steps) == 0 {
				continue
			}
			last := len(variant.Steps) - 1
			for i, step := range variant.Steps {
				expected := v.IncrementControl
				if i == last {
					expected = v.ResetControl
				}
				if !hasControl(step.Controls, expected.Path) {
					panic(errors.Errorf(errors.MissingSequenceControl, instruction.Opcode, i, expected.Path))
				}
			}
		}
	}
}
