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

// SequenceTransformer appends the step counter's reset control to every
// variant's last step and its increment control to every other step, so the
// step counter automatically advances through a variant and rewinds to zero
// once it completes.
type SequenceTransformer struct {
	IncrementControl ir.ControlInfo
	ResetControl     ir.ControlInfo
}

func NewSequenceTransformer(incrementControl, resetControl ir.ControlInfo) SequenceTransformer {
	return SequenceTransformer{IncrementControl: incrementControl, ResetControl: resetControl}
}

func (t SequenceTransformer) Run(instructionSet *ir.InstructionSet) {
	for i := range instructionSet.Instructions {
		instruction := &instructionSet.Instructions[i]
		for j := range instruction.Variants {
			variant := &instruction.Variants[j]
			if len(variant.Steps) == 0 {
				continue
			}
			last := len(variant.Steps) - 1
			for k := range variant.Steps {
				step := &variant.Steps[k]
				want := t.IncrementControl
				if k == last {
					want = t.ResetControl
				}
				if !hasControl(step.Controls, want.Path) {
					step.Controls = append(step.Controls, want)
				}
			}
		}
	}
}
