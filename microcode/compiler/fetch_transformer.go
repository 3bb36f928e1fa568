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

// FetchTransformer prepends the shared fetch preamble to every instruction
// variant. Every existing step's stage is shifted up by one to make room,
// then a copy of the preamble's steps is placed at stage 0.
type FetchTransformer struct{}

func (FetchTransformer) Run(instructionSet *ir.InstructionSet) {
	if len(instructionSet.FetchPreamble) == 0 {
		return
	}
	for i := range instructionSet.Instructions {
		instruction := &instructionSet.Instructions[i]
		for j := range instruction.Variants {
			variant := &instruction.Variants[j]
			for k := range variant.Steps {
				variant.Steps[k].Stage++
			}
			preamble := make([]ir.Step, len(instructionSet.FetchPreamble))
			copy(preamble, instructionSet.FetchPreamble)
			variant.Steps = append(preamble, variant.Steps...)
		}
	}
}
