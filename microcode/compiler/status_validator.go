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
	"github.com/davecarr1024/irata2/microcode/encoder"
	"github.com/davecarr1024/irata2/microcode/ir"
)

// StatusValidator checks that an instruction's variants, taken together,
// cover every possible status byte value exactly once: no overlaps, no
// gaps. A single unconditional variant (or no variants at all) is exempt.
type StatusValidator struct {
	StatusEncoder encoder.StatusEncoder
}

func NewStatusValidator(statusEncoder encoder.StatusEncoder) StatusValidator {
	return StatusValidator{StatusEncoder: statusEncoder}
}

func (v StatusValidator) Run(instructionSet *ir.InstructionSet) {
	totalStatuses := 1 << len(v.StatusEncoder.Bits())

	for _, instruction := range instructionSet.Instructions {
		if len(instruction.Variants) == 0 {
			continue
		}
		if len(instruction.Variants) == 1 && len(instruction.Variants[0].StatusConditions) == 0 {
			continue
		}

		covered := map[uint8]bool{}
		for _, variant := range instruction.Variants {
			if len(variant.StatusConditions) > 1 {
				panic(errors.Errorf(errors.MicrocodeError,
					"opcode %#02x: variant specifies multiple status bits", instruction.Opcode))
			}
			for _, status := range v.StatusEncoder.ExpandPartial(variant.StatusConditions) {
				if covered[status] {
					panic(errors.Errorf(errors.StatusCoverageOverlap, instruction.Opcode, status))
				}
				covered[status] = true
			}
		}

		if len(covered) != totalStatuses {
			panic(errors.Errorf(errors.StatusCoverageIncomplete, instruction.Opcode, len(covered), totalStatuses))
		}
	}
}
