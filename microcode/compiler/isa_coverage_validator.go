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

// ISACoverageValidator checks that the instruction set defines microcode for
// every opcode it is expected to, and no others. ExpectedOpcodes is supplied
// by the caller rather than read from a bundled ISA table, so this package
// has no dependency on any particular instruction set's data.
type ISACoverageValidator struct {
	ExpectedOpcodes []byte
}

func NewISACoverageValidator(expectedOpcodes []byte) ISACoverageValidator {
	return ISACoverageValidator{ExpectedOpcodes: expectedOpcodes}
}

func (v ISACoverageValidator) Run(instructionSet *ir.InstructionSet) {
	expected := map[byte]bool{}
	for _, opcode := range v.ExpectedOpcodes {
		expected[opcode] = true
	}

	seen := map[byte]bool{}
	for _, instruction := range instructionSet.Instructions {
		if !expected[instruction.Opcode] {
			panic(errors.Errorf(errors.UnknownISAOpcode, instruction.Opcode))
		}
		if seen[instruction.Opcode] {
			panic(errors.Errorf(errors.DuplicateISAOpcode, instruction.Opcode))
		}
		seen[instruction.Opcode] = true
	}

	for opcode := range expected {
		if !seen[opcode] {
			panic(errors.Errorf(errors.MissingISAOpcode, opcode))
		}
	}
}
