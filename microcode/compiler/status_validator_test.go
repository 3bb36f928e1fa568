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

package compiler_test

import (
	"testing"

	"github.com/davecarr1024/irata2/errors"
	"github.com/davecarr1024/irata2/microcode/compiler"
	"github.com/davecarr1024/irata2/microcode/encoder"
	"github.com/davecarr1024/irata2/microcode/ir"
	"github.com/davecarr1024/irata2/microcode/program"
)

func newTestStatusValidator() compiler.StatusValidator {
	return compiler.NewStatusValidator(encoder.NewStatusEncoder([]program.StatusBitDefinition{{Name: "zero", Bit: 0}}))
}

func TestStatusValidator_SingleUnconditionalVariantIsExempt(t *testing.T) {
	set := &ir.InstructionSet{
		Instructions: []ir.Instruction{{Opcode: 0x01, Variants: []ir.InstructionVariant{{}}}},
	}
	newTestStatusValidator().Run(set)
}

func TestStatusValidator_CompleteCoveragePasses(t *testing.T) {
	set := &ir.InstructionSet{
		Instructions: []ir.Instruction{{
			Opcode: 0x01,
			Variants: []ir.InstructionVariant{
				{StatusConditions: map[string]bool{"zero": true}},
				{StatusConditions: map[string]bool{"zero": false}},
			},
		}},
	}
	newTestStatusValidator().Run(set)
}

func TestStatusValidator_OverlappingCoveragePanics(t *testing.T) {
	set := &ir.InstructionSet{
		Instructions: []ir.Instruction{{
			Opcode:   0x01,
			Variants: []ir.InstructionVariant{{}, {}},
		}},
	}
	expectMicrocodePanic(t, errors.StatusCoverageOverlap, func() {
		newTestStatusValidator().Run(set)
	})
}

func TestStatusValidator_IncompleteCoveragePanics(t *testing.T) {
	set := &ir.InstructionSet{
		Instructions: []ir.Instruction{{
			Opcode:   0x01,
			Variants: []ir.InstructionVariant{{StatusConditions: map[string]bool{"zero": true}}},
		}},
	}
	expectMicrocodePanic(t, errors.StatusCoverageIncomplete, func() {
		newTestStatusValidator().Run(set)
	})
}

func TestStatusValidator_MultipleStatusBitsInOneVariantPanics(t *testing.T) {
	enc := encoder.NewStatusEncoder([]program.StatusBitDefinition{{Name: "zero", Bit: 0}, {Name: "carry", Bit: 1}})
	v := compiler.NewStatusValidator(enc)
	set := &ir.InstructionSet{
		Instructions: []ir.Instruction{{
			Opcode: 0x01,
			Variants: []ir.InstructionVariant{
				{StatusConditions: map[string]bool{"zero": true, "carry": true}},
				{StatusConditions: map[string]bool{"zero": false}},
			},
		}},
	}
	expectMicrocodePanic(t, errors.MicrocodeError, func() {
		v.Run(set)
	})
}
