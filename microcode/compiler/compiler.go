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
	"github.com/davecarr1024/irata2/microcode/program"
)

// Compiler turns hand-authored microcode IR into a compiled program.Program,
// running a fixed pipeline of transforms, validators and optimizers:
// fetch-preamble transform and check, sequencing transform, a full
// validation pass, then three optimizers each followed by a full
// revalidation, and finally encoding.
type Compiler struct {
	controlEncoder       encoder.ControlEncoder
	statusEncoder        encoder.StatusEncoder
	fetchTransformer     FetchTransformer
	fetchValidator       FetchValidator
	sequenceTransformer  SequenceTransformer
	busValidator         BusValidator
	conflictValidator    ControlConflictValidator
	stageValidator       StageValidator
	statusValidator      StatusValidator
	isaCoverageValidator ISACoverageValidator
	sequenceValidator    SequenceValidator
	emptyStepOptimizer   EmptyStepOptimizer
	duplicateOptimizer   DuplicateStepOptimizer
	mergingOptimizer     StepMergingOptimizer
}

// New builds a Compiler. controlPaths is every control path in the CPU's
// tree, statusBits is the status register's bit layout, expectedOpcodes is
// the full set of opcodes the compiled program must implement, and
// incrementControl/resetControl are the step counter's controls.
func New(
	controlPaths []string,
	statusBits []program.StatusBitDefinition,
	expectedOpcodes []byte,
	incrementControl, resetControl ir.ControlInfo,
) Compiler {
	statusEncoder := encoder.NewStatusEncoder(statusBits)
	return Compiler{
		controlEncoder:       encoder.NewControlEncoder(controlPaths),
		statusEncoder:        statusEncoder,
		sequenceTransformer:  NewSequenceTransformer(incrementControl, resetControl),
		statusValidator:      NewStatusValidator(statusEncoder),
		isaCoverageValidator: NewISACoverageValidator(expectedOpcodes),
		sequenceValidator:    NewSequenceValidator(incrementControl, resetControl),
	}
}

func (c Compiler) runAllValidators(instructionSet *ir.InstructionSet) {
	c.busValidator.Run(instructionSet)
	c.conflictValidator.Run(instructionSet)
	c.stageValidator.Run(instructionSet)
	c.statusValidator.Run(instructionSet)
	c.isaCoverageValidator.Run(instructionSet)
	c.sequenceValidator.Run(instructionSet)
}

// Compile runs the full pipeline over instructionSet and returns the
// compiled program. instructionSet is consumed by value so the caller's
// copy is left untouched by the in-place transforms.
func (c Compiler) Compile(instructionSet ir.InstructionSet) program.Program {
	c.fetchTransformer.Run(&instructionSet)
	c.fetchValidator.Run(&instructionSet)
	c.sequenceTransformer.Run(&instructionSet)

	c.runAllValidators(&instructionSet)

	c.emptyStepOptimizer.Run(&instructionSet)
	c.runAllValidators(&instructionSet)

	c.duplicateOptimizer.Run(&instructionSet)
	c.runAllValidators(&instructionSet)

	c.mergingOptimizer.Run(&instructionSet)
	c.runAllValidators(&instructionSet)

	return c.encode(&instructionSet)
}

func (c Compiler) encode(instructionSet *ir.InstructionSet) program.Program {
	prog := program.Program{
		Table:        map[uint32]uint64{},
		ControlPaths: c.controlEncoder.ControlPaths(),
		StatusBits:   c.statusEncoder.Bits(),
	}

	for _, instruction := range instructionSet.Instructions {
		for _, variant := range instruction.Variants {
			statuses := c.statusEncoder.ExpandPartial(variant.StatusConditions)
			for stepIndex, step := range variant.Steps {
				if stepIndex > 0xFF {
					panic(errors.Errorf(errors.StepCountOverflow, instruction.Opcode))
				}
				controlWord := c.controlEncoder.Encode(step.Controls)
				for _, status := range statuses {
					key := program.Key{Opcode: instruction.Opcode, Step: uint8(stepIndex), Status: status}
					encoded := key.Encode()
					if existing, ok := prog.Table[encoded]; ok && existing != controlWord {
						panic(errors.Errorf(errors.DuplicateTableEntry, key.Opcode, key.Step, key.Status))
					}
					prog.Table[encoded] = controlWord
				}
			}
		}
	}

	return prog
}
