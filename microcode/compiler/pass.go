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

// Package compiler turns a hand-authored ir.InstructionSet into a validated,
// optimized form ready for encoding: fetch-preamble transforms, sequencing
// transforms, a battery of validators, and a chain of optimizers, run in a
// fixed order by Compiler.Compile.
package compiler

import "github.com/davecarr1024/irata2/microcode/ir"

// Pass is a single transformation or validation step over an instruction
// set. Transformers mutate instructionSet in place; validators leave it
// unchanged and panic via errors.Errorf with one of the errors package's
// "microcode error" templates on violation.
type Pass interface {
	Run(instructionSet *ir.InstructionSet)
}
