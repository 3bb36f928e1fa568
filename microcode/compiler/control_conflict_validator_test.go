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
	"github.com/davecarr1024/irata2/microcode/ir"
)

func TestControlConflictValidator_ReadAndWritePanics(t *testing.T) {
	set := instructionSetWithSteps([]ir.Step{
		{Controls: []ir.ControlInfo{{Path: "a.read"}, {Path: "a.write"}}},
	})
	expectMicrocodePanic(t, errors.ControlConflict, func() {
		compiler.ControlConflictValidator{}.Run(set)
	})
}

func TestControlConflictValidator_SetAndClearPanics(t *testing.T) {
	set := instructionSetWithSteps([]ir.Step{
		{Controls: []ir.ControlInfo{{Path: "status.zero.set"}, {Path: "status.zero.clear"}}},
	})
	expectMicrocodePanic(t, errors.ControlConflict, func() {
		compiler.ControlConflictValidator{}.Run(set)
	})
}

func TestControlConflictValidator_IncrementAndDecrementPanics(t *testing.T) {
	set := instructionSetWithSteps([]ir.Step{
		{Controls: []ir.ControlInfo{{Path: "pc.increment"}, {Path: "pc.decrement"}}},
	})
	expectMicrocodePanic(t, errors.ControlConflict, func() {
		compiler.ControlConflictValidator{}.Run(set)
	})
}

func TestControlConflictValidator_DifferentComponentsDoNotConflict(t *testing.T) {
	set := instructionSetWithSteps([]ir.Step{
		{Controls: []ir.ControlInfo{{Path: "a.read"}, {Path: "x.write"}}},
	})
	compiler.ControlConflictValidator{}.Run(set)
}

func TestControlConflictValidator_MultipleOpcodeBitsOnSameComponentIsNotAConflict(t *testing.T) {
	set := instructionSetWithSteps([]ir.Step{
		{Controls: []ir.ControlInfo{{Path: "alu.op0"}, {Path: "alu.op1"}}},
	})
	compiler.ControlConflictValidator{}.Run(set)
}
