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

// Package controller implements the instruction fetch/decode/execute
// sequencer: the instruction register (with IRQ injection), the step
// counter, the instruction-pointer cache, and the microcode-driven
// controller that asserts the control word looked up for the current
// (opcode, step, status) triple every Control phase.
package controller

import (
	"github.com/davecarr1024/irata2/base"
	"github.com/davecarr1024/irata2/bus"
	"github.com/davecarr1024/irata2/component"
	"github.com/davecarr1024/irata2/control"
	"github.com/davecarr1024/irata2/register"
	"github.com/davecarr1024/irata2/status"
)

// IRQOpcode is the reserved opcode synthesized when an interrupt is
// injected in place of the fetched opcode.
const IRQOpcode base.Byte = 0x00

// InstructionRegister holds the opcode of the instruction currently
// executing. Its observed value differs from its stored value only for an
// instruction whose instruction_start fired while the IRQ line was asserted
// and the interrupt-disable flag was clear: from that tick until the next
// instruction_start (or a reset) the reserved opcode 0x00 is synthesized in
// place of whatever was actually fetched, injecting an interrupt sequence
// without ever storing it in the register itself.
type InstructionRegister struct {
	*register.Register[base.Byte]
	irqLine           *control.Control
	instructionStart  *control.Control
	interruptDisable  *status.Status
	injectInterrupt   bool
}

// NewInstructionRegister creates the instruction register named name hung
// off parent, on dataBus. irqLine is the CPU's latched IRQ line,
// instructionStart is the controller's instruction_start control, and
// interruptDisable is the status register's interrupt-disable flag.
func NewInstructionRegister(name string, parent component.Component, phaseSrc component.PhaseSource, dataBus *bus.Bus[base.Byte], irqLine, instructionStart *control.Control, interruptDisable *status.Status) *InstructionRegister {
	ir := &InstructionRegister{
		Register:         register.New[base.Byte](name, parent, phaseSrc, dataBus),
		irqLine:          irqLine,
		instructionStart: instructionStart,
		interruptDisable: interruptDisable,
	}
	return ir
}

// Value returns the opcode currently observed: the reserved IRQ opcode if
// an interrupt is being injected this instruction, otherwise the stored
// value.
func (ir *InstructionRegister) Value() base.Byte {
	if ir.injectInterrupt {
		return IRQOpcode
	}
	return ir.Register.Value()
}

// StoredValue returns the value actually latched in the register,
// irrespective of interrupt injection.
func (ir *InstructionRegister) StoredValue() base.Byte {
	return ir.Register.Value()
}

// TickProcess propagates to children, then updates interrupt-injection
// state: reset clears it (leaving the stored opcode as it is), otherwise it
// is recomputed at instruction_start.
func (ir *InstructionRegister) TickProcess() {
	ir.Base.TickProcess()

	if ir.Reset().Asserted() {
		ir.injectInterrupt = false
		return
	}

	if ir.instructionStart.Asserted() {
		ir.injectInterrupt = ir.irqLine.Asserted() && !ir.interruptDisable.Value()
	}
}
