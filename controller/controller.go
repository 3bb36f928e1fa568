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

package controller

import (
	"github.com/davecarr1024/irata2/base"
	"github.com/davecarr1024/irata2/bus"
	"github.com/davecarr1024/irata2/component"
	"github.com/davecarr1024/irata2/control"
	"github.com/davecarr1024/irata2/errors"
	"github.com/davecarr1024/irata2/register"
	"github.com/davecarr1024/irata2/status"
)

// ControlAsserter is implemented by every control the controller can drive:
// resolved microcode control paths assert their target this way during
// Control phase.
type ControlAsserter interface {
	Assert()
}

// Lookup resolves an (opcode, step, status) triple to the set of controls
// that should be asserted. It is implemented by InstructionMemory; kept as
// an interface here so the controller package does not need to import the
// microcode program representation directly.
type Lookup interface {
	Lookup(opcode, step, status base.Byte) ([]ControlAsserter, error)
}

// Controller is the instruction sequencer: it owns the instruction
// register, step counter, and instruction-pointer cache, and drives the
// microcode lookup every Control phase.
type Controller struct {
	*component.Base
	instructionStart *control.Control
	ir               *InstructionRegister
	sc               *register.LocalCounter[base.Byte]
	pc               register.WordSource
	ipc              *register.LatchedWordRegister
	memory           Lookup
	statusEncoder    func() base.Byte
}

// New creates a controller named name hung off parent, on dataBus, tracking
// pc (the program counter). The microcode lookup table is supplied
// separately via LoadProgram once the CPU's full control tree exists.
func New(name string, parent component.Component, phaseSrc component.PhaseSource, dataBus *bus.Bus[base.Byte], irqLine *control.Control, interruptDisable *status.Status, pc register.WordSource) *Controller {
	c := &Controller{
		Base: component.NewChildBase(name, parent, phaseSrc),
		pc:   pc,
	}
	c.instructionStart = control.NewAutoReset("instruction_start", c, phaseSrc, base.PhaseProcess)
	c.ir = NewInstructionRegister("ir", c, phaseSrc, dataBus, irqLine, c.instructionStart, interruptDisable)
	c.sc = register.NewLocalCounter[base.Byte]("sc", c, phaseSrc)
	c.ipc = register.NewLatchedWordRegister("ipc", c, phaseSrc, pc)
	c.RegisterChild(c.instructionStart)
	c.RegisterChild(c.ir)
	c.RegisterChild(c.sc)
	c.RegisterChild(c.ipc)
	return c
}

// IR returns the instruction register.
func (c *Controller) IR() *InstructionRegister { return c.ir }

// SC returns the microcode step counter.
func (c *Controller) SC() *register.LocalCounter[base.Byte] { return c.sc }

// IPC returns the latched instruction-pointer cache.
func (c *Controller) IPC() *register.LatchedWordRegister { return c.ipc }

// InstructionStart returns the instruction_start control: asserted by the
// fetch preamble's last step, it triggers IPC latching and interrupt
// re-evaluation in the same Process phase.
func (c *Controller) InstructionStart() *control.Control { return c.instructionStart }

// LoadProgram installs the compiled microcode lookup table. It must be
// called once, after the CPU's control tree (and thus every control path
// the program references) exists.
func (c *Controller) LoadProgram(memory Lookup) error {
	if memory == nil {
		return errors.Errorf(errors.NoMicrocodeProgram)
	}
	c.memory = memory
	return nil
}

// TickControl looks up the control word for the current (opcode, step,
// status) and asserts every control it names.
func (c *Controller) TickControl() {
	if c.memory == nil {
		panic(errors.Errorf(errors.NoMicrocodeProgram))
	}

	opcode := c.ir.Value()
	step := c.sc.Value()
	status := c.statusByte()

	controls, err := c.memory.Lookup(opcode, step, status)
	if err != nil {
		panic(err)
	}
	for _, ctrl := range controls {
		ctrl.Assert()
	}
}

// statusByte is overridden by the CPU via SetStatusEncoder; declared here
// so Controller compiles standalone, it defaults to zero.
func (c *Controller) statusByte() base.Byte {
	if c.statusEncoder == nil {
		return 0
	}
	return c.statusEncoder()
}

// SetStatusEncoder installs the function used to compute the status byte
// fed into the microcode lookup every Control phase.
func (c *Controller) SetStatusEncoder(f func() base.Byte) {
	c.statusEncoder = f
}

// TickProcess propagates to children, then latches IPC from PC directly if
// instruction_start fired this tick. This bypasses IPC's own latch control
// deliberately: instruction_start is the single trigger for capturing the
// pre-increment PC, decoupled from whatever general-purpose latch
// microcode might otherwise assert on the same register.
func (c *Controller) TickProcess() {
	c.Base.TickProcess()
	if c.instructionStart.Asserted() {
		c.ipc.SetValue(c.pc.Value())
	}
}
