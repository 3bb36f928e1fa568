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

// Package cpu assembles the full component tree -- buses, the A/X
// registers, the program counter, the status register, the ALU, the
// memory subsystem and the controller -- into a single root driver, and
// implements the five-phase Tick that every other package's TickControl/
// TickWrite/TickRead/TickProcess/TickClear methods are dispatched from.
// It also owns the halt/crash/IRQ latched controls that sit outside the
// microcode-driven datapath, and the run loop that steps the CPU until it
// halts, crashes, or a caller-supplied cycle budget is exhausted.
package cpu

import (
	"github.com/davecarr1024/irata2/alu"
	"github.com/davecarr1024/irata2/base"
	"github.com/davecarr1024/irata2/bus"
	"github.com/davecarr1024/irata2/component"
	"github.com/davecarr1024/irata2/control"
	"github.com/davecarr1024/irata2/controller"
	"github.com/davecarr1024/irata2/errors"
	"github.com/davecarr1024/irata2/memory"
	"github.com/davecarr1024/irata2/pc"
	"github.com/davecarr1024/irata2/register"
	"github.com/davecarr1024/irata2/status"
)

// CPU is the root of the component tree and the sole PhaseSource every
// descendant asks for the currently active tick phase.
type CPU struct {
	*component.Base

	addressBus *bus.Bus[base.Word]
	dataBus    *bus.Bus[base.Byte]

	a *register.Register[base.Byte]
	x *register.Register[base.Byte]

	pc     *pc.ProgramCounter
	status *status.Register
	alu    *alu.ALU
	memory *memory.Memory

	controller *controller.Controller

	irqLine *control.Control
	halt    *control.Control
	crash   *control.Control

	phase   base.TickPhase
	cycle   uint64
	program *InstructionMemory
	trace   *DebugTraceBuffer

	// halted/crashed mirror the halt/crash controls' asserted state as of
	// the last Process phase. halt.Asserted()/crash.Asserted() can only be
	// read during Process, but Halted()/Crashed() must be safe to call
	// between ticks (including before the first Tick, when phase is
	// PhaseNone), so Tick caches them here rather than reading the controls
	// directly.
	halted  bool
	crashed bool
}

// New builds the full component tree over regions (the memory subsystem's
// RAM/ROM layout) and returns it with no microcode program loaded. Callers
// must call LoadProgram before the first Tick.
func New(regions []*memory.Region) (*CPU, error) {
	c := &CPU{}
	c.Base = component.NewRootBase(c)

	c.addressBus = bus.New[base.Word]("address_bus", c, c)
	c.dataBus = bus.New[base.Byte]("data_bus", c, c)

	c.a = register.New[base.Byte]("a", c, c, c.dataBus)
	c.x = register.New[base.Byte]("x", c, c, c.dataBus)

	c.pc = pc.New("pc", c, c, c.addressBus, c.dataBus)
	c.status = status.New("status", c, c, c.dataBus)
	// alu is registered as a child before status below, so that within a
	// single Process phase the ALU's direct carry/overflow writes happen
	// first, and microcode that explicitly sets or clears the
	// same flag in the same tick (processed by status's own child controls)
	// always wins.
	c.alu = alu.New("alu", c, c, c.dataBus, c.status)

	mem, err := memory.New("memory", c, c, c.dataBus, c.addressBus, regions)
	if err != nil {
		return nil, err
	}
	c.memory = mem

	c.irqLine = control.NewLatched("irq", c, c, base.PhaseProcess)
	c.halt = control.NewLatched("halt", c, c, base.PhaseProcess)
	c.crash = control.NewLatched("crash", c, c, base.PhaseProcess)

	c.controller = controller.New("controller", c, c, c.dataBus, c.irqLine, c.status.InterruptDisable(), c.pc)
	c.controller.SetStatusEncoder(c.statusByte)

	c.RegisterChild(c.addressBus)
	c.RegisterChild(c.dataBus)
	c.RegisterChild(c.a)
	c.RegisterChild(c.x)
	// controller is registered before pc: its TickProcess captures IPC from
	// pc's pre-increment value, which only holds if pc's own increment
	// hasn't run yet this Process phase.
	c.RegisterChild(c.controller)
	c.RegisterChild(c.pc)
	c.RegisterChild(c.alu)
	c.RegisterChild(c.status)
	c.RegisterChild(c.memory)
	c.RegisterChild(c.irqLine)
	c.RegisterChild(c.halt)
	c.RegisterChild(c.crash)

	c.trace = NewDebugTraceBuffer()

	return c, nil
}

// A returns the accumulator register.
func (c *CPU) A() *register.Register[base.Byte] { return c.a }

// X returns the index register.
func (c *CPU) X() *register.Register[base.Byte] { return c.x }

// PC returns the program counter.
func (c *CPU) PC() *pc.ProgramCounter { return c.pc }

// Status returns the status register.
func (c *CPU) Status() *status.Register { return c.status }

// ALU returns the arithmetic-logic unit.
func (c *CPU) ALU() *alu.ALU { return c.alu }

// Memory returns the memory subsystem.
func (c *CPU) Memory() *memory.Memory { return c.memory }

// Controller returns the instruction sequencer.
func (c *CPU) Controller() *controller.Controller { return c.controller }

// AddressBus returns the shared address bus.
func (c *CPU) AddressBus() *bus.Bus[base.Word] { return c.addressBus }

// DataBus returns the shared data bus.
func (c *CPU) DataBus() *bus.Bus[base.Byte] { return c.dataBus }

// IRQ returns the latched interrupt-request line: asserting it during the
// Control phase causes the next instruction_start to inject an interrupt,
// unless the status register's interrupt-disable flag is set.
func (c *CPU) IRQ() *control.Control { return c.irqLine }

// Halt returns the latched halt control: once asserted it persists until
// cleared, and Tick becomes a no-op while it is set.
func (c *CPU) Halt() *control.Control { return c.halt }

// Crash returns the latched crash control: asserted by microcode that
// detects an unrecoverable condition (e.g. an unimplemented opcode),
// it also stops further ticking.
func (c *CPU) Crash() *control.Control { return c.crash }

// Trace returns the instruction-boundary trace buffer.
func (c *CPU) Trace() *DebugTraceBuffer { return c.trace }

// Cycle returns the number of ticks executed so far.
func (c *CPU) Cycle() uint64 { return c.cycle }

// CurrentPhase implements component.PhaseSource.
func (c *CPU) CurrentPhase() base.TickPhase { return c.phase }

func (c *CPU) statusByte() base.Byte {
	var b uint8
	for _, s := range c.status.All() {
		if s.Value() {
			b |= 1 << s.BitIndex()
		}
	}
	return base.Byte(b)
}

// Halted reports whether the CPU is halted or crashed and will no longer
// advance on Tick.
func (c *CPU) Halted() bool {
	return c.halted
}

// Crashed reports whether the CPU reached a crash state.
func (c *CPU) Crashed() bool {
	return c.crashed
}

// Reset sets the CPU to the state it would be in out of a hardware reset:
// PC loaded with entry, the step counter cleared, and IR primed with the
// byte at entry. The next Tick's fetch preamble re-derives the same IR
// value from the bus, so priming it here only matters to a caller that
// inspects CPU state before the first Tick.
func (c *CPU) Reset(entry base.Word) {
	c.pc.SetValue(entry)
	c.controller.SC().SetValue(0)
	c.controller.IR().SetValue(c.memory.ReadAt(entry))
}

// LoadProgram compiles nothing itself; it installs an already-built
// InstructionMemory (see instruction_memory.go) as the controller's
// microcode lookup table.
func (c *CPU) LoadProgram(program *InstructionMemory) error {
	if program == nil {
		return errors.Errorf(errors.NoMicrocodeProgram)
	}
	c.program = program
	return c.controller.LoadProgram(program)
}

// ResolveControl walks the component tree looking for the control at path,
// returning an error if none is found. Used both by InstructionMemory (to
// bind a compiled program's control paths to live controls) and by test/
// debug tooling.
func (c *CPU) ResolveControl(path string) (*control.Control, error) {
	var found *control.Control
	component.Walk(c, func(node component.Component) {
		if found != nil {
			return
		}
		if ctrl, ok := node.(*control.Control); ok && ctrl.Path() == path {
			found = ctrl
		}
	})
	if found == nil {
		return nil, errors.Errorf(errors.UnknownControlPath, path)
	}
	return found, nil
}

// AllControlPaths returns the dotted path of every control in the tree, in
// construction order.
func (c *CPU) AllControlPaths() []string {
	var paths []string
	component.Walk(c, func(node component.Component) {
		if ctrl, ok := node.(*control.Control); ok {
			paths = append(paths, ctrl.Path())
		}
	})
	return paths
}

// Tick advances the CPU through one full Control/Write/Read/Process/Clear
// cycle. It is a no-op if the CPU is halted or crashed.
func (c *CPU) Tick() {
	if c.Halted() {
		return
	}

	c.phase = base.PhaseControl
	c.Base.TickControl()

	c.phase = base.PhaseWrite
	c.Base.TickWrite()

	c.phase = base.PhaseRead
	c.Base.TickRead()

	c.phase = base.PhaseProcess
	c.Base.TickProcess()
	c.updateHaltCrash()
	c.recordTrace()

	c.phase = base.PhaseClear
	c.Base.TickClear()

	c.phase = base.PhaseNone
	c.cycle++
}

// updateHaltCrash refreshes the cached halted/crashed bools from the latched
// halt/crash controls. It must run while phase is still PhaseProcess, the
// only phase those controls' Asserted() may be read in.
func (c *CPU) updateHaltCrash() {
	c.crashed = c.crash.Asserted()
	c.halted = c.halt.Asserted() || c.crashed
}

func (c *CPU) recordTrace() {
	if !c.trace.Enabled() || !c.controller.InstructionStart().Asserted() {
		return
	}
	c.trace.Record(DebugTraceEntry{
		Cycle:               c.cycle,
		InstructionAddress:  c.controller.IPC().Value(),
		PC:                  c.pc.Value(),
		IR:                  c.controller.IR().StoredValue(),
		SC:                  c.controller.SC().Value(),
		A:                   c.a.Value(),
		X:                   c.x.Value(),
		Status:              c.statusByte(),
	})
}
