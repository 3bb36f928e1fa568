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

// Package pc implements the program counter: a word-wide counter on the
// address bus with two byte ports onto the data bus (so microcode can read
// or write PC one byte at a time, as a 6502-class machine does for operand
// fetches and return-address pushes), and a signed-offset adder for
// relative branches.
package pc

import (
	"github.com/davecarr1024/irata2/base"
	"github.com/davecarr1024/irata2/bus"
	"github.com/davecarr1024/irata2/component"
	"github.com/davecarr1024/irata2/control"
	"github.com/davecarr1024/irata2/register"
)

// BytePort exposes one byte (high or low) of a ProgramCounter onto a byte
// data bus.
type BytePort struct {
	*component.Base
	readControl  *control.Control
	writeControl *control.Control
	resetControl *control.Control
	dataBus      *bus.Bus[base.Byte]
	pc           *ProgramCounter
	isHigh       bool
}

func newBytePort(name string, parent component.Component, phaseSrc component.PhaseSource, dataBus *bus.Bus[base.Byte], pc *ProgramCounter, isHigh bool) *BytePort {
	p := &BytePort{
		Base:    component.NewChildBase(name, parent, phaseSrc),
		dataBus: dataBus,
		pc:      pc,
		isHigh:  isHigh,
	}
	p.readControl = control.NewAutoReset("read", p, phaseSrc, base.PhaseRead)
	p.writeControl = control.NewAutoReset("write", p, phaseSrc, base.PhaseWrite)
	p.resetControl = control.NewAutoReset("reset", p, phaseSrc, base.PhaseProcess)
	p.RegisterChild(p.readControl)
	p.RegisterChild(p.writeControl)
	p.RegisterChild(p.resetControl)
	return p
}

// Read returns the read control: latches the data bus into this byte of PC.
func (p *BytePort) Read() *control.Control { return p.readControl }

// Write returns the write control: drives this byte of PC onto the data bus.
func (p *BytePort) Write() *control.Control { return p.writeControl }

// Reset returns the reset control: zeroes this byte of PC.
func (p *BytePort) Reset() *control.Control { return p.resetControl }

func (p *BytePort) currentValue() base.Byte {
	if p.isHigh {
		return p.pc.Value().High()
	}
	return p.pc.Value().Low()
}

func (p *BytePort) setValue(v base.Byte) {
	if p.isHigh {
		p.pc.SetValue(p.pc.Value().WithHigh(v))
	} else {
		p.pc.SetValue(p.pc.Value().WithLow(v))
	}
}

// TickWrite drives this byte of PC onto the data bus if asserted.
func (p *BytePort) TickWrite() {
	p.Base.TickWrite()
	if p.writeControl.Asserted() {
		p.dataBus.Write(p.currentValue(), p.Path())
	}
}

// TickRead latches the data bus into this byte of PC if asserted.
func (p *BytePort) TickRead() {
	p.Base.TickRead()
	if p.readControl.Asserted() {
		p.setValue(p.dataBus.Read(p.Path()))
	}
}

// TickProcess zeroes this byte of PC if reset is asserted.
func (p *BytePort) TickProcess() {
	p.Base.TickProcess()
	if p.resetControl.Asserted() {
		p.setValue(0)
	}
}

// ProgramCounter is a 16-bit word register on the address bus, with a
// signed-offset register and add-offset control for relative branches.
type ProgramCounter struct {
	*register.Register[base.Word]
	low                    *BytePort
	high                   *BytePort
	signedOffset           *register.Register[base.Byte]
	incrementControl       *control.Control
	addSignedOffsetControl *control.Control
}

// New creates a program counter named name hung off parent, on addressBus,
// with byte ports onto dataBus.
func New(name string, parent component.Component, phaseSrc component.PhaseSource, addressBus *bus.Bus[base.Word], dataBus *bus.Bus[base.Byte]) *ProgramCounter {
	pc := &ProgramCounter{Register: register.New[base.Word](name, parent, phaseSrc, addressBus)}
	pc.low = newBytePort("low", pc.Register, phaseSrc, dataBus, pc, false)
	pc.high = newBytePort("high", pc.Register, phaseSrc, dataBus, pc, true)
	pc.signedOffset = register.New[base.Byte]("signed_offset", pc.Register, phaseSrc, dataBus)
	pc.incrementControl = control.NewAutoReset("increment", pc.Register, phaseSrc, base.PhaseProcess)
	pc.addSignedOffsetControl = control.NewAutoReset("add_signed_offset", pc.Register, phaseSrc, base.PhaseProcess)
	pc.RegisterChild(pc.low)
	pc.RegisterChild(pc.high)
	pc.RegisterChild(pc.signedOffset)
	pc.RegisterChild(pc.incrementControl)
	pc.RegisterChild(pc.addSignedOffsetControl)
	return pc
}

// Low returns the low byte port.
func (pc *ProgramCounter) Low() *BytePort { return pc.low }

// High returns the high byte port.
func (pc *ProgramCounter) High() *BytePort { return pc.high }

// SignedOffset returns the register holding the branch displacement read
// from the data bus.
func (pc *ProgramCounter) SignedOffset() *register.Register[base.Byte] { return pc.signedOffset }

// Increment returns the increment control.
func (pc *ProgramCounter) Increment() *control.Control { return pc.incrementControl }

// AddSignedOffset returns the control that adds the signed_offset register
// (interpreted as two's complement) to PC during Process phase.
func (pc *ProgramCounter) AddSignedOffset() *control.Control { return pc.addSignedOffsetControl }

// TickProcess propagates to children, then applies reset (if asserted,
// taking priority and returning early), increment, and add-signed-offset in
// that order.
func (pc *ProgramCounter) TickProcess() {
	pc.Base.TickProcess()

	if pc.Reset().Asserted() {
		pc.SetValue(0)
		return
	}

	if pc.incrementControl.Asserted() {
		pc.SetValue(pc.Value().Add(1))
	}

	if pc.addSignedOffsetControl.Asserted() {
		offset := base.SignedOffset(pc.signedOffset.Value())
		pc.SetValue(pc.Value().Add(offset))
	}
}
