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

package memory

import (
	"github.com/davecarr1024/irata2/base"
	"github.com/davecarr1024/irata2/bus"
	"github.com/davecarr1024/irata2/component"
	"github.com/davecarr1024/irata2/control"
	"github.com/davecarr1024/irata2/register"
)

// marBytePort exposes one byte of a MemoryAddressRegister onto the data
// bus, separately from its address-bus-wide read/write controls.
type marBytePort struct {
	*component.Base
	readControl  *control.Control
	writeControl *control.Control
	resetControl *control.Control
	dataBus      *bus.Bus[base.Byte]
	mar          *MemoryAddressRegister
	isHigh       bool
}

func newMARBytePort(name string, parent component.Component, phaseSrc component.PhaseSource, dataBus *bus.Bus[base.Byte], mar *MemoryAddressRegister, isHigh bool) *marBytePort {
	p := &marBytePort{
		Base:    component.NewChildBase(name, parent, phaseSrc),
		dataBus: dataBus,
		mar:     mar,
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

// Read returns the read control.
func (p *marBytePort) Read() *control.Control { return p.readControl }

// Write returns the write control.
func (p *marBytePort) Write() *control.Control { return p.writeControl }

// Reset returns the reset control.
func (p *marBytePort) Reset() *control.Control { return p.resetControl }

func (p *marBytePort) currentValue() base.Byte {
	if p.isHigh {
		return p.mar.Value().High()
	}
	return p.mar.Value().Low()
}

func (p *marBytePort) setValue(v base.Byte) {
	if p.isHigh {
		p.mar.SetValue(p.mar.Value().WithHigh(v))
	} else {
		p.mar.SetValue(p.mar.Value().WithLow(v))
	}
}

func (p *marBytePort) TickWrite() {
	p.Base.TickWrite()
	if p.writeControl.Asserted() {
		p.dataBus.Write(p.currentValue(), p.Path())
	}
}

func (p *marBytePort) TickRead() {
	p.Base.TickRead()
	if p.readControl.Asserted() {
		p.setValue(p.dataBus.Read(p.Path()))
	}
}

func (p *marBytePort) TickProcess() {
	p.Base.TickProcess()
	if p.resetControl.Asserted() {
		p.setValue(0)
	}
}

// MemoryAddressRegister (MAR) is the word register that drives the address
// bus for every memory access. Its two byte ports let microcode load or
// store it one byte at a time over the data bus (e.g. for zero-page and
// absolute addressing), its offset register and add_offset control perform
// unsigned addition with carry from the low byte into the high byte (used
// to apply the X/Y index to a base address), and its stack_page control
// forces the high byte to 0x01 so the low byte alone can address the stack.
type MemoryAddressRegister struct {
	*register.Register[base.Word]
	low               *marBytePort
	high              *marBytePort
	offset            *register.Register[base.Byte]
	addOffsetControl  *control.Control
	incrementControl  *control.Control
	stackPageControl  *control.Control
}

// NewMAR creates a memory address register named name hung off parent, on
// addressBus, with byte ports onto dataBus.
func NewMAR(name string, parent component.Component, phaseSrc component.PhaseSource, addressBus *bus.Bus[base.Word], dataBus *bus.Bus[base.Byte]) *MemoryAddressRegister {
	m := &MemoryAddressRegister{Register: register.New[base.Word](name, parent, phaseSrc, addressBus)}
	m.low = newMARBytePort("low", m.Register, phaseSrc, dataBus, m, false)
	m.high = newMARBytePort("high", m.Register, phaseSrc, dataBus, m, true)
	m.offset = register.New[base.Byte]("offset", m.Register, phaseSrc, dataBus)
	m.addOffsetControl = control.NewAutoReset("add_offset", m.Register, phaseSrc, base.PhaseProcess)
	m.incrementControl = control.NewAutoReset("increment", m.Register, phaseSrc, base.PhaseProcess)
	m.stackPageControl = control.NewAutoReset("stack_page", m.Register, phaseSrc, base.PhaseProcess)
	m.RegisterChild(m.low)
	m.RegisterChild(m.high)
	m.RegisterChild(m.offset)
	m.RegisterChild(m.addOffsetControl)
	m.RegisterChild(m.incrementControl)
	m.RegisterChild(m.stackPageControl)
	return m
}

// Low returns the low byte port.
func (m *MemoryAddressRegister) Low() *marBytePort { return m.low }

// High returns the high byte port.
func (m *MemoryAddressRegister) High() *marBytePort { return m.high }

// Offset returns the offset register added to the low byte by AddOffset.
func (m *MemoryAddressRegister) Offset() *register.Register[base.Byte] { return m.offset }

// AddOffset returns the control that adds the offset register into MAR with
// carry from low byte to high byte.
func (m *MemoryAddressRegister) AddOffset() *control.Control { return m.addOffsetControl }

// Increment returns the increment control.
func (m *MemoryAddressRegister) Increment() *control.Control { return m.incrementControl }

// StackPage returns the control that forces the high byte to 0x01.
func (m *MemoryAddressRegister) StackPage() *control.Control { return m.stackPageControl }

// TickProcess applies, in order, stack_page, increment, then add_offset.
// This order is load-bearing: stack_page must win over a stale high byte
// before increment/add_offset compute against it.
func (m *MemoryAddressRegister) TickProcess() {
	m.Base.TickProcess()

	if m.stackPageControl.Asserted() {
		m.SetValue(m.Value().WithHigh(0x01))
	}
	if m.incrementControl.Asserted() {
		m.SetValue(m.Value().Add(1))
	}
	if m.addOffsetControl.Asserted() {
		low := uint16(m.Value().Low())
		offsetVal := uint16(m.offset.Value())
		sum := low + offsetVal
		newLow := base.Byte(sum & 0xFF)
		carry := base.Byte(0)
		if sum > 0xFF {
			carry = 1
		}
		newHigh := m.Value().High() + carry
		m.SetValue(base.NewWord(newHigh, newLow))
	}
}
