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

// Package status implements the processor status register: eight named
// status bits (negative, overflow, unused, break, decimal,
// interrupt_disable, zero, carry) backed by a single byte register, each
// independently settable/clearable by microcode.
package status

import (
	"github.com/davecarr1024/irata2/base"
	"github.com/davecarr1024/irata2/bus"
	"github.com/davecarr1024/irata2/component"
	"github.com/davecarr1024/irata2/control"
	"github.com/davecarr1024/irata2/register"
)

// Bit positions of the eight named status flags within the status byte.
const (
	BitCarry            = 0
	BitZero             = 1
	BitInterruptDisable = 2
	BitDecimal          = 3
	BitBreak            = 4
	BitUnused           = 5
	BitOverflow         = 6
	BitNegative         = 7
)

// Status is a single named bit of the status register, with independent
// set/clear microcode controls.
type Status struct {
	*component.Base
	reg          *Register
	bitIndex     uint8
	setControl   *control.Control
	clearControl *control.Control
}

func newStatus(name string, parent component.Component, phaseSrc component.PhaseSource, reg *Register, bitIndex uint8) *Status {
	s := &Status{
		Base:     component.NewChildBase(name, parent, phaseSrc),
		reg:      reg,
		bitIndex: bitIndex,
	}
	s.setControl = control.NewAutoReset("set", s, phaseSrc, base.PhaseProcess)
	s.clearControl = control.NewAutoReset("clear", s, phaseSrc, base.PhaseProcess)
	s.RegisterChild(s.setControl)
	s.RegisterChild(s.clearControl)
	return s
}

// BitIndex returns this flag's bit position within the status byte.
func (s *Status) BitIndex() uint8 {
	return s.bitIndex
}

// Value reports whether this flag is currently set.
func (s *Status) Value() bool {
	return (uint8(s.reg.Value())>>s.bitIndex)&1 != 0
}

// Set writes this flag directly, independent of the set/clear controls.
func (s *Status) Set(value bool) {
	current := uint8(s.reg.Value())
	mask := uint8(1) << s.bitIndex
	if value {
		current |= mask
	} else {
		current &^= mask
	}
	s.reg.SetValue(base.Byte(current))
}

// SetControl returns the set control: asserted during Control phase, it
// sets this flag during Process phase.
func (s *Status) SetControl() *control.Control {
	return s.setControl
}

// ClearControl returns the clear control: asserted during Control phase, it
// clears this flag during Process phase.
func (s *Status) ClearControl() *control.Control {
	return s.clearControl
}

// TickProcess applies set/clear if either is asserted; set wins if both are.
func (s *Status) TickProcess() {
	s.Base.TickProcess()
	wantSet := s.setControl.Asserted()
	wantClear := s.clearControl.Asserted()
	if !wantSet && !wantClear {
		return
	}
	s.Set(wantSet)
}

// Register is the processor status byte: a ByteRegister with eight named
// flag children at fixed bit positions.
type Register struct {
	*register.Register[base.Byte]
	negative         *Status
	overflow         *Status
	unused           *Status
	brk              *Status
	decimal          *Status
	interruptDisable *Status
	zero             *Status
	carry            *Status
}

// New creates the status register named name hung off parent, on b.
func New(name string, parent component.Component, phaseSrc component.PhaseSource, b *bus.Bus[base.Byte]) *Register {
	r := &Register{Register: register.New[base.Byte](name, parent, phaseSrc, b)}
	r.negative = newStatus("negative", r.Register, phaseSrc, r, BitNegative)
	r.overflow = newStatus("overflow", r.Register, phaseSrc, r, BitOverflow)
	r.unused = newStatus("unused", r.Register, phaseSrc, r, BitUnused)
	r.brk = newStatus("break", r.Register, phaseSrc, r, BitBreak)
	r.decimal = newStatus("decimal", r.Register, phaseSrc, r, BitDecimal)
	r.interruptDisable = newStatus("interrupt_disable", r.Register, phaseSrc, r, BitInterruptDisable)
	r.zero = newStatus("zero", r.Register, phaseSrc, r, BitZero)
	r.carry = newStatus("carry", r.Register, phaseSrc, r, BitCarry)
	r.RegisterChild(r.negative)
	r.RegisterChild(r.overflow)
	r.RegisterChild(r.unused)
	r.RegisterChild(r.brk)
	r.RegisterChild(r.decimal)
	r.RegisterChild(r.interruptDisable)
	r.RegisterChild(r.zero)
	r.RegisterChild(r.carry)
	return r
}

// Negative returns the negative (N) flag.
func (r *Register) Negative() *Status { return r.negative }

// Overflow returns the overflow (V) flag.
func (r *Register) Overflow() *Status { return r.overflow }

// Unused returns the unused (bit 5) flag.
func (r *Register) Unused() *Status { return r.unused }

// Break returns the break (B) flag.
func (r *Register) Break() *Status { return r.brk }

// Decimal returns the decimal mode (D) flag.
func (r *Register) Decimal() *Status { return r.decimal }

// InterruptDisable returns the interrupt-disable (I) flag.
func (r *Register) InterruptDisable() *Status { return r.interruptDisable }

// Zero returns the zero (Z) flag.
func (r *Register) Zero() *Status { return r.zero }

// Carry returns the carry (C) flag.
func (r *Register) Carry() *Status { return r.carry }

// All returns the eight named flags in canonical bit order, high to low:
// negative, overflow, unused, break, decimal, interrupt_disable, zero,
// carry.
func (r *Register) All() []*Status {
	return []*Status{r.negative, r.overflow, r.unused, r.brk, r.decimal, r.interruptDisable, r.zero, r.carry}
}
