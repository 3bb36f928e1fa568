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

// Package register implements bus-connected storage: a Register holds a
// value of type T, exposes write/read controls bound to a shared bus, and a
// reset control that zeroes it in the Process phase. Counter adds an
// increment control, with correct byte-overflow-into-high-byte behaviour for
// word-wide counters (reset wins over increment, increment applies to the
// full 16-bit value so the carry out of the low byte is implicit).
package register

import (
	"github.com/davecarr1024/irata2/base"
	"github.com/davecarr1024/irata2/bus"
	"github.com/davecarr1024/irata2/component"
	"github.com/davecarr1024/irata2/control"
)

// Register is a bus-connected storage cell of type T.
type Register[T bus.Value] struct {
	*component.Base
	bus          *bus.Bus[T]
	value        T
	writeControl *control.Control
	readControl  *control.Control
	resetControl *control.Control
}

// New creates a register named name hung off parent, connected to b.
func New[T bus.Value](name string, parent component.Component, phaseSrc component.PhaseSource, b *bus.Bus[T]) *Register[T] {
	r := &Register[T]{
		Base: component.NewChildBase(name, parent, phaseSrc),
		bus:  b,
	}
	r.writeControl = control.NewAutoReset("write", r, phaseSrc, base.PhaseWrite)
	r.readControl = control.NewAutoReset("read", r, phaseSrc, base.PhaseRead)
	r.resetControl = control.NewAutoReset("reset", r, phaseSrc, base.PhaseProcess)
	r.RegisterChild(r.writeControl)
	r.RegisterChild(r.readControl)
	r.RegisterChild(r.resetControl)
	return r
}

// Value returns the register's current value.
func (r *Register[T]) Value() T {
	return r.value
}

// SetValue overwrites the register's value directly, bypassing the bus.
// Used by composite registers (e.g. the program counter's byte ports) that
// need to mutate a sibling's state outside of the normal write-control path.
func (r *Register[T]) SetValue(v T) {
	r.value = v
}

// Write returns the write control: asserted during Control phase, it causes
// the register's value to be driven onto the bus during Write phase.
func (r *Register[T]) Write() *control.Control {
	return r.writeControl
}

// Read returns the read control: asserted during Control phase, it causes
// the register to latch the bus's value during Read phase.
func (r *Register[T]) Read() *control.Control {
	return r.readControl
}

// Reset returns the reset control: asserted during Control phase, it zeroes
// the register during Process phase.
func (r *Register[T]) Reset() *control.Control {
	return r.resetControl
}

// TickControl propagates to children (the write/read/reset controls, plus
// any further children registered by a derived type).
func (r *Register[T]) TickControl() {
	r.Base.TickControl()
}

// TickWrite drives the register's value onto the bus if the write control
// is asserted.
func (r *Register[T]) TickWrite() {
	r.Base.TickWrite()
	if r.writeControl.Asserted() {
		r.bus.Write(r.value, r.Path())
	}
}

// TickRead latches the bus's value into the register if the read control is
// asserted.
func (r *Register[T]) TickRead() {
	r.Base.TickRead()
	if r.readControl.Asserted() {
		r.value = r.bus.Read(r.Path())
	}
}

// TickProcess propagates to children, then applies reset if asserted.
func (r *Register[T]) TickProcess() {
	r.Base.TickProcess()
	if r.resetControl.Asserted() {
		var zero T
		r.value = zero
	}
}
