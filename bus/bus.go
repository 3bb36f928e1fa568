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

// Package bus implements the shared wires registers and the ALU communicate
// over: byte-wide data buses and word-wide address buses. A bus holds at
// most one value per tick, written by exactly one component during the
// Write phase and read by any number of components during the Read phase.
// It is cleared, value and writer both, at the end of every tick.
package bus

import (
	"github.com/davecarr1024/irata2/base"
	"github.com/davecarr1024/irata2/component"
	"github.com/davecarr1024/irata2/errors"
)

// Value is the set of wire widths a Bus can carry.
type Value interface {
	base.Byte | base.Word
}

// Bus is a single shared wire of type T, arbitrated to one writer per tick.
type Bus[T Value] struct {
	*component.Base
	hasValue   bool
	value      T
	writerPath string
}

// New creates a bus named name hung off parent.
func New[T Value](name string, parent component.Component, phaseSrc component.PhaseSource) *Bus[T] {
	return &Bus[T]{Base: component.NewChildBase(name, parent, phaseSrc)}
}

// HasValue reports whether a writer has put a value on the bus this tick.
func (b *Bus[T]) HasValue() bool {
	return b.hasValue
}

// Value returns the value currently on the bus. It panics if no writer has
// written this tick; callers should check HasValue or go through Read.
func (b *Bus[T]) Value() T {
	if !b.hasValue {
		panic(errors.Errorf(errors.BusReadWithoutWrite, b.Path()))
	}
	return b.value
}

// Write places value on the bus on behalf of writerPath. It may only be
// called during the Write phase, and only once per tick.
func (b *Bus[T]) Write(value T, writerPath string) {
	if b.Phase() != base.PhaseWrite {
		panic(errors.Errorf(errors.BusWriteOutsidePhase, b.Path()))
	}
	if b.writerPath != "" {
		panic(errors.Errorf(errors.BusMultipleWriters, b.Path()))
	}
	b.value = value
	b.hasValue = true
	b.writerPath = writerPath
}

// Read returns the value on the bus on behalf of readerPath. It may only be
// called during the Read phase, and only after a writer has written.
func (b *Bus[T]) Read(readerPath string) T {
	if b.Phase() != base.PhaseRead {
		panic(errors.Errorf(errors.BusReadOutsidePhase, b.Path()))
	}
	if !b.hasValue {
		panic(errors.Errorf(errors.BusReadWithoutWrite, readerPath))
	}
	return b.value
}

// TickClear resets the bus to its unwritten state.
func (b *Bus[T]) TickClear() {
	var zero T
	b.value = zero
	b.hasValue = false
	b.writerPath = ""
}

// TickControl is a no-op: a bus carries no control state.
func (b *Bus[T]) TickControl() {}

// TickWrite is a no-op: writers call Write directly during the Write phase,
// they are not dispatched to through the tree.
func (b *Bus[T]) TickWrite() {}

// TickRead is a no-op: readers call Read directly during the Read phase.
func (b *Bus[T]) TickRead() {}

// TickProcess is a no-op: a bus carries no process-phase behaviour.
func (b *Bus[T]) TickProcess() {}
