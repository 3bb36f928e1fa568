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

package register

import (
	"github.com/davecarr1024/irata2/base"
	"github.com/davecarr1024/irata2/bus"
	"github.com/davecarr1024/irata2/component"
	"github.com/davecarr1024/irata2/control"
)

// LocalCounter is a counter with no bus connection: a plain value with
// reset and increment controls, used for state that is entirely internal to
// the controller (the microcode step counter) and never driven onto a
// shared wire.
type LocalCounter[T bus.Value] struct {
	*component.Base
	value             T
	resetControl      *control.Control
	incrementControl  *control.Control
}

// NewLocalCounter creates a local counter named name hung off parent.
func NewLocalCounter[T bus.Value](name string, parent component.Component, phaseSrc component.PhaseSource) *LocalCounter[T] {
	c := &LocalCounter[T]{Base: component.NewChildBase(name, parent, phaseSrc)}
	c.resetControl = control.NewAutoReset("reset", c, phaseSrc, base.PhaseProcess)
	c.incrementControl = control.NewAutoReset("increment", c, phaseSrc, base.PhaseProcess)
	c.RegisterChild(c.resetControl)
	c.RegisterChild(c.incrementControl)
	return c
}

// Value returns the counter's current value.
func (c *LocalCounter[T]) Value() T {
	return c.value
}

// SetValue overwrites the counter's value directly.
func (c *LocalCounter[T]) SetValue(v T) {
	c.value = v
}

// Reset returns the reset control.
func (c *LocalCounter[T]) Reset() *control.Control {
	return c.resetControl
}

// Increment returns the increment control.
func (c *LocalCounter[T]) Increment() *control.Control {
	return c.incrementControl
}

// TickProcess propagates to children, applies reset if asserted (taking
// priority), otherwise applies increment if asserted.
func (c *LocalCounter[T]) TickProcess() {
	c.Base.TickProcess()
	if c.resetControl.Asserted() {
		var zero T
		c.value = zero
		return
	}
	if c.incrementControl.Asserted() {
		c.value = c.value + 1
	}
}
