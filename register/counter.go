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

// Counter is a Register with an increment control. Reset takes priority over
// increment: if both are asserted in the same Process phase, the register is
// zeroed and the increment is ignored.
type Counter[T bus.Value] struct {
	*Register[T]
	incrementControl *control.Control
}

// NewCounter creates a counter named name hung off parent, connected to b.
func NewCounter[T bus.Value](name string, parent component.Component, phaseSrc component.PhaseSource, b *bus.Bus[T]) *Counter[T] {
	c := &Counter[T]{Register: New[T](name, parent, phaseSrc, b)}
	c.incrementControl = control.NewAutoReset("increment", c.Register, phaseSrc, base.PhaseProcess)
	c.Register.RegisterChild(c.incrementControl)
	return c
}

// Increment returns the increment control: asserted during Control phase,
// it adds one to the register's value during Process phase, unless reset is
// also asserted.
func (c *Counter[T]) Increment() *control.Control {
	return c.incrementControl
}

// TickProcess propagates to children, applies reset if asserted (taking
// priority), otherwise applies increment if asserted.
func (c *Counter[T]) TickProcess() {
	c.Base.TickProcess()
	if c.Reset().Asserted() {
		var zero T
		c.value = zero
		return
	}
	if c.incrementControl.Asserted() {
		c.value = c.value + 1
	}
}
