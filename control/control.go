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

// Package control implements the phase-gated control signal: the single
// primitive every microcode-driven behaviour in the simulator is built on.
// A Control can only be asserted, cleared or set during the Control phase,
// and its asserted state can only be observed during the phase it was bound
// to at construction. Reading or mutating it at any other time is a timing
// bug in the caller and is reported as an error rather than silently
// returning a stale value, the way a read on real hardware would.
//
// Two flavours are provided: an auto-reset control that clears itself every
// Clear phase (the default for most microcode-asserted signals), and a
// latched control that persists across ticks until explicitly cleared
// (used for the halt/crash/IRQ-style signals that must survive until a
// driver observes them).
package control

import (
	"github.com/davecarr1024/irata2/base"
	"github.com/davecarr1024/irata2/component"
	"github.com/davecarr1024/irata2/errors"
)

// Control is a single phase-gated boolean signal.
type Control struct {
	*component.Base
	phase     base.TickPhase
	autoReset bool
	asserted  bool
}

// NewAutoReset creates a control bound to readPhase that clears itself every
// Clear phase.
func NewAutoReset(name string, parent component.Component, phaseSrc component.PhaseSource, readPhase base.TickPhase) *Control {
	return newControl(name, parent, phaseSrc, readPhase, true)
}

// NewLatched creates a control bound to readPhase that persists until
// explicitly cleared or set false.
func NewLatched(name string, parent component.Component, phaseSrc component.PhaseSource, readPhase base.TickPhase) *Control {
	return newControl(name, parent, phaseSrc, readPhase, false)
}

func newControl(name string, parent component.Component, phaseSrc component.PhaseSource, readPhase base.TickPhase, autoReset bool) *Control {
	return &Control{
		Base:      component.NewChildBase(name, parent, phaseSrc),
		phase:     readPhase,
		autoReset: autoReset,
	}
}

// ReadPhase returns the tick phase this control's asserted state is valid in.
func (c *Control) ReadPhase() base.TickPhase {
	return c.phase
}

// AutoReset reports whether this control clears itself every Clear phase.
func (c *Control) AutoReset() bool {
	return c.autoReset
}

// Asserted reports whether the control is currently asserted. It may only
// be called while the root is in this control's bound read phase.
func (c *Control) Asserted() bool {
	if c.Phase() != c.phase {
		panic(errors.Errorf(errors.ReadOutsidePhase, c.Path(), c.Phase()))
	}
	return c.asserted
}

// Set assigns the control's asserted state directly. It may only be called
// during the Control phase.
func (c *Control) Set(asserted bool) {
	c.ensurePhase("set")
	c.asserted = asserted
}

// Assert asserts the control. It may only be called during the Control
// phase.
func (c *Control) Assert() {
	c.ensurePhase("assert")
	c.asserted = true
}

// Clear de-asserts the control. It may only be called during the Control
// phase.
func (c *Control) Clear() {
	c.ensurePhase("clear")
	c.asserted = false
}

func (c *Control) ensurePhase(action string) {
	if c.Phase() != base.PhaseControl {
		panic(errors.Errorf(errors.ControlOutsidePhase, c.Path(), action))
	}
}

// TickClear clears the control if it is auto-resetting; latched controls
// leave their state untouched.
func (c *Control) TickClear() {
	if c.autoReset {
		c.asserted = false
	}
}

// TickControl is a no-op: controls are mutated directly by their owner's
// TickControl, not by propagation.
func (c *Control) TickControl() {}

// TickWrite is a no-op for a bare control.
func (c *Control) TickWrite() {}

// TickRead is a no-op for a bare control.
func (c *Control) TickRead() {}

// TickProcess is a no-op for a bare control.
func (c *Control) TickProcess() {}
