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

package controller_test

import (
	"testing"

	"github.com/davecarr1024/irata2/base"
	"github.com/davecarr1024/irata2/bus"
	"github.com/davecarr1024/irata2/component"
	"github.com/davecarr1024/irata2/control"
	"github.com/davecarr1024/irata2/controller"
	"github.com/davecarr1024/irata2/errors"
	"github.com/davecarr1024/irata2/status"
	"github.com/davecarr1024/irata2/test"
)

type fakeRoot struct {
	*component.Base
	phase base.TickPhase
}

func newFakeRoot() *fakeRoot {
	r := &fakeRoot{phase: base.PhaseNone}
	r.Base = component.NewRootBase(r)
	return r
}

func (r *fakeRoot) CurrentPhase() base.TickPhase {
	return r.phase
}

func tick(root *fakeRoot, assertControls func()) {
	root.phase = base.PhaseControl
	root.TickControl()
	assertControls()
	root.phase = base.PhaseWrite
	root.TickWrite()
	root.phase = base.PhaseRead
	root.TickRead()
	root.phase = base.PhaseProcess
	root.TickProcess()
	root.phase = base.PhaseClear
	root.TickClear()
	root.phase = base.PhaseNone
}

type fakeWordSource struct {
	value base.Word
}

func (f *fakeWordSource) Value() base.Word {
	return f.value
}

// fakeLookup is a Lookup that always returns the same fixed set of
// controls to assert, or a fixed error, regardless of the (opcode, step,
// status) triple it's asked about.
type fakeLookup struct {
	controls []controller.ControlAsserter
	err      error
}

func (f *fakeLookup) Lookup(opcode, step, status base.Byte) ([]controller.ControlAsserter, error) {
	return f.controls, f.err
}

func newTestController(root *fakeRoot) (*controller.Controller, *status.Register, *control.Control, *fakeWordSource) {
	dataBus := bus.New[base.Byte]("data", root, root)
	statusBus := bus.New[base.Byte]("status_bus", root, root)
	statusReg := status.New("status", root, root, statusBus)
	root.RegisterChild(statusReg)
	irqLine := control.NewLatched("irq", root, root, base.PhaseProcess)
	root.RegisterChild(irqLine)
	pc := &fakeWordSource{value: 0x8000}
	c := controller.New("controller", root, root, dataBus, irqLine, statusReg.InterruptDisable(), pc)
	root.RegisterChild(c)
	return c, statusReg, irqLine, pc
}

func TestController_LoadProgramRejectsNil(t *testing.T) {
	root := newFakeRoot()
	c, _, _, _ := newTestController(root)

	err := c.LoadProgram(nil)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, errors.Is(err, errors.NoMicrocodeProgram))
}

func TestController_TickControlPanicsWithoutProgram(t *testing.T) {
	root := newFakeRoot()
	c, _, _, _ := newTestController(root)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic ticking Control phase without a loaded program")
		}
	}()
	root.phase = base.PhaseControl
	c.TickControl()
}

func TestController_TickControlAssertsLookedUpControls(t *testing.T) {
	root := newFakeRoot()
	c, _, _, _ := newTestController(root)

	asserted := false
	fake := &fakeTarget{onAssert: func() { asserted = true }}
	test.ExpectSuccess(t, c.LoadProgram(&fakeLookup{controls: []controller.ControlAsserter{fake}}))

	root.phase = base.PhaseControl
	c.TickControl()

	test.ExpectSuccess(t, asserted)
}

func TestController_TickControlPanicsOnLookupError(t *testing.T) {
	root := newFakeRoot()
	c, _, _, _ := newTestController(root)
	test.ExpectSuccess(t, c.LoadProgram(&fakeLookup{err: errors.Errorf(errors.UnknownControlPath, "bogus")}))

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on lookup error")
		}
	}()
	root.phase = base.PhaseControl
	c.TickControl()
}

func TestController_InstructionStartLatchesIPCFromPC(t *testing.T) {
	root := newFakeRoot()
	c, _, _, pc := newTestController(root)
	test.ExpectSuccess(t, c.LoadProgram(&fakeLookup{}))
	pc.value = 0x1234

	tick(root, func() { c.InstructionStart().Assert() })

	test.ExpectEquality(t, base.Word(0x1234), c.IPC().Value())
}

func TestController_SC_IncrementsAndResets(t *testing.T) {
	root := newFakeRoot()
	c, _, _, _ := newTestController(root)
	test.ExpectSuccess(t, c.LoadProgram(&fakeLookup{}))

	tick(root, func() { c.SC().Increment().Assert() })
	test.ExpectEquality(t, base.Byte(1), c.SC().Value())

	tick(root, func() { c.SC().Reset().Assert() })
	test.ExpectEquality(t, base.Byte(0), c.SC().Value())
}

func TestController_StatusEncoderDefaultsToZero(t *testing.T) {
	root := newFakeRoot()
	c, _, _, _ := newTestController(root)
	test.ExpectSuccess(t, c.LoadProgram(&fakeLookup{controls: nil}))

	// No SetStatusEncoder call: TickControl must not panic, implying
	// statusByte() defaulted to zero rather than calling a nil func.
	root.phase = base.PhaseControl
	c.TickControl()
}

func TestController_SetStatusEncoderIsUsed(t *testing.T) {
	root := newFakeRoot()
	c, _, _, _ := newTestController(root)
	var gotStatus base.Byte = 0xFF
	capturing := &capturingLookup{onLookup: func(opcode, step, status base.Byte) {
		gotStatus = status
	}}
	test.ExpectSuccess(t, c.LoadProgram(capturing))
	c.SetStatusEncoder(func() base.Byte { return 0x42 })

	root.phase = base.PhaseControl
	c.TickControl()

	test.ExpectEquality(t, base.Byte(0x42), gotStatus)
}

type capturingLookup struct {
	onLookup func(opcode, step, status base.Byte)
}

func (c *capturingLookup) Lookup(opcode, step, status base.Byte) ([]controller.ControlAsserter, error) {
	c.onLookup(opcode, step, status)
	return nil, nil
}

type fakeTarget struct {
	onAssert func()
}

func (f *fakeTarget) Assert() {
	f.onAssert()
}
