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

package register_test

import (
	"testing"

	"github.com/davecarr1024/irata2/base"
	"github.com/davecarr1024/irata2/bus"
	"github.com/davecarr1024/irata2/component"
	"github.com/davecarr1024/irata2/register"
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

// tick runs a single full five-phase tick over root's tree, assigning
// control asserts via the supplied function while the phase is Control --
// mirroring how cpu.CPU drives a tick in practice.
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

func TestRegister_WriteToBusThenReadBack(t *testing.T) {
	root := newFakeRoot()
	b := bus.New[base.Byte]("b", root, root)
	src := register.New[base.Byte]("src", root, root, b)
	dst := register.New[base.Byte]("dst", root, root, b)
	root.RegisterChild(src)
	root.RegisterChild(dst)
	src.SetValue(0x7A)

	tick(root, func() {
		src.Write().Assert()
		dst.Read().Assert()
	})

	test.ExpectEquality(t, base.Byte(0x7A), dst.Value())
	// The write/read controls are auto-reset, so a later tick with no
	// asserts leaves both registers' values untouched.
	tick(root, func() {})
	test.ExpectEquality(t, base.Byte(0x7A), dst.Value())
}

func TestRegister_Reset(t *testing.T) {
	root := newFakeRoot()
	b := bus.New[base.Byte]("b", root, root)
	r := register.New[base.Byte]("r", root, root, b)
	root.RegisterChild(r)
	r.SetValue(9)

	tick(root, func() {
		r.Reset().Assert()
	})

	test.ExpectEquality(t, base.Byte(0), r.Value())
}

func TestCounter_IncrementsAndWraps(t *testing.T) {
	root := newFakeRoot()
	b := bus.New[base.Byte]("b", root, root)
	c := register.NewCounter[base.Byte]("c", root, root, b)
	root.RegisterChild(c)
	c.SetValue(0xFE)

	tick(root, func() { c.Increment().Assert() })
	test.ExpectEquality(t, base.Byte(0xFF), c.Value())

	tick(root, func() { c.Increment().Assert() })
	test.ExpectEquality(t, base.Byte(0x00), c.Value())
}

func TestCounter_ResetTakesPriorityOverIncrement(t *testing.T) {
	root := newFakeRoot()
	b := bus.New[base.Byte]("b", root, root)
	c := register.NewCounter[base.Byte]("c", root, root, b)
	root.RegisterChild(c)
	c.SetValue(5)

	tick(root, func() {
		c.Reset().Assert()
		c.Increment().Assert()
	})

	test.ExpectEquality(t, base.Byte(0), c.Value())
}

func TestWordCounter_IncrementCarriesAcrossFullWord(t *testing.T) {
	root := newFakeRoot()
	b := bus.New[base.Word]("addr", root, root)
	c := register.NewCounter[base.Word]("pc", root, root, b)
	root.RegisterChild(c)
	c.SetValue(0x00FF)

	tick(root, func() { c.Increment().Assert() })
	test.ExpectEquality(t, base.Word(0x0100), c.Value())
}

func TestLocalCounter_IncrementResetAndSetValue(t *testing.T) {
	root := newFakeRoot()
	c := register.NewLocalCounter[base.Byte]("sc", root, root)
	root.RegisterChild(c)

	tick(root, func() { c.Increment().Assert() })
	test.ExpectEquality(t, base.Byte(1), c.Value())

	tick(root, func() { c.Increment().Assert() })
	test.ExpectEquality(t, base.Byte(2), c.Value())

	tick(root, func() { c.Reset().Assert() })
	test.ExpectEquality(t, base.Byte(0), c.Value())

	c.SetValue(42)
	test.ExpectEquality(t, base.Byte(42), c.Value())
}

type fakeWordSource struct {
	value base.Word
}

func (f *fakeWordSource) Value() base.Word {
	return f.value
}

func TestLatchedWordRegister_LatchesSourceOnAssert(t *testing.T) {
	root := newFakeRoot()
	src := &fakeWordSource{value: 0x1000}
	r := register.NewLatchedWordRegister("ipc", root, root, src)
	root.RegisterChild(r)

	tick(root, func() { r.Latch().Assert() })
	test.ExpectEquality(t, base.Word(0x1000), r.Value())

	// Source changes after the latch; a later tick with no latch assert
	// leaves the captured snapshot untouched.
	src.value = 0x2000
	tick(root, func() {})
	test.ExpectEquality(t, base.Word(0x1000), r.Value())

	tick(root, func() { r.Latch().Assert() })
	test.ExpectEquality(t, base.Word(0x2000), r.Value())
}

func TestLatchedWordRegister_SetValueBypassesLatch(t *testing.T) {
	root := newFakeRoot()
	src := &fakeWordSource{value: 0x1000}
	r := register.NewLatchedWordRegister("ipc", root, root, src)
	root.RegisterChild(r)

	r.SetValue(0x8000)
	test.ExpectEquality(t, base.Word(0x8000), r.Value())
}
