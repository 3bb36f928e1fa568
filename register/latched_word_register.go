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
	"github.com/davecarr1024/irata2/component"
	"github.com/davecarr1024/irata2/control"
)

// WordSource is anything a LatchedWordRegister can capture a snapshot from.
type WordSource interface {
	Value() base.Word
}

// LatchedWordRegister captures a snapshot of a WordSource's value when its
// latch control is asserted during Process phase. It is used to build the
// instruction-pointer cache (IPC): latched from the program counter at
// instruction_start, before PC itself advances, even though both updates
// happen in the same Process phase.
type LatchedWordRegister struct {
	*component.Base
	latchControl *control.Control
	source       WordSource
	value        base.Word
}

// NewLatchedWordRegister creates a latched word register named name hung off
// parent, snapshotting source.
func NewLatchedWordRegister(name string, parent component.Component, phaseSrc component.PhaseSource, source WordSource) *LatchedWordRegister {
	r := &LatchedWordRegister{
		Base:   component.NewChildBase(name, parent, phaseSrc),
		source: source,
	}
	r.latchControl = control.NewAutoReset("latch", r, phaseSrc, base.PhaseProcess)
	r.RegisterChild(r.latchControl)
	return r
}

// Value returns the last-latched value.
func (r *LatchedWordRegister) Value() base.Word {
	return r.value
}

// SetValue overwrites the latched value directly, bypassing the latch
// control. Used to initialize or restore state outside of normal ticking.
func (r *LatchedWordRegister) SetValue(v base.Word) {
	r.value = v
}

// Latch returns the latch control.
func (r *LatchedWordRegister) Latch() *control.Control {
	return r.latchControl
}

// TickProcess propagates to children, then captures source's value if the
// latch control is asserted.
func (r *LatchedWordRegister) TickProcess() {
	r.Base.TickProcess()
	if r.latchControl.Asserted() {
		r.value = r.source.Value()
	}
}
