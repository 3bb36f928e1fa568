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

// Package base defines the value types and tick-phase enumeration shared by
// every layer of the simulator: the 8-bit Byte and 16-bit Word types, and the
// five-phase TickPhase ordering that the component tree, the validators and
// the optimizers all reason about.
package base

import "fmt"

// TickPhase is one of the five phases a component passes through during a
// single Tick, plus the idle None value the CPU reports between ticks.
//
// The phases are ordered: Control < Write < Read < Process < Clear. That
// ordering is load-bearing -- the microcode compiler's StepMergingOptimizer
// compares phases with <, not just ==.
type TickPhase int

const (
	// PhaseNone is reported by the CPU when no tick is in progress.
	PhaseNone TickPhase = iota
	// PhaseControl is when the controller asserts control signals from microcode.
	PhaseControl
	// PhaseWrite is when components drive values onto buses.
	PhaseWrite
	// PhaseRead is when components latch values from buses.
	PhaseRead
	// PhaseProcess is when components mutate their own internal state.
	PhaseProcess
	// PhaseClear is when auto-reset controls and bus contents are released.
	PhaseClear
)

// String returns the canonical name of the phase, used in diagnostics.
func (p TickPhase) String() string {
	switch p {
	case PhaseNone:
		return "None"
	case PhaseControl:
		return "Control"
	case PhaseWrite:
		return "Write"
	case PhaseRead:
		return "Read"
	case PhaseProcess:
		return "Process"
	case PhaseClear:
		return "Clear"
	default:
		return fmt.Sprintf("TickPhase(%d)", int(p))
	}
}

// Ordinal returns the phase's position in the Control..Clear ordering. None
// has no meaningful position and is given -1, so it never compares equal to
// a real phase and orders before all of them.
func (p TickPhase) Ordinal() int {
	if p == PhaseNone {
		return -1
	}
	return int(p)
}

// Before reports whether p strictly precedes other in phase order.
func (p TickPhase) Before(other TickPhase) bool {
	return p.Ordinal() < other.Ordinal()
}
