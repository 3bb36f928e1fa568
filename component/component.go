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

// Package component defines the base tree node that every simulator part --
// buses, controls, registers, the ALU, memory, the controller, and the CPU
// itself -- is built from. It is deliberately small: a stable dotted path, a
// way to ask the root what tick phase is currently active, and in-order
// propagation of the five tick hooks to registered children.
//
// The tree is built once at construction time and never mutated afterwards.
// Components do not store the phase themselves; they ask the root for it via
// PhaseSource, so that a single Tick on the CPU is reflected instantaneously
// everywhere in the tree without a separate broadcast step.
package component

import "github.com/davecarr1024/irata2/base"

// PhaseSource is implemented by the root CPU. It reports the phase the
// current Tick call has reached, or base.PhaseNone between ticks.
type PhaseSource interface {
	CurrentPhase() base.TickPhase
}

// Component is implemented by every node in the simulator tree, from the
// root CPU down to the leaf controls.
type Component interface {
	// Path is the dot-joined path from the root, e.g. "memory.mar.low.read".
	// The root's own path is the empty string.
	Path() string

	// Phase reports the tick phase currently active on the root.
	Phase() base.TickPhase

	TickControl()
	TickWrite()
	TickRead()
	TickProcess()
	TickClear()
}

// Parent is implemented by any Component with children -- in practice every
// component embedding *Base, via its promoted Children method. Used by tree
// walks (control-path indexing, debug dumps) that need to descend without
// knowing every concrete component type.
type Parent interface {
	Children() []Component
}

// Walk calls visit for root and then recursively for every descendant, in
// construction order.
func Walk(root Component, visit func(Component)) {
	visit(root)
	if p, ok := root.(Parent); ok {
		for _, child := range p.Children() {
			Walk(child, visit)
		}
	}
}

// Base implements the common plumbing of Component: path bookkeeping, phase
// lookup, and in-order child dispatch. Embed *Base in a concrete component
// type; override whichever Tick* methods need custom behaviour, and call the
// embedded Base's method explicitly from the override to propagate to
// children.
type Base struct {
	path     string
	phaseSrc PhaseSource
	children []Component
}

// NewRootBase creates the Base for the root component. phaseSrc is normally
// the root itself; because Go does not allow referring to a value before its
// own construction completes, callers typically pass a small adapter or
// finish wiring phaseSrc in a second step (see cpu.CPU).
func NewRootBase(phaseSrc PhaseSource) *Base {
	return &Base{phaseSrc: phaseSrc}
}

// NewChildBase creates the Base for a component named name hung off parent.
// phaseSrc must be the same root phase source shared by the whole tree.
func NewChildBase(name string, parent Component, phaseSrc PhaseSource) *Base {
	path := name
	if parent.Path() != "" {
		path = parent.Path() + "." + name
	}
	return &Base{path: path, phaseSrc: phaseSrc}
}

// Path returns this component's stable dotted path.
func (b *Base) Path() string {
	return b.path
}

// Phase returns the tick phase currently active on the root.
func (b *Base) Phase() base.TickPhase {
	return b.phaseSrc.CurrentPhase()
}

// RegisterChild records child as a direct child of this component, in
// construction order. It must only be called while the tree is being built.
func (b *Base) RegisterChild(child Component) {
	b.children = append(b.children, child)
}

// Children returns the registered children in insertion order.
func (b *Base) Children() []Component {
	return b.children
}

// TickControl is the default Control-phase hook: propagate to every child
// in insertion order.
func (b *Base) TickControl() {
	for _, c := range b.children {
		c.TickControl()
	}
}

// TickWrite is the default Write-phase hook: propagate to every child.
func (b *Base) TickWrite() {
	for _, c := range b.children {
		c.TickWrite()
	}
}

// TickRead is the default Read-phase hook: propagate to every child.
func (b *Base) TickRead() {
	for _, c := range b.children {
		c.TickRead()
	}
}

// TickProcess is the default Process-phase hook: propagate to every child.
func (b *Base) TickProcess() {
	for _, c := range b.children {
		c.TickProcess()
	}
}

// TickClear is the default Clear-phase hook: propagate to every child.
func (b *Base) TickClear() {
	for _, c := range b.children {
		c.TickClear()
	}
}
