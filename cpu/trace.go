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

package cpu

import "github.com/davecarr1024/irata2/base"

// DebugTraceEntry is a snapshot of CPU state captured at each instruction
// boundary (every tick in which instruction_start fires), once tracing is
// enabled. InstructionAddress is the controller's IPC --
// the PC value latched at the start of the instruction currently
// executing -- not the live PC, which has usually already advanced by the
// time a Process-phase trace capture runs.
type DebugTraceEntry struct {
	Cycle              uint64
	InstructionAddress base.Word
	PC                 base.Word
	IR                 base.Byte
	SC                 base.Byte
	A                  base.Byte
	X                  base.Byte
	Status             base.Byte
}

// DebugTraceBuffer is a fixed-depth ring of the most recent DebugTraceEntry
// values, used to reconstruct the instructions leading up to a crash for
// the CLI's --debug output. It is disabled (depth 0) by default.
type DebugTraceBuffer struct {
	depth   int
	entries []DebugTraceEntry
}

// NewDebugTraceBuffer creates a disabled trace buffer.
func NewDebugTraceBuffer() *DebugTraceBuffer {
	return &DebugTraceBuffer{}
}

// Configure sets the buffer's capacity, enabling it if depth > 0. Calling
// it again resets any previously recorded entries.
func (t *DebugTraceBuffer) Configure(depth int) {
	t.depth = depth
	t.entries = nil
}

// Enabled reports whether the buffer was configured with a positive depth.
func (t *DebugTraceBuffer) Enabled() bool {
	return t.depth > 0
}

// Record appends entry, evicting the oldest entry if the buffer is full.
func (t *DebugTraceBuffer) Record(entry DebugTraceEntry) {
	if !t.Enabled() {
		return
	}
	t.entries = append(t.entries, entry)
	if len(t.entries) > t.depth {
		t.entries = t.entries[len(t.entries)-t.depth:]
	}
}

// Entries returns a copy of the currently recorded entries, oldest first.
func (t *DebugTraceBuffer) Entries() []DebugTraceEntry {
	out := make([]DebugTraceEntry, len(t.entries))
	copy(out, t.entries)
	return out
}
