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

package debugtools

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"

	"github.com/davecarr1024/irata2/cpu"
	"github.com/davecarr1024/irata2/debugsymbols"
)

// DumpState writes a spew dump of c's current register file and the last
// depth entries of its trace buffer to w, annotating each trace entry with
// the source location ds attributes to it, when ds is non-nil.
func DumpState(w io.Writer, c *cpu.CPU, ds *debugsymbols.DebugSymbols) {
	fmt.Fprintf(w, "cycle %d, halted=%v crashed=%v\n", c.Cycle(), c.Halted(), c.Crashed())
	spew.Fdump(w, struct {
		PC     string
		A      string
		X      string
		Status string
	}{
		PC:     c.PC().Value().String(),
		A:      c.A().Value().String(),
		X:      c.X().Value().String(),
		Status: fmt.Sprintf("0x%02X", uint8(statusByte(c))),
	})

	entries := c.Trace().Entries()
	if len(entries) == 0 {
		return
	}
	fmt.Fprintf(w, "trace (%d entries, oldest first):\n", len(entries))
	for _, e := range entries {
		line := fmt.Sprintf("  cycle=%d instr@%s pc=%s ir=0x%02X sc=%d a=%s x=%s status=0x%02X",
			e.Cycle, e.InstructionAddress, e.PC, e.IR, e.SC, e.A, e.X, e.Status)
		if ds != nil {
			if loc := ds.Lookup(e.InstructionAddress); loc != nil {
				line += fmt.Sprintf(" -- %s:%d:%d: %s", loc.File, loc.Line, loc.Column, loc.Text)
			}
		}
		fmt.Fprintln(w, line)
	}
}

func statusByte(c *cpu.CPU) uint8 {
	var b uint8
	for _, s := range c.Status().All() {
		if s.Value() {
			b |= 1 << s.BitIndex()
		}
	}
	return b
}
