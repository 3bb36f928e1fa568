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

// Package debugtools wires third-party introspection libraries into the
// simulator's own diagnostic surface: a Graphviz dump of the component tree
// or a compiled microcode table, and a readable dump of live CPU state for
// the CLI's --debug output and test failure messages.
package debugtools

import (
	"io"

	"github.com/bradleyjkemp/memviz"

	"github.com/davecarr1024/irata2/cpu"
)

// DumpComponentTree renders the CPU's component tree -- buses, registers,
// the ALU, memory, the controller and every control beneath them -- as a
// Graphviz dot graph. memviz walks the CPU value's fields by reflection,
// so the graph reflects the component wiring a given binary was built
// with.
func DumpComponentTree(w io.Writer, c *cpu.CPU) {
	memviz.Map(w, c)
}

// DumpInstructionMemory renders a compiled InstructionMemory's resolved
// control table as a Graphviz dot graph, useful for spotting an
// unexpectedly large or sparse microcode table during development.
func DumpInstructionMemory(w io.Writer, table *cpu.InstructionMemory) {
	memviz.Map(w, table)
}
