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

package debugtools_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davecarr1024/irata2/base"
	"github.com/davecarr1024/irata2/cpu"
	"github.com/davecarr1024/irata2/debugsymbols"
	"github.com/davecarr1024/irata2/debugtools"
	"github.com/davecarr1024/irata2/isa"
	"github.com/davecarr1024/irata2/memory"
	"github.com/davecarr1024/irata2/test"
)

func newTestCPU(t *testing.T) *cpu.CPU {
	t.Helper()
	rom := make([]base.Byte, 16)
	rom[0] = base.Byte(isa.OpHLT)
	region, err := memory.NewRegion("rom", 0x8000, memory.NewRomFromBytes(rom))
	require.NoError(t, err)

	c, err := cpu.New([]*memory.Region{region})
	require.NoError(t, err)

	table, err := cpu.NewInstructionMemory(c, isa.Compile())
	require.NoError(t, err)
	require.NoError(t, c.LoadProgram(table))

	c.Reset(0x8000)
	return c
}

func TestDumpComponentTree_ProducesNonEmptyDotGraph(t *testing.T) {
	c := newTestCPU(t)
	var buf bytes.Buffer
	debugtools.DumpComponentTree(&buf, c)
	test.ExpectSuccess(t, buf.Len() > 0)
}

func TestDumpInstructionMemory_ProducesNonEmptyDotGraph(t *testing.T) {
	c := newTestCPU(t)
	table, err := cpu.NewInstructionMemory(c, isa.Compile())
	require.NoError(t, err)

	var buf bytes.Buffer
	debugtools.DumpInstructionMemory(&buf, table)
	test.ExpectSuccess(t, buf.Len() > 0)
}

func TestDumpState_WithoutDebugSymbols(t *testing.T) {
	c := newTestCPU(t)
	var buf bytes.Buffer
	debugtools.DumpState(&buf, c, nil)

	out := buf.String()
	test.ExpectSuccess(t, strings.Contains(out, "cycle"))
	test.ExpectSuccess(t, strings.Contains(out, "PC"))
}

func TestDumpState_AnnotatesTraceWithSourceLocation(t *testing.T) {
	c := newTestCPU(t)
	c.Trace().Configure(16)
	c.Run(10)

	ds := &debugsymbols.DebugSymbols{
		PCToSource: map[string]debugsymbols.SourceLocation{
			base.Word(0x8000).String(): {File: "main.asm", Line: 1, Column: 1, Text: "hlt"},
		},
	}

	var buf bytes.Buffer
	debugtools.DumpState(&buf, c, ds)

	out := buf.String()
	test.ExpectSuccess(t, strings.Contains(out, "main.asm:1:1: hlt"))
}
