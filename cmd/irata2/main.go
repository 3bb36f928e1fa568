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

// Command irata2 loads a cartridge, assembles a CPU over it, and runs it
// until halt, crash, or a cycle budget is exhausted. It takes its
// configuration entirely from flags and a positional cartridge path; there
// is no config file.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/davecarr1024/irata2/base"
	"github.com/davecarr1024/irata2/cartridge"
	"github.com/davecarr1024/irata2/cpu"
	"github.com/davecarr1024/irata2/debugsymbols"
	"github.com/davecarr1024/irata2/debugtools"
	"github.com/davecarr1024/irata2/isa"
	"github.com/davecarr1024/irata2/memory"
)

// Exit codes, per the CLI's documented contract: 0 for an expected
// termination, 2 for an unexpected one, 4 for a cycle-budget timeout.
const (
	exitExpected   = 0
	exitUnexpected = 2
	exitTimeout    = 4
)

// ramSize is the fixed size of the RAM region mapped at address 0. The
// cartridge ROM is mapped from 0x8000 up, sized to the cartridge's ROM
// padded to a power of two.
const ramSize = 0x8000

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr *os.File) int {
	fs := flag.NewFlagSet("irata2", flag.ContinueOnError)
	fs.SetOutput(stderr)
	maxCycles := fs.Uint64("max-cycles", 0, "stop after N cycles and report a timeout (0 disables the budget)")
	expectCrash := fs.Bool("expect-crash", false, "invert the exit-code meaning of halt vs. crash")
	debugPath := fs.String("debug", "", "load a debug-symbols JSON file and enable trace buffering")
	traceDepth := fs.Int("trace-depth", 0, "trace buffer depth; implies --debug's default of 16 unless set explicitly")
	graphPath := fs.String("graph", "", "dump the component tree as a Graphviz dot file and exit")

	if err := fs.Parse(args); err != nil {
		return exitUnexpected
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "usage: irata2 [flags] <cartridge>")
		return exitUnexpected
	}
	cartPath := fs.Arg(0)

	cart, err := cartridge.Load(cartPath)
	if err != nil {
		fmt.Fprintf(stderr, "irata2: %v\n", err)
		return exitUnexpected
	}

	var ds *debugsymbols.DebugSymbols
	if *debugPath != "" {
		ds, err = debugsymbols.Load(*debugPath)
		if err != nil {
			fmt.Fprintf(stderr, "irata2: %v\n", err)
			return exitUnexpected
		}
	}

	romRegion, err := newROMRegion(cart.ROM)
	if err != nil {
		fmt.Fprintf(stderr, "irata2: %v\n", err)
		return exitUnexpected
	}
	ramRegion, err := memory.NewRegion("ram", 0, memory.NewRam(ramSize, 0))
	if err != nil {
		fmt.Fprintf(stderr, "irata2: %v\n", err)
		return exitUnexpected
	}

	c, err := cpu.New([]*memory.Region{ramRegion, romRegion})
	if err != nil {
		fmt.Fprintf(stderr, "irata2: %v\n", err)
		return exitUnexpected
	}

	if *graphPath != "" {
		f, err := os.Create(*graphPath)
		if err != nil {
			fmt.Fprintf(stderr, "irata2: %v\n", err)
			return exitUnexpected
		}
		defer f.Close()
		debugtools.DumpComponentTree(f, c)
		return exitExpected
	}

	prog := isa.Compile()
	table, err := cpu.NewInstructionMemory(c, prog)
	if err != nil {
		fmt.Fprintf(stderr, "irata2: %v\n", err)
		return exitUnexpected
	}
	if err := c.LoadProgram(table); err != nil {
		fmt.Fprintf(stderr, "irata2: %v\n", err)
		return exitUnexpected
	}

	entry := cart.Header.Entry
	if entry == 0 {
		entry = cartridge.DefaultEntry
	}
	c.Reset(entry)

	if ds != nil || *traceDepth > 0 {
		depth := *traceDepth
		if depth <= 0 {
			depth = 16 // default depth when --debug enables tracing but --trace-depth wasn't given
		}
		c.Trace().Configure(depth)
	}

	result, panicMsg := runWithRecover(c, *maxCycles)

	halted := result.Halted
	crashed := result.Crashed
	timedOut := !halted && !crashed && panicMsg == ""

	expectedOutcome := halted
	if *expectCrash {
		expectedOutcome = crashed
	}

	logLine := fmt.Sprintf("irata2: %d cycles, halted=%v crashed=%v", result.Cycles, halted, crashed)
	if panicMsg != "" {
		logLine += fmt.Sprintf(" (phase violation: %s)", panicMsg)
	}

	switch {
	case timedOut:
		fmt.Fprintln(stderr, logLine+" (timeout)")
		debugtools.DumpState(stderr, c, ds)
		return exitTimeout
	case expectedOutcome && panicMsg == "":
		fmt.Fprintln(stdout, logLine)
		return exitExpected
	default:
		fmt.Fprintln(stderr, logLine+" (unexpected termination)")
		debugtools.DumpState(stderr, c, ds)
		return exitUnexpected
	}
}

// newROMRegion pads rom up to the next power of two (memory.NewRegion
// requires a power-of-two module size) and maps it at 0x8000, the upper
// half of the 16-bit address space, above RAM.
func newROMRegion(rom []byte) (*memory.Region, error) {
	size := nextPowerOfTwo(len(rom))
	if size == 0 {
		size = 1
	}
	bytes := make([]base.Byte, size)
	for i, b := range rom {
		bytes[i] = base.Byte(b)
	}
	for i := len(rom); i < size; i++ {
		bytes[i] = 0xFF
	}
	return memory.NewRegion("rom", 0x8000, memory.NewRomFromBytes(bytes))
}

func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return n
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// runWithRecover runs the CPU to completion, recovering an out-of-phase
// bus/control panic (a microcode or wiring bug, per the CLI's error
// taxonomy) instead of letting it reach main's caller, so the CLI can still
// report cycle count and dump state. A non-empty panicMsg always means
// unexpected termination, regardless of --expect-crash.
func runWithRecover(c *cpu.CPU, maxCycles uint64) (result cpu.RunResult, panicMsg string) {
	defer func() {
		if r := recover(); r != nil {
			result = cpu.RunResult{Cycles: c.Cycle()}
			panicMsg = fmt.Sprint(r)
		}
	}()
	if maxCycles > 0 {
		return c.Run(maxCycles), ""
	}
	return c.RunUntilHalt(), ""
}
