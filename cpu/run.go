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

// RunResult reports why a run loop stopped.
type RunResult struct {
	// Halted is true if the halt control was asserted.
	Halted bool
	// Crashed is true if the crash control was asserted.
	Crashed bool
	// Cycles is the number of ticks executed by this call.
	Cycles uint64
}

// RunUntilHalt ticks the CPU until it halts or crashes, with no cycle
// budget. Callers that need a bound (e.g. the CLI's --max-cycles) should
// use Run instead.
func (c *CPU) RunUntilHalt() RunResult {
	var ticked uint64
	for !c.Halted() {
		c.Tick()
		ticked++
	}
	return RunResult{Halted: c.halted, Crashed: c.crashed, Cycles: ticked}
}

// Run ticks the CPU until it halts, crashes, or maxCycles ticks have run,
// whichever comes first. If the budget is exhausted first, both Halted and
// Crashed are false on the returned result, signalling a timeout.
func (c *CPU) Run(maxCycles uint64) RunResult {
	var ticked uint64
	for !c.Halted() && ticked < maxCycles {
		c.Tick()
		ticked++
	}
	return RunResult{Halted: c.halted, Crashed: c.crashed, Cycles: ticked}
}
