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

package compiler

import "github.com/davecarr1024/irata2/microcode/ir"

// StepMergingOptimizer merges adjacent same-stage steps when the first's
// controls all settle in an earlier phase than the second's controls begin
// in: merging same-phase controls from two different steps would change
// which tick they fire on, so that case is left alone.
type StepMergingOptimizer struct{}

func (StepMergingOptimizer) Run(instructionSet *ir.InstructionSet) {
	instructionSet.FetchPreamble = mergeSteps(instructionSet.FetchPreamble)
	for i := range instructionSet.Instructions {
		instruction := &instructionSet.Instructions[i]
		for j := range instruction.Variants {
			instruction.Variants[j].Steps = mergeSteps(instruction.Variants[j].Steps)
		}
	}
}

func maxPhase(step ir.Step) int {
	if len(step.Controls) == 0 {
		return -1
	}
	max := -1
	for _, c := range step.Controls {
		if int(c.Phase) > max {
			max = int(c.Phase)
		}
	}
	return max
}

func minPhase(step ir.Step) int {
	if len(step.Controls) == 0 {
		return 1 << 30
	}
	min := 1 << 30
	for _, c := range step.Controls {
		if int(c.Phase) < min {
			min = int(c.Phase)
		}
	}
	return min
}

// precedes reports whether a can be folded into the same tick as b: empty
// steps fold freely, and otherwise a's latest phase must strictly precede
// b's earliest phase.
func precedes(a, b ir.Step) bool {
	if len(a.Controls) == 0 {
		return true
	}
	if len(b.Controls) == 0 {
		return false
	}
	return maxPhase(a) < minPhase(b)
}

func canMerge(a, b ir.Step) bool {
	return a.Stage == b.Stage && precedes(a, b)
}

func mergeInto(a *ir.Step, b ir.Step) {
	for _, control := range b.Controls {
		if !hasControl(a.Controls, control.Path) {
			a.Controls = append(a.Controls, control)
		}
	}
}

func mergeSteps(steps []ir.Step) []ir.Step {
	if len(steps) < 2 {
		return steps
	}
	merged := make([]ir.Step, 0, len(steps))
	merged = append(merged, steps[0])
	for i := 1; i < len(steps); i++ {
		last := &merged[len(merged)-1]
		if canMerge(*last, steps[i]) {
			mergeInto(last, steps[i])
		} else {
			merged = append(merged, steps[i])
		}
	}
	return merged
}
