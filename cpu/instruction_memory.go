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

import (
	"github.com/davecarr1024/irata2/base"
	"github.com/davecarr1024/irata2/control"
	"github.com/davecarr1024/irata2/controller"
	"github.com/davecarr1024/irata2/errors"
	"github.com/davecarr1024/irata2/microcode/program"
)

// InstructionMemory burns a compiled program.Program into a dense,
// constant-time lookup table of live control references, resolving every
// control path the program names against the CPU's actual component tree
// exactly once at construction, rather than on every Control phase.
type InstructionMemory struct {
	controls []*control.Control
	table    []uint64
}

// NewInstructionMemory resolves every control path in prog against cpu and
// sizes a dense table large enough to hold every key prog.Table names.
func NewInstructionMemory(cpu *CPU, prog program.Program) (*InstructionMemory, error) {
	controls := make([]*control.Control, len(prog.ControlPaths))
	for i, path := range prog.ControlPaths {
		ctrl, err := cpu.ResolveControl(path)
		if err != nil {
			return nil, err
		}
		controls[i] = ctrl
	}

	var maxKey uint32
	for encoded := range prog.Table {
		if encoded > maxKey {
			maxKey = encoded
		}
	}

	table := make([]uint64, maxKey+1)
	for encoded, word := range prog.Table {
		table[encoded] = word
	}

	return &InstructionMemory{controls: controls, table: table}, nil
}

// Lookup implements controller.Lookup: it returns the resolved controls
// named by the control word stored for (opcode, step, status), erroring if
// the word sets any bit beyond the known control count.
func (m *InstructionMemory) Lookup(opcode, step, status base.Byte) ([]controller.ControlAsserter, error) {
	key := program.Key{Opcode: uint8(opcode), Step: uint8(step), Status: uint8(status)}
	encoded := key.Encode()

	var word uint64
	if int(encoded) < len(m.table) {
		word = m.table[encoded]
	}

	var asserters []controller.ControlAsserter
	for bit := 0; bit < 64; bit++ {
		if word&(1<<uint(bit)) == 0 {
			continue
		}
		if bit >= len(m.controls) {
			return nil, errors.Errorf(errors.ControlWordOutOfRange)
		}
		asserters = append(asserters, m.controls[bit])
	}
	return asserters, nil
}
