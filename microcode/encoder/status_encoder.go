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

// Package encoder turns compiled microcode IR into the dense program.Program
// format: status bits into a status byte, control paths into a bit
// position, and (opcode, step, status) triples into table keys.
package encoder

import (
	"github.com/davecarr1024/irata2/errors"
	"github.com/davecarr1024/irata2/microcode/program"
)

// StatusEncoder maps named status-register bits to fixed positions in the
// status byte fed into the microcode lookup, and expands a partial
// (named-bit-only) specification into every concrete byte value consistent
// with it.
type StatusEncoder struct {
	bits     []program.StatusBitDefinition
	bitByName map[string]uint8
}

// NewStatusEncoder builds a StatusEncoder from the CPU's status bit layout.
func NewStatusEncoder(bits []program.StatusBitDefinition) StatusEncoder {
	bitByName := make(map[string]uint8, len(bits))
	for _, bit := range bits {
		if bit.Bit >= 8 {
			panic(errors.Errorf(errors.StatusBitOutOfRange, bit.Bit))
		}
		bitByName[bit.Name] = bit.Bit
	}
	return StatusEncoder{bits: bits, bitByName: bitByName}
}

// Bits returns the encoder's status bit layout.
func (e StatusEncoder) Bits() []program.StatusBitDefinition { return e.bits }

// ExpandPartial expands a partial status specification (a subset of named
// bits with fixed values) into every status byte value consistent with it:
// every unspecified bit takes on both 0 and 1 across the returned set.
func (e StatusEncoder) ExpandPartial(partial map[string]bool) []uint8 {
	if len(e.bits) == 0 {
		if len(partial) != 0 {
			panic(errors.Errorf(errors.MicrocodeError, "status bits not configured"))
		}
		return []uint8{0}
	}

	for name := range partial {
		if _, ok := e.bitByName[name]; !ok {
			panic(errors.Errorf(errors.UnknownStatusBit, name))
		}
	}

	var base uint8
	var unspecified []uint8
	for _, bit := range e.bits {
		value, ok := partial[bit.Name]
		if !ok {
			unspecified = append(unspecified, bit.Bit)
			continue
		}
		if value {
			base |= 1 << bit.Bit
		}
	}

	permutations := 1 << len(unspecified)
	expanded := make([]uint8, 0, permutations)
	for mask := 0; mask < permutations; mask++ {
		value := base
		for i, bit := range unspecified {
			if mask&(1<<i) != 0 {
				value |= 1 << bit
			}
		}
		expanded = append(expanded, value)
	}
	return expanded
}

// Decode expands a concrete status byte back into its named bit values.
func (e StatusEncoder) Decode(status uint8) map[string]bool {
	if len(e.bits) == 0 {
		if status != 0 {
			panic(errors.Errorf(errors.MicrocodeError, "status bits not configured"))
		}
		return map[string]bool{}
	}
	decoded := make(map[string]bool, len(e.bits))
	for _, bit := range e.bits {
		decoded[bit.Name] = status&(1<<bit.Bit) != 0
	}
	return decoded
}
