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

// Package program defines the compiled microcode program format: a dense
// (opcode, step, status) keyed table of 64-bit control words, plus the
// metadata needed to decode it back into control paths and status bit
// names.
package program

// Key identifies one microcode table entry.
type Key struct {
	Opcode uint8
	Step   uint8
	Status uint8
}

// Encode packs a Key into the 24-bit integer used as the table's map key:
// opcode in bits 16-23, step in bits 8-15, status in bits 0-7.
func (k Key) Encode() uint32 {
	return uint32(k.Opcode)<<16 | uint32(k.Step)<<8 | uint32(k.Status)
}

// DecodeKey unpacks an encoded table key back into its components.
func DecodeKey(encoded uint32) Key {
	return Key{
		Opcode: uint8(encoded >> 16),
		Step:   uint8(encoded >> 8),
		Status: uint8(encoded),
	}
}

// StatusBitDefinition names one status bit contributing to the microcode
// lookup's status byte.
type StatusBitDefinition struct {
	Name string
	Bit  uint8
}

// Program is the fully compiled microcode: a table of control words keyed
// by (opcode, step, status), the ordered list of control paths each word's
// bits refer to, and the status bit layout used to compute lookup keys.
type Program struct {
	Table        map[uint32]uint64
	ControlPaths []string
	StatusBits   []StatusBitDefinition
}
