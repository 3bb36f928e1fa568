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

// Package memory implements the address space: fixed-size RAM and ROM
// modules, non-overlapping power-of-two-sized regions that place modules at
// aligned offsets, and the memory-mapped bus endpoint driven by the memory
// address register. Reads of unmapped addresses return 0xFF, the idle data
// bus value on an open 6502-class system; writes to unmapped addresses or
// to ROM are reported as errors.
package memory

import (
	"github.com/davecarr1024/irata2/base"
	"github.com/davecarr1024/irata2/errors"
)

// Module is a fixed-size, linearly addressed block of storage.
type Module interface {
	Size() int
	Read(address base.Word) base.Byte
	Write(address base.Word, value base.Byte) error
}

// Ram is a read/write module.
type Ram struct {
	data []base.Byte
}

// NewRam creates a RAM module of size bytes, initialised to fill.
func NewRam(size int, fill base.Byte) *Ram {
	data := make([]base.Byte, size)
	for i := range data {
		data[i] = fill
	}
	return &Ram{data: data}
}

// Size returns the module's size in bytes.
func (r *Ram) Size() int {
	return len(r.data)
}

// Read returns the byte at address, or 0xFF if address is out of range.
func (r *Ram) Read(address base.Word) base.Byte {
	if int(address) >= len(r.data) {
		return 0xFF
	}
	return r.data[address]
}

// Write stores value at address. It errors if address is out of range.
func (r *Ram) Write(address base.Word, value base.Byte) error {
	if int(address) >= len(r.data) {
		return errors.Errorf(errors.ModuleOutOfBounds, int(address), len(r.data))
	}
	r.data[address] = value
	return nil
}

// Rom is a read-only module.
type Rom struct {
	data []base.Byte
}

// NewRom creates a ROM module of size bytes, initialised to fill.
func NewRom(size int, fill base.Byte) *Rom {
	data := make([]base.Byte, size)
	for i := range data {
		data[i] = fill
	}
	return &Rom{data: data}
}

// NewRomFromBytes creates a ROM module whose contents are exactly data.
func NewRomFromBytes(data []base.Byte) *Rom {
	cp := make([]base.Byte, len(data))
	copy(cp, data)
	return &Rom{data: cp}
}

// Size returns the module's size in bytes.
func (r *Rom) Size() int {
	return len(r.data)
}

// Read returns the byte at address, or 0xFF if address is out of range.
func (r *Rom) Read(address base.Word) base.Byte {
	if int(address) >= len(r.data) {
		return 0xFF
	}
	return r.data[address]
}

// Write always fails: ROM is read-only.
func (r *Rom) Write(address base.Word, value base.Byte) error {
	return errors.Errorf(errors.ROMWrite, address.String())
}
