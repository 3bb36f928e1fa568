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

package memory

import (
	"github.com/davecarr1024/irata2/base"
	"github.com/davecarr1024/irata2/errors"
)

func isPowerOfTwo(n int) bool {
	return n != 0 && n&(n-1) == 0
}

// Region places a Module at a fixed, aligned offset in the address space.
// The module's size must be a power of two and the offset must be a
// multiple of that size, the same alignment rule a real address decoder
// enforces with a fixed number of high-order address lines.
type Region struct {
	name   string
	offset base.Word
	module Module
}

// NewRegion creates a region named name, placing module at offset. It
// returns an error if module's size is not a power of two or offset is not
// a multiple of that size.
func NewRegion(name string, offset base.Word, module Module) (*Region, error) {
	size := module.Size()
	if !isPowerOfTwo(size) {
		return nil, errors.Errorf(errors.ModuleSizeNotPowerOfTwo, size)
	}
	if int(offset)%size != 0 {
		return nil, errors.Errorf(errors.RegionMisaligned, name, offset.String(), size)
	}
	return &Region{name: name, offset: offset, module: module}, nil
}

// Name returns the region's name.
func (r *Region) Name() string {
	return r.name
}

// Offset returns the region's base address.
func (r *Region) Offset() base.Word {
	return r.offset
}

// Size returns the region's size in bytes.
func (r *Region) Size() int {
	return r.module.Size()
}

// Contains reports whether address falls within this region.
func (r *Region) Contains(address base.Word) bool {
	lower := uint32(r.offset)
	upper := lower + uint32(r.Size())
	v := uint32(address)
	return v >= lower && v < upper
}

// Overlaps reports whether this region and other share any address.
func (r *Region) Overlaps(other *Region) bool {
	lower := uint32(r.offset)
	upper := lower + uint32(r.Size())
	otherLower := uint32(other.offset)
	otherUpper := otherLower + uint32(other.Size())
	return lower < otherUpper && otherLower < upper
}

func (r *Region) translate(address base.Word) base.Word {
	return base.Word(uint32(address) - uint32(r.offset))
}

// Read returns the byte at address, which must be within this region.
func (r *Region) Read(address base.Word) base.Byte {
	return r.module.Read(r.translate(address))
}

// Write stores value at address, which must be within this region.
func (r *Region) Write(address base.Word, value base.Byte) error {
	return r.module.Write(r.translate(address), value)
}
