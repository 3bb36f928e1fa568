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
	"github.com/davecarr1024/irata2/bus"
	"github.com/davecarr1024/irata2/component"
	"github.com/davecarr1024/irata2/control"
	"github.com/davecarr1024/irata2/errors"
)

// Memory is the bus-connected address space: a MemoryAddressRegister
// driving the address bus, a set of non-overlapping regions mapping RAM/ROM
// modules into it, and read/write controls that move a byte between the
// data bus and whatever region MAR currently points at.
type Memory struct {
	*component.Base
	mar          *MemoryAddressRegister
	regions      []*Region
	dataBus      *bus.Bus[base.Byte]
	readControl  *control.Control
	writeControl *control.Control
}

// New creates a memory address space named name hung off parent, on
// dataBus/addressBus, with the given regions. It errors if any two regions
// overlap.
func New(name string, parent component.Component, phaseSrc component.PhaseSource, dataBus *bus.Bus[base.Byte], addressBus *bus.Bus[base.Word], regions []*Region) (*Memory, error) {
	for i := 0; i < len(regions); i++ {
		for j := i + 1; j < len(regions); j++ {
			if regions[i].Overlaps(regions[j]) {
				return nil, errors.Errorf(errors.RegionOverlap, regions[i].Name(), regions[j].Name())
			}
		}
	}

	m := &Memory{
		Base:    component.NewChildBase(name, parent, phaseSrc),
		regions: regions,
		dataBus: dataBus,
	}
	m.mar = NewMAR("mar", m, phaseSrc, addressBus, dataBus)
	m.readControl = control.NewAutoReset("read", m, phaseSrc, base.PhaseRead)
	m.writeControl = control.NewAutoReset("write", m, phaseSrc, base.PhaseWrite)
	m.RegisterChild(m.mar)
	m.RegisterChild(m.readControl)
	m.RegisterChild(m.writeControl)
	return m, nil
}

// MAR returns the memory address register.
func (m *Memory) MAR() *MemoryAddressRegister { return m.mar }

// Read returns the read control: asserted during Control phase, it stores
// the data bus's value at MAR's address during Read phase.
func (m *Memory) Read() *control.Control { return m.readControl }

// Write returns the write control: asserted during Control phase, it drives
// the byte at MAR's address onto the data bus during Write phase.
func (m *Memory) Write() *control.Control { return m.writeControl }

func (m *Memory) findRegion(address base.Word) *Region {
	for _, r := range m.regions {
		if r.Contains(address) {
			return r
		}
	}
	return nil
}

// ReadAt returns the byte at address. Unmapped addresses read as 0xFF.
func (m *Memory) ReadAt(address base.Word) base.Byte {
	r := m.findRegion(address)
	if r == nil {
		return 0xFF
	}
	return r.Read(address)
}

// WriteAt stores value at address. It errors if address is unmapped or
// maps to a read-only region.
func (m *Memory) WriteAt(address base.Word, value base.Byte) error {
	r := m.findRegion(address)
	if r == nil {
		return errors.Errorf(errors.UnmappedWrite, address.String())
	}
	return r.Write(address, value)
}

// TickWrite drives the byte at MAR's address onto the data bus if the
// write control is asserted, the same "write = drive my value onto the
// bus" convention every bus-connected component follows.
func (m *Memory) TickWrite() {
	m.Base.TickWrite()
	if m.writeControl.Asserted() {
		m.dataBus.Write(m.ReadAt(m.mar.Value()), m.Path())
	}
}

// TickRead stores the data bus's value at MAR's address if the read
// control is asserted. It panics if the write fails (unmapped address or
// ROM), the same way an out-of-phase bus access panics: a microcode
// program that asserts memory.read against an invalid address is a
// programming error, not a recoverable runtime condition.
func (m *Memory) TickRead() {
	m.Base.TickRead()
	if m.readControl.Asserted() {
		if err := m.WriteAt(m.mar.Value(), m.dataBus.Read(m.Path())); err != nil {
			panic(err)
		}
	}
}
