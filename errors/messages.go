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

package errors

// error message templates, grouped by subsystem
const (
	// phase discipline
	ControlOutsidePhase = "control error: %s asserted/cleared outside Control phase (%s)"
	ReadOutsidePhase     = "control error: %s read outside its bound phase (%s)"

	// buses
	BusMultipleWriters = "bus error: multiple writers in one tick: %s"
	BusReadWithoutWrite = "bus error: read without writer in one tick: %s"
	BusWriteOutsidePhase = "bus error: write outside Write phase: %s"
	BusReadOutsidePhase  = "bus error: read outside Read phase: %s"

	// microcode compiler
	MicrocodeError          = "microcode error: %v"
	UnknownControlPath      = "microcode error: unknown control path %q"
	UnknownStatusBit        = "microcode error: unknown status bit %q"
	StatusBitOutOfRange     = "microcode error: status bit index out of range: %d"
	StageNotZero            = "microcode error: opcode %#02x variant stages must start at 0, got %d"
	StageNonMonotonic       = "microcode error: opcode %#02x stage sequence is not monotonically non-decreasing"
	StageGap                = "microcode error: opcode %#02x stage sequence has a gap"
	BusConflict             = "microcode error: opcode %#02x step %d: %s"
	ControlConflict         = "microcode error: opcode %#02x step %d: control conflict on %s"
	StatusCoverageOverlap   = "microcode error: opcode %#02x: overlapping status coverage at status %d"
	StatusCoverageIncomplete = "microcode error: opcode %#02x: incomplete status coverage (%d of %d)"
	DuplicateISAOpcode      = "microcode error: duplicate opcode %#02x in instruction set"
	UnknownISAOpcode        = "microcode error: opcode %#02x present in instruction set but absent from ISA"
	MissingISAOpcode        = "microcode error: opcode %#02x present in ISA but absent from instruction set"
	MissingSequenceControl  = "microcode error: opcode %#02x step %d missing required sequence control %s"
	StepCountOverflow       = "microcode error: opcode %#02x has more than 255 steps"
	ControlCountOverflow    = "microcode error: more than 64 distinct control paths"
	DuplicateTableEntry     = "microcode error: conflicting control words for opcode %#02x step %d status %d"

	// instruction memory
	ControlTableMismatch = "instruction memory error: control table size/order mismatch with CPU"
	StatusTableMismatch  = "instruction memory error: status bit mismatch with CPU"
	ControlWordOutOfRange = "instruction memory error: control word sets bit beyond known control paths"

	// memory subsystem
	ModuleSizeNotPowerOfTwo = "memory error: module size %d is not a power of two"
	RegionMisaligned        = "memory error: region %q offset %s is not a multiple of module size %d"
	RegionOverlap           = "memory error: regions overlap: %q and %q"
	UnmappedWrite           = "memory error: write to unmapped address %s"
	ROMWrite                = "memory error: write to read-only module at %s"
	ModuleOutOfBounds       = "memory error: access out of bounds at offset %d (size %d)"

	// cartridge / debug symbols
	CartridgeBadMagic     = "cartridge error: bad magic in cartridge header"
	CartridgeTruncated    = "cartridge error: file truncated"
	CartridgeHeaderTooSmall = "cartridge error: header size %d smaller than minimum 32"
	CartridgeUnsupportedVersion = "cartridge error: unsupported version %d, expected %d"
	DebugSymbolsMalformed = "debug symbols error: %v"

	// CPU driver
	NoMicrocodeProgram = "cpu error: no microcode program loaded"
	InvalidCPUState    = "cpu error: %s"
)
