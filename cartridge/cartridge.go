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

// Package cartridge implements the ROM image format a cartridge file is
// loaded from: a fixed 32-byte header (magic, version, header size, reset
// entry point, ROM size, reserved padding) followed by the raw ROM bytes.
package cartridge

import (
	"encoding/binary"

	"github.com/davecarr1024/irata2/base"
	"github.com/davecarr1024/irata2/errors"
)

const (
	// HeaderSize is the minimum and default size of a cartridge header.
	HeaderSize = 32
	// Magic is the four-byte file signature every cartridge must start with.
	Magic = "IRTA"
	// Version is the only header version this package understands.
	Version uint16 = 1
	// DefaultEntry is the reset vector used when a cartridge's header
	// leaves Entry at its zero value.
	DefaultEntry base.Word = 0x8000
)

// Header is the fixed-layout preamble of a cartridge file.
type Header struct {
	Version    uint16
	HeaderSize uint16
	Entry      base.Word
	ROMSize    uint32
}

// Cartridge is a parsed cartridge file: its header plus the raw ROM bytes
// that followed it.
type Cartridge struct {
	Header Header
	ROM    []byte
}

// Parse decodes data as a cartridge file. It validates the magic, checks
// HeaderSize is at least HeaderSize bytes, and checks the file is at least
// HeaderSize+ROMSize bytes long.
func Parse(data []byte) (*Cartridge, error) {
	if len(data) < HeaderSize {
		return nil, errors.Errorf(errors.CartridgeTruncated)
	}
	if string(data[0:4]) != Magic {
		return nil, errors.Errorf(errors.CartridgeBadMagic)
	}

	version := binary.LittleEndian.Uint16(data[4:6])
	headerSize := binary.LittleEndian.Uint16(data[6:8])
	entry := binary.LittleEndian.Uint16(data[8:10])
	romSize := binary.LittleEndian.Uint32(data[10:14])

	if version != Version {
		return nil, errors.Errorf(errors.CartridgeUnsupportedVersion, version, Version)
	}
	if headerSize < HeaderSize {
		return nil, errors.Errorf(errors.CartridgeHeaderTooSmall, headerSize)
	}
	if len(data) < int(headerSize)+int(romSize) {
		return nil, errors.Errorf(errors.CartridgeTruncated)
	}

	rom := make([]byte, romSize)
	copy(rom, data[int(headerSize):int(headerSize)+int(romSize)])

	return &Cartridge{
		Header: Header{
			Version:    version,
			HeaderSize: headerSize,
			Entry:      base.Word(entry),
			ROMSize:    romSize,
		},
		ROM: rom,
	}, nil
}

// Write serializes rom into a cartridge file, always using the minimum
// HeaderSize, the current Version and DefaultEntry.
func Write(rom []byte) []byte {
	header := make([]byte, HeaderSize)
	copy(header[0:4], Magic)
	binary.LittleEndian.PutUint16(header[4:6], Version)
	binary.LittleEndian.PutUint16(header[6:8], HeaderSize)
	entry := DefaultEntry
	binary.LittleEndian.PutUint16(header[8:10], uint16(entry))
	binary.LittleEndian.PutUint32(header[10:14], uint32(len(rom)))
	// bytes 14:32 are reserved and left zero.

	out := make([]byte, 0, HeaderSize+len(rom))
	out = append(out, header...)
	out = append(out, rom...)
	return out
}

// WriteWithEntry is Write but with an explicit reset entry point rather
// than DefaultEntry.
func WriteWithEntry(rom []byte, entry base.Word) []byte {
	header := make([]byte, HeaderSize)
	copy(header[0:4], Magic)
	binary.LittleEndian.PutUint16(header[4:6], Version)
	binary.LittleEndian.PutUint16(header[6:8], HeaderSize)
	binary.LittleEndian.PutUint16(header[8:10], uint16(entry))
	binary.LittleEndian.PutUint32(header[10:14], uint32(len(rom)))

	out := make([]byte, 0, HeaderSize+len(rom))
	out = append(out, header...)
	out = append(out, rom...)
	return out
}
