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

package cartridge_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/davecarr1024/irata2/base"
	"github.com/davecarr1024/irata2/cartridge"
	"github.com/davecarr1024/irata2/errors"
	"github.com/davecarr1024/irata2/test"
)

func TestCartridge_WriteParseRoundTrip(t *testing.T) {
	rom := []byte{0x01, 0x02, 0x03, 0x04}
	data := cartridge.Write(rom)

	c, err := cartridge.Parse(data)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cartridge.Version, c.Header.Version)
	test.ExpectEquality(t, uint16(cartridge.HeaderSize), c.Header.HeaderSize)
	test.ExpectEquality(t, cartridge.DefaultEntry, c.Header.Entry)
	test.ExpectEquality(t, uint32(len(rom)), c.Header.ROMSize)
	test.ExpectEquality(t, rom, c.ROM)
}

func TestCartridge_WriteWithEntryRoundTrip(t *testing.T) {
	rom := []byte{0xAA, 0xBB}
	entry := base.Word(0x9000)
	data := cartridge.WriteWithEntry(rom, entry)

	c, err := cartridge.Parse(data)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, entry, c.Header.Entry)
	test.ExpectEquality(t, rom, c.ROM)
}

func TestCartridge_LoadRoundTrip(t *testing.T) {
	rom := []byte{0x10, 0x20, 0x30}
	data := cartridge.Write(rom)

	dir := t.TempDir()
	path := filepath.Join(dir, "test.irt")
	test.ExpectSuccess(t, os.WriteFile(path, data, 0o644))

	c, err := cartridge.Load(path)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, rom, c.ROM)
}

func TestCartridge_LoadMissingFile(t *testing.T) {
	_, err := cartridge.Load(filepath.Join(t.TempDir(), "nope.irt"))
	test.ExpectFailure(t, err)
}

func TestCartridge_ParseTruncatedHeader(t *testing.T) {
	_, err := cartridge.Parse(make([]byte, cartridge.HeaderSize-1))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, errors.Is(err, errors.CartridgeTruncated))
}

func TestCartridge_ParseBadMagic(t *testing.T) {
	data := cartridge.Write([]byte{0x01})
	data[0] = 'X'
	_, err := cartridge.Parse(data)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, errors.Is(err, errors.CartridgeBadMagic))
}

func TestCartridge_ParseTruncatedROM(t *testing.T) {
	data := cartridge.Write([]byte{0x01, 0x02, 0x03})
	data = data[:len(data)-1]
	_, err := cartridge.Parse(data)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, errors.Is(err, errors.CartridgeTruncated))
}

func TestCartridge_ParseUnsupportedVersion(t *testing.T) {
	data := cartridge.Write([]byte{0x01})
	data[4] = byte(cartridge.Version + 1)
	_, err := cartridge.Parse(data)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, errors.Is(err, errors.CartridgeUnsupportedVersion))
}

func TestCartridge_ParseEmptyROM(t *testing.T) {
	data := cartridge.Write(nil)
	c, err := cartridge.Parse(data)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, uint32(0), c.Header.ROMSize)
	test.ExpectEquality(t, 0, len(c.ROM))
}
