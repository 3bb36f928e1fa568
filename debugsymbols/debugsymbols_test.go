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

package debugsymbols_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/davecarr1024/irata2/base"
	"github.com/davecarr1024/irata2/debugsymbols"
	"github.com/davecarr1024/irata2/errors"
	"github.com/davecarr1024/irata2/test"
)

const sampleJSON = `{
	"version": 1,
	"entry": 32768,
	"rom_size": 16,
	"cartridge_version": 1,
	"source_root": "src",
	"source_files": ["main.asm"],
	"symbols": {"start": 32768},
	"pc_to_source": {
		"0x8000": {"file": "main.asm", "line": 1, "column": 1, "text": "lda #5"}
	},
	"records": [
		{"address": 32768, "rom_offset": 0, "location": {"file": "main.asm", "line": 1, "column": 1, "text": "lda #5"}}
	]
}`

func writeTemp(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "debug.json")
	test.ExpectSuccess(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestDebugSymbols_Load(t *testing.T) {
	path := writeTemp(t, sampleJSON)

	ds, err := debugsymbols.Load(path)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, 1, ds.Version)
	test.ExpectEquality(t, base.Word(0x8000), ds.Entry)
	test.ExpectEquality(t, 16, ds.ROMSize)
	test.ExpectEquality(t, []string{"main.asm"}, ds.SourceFiles)
	test.ExpectEquality(t, base.Word(0x8000), ds.Symbols["start"])
	test.ExpectEquality(t, 1, len(ds.Records))
}

func TestDebugSymbols_LoadMissingFile(t *testing.T) {
	_, err := debugsymbols.Load(filepath.Join(t.TempDir(), "nope.json"))
	test.ExpectFailure(t, err)
}

func TestDebugSymbols_LoadMalformed(t *testing.T) {
	path := writeTemp(t, "{not valid json")

	_, err := debugsymbols.Load(path)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, errors.Is(err, errors.DebugSymbolsMalformed))
}

func TestDebugSymbols_Lookup(t *testing.T) {
	path := writeTemp(t, sampleJSON)
	ds, err := debugsymbols.Load(path)
	test.ExpectSuccess(t, err)

	loc := ds.Lookup(base.Word(0x8000))
	if loc == nil {
		t.Fatal("expected a source location for 0x8000")
	}
	test.ExpectEquality(t, "main.asm", loc.File)
	test.ExpectEquality(t, 1, loc.Line)

	test.ExpectSuccess(t, ds.Lookup(base.Word(0x9000)) == nil)
}
