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

// Package debugsymbols loads the JSON side-car file an assembler would
// emit alongside a cartridge: source-line attribution for every ROM
// address, used by the CLI's --debug flag to report where execution was
// when a run crashed or timed out. Parsing uses the standard library's
// encoding/json, matching the project's own choice not to add a
// third-party JSON dependency for a format this small.
package debugsymbols

import (
	"encoding/json"
	"os"

	"github.com/davecarr1024/irata2/base"
	"github.com/davecarr1024/irata2/errors"
)

// SourceLocation attributes a ROM address to a line in the original source.
type SourceLocation struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
	Text   string `json:"text"`
}

// DebugRecord ties one ROM offset to a SourceLocation.
type DebugRecord struct {
	Address   base.Word      `json:"address"`
	ROMOffset int             `json:"rom_offset"`
	Location  SourceLocation  `json:"location"`
}

// DebugSymbols is the full side-car document: cartridge metadata, the set
// of source files it was assembled from, a named-symbol table, and the
// per-address source attribution.
type DebugSymbols struct {
	Version          int                       `json:"version"`
	Entry            base.Word                 `json:"entry"`
	ROMSize          int                       `json:"rom_size"`
	CartridgeVersion int                       `json:"cartridge_version"`
	SourceRoot       string                    `json:"source_root"`
	SourceFiles      []string                  `json:"source_files"`
	Symbols          map[string]base.Word      `json:"symbols"`
	PCToSource       map[string]SourceLocation `json:"pc_to_source"`
	Records          []DebugRecord             `json:"records"`
}

// Load reads path and unmarshals it as a DebugSymbols document.
func Load(path string) (*DebugSymbols, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var ds DebugSymbols
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, errors.Errorf(errors.DebugSymbolsMalformed, err)
	}
	return &ds, nil
}

// Lookup returns the source location attributed to address, or nil if none
// is recorded. pc_to_source is keyed by the address's canonical hex string
// (base.Word.String) to survive JSON's requirement that map keys be
// strings.
func (d *DebugSymbols) Lookup(address base.Word) *SourceLocation {
	if loc, ok := d.PCToSource[address.String()]; ok {
		return &loc
	}
	return nil
}
