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

package encoder

import (
	"sort"

	"github.com/davecarr1024/irata2/errors"
	"github.com/davecarr1024/irata2/microcode/ir"
)

// ControlEncoder assigns every control path in the CPU's tree a fixed bit
// position in a 64-bit control word, sorted for determinism across
// recompiles.
type ControlEncoder struct {
	controlPaths []string
	indexByPath  map[string]int
}

// NewControlEncoder builds a ControlEncoder from every control path the CPU
// exposes. It errors if there are more than 64, since a control word is a
// uint64.
func NewControlEncoder(controlPaths []string) ControlEncoder {
	paths := append([]string(nil), controlPaths...)
	sort.Strings(paths)
	if len(paths) > 64 {
		panic(errors.Errorf(errors.ControlCountOverflow))
	}
	indexByPath := make(map[string]int, len(paths))
	for i, path := range paths {
		indexByPath[path] = i
	}
	return ControlEncoder{controlPaths: paths, indexByPath: indexByPath}
}

// ControlPaths returns the encoder's sorted control path list, index-aligned
// with the bit positions used by Encode/Decode.
func (e ControlEncoder) ControlPaths() []string { return e.controlPaths }

// Encode packs a step's asserted controls into a control word.
func (e ControlEncoder) Encode(controls []ir.ControlInfo) uint64 {
	var word uint64
	for _, control := range controls {
		index, ok := e.indexByPath[control.Path]
		if !ok {
			panic(errors.Errorf(errors.UnknownControlPath, control.Path))
		}
		word |= 1 << uint(index)
	}
	return word
}

// Decode expands a control word back into the control paths it asserts.
func (e ControlEncoder) Decode(word uint64) []string {
	var controls []string
	for i, path := range e.controlPaths {
		if word&(1<<uint(i)) != 0 {
			controls = append(controls, path)
		}
	}
	return controls
}
