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

package encoder_test

import (
	"testing"

	"github.com/davecarr1024/irata2/errors"
	"github.com/davecarr1024/irata2/microcode/encoder"
	"github.com/davecarr1024/irata2/microcode/ir"
	"github.com/davecarr1024/irata2/test"
)

func TestControlEncoder_PathsAreSorted(t *testing.T) {
	e := encoder.NewControlEncoder([]string{"pc.increment", "alu.add", "mar.reset"})
	test.ExpectEquality(t, []string{"alu.add", "mar.reset", "pc.increment"}, e.ControlPaths())
}

func TestControlEncoder_EncodeDecodeRoundTrip(t *testing.T) {
	e := encoder.NewControlEncoder([]string{"a", "b", "c"})
	word := e.Encode([]ir.ControlInfo{{Path: "a"}, {Path: "c"}})
	test.ExpectEquality(t, []string{"a", "c"}, e.Decode(word))
}

func TestControlEncoder_EncodeUnknownPathPanics(t *testing.T) {
	e := encoder.NewControlEncoder([]string{"a"})
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic encoding an unknown control path")
		}
		err, ok := r.(error)
		test.ExpectSuccess(t, ok)
		test.ExpectSuccess(t, errors.Is(err, errors.UnknownControlPath))
	}()
	e.Encode([]ir.ControlInfo{{Path: "nope"}})
}

func TestControlEncoder_MoreThan64PathsPanics(t *testing.T) {
	paths := make([]string, 65)
	for i := range paths {
		paths[i] = string(rune('a' + i))
	}
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic with more than 64 control paths")
		}
		err, ok := r.(error)
		test.ExpectSuccess(t, ok)
		test.ExpectSuccess(t, errors.Is(err, errors.ControlCountOverflow))
	}()
	encoder.NewControlEncoder(paths)
}

func TestControlEncoder_DecodeEmptyWordIsEmpty(t *testing.T) {
	e := encoder.NewControlEncoder([]string{"a", "b"})
	test.ExpectEquality(t, 0, len(e.Decode(0)))
}
