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
	"github.com/davecarr1024/irata2/microcode/program"
	"github.com/davecarr1024/irata2/test"
)

func newTestStatusEncoder() encoder.StatusEncoder {
	return encoder.NewStatusEncoder([]program.StatusBitDefinition{
		{Name: "carry", Bit: 0},
		{Name: "zero", Bit: 1},
		{Name: "negative", Bit: 7},
	})
}

func TestStatusEncoder_DecodeRoundTrip(t *testing.T) {
	e := newTestStatusEncoder()
	decoded := e.Decode(1<<0 | 1<<7)
	test.ExpectEquality(t, map[string]bool{"carry": true, "zero": false, "negative": true}, decoded)
}

func TestStatusEncoder_ExpandPartialFixesNamedBits(t *testing.T) {
	e := newTestStatusEncoder()
	expanded := e.ExpandPartial(map[string]bool{"carry": true})

	// zero and negative are unspecified: 4 combinations, all with carry set.
	test.ExpectEquality(t, 4, len(expanded))
	for _, v := range expanded {
		test.ExpectSuccess(t, v&1 != 0)
	}
}

func TestStatusEncoder_ExpandPartialFullySpecifiedIsSingleValue(t *testing.T) {
	e := newTestStatusEncoder()
	expanded := e.ExpandPartial(map[string]bool{"carry": true, "zero": false, "negative": true})
	test.ExpectEquality(t, []uint8{1<<0 | 1<<7}, expanded)
}

func TestStatusEncoder_ExpandPartialUnknownBitPanics(t *testing.T) {
	e := newTestStatusEncoder()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for unknown status bit name")
		}
		err, ok := r.(error)
		test.ExpectSuccess(t, ok)
		test.ExpectSuccess(t, errors.Is(err, errors.UnknownStatusBit))
	}()
	e.ExpandPartial(map[string]bool{"bogus": true})
}

func TestStatusEncoder_NewPanicsOnBitOutOfRange(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for status bit index out of range")
		}
		err, ok := r.(error)
		test.ExpectSuccess(t, ok)
		test.ExpectSuccess(t, errors.Is(err, errors.StatusBitOutOfRange))
	}()
	encoder.NewStatusEncoder([]program.StatusBitDefinition{{Name: "bad", Bit: 8}})
}

func TestStatusEncoder_EmptyBitsDecodesOnlyZero(t *testing.T) {
	e := encoder.NewStatusEncoder(nil)
	test.ExpectEquality(t, map[string]bool{}, e.Decode(0))
	test.ExpectEquality(t, []uint8{0}, e.ExpandPartial(nil))
}

func TestStatusEncoder_BitsAccessorPreservesInputOrder(t *testing.T) {
	e := newTestStatusEncoder()
	names := make([]string, len(e.Bits()))
	for i, b := range e.Bits() {
		names[i] = b.Name
	}
	test.ExpectEquality(t, []string{"carry", "zero", "negative"}, names)
}
