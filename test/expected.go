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

// Package test provides small helpers shared by unit tests across the
// simulator: terse success/failure/equality assertions in the same spirit as
// the standard library's testing package, used alongside testify's
// require/assert in tests that benefit from richer diffing.
package test

import (
	"math"
	"strings"
	"testing"

	"github.com/go-test/deep"
)

// ExpectFailure asserts that v represents failure: anything other than
// true or nil, so false and a non-nil error count, and so does a value of
// any other type.
func ExpectFailure(t *testing.T, v interface{}) {
	t.Helper()
	if isSuccess(v) {
		t.Errorf("expected failure, got %#v", v)
	}
}

// ExpectSuccess asserts that v represents success: true, a nil error, or nil.
func ExpectSuccess(t *testing.T, v interface{}) {
	t.Helper()
	if !isSuccess(v) {
		t.Errorf("expected success, got %#v", v)
	}
}

func isSuccess(v interface{}) bool {
	if v == nil {
		return true
	}
	switch x := v.(type) {
	case bool:
		return x
	case error:
		return x == nil
	default:
		return false
	}
}

// ExpectEquality asserts that want and got are deeply equal, reporting a
// field-level diff (rather than a dump of both values) when they're not.
func ExpectEquality(t *testing.T, want, got interface{}) {
	t.Helper()
	if diff := deep.Equal(want, got); diff != nil {
		t.Errorf("unexpected difference:\n%s", strings.Join(diff, "\n"))
	}
}

// ExpectInequality asserts that want and got are not deeply equal.
func ExpectInequality(t *testing.T, want, got interface{}) {
	t.Helper()
	if deep.Equal(want, got) == nil {
		t.Errorf("expected inequality, but %#v == %#v", want, got)
	}
}

// ExpectApproximate asserts that want and got are within tolerance of each
// other, for the common case of comparing cycle timings or floating point
// derived quantities.
func ExpectApproximate(t *testing.T, want, got, tolerance float64) {
	t.Helper()
	if math.Abs(want-got) > tolerance {
		t.Errorf("expected %v to be within %v of %v", got, tolerance, want)
	}
}
