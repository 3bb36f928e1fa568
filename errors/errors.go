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

// Package errors is a helper package for the plain Go language error type. We
// think of these errors as curated errors: external to this package they are
// referenced as plain errors (ie. they implement the error interface) but
// internally they carry the message template and the arguments that produced
// them, so that diagnostics printed at the simulator boundary can always be
// traced back to a specific component path, opcode or step index.
//
// The Error() implementation normalises the causal chain by dropping the
// leading ": "-separated message part when the part after it repeats it, so
// an error wrapped in a template with the same prefix prints that prefix
// once. Only the first two parts are compared; repeats further along the
// message are left as they are.
package errors

import (
	"fmt"
	"strings"
)

// Values is the type used to specify arguments for a curated error.
type Values []interface{}

// curated errors allow code to specify a predefined error and not worry too
// much about the message behind that error and how the message will be
// formatted on output.
type curated struct {
	message string
	values  Values
}

// Errorf creates a new curated error.
func Errorf(message string, values ...interface{}) error {
	return curated{
		message: message,
		values:  values,
	}
}

// Error returns the normalised error message.
//
// Implements the go language error interface.
func (er curated) Error() string {
	s := fmt.Errorf(er.message, er.values...).Error()

	p := strings.SplitN(s, ": ", 3)
	if len(p) > 1 && p[0] == p[1] {
		return strings.Join(p[1:], ": ")
	}

	return strings.Join(p, ": ")
}

// Head returns the leading part of the message. If err is a plain error
// (not curated by this package) then Error() is returned unchanged.
func Head(err error) string {
	if er, ok := err.(curated); ok {
		return er.message
	}
	return err.Error()
}

// IsAny reports whether err is curated by this package.
func IsAny(err error) bool {
	if err == nil {
		return false
	}
	_, ok := err.(curated)
	return ok
}

// Is reports whether err has the specified head.
func Is(err error, head string) bool {
	if err == nil {
		return false
	}
	if er, ok := err.(curated); ok {
		return er.message == head
	}
	return false
}

// Has reports whether msg appears anywhere in the causal chain of err.
func Has(err error, msg string) bool {
	if err == nil {
		return false
	}
	if !IsAny(err) {
		return false
	}
	if Is(err, msg) {
		return true
	}
	for _, v := range err.(curated).values {
		if e, ok := v.(curated); ok {
			if Has(e, msg) {
				return true
			}
		}
	}
	return false
}
