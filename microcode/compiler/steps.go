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

package compiler

import "github.com/davecarr1024/irata2/microcode/ir"

// controlsEqual reports whether two control lists name the same paths in the
// same order.
func controlsEqual(a, b []ir.ControlInfo) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Path != b[i].Path {
			return false
		}
	}
	return true
}

// stepsEqual reports whether two steps have the same stage and control list.
func stepsEqual(a, b ir.Step) bool {
	return a.Stage == b.Stage && controlsEqual(a.Controls, b.Controls)
}

// hasControl reports whether controls already contains path.
func hasControl(controls []ir.ControlInfo, path string) bool {
	for _, c := range controls {
		if c.Path == path {
			return true
		}
	}
	return false
}

// componentPath returns the substring of a dotted control path before its
// final segment, e.g. "status.zero" from "status.zero.set".
func componentPath(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '.' {
			return path[:i]
		}
	}
	return path
}

// operation returns the final dotted segment of a control path, e.g. "set"
// from "status.zero.set".
func operation(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '.' {
			return path[i+1:]
		}
	}
	return ""
}
