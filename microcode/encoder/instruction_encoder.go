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

import "github.com/davecarr1024/irata2/microcode/program"

// MakeKey builds a program.Key from an opcode, step index and status byte.
func MakeKey(opcode, step, status uint8) program.Key {
	return program.Key{Opcode: opcode, Step: step, Status: status}
}
