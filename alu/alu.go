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

// Package alu implements the arithmetic-logic unit: lhs/rhs/result byte
// registers on the data bus, and a 4-bit opcode assembled from four
// microcode-asserted process controls. The opcode selects ADD (with
// carry-in and two's-complement overflow detection), SUB (borrow
// subtraction, used for CMP), INC (increment with no flag side effects),
// or no-op (opcode zero). Carry and overflow are written directly to the
// shared status register; because the ALU is ticked before the status
// register in the CPU's child order, microcode that explicitly sets or
// clears carry in the same tick overrides the ALU's computed carry-out.
package alu

import (
	"github.com/davecarr1024/irata2/base"
	"github.com/davecarr1024/irata2/bus"
	"github.com/davecarr1024/irata2/component"
	"github.com/davecarr1024/irata2/control"
	"github.com/davecarr1024/irata2/register"
	"github.com/davecarr1024/irata2/status"
)

const (
	opNone = 0x0
	opAdd  = 0x1
	opSub  = 0x2
	opInc  = 0x3
)

// ALU is the four-opcode arithmetic-logic unit.
type ALU struct {
	*component.Base
	lhs         *register.Register[base.Byte]
	rhs         *register.Register[base.Byte]
	result      *register.Register[base.Byte]
	opcodeBit0  *control.Control
	opcodeBit1  *control.Control
	opcodeBit2  *control.Control
	opcodeBit3  *control.Control
	carry       *status.Status
	overflow    *status.Status
}

// New creates an ALU named name hung off parent, on dataBus, writing flags
// to statusReg.
func New(name string, parent component.Component, phaseSrc component.PhaseSource, dataBus *bus.Bus[base.Byte], statusReg *status.Register) *ALU {
	a := &ALU{
		Base:     component.NewChildBase(name, parent, phaseSrc),
		carry:    statusReg.Carry(),
		overflow: statusReg.Overflow(),
	}
	a.lhs = register.New[base.Byte]("lhs", a, phaseSrc, dataBus)
	a.rhs = register.New[base.Byte]("rhs", a, phaseSrc, dataBus)
	a.result = register.New[base.Byte]("result", a, phaseSrc, dataBus)
	a.opcodeBit0 = control.NewAutoReset("opcode_bit_0", a, phaseSrc, base.PhaseProcess)
	a.opcodeBit1 = control.NewAutoReset("opcode_bit_1", a, phaseSrc, base.PhaseProcess)
	a.opcodeBit2 = control.NewAutoReset("opcode_bit_2", a, phaseSrc, base.PhaseProcess)
	a.opcodeBit3 = control.NewAutoReset("opcode_bit_3", a, phaseSrc, base.PhaseProcess)
	a.RegisterChild(a.lhs)
	a.RegisterChild(a.rhs)
	a.RegisterChild(a.result)
	a.RegisterChild(a.opcodeBit0)
	a.RegisterChild(a.opcodeBit1)
	a.RegisterChild(a.opcodeBit2)
	a.RegisterChild(a.opcodeBit3)
	return a
}

// LHS returns the left-hand operand register.
func (a *ALU) LHS() *register.Register[base.Byte] { return a.lhs }

// RHS returns the right-hand operand register.
func (a *ALU) RHS() *register.Register[base.Byte] { return a.rhs }

// Result returns the result register.
func (a *ALU) Result() *register.Register[base.Byte] { return a.result }

// OpcodeBit0 returns the opcode's least significant bit control.
func (a *ALU) OpcodeBit0() *control.Control { return a.opcodeBit0 }

// OpcodeBit1 returns the opcode's bit-1 control.
func (a *ALU) OpcodeBit1() *control.Control { return a.opcodeBit1 }

// OpcodeBit2 returns the opcode's bit-2 control.
func (a *ALU) OpcodeBit2() *control.Control { return a.opcodeBit2 }

// OpcodeBit3 returns the opcode's most significant bit control.
func (a *ALU) OpcodeBit3() *control.Control { return a.opcodeBit3 }

func (a *ALU) carryIn() bool {
	return a.carry.Value()
}

func (a *ALU) setCarryOut(value bool) {
	a.carry.Set(value)
}

// TickProcess assembles the 4-bit opcode from the four opcode-bit controls
// and performs the selected operation.
func (a *ALU) TickProcess() {
	a.Base.TickProcess()

	var opcode uint8
	if a.opcodeBit0.Asserted() {
		opcode |= 1 << 0
	}
	if a.opcodeBit1.Asserted() {
		opcode |= 1 << 1
	}
	if a.opcodeBit2.Asserted() {
		opcode |= 1 << 2
	}
	if a.opcodeBit3.Asserted() {
		opcode |= 1 << 3
	}

	if opcode == opNone {
		return
	}

	lhs := uint16(a.lhs.Value())
	rhs := uint16(a.rhs.Value())

	switch opcode {
	case opAdd:
		carryIn := uint16(0)
		if a.carryIn() {
			carryIn = 1
		}
		result := lhs + rhs + carryIn
		a.result.SetValue(base.Byte(result & 0xFF))
		a.setCarryOut(result > 0xFF)

		lhsSign := lhs&0x80 != 0
		rhsSign := rhs&0x80 != 0
		resultSign := result&0x80 != 0
		a.overflow.Set(lhsSign == rhsSign && lhsSign != resultSign)

	case opSub:
		borrow := uint16(1)
		if a.carryIn() {
			borrow = 0
		}
		subtrahend := rhs + borrow
		result := lhs - subtrahend
		a.result.SetValue(base.Byte(result & 0xFF))
		a.setCarryOut(lhs >= subtrahend)

	case opInc:
		result := lhs + 1
		a.result.SetValue(base.Byte(result & 0xFF))
	}
}
