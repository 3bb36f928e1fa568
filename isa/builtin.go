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

// Package isa supplies the one instruction set this repository ships: a
// small, real (if far from 6502-complete) opcode table the CLI loads by
// default. A full assembler-driven ISA table is explicitly out of scope --
// it's generated by a separate toolchain this repository only consumes the
// output of -- so this package exists to give the CLI something to run
// without inventing that toolchain.
package isa

import (
	"github.com/davecarr1024/irata2/base"
	"github.com/davecarr1024/irata2/microcode/compiler"
	"github.com/davecarr1024/irata2/microcode/ir"
	"github.com/davecarr1024/irata2/microcode/program"
)

// Opcodes, chosen as small, tightly packed values: the compiled table's key
// space is keyed opcode-major, so a sparse or large opcode value would
// force a needlessly large table.
const (
	OpNOP     byte = 0x00
	OpLDAImm  byte = 0x01
	OpLDXImm  byte = 0x02
	OpADD     byte = 0x03
	OpSTAAbs  byte = 0x04
	OpLDAAbs  byte = 0x05
	OpHLT     byte = 0x06
)

// ControlPaths is every control path the builtin instruction set's compiled
// program references. The control encoder sorts this list before assigning
// bit positions, so its order here does not set the bit layout.
func ControlPaths() []string {
	return []string{
		"pc.write",
		"memory.mar.read",
		"memory.write",
		"memory.read",
		"memory.mar.low.read",
		"memory.mar.high.read",
		"controller.ir.read",
		"pc.increment",
		"controller.instruction_start",
		"a.write",
		"a.read",
		"x.write",
		"x.read",
		"alu.lhs.read",
		"alu.rhs.read",
		"alu.opcode_bit_0",
		"alu.result.write",
		"halt",
		"controller.sc.increment",
		"controller.sc.reset",
	}
}

// StatusBits is the status register's bit layout, negative through carry,
// matching status.Register's own constants.
func StatusBits() []program.StatusBitDefinition {
	return []program.StatusBitDefinition{
		{Name: "negative", Bit: 7},
		{Name: "overflow", Bit: 6},
		{Name: "unused", Bit: 5},
		{Name: "break", Bit: 4},
		{Name: "decimal", Bit: 3},
		{Name: "interrupt_disable", Bit: 2},
		{Name: "zero", Bit: 1},
		{Name: "carry", Bit: 0},
	}
}

// Opcodes returns every opcode this instruction set defines, for use with
// the compiler's ISA coverage check.
func Opcodes() []byte {
	return []byte{OpNOP, OpLDAImm, OpLDXImm, OpADD, OpSTAAbs, OpLDAAbs, OpHLT}
}

func control(path string, phase base.TickPhase) ir.ControlInfo {
	return ir.ControlInfo{Path: path, Phase: phase, AutoReset: true}
}

// steps assigns ascending stage numbers 0..n-1 to an instruction's own
// execution steps, the numbering FetchTransformer expects before it shifts
// every stage up by one to make room for the fetch preamble.
func steps(stepControls ...[]ir.ControlInfo) []ir.Step {
	out := make([]ir.Step, len(stepControls))
	for i, controls := range stepControls {
		out[i] = ir.Step{Stage: i, Controls: controls}
	}
	return out
}

// loadImmediateSteps is the two-tick "read the byte PC points at, store it
// in dst, advance PC" sequence shared by every immediate-addressing opcode:
// it is exactly the fetch preamble's own shape, with dst.read in place of
// controller.ir.read and no instruction_start.
func loadImmediateSteps(dstReadPath string) [][]ir.ControlInfo {
	return [][]ir.ControlInfo{
		{control("pc.write", base.PhaseWrite), control("memory.mar.read", base.PhaseRead)},
		{control("memory.write", base.PhaseWrite), control(dstReadPath, base.PhaseRead), control("pc.increment", base.PhaseProcess)},
	}
}

// absoluteOperandSteps fetches a little-endian two-byte operand following
// the opcode into MAR, the same way a 6502-class machine loads an absolute
// address: low byte first, then high byte, each via the same two-tick
// immediate-fetch shape used for an 8-bit operand.
func absoluteOperandSteps() [][]ir.ControlInfo {
	low := loadImmediateSteps("memory.mar.low.read")
	high := loadImmediateSteps("memory.mar.high.read")
	return append(low, high...)
}

// BuildInstructionSet returns the IR this package compiles: NOP; LDA/LDX
// immediate; ADD (A = A + X + carry-in, carry/overflow written by the ALU);
// STA/LDA absolute; and HLT.
func BuildInstructionSet() ir.InstructionSet {
	return ir.InstructionSet{
		FetchPreamble: []ir.Step{
			{Controls: []ir.ControlInfo{
				control("pc.write", base.PhaseWrite),
				control("memory.mar.read", base.PhaseRead),
			}},
			{Controls: []ir.ControlInfo{
				control("memory.write", base.PhaseWrite),
				control("controller.ir.read", base.PhaseRead),
				control("pc.increment", base.PhaseProcess),
				control("controller.instruction_start", base.PhaseProcess),
			}},
		},
		Instructions: []ir.Instruction{
			{Opcode: OpNOP, Variants: []ir.InstructionVariant{{Steps: steps(nil)}}},
			{
				Opcode: OpLDAImm,
				Variants: []ir.InstructionVariant{{Steps: steps(loadImmediateSteps("a.read")...)}},
			},
			{
				Opcode: OpLDXImm,
				Variants: []ir.InstructionVariant{{Steps: steps(loadImmediateSteps("x.read")...)}},
			},
			{
				Opcode: OpADD,
				Variants: []ir.InstructionVariant{{Steps: steps(
					[]ir.ControlInfo{control("a.write", base.PhaseWrite), control("alu.lhs.read", base.PhaseRead)},
					[]ir.ControlInfo{control("x.write", base.PhaseWrite), control("alu.rhs.read", base.PhaseRead)},
					[]ir.ControlInfo{control("alu.opcode_bit_0", base.PhaseProcess)},
					[]ir.ControlInfo{control("alu.result.write", base.PhaseWrite), control("a.read", base.PhaseRead)},
				)}},
			},
			{
				Opcode: OpSTAAbs,
				Variants: []ir.InstructionVariant{{Steps: steps(append(
					absoluteOperandSteps(),
					[]ir.ControlInfo{control("a.write", base.PhaseWrite), control("memory.read", base.PhaseRead)},
				)...)}},
			},
			{
				Opcode: OpLDAAbs,
				Variants: []ir.InstructionVariant{{Steps: steps(append(
					absoluteOperandSteps(),
					[]ir.ControlInfo{control("memory.write", base.PhaseWrite), control("a.read", base.PhaseRead)},
				)...)}},
			},
			{
				Opcode: OpHLT,
				Variants: []ir.InstructionVariant{{Steps: steps(
					[]ir.ControlInfo{{Path: "halt", Phase: base.PhaseProcess, AutoReset: false}},
				)}},
			},
		},
	}
}

// Compile builds the full compiled program for the builtin instruction set.
func Compile() program.Program {
	c := compiler.New(
		ControlPaths(),
		StatusBits(),
		Opcodes(),
		ir.ControlInfo{Path: "controller.sc.increment", Phase: base.PhaseProcess, AutoReset: true},
		ir.ControlInfo{Path: "controller.sc.reset", Phase: base.PhaseProcess, AutoReset: true},
	)
	return c.Compile(BuildInstructionSet())
}
