package asm

// instruction.go implements the instruction parser (C3): the
// AssemblerInstruction record composed from a row's tokens.

import "github.com/ncalibey/iridium/internal/vm"

// AssemblerInstruction is one source row: an optional label declaration,
// exactly one of an opcode or a directive, and up to three positional
// operand tokens.
type AssemblerInstruction struct {
	Row       int // 1-based, in source order; used for diagnostics.
	Label     string
	HasLabel  bool
	Opcode    vm.Opcode
	HasOpcode bool
	Directive string // lower-cased directive name; set iff !HasOpcode.
	Operands  []Token
}

// IsDirective reports whether this row is a directive row rather than an
// instruction row.
func (ins *AssemblerInstruction) IsDirective() bool {
	return !ins.HasOpcode && ins.Directive != ""
}

// Register returns the i'th operand as a register index, if that operand
// exists and is a Register token.
func (ins *AssemblerInstruction) Register(i int) (int, bool) {
	if i >= len(ins.Operands) || ins.Operands[i].Kind != TokenRegister {
		return 0, false
	}

	return ins.Operands[i].Reg, true
}

// Integer returns the i'th operand as an integer literal, if that operand
// exists and is an Integer token.
func (ins *AssemblerInstruction) Integer(i int) (int32, bool) {
	if i >= len(ins.Operands) || ins.Operands[i].Kind != TokenInteger {
		return 0, false
	}

	return ins.Operands[i].Integer, true
}

// LabelUse returns the i'th operand as a label reference, if that operand
// exists and is a LabelUse token.
func (ins *AssemblerInstruction) LabelUse(i int) (string, bool) {
	if i >= len(ins.Operands) || ins.Operands[i].Kind != TokenLabelUse {
		return "", false
	}

	return ins.Operands[i].Name, true
}

// StringOperand returns the i'th operand as string-literal text, if that
// operand exists and is an IrString token.
func (ins *AssemblerInstruction) StringOperand(i int) (string, bool) {
	if i >= len(ins.Operands) || ins.Operands[i].Kind != TokenString {
		return "", false
	}

	return ins.Operands[i].Text, true
}
