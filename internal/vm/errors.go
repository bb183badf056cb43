package vm

import "errors"

// Run errors. Each halts the VM; none of them panic.
var (
	// ErrHalted is returned by Step when PC does not point at a full
	// 4-byte instruction inside the program, e.g. when execution runs off
	// the end of the image.
	ErrHalted = errors.New("vm: halted")

	// ErrIllegalOpcode is returned when the decode loop reads an IGL
	// opcode, whether from an explicit IGL mnemonic or an unrecognized
	// byte.
	ErrIllegalOpcode = errors.New("vm: illegal opcode")

	// ErrDivideByZero is returned by DIV when the divisor register is
	// zero.
	ErrDivideByZero = errors.New("vm: divide by zero")

	// ErrJumpUnderflow is returned by JMPB when the computed target would
	// be negative.
	ErrJumpUnderflow = errors.New("vm: jump underflow")

	// ErrRegisterRange is returned when a decoded register index is
	// outside 0..31.
	ErrRegisterRange = errors.New("vm: register out of range")
)
