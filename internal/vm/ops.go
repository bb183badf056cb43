package vm

// ops.go implements the per-opcode semantics of the decode loop. Every
// instruction occupies exactly 4 bytes: the opcode byte plus three operand
// bytes (reserved bytes read but unused by a given opcode are padding).

import (
	"fmt"
	"os"
)

// register validates and returns a register index from an operand byte.
func register(b byte) (int, error) {
	if int(b) >= NumRegisters {
		return 0, fmt.Errorf("%w: %d", ErrRegisterRange, b)
	}

	return int(b), nil
}

// execute dispatches on opcode, given the three operand bytes that
// followed it in the instruction stream. It returns (halt, err): halt is
// true if execution should stop (HLT or an illegal opcode), err is set if
// the instruction failed.
func (vm *VM) execute(op Opcode, operands [3]byte) (halt bool, err error) {
	switch op {
	case HLT:
		return true, nil

	case LOAD:
		r, err := register(operands[0])
		if err != nil {
			return true, err
		}

		n := int32(uint16(operands[1])<<8 | uint16(operands[2]))
		vm.Registers[r] = n

		return false, nil

	case ADD, SUB, MUL, DIV:
		return false, vm.executeArith(op, operands)

	case JMP:
		r, err := register(operands[0])
		if err != nil {
			return true, err
		}

		vm.PC = int(vm.Registers[r])

		return false, nil

	case JMPF:
		r, err := register(operands[0])
		if err != nil {
			return true, err
		}

		vm.PC += int(vm.Registers[r])

		return false, nil

	case JMPB:
		r, err := register(operands[0])
		if err != nil {
			return true, err
		}

		target := vm.PC - int(vm.Registers[r])
		if target < 0 {
			return true, fmt.Errorf("%w: pc %d - %d", ErrJumpUnderflow, vm.PC, vm.Registers[r])
		}

		vm.PC = target

		return false, nil

	case EQ, NEQ, GT, LT, GTQ, LTQ:
		return false, vm.executeCompare(op, operands)

	case JEQ:
		r, err := register(operands[0])
		if err != nil {
			return true, err
		}

		if vm.EqualFlag {
			vm.PC = int(vm.Registers[r])
		}

		return false, nil

	case JNEQ:
		r, err := register(operands[0])
		if err != nil {
			return true, err
		}

		if !vm.EqualFlag {
			vm.PC = int(vm.Registers[r])
		}

		return false, nil

	case ALOC:
		r, err := register(operands[0])
		if err != nil {
			return true, err
		}

		grow := int(vm.Registers[r])
		if grow < 0 {
			grow = 0
		}

		vm.Heap = append(vm.Heap, make([]byte, grow)...)

		return false, nil

	case INC:
		r, err := register(operands[0])
		if err != nil {
			return true, err
		}

		vm.Registers[r]++

		return false, nil

	case DEC:
		r, err := register(operands[0])
		if err != nil {
			return true, err
		}

		vm.Registers[r]--

		return false, nil

	case PRTS:
		r, err := register(operands[0])
		if err != nil {
			return true, err
		}

		return false, vm.prts(int(vm.Registers[r]))

	default: // IGL and anything unrecognized.
		return true, fmt.Errorf("%w: %s", ErrIllegalOpcode, op)
	}
}

// executeArith implements ADD/SUB/MUL/DIV. Overflow wraps using Go's
// defined int32 wraparound (documented as a deliberate choice in
// DESIGN.md); division by zero is a recoverable run error.
func (vm *VM) executeArith(op Opcode, operands [3]byte) error {
	a, err := register(operands[0])
	if err != nil {
		return err
	}

	b, err := register(operands[1])
	if err != nil {
		return err
	}

	d, err := register(operands[2])
	if err != nil {
		return err
	}

	lhs, rhs := vm.Registers[a], vm.Registers[b]

	switch op {
	case ADD:
		vm.Registers[d] = lhs + rhs
	case SUB:
		vm.Registers[d] = lhs - rhs
	case MUL:
		vm.Registers[d] = lhs * rhs
	case DIV:
		if rhs == 0 {
			return fmt.Errorf("%w: r%d / r%d", ErrDivideByZero, a, b)
		}

		vm.Registers[d] = lhs / rhs
		vm.Remainder = uint32(lhs % rhs)
	}

	return nil
}

// executeCompare implements EQ/NEQ/GT/LT/GTQ/LTQ, setting EqualFlag from a
// signed comparison of the two operand registers.
func (vm *VM) executeCompare(op Opcode, operands [3]byte) error {
	a, err := register(operands[0])
	if err != nil {
		return err
	}

	b, err := register(operands[1])
	if err != nil {
		return err
	}

	lhs, rhs := vm.Registers[a], vm.Registers[b]

	switch op {
	case EQ:
		vm.EqualFlag = lhs == rhs
	case NEQ:
		vm.EqualFlag = lhs != rhs
	case GT:
		vm.EqualFlag = lhs > rhs
	case LT:
		vm.EqualFlag = lhs < rhs
	case GTQ:
		vm.EqualFlag = lhs >= rhs
	case LTQ:
		vm.EqualFlag = lhs <= rhs
	}

	return nil
}

// prts writes the zero-terminated string found at the given absolute
// offset in the program image to stdout.
func (vm *VM) prts(addr int) error {
	if addr < 0 || addr >= len(vm.Program) {
		return fmt.Errorf("vm: prts: address out of range: %d", addr)
	}

	end := addr
	for end < len(vm.Program) && vm.Program[end] != 0 {
		end++
	}

	_, err := os.Stdout.Write(vm.Program[addr:end])

	return err
}
