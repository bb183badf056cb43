package asm

// bytecode.go implements the bytecode emitter (C7): each instruction row
// emits exactly 4 bytes, matching the VM's fixed-width decode loop.

import "fmt"

// Bytes encodes an instruction row to its 4-byte slot. ins must be an
// instruction row (HasOpcode), not a directive row.
func (ins *AssemblerInstruction) Bytes(symbols *SymbolTable) ([4]byte, error) {
	var out [4]byte

	if !ins.HasOpcode {
		return out, fmt.Errorf("asm: row %d: directive row has no bytecode encoding", ins.Row)
	}

	out[0] = ins.Opcode.Byte()

	cursor := 1

	for _, op := range ins.Operands {
		switch op.Kind {
		case TokenRegister:
			if cursor > 3 {
				return out, fmt.Errorf("asm: row %d: too many operand bytes", ins.Row)
			}

			if op.Reg < 0 || op.Reg > 31 {
				return out, fmt.Errorf("asm: row %d: register %d out of range", ins.Row, op.Reg)
			}

			out[cursor] = byte(op.Reg)
			cursor++

		case TokenInteger:
			if cursor > 2 {
				return out, fmt.Errorf("asm: row %d: too many operand bytes", ins.Row)
			}

			n := uint16(op.Integer)
			out[cursor] = byte(n >> 8)
			out[cursor+1] = byte(n)
			cursor += 2

		case TokenLabelUse:
			if cursor > 3 {
				return out, fmt.Errorf("asm: row %d: too many operand bytes", ins.Row)
			}

			offset, ok := symbols.Value(op.Name)
			if !ok {
				return out, fmt.Errorf("asm: row %d: unresolved label %q", ins.Row, op.Name)
			}

			out[cursor] = byte(offset) // low byte; see DESIGN.md on label-operand width.
			cursor++

		default:
			return out, fmt.Errorf("asm: row %d: operand %s cannot be encoded", ins.Row, op)
		}
	}

	return out, nil
}
