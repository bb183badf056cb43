package asm

// program.go implements the program parser (C4): an ordered sequence of
// AssemblerInstruction rows over whitespace-separated input. Parsing is
// total-input — the cursor must be fully consumed for a successful parse.

import "fmt"

// Program is an ordered sequence of rows, preserving source order.
type Program []AssemblerInstruction

const maxOperands = 3

// ParseProgram tokenizes and groups source text into a Program. It fails
// if the grammar rejects any row or if the input is not fully consumed.
func ParseProgram(source string) (Program, error) {
	c := newCursor(source)

	var (
		program Program
		row     = 1
		pending *AssemblerInstruction
	)

	var flushErr error

	flush := func() {
		if pending == nil {
			return
		}

		if !pending.HasOpcode && pending.Directive == "" {
			flushErr = &ParseError{
				Message: fmt.Sprintf("row %d: label with no opcode or directive", pending.Row),
			}
		}

		program = append(program, *pending)
		pending = nil
	}

	for {
		tok, err, ok := c.next()
		if err != nil {
			return nil, &ParseError{Message: err.Error()}
		}

		if !ok {
			break
		}

		if flushErr != nil {
			return nil, flushErr
		}

		switch tok.Kind {
		case TokenLabelDecl:
			flush()
			pending = &AssemblerInstruction{Row: row, Label: tok.Name, HasLabel: true}
			row++

		case TokenOp:
			if pending == nil || pending.HasOpcode || pending.Directive != "" {
				flush()
				pending = &AssemblerInstruction{Row: row}
				row++
			}

			pending.Opcode = tok.Opcode
			pending.HasOpcode = true

		case TokenDirective:
			if pending == nil || pending.HasOpcode || pending.Directive != "" {
				flush()
				pending = &AssemblerInstruction{Row: row}
				row++
			}

			pending.Directive = tok.Name

		default: // operand-kind token
			if pending == nil || (!pending.HasOpcode && pending.Directive == "") {
				return nil, &ParseError{
					Message: fmt.Sprintf("operand %s with no preceding opcode or directive", tok),
				}
			}

			if len(pending.Operands) >= maxOperands {
				return nil, &ParseError{
					Message: fmt.Sprintf("row %d: more than %d operands", pending.Row, maxOperands),
				}
			}

			pending.Operands = append(pending.Operands, tok)
		}
	}

	flush()

	if flushErr != nil {
		return nil, flushErr
	}

	return program, nil
}
