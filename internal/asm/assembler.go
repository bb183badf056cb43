package asm

// assembler.go implements the assembler driver (C6): the two-pass
// algorithm that turns a parsed Program into a header-prefixed bytecode
// image, tracking sections, the symbol table, and read-only data along
// the way.

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/ncalibey/iridium/internal/log"
	"github.com/ncalibey/iridium/internal/vm"
)

// wantSections is the exact number of section headers a program must
// declare — not "at least one of each", per the §9 open question this
// implementation resolves by preserving the stricter `!= 2` check.
const wantSections = 2

// Assembler drives the two passes over a parsed Program.
type Assembler struct {
	phase          Phase
	symbols        *SymbolTable
	sections       []AssemblerSection
	currentSection SectionKind

	ro       []byte
	roOffset uint32
	codeOff  uint32

	errs []error
	log  *log.Logger
}

// NewAssembler returns an Assembler ready for a single Assemble call.
func NewAssembler(l *log.Logger) *Assembler {
	if l == nil {
		l = log.DefaultLogger()
	}

	return &Assembler{
		phase:   PhaseFirst,
		symbols: NewSymbolTable(),
		log:     l,
	}
}

// Assemble parses and assembles source into a complete bytecode image:
// a 64-byte header, the read-only data region, and the code region.
func Assemble(source string) ([]byte, error) {
	return NewAssembler(log.DefaultLogger()).Assemble(source)
}

// Assemble runs both passes for a on source, returning the image or the
// accumulated errors.
func (a *Assembler) Assemble(source string) ([]byte, error) {
	program, err := ParseProgram(source)
	if err != nil {
		return nil, err
	}

	a.log.Debug("parsed program", "rows", len(program))

	a.firstPass(program)

	if len(a.errs) > 0 {
		return nil, errors.Join(a.errs...)
	}

	var dataSections, codeSections int

	for _, s := range a.sections {
		switch s.Kind {
		case SectionData:
			dataSections++
		case SectionCode:
			codeSections++
		}
	}

	if len(a.sections) != wantSections || dataSections != 1 || codeSections != 1 {
		return nil, &InsufficientSections{Count: len(a.sections)}
	}

	a.symbols.FixupAbsolute(uint32(vm.HeaderSize), uint32(len(a.ro)))
	a.phase = PhaseSecond

	a.log.Debug("entering second pass", "ro_bytes", len(a.ro), "symbols", a.symbols.Len())

	body, err := a.secondPass(program)
	if err != nil {
		return nil, err
	}

	header := vm.WriteHeader()

	out := make([]byte, 0, len(header)+len(a.ro)+len(body))
	out = append(out, header[:]...)
	out = append(out, a.ro...)
	out = append(out, body...)

	return out, nil
}

// firstPass builds the symbol table and read-only data, and tracks
// section declarations. It accumulates errors rather than stopping at
// the first one, per the propagation policy.
func (a *Assembler) firstPass(program Program) {
	for _, row := range program {
		if row.HasLabel {
			switch {
			case a.currentSection == SectionUnknown:
				a.errs = append(a.errs, &NoSegmentDeclarationFound{Instruction: row.Row})
			case a.symbols.Has(row.Label):
				a.errs = append(a.errs, &SymbolAlreadyDeclared{Name: row.Label})
			default:
				a.declareLabel(row)
			}
		}

		if row.HasOpcode {
			a.codeOff += 4
			continue
		}

		if row.Directive != "" {
			a.dispatchDirective(row)
		}
	}
}

// declareLabel adds the symbol for a label declaration, choosing its kind
// and pass-one-relative offset from the row it was declared on.
func (a *Assembler) declareLabel(row AssemblerInstruction) {
	switch {
	case row.HasOpcode:
		off := a.codeOff
		a.symbols.Add(Symbol{Name: row.Label, Kind: SymbolLabel, Offset: &off})

	case row.Directive == "asciiz":
		off := a.roOffset
		a.symbols.Add(Symbol{Name: row.Label, Kind: SymbolIrString, Offset: &off})

	case row.Directive == "integer":
		off := a.roOffset
		a.symbols.Add(Symbol{Name: row.Label, Kind: SymbolInteger, Offset: &off})

	default:
		off := a.codeOff
		a.symbols.Add(Symbol{Name: row.Label, Kind: SymbolLabel, Offset: &off})
	}
}

// dispatchDirective handles a directive row during the first pass: a
// directive with no operands is a section header; one with operands is a
// constant declaration.
func (a *Assembler) dispatchDirective(row AssemblerInstruction) {
	if len(row.Operands) == 0 {
		a.dispatchSectionHeader(row)
		return
	}

	a.dispatchConstant(row)
}

func (a *Assembler) dispatchSectionHeader(row AssemblerInstruction) {
	switch row.Directive {
	case "data":
		a.currentSection = SectionData
		a.sections = append(a.sections, AssemblerSection{Kind: SectionData})
	case "code":
		a.currentSection = SectionCode
		a.sections = append(a.sections, AssemblerSection{Kind: SectionCode})
	default:
		a.log.Debug("unknown section header, skipping", "directive", row.Directive, "row", row.Row)
	}
}

func (a *Assembler) dispatchConstant(row AssemblerInstruction) {
	switch row.Directive {
	case "asciiz":
		if !row.HasLabel {
			a.errs = append(a.errs, &StringConstantDeclaredWithoutLabel{Instruction: row.Row})
			return
		}

		text, ok := row.StringOperand(0)
		if !ok {
			a.errs = append(a.errs, &ParseError{
				Message: fmt.Sprintf("row %d: .asciiz requires a string operand", row.Row),
			})

			return
		}

		a.ro = append(a.ro, []byte(text)...)
		a.ro = append(a.ro, 0)
		a.roOffset += uint32(len(text)) + 1

	case "integer":
		if !row.HasLabel {
			a.errs = append(a.errs, &StringConstantDeclaredWithoutLabel{Instruction: row.Row})
			return
		}

		n, ok := row.Integer(0)
		if !ok {
			a.errs = append(a.errs, &ParseError{
				Message: fmt.Sprintf("row %d: .integer requires an integer operand", row.Row),
			})

			return
		}

		var buf [4]byte

		binary.BigEndian.PutUint32(buf[:], uint32(n))
		a.ro = append(a.ro, buf[:]...)
		a.roOffset += 4

	default:
		a.errs = append(a.errs, &UnknownDirectiveFound{Name: row.Directive})
	}
}

// secondPass emits code bytes for every instruction row. Directive rows
// are re-dispatched but are no-ops here — .data/.code/.asciiz/.integer are
// entirely handled during pass one.
func (a *Assembler) secondPass(program Program) ([]byte, error) {
	var body []byte

	for _, row := range program {
		row := row

		if row.HasOpcode {
			b, err := row.Bytes(a.symbols)
			if err != nil {
				return nil, err
			}

			body = append(body, b[:]...)

			continue
		}

		if row.Directive != "" {
			a.log.Debug("second pass: directive is a no-op here", "directive", row.Directive, "row", row.Row)
		}
	}

	return body, nil
}
