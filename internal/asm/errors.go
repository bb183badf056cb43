package asm

// errors.go is the assembler's error taxonomy (C6-aux): structured errors
// with user-facing messages, each wrapping a sentinel so callers can test
// with errors.Is without caring about the row number or name involved.

import (
	"errors"
	"fmt"
)

var (
	// ErrParse causes a ParseError when the source text does not match the
	// grammar.
	ErrParse = errors.New("asm: parse error")

	// ErrNoSegmentDeclaration causes a NoSegmentDeclarationFound when a
	// label declaration appears before any section header.
	ErrNoSegmentDeclaration = errors.New("asm: no segment declaration found")

	// ErrStringWithoutLabel causes a StringConstantDeclaredWithoutLabel
	// when a .asciiz or .integer row has no label.
	ErrStringWithoutLabel = errors.New("asm: string constant declared without label")

	// ErrSymbolAlreadyDeclared causes a SymbolAlreadyDeclared when a label
	// name is declared twice.
	ErrSymbolAlreadyDeclared = errors.New("asm: symbol already declared")

	// ErrUnknownDirective causes an UnknownDirectiveFound when a directive
	// with operands is neither a known section header nor a known
	// constant declaration.
	ErrUnknownDirective = errors.New("asm: unknown directive found")

	// ErrInsufficientSections causes an InsufficientSections when the
	// program does not declare exactly one .data and one .code section.
	ErrInsufficientSections = errors.New("asm: insufficient sections")
)

// ParseError reports that the grammar rejected the input.
type ParseError struct {
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error { return ErrParse }

// NoSegmentDeclarationFound reports a label declaration before any section
// header.
type NoSegmentDeclarationFound struct {
	Instruction int
}

func (e *NoSegmentDeclarationFound) Error() string {
	return fmt.Sprintf("no segment declaration found: row %d", e.Instruction)
}

func (e *NoSegmentDeclarationFound) Unwrap() error { return ErrNoSegmentDeclaration }

// StringConstantDeclaredWithoutLabel reports a .asciiz or .integer row
// missing its required label.
type StringConstantDeclaredWithoutLabel struct {
	Instruction int
}

func (e *StringConstantDeclaredWithoutLabel) Error() string {
	return fmt.Sprintf("string constant declared without label: row %d", e.Instruction)
}

func (e *StringConstantDeclaredWithoutLabel) Unwrap() error { return ErrStringWithoutLabel }

// SymbolAlreadyDeclared reports a duplicate label name.
type SymbolAlreadyDeclared struct {
	Name string
}

func (e *SymbolAlreadyDeclared) Error() string {
	return fmt.Sprintf("symbol already declared: %q", e.Name)
}

func (e *SymbolAlreadyDeclared) Unwrap() error { return ErrSymbolAlreadyDeclared }

// UnknownDirectiveFound reports a directive that is neither a recognized
// section header nor a recognized constant declaration.
type UnknownDirectiveFound struct {
	Name string
}

func (e *UnknownDirectiveFound) Error() string {
	return fmt.Sprintf("unknown directive found: %q", e.Name)
}

func (e *UnknownDirectiveFound) Unwrap() error { return ErrUnknownDirective }

// InsufficientSections reports that the program did not declare exactly
// one .data and one .code section header.
type InsufficientSections struct {
	Count int
}

func (e *InsufficientSections) Error() string {
	return fmt.Sprintf("insufficient sections: found %d section headers, want one .data and one .code", e.Count)
}

func (e *InsufficientSections) Unwrap() error { return ErrInsufficientSections }
