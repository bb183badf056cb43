/*
Package asm implements a two-pass assembler for Iridium assembly language.

The assembler translates IRASM source into Iridium bytecode: a 64-byte PIE
header followed by a read-only data region and a code region of 4-byte
fixed-width instructions.

	.data
	hello: .asciiz 'Hello, world!'
	.code
	load $0 #100
	load $1 #1
	load $2 #0
	test: inc $0
	neq $0 $2
	jneq @test
	hlt

See Grammar for the full EBNF. Source is tokenized by a small hand-written
recursive-descent scanner (internal/asm has no parser-combinator library to
lean on, so the scanner plays that role directly), assembled into a Program
of AssemblerInstruction rows, and then driven through Assemble's two
passes: pass one builds the symbol table and read-only data; pass two emits
code.

# Bugs

The grammar has no escape syntax for a quote inside a string literal, and an
unrecognized mnemonic silently assembles as IGL rather than failing to
parse — both are carried over from the reference implementation this
assembler was modeled on.
*/
package asm

// Grammar declares the syntax of IRASM in EBNF.
var Grammar = (`
Program     := (Row Whitespace?)*
Row         := (Label? Opcode Operand{0..3}) | (Label? Directive Operand{0..3})
Label       := Ident ":"
Opcode      := Ident                    ; resolved case-insensitively
Directive   := "." Ident
Operand     := Register | Integer | LabelUse | String
Register    := "$" Digit+               ; 0..31
Integer     := "#" Digit+               ; parsed as decimal i32
LabelUse    := "@" Ident
String      := "'" (any char except "'")* "'"
Ident       := [A-Za-z_][A-Za-z_0-9]*
`)
