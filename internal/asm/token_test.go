package asm

import (
	"testing"

	"github.com/ncalibey/iridium/internal/vm"
)

func tokens(t *testing.T, source string) []Token {
	t.Helper()

	c := newCursor(source)

	var toks []Token

	for {
		tok, err, ok := c.next()
		if err != nil {
			t.Fatalf("next: %v", err)
		}

		if !ok {
			break
		}

		toks = append(toks, tok)
	}

	return toks
}

func TestCursorTokens(t *testing.T) {
	t.Parallel()

	toks := tokens(t, "test: inc $0 #5 @test .asciiz 'Hello, world!'")

	want := []TokenKind{
		TokenLabelDecl,
		TokenOp,
		TokenRegister,
		TokenInteger,
		TokenLabelUse,
		TokenDirective,
		TokenString,
	}

	if len(toks) != len(want) {
		t.Fatalf("want: %d tokens, got: %d (%v)", len(want), len(toks), toks)
	}

	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: want: %s, got: %s", i, k, toks[i].Kind)
		}
	}

	if toks[0].Name != "test" {
		t.Errorf("label want: test, got: %s", toks[0].Name)
	}

	if toks[1].Opcode != vm.INC {
		t.Errorf("opcode want: INC, got: %s", toks[1].Opcode)
	}

	if toks[2].Reg != 0 {
		t.Errorf("register want: 0, got: %d", toks[2].Reg)
	}

	if toks[3].Integer != 5 {
		t.Errorf("integer want: 5, got: %d", toks[3].Integer)
	}

	if toks[4].Name != "test" {
		t.Errorf("label use want: test, got: %s", toks[4].Name)
	}

	if toks[5].Name != "asciiz" {
		t.Errorf("directive want: asciiz, got: %s", toks[5].Name)
	}

	if toks[6].Text != "Hello, world!" {
		t.Errorf("string want: %q, got: %q", "Hello, world!", toks[6].Text)
	}
}

func TestCursorUnterminatedString(t *testing.T) {
	t.Parallel()

	c := newCursor(".asciiz 'oops")

	if _, err, _ := c.next(); err != nil {
		t.Fatalf("first token: %v", err)
	}

	if _, err, _ := c.next(); err == nil {
		t.Errorf("want: error for unterminated string, got: nil")
	}
}

func TestClassifyUnrecognizedMnemonic(t *testing.T) {
	t.Parallel()

	tok, err := classify("jmpe")
	if err != nil {
		t.Fatalf("classify: %v", err)
	}

	if tok.Kind != TokenOp || tok.Opcode != vm.IGL {
		t.Errorf("want: Op{IGL}, got: %s", tok)
	}
}
