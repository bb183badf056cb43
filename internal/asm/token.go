package asm

// token.go implements the lexical parsers (C2): a hand-written
// recursive-descent scanner over a cursor into the source text. String
// literals are scanned by scanString; every other fragment — register,
// integer, label declaration, label use, directive, mnemonic — is a
// whitespace-delimited word turned into a Token by classify. The cursor's
// next method, which chooses between the two, is the only entry point
// callers use.

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/ncalibey/iridium/internal/vm"
)

// TokenKind tags the variant a Token holds.
type TokenKind int

const (
	TokenOp TokenKind = iota
	TokenRegister
	TokenInteger
	TokenLabelDecl
	TokenLabelUse
	TokenDirective
	TokenString
)

func (k TokenKind) String() string {
	switch k {
	case TokenOp:
		return "Op"
	case TokenRegister:
		return "Register"
	case TokenInteger:
		return "Integer"
	case TokenLabelDecl:
		return "LabelDecl"
	case TokenLabelUse:
		return "LabelUse"
	case TokenDirective:
		return "Directive"
	case TokenString:
		return "IrString"
	default:
		return "Unknown"
	}
}

// Token is a single lexical unit. Only the field matching Kind is
// meaningful.
type Token struct {
	Kind    TokenKind
	Opcode  vm.Opcode
	Reg     int
	Integer int32
	Name    string
	Text    string
}

func (t Token) String() string {
	switch t.Kind {
	case TokenOp:
		return fmt.Sprintf("Op{%s}", t.Opcode)
	case TokenRegister:
		return fmt.Sprintf("Register{%d}", t.Reg)
	case TokenInteger:
		return fmt.Sprintf("Integer{%d}", t.Integer)
	case TokenLabelDecl:
		return fmt.Sprintf("LabelDecl{%s}", t.Name)
	case TokenLabelUse:
		return fmt.Sprintf("LabelUse{%s}", t.Name)
	case TokenDirective:
		return fmt.Sprintf("Directive{%s}", t.Name)
	case TokenString:
		return fmt.Sprintf("IrString{%q}", t.Text)
	default:
		return "Unknown"
	}
}

// isOperand reports whether the token can fill an instruction operand
// slot: Register, Integer, LabelUse, or IrString.
func (t Token) isOperand() bool {
	switch t.Kind {
	case TokenRegister, TokenInteger, TokenLabelUse, TokenString:
		return true
	default:
		return false
	}
}

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isIdentChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// cursor scans tokens out of source text.
type cursor struct {
	src []rune
	pos int
}

func newCursor(src string) *cursor {
	return &cursor{src: []rune(src)}
}

func (c *cursor) eof() bool {
	return c.pos >= len(c.src)
}

func (c *cursor) peek() rune {
	if c.eof() {
		return 0
	}

	return c.src[c.pos]
}

func (c *cursor) skipWhitespace() {
	for !c.eof() && unicode.IsSpace(c.peek()) {
		c.pos++
	}
}

// next scans and returns the next token, or (Token{}, false) at EOF.
func (c *cursor) next() (Token, error, bool) {
	c.skipWhitespace()

	if c.eof() {
		return Token{}, nil, false
	}

	if c.peek() == '\'' {
		tok, err := c.scanString()
		return tok, err, true
	}

	word := c.scanWord()
	tok, err := classify(word)

	return tok, err, true
}

// scanString consumes a '...' string literal, with no internal escapes.
func (c *cursor) scanString() (Token, error) {
	start := c.pos
	c.pos++ // opening quote

	var b strings.Builder

	for !c.eof() && c.peek() != '\'' {
		b.WriteRune(c.peek())
		c.pos++
	}

	if c.eof() {
		return Token{}, fmt.Errorf("%w: unterminated string starting at %d", ErrParse, start)
	}

	c.pos++ // closing quote

	return Token{Kind: TokenString, Text: b.String()}, nil
}

// scanWord consumes a whitespace-delimited run of characters.
func (c *cursor) scanWord() string {
	start := c.pos

	for !c.eof() && !unicode.IsSpace(c.peek()) && c.peek() != '\'' {
		c.pos++
	}

	return string(c.src[start:c.pos])
}

// classify turns a whitespace-delimited word into a Token.
func classify(word string) (Token, error) {
	switch {
	case strings.HasPrefix(word, "$"):
		n, err := strconv.ParseUint(word[1:], 10, 8)
		if err != nil {
			return Token{}, fmt.Errorf("%w: bad register %q: %v", ErrParse, word, err)
		}

		return Token{Kind: TokenRegister, Reg: int(n)}, nil // range checked at emit time

	case strings.HasPrefix(word, "#"):
		n, err := strconv.ParseInt(word[1:], 10, 32)
		if err != nil {
			return Token{}, fmt.Errorf("%w: bad integer %q: %v", ErrParse, word, err)
		}

		return Token{Kind: TokenInteger, Integer: int32(n)}, nil

	case strings.HasPrefix(word, "@"):
		name := word[1:]
		if !validIdent(name) {
			return Token{}, fmt.Errorf("%w: bad label reference %q", ErrParse, word)
		}

		return Token{Kind: TokenLabelUse, Name: name}, nil

	case strings.HasPrefix(word, "."):
		name := word[1:]
		if !validIdent(name) {
			return Token{}, fmt.Errorf("%w: bad directive %q", ErrParse, word)
		}

		return Token{Kind: TokenDirective, Name: strings.ToLower(name)}, nil

	case strings.HasSuffix(word, ":"):
		name := word[:len(word)-1]
		if !validIdent(name) {
			return Token{}, fmt.Errorf("%w: bad label %q", ErrParse, word)
		}

		return Token{Kind: TokenLabelDecl, Name: name}, nil

	default:
		if !validIdent(word) {
			return Token{}, fmt.Errorf("%w: unrecognized token %q", ErrParse, word)
		}

		return Token{Kind: TokenOp, Opcode: vm.OpcodeFromText(word)}, nil
	}
}

func validIdent(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		if i == 0 && !isIdentStart(r) {
			return false
		}

		if i > 0 && !isIdentChar(r) {
			return false
		}
	}

	return true
}
