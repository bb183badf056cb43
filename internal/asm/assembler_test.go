package asm

import (
	"context"
	"errors"
	"testing"

	"github.com/ncalibey/iridium/internal/vm"
)

func TestAssembleHeaderPresence(t *testing.T) {
	t.Parallel()

	img, err := Assemble(".data\n.code\nhlt")
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}

	if len(img) < vm.HeaderSize {
		t.Fatalf("want: len >= %d, got: %d", vm.HeaderSize, len(img))
	}

	want := []byte{0x2d, 0x32, 0x31, 0x2d}
	for i, b := range want {
		if img[i] != b {
			t.Errorf("magic byte %d: want: %#x, got: %#x", i, b, img[i])
		}
	}
}

func TestAssembleBigEndianImmediate(t *testing.T) {
	t.Parallel()

	img, err := Assemble(".data\n.code\nload $0 #500")
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}

	body := img[vm.HeaderSize:]

	want := []byte{1, 0, 1, 244}
	if len(body) != 4 {
		t.Fatalf("want: 4 body bytes, got: %d", len(body))
	}

	for i, b := range want {
		if body[i] != b {
			t.Errorf("byte %d: want: %d, got: %d", i, b, body[i])
		}
	}
}

func TestAssembleSectionGating(t *testing.T) {
	t.Parallel()

	_, err := Assemble("hello: .asciiz 'Fail'")
	if err == nil {
		t.Fatal("want: error, got: nil")
	}

	var noSeg *NoSegmentDeclarationFound
	if !errors.As(err, &noSeg) {
		t.Fatalf("want: NoSegmentDeclarationFound, got: %v", err)
	}
}

func TestAssembleInsufficientSections(t *testing.T) {
	t.Parallel()

	_, err := Assemble(".code\nhlt")

	var insuff *InsufficientSections
	if !errors.As(err, &insuff) {
		t.Fatalf("want: InsufficientSections, got: %v", err)
	}
}

func TestAssembleDuplicateLabel(t *testing.T) {
	t.Parallel()

	_, err := Assemble(".data\n.code\nfoo: nop\nfoo: nop")

	var dup *SymbolAlreadyDeclared
	if !errors.As(err, &dup) {
		t.Fatalf("want: SymbolAlreadyDeclared, got: %v", err)
	}
}

func TestAssembleEndToEndLoop(t *testing.T) {
	t.Parallel()

	source := ".data\n.code\n" +
		"load $0 #100\n" +
		"load $1 #1\n" +
		"load $2 #0\n" +
		"test: inc $0\n" +
		"neq $0 $2\n" +
		"jneq @test\n" +
		"hlt"

	img, err := Assemble(source)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}

	if len(img) != 92 {
		t.Fatalf("want: 92 bytes, got: %d", len(img))
	}

	m := vm.New()
	m.Load(img)

	if err := m.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
}

func TestAssembleAsciizPlacement(t *testing.T) {
	t.Parallel()

	img, err := Assemble(".data\nhello: .asciiz 'Hi'\n.code\nhlt")
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}

	ro := img[vm.HeaderSize : vm.HeaderSize+3]

	want := []byte{'H', 'i', 0}
	for i, b := range want {
		if ro[i] != b {
			t.Errorf("ro byte %d: want: %d, got: %d", i, b, ro[i])
		}
	}

	code := img[vm.HeaderSize+3:]
	if len(code) != 4 || code[0] != vm.HLT.Byte() {
		t.Fatalf("want: 4-byte HLT code region, got: %v", code)
	}
}

func TestAssembleIntegerDirective(t *testing.T) {
	t.Parallel()

	img, err := Assemble(".data\nanswer: .integer #42\n.code\nhlt")
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}

	ro := img[vm.HeaderSize : vm.HeaderSize+4]

	want := []byte{0, 0, 0, 42}
	for i, b := range want {
		if ro[i] != b {
			t.Errorf("ro byte %d: want: %d, got: %d", i, b, ro[i])
		}
	}
}

func TestAssembleParseError(t *testing.T) {
	t.Parallel()

	_, err := Assemble(".data\n.code\n'unterminated")

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("want: ParseError, got: %v", err)
	}
}
