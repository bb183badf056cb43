package vm

import (
	"context"
	"errors"
	"testing"
)

func TestOpsArithmetic(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		op   Opcode
		lhs  int32
		rhs  int32
		want int32
	}{
		{"add", ADD, 3, 4, 7},
		{"sub", SUB, 10, 4, 6},
		{"mul", MUL, 3, 4, 12},
		{"div", DIV, 13, 4, 3},
	}

	for _, tc := range cases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			v := New()
			v.Registers[0] = tc.lhs
			v.Registers[1] = tc.rhs
			v.Load(program(tc.op.Byte(), 0, 1, 2, HLT.Byte(), 0, 0, 0))

			if err := v.Run(context.Background()); err != nil {
				t.Fatalf("run: %v", err)
			}

			if v.Registers[2] != tc.want {
				t.Errorf("R2 want: %d, got: %d", tc.want, v.Registers[2])
			}
		})
	}

	t.Run("div remainder", func(t *testing.T) {
		t.Parallel()

		v := New()
		v.Registers[0] = 13
		v.Registers[1] = 4
		v.Load(program(DIV.Byte(), 0, 1, 2, HLT.Byte(), 0, 0, 0))

		if err := v.Run(context.Background()); err != nil {
			t.Fatalf("run: %v", err)
		}

		if v.Remainder != 1 {
			t.Errorf("remainder want: 1, got: %d", v.Remainder)
		}
	})

	t.Run("div by zero", func(t *testing.T) {
		t.Parallel()

		v := New()
		v.Registers[0] = 13
		v.Registers[1] = 0
		v.Load(program(DIV.Byte(), 0, 1, 2, HLT.Byte(), 0, 0, 0))

		if err := v.Run(context.Background()); !errors.Is(err, ErrDivideByZero) {
			t.Errorf("want: %v, got: %v", ErrDivideByZero, err)
		}
	})

	t.Run("overflow wraps", func(t *testing.T) {
		t.Parallel()

		v := New()
		v.Registers[0] = 2147483647
		v.Registers[1] = 1
		v.Load(program(ADD.Byte(), 0, 1, 2, HLT.Byte(), 0, 0, 0))

		if err := v.Run(context.Background()); err != nil {
			t.Fatalf("run: %v", err)
		}

		if v.Registers[2] != -2147483648 {
			t.Errorf("R2 want: -2147483648, got: %d", v.Registers[2])
		}
	})
}

func TestOpsCompare(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		op   Opcode
		lhs  int32
		rhs  int32
		want bool
	}{
		{"eq true", EQ, 4, 4, true},
		{"eq false", EQ, 4, 5, false},
		{"neq true", NEQ, 4, 5, true},
		{"gt true", GT, 5, 4, true},
		{"lt true", LT, 4, 5, true},
		{"gtq equal", GTQ, 4, 4, true},
		{"ltq equal", LTQ, 4, 4, true},
	}

	for _, tc := range cases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			v := New()
			v.Registers[0] = tc.lhs
			v.Registers[1] = tc.rhs
			v.Load(program(tc.op.Byte(), 0, 1, 0, HLT.Byte(), 0, 0, 0))

			if err := v.Run(context.Background()); err != nil {
				t.Fatalf("run: %v", err)
			}

			if v.EqualFlag != tc.want {
				t.Errorf("EqualFlag want: %t, got: %t", tc.want, v.EqualFlag)
			}
		})
	}
}

func TestOpsJEQ(t *testing.T) {
	t.Parallel()

	v := New()
	v.Registers[0] = 1
	v.Registers[1] = 1
	v.Registers[2] = int32(HeaderSize + 12) // target: the HLT below

	v.Load(program(
		EQ.Byte(), 0, 1, 0, // sets EqualFlag
		JEQ.Byte(), 2, 0, 0, // jumps over the IGL
		IGL.Byte(), 0, 0, 0,
		HLT.Byte(), 0, 0, 0,
	))

	if err := v.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
}

func TestOpsJMPB(t *testing.T) {
	t.Parallel()

	t.Run("underflow", func(t *testing.T) {
		t.Parallel()

		v := New()
		v.Registers[0] = int32(v.PC + 5) // exceeds pc-after-fetch (pc+4) by 1
		v.Load(program(JMPB.Byte(), 0, 0, 0))

		if err := v.Run(context.Background()); !errors.Is(err, ErrJumpUnderflow) {
			t.Errorf("want: %v, got: %v", ErrJumpUnderflow, err)
		}
	})
}

func TestOpsALOC(t *testing.T) {
	t.Parallel()

	v := New()
	v.Registers[0] = 16
	v.Load(program(ALOC.Byte(), 0, 0, 0, HLT.Byte(), 0, 0, 0))

	if err := v.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	if len(v.Heap) != 16 {
		t.Errorf("heap want: 16 bytes, got: %d", len(v.Heap))
	}
}

func TestOpsIncDec(t *testing.T) {
	t.Parallel()

	v := New()
	v.Registers[0] = 5
	v.Load(program(
		INC.Byte(), 0, 0, 0,
		DEC.Byte(), 0, 0, 0,
		DEC.Byte(), 0, 0, 0,
		HLT.Byte(), 0, 0, 0,
	))

	if err := v.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	if v.Registers[0] != 4 {
		t.Errorf("R0 want: 4, got: %d", v.Registers[0])
	}
}

func TestOpsRegisterRange(t *testing.T) {
	t.Parallel()

	v := New()
	v.Load(program(INC.Byte(), 200, 0, 0))

	if err := v.Run(context.Background()); !errors.Is(err, ErrRegisterRange) {
		t.Errorf("want: %v, got: %v", ErrRegisterRange, err)
	}
}
