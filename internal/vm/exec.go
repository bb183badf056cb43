package vm

// exec.go defines the fetch-decode-execute cycle. Iridium instructions are
// fixed-width and have no memory-mapped addressing, so the cycle collapses
// to fetch, decode, execute: there is no separate address-evaluation or
// writeback stage.

import (
	"context"
	"fmt"

	"github.com/ncalibey/iridium/internal/log"
)

// Run verifies the program header (unless disabled with
// WithHeaderVerification) and then executes instructions until the program
// halts, an error occurs, or ctx is cancelled.
func (vm *VM) Run(ctx context.Context) error {
	if vm.verifyHeader {
		if err := VerifyHeader(vm.Program); err != nil {
			return fmt.Errorf("run: %w", err)
		}
	}

	vm.log.Info("START", log.Group("STATE", vm))

	var err error

	for {
		select {
		case <-ctx.Done():
			vm.log.Warn("CANCELLED")
			return ctx.Err()
		default:
		}

		var halted bool

		halted, err = vm.Step()
		if halted || err != nil {
			break
		}
	}

	if err != nil {
		vm.log.Error("HALTED", "ERR", err, log.Group("STATE", vm))
	} else {
		vm.log.Info("HALTED", log.Group("STATE", vm))
	}

	return err
}

// RunOnce executes a single instruction step, for callers such as a REPL
// that single-step the VM rather than running it to halt. Unlike Run, it
// does not verify the header and does not loop.
func (vm *VM) RunOnce() error {
	_, err := vm.Step()

	return err
}

// Step fetches, decodes, and executes a single instruction. It reports
// halted == true when execution should stop: a normal HLT, an illegal
// opcode, or any error.
func (vm *VM) Step() (halted bool, err error) {
	if vm.PC < 0 || vm.PC+4 > len(vm.Program) {
		return true, fmt.Errorf("step: %w: pc %d", ErrHalted, vm.PC)
	}

	pc := vm.PC
	op := OpcodeFromByte(vm.Program[pc])
	operands := [3]byte{vm.Program[pc+1], vm.Program[pc+2], vm.Program[pc+3]}

	vm.PC += 4

	vm.record(Step{PC: pc, Opcode: op})
	vm.log.Debug("fetched", "PC", pc, "OP", op)

	halted, err = vm.execute(op, operands)
	if err != nil {
		vm.log.Error("instruction error", "OP", op, "ERR", err)
		return true, fmt.Errorf("step: %w", err)
	}

	vm.log.Debug("executed", "OP", op, log.Group("STATE", vm))

	return halted, nil
}
