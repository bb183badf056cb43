package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ncalibey/iridium/internal/vm"
)

func newRunCmd() *cobra.Command {
	var trace bool

	cmd := &cobra.Command{
		Use:   "run [--trace] FILE.iasm.bin",
		Short: "Execute an assembled bytecode image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVM(cmd.Context(), args[0], trace)
		},
	}

	cmd.Flags().BoolVar(&trace, "trace", false, "print the executed instruction trace on halt")

	return cmd
}

func runVM(ctx context.Context, input string, traceFlag bool) error {
	img, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	trace := traceFlag || profile.Exec.Trace

	machine := vm.New(
		vm.WithLogger(logger),
		vm.WithInitialHeap(profile.Exec.InitialHeapBytes),
		vm.WithHeaderVerification(profile.Exec.VerifyHeader),
	)
	machine.Load(img)

	logger.Debug("loaded image", "file", input, "bytes", len(img))

	runErr := machine.Run(ctx)

	if trace {
		for _, step := range machine.History() {
			fmt.Fprintf(os.Stdout, "%d: %s\n", step.PC, step.Opcode)
		}
	}

	if runErr != nil {
		return fmt.Errorf("run: %w", runErr)
	}

	return nil
}
