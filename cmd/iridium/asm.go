package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ncalibey/iridium/internal/asm"
)

func newAsmCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "asm [-o FILE] FILE.iasm",
		Short: "Assemble Iridium source into a bytecode image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAsm(args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: input with .bin suffix)")

	return cmd
}

func runAsm(input, output string) error {
	source, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("asm: %w", err)
	}

	if output == "" {
		output = input + ".bin"
	}

	logger.Debug("assembling", "input", input, "output", output)

	assembler := asm.NewAssembler(logger)

	img, err := assembler.Assemble(string(source))
	if err != nil {
		logger.Error("assemble failed", "err", err)
		return fmt.Errorf("asm: %w", err)
	}

	if err := os.WriteFile(output, img, 0o644); err != nil {
		return fmt.Errorf("asm: %w", err)
	}

	logger.Info("assembled", "output", output, "bytes", len(img))

	return nil
}
