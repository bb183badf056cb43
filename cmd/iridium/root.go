package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ncalibey/iridium/internal/config"
	"github.com/ncalibey/iridium/internal/log"
)

var (
	debug      bool
	configPath string

	profile *config.Profile
	logger  *log.Logger
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "iridium",
		Short:         "Assemble and run Iridium bytecode",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadProfile()
		},
	}

	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to TOML execution profile")

	root.AddCommand(newAsmCmd())
	root.AddCommand(newRunCmd())

	return root
}

func loadProfile() error {
	logger = log.NewFormattedLogger(os.Stderr)

	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}

	p, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	profile = p

	level := profile.Log.Level
	if debug {
		level = "debug"
	}

	var lvl log.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("config: bad log level %q: %w", level, err)
	}

	log.LogLevel.Set(lvl)

	return nil
}
