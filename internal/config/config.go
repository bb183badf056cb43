// Package config loads the execution profile used by the iridium CLI to
// configure logging and VM startup behavior.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Profile holds the settings that influence how a program is run, as
// distinct from the assembler/VM's binary contract, which is fixed by the
// bytecode format and is never configurable.
type Profile struct {
	Log struct {
		Level string `toml:"level"` // debug, info, warn, error
	} `toml:"log"`

	Exec struct {
		Trace            bool `toml:"trace"`        // print the recent executed-instruction history after a run
		VerifyHeader     bool `toml:"verify_header"` // refuse to run on magic mismatch
		InitialHeapBytes int  `toml:"initial_heap_bytes"`
	} `toml:"exec"`
}

// Default returns the profile used when no config file is present.
func Default() *Profile {
	p := &Profile{}
	p.Log.Level = "info"
	p.Exec.Trace = false
	p.Exec.VerifyHeader = true
	p.Exec.InitialHeapBytes = 0

	return p
}

// Load reads a profile from path. A missing file is not an error; it yields
// the default profile.
func Load(path string) (*Profile, error) {
	p := Default()

	if path == "" {
		return p, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return p, nil
	}

	if _, err := toml.DecodeFile(path, p); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return p, nil
}

// DefaultPath returns the conventional per-user config file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".iridium.toml"
	}

	return filepath.Join(home, ".config", "iridium", "config.toml")
}
