// Command iridium is the command-line interface to the Iridium toolchain:
// an assembler and a virtual machine for a small fixed-width register
// machine.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
