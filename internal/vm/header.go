package vm

// header.go implements the fixed 64-byte PIE (Platform-Independent
// Executable) header that prefixes every Iridium bytecode image.

import (
	"errors"
	"fmt"
)

// HeaderSize is the fixed size, in bytes, of the PIE header.
const HeaderSize = 64

// magic is the four-byte PIE header prefix, ASCII "-21-".
var magic = [4]byte{0x2d, 0x32, 0x31, 0x2d}

// ErrBadHeader is returned when a program's header magic does not match.
var ErrBadHeader = errors.New("vm: bad header")

// WriteHeader returns a new 64-byte header: the magic prefix followed by
// 60 zero bytes.
func WriteHeader() [HeaderSize]byte {
	var h [HeaderSize]byte
	copy(h[:4], magic[:])

	return h
}

// VerifyHeader checks that program begins with the PIE magic and is at
// least HeaderSize bytes long.
func VerifyHeader(program []byte) error {
	if len(program) < HeaderSize {
		return fmt.Errorf("%w: image too small: %d bytes", ErrBadHeader, len(program))
	}

	for i, b := range magic {
		if program[i] != b {
			return fmt.Errorf("%w: magic mismatch at byte %d", ErrBadHeader, i)
		}
	}

	return nil
}
