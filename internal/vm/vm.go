package vm

// vm.go defines the virtual machine and assembles it from its parts.

import (
	"fmt"
	"strings"

	"github.com/ncalibey/iridium/internal/log"
)

// NumRegisters is the fixed number of general-purpose registers.
const NumRegisters = 32

// RegisterFile is the set of general-purpose registers.
type RegisterFile [NumRegisters]int32

func (rf RegisterFile) String() string {
	var b strings.Builder

	for i := 0; i < len(rf); i += 4 {
		fmt.Fprintf(&b, "R%02d: %-12dR%02d: %-12dR%02d: %-12dR%02d: %-12d\n",
			i, rf[i], i+1, rf[i+1], i+2, rf[i+2], i+3, rf[i+3])
	}

	return b.String()
}

// VM is an Iridium register machine: 32 general-purpose registers, a
// program counter, a byte-addressable program image, a growable heap, and
// a single comparison flag.
type VM struct {
	Registers RegisterFile
	PC        int
	Program   []byte // Full image: 64-byte header, read-only data, code.
	Heap      []byte
	Remainder uint32
	EqualFlag bool

	log          *log.Logger
	history      []Step // Bounded trace ring; see History.
	verifyHeader bool
}

// Step records one executed instruction for post-mortem inspection. It is
// not part of the binary format contract — just a debugging aid, the
// moral equivalent of the original implementation's in-memory event log.
type Step struct {
	PC     int
	Opcode Opcode
}

// historyLimit bounds the in-memory trace ring so long-running programs
// don't grow it unbounded.
const historyLimit = 256

// OptionFn configures a VM during construction.
type OptionFn func(*VM)

// WithLogger configures the VM's logger.
func WithLogger(l *log.Logger) OptionFn {
	return func(vm *VM) { vm.log = l }
}

// WithInitialHeap preallocates (but does not grow logically) heap
// capacity, to avoid repeated reallocation for programs that ALOC
// aggressively.
func WithInitialHeap(capacity int) OptionFn {
	return func(vm *VM) {
		if capacity > 0 {
			vm.Heap = make([]byte, 0, capacity)
		}
	}
}

// WithHeaderVerification controls whether Run checks the PIE header magic
// before executing. Defaults to true; callers loading raw, header-less
// bytecode (or trusted, pre-verified images) can disable it.
func WithHeaderVerification(enabled bool) OptionFn {
	return func(vm *VM) { vm.verifyHeader = enabled }
}

// New creates a VM in its initial state: all registers zero, PC =
// HeaderSize (the first byte past the 64-byte header), empty heap,
// remainder zero, equal flag clear.
//
// The spec this VM implements describes an initial PC of 65, one byte past
// HeaderSize, with byte 64 reserved and skipped. That only holds if the
// image always carries at least one reserved byte between the header and
// the body. This implementation places the read-only data region (or, if
// empty, code) immediately at byte 64, so PC must start there too, or
// decode desyncs by one byte on any program with no read-only data. This
// is the documented divergence the source material explicitly allows.
func New(opts ...OptionFn) *VM {
	vm := &VM{
		PC:           HeaderSize,
		log:          log.DefaultLogger(),
		verifyHeader: true,
	}

	for _, opt := range opts {
		opt(vm)
	}

	return vm
}

// Load installs a bytecode image as the VM's program. It does not reset
// registers or PC, so callers that want a clean run should create a new VM.
func (vm *VM) Load(program []byte) {
	vm.Program = program
}

// History returns the most recently executed steps, oldest first.
func (vm *VM) History() []Step {
	out := make([]Step, len(vm.history))
	copy(out, vm.history)

	return out
}

func (vm *VM) record(step Step) {
	vm.history = append(vm.history, step)
	if len(vm.history) > historyLimit {
		vm.history = vm.history[len(vm.history)-historyLimit:]
	}
}

func (vm *VM) String() string {
	return fmt.Sprintf("PC: %d EQ: %t REM: %d HEAP: %d bytes\n%s",
		vm.PC, vm.EqualFlag, vm.Remainder, len(vm.Heap), vm.Registers.String())
}

func (vm *VM) LogValue() log.Value {
	return log.GroupValue(
		log.Int("PC", vm.PC),
		log.Any("EQ", vm.EqualFlag),
		log.Any("REM", vm.Remainder),
		log.Int("HEAP", len(vm.Heap)),
	)
}
