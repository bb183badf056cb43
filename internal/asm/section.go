package asm

// section.go implements AssemblerSection and AssemblerPhase.

// SectionKind is the variant tag of an AssemblerSection.
type SectionKind int

const (
	SectionUnknown SectionKind = iota
	SectionData
	SectionCode
)

// AssemblerSection records one section header seen in the program, and
// the byte offset (within its region) at which it starts once known.
type AssemblerSection struct {
	Kind  SectionKind
	Start *uint32
}

// Phase is the assembler's two pass states: First builds the symbol table
// and read-only data; Second emits code. Transition is monotonic.
type Phase int

const (
	PhaseFirst Phase = iota
	PhaseSecond
)

func (p Phase) String() string {
	if p == PhaseSecond {
		return "second"
	}

	return "first"
}
