package asm

// symbol.go implements the symbol table (C5): an ordered collection of
// symbols, looked up by linear scan, exactly as spec'd — program sizes in
// this toolchain's target range make a hashed index an unnecessary
// complication (a drop-in upgrade if that ever changes).

// SymbolKind distinguishes what a Symbol's offset points at.
type SymbolKind int

const (
	SymbolLabel SymbolKind = iota
	SymbolInteger
	SymbolIrString
)

// Symbol names a byte offset in the assembled image. Offset is nil until
// resolved by pass one.
type Symbol struct {
	Name   string
	Kind   SymbolKind
	Offset *uint32
}

// SymbolTable is an ordered collection of symbols. Lookup is linear; order
// is insertion order. There is no removal.
type SymbolTable struct {
	symbols []Symbol
}

// NewSymbolTable returns an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{}
}

// Add appends a symbol. Duplicate names are permitted by this component —
// the assembler driver is responsible for rejecting them.
func (t *SymbolTable) Add(sym Symbol) {
	t.symbols = append(t.symbols, sym)
}

// Has reports whether any symbol has the given name.
func (t *SymbolTable) Has(name string) bool {
	for _, s := range t.symbols {
		if s.Name == name {
			return true
		}
	}

	return false
}

// Value returns the first matching symbol's offset, if resolved.
func (t *SymbolTable) Value(name string) (uint32, bool) {
	for _, s := range t.symbols {
		if s.Name == name {
			if s.Offset == nil {
				return 0, false
			}

			return *s.Offset, true
		}
	}

	return 0, false
}

// SetOffset mutates the first matching symbol's offset, returning whether
// a match was found.
func (t *SymbolTable) SetOffset(name string, value uint32) bool {
	for i := range t.symbols {
		if t.symbols[i].Name == name {
			t.symbols[i].Offset = &value
			return true
		}
	}

	return false
}

// Len returns the number of symbols in the table.
func (t *SymbolTable) Len() int {
	return len(t.symbols)
}

// FixupAbsolute rewrites every resolved offset from its pass-one relative
// form into an absolute byte offset into the final image. Label symbols
// are relative to the start of the code region; IrString and Integer
// symbols are relative to the start of the read-only data region, which
// immediately follows the header (see the label-addressing decision in
// DESIGN.md).
func (t *SymbolTable) FixupAbsolute(headerSize, roSize uint32) {
	for i := range t.symbols {
		if t.symbols[i].Offset == nil {
			continue
		}

		var abs uint32

		if t.symbols[i].Kind == SymbolLabel {
			abs = headerSize + roSize + *t.symbols[i].Offset
		} else {
			abs = headerSize + *t.symbols[i].Offset
		}

		t.symbols[i].Offset = &abs
	}
}
