package engine

// Kind identifies one tier of the production chain
// Values are contiguous and ordered by chain position, usable as array index
type Kind uint8

const (
	KindThing Kind = iota
	KindThingMaker
	KindAssembler
	KindAssemblyLine
	KindLearning
	KindAutomatedLearning
	KindAI
	KindAGI

	// KindCount is the number of tiers, sizes all per-kind arrays
	KindCount
)

var kindNames = [KindCount]string{
	KindThing:             "thing",
	KindThingMaker:        "thing_maker",
	KindAssembler:         "assembler",
	KindAssemblyLine:      "assembly_line",
	KindLearning:          "learning",
	KindAutomatedLearning: "automated_learning",
	KindAI:                "ai",
	KindAGI:               "agi",
}

// Valid reports whether k names a tier
func (k Kind) Valid() bool {
	return k < KindCount
}

// String returns the snake_case identifier used in logs and metric keys
func (k Kind) String() string {
	if !k.Valid() {
		return "unknown"
	}
	return kindNames[k]
}

// Kinds returns every tier in chain order
func Kinds() []Kind {
	out := make([]Kind, KindCount)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// KindByName resolves the identifier produced by String
func KindByName(name string) (Kind, bool) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), true
		}
	}
	return 0, false
}
