package hold_test

// tracked counts how many times it has been cloned, shared across all copies
// of one lineage. It verifies that conversions materialize exactly as often
// as documented.
type tracked struct {
	s      string
	clones *int
}

func trackedOf(s string) tracked {
	return tracked{s: s, clones: new(int)}
}

func (t tracked) Clone() tracked {
	*t.clones++
	return tracked{s: t.s, clones: t.clones}
}

func (t tracked) count() int { return *t.clones }

// buf is a byte payload with a real deep Clone, used to verify copy-on-write
// isolation from the borrowed source.
type buf []byte

func (b buf) Clone() buf { return append(buf(nil), b...) }
