package pfac

// verifyBit flags a packed output-table entry as requiring a
// case-sensitive byte comparison before the match is accepted --
// bit 16 of the packed pid.
const verifyBit = 1 << 16

// verifyEntry is one row of the case-sensitive verifier index: the
// original, case-preserved bytes for a pattern that was registered
// case-sensitively. NOCASE patterns leave their entry empty; nothing
// ever consults it for them, since their packed output id never
// carries verifyBit.
type verifyEntry struct {
	bytes []byte
}

// buildVerifierIndex sizes the index to maxPatID+1 and fills an entry
// for every case-sensitive pattern.
func buildVerifierIndex(store *patternStore) []verifyEntry {
	index := make([]verifyEntry, store.maxPatID+1)
	for i := range store.patterns {
		p := &store.patterns[i]
		if p.noCase() {
			continue
		}
		index[p.id] = verifyEntry{bytes: p.original}
	}
	return index
}

// packOutputTable folds the needs-verify bit into each stored pid:
// any pattern registered case-sensitively has bit 16 OR'd onto its id
// in every output-table row it appears in.
func packOutputTable(store *patternStore, raw [][]uint32) [][]uint32 {
	needsVerify := make([]bool, store.maxPatID+1)
	for i := range store.patterns {
		p := &store.patterns[i]
		needsVerify[p.id] = !p.noCase()
	}

	packed := make([][]uint32, len(raw))
	for state, ids := range raw {
		if len(ids) == 0 {
			continue
		}
		row := make([]uint32, len(ids))
		for i, id := range ids {
			row[i] = id
			if needsVerify[id] {
				row[i] |= verifyBit
			}
		}
		packed[state] = row
	}
	return packed
}
