package pfac

// failState marks an undefined goto-table cell during trie
// construction. It is eliminated entirely by the time Compile
// returns: the delta flattener absorbs every FAIL cell into a real
// next-state, and row 0's FAILs are replaced with a root self-loop.
const failState int32 = -1

// gotoTrie is the construction-time scratch trie: a goto table built
// over the case-folded pattern bytes, plus the per-state output lists
// that the goto builder populates as patterns terminate. It is
// discarded once Compile finishes flattening the delta table.
type gotoTrie struct {
	transitions []map[byte]int32
	output      [][]uint32 // per-state pattern ids, insertion order, dedup'd
}

func newGotoTrie() *gotoTrie {
	t := &gotoTrie{}
	t.newState()
	return t
}

func (t *gotoTrie) newState() int32 {
	t.transitions = append(t.transitions, make(map[byte]int32))
	t.output = append(t.output, nil)
	return int32(len(t.transitions) - 1)
}

func (t *gotoTrie) stateCount() int {
	return len(t.transitions)
}

// next returns the goto-table transition for (state, b), or failState
// if none has been wired yet.
func (t *gotoTrie) next(state int32, b byte) int32 {
	if nxt, ok := t.transitions[state][b]; ok {
		return nxt
	}
	return failState
}

func (t *gotoTrie) addOutput(state int32, id uint32) {
	for _, existing := range t.output[state] {
		if existing == id {
			return
		}
	}
	t.output[state] = append(t.output[state], id)
}

// buildGotoTrie constructs the trie over every pattern's folded bytes.
// A level-1 prefilter pass first allocates one direct child of the
// root per distinct first byte across all patterns: this has no
// semantic effect (the per-pattern walk below would allocate the same
// children), but keeps root fan-out dense before the failure and
// delta passes run, mirroring the reference construction order.
func buildGotoTrie(store *patternStore) *gotoTrie {
	t := newGotoTrie()

	seen := [256]bool{}
	for i := range store.patterns {
		p := &store.patterns[i]
		if len(p.folded) == 0 {
			continue
		}
		b0 := p.folded[0]
		if seen[b0] {
			continue
		}
		seen[b0] = true
		if t.next(0, b0) == failState {
			child := t.newState()
			t.transitions[0][b0] = child
		}
	}

	for i := range store.patterns {
		p := &store.patterns[i]
		state := int32(0)
		for _, b := range p.folded {
			if nxt := t.next(state, b); nxt != failState {
				state = nxt
				continue
			}
			next := t.newState()
			t.transitions[state][b] = next
			state = next
		}
		t.addOutput(state, p.id)
	}

	// (I2): every byte with no transition from the root loops back to
	// the root itself.
	for b := 0; b < 256; b++ {
		if t.next(0, byte(b)) == failState {
			t.transitions[0][byte(b)] = 0
		}
	}

	return t
}
