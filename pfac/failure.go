package pfac

// solveFailures runs the breadth-first failure-link computation: for
// every state, find the longest proper suffix of its path that is
// also a path from the root, and union that suffix state's matches
// into this state's output set (the suffix closure of the match set).
// It materializes the failure links as a plain slice rather than
// folding the computation into the delta-flattening pass; trading a
// little memory for a simpler, more obviously-correct flattener. The
// failure table is scratch: it is discarded once Compile finishes.
func solveFailures(t *gotoTrie, queueCapacity int) ([]int32, error) {
	n := t.stateCount()
	failure := make([]int32, n)

	q := newStateQueue(queueCapacity)

	for b := 0; b < 256; b++ {
		child := t.next(0, byte(b))
		if child == 0 || child == failState {
			continue
		}
		failure[child] = 0
		if !q.push(child) {
			return nil, ErrCapacityExceeded
		}
	}

	for !q.empty() {
		r := q.pop()
		for b := 0; b < 256; b++ {
			u := t.next(r, byte(b))
			if u == failState {
				continue
			}
			if !q.push(u) {
				return nil, ErrCapacityExceeded
			}

			s := failure[r]
			for t.next(s, byte(b)) == failState && s != 0 {
				s = failure[s]
			}
			dest := t.next(s, byte(b))
			if dest == failState {
				dest = 0
			}
			failure[u] = dest

			for _, id := range t.output[dest] {
				t.addOutput(u, id)
			}
		}
	}

	return failure, nil
}
