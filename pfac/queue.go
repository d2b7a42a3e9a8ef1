package pfac

import "github.com/bits-and-blooms/bitset"

// stateQueue is a fixed-capacity BFS ring buffer sized to the maximum
// expected state count. Enqueues are deduplicated against a bitset
// indexed by state id rather than a linear scan, using
// bits-and-blooms/bitset for compact id-set bookkeeping. Overflow is a
// hard error surfaced as ErrCapacityExceeded.
type stateQueue struct {
	slots    []int32
	enqueued *bitset.BitSet
	head     int
	tail     int
	count    int
}

func newStateQueue(capacity int) *stateQueue {
	return &stateQueue{
		slots:    make([]int32, capacity),
		enqueued: bitset.New(uint(capacity)),
	}
}

// push enqueues state if it has not already been enqueued this pass.
// It reports false (ErrCapacityExceeded at the caller) if the ring is
// full. BitSet.Set grows the underlying bitset automatically, so
// dedup works regardless of how state ids compare to the queue's
// slot capacity.
func (q *stateQueue) push(state int32) bool {
	if q.enqueued.Test(uint(state)) {
		return true
	}
	if q.count == len(q.slots) {
		return false
	}
	q.enqueued.Set(uint(state))
	q.slots[q.tail] = state
	q.tail = (q.tail + 1) % len(q.slots)
	q.count++
	return true
}

// markSeen marks state as already-enqueued without placing it in the
// ring, for callers (the delta flattener's root row) that process a
// state's transitions directly rather than via pop.
func (q *stateQueue) markSeen(state int32) {
	q.enqueued.Set(uint(state))
}

func (q *stateQueue) empty() bool {
	return q.count == 0
}

func (q *stateQueue) pop() int32 {
	s := q.slots[q.head]
	q.head = (q.head + 1) % len(q.slots)
	q.count--
	return s
}
