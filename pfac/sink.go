package pfac

import "github.com/bits-and-blooms/bitset"

// Sink is the caller-owned match-collection structure a Scan call
// writes into: a bitset so a pid is recorded at most once per scan,
// plus an ordered, append-only list of the pids seen, in first-match
// order.
type Sink struct {
	seen     *bitset.BitSet
	pidList  []uint32
	capacity uint32
}

// NewSink allocates a Sink capable of recording any pattern id in
// [0, capacity). capacity should be at least Context.SinkCapacity().
func NewSink(capacity uint32) *Sink {
	return &Sink{
		seen:     bitset.New(uint(capacity)),
		pidList:  make([]uint32, 0, capacity),
		capacity: capacity,
	}
}

// Capacity returns the pid space this sink was allocated for.
func (s *Sink) Capacity() uint32 {
	return s.capacity
}

// record idempotently adds pid to the sink. Returns true the first
// time pid is recorded since the sink was created or last Reset, false
// on any repeat.
func (s *Sink) record(pid uint32) bool {
	if s.seen.Test(uint(pid)) {
		return false
	}
	s.seen.Set(uint(pid))
	s.pidList = append(s.pidList, pid)
	return true
}

// Matches returns the unique pattern ids recorded since the sink was
// created or last Reset, in first-match order. Scan does not clear the
// sink, so ids from earlier scans stay listed until Reset.
func (s *Sink) Matches() []uint32 {
	return s.pidList
}

// Count returns the number of unique pattern ids currently recorded.
func (s *Sink) Count() int {
	return len(s.pidList)
}

// Reset clears the sink so it can be reused for another scan.
func (s *Sink) Reset() {
	s.seen.ClearAll()
	s.pidList = s.pidList[:0]
}
