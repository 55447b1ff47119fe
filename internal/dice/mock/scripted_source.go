package dicemock

import (
	"fmt"
	"sync"
)

// ScriptedSource implements dice.Source with predetermined face indexes
type ScriptedSource struct {
	mu      sync.Mutex
	indexes []int
	next    int
}

// NewScriptedSource creates a source that returns indexes in order
func NewScriptedSource(indexes ...int) *ScriptedSource {
	return &ScriptedSource{indexes: indexes}
}

// SetIndexes replaces the script and rewinds it
func (s *ScriptedSource) SetIndexes(indexes ...int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.indexes = indexes
	s.next = 0
}

// Remaining returns how many scripted indexes have not been drawn
func (s *ScriptedSource) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.indexes) - s.next
}

// Intn implements dice.Source.Intn. It fails when the script is exhausted
// or the next index does not fit in [0, n).
func (s *ScriptedSource) Intn(n int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.next >= len(s.indexes) {
		return 0, fmt.Errorf("no more scripted indexes available (used %d of %d)", s.next, len(s.indexes))
	}

	index := s.indexes[s.next]
	s.next++
	if index < 0 || index >= n {
		return 0, fmt.Errorf("scripted index %d does not fit a %d-sided die", index, n)
	}
	return index, nil
}
