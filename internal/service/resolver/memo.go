package resolver

import (
	"sync"
	"time"
)

// Memo is a single-slot memo over the last resolved input. It suppresses a
// redundant backend round-trip when navigation re-triggers with an identical
// input; a distinct input overwrites the slot. Only stable outcomes (a found
// profile or a definitive not-found) are stored, transient failures are not.
type Memo struct {
	mu         sync.Mutex
	input      string
	outcome    *Resolution
	resolvedAt time.Time
}

func NewMemo() *Memo {
	return &Memo{}
}

func (m *Memo) lookup(input string) (*Resolution, bool) {
	if m == nil {
		return nil, false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.outcome == nil || m.input != input {
		return nil, false
	}
	return m.outcome, true
}

func (m *Memo) remember(input string, outcome *Resolution) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.input = input
	m.outcome = outcome
	m.resolvedAt = time.Now()
}
