package server

import (
	"sync"
	"time"
)

// HandResult describes one side of a duel as it was evaluated.
type HandResult struct {
	Input   string `json:"input"`
	Best    string `json:"best"`
	Rank    string `json:"rank"`
	Kickers []int  `json:"kickers"`
}

// Duel is the record of a single evaluated matchup.
type Duel struct {
	ID       string     `json:"id"`
	HandA    HandResult `json:"handA"`
	HandB    HandResult `json:"handB"`
	Outcome  string     `json:"outcome"`
	Winner   string     `json:"winner,omitempty"`
	PlayedAt time.Time  `json:"playedAt"`
}

// DuelLog is the interface for storing and retrieving played duels.
type DuelLog interface {
	Append(duel Duel) error
	Recent(limit int) ([]Duel, error)
}

// InMemoryDuelLog is an in-memory implementation of the DuelLog interface.
// It retains at most capacity duels, evicting the oldest first. A capacity
// of zero disables history entirely.
type InMemoryDuelLog struct {
	duels    []Duel
	capacity int
	mutex    sync.RWMutex
}

// NewInMemoryDuelLog creates a new in-memory duel log.
func NewInMemoryDuelLog(capacity int) *InMemoryDuelLog {
	return &InMemoryDuelLog{
		capacity: capacity,
	}
}

// Append adds a duel to the log, evicting the oldest entry when full.
func (l *InMemoryDuelLog) Append(duel Duel) error {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if l.capacity <= 0 {
		return nil
	}

	l.duels = append(l.duels, duel)
	if len(l.duels) > l.capacity {
		l.duels = l.duels[len(l.duels)-l.capacity:]
	}
	return nil
}

// Recent returns up to limit duels, newest first. A limit of zero or one
// exceeding the number of retained duels returns everything retained.
func (l *InMemoryDuelLog) Recent(limit int) ([]Duel, error) {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	n := len(l.duels)
	if limit <= 0 || limit > n {
		limit = n
	}

	// Make a copy to avoid potential race conditions
	result := make([]Duel, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		result = append(result, l.duels[i])
	}
	return result, nil
}
