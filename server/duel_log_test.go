package server

import (
	"testing"
	"time"
)

func sampleDuel(id string) Duel {
	return Duel{
		ID:       id,
		HandA:    HandResult{Input: "AsKsQsJs10s", Rank: "Straight Flush", Kickers: []int{14}},
		HandB:    HandResult{Input: "2c2d2h2s3c", Rank: "Four of a Kind", Kickers: []int{2, 3}},
		Outcome:  "first",
		Winner:   "A",
		PlayedAt: time.Now().UTC(),
	}
}

func TestInMemoryDuelLog(t *testing.T) {
	t.Run("Append and load newest first", func(t *testing.T) {
		log := NewInMemoryDuelLog(10)

		for _, id := range []string{"first", "second", "third"} {
			if err := log.Append(sampleDuel(id)); err != nil {
				t.Errorf("Failed to append duel %s: %v", id, err)
			}
		}

		duels, err := log.Recent(0)
		if err != nil {
			t.Errorf("Failed to load duels: %v", err)
		}

		if len(duels) != 3 {
			t.Fatalf("Expected 3 duels, got %d", len(duels))
		}
		if duels[0].ID != "third" {
			t.Errorf("Expected newest duel first, got %s", duels[0].ID)
		}
		if duels[2].ID != "first" {
			t.Errorf("Expected oldest duel last, got %s", duels[2].ID)
		}
	})

	t.Run("Capacity evicts oldest entries", func(t *testing.T) {
		log := NewInMemoryDuelLog(2)

		for _, id := range []string{"first", "second", "third"} {
			if err := log.Append(sampleDuel(id)); err != nil {
				t.Errorf("Failed to append duel %s: %v", id, err)
			}
		}

		duels, err := log.Recent(0)
		if err != nil {
			t.Errorf("Failed to load duels: %v", err)
		}

		if len(duels) != 2 {
			t.Fatalf("Expected 2 duels, got %d", len(duels))
		}
		if duels[0].ID != "third" || duels[1].ID != "second" {
			t.Errorf("Expected [third second], got [%s %s]", duels[0].ID, duels[1].ID)
		}
	})

	t.Run("Limit caps results", func(t *testing.T) {
		log := NewInMemoryDuelLog(10)

		for _, id := range []string{"first", "second", "third"} {
			if err := log.Append(sampleDuel(id)); err != nil {
				t.Errorf("Failed to append duel %s: %v", id, err)
			}
		}

		duels, err := log.Recent(1)
		if err != nil {
			t.Errorf("Failed to load duels: %v", err)
		}

		if len(duels) != 1 {
			t.Fatalf("Expected 1 duel, got %d", len(duels))
		}
		if duels[0].ID != "third" {
			t.Errorf("Expected the newest duel, got %s", duels[0].ID)
		}
	})

	t.Run("Limit beyond retained returns everything", func(t *testing.T) {
		log := NewInMemoryDuelLog(10)

		if err := log.Append(sampleDuel("only")); err != nil {
			t.Errorf("Failed to append duel: %v", err)
		}

		duels, err := log.Recent(50)
		if err != nil {
			t.Errorf("Failed to load duels: %v", err)
		}
		if len(duels) != 1 {
			t.Errorf("Expected 1 duel, got %d", len(duels))
		}
	})

	t.Run("Zero capacity disables history", func(t *testing.T) {
		log := NewInMemoryDuelLog(0)

		if err := log.Append(sampleDuel("dropped")); err != nil {
			t.Errorf("Expected no error appending to disabled log, got %v", err)
		}

		duels, err := log.Recent(0)
		if err != nil {
			t.Errorf("Failed to load duels: %v", err)
		}
		if len(duels) != 0 {
			t.Errorf("Expected 0 duels, got %d", len(duels))
		}
	})
}
