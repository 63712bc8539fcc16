// Package leaderboard computes creature ratings and the tournament ranking.
// Entries are derived on demand and never stored.
package leaderboard

import (
	"sort"

	"github.com/KirkDiggler/tamagotchi-api/internal/entities/tamagotchi"
)

// Entry is one ranked creature
type Entry struct {
	UserID   string
	Name     string
	Rating   int
	Position int
}

// Rating scores a creature's development
func Rating(c *tamagotchi.Creature) int {
	return c.CareerPoints*2 +
		c.Intelligence*3 +
		c.Discipline*2 +
		c.Social +
		c.Creativity -
		c.CriminalPoints*5
}

// Rank sorts creatures by rating, highest first. Equal ratings are ordered by user id.
func Rank(creatures []*tamagotchi.Creature) []Entry {
	entries := make([]Entry, 0, len(creatures))
	for _, c := range creatures {
		if c == nil {
			continue
		}
		entries = append(entries, Entry{
			UserID: c.UserID,
			Name:   c.Name,
			Rating: Rating(c),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Rating != entries[j].Rating {
			return entries[i].Rating > entries[j].Rating
		}
		return entries[i].UserID < entries[j].UserID
	})

	for i := range entries {
		entries[i].Position = i + 1
	}
	return entries
}

// Position returns the 1-based rank of userID, or 0 if absent
func Position(entries []Entry, userID string) int {
	for _, e := range entries {
		if e.UserID == userID {
			return e.Position
		}
	}
	return 0
}

// Top returns at most n entries from the head of a ranking
func Top(entries []Entry, n int) []Entry {
	if n < 0 || n >= len(entries) {
		return entries
	}
	return entries[:n]
}
