package journal

import (
	"context"
	"sync"

	"github.com/KirkDiggler/tamagotchi-api/internal/entities/tamagotchi"
	"github.com/KirkDiggler/tamagotchi-api/internal/errors"
	"github.com/KirkDiggler/tamagotchi-api/internal/pkg/idgen"
)

// InMemoryRepository keeps journals in process memory, newest entry first
type InMemoryRepository struct {
	idGen idgen.Generator

	mu       sync.RWMutex
	journals map[string][]tamagotchi.JournalEntry
}

// NewInMemory creates an in-memory journal. A nil generator yields prefixed UUIDs.
func NewInMemory(gen idgen.Generator) *InMemoryRepository {
	if gen == nil {
		gen = idgen.NewUUID("jrn")
	}
	return &InMemoryRepository{
		idGen:    gen,
		journals: make(map[string][]tamagotchi.JournalEntry),
	}
}

// Append implements Repository
func (r *InMemoryRepository) Append(_ context.Context, input AppendInput) (*AppendOutput, error) {
	if err := validateAppend(input); err != nil {
		return nil, err
	}

	entry := *input.Entry
	if entry.ID == "" {
		entry.ID = r.idGen.Generate()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	entries := append([]tamagotchi.JournalEntry{entry}, r.journals[entry.UserID]...)
	if len(entries) > tamagotchi.JournalLimit {
		entries = entries[:tamagotchi.JournalLimit]
	}
	r.journals[entry.UserID] = entries

	return &AppendOutput{Entry: &entry}, nil
}

// List implements Repository
func (r *InMemoryRepository) List(_ context.Context, input ListInput) (*ListOutput, error) {
	if input.UserID == "" {
		return nil, errors.InvalidArgument("user ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.journals[input.UserID]
	n := min(effectiveLimit(input.Limit), len(stored))

	entries := make([]*tamagotchi.JournalEntry, 0, n)
	for i := 0; i < n; i++ {
		e := stored[i]
		entries = append(entries, &e)
	}

	return &ListOutput{Entries: entries}, nil
}

// Clear implements Repository
func (r *InMemoryRepository) Clear(_ context.Context, input ClearInput) (*ClearOutput, error) {
	if input.UserID == "" {
		return nil, errors.InvalidArgument("user ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.journals[input.UserID]
	delete(r.journals, input.UserID)

	return &ClearOutput{Cleared: ok}, nil
}
