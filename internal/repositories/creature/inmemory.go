package creature

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/tamagotchi-api/internal/entities/tamagotchi"
	"github.com/KirkDiggler/tamagotchi-api/internal/errors"
)

// InMemoryRepository keeps creatures in a map. Values are cloned on the way in and out
// so callers never share state with the store.
type InMemoryRepository struct {
	mu        sync.RWMutex
	creatures map[string]*tamagotchi.Creature
}

// NewInMemory creates a new in-memory creature repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		creatures: make(map[string]*tamagotchi.Creature),
	}
}

// Get implements Repository
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.creatures[input.UserID]
	if !ok {
		return nil, errors.NotFoundf("no creature for user %s", input.UserID)
	}

	return &GetOutput{Creature: c.Clone()}, nil
}

// Save implements Repository
func (r *InMemoryRepository) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.creatures[input.Creature.UserID] = input.Creature.Clone()

	return &SaveOutput{Creature: input.Creature}, nil
}

// List implements Repository. Creatures are returned in user id order.
func (r *InMemoryRepository) List(_ context.Context, _ ListInput) (*ListOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return &ListOutput{Creatures: sortedClones(r.creatures)}, nil
}

// Flush implements Repository
func (r *InMemoryRepository) Flush(_ context.Context, _ FlushInput) (*FlushOutput, error) {
	return &FlushOutput{}, nil
}

func sortedClones(m map[string]*tamagotchi.Creature) []*tamagotchi.Creature {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]*tamagotchi.Creature, 0, len(ids))
	for _, id := range ids {
		out = append(out, m[id].Clone())
	}
	return out
}
