// Package creature provides the interface for creature persistence
package creature

//go:generate mockgen -destination=mock/mock_repository.go -package=creaturemock github.com/KirkDiggler/tamagotchi-api/internal/repositories/creature Repository

import (
	"context"

	"github.com/KirkDiggler/tamagotchi-api/internal/entities/tamagotchi"
	"github.com/KirkDiggler/tamagotchi-api/internal/errors"
)

// Repository defines the interface for creature persistence. There is at most one
// creature per user, keyed by user id.
type Repository interface {
	// Get retrieves the creature owned by a user
	// Returns errors.InvalidArgument for an empty user id
	// Returns errors.NotFound if the user has no creature
	// Returns errors.DataLoss if the stored record cannot be decoded
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save creates or replaces a user's creature
	// Returns errors.InvalidArgument for a nil creature or empty user id
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// List returns every stored creature in no particular order
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Flush makes all saved creatures durable. Stores that persist on every Save
	// treat it as a no-op.
	// Returns errors.Internal for storage failures
	Flush(ctx context.Context, input FlushInput) (*FlushOutput, error)
}

// GetInput defines the input for getting a creature
type GetInput struct {
	UserID string
}

// GetOutput defines the output for getting a creature
type GetOutput struct {
	Creature *tamagotchi.Creature
}

// SaveInput defines the input for saving a creature
type SaveInput struct {
	Creature *tamagotchi.Creature
}

// SaveOutput defines the output for saving a creature
type SaveOutput struct {
	Creature *tamagotchi.Creature
}

// ListInput defines the input for listing creatures
type ListInput struct{}

// ListOutput defines the output for listing creatures
type ListOutput struct {
	Creatures []*tamagotchi.Creature
}

// FlushInput defines the input for flushing pending writes
type FlushInput struct{}

// FlushOutput defines the output for flushing pending writes
type FlushOutput struct {
	// Written is false when there was nothing to persist
	Written bool
}

const (
	errCreatureNil = "creature cannot be nil"
	errUserIDEmpty = "user ID cannot be empty"
)

func validateSave(input SaveInput) error {
	if input.Creature == nil {
		return errors.InvalidArgument(errCreatureNil)
	}
	if input.Creature.UserID == "" {
		return errors.InvalidArgument(errUserIDEmpty)
	}
	return nil
}
