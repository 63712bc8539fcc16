// Package journal stores the per-creature history of notable events.
// The journal is append-only and capped at tamagotchi.JournalLimit entries per user.
package journal

//go:generate mockgen -destination=mock/mock_repository.go -package=journalmock github.com/KirkDiggler/tamagotchi-api/internal/repositories/journal Repository

import (
	"context"

	"github.com/KirkDiggler/tamagotchi-api/internal/entities/tamagotchi"
	"github.com/KirkDiggler/tamagotchi-api/internal/errors"
)

// Repository defines the interface for journal persistence
type Repository interface {
	// Append records an entry, assigning its ID. The oldest entries beyond the limit are dropped.
	// Returns errors.InvalidArgument for a nil entry, empty user id or empty text
	// Returns errors.Internal for storage failures
	Append(ctx context.Context, input AppendInput) (*AppendOutput, error)

	// List returns a user's entries, newest first
	// Returns errors.InvalidArgument for an empty user id
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Clear drops every entry for a user, used when their pet is replaced
	// Returns errors.InvalidArgument for an empty user id
	// Returns errors.Internal for storage failures
	Clear(ctx context.Context, input ClearInput) (*ClearOutput, error)
}

// AppendInput defines the input for appending an entry
type AppendInput struct {
	Entry *tamagotchi.JournalEntry
}

// AppendOutput defines the output for appending an entry
type AppendOutput struct {
	Entry *tamagotchi.JournalEntry
}

// ListInput defines the input for listing entries
type ListInput struct {
	UserID string
	// Limit caps the result; zero or anything above the journal limit means all
	Limit int
}

// ListOutput defines the output for listing entries
type ListOutput struct {
	Entries []*tamagotchi.JournalEntry
}

// ClearInput defines the input for clearing a journal
type ClearInput struct {
	UserID string
}

// ClearOutput defines the output for clearing a journal
type ClearOutput struct {
	// Cleared is false when the user had no journal
	Cleared bool
}

func validateAppend(input AppendInput) error {
	if input.Entry == nil {
		return errors.InvalidArgument("entry cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("user_id", input.Entry.UserID, vb)
	errors.ValidateRequired("text", input.Entry.Text, vb)
	return vb.Build()
}

func effectiveLimit(limit int) int {
	if limit <= 0 || limit > tamagotchi.JournalLimit {
		return tamagotchi.JournalLimit
	}
	return limit
}
