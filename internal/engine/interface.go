// Package engine defines the creature simulation: vitals drift, the daily routine,
// care actions, life events and destiny.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/tamagotchi-api/internal/engine Engine

import (
	"context"
)

// Engine runs the simulation rules against a creature. Methods mutate the creature
// they are given and never touch storage.
type Engine interface {
	// Lifecycle
	NewCreature(ctx context.Context, input *NewCreatureInput) (*NewCreatureOutput, error)
	DrawGenes(ctx context.Context, input *DrawGenesInput) (*DrawGenesOutput, error)

	// Vitals
	ApplyNaturalDrift(ctx context.Context, input *ApplyNaturalDriftInput) (*ApplyNaturalDriftOutput, error)

	// Daily routine and care
	RunDailyRoutine(ctx context.Context, input *RunDailyRoutineInput) (*RunDailyRoutineOutput, error)
	PerformCare(ctx context.Context, input *PerformCareInput) (*PerformCareOutput, error)

	// Random content
	DrawLifeEvent(ctx context.Context, input *DrawLifeEventInput) (*DrawLifeEventOutput, error)
	DrawFact(ctx context.Context, input *DrawFactInput) (*DrawFactOutput, error)

	// Destiny
	EvaluateDestiny(ctx context.Context, input *EvaluateDestinyInput) (*EvaluateDestinyOutput, error)
}
