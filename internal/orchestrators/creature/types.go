package creature

import (
	"github.com/KirkDiggler/tamagotchi-api/internal/engine"
	"github.com/KirkDiggler/tamagotchi-api/internal/entities/tamagotchi"
	"github.com/KirkDiggler/tamagotchi-api/internal/leaderboard"
)

// StartInput hatches a creature for a user, replacing any existing one
type StartInput struct {
	UserID string
	Name   string
	Gender tamagotchi.Gender
}

// StartOutput contains the new creature
type StartOutput struct {
	Creature *tamagotchi.Creature
	// Replaced is set when the user already had a creature
	Replaced bool
}

// GetStatusInput identifies the creature to look at
type GetStatusInput struct {
	UserID string
}

// GetStatusOutput contains the creature after drift catch-up
type GetStatusOutput struct {
	Creature *tamagotchi.Creature
	Drift    DriftSummary
}

// DriftSummary reports the catch-up applied before an operation
type DriftSummary struct {
	Ticks    int
	FellSick bool
}

// RunDailyInput identifies the creature living a day
type RunDailyInput struct {
	UserID string
}

// RunDailyOutput contains the day's log
type RunDailyOutput struct {
	Creature         *tamagotchi.Creature
	Log              []string
	AgeGroupChanged  bool
	PreviousAgeGroup tamagotchi.AgeGroup
	// Destiny is set on the day the creature becomes old enough for a final verdict
	Destiny *engine.DestinyReport
}

// PerformCareInput identifies a care action
type PerformCareInput struct {
	UserID string
	Action tamagotchi.CareAction
}

// PerformCareOutput contains the outcome of an accepted action
type PerformCareOutput struct {
	Creature    *tamagotchi.Creature
	Message     string
	RestStarted bool
}

// TriggerLifeEventInput identifies the creature an event happens to
type TriggerLifeEventInput struct {
	UserID string
}

// TriggerLifeEventOutput contains the applied event
type TriggerLifeEventOutput struct {
	Creature *tamagotchi.Creature
	Event    engine.LifeEvent
}

// EvaluateDestinyInput identifies the creature to judge
type EvaluateDestinyInput struct {
	UserID string
}

// EvaluateDestinyOutput contains the verdict or prediction
type EvaluateDestinyOutput struct {
	Creature *tamagotchi.Creature
	Report   engine.DestinyReport
}

// GetLeaderboardInput asks for the ranking. UserID is optional and selects the
// position to report.
type GetLeaderboardInput struct {
	UserID string
	// Limit caps Entries; zero means DefaultLeaderboardSize
	Limit int
}

// GetLeaderboardOutput contains the head of the ranking
type GetLeaderboardOutput struct {
	Entries []leaderboard.Entry
	// Position of UserID, 0 if the user has no creature
	Position int
	Rating   int
	Total    int
}

// GetJournalInput identifies the journal to read
type GetJournalInput struct {
	UserID string
	Limit  int
}

// GetJournalOutput contains entries, newest first
type GetJournalOutput struct {
	Name    string
	Entries []*tamagotchi.JournalEntry
}

// GetGenesInput identifies the creature whose genes to show
type GetGenesInput struct {
	UserID string
}

// GetGenesOutput describes a creature's genes
type GetGenesOutput struct {
	Name     string
	Genes    tamagotchi.Genes
	Dominant bool
}

// GetFactInput is empty
type GetFactInput struct{}

// GetFactOutput contains a genetics fact
type GetFactOutput struct {
	Fact string
}
