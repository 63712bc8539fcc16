package engine

import (
	"time"

	"github.com/KirkDiggler/tamagotchi-api/internal/entities/tamagotchi"
)

// Care timing rules
const (
	// WorkStreakLimit consecutive study/play/art actions force a rest
	WorkStreakLimit = 3
	RestDuration    = 30 * time.Minute
)

// CareCooldowns is the minimum gap between two uses of the same action
var CareCooldowns = map[tamagotchi.CareAction]time.Duration{
	tamagotchi.CareActionStudy: 10 * time.Minute,
	tamagotchi.CareActionPlay:  5 * time.Minute,
	tamagotchi.CareActionArt:   10 * time.Minute,
}

// NewCreatureInput names the creature being hatched
type NewCreatureInput struct {
	UserID string
	Name   string
	Gender tamagotchi.Gender
	Now    time.Time
}

// NewCreatureOutput contains the creature with defaults applied and genes drawn
type NewCreatureOutput struct {
	Creature *tamagotchi.Creature
}

// DrawGenesInput is empty; genes do not depend on the creature
type DrawGenesInput struct{}

// DrawGenesOutput contains one allele per trait
type DrawGenesOutput struct {
	Genes tamagotchi.Genes
}

// ApplyNaturalDriftInput applies Ticks rounds of drift
type ApplyNaturalDriftInput struct {
	Creature *tamagotchi.Creature
	Ticks    int
}

// ApplyNaturalDriftOutput reports what drift changed
type ApplyNaturalDriftOutput struct {
	Ticks    int
	FellSick bool
}

// RunDailyRoutineInput contains the creature living the day
type RunDailyRoutineInput struct {
	Creature *tamagotchi.Creature
}

// RunDailyRoutineOutput contains one log line per routine step
type RunDailyRoutineOutput struct {
	Log              []string
	PreviousAgeGroup tamagotchi.AgeGroup
	AgeGroupChanged  bool
	AttendedSchool   bool
	Lessons          int
}

// PerformCareInput identifies the action and when it happens
type PerformCareInput struct {
	Creature *tamagotchi.Creature
	Action   tamagotchi.CareAction
	Now      time.Time
}

// PerformCareOutput describes an accepted action
type PerformCareOutput struct {
	Message string
	// RestStarted is set when this action used up the work streak
	RestStarted bool
}

// DrawLifeEventInput carries what the event text needs
type DrawLifeEventInput struct {
	Name   string
	Gender tamagotchi.Gender
}

// DrawLifeEventOutput contains the drawn event
type DrawLifeEventOutput struct {
	Event LifeEvent
}

// DrawFactInput is empty
type DrawFactInput struct{}

// DrawFactOutput contains a genetics fact
type DrawFactOutput struct {
	Fact string
}

// EvaluateDestinyInput contains the creature to judge
type EvaluateDestinyInput struct {
	Creature *tamagotchi.Creature
}

// EvaluateDestinyOutput contains the report
type EvaluateDestinyOutput struct {
	Report DestinyReport
}

// LifeEvent is a rendered catalog entry plus its effect
type LifeEvent struct {
	Text   string
	Effect tamagotchi.LifeEventEffect
}

// DestinyReport is either a final outcome or, for younger creatures, a prediction
type DestinyReport struct {
	// Final is true once the creature reached DestinyAgeDays
	Final   bool
	Outcome tamagotchi.Destiny

	// Prediction fields, set when Final is false
	CareerPerYear   float64
	CriminalPerYear float64
	Advice          []string
}
