// Package builders provides test data builders for creating test fixtures
package builders

import (
	"time"

	"github.com/KirkDiggler/tamagotchi-api/internal/entities/tamagotchi"
	"github.com/KirkDiggler/tamagotchi-api/internal/testutils"
)

// CreatureBuilder provides a fluent interface for building test creatures
type CreatureBuilder struct {
	creature *tamagotchi.Creature
}

// NewCreatureBuilder starts from testutils.CreateTestCreature
func NewCreatureBuilder() *CreatureBuilder {
	return &CreatureBuilder{creature: testutils.CreateTestCreature(testutils.TestUserID)}
}

// WithUserID sets the owner
func (b *CreatureBuilder) WithUserID(userID string) *CreatureBuilder {
	b.creature.UserID = userID
	return b
}

// WithName sets the name
func (b *CreatureBuilder) WithName(name string) *CreatureBuilder {
	b.creature.Name = name
	return b
}

// WithGender sets the gender
func (b *CreatureBuilder) WithGender(g tamagotchi.Gender) *CreatureBuilder {
	b.creature.Gender = g
	return b
}

// WithVitals sets all five vitals
func (b *CreatureBuilder) WithVitals(health, hunger, hygiene, energy, happiness int) *CreatureBuilder {
	b.creature.Health = health
	b.creature.Hunger = hunger
	b.creature.Hygiene = hygiene
	b.creature.Energy = energy
	b.creature.Happiness = happiness
	return b
}

// WithHunger sets hunger
func (b *CreatureBuilder) WithHunger(hunger int) *CreatureBuilder {
	b.creature.Hunger = hunger
	return b
}

// WithEnergy sets energy
func (b *CreatureBuilder) WithEnergy(energy int) *CreatureBuilder {
	b.creature.Energy = energy
	return b
}

// WithHappiness sets happiness
func (b *CreatureBuilder) WithHappiness(happiness int) *CreatureBuilder {
	b.creature.Happiness = happiness
	return b
}

// WithHygiene sets hygiene
func (b *CreatureBuilder) WithHygiene(hygiene int) *CreatureBuilder {
	b.creature.Hygiene = hygiene
	return b
}

// WithDiscipline sets discipline
func (b *CreatureBuilder) WithDiscipline(discipline int) *CreatureBuilder {
	b.creature.Discipline = discipline
	return b
}

// WithPoints sets the career and criminal accumulators
func (b *CreatureBuilder) WithPoints(career, criminal int) *CreatureBuilder {
	b.creature.CareerPoints = career
	b.creature.CriminalPoints = criminal
	return b
}

// WithDevelopment sets intelligence, social and creativity
func (b *CreatureBuilder) WithDevelopment(intelligence, social, creativity int) *CreatureBuilder {
	b.creature.Intelligence = intelligence
	b.creature.Social = social
	b.creature.Creativity = creativity
	return b
}

// WithAgeYears sets the age and age group
func (b *CreatureBuilder) WithAgeYears(years int) *CreatureBuilder {
	b.creature.AgeDays = years * tamagotchi.DaysPerYear
	b.creature.AgeGroup = tamagotchi.AgeGroupFor(b.creature.AgeDays)
	return b
}

// Sleeping puts the creature to bed
func (b *CreatureBuilder) Sleeping() *CreatureBuilder {
	b.creature.Sleeping = true
	return b
}

// Sick makes the creature ill
func (b *CreatureBuilder) Sick() *CreatureBuilder {
	b.creature.Sick = true
	return b
}

// WithLastDriftAt sets when drift was last applied
func (b *CreatureBuilder) WithLastDriftAt(t time.Time) *CreatureBuilder {
	b.creature.LastDriftAt = t
	return b
}

// Build recomputes mood and returns the creature
func (b *CreatureBuilder) Build() *tamagotchi.Creature {
	b.creature.Mood = tamagotchi.ComputeMood(b.creature)
	return b.creature
}
