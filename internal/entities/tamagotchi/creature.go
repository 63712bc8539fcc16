// Package tamagotchi holds the creature entity: its attributes, derived state,
// genes and the versioned record it is persisted as.
package tamagotchi

import (
	"time"
)

// EntityType is reported by Creature.GetType for rpg-toolkit events
const EntityType = "tamagotchi"

// Age and naming constants
const (
	DaysPerYear    = 365
	StartAgeDays   = 6 * DaysPerYear
	DestinyAgeDays = 13 * DaysPerYear
	NameMinLength  = 2
	NameMaxLength  = 15
	StatMin        = 0
	StatMax        = 100
)

// Skills counts practice in each skill
type Skills struct {
	Sport     int `json:"sport"`
	Academics int `json:"academics"`
	Art       int `json:"art"`
	Music     int `json:"music"`
}

// DailyStats resets at the start of every daily routine
type DailyStats struct {
	LessonsAttended       int `json:"lessons_attended"`
	MealsEaten            int `json:"meals_eaten"`
	StudySessions         int `json:"study_sessions"`
	EntertainmentSessions int `json:"entertainment_sessions"`
}

// Creature is the simulated child owned by one chat user
type Creature struct {
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Gender    Gender    `json:"gender"`
	CreatedAt time.Time `json:"created_at"`

	// Vitals, clamped to [StatMin, StatMax]. Higher Hunger means hungrier.
	Health    int `json:"health"`
	Hunger    int `json:"hunger"`
	Hygiene   int `json:"hygiene"`
	Energy    int `json:"energy"`
	Happiness int `json:"happiness"`

	// Development. Money has no upper bound.
	Intelligence int `json:"intelligence"`
	Money        int `json:"money"`
	Discipline   int `json:"discipline"`
	Social       int `json:"social"`
	Creativity   int `json:"creativity"`
	Reputation   int `json:"reputation"`

	Mood     Mood     `json:"mood"`
	AgeDays  int      `json:"age_days"`
	AgeGroup AgeGroup `json:"age_group"`

	Sleeping bool `json:"sleeping"`
	Sick     bool `json:"sick"`
	AtSchool bool `json:"at_school"`

	CareerPoints   int        `json:"career_points"`
	CriminalPoints int        `json:"criminal_points"`
	Skills         Skills     `json:"skills"`
	Daily          DailyStats `json:"daily"`

	LastCareAt      map[CareAction]time.Time `json:"last_care_at,omitempty"`
	ConsecutiveWork int                      `json:"consecutive_work"`
	RestUntil       time.Time                `json:"rest_until"`
	LastDriftAt     time.Time                `json:"last_drift_at"`
	LastRoutineAt   time.Time                `json:"last_routine_at"`
	RoutinesLived   int                      `json:"routines_lived"`

	Genes Genes `json:"genes"`
}

// GetID implements core.Entity
func (c *Creature) GetID() string {
	return c.UserID
}

// GetType implements core.Entity
func (c *Creature) GetType() string {
	return EntityType
}

// AgeYears returns the whole years lived
func (c *Creature) AgeYears() int {
	return c.AgeDays / DaysPerYear
}

// ApplyDefaults sets the starting attributes of a newly created creature
func (c *Creature) ApplyDefaults() {
	c.Health = StatMax
	c.Hunger = StatMin
	c.Hygiene = StatMax
	c.Energy = StatMax
	c.Happiness = StatMax

	c.Intelligence = 10
	c.Money = 0
	c.Discipline = 50
	c.Social = 10
	c.Creativity = 10
	c.Reputation = 50

	c.AgeDays = StartAgeDays
	c.AgeGroup = AgeGroupFor(c.AgeDays)
	c.Mood = ComputeMood(c)
}

// ClampAll pulls every bounded attribute back into range
func (c *Creature) ClampAll() {
	c.Health = clamp(c.Health)
	c.Hunger = clamp(c.Hunger)
	c.Hygiene = clamp(c.Hygiene)
	c.Energy = clamp(c.Energy)
	c.Happiness = clamp(c.Happiness)

	c.Intelligence = clamp(c.Intelligence)
	c.Discipline = clamp(c.Discipline)
	c.Social = clamp(c.Social)
	c.Creativity = clamp(c.Creativity)
	c.Reputation = clamp(c.Reputation)

	c.Money = floor(c.Money)
	c.CareerPoints = floor(c.CareerPoints)
	c.CriminalPoints = floor(c.CriminalPoints)
	c.ConsecutiveWork = floor(c.ConsecutiveWork)
	c.AgeDays = floor(c.AgeDays)

	c.Skills.Sport = floor(c.Skills.Sport)
	c.Skills.Academics = floor(c.Skills.Academics)
	c.Skills.Art = floor(c.Skills.Art)
	c.Skills.Music = floor(c.Skills.Music)
}

// RefreshDerived recomputes age group and mood
func (c *Creature) RefreshDerived() {
	c.AgeGroup = AgeGroupFor(c.AgeDays)
	c.Mood = ComputeMood(c)
}

// AddAttribute adds delta to the named attribute without clamping
func (c *Creature) AddAttribute(attr Attribute, delta int) {
	switch attr {
	case AttributeHealth:
		c.Health += delta
	case AttributeHappiness:
		c.Happiness += delta
	case AttributeIntelligence:
		c.Intelligence += delta
	case AttributeMoney:
		c.Money += delta
	case AttributeSocial:
		c.Social += delta
	case AttributeCreativity:
		c.Creativity += delta
	case AttributeReputation:
		c.Reputation += delta
	case AttributeDiscipline:
		c.Discipline += delta
	}
}

// AddToBucket adds delta to a point bucket without clamping
func (c *Creature) AddToBucket(bucket Bucket, delta int) {
	switch bucket {
	case BucketCareer:
		c.CareerPoints += delta
	case BucketCriminal:
		c.CriminalPoints += delta
	case BucketHappiness:
		c.Happiness += delta
	}
}

// LifeEventEffect is the pair of deltas a life event carries
type LifeEventEffect struct {
	Attribute      Attribute `json:"attribute"`
	AttributeDelta int       `json:"attribute_delta"`
	Bucket         Bucket    `json:"bucket"`
	BucketDelta    int       `json:"bucket_delta"`
}

// ApplyLifeEvent applies both deltas, clamps and recomputes mood
func (c *Creature) ApplyLifeEvent(effect LifeEventEffect) {
	c.AddAttribute(effect.Attribute, effect.AttributeDelta)
	c.AddToBucket(effect.Bucket, effect.BucketDelta)
	c.ClampAll()
	c.Mood = ComputeMood(c)
}

// Clone returns a deep copy
func (c *Creature) Clone() *Creature {
	if c == nil {
		return nil
	}
	out := *c
	if c.LastCareAt != nil {
		out.LastCareAt = make(map[CareAction]time.Time, len(c.LastCareAt))
		for k, v := range c.LastCareAt {
			out.LastCareAt[k] = v
		}
	}
	return &out
}

func clamp(v int) int {
	if v < StatMin {
		return StatMin
	}
	if v > StatMax {
		return StatMax
	}
	return v
}

func floor(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
