package tamagotchi

// Mood thresholds
const (
	TiredEnergyBelow = 30

	moodHappyAbove   = 85
	moodExcitedAbove = 70
	moodNeutralAbove = 50
	moodSadAbove     = 30
)

// MoodScore is the weighted vitals score behind ComputeMood
func MoodScore(c *Creature) float64 {
	return 0.3*float64(c.Happiness) +
		0.2*float64(c.Health) +
		0.2*float64(StatMax-c.Hunger) +
		0.15*float64(c.Energy) +
		0.15*float64(StatMax-c.Hygiene)
}

// ComputeMood derives mood from flags and vitals
func ComputeMood(c *Creature) Mood {
	if c.Sick {
		return MoodSick
	}
	if c.Energy < TiredEnergyBelow {
		return MoodTired
	}

	score := MoodScore(c)
	switch {
	case score > moodHappyAbove:
		return MoodHappy
	case score > moodExcitedAbove:
		return MoodExcited
	case score > moodNeutralAbove:
		return MoodNeutral
	case score > moodSadAbove:
		return MoodSad
	default:
		return MoodAngry
	}
}

// AgeGroupFor buckets an age in days
func AgeGroupFor(ageDays int) AgeGroup {
	switch years := ageDays / DaysPerYear; {
	case years < 3:
		return AgeGroupToddler
	case years < 7:
		return AgeGroupPreschooler
	case years < 12:
		return AgeGroupSchoolchild
	case years < 18:
		return AgeGroupTeenager
	default:
		return AgeGroupAdult
	}
}
