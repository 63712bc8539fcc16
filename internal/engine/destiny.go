package engine

import (
	"github.com/KirkDiggler/tamagotchi-api/internal/entities/tamagotchi"
)

// DestinyRule pairs an outcome with the condition that selects it
type DestinyRule struct {
	Outcome tamagotchi.Destiny
	Matches func(c *tamagotchi.Creature) bool
}

// DestinyRules are evaluated in order; the first match wins.
// The last rule always matches.
var DestinyRules = []DestinyRule{
	{
		Outcome: tamagotchi.DestinyRich,
		Matches: func(c *tamagotchi.Creature) bool {
			return c.CareerPoints >= 150 && c.CriminalPoints < 50
		},
	},
	{
		Outcome: tamagotchi.DestinyPrison,
		Matches: func(c *tamagotchi.Creature) bool {
			return c.CriminalPoints >= 100
		},
	},
	{
		Outcome: tamagotchi.DestinyIll,
		Matches: func(c *tamagotchi.Creature) bool {
			return c.Health < 30
		},
	},
	{
		Outcome: tamagotchi.DestinyProdigy,
		Matches: func(c *tamagotchi.Creature) bool {
			return c.Intelligence >= 90
		},
	},
	{
		Outcome: tamagotchi.DestinyAverage,
		Matches: func(*tamagotchi.Creature) bool {
			return true
		},
	},
}

// ClassifyDestiny runs DestinyRules against c
func ClassifyDestiny(c *tamagotchi.Creature) tamagotchi.Destiny {
	for _, rule := range DestinyRules {
		if rule.Matches(c) {
			return rule.Outcome
		}
	}
	return tamagotchi.DestinyAverage
}

// adviceRule adds a line to a prediction when it matches
type adviceRule struct {
	text    string
	matches func(c *tamagotchi.Creature, careerRate, criminalRate float64) bool
}

var adviceRules = []adviceRule{
	{
		text: "Very bright. A scientific career is within reach.",
		matches: func(c *tamagotchi.Creature, _, _ float64) bool {
			return c.Intelligence >= 70
		},
	},
	{
		text: "Health is poor. More sleep, food and a doctor's visit would help.",
		matches: func(c *tamagotchi.Creature, _, _ float64) bool {
			return c.Health < 40
		},
	},
	{
		text: "Disciplined and reliable. Keep the routine going.",
		matches: func(c *tamagotchi.Creature, _, _ float64) bool {
			return c.Discipline >= 70
		},
	},
	{
		text: "Trouble is piling up faster than achievements. Watch out!",
		matches: func(_ *tamagotchi.Creature, careerRate, criminalRate float64) bool {
			return criminalRate > careerRate
		},
	},
}

// Predict builds the non-final report for a creature younger than DestinyAgeDays
func Predict(c *tamagotchi.Creature) DestinyReport {
	years := float64(c.AgeDays) / tamagotchi.DaysPerYear
	if years < 1 {
		years = 1
	}

	report := DestinyReport{
		CareerPerYear:   float64(c.CareerPoints) / years,
		CriminalPerYear: float64(c.CriminalPoints) / years,
	}
	for _, rule := range adviceRules {
		if rule.matches(c, report.CareerPerYear, report.CriminalPerYear) {
			report.Advice = append(report.Advice, rule.text)
		}
	}
	return report
}
