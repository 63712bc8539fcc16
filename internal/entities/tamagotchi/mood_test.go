package tamagotchi_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/tamagotchi-api/internal/entities/tamagotchi"
)

type MoodTestSuite struct {
	suite.Suite
}

func TestMoodSuite(t *testing.T) {
	suite.Run(t, new(MoodTestSuite))
}

func vitals(health, hunger, hygiene, energy, happiness int) *tamagotchi.Creature {
	return &tamagotchi.Creature{
		Health:    health,
		Hunger:    hunger,
		Hygiene:   hygiene,
		Energy:    energy,
		Happiness: happiness,
	}
}

func (s *MoodTestSuite) TestComputeMood() {
	testCases := []struct {
		name     string
		creature *tamagotchi.Creature
		expected tamagotchi.Mood
	}{
		{
			name:     "sick wins over everything",
			creature: func() *tamagotchi.Creature { c := vitals(100, 0, 0, 100, 100); c.Sick = true; return c }(),
			expected: tamagotchi.MoodSick,
		},
		{
			name:     "low energy is tired",
			creature: vitals(100, 0, 0, 29, 100),
			expected: tamagotchi.MoodTired,
		},
		{
			// 30 + 20 + 20 + 15 + 15 = 100
			name:     "best score is happy",
			creature: vitals(100, 0, 0, 100, 100),
			expected: tamagotchi.MoodHappy,
		},
		{
			// 30 + 20 + 20 + 15 + 0 = 85
			name:     "exactly eighty five is not yet happy",
			creature: vitals(100, 0, 100, 100, 100),
			expected: tamagotchi.MoodExcited,
		},
		{
			// 30 + 20 + 20 + 15 + 0.75 = 85.75
			name:     "just above eighty five is happy",
			creature: vitals(100, 0, 95, 100, 100),
			expected: tamagotchi.MoodHappy,
		},
		{
			// 30 + 20 + 20 + 12 + 0 = 82
			name:     "spotless but not rested is excited",
			creature: vitals(100, 0, 100, 80, 100),
			expected: tamagotchi.MoodExcited,
		},
		{
			// 15 + 8 + 10 + 7.5 + 7.5 = 48
			name:     "below fifty is sad",
			creature: vitals(40, 50, 50, 50, 50),
			expected: tamagotchi.MoodSad,
		},
		{
			// 18 + 12 + 12 + 9 + 6 = 57
			name:     "middling is neutral",
			creature: vitals(60, 40, 60, 60, 60),
			expected: tamagotchi.MoodNeutral,
		},
		{
			// 0 + 0 + 0 + 4.5 + 0 = 4.5
			name:     "starving and miserable is angry",
			creature: vitals(0, 100, 100, 30, 0),
			expected: tamagotchi.MoodAngry,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, tamagotchi.ComputeMood(tc.creature))
		})
	}
}

func (s *MoodTestSuite) TestAgeGroupFor() {
	testCases := []struct {
		years    int
		expected tamagotchi.AgeGroup
	}{
		{0, tamagotchi.AgeGroupToddler},
		{2, tamagotchi.AgeGroupToddler},
		{3, tamagotchi.AgeGroupPreschooler},
		{6, tamagotchi.AgeGroupPreschooler},
		{7, tamagotchi.AgeGroupSchoolchild},
		{11, tamagotchi.AgeGroupSchoolchild},
		{12, tamagotchi.AgeGroupTeenager},
		{17, tamagotchi.AgeGroupTeenager},
		{18, tamagotchi.AgeGroupAdult},
	}

	for _, tc := range testCases {
		s.Run(string(tc.expected), func() {
			s.Equal(tc.expected, tamagotchi.AgeGroupFor(tc.years*tamagotchi.DaysPerYear))
		})
	}

	s.True(tamagotchi.AgeGroupSchoolchild.IsSchoolAge())
	s.True(tamagotchi.AgeGroupTeenager.IsSchoolAge())
	s.False(tamagotchi.AgeGroupAdult.IsSchoolAge())
}
