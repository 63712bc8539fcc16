package tamagotchi_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/tamagotchi-api/internal/entities/tamagotchi"
)

type CreatureTestSuite struct {
	suite.Suite
	creature *tamagotchi.Creature
}

func TestCreatureSuite(t *testing.T) {
	suite.Run(t, new(CreatureTestSuite))
}

func (s *CreatureTestSuite) SetupTest() {
	s.creature = &tamagotchi.Creature{
		UserID: "42",
		Name:   "Rex",
		Gender: tamagotchi.GenderBoy,
	}
	s.creature.ApplyDefaults()
}

func (s *CreatureTestSuite) TestApplyDefaults() {
	c := s.creature
	s.Equal(100, c.Health)
	s.Equal(0, c.Hunger)
	s.Equal(100, c.Hygiene)
	s.Equal(100, c.Energy)
	s.Equal(100, c.Happiness)
	s.Equal(10, c.Intelligence)
	s.Equal(0, c.Money)
	s.Equal(50, c.Discipline)
	s.Equal(50, c.Reputation)
	s.Equal(tamagotchi.StartAgeDays, c.AgeDays)
	s.Equal(tamagotchi.AgeGroupPreschooler, c.AgeGroup)
	s.Equal(6, c.AgeYears())
	s.Equal("42", c.GetID())
	s.Equal(tamagotchi.EntityType, c.GetType())
}

func (s *CreatureTestSuite) TestClampAll() {
	c := s.creature
	c.Health = 140
	c.Hunger = -20
	c.Hygiene = 101
	c.Energy = -1
	c.Happiness = 250
	c.Intelligence = 300
	c.Discipline = -5
	c.Reputation = -40
	c.Money = -10
	c.CareerPoints = -3
	c.CriminalPoints = -1
	c.Skills.Sport = -2

	c.ClampAll()

	s.Equal(100, c.Health)
	s.Equal(0, c.Hunger)
	s.Equal(100, c.Hygiene)
	s.Equal(0, c.Energy)
	s.Equal(100, c.Happiness)
	s.Equal(100, c.Intelligence)
	s.Equal(0, c.Discipline)
	s.Equal(0, c.Reputation)
	s.Equal(0, c.Money)
	s.Equal(0, c.CareerPoints)
	s.Equal(0, c.CriminalPoints)
	s.Equal(0, c.Skills.Sport)
}

func (s *CreatureTestSuite) TestMoneyHasNoUpperBound() {
	s.creature.Money = 5000
	s.creature.ClampAll()
	s.Equal(5000, s.creature.Money)
}

func (s *CreatureTestSuite) TestApplyLifeEvent() {
	testCases := []struct {
		name   string
		effect tamagotchi.LifeEventEffect
		check  func(c *tamagotchi.Creature)
	}{
		{
			name: "reputation and career",
			effect: tamagotchi.LifeEventEffect{
				Attribute: tamagotchi.AttributeReputation, AttributeDelta: 10,
				Bucket: tamagotchi.BucketCareer, BucketDelta: 5,
			},
			check: func(c *tamagotchi.Creature) {
				s.Equal(60, c.Reputation)
				s.Equal(5, c.CareerPoints)
			},
		},
		{
			name: "money cannot go negative",
			effect: tamagotchi.LifeEventEffect{
				Attribute: tamagotchi.AttributeMoney, AttributeDelta: -10,
				Bucket: tamagotchi.BucketCriminal, BucketDelta: 3,
			},
			check: func(c *tamagotchi.Creature) {
				s.Equal(0, c.Money)
				s.Equal(3, c.CriminalPoints)
			},
		},
		{
			name: "happiness bucket is clamped",
			effect: tamagotchi.LifeEventEffect{
				Attribute: tamagotchi.AttributeSocial, AttributeDelta: 5,
				Bucket: tamagotchi.BucketHappiness, BucketDelta: 10,
			},
			check: func(c *tamagotchi.Creature) {
				s.Equal(15, c.Social)
				s.Equal(100, c.Happiness)
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.creature.ApplyLifeEvent(tc.effect)
			tc.check(s.creature)
		})
	}
}

func (s *CreatureTestSuite) TestCloneIsDeep() {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.creature.LastCareAt = map[tamagotchi.CareAction]time.Time{tamagotchi.CareActionStudy: now}

	clone := s.creature.Clone()
	clone.LastCareAt[tamagotchi.CareActionStudy] = now.Add(time.Hour)
	clone.Health = 1

	s.Equal(now, s.creature.LastCareAt[tamagotchi.CareActionStudy])
	s.Equal(100, s.creature.Health)
	s.Nil((*tamagotchi.Creature)(nil).Clone())
}

func (s *CreatureTestSuite) TestParseGender() {
	testCases := []struct {
		input    string
		expected tamagotchi.Gender
		ok       bool
	}{
		{"boy", tamagotchi.GenderBoy, true},
		{"GIRL", tamagotchi.GenderGirl, true},
		{"GENDER_GIRL", tamagotchi.GenderGirl, true},
		{" girl ", tamagotchi.GenderGirl, true},
		{"cat", tamagotchi.GenderUnspecified, false},
	}

	for _, tc := range testCases {
		s.Run(tc.input, func() {
			g, ok := tamagotchi.ParseGender(tc.input)
			s.Equal(tc.ok, ok)
			s.Equal(tc.expected, g)
		})
	}
}

func (s *CreatureTestSuite) TestCareActionKinds() {
	s.True(tamagotchi.CareActionStudy.IsWork())
	s.True(tamagotchi.CareActionArt.IsWork())
	s.False(tamagotchi.CareActionFeed.IsWork())
	s.True(tamagotchi.CareActionHeal.IsValid())
	s.False(tamagotchi.CareAction("CARE_ACTION_DANCE").IsValid())
}

func (s *CreatureTestSuite) TestGenesDominant() {
	var g tamagotchi.Genes
	s.True(g.IsZero())

	g.Set(tamagotchi.TraitEyes, tamagotchi.GeneCatalog[tamagotchi.TraitEyes][1])
	g.Set(tamagotchi.TraitHair, tamagotchi.GeneCatalog[tamagotchi.TraitHair][1])
	g.Set(tamagotchi.TraitTalent, tamagotchi.GeneCatalog[tamagotchi.TraitTalent][1])
	s.False(g.IsZero())
	s.False(g.Dominant(), "brown + blonde + night_vision has one dominant gene")

	g.Set(tamagotchi.TraitTalent, tamagotchi.GeneCatalog[tamagotchi.TraitTalent][2])
	s.True(g.Dominant(), "brown + blonde + fast_run has two dominant genes")
}
