package rpgtoolkit

import (
	"context"
	"fmt"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/tamagotchi-api/internal/engine"
	"github.com/KirkDiggler/tamagotchi-api/internal/entities/tamagotchi"
	"github.com/KirkDiggler/tamagotchi-api/internal/errors"
	"github.com/KirkDiggler/tamagotchi-api/internal/testutils"
)

type AdapterTestSuite struct {
	suite.Suite
	ctx context.Context
}

func TestAdapterSuite(t *testing.T) {
	suite.Run(t, new(AdapterTestSuite))
}

func (s *AdapterTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *AdapterTestSuite) adapter(roller dice.Roller) *Adapter {
	a, err := NewAdapter(&AdapterConfig{DiceRoller: roller})
	s.Require().NoError(err)
	return a
}

func (s *AdapterTestSuite) TestNewAdapter() {
	s.Run("nil config", func() {
		a, err := NewAdapter(nil)
		s.Error(err)
		s.Nil(a)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("missing dice roller", func() {
		a, err := NewAdapter(&AdapterConfig{})
		s.Nil(a)
		s.True(errors.IsInvalidArgument(err))
		s.Contains(err.Error(), "dice roller is required")
	})

	s.Run("valid config", func() {
		a, err := NewAdapter(&AdapterConfig{DiceRoller: dice.DefaultRoller})
		s.NoError(err)
		s.NotNil(a)
	})
}

func (s *AdapterTestSuite) TestNewCreature() {
	a := s.adapter(&testutils.FixedRoller{Value: 1})

	out, err := a.NewCreature(s.ctx, &engine.NewCreatureInput{
		UserID: "42",
		Name:   "  Rex  ",
		Gender: tamagotchi.GenderBoy,
		Now:    testutils.TestNow,
	})
	s.Require().NoError(err)

	c := out.Creature
	s.Equal("42", c.UserID)
	s.Equal("Rex", c.Name)
	s.Equal(testutils.TestNow, c.CreatedAt)
	s.Equal(testutils.TestNow, c.LastDriftAt)
	s.Equal(100, c.Health)
	s.Equal(0, c.Hunger)
	s.Equal(tamagotchi.StartAgeDays, c.AgeDays)
	// fresh vitals score 30 + 20 + 20 + 15 + 0 = 85, one short of happy
	s.Equal(tamagotchi.MoodExcited, c.Mood)
	s.Equal("blue", c.Genes.Eyes.Allele)
	s.Equal("dark", c.Genes.Hair.Allele)
	s.Equal("super_hearing", c.Genes.Talent.Allele)
	s.True(c.Genes.Dominant())
}

func (s *AdapterTestSuite) TestNewCreatureValidation() {
	a := s.adapter(&testutils.FixedRoller{Value: 1})

	testCases := []struct {
		name   string
		input  *engine.NewCreatureInput
		errMsg string
	}{
		{
			name:   "nil input",
			input:  nil,
			errMsg: "input is required",
		},
		{
			name:   "name too short",
			input:  &engine.NewCreatureInput{UserID: "1", Name: "R", Gender: tamagotchi.GenderBoy},
			errMsg: "name must be 2 to 15 characters long",
		},
		{
			name:   "name too long",
			input:  &engine.NewCreatureInput{UserID: "1", Name: "Maximilianus Rex", Gender: tamagotchi.GenderBoy},
			errMsg: "name must be 2 to 15 characters long",
		},
		{
			name:   "blank name after trimming",
			input:  &engine.NewCreatureInput{UserID: "1", Name: "   ", Gender: tamagotchi.GenderBoy},
			errMsg: "name must be 2 to 15 characters long",
		},
		{
			name:   "unknown gender",
			input:  &engine.NewCreatureInput{UserID: "1", Name: "Rex"},
			errMsg: "gender must be boy or girl",
		},
		{
			name:   "missing user",
			input:  &engine.NewCreatureInput{Name: "Rex", Gender: tamagotchi.GenderBoy},
			errMsg: "user_id is required",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out, err := a.NewCreature(s.ctx, tc.input)
			s.Nil(out)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Contains(err.Error(), tc.errMsg)
		})
	}

	s.Run("non latin names count runes", func() {
		out, err := a.NewCreature(s.ctx, &engine.NewCreatureInput{
			UserID: "1", Name: "Барсик", Gender: tamagotchi.GenderGirl,
		})
		s.Require().NoError(err)
		s.Equal("Барсик", out.Creature.Name)
	})
}

func (s *AdapterTestSuite) TestDraw() {
	s.Run("low rolls", func() {
		d := &draw{roller: &testutils.FixedRoller{Value: 1}}
		s.Equal(5, d.between(5, 15))
		s.True(d.chance(1))
		s.Equal(0, d.pick(8))
	})

	s.Run("high rolls", func() {
		d := &draw{roller: &testutils.FixedRoller{Value: 1000}}
		s.Equal(15, d.between(5, 15))
		s.False(d.chance(99))
		s.Equal(7, d.pick(8))
	})

	s.Run("certain outcomes do not roll", func() {
		roller := testutils.NewScriptedRoller()
		d := &draw{roller: roller}
		s.True(d.chance(100))
		s.False(d.chance(0))
		s.Equal(4, d.between(4, 4))
		s.Empty(roller.Sizes())
	})

	s.Run("first error sticks", func() {
		d := &draw{roller: &testutils.FailingRoller{Err: fmt.Errorf("dice fell off the table")}}
		d.roll(6)
		d.roll(6)
		s.EqualError(d.err, "dice fell off the table")
	})
}

func (s *AdapterTestSuite) TestDrawLifeEvent() {
	s.Run("girl gets her pronoun", func() {
		a := s.adapter(testutils.NewScriptedRoller(3))
		out, err := a.DrawLifeEvent(s.ctx, &engine.DrawLifeEventInput{Name: "Alice", Gender: tamagotchi.GenderGirl})
		s.Require().NoError(err)
		s.Equal("Alice won the city maths olympiad! She beat kids two years older.", out.Event.Text)
		s.Equal(tamagotchi.AttributeIntelligence, out.Event.Effect.Attribute)
		s.Equal(10, out.Event.Effect.AttributeDelta)
		s.Equal(tamagotchi.BucketCareer, out.Event.Effect.Bucket)
		s.Equal(10, out.Event.Effect.BucketDelta)
	})

	s.Run("boy gets his pronoun", func() {
		a := s.adapter(&testutils.FixedRoller{Value: 1})
		out, err := a.DrawLifeEvent(s.ctx, &engine.DrawLifeEventInput{Name: "Rex", Gender: tamagotchi.GenderBoy})
		s.Require().NoError(err)
		s.Contains(out.Event.Text, "proud of his honesty")
	})

	s.Run("catalog is drawn uniformly by one die", func() {
		roller := testutils.NewScriptedRoller(8)
		a := s.adapter(roller)
		out, err := a.DrawLifeEvent(s.ctx, &engine.DrawLifeEventInput{Name: "Rex", Gender: tamagotchi.GenderBoy})
		s.Require().NoError(err)
		s.Equal([]int{len(engine.LifeEvents)}, roller.Sizes())
		s.Contains(out.Event.Text, "nasty cold")
	})
}

func (s *AdapterTestSuite) TestDrawFact() {
	a := s.adapter(&testutils.FixedRoller{Value: 1})
	out, err := a.DrawFact(s.ctx, &engine.DrawFactInput{})
	s.Require().NoError(err)
	s.Equal(engine.Facts[0], out.Fact)

	failing := s.adapter(&testutils.FailingRoller{Err: fmt.Errorf("boom")})
	_, err = failing.DrawFact(s.ctx, &engine.DrawFactInput{})
	s.True(errors.IsInternal(err))
}

func (s *AdapterTestSuite) TestEvaluateDestiny() {
	a := s.adapter(dice.DefaultRoller)

	testCases := []struct {
		name     string
		creature *tamagotchi.Creature
		expected tamagotchi.Destiny
	}{
		{
			name: "rich wins regardless of other attributes",
			creature: &tamagotchi.Creature{
				AgeDays: tamagotchi.DestinyAgeDays, CareerPoints: 200, CriminalPoints: 10,
				Health: 5, Intelligence: 99,
			},
			expected: tamagotchi.DestinyRich,
		},
		{
			name: "prison when career is high but so is crime",
			creature: &tamagotchi.Creature{
				AgeDays: tamagotchi.DestinyAgeDays, CareerPoints: 200, CriminalPoints: 120, Health: 80,
			},
			expected: tamagotchi.DestinyPrison,
		},
		{
			name:     "ill",
			creature: &tamagotchi.Creature{AgeDays: 20 * tamagotchi.DaysPerYear, Health: 29, Intelligence: 95},
			expected: tamagotchi.DestinyIll,
		},
		{
			name:     "prodigy",
			creature: &tamagotchi.Creature{AgeDays: tamagotchi.DestinyAgeDays, Health: 60, Intelligence: 90},
			expected: tamagotchi.DestinyProdigy,
		},
		{
			name:     "average",
			creature: &tamagotchi.Creature{AgeDays: tamagotchi.DestinyAgeDays, Health: 60, Intelligence: 50},
			expected: tamagotchi.DestinyAverage,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out, err := a.EvaluateDestiny(s.ctx, &engine.EvaluateDestinyInput{Creature: tc.creature})
			s.Require().NoError(err)
			s.True(out.Report.Final)
			s.Equal(tc.expected, out.Report.Outcome)
		})
	}

	s.Run("younger creatures get a prediction", func() {
		c := &tamagotchi.Creature{
			AgeDays: 10 * tamagotchi.DaysPerYear, CareerPoints: 50, CriminalPoints: 100,
			Health: 30, Intelligence: 75, Discipline: 40,
		}
		before := *c

		out, err := a.EvaluateDestiny(s.ctx, &engine.EvaluateDestinyInput{Creature: c})
		s.Require().NoError(err)
		s.False(out.Report.Final)
		s.Equal(tamagotchi.DestinyUnspecified, out.Report.Outcome)
		s.InDelta(5.0, out.Report.CareerPerYear, 0.001)
		s.InDelta(10.0, out.Report.CriminalPerYear, 0.001)
		s.Len(out.Report.Advice, 3)
		s.Equal(before, *c)
	})

	s.Run("nil creature", func() {
		_, err := a.EvaluateDestiny(s.ctx, &engine.EvaluateDestinyInput{})
		s.True(errors.IsInvalidArgument(err))
	})
}

// assertInRange checks every bounded attribute
func (s *AdapterTestSuite) assertInRange(c *tamagotchi.Creature) {
	for name, v := range map[string]int{
		"health": c.Health, "hunger": c.Hunger, "hygiene": c.Hygiene, "energy": c.Energy,
		"happiness": c.Happiness, "intelligence": c.Intelligence, "discipline": c.Discipline,
		"social": c.Social, "creativity": c.Creativity, "reputation": c.Reputation,
	} {
		s.GreaterOrEqual(v, 0, name)
		s.LessOrEqual(v, 100, name)
	}
	s.GreaterOrEqual(c.Money, 0)
	s.GreaterOrEqual(c.CareerPoints, 0)
	s.GreaterOrEqual(c.CriminalPoints, 0)
}
