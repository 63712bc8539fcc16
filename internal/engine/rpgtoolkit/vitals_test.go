package rpgtoolkit

import (
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/tamagotchi-api/internal/engine"
	"github.com/KirkDiggler/tamagotchi-api/internal/entities/tamagotchi"
	"github.com/KirkDiggler/tamagotchi-api/internal/errors"
	"github.com/KirkDiggler/tamagotchi-api/internal/testutils"
	"github.com/KirkDiggler/tamagotchi-api/internal/testutils/builders"
)

func (s *AdapterTestSuite) TestApplyNaturalDriftLowRolls() {
	a := s.adapter(&testutils.FixedRoller{Value: 1})
	c := builders.NewCreatureBuilder().WithHappiness(90).Build()

	out, err := a.ApplyNaturalDrift(s.ctx, &engine.ApplyNaturalDriftInput{Creature: c})
	s.Require().NoError(err)

	s.Equal(1, out.Ticks)
	s.False(out.FellSick)
	s.Equal(5, c.Hunger)
	s.Equal(97, c.Hygiene)
	s.Equal(95, c.Energy)
	s.Equal(95, c.Happiness, "all vitals favourable and the bonus roll succeeded")
}

func (s *AdapterTestSuite) TestApplyNaturalDriftHighRolls() {
	a := s.adapter(&testutils.FixedRoller{Value: 1000})
	c := builders.NewCreatureBuilder().WithVitals(100, 75, 100, 25, 100).Build()

	_, err := a.ApplyNaturalDrift(s.ctx, &engine.ApplyNaturalDriftInput{Creature: c})
	s.Require().NoError(err)

	s.Equal(90, c.Hunger)
	s.Equal(92, c.Hygiene)
	s.Equal(15, c.Energy)
	s.Equal(95, c.Health, "starving costs health")
	s.Equal(85, c.Happiness, "starving and exhausted both cost happiness")
	s.Equal(tamagotchi.MoodTired, c.Mood)
}

func (s *AdapterTestSuite) TestApplyNaturalDriftSleepingRestores() {
	a := s.adapter(&testutils.FixedRoller{Value: 1})
	c := builders.NewCreatureBuilder().WithEnergy(50).Sleeping().Build()

	_, err := a.ApplyNaturalDrift(s.ctx, &engine.ApplyNaturalDriftInput{Creature: c})
	s.Require().NoError(err)
	s.Equal(55, c.Energy)
}

func (s *AdapterTestSuite) TestApplyNaturalDriftIllness() {
	s.Run("dirty creature can fall sick", func() {
		a := s.adapter(&testutils.FixedRoller{Value: 1})
		c := builders.NewCreatureBuilder().WithVitals(100, 0, 20, 100, 100).Build()

		out, err := a.ApplyNaturalDrift(s.ctx, &engine.ApplyNaturalDriftInput{Creature: c})
		s.Require().NoError(err)
		s.True(out.FellSick)
		s.True(c.Sick)
		s.Equal(tamagotchi.MoodSick, c.Mood)
	})

	s.Run("sickness drains health", func() {
		a := s.adapter(&testutils.FixedRoller{Value: 1000})
		c := builders.NewCreatureBuilder().WithVitals(50, 0, 100, 100, 100).Sick().Build()

		out, err := a.ApplyNaturalDrift(s.ctx, &engine.ApplyNaturalDriftInput{Creature: c})
		s.Require().NoError(err)
		s.False(out.FellSick)
		s.Equal(45, c.Health)
	})
}

func (s *AdapterTestSuite) TestApplyNaturalDriftManyTicks() {
	a := s.adapter(&testutils.FixedRoller{Value: 1000})
	c := builders.NewCreatureBuilder().Build()

	out, err := a.ApplyNaturalDrift(s.ctx, &engine.ApplyNaturalDriftInput{Creature: c, Ticks: 10})
	s.Require().NoError(err)
	s.Equal(10, out.Ticks)
	s.Equal(100, c.Hunger)
	s.Equal(20, c.Hygiene)
	s.Equal(0, c.Energy)
}

func (s *AdapterTestSuite) TestApplyNaturalDriftStaysInRange() {
	a := s.adapter(dice.DefaultRoller)

	starts := []*tamagotchi.Creature{
		builders.NewCreatureBuilder().Build(),
		builders.NewCreatureBuilder().WithVitals(0, 100, 0, 0, 0).Sick().Build(),
		builders.NewCreatureBuilder().WithVitals(100, 0, 100, 100, 100).Sleeping().Build(),
	}

	for i, c := range starts {
		s.Run(fmt.Sprintf("start %d", i), func() {
			for tick := 0; tick < 200; tick++ {
				_, err := a.ApplyNaturalDrift(s.ctx, &engine.ApplyNaturalDriftInput{Creature: c})
				s.Require().NoError(err)
				s.assertInRange(c)
			}
		})
	}
}

func (s *AdapterTestSuite) TestApplyNaturalDriftErrors() {
	a := s.adapter(&testutils.FailingRoller{Err: fmt.Errorf("boom")})

	_, err := a.ApplyNaturalDrift(s.ctx, &engine.ApplyNaturalDriftInput{Creature: testutils.CreateTestCreature("1")})
	s.True(errors.IsInternal(err))

	_, err = a.ApplyNaturalDrift(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}
