package rpgtoolkit

import (
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/tamagotchi-api/internal/engine"
	"github.com/KirkDiggler/tamagotchi-api/internal/entities/tamagotchi"
	"github.com/KirkDiggler/tamagotchi-api/internal/errors"
	"github.com/KirkDiggler/tamagotchi-api/internal/testutils"
	"github.com/KirkDiggler/tamagotchi-api/internal/testutils/builders"
)

func (s *AdapterTestSuite) care(a *Adapter, c *tamagotchi.Creature, action tamagotchi.CareAction, at time.Time) (*engine.PerformCareOutput, error) {
	return a.PerformCare(s.ctx, &engine.PerformCareInput{Creature: c, Action: action, Now: at})
}

func (s *AdapterTestSuite) TestPerformCareGuards() {
	a := s.adapter(&testutils.FixedRoller{Value: 1})

	testCases := []struct {
		name     string
		creature *tamagotchi.Creature
		action   tamagotchi.CareAction
		errMsg   string
	}{
		{
			name:     "feed when not hungry",
			creature: builders.NewCreatureBuilder().WithHunger(0).Build(),
			action:   tamagotchi.CareActionFeed,
			errMsg:   "Rex is not hungry.",
		},
		{
			name:     "feed while asleep",
			creature: builders.NewCreatureBuilder().WithHunger(60).Sleeping().Build(),
			action:   tamagotchi.CareActionFeed,
			errMsg:   "Rex is asleep. Wake them up first.",
		},
		{
			name:     "wash when clean",
			creature: builders.NewCreatureBuilder().WithHygiene(95).Build(),
			action:   tamagotchi.CareActionWash,
			errMsg:   "Rex is already clean.",
		},
		{
			name:     "sleep when asleep",
			creature: builders.NewCreatureBuilder().Sleeping().Build(),
			action:   tamagotchi.CareActionSleep,
			errMsg:   "Rex is already asleep.",
		},
		{
			name:     "wake when awake",
			creature: builders.NewCreatureBuilder().Build(),
			action:   tamagotchi.CareActionWake,
			errMsg:   "Rex is already awake.",
		},
		{
			name:     "heal when healthy",
			creature: builders.NewCreatureBuilder().Build(),
			action:   tamagotchi.CareActionHeal,
			errMsg:   "Rex is perfectly healthy.",
		},
		{
			name:     "study when tired",
			creature: builders.NewCreatureBuilder().WithEnergy(19).Build(),
			action:   tamagotchi.CareActionStudy,
			errMsg:   "Rex is too tired to study.",
		},
		{
			name:     "play when tired",
			creature: builders.NewCreatureBuilder().WithEnergy(14).Build(),
			action:   tamagotchi.CareActionPlay,
			errMsg:   "Rex is too tired to play.",
		},
		{
			name:     "art while asleep",
			creature: builders.NewCreatureBuilder().Sleeping().Build(),
			action:   tamagotchi.CareActionArt,
			errMsg:   "Rex is asleep. Wake them up first.",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			before := tc.creature.Clone()

			out, err := s.care(a, tc.creature, tc.action, testutils.TestNow)
			s.Nil(out)
			s.Require().Error(err)
			s.True(errors.IsFailedPrecondition(err))
			s.Equal(tc.errMsg, errors.UserMessage(err))
			s.Equal(before, tc.creature, "rejected actions leave the creature untouched")
		})
	}
}

func (s *AdapterTestSuite) TestPerformCareEffects() {
	a := s.adapter(&testutils.FixedRoller{Value: 1})

	s.Run("feed a hungry creature", func() {
		c := builders.NewCreatureBuilder().WithHunger(50).Build()
		out, err := s.care(a, c, tamagotchi.CareActionFeed, testutils.TestNow)
		s.Require().NoError(err)
		s.Equal("Rex eats everything on the plate. Yum!", out.Message)
		s.Equal(20, c.Hunger)
		s.Equal(100, c.Health)
		s.Equal(100, c.Happiness)
		s.Equal(1, c.Daily.MealsEaten)
		s.Equal(testutils.TestNow, c.LastCareAt[tamagotchi.CareActionFeed])
	})

	s.Run("wash", func() {
		c := builders.NewCreatureBuilder().WithHygiene(50).WithHappiness(50).Build()
		_, err := s.care(a, c, tamagotchi.CareActionWash, testutils.TestNow)
		s.Require().NoError(err)
		s.Equal(90, c.Hygiene)
		s.Equal(52, c.Happiness)
	})

	s.Run("sleep and wake", func() {
		c := builders.NewCreatureBuilder().WithEnergy(40).Build()
		_, err := s.care(a, c, tamagotchi.CareActionSleep, testutils.TestNow)
		s.Require().NoError(err)
		s.True(c.Sleeping)
		s.Equal(70, c.Energy)

		_, err = s.care(a, c, tamagotchi.CareActionWake, testutils.TestNow)
		s.Require().NoError(err)
		s.False(c.Sleeping)
		s.Equal(80, c.Energy)
	})

	s.Run("heal", func() {
		c := builders.NewCreatureBuilder().WithVitals(40, 0, 100, 100, 80).Sick().Build()
		_, err := s.care(a, c, tamagotchi.CareActionHeal, testutils.TestNow)
		s.Require().NoError(err)
		s.False(c.Sick)
		s.Equal(65, c.Health)
		s.Equal(75, c.Happiness)
		s.NotEqual(tamagotchi.MoodSick, c.Mood)
	})

	s.Run("study", func() {
		c := builders.NewCreatureBuilder().Build()
		out, err := s.care(a, c, tamagotchi.CareActionStudy, testutils.TestNow)
		s.Require().NoError(err)
		s.Equal("Rex studies hard. Intelligence +3.", out.Message)
		s.Equal(13, c.Intelligence)
		s.Equal(85, c.Energy)
		s.Equal(95, c.Happiness)
		s.Equal(51, c.Discipline)
		s.Equal(1, c.Skills.Academics)
		s.Equal(1, c.CareerPoints)
		s.Equal(1, c.Daily.StudySessions)
		s.Equal(1, c.ConsecutiveWork)
	})

	s.Run("play", func() {
		c := builders.NewCreatureBuilder().WithHappiness(50).Build()
		_, err := s.care(a, c, tamagotchi.CareActionPlay, testutils.TestNow)
		s.Require().NoError(err)
		s.Equal(60, c.Happiness)
		s.Equal(90, c.Energy)
		s.Equal(13, c.Social)
		s.Equal(5, c.Hunger)
		s.Equal(95, c.Hygiene)
		s.Equal(1, c.Skills.Sport)
		s.Equal(1, c.Daily.EntertainmentSessions)
	})

	s.Run("art", func() {
		c := builders.NewCreatureBuilder().WithHappiness(50).Build()
		_, err := s.care(a, c, tamagotchi.CareActionArt, testutils.TestNow)
		s.Require().NoError(err)
		s.Equal(13, c.Creativity)
		s.Equal(55, c.Happiness)
		s.Equal(90, c.Energy)
		s.Equal(1, c.Skills.Art)
	})
}

func (s *AdapterTestSuite) TestPerformCareCooldown() {
	a := s.adapter(&testutils.FixedRoller{Value: 1})
	c := builders.NewCreatureBuilder().Build()
	t0 := testutils.TestNow

	_, err := s.care(a, c, tamagotchi.CareActionStudy, t0)
	s.Require().NoError(err)

	before := c.Clone()
	_, err = s.care(a, c, tamagotchi.CareActionStudy, t0.Add(5*time.Minute))
	s.Require().Error(err)
	s.True(errors.IsResourceExhausted(err))
	s.Equal(300, errors.GetMeta(err)["retry_in_seconds"])
	s.Equal("Rex did that a moment ago. Try again in 5m0s.", errors.UserMessage(err))
	s.Equal(before, c)

	_, err = s.care(a, c, tamagotchi.CareActionStudy, t0.Add(10*time.Minute))
	s.NoError(err)
}

func (s *AdapterTestSuite) TestPerformCareForcedRest() {
	a := s.adapter(&testutils.FixedRoller{Value: 1})
	c := builders.NewCreatureBuilder().Build()
	t0 := testutils.TestNow

	out, err := s.care(a, c, tamagotchi.CareActionStudy, t0)
	s.Require().NoError(err)
	s.False(out.RestStarted)

	_, err = s.care(a, c, tamagotchi.CareActionPlay, t0.Add(time.Minute))
	s.Require().NoError(err)

	out, err = s.care(a, c, tamagotchi.CareActionArt, t0.Add(2*time.Minute))
	s.Require().NoError(err)
	s.True(out.RestStarted)
	s.Equal(0, c.ConsecutiveWork)
	s.Equal(t0.Add(32*time.Minute), c.RestUntil)

	_, err = s.care(a, c, tamagotchi.CareActionPlay, t0.Add(10*time.Minute))
	s.Require().Error(err)
	s.True(errors.IsResourceExhausted(err))
	s.Equal(22*60, errors.GetMeta(err)["retry_in_seconds"])

	_, err = s.care(a, c, tamagotchi.CareActionFeed, t0.Add(10*time.Minute))
	s.True(errors.IsFailedPrecondition(err), "rest only blocks work; feeding is still guarded by hunger")

	_, err = s.care(a, c, tamagotchi.CareActionPlay, t0.Add(33*time.Minute))
	s.NoError(err)
}

func (s *AdapterTestSuite) TestPerformCareOtherActionResetsStreak() {
	a := s.adapter(&testutils.FixedRoller{Value: 1})
	c := builders.NewCreatureBuilder().Build()
	t0 := testutils.TestNow

	_, err := s.care(a, c, tamagotchi.CareActionStudy, t0)
	s.Require().NoError(err)
	_, err = s.care(a, c, tamagotchi.CareActionPlay, t0.Add(time.Minute))
	s.Require().NoError(err)
	s.Equal(2, c.ConsecutiveWork)

	_, err = s.care(a, c, tamagotchi.CareActionSleep, t0.Add(2*time.Minute))
	s.Require().NoError(err)
	s.Equal(0, c.ConsecutiveWork)

	_, err = s.care(a, c, tamagotchi.CareActionWake, t0.Add(3*time.Minute))
	s.Require().NoError(err)
	out, err := s.care(a, c, tamagotchi.CareActionArt, t0.Add(4*time.Minute))
	s.Require().NoError(err)
	s.False(out.RestStarted)
	s.Equal(1, c.ConsecutiveWork)
}

func (s *AdapterTestSuite) TestPerformCareStaysInRange() {
	a := s.adapter(dice.DefaultRoller)
	now := testutils.TestNow

	starts := []*tamagotchi.Creature{
		builders.NewCreatureBuilder().WithVitals(100, 100, 0, 100, 100).Build(),
		builders.NewCreatureBuilder().WithVitals(0, 100, 0, 100, 0).Sick().Build(),
		builders.NewCreatureBuilder().WithVitals(95, 20, 85, 99, 99).WithDevelopment(99, 99, 99).Build(),
	}

	for _, c := range starts {
		for i := 0; i < 50; i++ {
			for _, action := range tamagotchi.CareActions {
				now = now.Add(11 * time.Minute)
				_, err := s.care(a, c, action, now)
				if err != nil {
					code := errors.GetCode(err)
					s.True(code == errors.CodeFailedPrecondition || code == errors.CodeResourceExhausted, err.Error())
				}
				s.assertInRange(c)
			}
		}
	}
}

func (s *AdapterTestSuite) TestPerformCareInvalid() {
	a := s.adapter(&testutils.FixedRoller{Value: 1})

	_, err := a.PerformCare(s.ctx, &engine.PerformCareInput{
		Creature: testutils.CreateTestCreature("1"),
		Action:   tamagotchi.CareAction("CARE_ACTION_DANCE"),
	})
	s.True(errors.IsInvalidArgument(err))

	_, err = a.PerformCare(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}
