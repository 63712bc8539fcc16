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

func (s *AdapterTestSuite) TestRunDailyRoutineDiligentPupil() {
	a := s.adapter(&testutils.FixedRoller{Value: 1})
	c := builders.NewCreatureBuilder().
		WithAgeYears(7).
		WithDiscipline(70).
		WithEnergy(50).
		WithHunger(50).
		Sleeping().
		Build()
	c.Daily.StudySessions = 4

	out, err := a.RunDailyRoutine(s.ctx, &engine.RunDailyRoutineInput{Creature: c})
	s.Require().NoError(err)

	s.Len(out.Log, 12)
	s.Equal(fmt.Sprintf(engine.WakeDisciplined[0], "Rex"), out.Log[0])
	s.Equal("Rex attends 4 lessons at school.", out.Log[5])
	s.Equal("Rex takes a quick shower.", out.Log[9])
	s.Equal("Happy birthday! Rex is now 8 years old.", out.Log[11])

	s.True(out.AttendedSchool)
	s.Equal(4, out.Lessons)
	s.False(out.AgeGroupChanged)

	s.True(c.Sleeping)
	s.False(c.AtSchool)
	s.Equal(0, c.Hunger)
	s.Equal(100, c.Health)
	s.Equal(100, c.Hygiene)
	s.Equal(95, c.Energy)
	s.Equal(18, c.Intelligence)
	s.Equal(73, c.Discipline)
	s.Equal(8, c.CareerPoints)
	s.Equal(15, c.Social)
	s.Equal(tamagotchi.Skills{Sport: 2, Academics: 4}, c.Skills)
	s.Equal(tamagotchi.DailyStats{LessonsAttended: 4, MealsEaten: 3, EntertainmentSessions: 1}, c.Daily)
	s.Equal(8*tamagotchi.DaysPerYear, c.AgeDays)
	s.Equal(1, c.RoutinesLived)
}

func (s *AdapterTestSuite) TestRunDailyRoutineTruant() {
	a := s.adapter(&testutils.FixedRoller{Value: 1000})
	c := builders.NewCreatureBuilder().
		WithAgeYears(12).
		WithDiscipline(30).
		WithHunger(10).
		Build()

	out, err := a.RunDailyRoutine(s.ctx, &engine.RunDailyRoutineInput{Creature: c})
	s.Require().NoError(err)

	s.Equal("Rex is already up and about.", out.Log[0])
	s.Equal("Rex skips washing this morning.", out.Log[1])
	s.Equal("Rex is not hungry and skips breakfast.", out.Log[2])
	s.Equal("Rex skips morning exercises.", out.Log[3])
	s.Equal("Rex leaves the bed unmade.", out.Log[4])
	s.Equal("Rex skips school and hangs around the shopping centre.", out.Log[5])
	s.Equal("Rex soaks in a bubble bath.", out.Log[9])

	s.False(out.AttendedSchool)
	s.Equal(25, c.Discipline)
	s.Equal(3, c.CriminalPoints)
	s.True(c.Sleeping)
}

func (s *AdapterTestSuite) TestRunDailyRoutineDaydreamer() {
	roller := testutils.NewScriptedRoller(1, 1, 1)
	a := s.adapter(roller)
	c := builders.NewCreatureBuilder().
		WithAgeYears(12).
		WithDiscipline(30).
		WithHunger(10).
		Build()

	out, err := a.RunDailyRoutine(s.ctx, &engine.RunDailyRoutineInput{Creature: c})
	s.Require().NoError(err)

	s.Equal([]int{100, 100, 4}, roller.Sizes()[:3], "wash, attendance, lesson count")
	s.True(out.AttendedSchool)
	s.Equal(0, out.Lessons)
	s.Equal("Rex goes to school but daydreams through every lesson.", out.Log[5])
	s.Equal(25, c.Discipline)
	s.Equal(3, c.CriminalPoints)
}

func (s *AdapterTestSuite) TestRunDailyRoutineAdultWorks() {
	a := s.adapter(&testutils.FixedRoller{Value: 1000})
	c := builders.NewCreatureBuilder().WithAgeYears(18).Build()

	out, err := a.RunDailyRoutine(s.ctx, &engine.RunDailyRoutineInput{Creature: c})
	s.Require().NoError(err)

	s.Equal("Rex goes to work and earns 30 coins.", out.Log[5])
	s.Equal(30, c.Money)
	s.Equal(2, c.CareerPoints)
	s.Equal(tamagotchi.AgeGroupAdult, c.AgeGroup)
}

func (s *AdapterTestSuite) TestRunDailyRoutineStartsSchool() {
	a := s.adapter(&testutils.FixedRoller{Value: 1})
	c := builders.NewCreatureBuilder().Build()

	out, err := a.RunDailyRoutine(s.ctx, &engine.RunDailyRoutineInput{Creature: c})
	s.Require().NoError(err)

	s.Equal("Rex is too young for school and plays at home.", out.Log[5])
	s.True(out.AgeGroupChanged)
	s.Equal(tamagotchi.AgeGroupPreschooler, out.PreviousAgeGroup)
	s.Equal(tamagotchi.AgeGroupSchoolchild, c.AgeGroup)
}

func (s *AdapterTestSuite) TestRunDailyRoutineSleepToSleep() {
	a := s.adapter(dice.DefaultRoller)
	c := builders.NewCreatureBuilder().Sleeping().Build()

	for day := 0; day < 30; day++ {
		s.Require().True(c.Sleeping)

		out, err := a.RunDailyRoutine(s.ctx, &engine.RunDailyRoutineInput{Creature: c})
		s.Require().NoError(err)

		s.NotEqual("Rex is already up and about.", out.Log[0], "a sleeping creature is woken first")
		s.True(c.Sleeping)
		s.False(c.AtSchool)
		s.assertInRange(c)
	}
	s.Equal(30, c.RoutinesLived)
	s.Equal(tamagotchi.StartAgeDays+30*tamagotchi.DaysPerYear, c.AgeDays)
}

func (s *AdapterTestSuite) TestRunDailyRoutineErrors() {
	a := s.adapter(&testutils.FailingRoller{Err: fmt.Errorf("boom")})

	_, err := a.RunDailyRoutine(s.ctx, &engine.RunDailyRoutineInput{Creature: testutils.CreateTestCreature("1")})
	s.True(errors.IsInternal(err))

	_, err = a.RunDailyRoutine(s.ctx, &engine.RunDailyRoutineInput{})
	s.True(errors.IsInvalidArgument(err))
}
