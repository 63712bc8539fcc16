package rpgtoolkit

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/tamagotchi-api/internal/engine"
	"github.com/KirkDiggler/tamagotchi-api/internal/entities/tamagotchi"
	"github.com/KirkDiggler/tamagotchi-api/internal/errors"
)

// Routine thresholds
const (
	disciplinedWakeAt     = 60
	washChancePercent     = 80
	breakfastHungerAbove  = 30
	exerciseDisciplineAt  = 50
	exerciseChancePercent = 70
	makeBedDisciplineAt   = 40
	minAttendancePercent  = 20
	bathShowerPercent     = 50
)

// routine carries one day through its steps
type routine struct {
	r   *draw
	c   *tamagotchi.Creature
	out *engine.RunDailyRoutineOutput
}

// logf appends a line and clamps, so every step leaves the creature in range
func (rt *routine) logf(format string, args ...any) {
	rt.out.Log = append(rt.out.Log, fmt.Sprintf(format, args...))
	rt.c.ClampAll()
}

// RunDailyRoutine lives one accelerated year-long "day": wake to sleep, then ages the creature
func (a *Adapter) RunDailyRoutine(
	_ context.Context,
	input *engine.RunDailyRoutineInput,
) (*engine.RunDailyRoutineOutput, error) {
	if input == nil || input.Creature == nil {
		return nil, errors.InvalidArgument("creature is required")
	}

	c := input.Creature
	rt := &routine{
		r:   a.newDraw(),
		c:   c,
		out: &engine.RunDailyRoutineOutput{PreviousAgeGroup: tamagotchi.AgeGroupFor(c.AgeDays)},
	}

	c.Daily = tamagotchi.DailyStats{}

	rt.wake()
	rt.wash()
	rt.breakfast()
	rt.exercise()
	rt.makeBed()
	rt.school()
	rt.lunch()
	rt.evening()
	rt.dinner()
	rt.bath()
	rt.sleep()

	if rt.r.err != nil {
		return nil, errors.Wrap(rt.r.err, "failed to roll daily routine")
	}

	c.AgeDays += tamagotchi.DaysPerYear
	c.ClampAll()
	c.RefreshDerived()
	c.RoutinesLived++

	rt.out.AgeGroupChanged = c.AgeGroup != rt.out.PreviousAgeGroup
	rt.logf("Happy birthday! %s is now %d years old.", c.Name, c.AgeYears())

	return rt.out, nil
}

func (rt *routine) wake() {
	c := rt.c
	if !c.Sleeping {
		rt.logf("%s is already up and about.", c.Name)
		return
	}

	c.Sleeping = false
	c.Energy += 30

	lines := engine.WakeSleepy
	if c.Discipline >= disciplinedWakeAt {
		lines = engine.WakeDisciplined
	}
	rt.logf(lines[rt.r.pick(len(lines))], c.Name)
}

func (rt *routine) wash() {
	c := rt.c
	if !rt.r.chance(washChancePercent) {
		rt.logf("%s skips washing this morning.", c.Name)
		return
	}
	c.Hygiene += 20
	rt.logf("%s washes up and brushes teeth.", c.Name)
}

func (rt *routine) breakfast() {
	c := rt.c
	if c.Hunger <= breakfastHungerAbove {
		rt.logf("%s is not hungry and skips breakfast.", c.Name)
		return
	}
	c.Hunger -= 30
	c.Health += 5
	c.Daily.MealsEaten++
	rt.logf("%s eats porridge for breakfast.", c.Name)
}

func (rt *routine) exercise() {
	c := rt.c
	if c.Discipline < exerciseDisciplineAt || !rt.r.chance(exerciseChancePercent) {
		rt.logf("%s skips morning exercises.", c.Name)
		return
	}
	c.Health += 5
	c.Energy += 5
	c.Skills.Sport++
	rt.logf("%s does morning exercises.", c.Name)
}

func (rt *routine) makeBed() {
	c := rt.c
	if c.Discipline < makeBedDisciplineAt {
		rt.logf("%s leaves the bed unmade.", c.Name)
		return
	}
	c.Discipline += 2
	rt.logf("%s makes the bed neatly.", c.Name)
}

func (rt *routine) school() {
	c := rt.c
	group := tamagotchi.AgeGroupFor(c.AgeDays)

	switch {
	case group.IsSchoolAge():
		c.AtSchool = true
		defer func() { c.AtSchool = false }()

		if !rt.r.chance(max(minAttendancePercent, c.Discipline)) {
			c.Discipline -= 5
			c.CriminalPoints += 3
			rt.logf("%s skips school and hangs around the shopping centre.", c.Name)
			return
		}

		rt.out.AttendedSchool = true
		lo, hi := lessonRange(c.Discipline)
		n := rt.r.between(lo, hi)
		if n == 0 {
			c.Discipline -= 5
			c.CriminalPoints += 3
			rt.logf("%s goes to school but daydreams through every lesson.", c.Name)
			return
		}

		rt.out.Lessons = n
		c.Intelligence += 2 * n
		c.Skills.Academics += n
		c.Discipline++
		c.CareerPoints += 2 * n
		c.Energy -= 5 * n
		c.Daily.LessonsAttended += n
		rt.logf("%s attends %d lessons at school.", c.Name, n)

	case group == tamagotchi.AgeGroupAdult:
		pay := rt.r.between(10, 30)
		c.Money += pay
		c.CareerPoints += 2
		rt.logf("%s goes to work and earns %d coins.", c.Name, pay)

	default:
		rt.logf("%s is too young for school and plays at home.", c.Name)
	}
}

// lessonRange returns how many lessons a pupil sits through, by discipline
func lessonRange(discipline int) (int, int) {
	switch {
	case discipline >= 70:
		return 4, 6
	case discipline >= 40:
		return 2, 5
	default:
		return 0, 3
	}
}

func (rt *routine) lunch() {
	c := rt.c
	c.Hunger -= 25
	c.Health += 3
	c.Daily.MealsEaten++
	rt.logf("%s has soup and a sandwich for lunch.", c.Name)
}

func (rt *routine) evening() {
	c := rt.c
	activity := engine.EveningActivities[rt.r.pick(len(engine.EveningActivities))]

	c.Happiness += 10
	c.Energy -= 10
	c.Social += 5
	c.Daily.EntertainmentSessions++
	switch activity.Skill {
	case engine.SkillSport:
		c.Skills.Sport++
	case engine.SkillArt:
		c.Skills.Art++
	case engine.SkillMusic:
		c.Skills.Music++
	}
	rt.logf(activity.Text, c.Name)
}

func (rt *routine) dinner() {
	c := rt.c
	c.Hunger -= 30
	c.Daily.MealsEaten++
	rt.logf("%s eats dinner with the family.", c.Name)
}

func (rt *routine) bath() {
	c := rt.c
	c.Hygiene += 30
	if rt.r.chance(bathShowerPercent) {
		rt.logf("%s takes a quick shower.", c.Name)
		return
	}
	rt.logf("%s soaks in a bubble bath.", c.Name)
}

func (rt *routine) sleep() {
	c := rt.c
	c.Sleeping = true
	c.Energy += 40
	c.Health += 5
	rt.logf("%s goes to bed. Good night!", c.Name)
}
