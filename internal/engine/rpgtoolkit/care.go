package rpgtoolkit

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/KirkDiggler/tamagotchi-api/internal/engine"
	"github.com/KirkDiggler/tamagotchi-api/internal/entities/tamagotchi"
	"github.com/KirkDiggler/tamagotchi-api/internal/errors"
)

// Care guards
const (
	notHungryBelow    = 10
	alreadyCleanAt    = 90
	healthyAt         = 90
	studyEnergyBelow  = 20
	playEnergyBelow   = 15
	artEnergyBelow    = 15
	retryInSecondsKey = "retry_in_seconds"
)

// PerformCare applies one care action. A rejected action returns FailedPrecondition
// (guard) or ResourceExhausted (cooldown, forced rest) and leaves the creature as it was.
func (a *Adapter) PerformCare(_ context.Context, input *engine.PerformCareInput) (*engine.PerformCareOutput, error) {
	if input == nil || input.Creature == nil {
		return nil, errors.InvalidArgument("creature is required")
	}
	if !input.Action.IsValid() {
		return nil, errors.InvalidArgumentf("unknown care action %q", input.Action)
	}

	c := input.Creature
	action := input.Action
	now := input.Now

	if err := checkTiming(c, action, now); err != nil {
		return nil, err
	}
	if err := checkGuard(c, action); err != nil {
		return nil, err
	}

	r := a.newDraw()
	msg := applyCare(r, c, action)
	if r.err != nil {
		return nil, errors.Wrapf(r.err, "failed to roll %s", action)
	}

	if c.LastCareAt == nil {
		c.LastCareAt = make(map[tamagotchi.CareAction]time.Time)
	}
	c.LastCareAt[action] = now

	out := &engine.PerformCareOutput{Message: msg}
	if action.IsWork() {
		c.ConsecutiveWork++
		if c.ConsecutiveWork >= engine.WorkStreakLimit {
			c.ConsecutiveWork = 0
			c.RestUntil = now.Add(engine.RestDuration)
			out.RestStarted = true
		}
	} else {
		c.ConsecutiveWork = 0
	}

	c.ClampAll()
	c.Mood = tamagotchi.ComputeMood(c)

	return out, nil
}

// checkTiming enforces forced rest and per-action cooldowns for work actions
func checkTiming(c *tamagotchi.Creature, action tamagotchi.CareAction, now time.Time) error {
	if !action.IsWork() {
		return nil
	}

	if wait := c.RestUntil.Sub(now); wait > 0 {
		return errors.ResourceExhaustedf("%s is worn out and needs a rest. Try again in %s.", c.Name, formatWait(wait)).
			WithMeta(retryInSecondsKey, retrySeconds(wait))
	}

	cooldown, ok := engine.CareCooldowns[action]
	if !ok {
		return nil
	}
	last, ok := c.LastCareAt[action]
	if !ok {
		return nil
	}
	if wait := last.Add(cooldown).Sub(now); wait > 0 {
		return errors.ResourceExhaustedf("%s did that a moment ago. Try again in %s.", c.Name, formatWait(wait)).
			WithMeta(retryInSecondsKey, retrySeconds(wait))
	}
	return nil
}

func checkGuard(c *tamagotchi.Creature, action tamagotchi.CareAction) error {
	asleep := func() error {
		if c.Sleeping {
			return errors.FailedPreconditionf("%s is asleep. Wake them up first.", c.Name)
		}
		return nil
	}

	switch action {
	case tamagotchi.CareActionFeed:
		if err := asleep(); err != nil {
			return err
		}
		if c.Hunger < notHungryBelow {
			return errors.FailedPreconditionf("%s is not hungry.", c.Name)
		}
	case tamagotchi.CareActionWash:
		if err := asleep(); err != nil {
			return err
		}
		if c.Hygiene >= alreadyCleanAt {
			return errors.FailedPreconditionf("%s is already clean.", c.Name)
		}
	case tamagotchi.CareActionSleep:
		if c.Sleeping {
			return errors.FailedPreconditionf("%s is already asleep.", c.Name)
		}
	case tamagotchi.CareActionWake:
		if !c.Sleeping {
			return errors.FailedPreconditionf("%s is already awake.", c.Name)
		}
	case tamagotchi.CareActionHeal:
		if !c.Sick && c.Health >= healthyAt {
			return errors.FailedPreconditionf("%s is perfectly healthy.", c.Name)
		}
	case tamagotchi.CareActionStudy:
		if err := asleep(); err != nil {
			return err
		}
		if c.Energy < studyEnergyBelow {
			return errors.FailedPreconditionf("%s is too tired to study.", c.Name)
		}
	case tamagotchi.CareActionPlay:
		if err := asleep(); err != nil {
			return err
		}
		if c.Energy < playEnergyBelow {
			return errors.FailedPreconditionf("%s is too tired to play.", c.Name)
		}
	case tamagotchi.CareActionArt:
		if err := asleep(); err != nil {
			return err
		}
		if c.Energy < artEnergyBelow {
			return errors.FailedPreconditionf("%s is too tired to draw.", c.Name)
		}
	}
	return nil
}

func applyCare(r *draw, c *tamagotchi.Creature, action tamagotchi.CareAction) string {
	switch action {
	case tamagotchi.CareActionFeed:
		c.Hunger -= 30
		c.Health += 5
		c.Happiness += 5
		c.Daily.MealsEaten++
		return fmt.Sprintf("%s eats everything on the plate. Yum!", c.Name)

	case tamagotchi.CareActionWash:
		c.Hygiene += 40
		c.Happiness += 2
		return fmt.Sprintf("%s is squeaky clean now.", c.Name)

	case tamagotchi.CareActionSleep:
		c.Sleeping = true
		c.Energy += 30
		c.Health += 5
		return fmt.Sprintf("%s curls up and falls asleep.", c.Name)

	case tamagotchi.CareActionWake:
		c.Sleeping = false
		c.Energy += 10
		return fmt.Sprintf("%s wakes up and rubs their eyes.", c.Name)

	case tamagotchi.CareActionHeal:
		c.Sick = false
		c.Health += 25
		c.Happiness -= 5
		return fmt.Sprintf("%s takes the medicine with a grimace and feels better.", c.Name)

	case tamagotchi.CareActionStudy:
		gain := r.between(3, 7)
		c.Intelligence += gain
		c.Energy -= 15
		c.Happiness -= 5
		c.Discipline++
		c.Skills.Academics++
		c.CareerPoints++
		c.Daily.StudySessions++
		return fmt.Sprintf("%s studies hard. Intelligence +%d.", c.Name, gain)

	case tamagotchi.CareActionPlay:
		gain := r.between(10, 20)
		c.Happiness += gain
		c.Energy -= 10
		c.Social += 3
		c.Hunger += 5
		c.Hygiene -= 5
		c.Skills.Sport++
		c.Daily.EntertainmentSessions++
		return fmt.Sprintf("%s runs around outside. Happiness +%d.", c.Name, gain)

	case tamagotchi.CareActionArt:
		gain := r.between(3, 6)
		c.Creativity += gain
		c.Happiness += 5
		c.Energy -= 10
		c.Skills.Art++
		c.Daily.EntertainmentSessions++
		return fmt.Sprintf("%s paints a picture. Creativity +%d.", c.Name, gain)
	}
	return ""
}

func retrySeconds(wait time.Duration) int {
	return int(math.Ceil(wait.Seconds()))
}

func formatWait(wait time.Duration) string {
	return (time.Duration(retrySeconds(wait)) * time.Second).String()
}
