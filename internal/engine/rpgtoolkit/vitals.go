package rpgtoolkit

import (
	"context"

	"github.com/KirkDiggler/tamagotchi-api/internal/engine"
	"github.com/KirkDiggler/tamagotchi-api/internal/entities/tamagotchi"
	"github.com/KirkDiggler/tamagotchi-api/internal/errors"
)

// Drift thresholds
const (
	starvingAbove      = 80
	exhaustedBelow     = 20
	dirtyBelow         = 30
	sickChancePercent  = 20
	bonusChancePercent = 30
)

// ApplyNaturalDrift applies Ticks rounds of hunger, dirt and fatigue.
// Ticks below one apply a single round.
func (a *Adapter) ApplyNaturalDrift(
	_ context.Context,
	input *engine.ApplyNaturalDriftInput,
) (*engine.ApplyNaturalDriftOutput, error) {
	if input == nil || input.Creature == nil {
		return nil, errors.InvalidArgument("creature is required")
	}

	ticks := input.Ticks
	if ticks < 1 {
		ticks = 1
	}

	r := a.newDraw()
	out := &engine.ApplyNaturalDriftOutput{Ticks: ticks}
	for i := 0; i < ticks; i++ {
		if driftOnce(r, input.Creature) {
			out.FellSick = true
		}
	}

	if r.err != nil {
		return nil, errors.Wrap(r.err, "failed to roll drift")
	}
	return out, nil
}

// driftOnce reports whether the creature fell sick this round
func driftOnce(r *draw, c *tamagotchi.Creature) bool {
	fellSick := false

	c.Hunger += r.between(5, 15)
	c.Hygiene -= r.between(3, 8)
	if c.Sleeping {
		c.Energy += r.between(5, 10)
	} else {
		c.Energy -= r.between(5, 10)
	}

	if c.Hunger > starvingAbove {
		c.Health -= 5
		c.Happiness -= 10
	}
	if c.Energy < exhaustedBelow {
		c.Happiness -= 5
	}
	if c.Sick {
		c.Health -= 5
	}
	if c.Hygiene < dirtyBelow && !c.Sick && r.chance(sickChancePercent) {
		c.Sick = true
		fellSick = true
	}
	if c.Hunger < 30 && c.Hygiene > 70 && c.Energy > 50 && c.Health > 70 && r.chance(bonusChancePercent) {
		c.Happiness += 5
	}

	c.ClampAll()
	c.Mood = tamagotchi.ComputeMood(c)
	return fellSick
}
