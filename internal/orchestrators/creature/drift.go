package creature

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/tamagotchi-api/internal/engine"
	"github.com/KirkDiggler/tamagotchi-api/internal/entities/tamagotchi"
	"github.com/KirkDiggler/tamagotchi-api/internal/errors"
)

type driftResult struct {
	ticks    int
	fellSick bool
	// changed is set when the creature differs from what was loaded
	changed bool
}

func (d driftResult) summary() DriftSummary {
	return DriftSummary{Ticks: d.ticks, FellSick: d.fellSick}
}

// catchUpDrift applies one drift tick per elapsed interval since LastDriftAt.
// The unused remainder of an interval carries over unless the cap was hit.
func (o *orchestrator) catchUpDrift(ctx context.Context, c *tamagotchi.Creature) (driftResult, error) {
	now := o.clock.Now()

	if c.LastDriftAt.IsZero() || c.LastDriftAt.After(now) {
		c.LastDriftAt = now
		return driftResult{changed: true}, nil
	}

	ticks := int(now.Sub(c.LastDriftAt) / o.driftInterval)
	if ticks == 0 {
		return driftResult{}, nil
	}

	if ticks > MaxDriftTicks {
		ticks = MaxDriftTicks
		c.LastDriftAt = now
	} else {
		c.LastDriftAt = c.LastDriftAt.Add(o.driftInterval * time.Duration(ticks))
	}

	wasSick := c.Sick
	out, err := o.engine.ApplyNaturalDrift(ctx, &engine.ApplyNaturalDriftInput{
		Creature: c,
		Ticks:    ticks,
	})
	if err != nil {
		return driftResult{}, errors.Wrapf(err, "failed to apply natural drift")
	}

	slog.DebugContext(ctx, "applied natural drift",
		"user_id", c.UserID,
		"ticks", out.Ticks)

	return driftResult{
		ticks:    out.Ticks,
		fellSick: out.FellSick && !wasSick,
		changed:  true,
	}, nil
}
