// Package rpgtoolkit implements engine.Engine with rpg-toolkit dice as the source of randomness.
package rpgtoolkit

import (
	"context"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/tamagotchi-api/internal/engine"
	"github.com/KirkDiggler/tamagotchi-api/internal/entities/tamagotchi"
	"github.com/KirkDiggler/tamagotchi-api/internal/errors"
)

// Adapter implements the engine.Engine interface using rpg-toolkit
type Adapter struct {
	diceRoller dice.Roller
}

// AdapterConfig contains configuration for creating a new Adapter
type AdapterConfig struct {
	DiceRoller dice.Roller
}

// Validate checks that all required dependencies are provided
func (c *AdapterConfig) Validate() error {
	if c.DiceRoller == nil {
		return errors.InvalidArgument("dice roller is required")
	}
	return nil
}

// NewAdapter creates a new rpg-toolkit engine adapter
func NewAdapter(cfg *AdapterConfig) (*Adapter, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Adapter{
		diceRoller: cfg.DiceRoller,
	}, nil
}

// Verify that Adapter implements engine.Engine interface
var _ engine.Engine = (*Adapter)(nil)

// NewCreature validates the name and gender and hatches a creature with default stats
func (a *Adapter) NewCreature(ctx context.Context, input *engine.NewCreatureInput) (*engine.NewCreatureOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	name := strings.TrimSpace(input.Name)

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("user_id", input.UserID, vb)
	errors.ValidateRuneLength("name", name, tamagotchi.NameMinLength, tamagotchi.NameMaxLength, vb)
	if !input.Gender.IsValid() {
		vb.Field("gender", "must be boy or girl")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	c := &tamagotchi.Creature{
		UserID:      input.UserID,
		Name:        name,
		Gender:      input.Gender,
		CreatedAt:   input.Now,
		LastDriftAt: input.Now,
	}
	c.ApplyDefaults()

	genes, err := a.DrawGenes(ctx, &engine.DrawGenesInput{})
	if err != nil {
		return nil, err
	}
	c.Genes = genes.Genes

	return &engine.NewCreatureOutput{Creature: c}, nil
}

// DrawGenes picks one allele per trait uniformly from the catalog
func (a *Adapter) DrawGenes(_ context.Context, _ *engine.DrawGenesInput) (*engine.DrawGenesOutput, error) {
	r := a.newDraw()

	var genes tamagotchi.Genes
	for _, trait := range tamagotchi.Traits {
		alleles := tamagotchi.GeneCatalog[trait]
		genes.Set(trait, alleles[r.pick(len(alleles))])
	}

	if r.err != nil {
		return nil, errors.Wrap(r.err, "failed to draw genes")
	}
	return &engine.DrawGenesOutput{Genes: genes}, nil
}

// DrawLifeEvent picks a life event uniformly and renders its text
func (a *Adapter) DrawLifeEvent(_ context.Context, input *engine.DrawLifeEventInput) (*engine.DrawLifeEventOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	r := a.newDraw()
	tmpl := engine.LifeEvents[r.pick(len(engine.LifeEvents))]
	if r.err != nil {
		return nil, errors.Wrap(r.err, "failed to draw life event")
	}

	return &engine.DrawLifeEventOutput{
		Event: engine.LifeEvent{
			Text:   engine.RenderLifeEvent(tmpl.Text, input.Name, input.Gender),
			Effect: tmpl.Effect,
		},
	}, nil
}

// DrawFact picks a genetics fact
func (a *Adapter) DrawFact(_ context.Context, _ *engine.DrawFactInput) (*engine.DrawFactOutput, error) {
	r := a.newDraw()
	fact := engine.Facts[r.pick(len(engine.Facts))]
	if r.err != nil {
		return nil, errors.Wrap(r.err, "failed to draw fact")
	}
	return &engine.DrawFactOutput{Fact: fact}, nil
}

// EvaluateDestiny returns the final outcome once the creature is old enough,
// otherwise a prediction. The creature is not modified.
func (a *Adapter) EvaluateDestiny(
	_ context.Context,
	input *engine.EvaluateDestinyInput,
) (*engine.EvaluateDestinyOutput, error) {
	if input == nil || input.Creature == nil {
		return nil, errors.InvalidArgument("creature is required")
	}

	c := input.Creature
	if c.AgeDays >= tamagotchi.DestinyAgeDays {
		return &engine.EvaluateDestinyOutput{
			Report: engine.DestinyReport{
				Final:   true,
				Outcome: engine.ClassifyDestiny(c),
			},
		}, nil
	}

	return &engine.EvaluateDestinyOutput{Report: engine.Predict(c)}, nil
}

func (a *Adapter) newDraw() *draw {
	return &draw{roller: a.diceRoller}
}

// draw wraps a dice.Roller and keeps the first error so a sequence of rolls
// can be checked once at the end
type draw struct {
	roller dice.Roller
	err    error
}

// roll returns 1..size
func (d *draw) roll(size int) int {
	if d.err != nil || size < 1 {
		return 1
	}
	v, err := d.roller.Roll(size)
	if err != nil {
		d.err = err
		return 1
	}
	return v
}

// between returns lo..hi inclusive
func (d *draw) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + d.roll(hi-lo+1) - 1
}

// chance succeeds with the given percent probability
func (d *draw) chance(percent int) bool {
	if percent >= 100 {
		return true
	}
	if percent <= 0 {
		return false
	}
	return d.roll(100) <= percent
}

// pick returns an index in [0, n)
func (d *draw) pick(n int) int {
	return d.roll(n) - 1
}
