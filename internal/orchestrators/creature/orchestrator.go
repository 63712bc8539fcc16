// Package creature implements the creature use cases behind every chat command.
// Each operation loads the creature, catches up natural drift, runs the engine,
// saves and flushes once, then publishes domain events.
package creature

//go:generate mockgen -destination=mock/mock_service.go -package=creaturemock github.com/KirkDiggler/tamagotchi-api/internal/orchestrators/creature Service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/tamagotchi-api/internal/engine"
	"github.com/KirkDiggler/tamagotchi-api/internal/entities/tamagotchi"
	"github.com/KirkDiggler/tamagotchi-api/internal/errors"
	"github.com/KirkDiggler/tamagotchi-api/internal/leaderboard"
	"github.com/KirkDiggler/tamagotchi-api/internal/pkg/clock"
	creaturerepo "github.com/KirkDiggler/tamagotchi-api/internal/repositories/creature"
	"github.com/KirkDiggler/tamagotchi-api/internal/repositories/journal"
)

const (
	// DefaultDriftInterval is the time one drift tick stands for
	DefaultDriftInterval = time.Hour
	// MaxDriftTicks caps catch-up after a long absence
	MaxDriftTicks = 24
	// DefaultLeaderboardSize is the number of entries shown by the tournament
	DefaultLeaderboardSize = 10
)

// Service defines the creature use cases
type Service interface {
	Start(ctx context.Context, input *StartInput) (*StartOutput, error)
	GetStatus(ctx context.Context, input *GetStatusInput) (*GetStatusOutput, error)
	RunDaily(ctx context.Context, input *RunDailyInput) (*RunDailyOutput, error)
	PerformCare(ctx context.Context, input *PerformCareInput) (*PerformCareOutput, error)
	TriggerLifeEvent(ctx context.Context, input *TriggerLifeEventInput) (*TriggerLifeEventOutput, error)
	EvaluateDestiny(ctx context.Context, input *EvaluateDestinyInput) (*EvaluateDestinyOutput, error)
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)
	GetJournal(ctx context.Context, input *GetJournalInput) (*GetJournalOutput, error)
	GetGenes(ctx context.Context, input *GetGenesInput) (*GetGenesOutput, error)
	GetFact(ctx context.Context, input *GetFactInput) (*GetFactOutput, error)
}

// Config holds the dependencies for the creature orchestrator
type Config struct {
	CreatureRepo creaturerepo.Repository
	JournalRepo  journal.Repository
	Engine       engine.Engine

	// EventBus defaults to a fresh rpg-toolkit bus
	EventBus events.EventBus
	// Clock defaults to the wall clock
	Clock clock.Clock

	// DriftInterval defaults to DefaultDriftInterval
	DriftInterval time.Duration
	// DailyCooldown is the minimum gap between two daily routines; zero disables it
	DailyCooldown time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.CreatureRepo == nil {
		vb.RequiredField("CreatureRepo")
	}
	if c.JournalRepo == nil {
		vb.RequiredField("JournalRepo")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.DriftInterval < 0 {
		vb.Field("DriftInterval", "must not be negative")
	}
	if c.DailyCooldown < 0 {
		vb.Field("DailyCooldown", "must not be negative")
	}
	return vb.Build()
}

type orchestrator struct {
	creatureRepo  creaturerepo.Repository
	journalRepo   journal.Repository
	engine        engine.Engine
	eventBus      events.EventBus
	clock         clock.Clock
	driftInterval time.Duration
	dailyCooldown time.Duration
}

// NewOrchestrator creates a new creature orchestrator and subscribes the journal
// recorder to its event bus
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	bus := cfg.EventBus
	if bus == nil {
		bus = events.NewBus()
	}
	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}
	interval := cfg.DriftInterval
	if interval == 0 {
		interval = DefaultDriftInterval
	}

	(&journalRecorder{repo: cfg.JournalRepo}).subscribe(bus)

	return &orchestrator{
		creatureRepo:  cfg.CreatureRepo,
		journalRepo:   cfg.JournalRepo,
		engine:        cfg.Engine,
		eventBus:      bus,
		clock:         clk,
		driftInterval: interval,
		dailyCooldown: cfg.DailyCooldown,
	}, nil
}

func (o *orchestrator) Start(ctx context.Context, input *StartInput) (*StartOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	now := o.clock.Now()
	created, err := o.engine.NewCreature(ctx, &engine.NewCreatureInput{
		UserID: input.UserID,
		Name:   input.Name,
		Gender: input.Gender,
		Now:    now,
	})
	if err != nil {
		return nil, err
	}
	c := created.Creature

	replaced, unreadable := false, false
	if _, err := o.creatureRepo.Get(ctx, creaturerepo.GetInput{UserID: c.UserID}); err == nil {
		replaced = true
	} else if errors.GetCode(err) == errors.CodeDataLoss {
		unreadable = true
	} else if !errors.IsNotFound(err) {
		return nil, errors.Wrapf(err, "failed to check existing creature")
	}

	if err := o.persist(ctx, c); err != nil {
		return nil, err
	}

	// the previous pet's history must not show up in the new pet's journal
	if replaced || unreadable {
		if _, err := o.journalRepo.Clear(ctx, journal.ClearInput{UserID: c.UserID}); err != nil {
			slog.WarnContext(ctx, "failed to clear journal of replaced creature",
				"user_id", c.UserID,
				"error", err.Error())
		}
	}

	slog.InfoContext(ctx, "creature hatched",
		"user_id", c.UserID,
		"name", c.Name,
		"gender", c.Gender,
		"replaced", replaced)

	o.publish(ctx, newCreatureEvent(EventCreatureBorn, c,
		fmt.Sprintf("%s was born with %s eyes, %s hair and the %s talent.",
			c.Name, c.Genes.Eyes.Allele, c.Genes.Hair.Allele, strings.ReplaceAll(c.Genes.Talent.Allele, "_", " ")),
		now))

	return &StartOutput{Creature: c, Replaced: replaced}, nil
}

func (o *orchestrator) GetStatus(ctx context.Context, input *GetStatusInput) (*GetStatusOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	c, drift, err := o.load(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if drift.changed {
		if err := o.persist(ctx, c); err != nil {
			return nil, err
		}
	}
	o.publishDrift(ctx, c, drift)

	return &GetStatusOutput{Creature: c, Drift: drift.summary()}, nil
}

func (o *orchestrator) RunDaily(ctx context.Context, input *RunDailyInput) (*RunDailyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	c, drift, err := o.load(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	now := o.clock.Now()
	if o.dailyCooldown > 0 && !c.LastRoutineAt.IsZero() {
		if wait := c.LastRoutineAt.Add(o.dailyCooldown).Sub(now); wait > 0 {
			return nil, errors.ResourceExhaustedf("%s already lived a full day. Try again in %s.",
				c.Name, wait.Round(time.Second)).
				WithMeta("retry_in_seconds", int(math.Ceil(wait.Seconds())))
		}
	}

	wasFinal := c.AgeDays >= tamagotchi.DestinyAgeDays

	routine, err := o.engine.RunDailyRoutine(ctx, &engine.RunDailyRoutineInput{Creature: c})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to run daily routine")
	}
	c.LastRoutineAt = now
	c.LastDriftAt = now

	out := &RunDailyOutput{
		Creature:         c,
		Log:              routine.Log,
		AgeGroupChanged:  routine.AgeGroupChanged,
		PreviousAgeGroup: routine.PreviousAgeGroup,
	}

	if !wasFinal && c.AgeDays >= tamagotchi.DestinyAgeDays {
		verdict, err := o.engine.EvaluateDestiny(ctx, &engine.EvaluateDestinyInput{Creature: c})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to evaluate destiny")
		}
		out.Destiny = &verdict.Report
	}

	if err := o.persist(ctx, c); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "daily routine completed",
		"user_id", c.UserID,
		"age_years", c.AgeYears(),
		"lessons", routine.Lessons,
		"routines_lived", c.RoutinesLived)

	o.publishDrift(ctx, c, drift)
	o.publish(ctx, newCreatureEvent(EventDayCompleted, c, daySummary(c, routine), now))
	if routine.AgeGroupChanged {
		o.publish(ctx, newCreatureEvent(EventGrewUp, c,
			fmt.Sprintf("%s grew up and is now a %s.", c.Name, ageGroupNoun(c.AgeGroup)), now))
	}
	if out.Destiny != nil {
		o.publish(ctx, newCreatureEvent(EventDestinyReached, c,
			fmt.Sprintf("%s turned %d. Destiny: %s.", c.Name, c.AgeYears(), destinyNoun(out.Destiny.Outcome)), now))
	}

	return out, nil
}

func (o *orchestrator) PerformCare(ctx context.Context, input *PerformCareInput) (*PerformCareOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !input.Action.IsValid() {
		return nil, errors.InvalidArgumentf("unknown care action %q", input.Action)
	}

	c, drift, err := o.load(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	result, err := o.engine.PerformCare(ctx, &engine.PerformCareInput{
		Creature: c,
		Action:   input.Action,
		Now:      o.clock.Now(),
	})
	if err != nil {
		return nil, err
	}

	if err := o.persist(ctx, c); err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "care action performed",
		"user_id", c.UserID,
		"action", input.Action,
		"rest_started", result.RestStarted)

	o.publishDrift(ctx, c, drift)

	return &PerformCareOutput{
		Creature:    c,
		Message:     result.Message,
		RestStarted: result.RestStarted,
	}, nil
}

func (o *orchestrator) TriggerLifeEvent(ctx context.Context, input *TriggerLifeEventInput) (*TriggerLifeEventOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	c, drift, err := o.load(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	drawn, err := o.engine.DrawLifeEvent(ctx, &engine.DrawLifeEventInput{
		Name:   c.Name,
		Gender: c.Gender,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to draw life event")
	}
	c.ApplyLifeEvent(drawn.Event.Effect)

	if err := o.persist(ctx, c); err != nil {
		return nil, err
	}

	o.publishDrift(ctx, c, drift)
	o.publish(ctx, newCreatureEvent(EventLifeEvent, c, drawn.Event.Text, o.clock.Now()))

	return &TriggerLifeEventOutput{Creature: c, Event: drawn.Event}, nil
}

func (o *orchestrator) EvaluateDestiny(ctx context.Context, input *EvaluateDestinyInput) (*EvaluateDestinyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	c, drift, err := o.load(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	verdict, err := o.engine.EvaluateDestiny(ctx, &engine.EvaluateDestinyInput{Creature: c})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to evaluate destiny")
	}

	if drift.changed {
		if err := o.persist(ctx, c); err != nil {
			return nil, err
		}
	}
	o.publishDrift(ctx, c, drift)

	return &EvaluateDestinyOutput{Creature: c, Report: verdict.Report}, nil
}

func (o *orchestrator) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	listed, err := o.creatureRepo.List(ctx, creaturerepo.ListInput{})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list creatures")
	}

	ranked := leaderboard.Rank(listed.Creatures)

	limit := input.Limit
	if limit <= 0 {
		limit = DefaultLeaderboardSize
	}

	out := &GetLeaderboardOutput{
		Entries: leaderboard.Top(ranked, limit),
		Total:   len(ranked),
	}
	if input.UserID != "" {
		out.Position = leaderboard.Position(ranked, input.UserID)
		if out.Position > 0 {
			out.Rating = ranked[out.Position-1].Rating
		}
	}
	return out, nil
}

func (o *orchestrator) GetJournal(ctx context.Context, input *GetJournalInput) (*GetJournalOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	got, err := o.creatureRepo.Get(ctx, creaturerepo.GetInput{UserID: input.UserID})
	if err != nil {
		return nil, err
	}

	listed, err := o.journalRepo.List(ctx, journal.ListInput{UserID: input.UserID, Limit: input.Limit})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read journal")
	}
	return &GetJournalOutput{Name: got.Creature.Name, Entries: listed.Entries}, nil
}

func (o *orchestrator) GetGenes(ctx context.Context, input *GetGenesInput) (*GetGenesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	got, err := o.creatureRepo.Get(ctx, creaturerepo.GetInput{UserID: input.UserID})
	if err != nil {
		return nil, err
	}
	c := got.Creature

	// records from before genes existed get them on first look
	if c.Genes.IsZero() {
		drawn, err := o.engine.DrawGenes(ctx, &engine.DrawGenesInput{})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to draw genes")
		}
		c.Genes = drawn.Genes
		if err := o.persist(ctx, c); err != nil {
			return nil, err
		}
	}

	return &GetGenesOutput{
		Name:     c.Name,
		Genes:    c.Genes,
		Dominant: c.Genes.Dominant(),
	}, nil
}

func (o *orchestrator) GetFact(ctx context.Context, _ *GetFactInput) (*GetFactOutput, error) {
	drawn, err := o.engine.DrawFact(ctx, &engine.DrawFactInput{})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to draw fact")
	}
	return &GetFactOutput{Fact: drawn.Fact}, nil
}

// load reads the creature and applies any drift owed since LastDriftAt
func (o *orchestrator) load(ctx context.Context, userID string) (*tamagotchi.Creature, driftResult, error) {
	got, err := o.creatureRepo.Get(ctx, creaturerepo.GetInput{UserID: userID})
	if err != nil {
		return nil, driftResult{}, err
	}
	c := got.Creature

	drift, err := o.catchUpDrift(ctx, c)
	if err != nil {
		return nil, driftResult{}, err
	}
	return c, drift, nil
}

// persist saves and flushes; it is the single write boundary of every operation
func (o *orchestrator) persist(ctx context.Context, c *tamagotchi.Creature) error {
	if _, err := o.creatureRepo.Save(ctx, creaturerepo.SaveInput{Creature: c}); err != nil {
		return errors.Wrapf(err, "failed to save creature")
	}
	if _, err := o.creatureRepo.Flush(ctx, creaturerepo.FlushInput{}); err != nil {
		return errors.Wrapf(err, "failed to flush creatures")
	}
	return nil
}

func (o *orchestrator) publish(ctx context.Context, event *CreatureEvent) {
	if err := o.eventBus.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "failed to publish creature event",
			"user_id", event.UserID,
			"event_type", event.Type(),
			"error", err.Error())
	}
}

func (o *orchestrator) publishDrift(ctx context.Context, c *tamagotchi.Creature, drift driftResult) {
	if drift.fellSick {
		o.publish(ctx, newCreatureEvent(EventFellSick, c,
			fmt.Sprintf("%s caught a cold while nobody was looking.", c.Name), o.clock.Now()))
	}
}

func daySummary(c *tamagotchi.Creature, routine *engine.RunDailyRoutineOutput) string {
	switch {
	case routine.Lessons > 0:
		return fmt.Sprintf("%s turned %d and attended %d lessons.", c.Name, c.AgeYears(), routine.Lessons)
	case routine.AttendedSchool:
		return fmt.Sprintf("%s turned %d and learned nothing at school.", c.Name, c.AgeYears())
	default:
		return fmt.Sprintf("%s turned %d.", c.Name, c.AgeYears())
	}
}

func ageGroupNoun(g tamagotchi.AgeGroup) string {
	switch g {
	case tamagotchi.AgeGroupToddler:
		return "toddler"
	case tamagotchi.AgeGroupPreschooler:
		return "preschooler"
	case tamagotchi.AgeGroupSchoolchild:
		return "schoolchild"
	case tamagotchi.AgeGroupTeenager:
		return "teenager"
	case tamagotchi.AgeGroupAdult:
		return "grown-up"
	default:
		return "child"
	}
}

func destinyNoun(d tamagotchi.Destiny) string {
	switch d {
	case tamagotchi.DestinyRich:
		return "rich and successful"
	case tamagotchi.DestinyPrison:
		return "behind bars"
	case tamagotchi.DestinyIll:
		return "in poor health"
	case tamagotchi.DestinyProdigy:
		return "a prodigy"
	default:
		return "an ordinary life"
	}
}
