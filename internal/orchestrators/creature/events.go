package creature

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/tamagotchi-api/internal/entities/tamagotchi"
	"github.com/KirkDiggler/tamagotchi-api/internal/repositories/journal"
)

// Event types published on the bus
const (
	EventCreatureBorn   = "tamagotchi.creature.born"
	EventDayCompleted   = "tamagotchi.creature.day_completed"
	EventGrewUp         = "tamagotchi.creature.grew_up"
	EventLifeEvent      = "tamagotchi.creature.life_event"
	EventFellSick       = "tamagotchi.creature.fell_sick"
	EventDestinyReached = "tamagotchi.creature.destiny_reached"
)

var _ core.Entity = (*tamagotchi.Creature)(nil)

// journalKinds maps published event types to the journal entry they produce
var journalKinds = map[string]tamagotchi.JournalKind{
	EventCreatureBorn:   tamagotchi.JournalKindBorn,
	EventDayCompleted:   tamagotchi.JournalKindDaily,
	EventGrewUp:         tamagotchi.JournalKindGrewUp,
	EventLifeEvent:      tamagotchi.JournalKindLifeEvent,
	EventFellSick:       tamagotchi.JournalKindFellSick,
	EventDestinyReached: tamagotchi.JournalKindDestiny,
}

// CreatureEvent is a notable moment in a creature's life. The creature is both
// source and target of the underlying game event.
type CreatureEvent struct {
	*events.GameEvent

	UserID string
	Text   string
	At     time.Time
}

func newCreatureEvent(eventType string, c *tamagotchi.Creature, text string, at time.Time) *CreatureEvent {
	return &CreatureEvent{
		GameEvent: events.NewGameEvent(eventType, c, c),
		UserID:    c.UserID,
		Text:      text,
		At:        at,
	}
}

// journalRecorder writes every CreatureEvent to the journal
type journalRecorder struct {
	repo journal.Repository
}

func (r *journalRecorder) subscribe(bus events.EventBus) {
	for eventType := range journalKinds {
		bus.SubscribeFunc(eventType, 0, r.handle)
	}
}

func (r *journalRecorder) handle(ctx context.Context, event events.Event) error {
	ce, ok := event.(*CreatureEvent)
	if !ok {
		return nil
	}

	_, err := r.repo.Append(ctx, journal.AppendInput{
		Entry: &tamagotchi.JournalEntry{
			UserID:    ce.UserID,
			Kind:      journalKinds[ce.Type()],
			Text:      ce.Text,
			CreatedAt: ce.At,
		},
	})
	if err != nil {
		// the journal is best effort; the creature is already saved
		slog.WarnContext(ctx, "failed to record journal entry",
			"user_id", ce.UserID,
			"event_type", ce.Type(),
			"error", err.Error())
	}
	return nil
}
