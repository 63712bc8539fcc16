// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"
	"fmt"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/tamagotchi-api/internal/entities/tamagotchi"
	creaturerepo "github.com/KirkDiggler/tamagotchi-api/internal/repositories/creature"
	creaturerepomock "github.com/KirkDiggler/tamagotchi-api/internal/repositories/creature/mock"
	"github.com/KirkDiggler/tamagotchi-api/internal/repositories/journal"
	journalmock "github.com/KirkDiggler/tamagotchi-api/internal/repositories/journal/mock"
)

// ExpectCreatureLoad makes the repository return a copy of c for its user
func ExpectCreatureLoad(repo *creaturerepomock.MockRepository, c *tamagotchi.Creature) *gomock.Call {
	return repo.EXPECT().
		Get(gomock.Any(), creaturerepo.GetInput{UserID: c.UserID}).
		Return(&creaturerepo.GetOutput{Creature: c.Clone()}, nil)
}

// ExpectCreaturePersist expects one Save of the user's creature followed by a Flush
func ExpectCreaturePersist(repo *creaturerepomock.MockRepository, userID string) {
	gomock.InOrder(
		repo.EXPECT().
			Save(gomock.Any(), savedFor(userID)).
			Return(&creaturerepo.SaveOutput{}, nil),
		repo.EXPECT().
			Flush(gomock.Any(), creaturerepo.FlushInput{}).
			Return(&creaturerepo.FlushOutput{Written: true}, nil),
	)
}

// ExpectJournalEntry expects one journal entry of the given kind for userID
func ExpectJournalEntry(repo *journalmock.MockRepository, userID string, kind tamagotchi.JournalKind) *gomock.Call {
	return repo.EXPECT().
		Append(gomock.Any(), journalEntry{userID: userID, kind: kind}).
		DoAndReturn(func(_ context.Context, input journal.AppendInput) (*journal.AppendOutput, error) {
			return &journal.AppendOutput{Entry: input.Entry}, nil
		})
}

type saveMatcher struct {
	userID string
}

func savedFor(userID string) gomock.Matcher {
	return saveMatcher{userID: userID}
}

func (m saveMatcher) Matches(x any) bool {
	input, ok := x.(creaturerepo.SaveInput)
	return ok && input.Creature != nil && input.Creature.UserID == m.userID
}

func (m saveMatcher) String() string {
	return fmt.Sprintf("save of creature %s", m.userID)
}

type journalEntry struct {
	userID string
	kind   tamagotchi.JournalKind
}

func (m journalEntry) Matches(x any) bool {
	input, ok := x.(journal.AppendInput)
	return ok && input.Entry != nil && input.Entry.UserID == m.userID && input.Entry.Kind == m.kind
}

func (m journalEntry) String() string {
	return fmt.Sprintf("%s entry for %s", m.kind, m.userID)
}
