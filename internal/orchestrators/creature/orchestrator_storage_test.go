package creature_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/tamagotchi-api/internal/engine"
	enginemock "github.com/KirkDiggler/tamagotchi-api/internal/engine/mock"
	"github.com/KirkDiggler/tamagotchi-api/internal/entities/tamagotchi"
	"github.com/KirkDiggler/tamagotchi-api/internal/errors"
	"github.com/KirkDiggler/tamagotchi-api/internal/orchestrators/creature"
	"github.com/KirkDiggler/tamagotchi-api/internal/pkg/clock"
	creaturerepo "github.com/KirkDiggler/tamagotchi-api/internal/repositories/creature"
	creaturerepomock "github.com/KirkDiggler/tamagotchi-api/internal/repositories/creature/mock"
	"github.com/KirkDiggler/tamagotchi-api/internal/repositories/journal"
	journalmock "github.com/KirkDiggler/tamagotchi-api/internal/repositories/journal/mock"
	"github.com/KirkDiggler/tamagotchi-api/internal/testutils"
	"github.com/KirkDiggler/tamagotchi-api/internal/testutils/mocks"
)

// StorageTestSuite drives the orchestrator against mocked stores to pin down
// the write boundary and its failure modes
type StorageTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockEngine   *enginemock.MockEngine
	mockCreature *creaturerepomock.MockRepository
	mockJournal  *journalmock.MockRepository
	orchestrator creature.Service
	ctx          context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageTestSuite))
}

func (s *StorageTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockEngine = enginemock.NewMockEngine(s.ctrl)
	s.mockCreature = creaturerepomock.NewMockRepository(s.ctrl)
	s.mockJournal = journalmock.NewMockRepository(s.ctrl)
	s.ctx = context.Background()

	svc, err := creature.NewOrchestrator(&creature.Config{
		CreatureRepo: s.mockCreature,
		JournalRepo:  s.mockJournal,
		Engine:       s.mockEngine,
		EventBus:     events.NewBus(),
		Clock:        clock.NewFixed(testutils.TestNow),
	})
	s.Require().NoError(err)
	s.orchestrator = svc
}

func (s *StorageTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *StorageTestSuite) feed() (*creature.PerformCareOutput, error) {
	return s.orchestrator.PerformCare(s.ctx, &creature.PerformCareInput{
		UserID: testutils.TestUserID,
		Action: tamagotchi.CareActionFeed,
	})
}

func (s *StorageTestSuite) expectFeed() {
	s.mockEngine.EXPECT().
		PerformCare(gomock.Any(), gomock.Any()).
		Return(&engine.PerformCareOutput{Message: "Yum!"}, nil)
}

func (s *StorageTestSuite) TestStartWritesOnceThenJournals() {
	c := testutils.CreateTestCreature(testutils.TestUserID)

	s.mockEngine.EXPECT().
		NewCreature(gomock.Any(), gomock.Any()).
		Return(&engine.NewCreatureOutput{Creature: c}, nil)
	s.mockCreature.EXPECT().
		Get(gomock.Any(), creaturerepo.GetInput{UserID: testutils.TestUserID}).
		Return(nil, errors.NotFound("no creature"))
	mocks.ExpectCreaturePersist(s.mockCreature, testutils.TestUserID)
	mocks.ExpectJournalEntry(s.mockJournal, testutils.TestUserID, tamagotchi.JournalKindBorn)

	out, err := s.orchestrator.Start(s.ctx, &creature.StartInput{
		UserID: testutils.TestUserID,
		Name:   "Rex",
		Gender: tamagotchi.GenderBoy,
	})
	s.Require().NoError(err)
	s.False(out.Replaced)
}

func (s *StorageTestSuite) TestStartOverUnreadableRecord() {
	c := testutils.CreateTestCreature(testutils.TestUserID)

	s.mockEngine.EXPECT().
		NewCreature(gomock.Any(), gomock.Any()).
		Return(&engine.NewCreatureOutput{Creature: c}, nil)
	s.mockCreature.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(nil, errors.DataLossf("creature record is not valid JSON"))
	mocks.ExpectCreaturePersist(s.mockCreature, testutils.TestUserID)
	gomock.InOrder(
		s.mockJournal.EXPECT().
			Clear(gomock.Any(), journal.ClearInput{UserID: testutils.TestUserID}).
			Return(&journal.ClearOutput{Cleared: true}, nil),
		mocks.ExpectJournalEntry(s.mockJournal, testutils.TestUserID, tamagotchi.JournalKindBorn),
	)

	out, err := s.orchestrator.Start(s.ctx, &creature.StartInput{UserID: testutils.TestUserID, Name: "Rex"})
	s.Require().NoError(err)
	s.False(out.Replaced)
}

func (s *StorageTestSuite) TestStartReplacingClearsJournal() {
	testCases := []struct {
		name     string
		clearErr error
	}{
		{name: "cleared"},
		{name: "clear failure is not fatal", clearErr: errors.Internal("connection reset")},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockEngine.EXPECT().
				NewCreature(gomock.Any(), gomock.Any()).
				Return(&engine.NewCreatureOutput{Creature: testutils.CreateTestCreature(testutils.TestUserID)}, nil)
			mocks.ExpectCreatureLoad(s.mockCreature, testutils.CreateTestCreature(testutils.TestUserID))
			mocks.ExpectCreaturePersist(s.mockCreature, testutils.TestUserID)

			clearOut := &journal.ClearOutput{Cleared: true}
			if tc.clearErr != nil {
				clearOut = nil
			}
			gomock.InOrder(
				s.mockJournal.EXPECT().
					Clear(gomock.Any(), journal.ClearInput{UserID: testutils.TestUserID}).
					Return(clearOut, tc.clearErr),
				mocks.ExpectJournalEntry(s.mockJournal, testutils.TestUserID, tamagotchi.JournalKindBorn),
			)

			out, err := s.orchestrator.Start(s.ctx, &creature.StartInput{UserID: testutils.TestUserID, Name: "Rex"})
			s.Require().NoError(err)
			s.True(out.Replaced)
		})
	}
}

func (s *StorageTestSuite) TestStartStoreUnavailable() {
	s.mockEngine.EXPECT().
		NewCreature(gomock.Any(), gomock.Any()).
		Return(&engine.NewCreatureOutput{Creature: testutils.CreateTestCreature(testutils.TestUserID)}, nil)
	s.mockCreature.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(nil, errors.Internal("connection refused"))

	_, err := s.orchestrator.Start(s.ctx, &creature.StartInput{UserID: testutils.TestUserID, Name: "Rex"})
	s.Require().Error(err)
	s.Equal(errors.GenericApology, errors.UserMessage(err))
}

func (s *StorageTestSuite) TestCarePersistsOnce() {
	mocks.ExpectCreatureLoad(s.mockCreature, testutils.CreateTestCreature(testutils.TestUserID))
	s.expectFeed()
	mocks.ExpectCreaturePersist(s.mockCreature, testutils.TestUserID)

	out, err := s.feed()
	s.Require().NoError(err)
	s.Equal("Yum!", out.Message)
}

func (s *StorageTestSuite) TestSaveFailure() {
	mocks.ExpectCreatureLoad(s.mockCreature, testutils.CreateTestCreature(testutils.TestUserID))
	s.expectFeed()
	s.mockCreature.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		Return(nil, errors.Internal("disk full"))

	_, err := s.feed()
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
	s.Contains(err.Error(), "failed to save creature")
	s.Equal(errors.GenericApology, errors.UserMessage(err))
}

func (s *StorageTestSuite) TestFlushFailure() {
	mocks.ExpectCreatureLoad(s.mockCreature, testutils.CreateTestCreature(testutils.TestUserID))
	s.expectFeed()
	s.mockCreature.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		Return(&creaturerepo.SaveOutput{}, nil)
	s.mockCreature.EXPECT().
		Flush(gomock.Any(), gomock.Any()).
		Return(nil, errors.Internal("rename failed"))

	_, err := s.feed()
	s.Require().Error(err)
	s.Contains(err.Error(), "failed to flush creatures")
}

func (s *StorageTestSuite) TestJournalFailureDoesNotFailOperation() {
	c := testutils.CreateTestCreature(testutils.TestUserID)

	s.mockEngine.EXPECT().
		NewCreature(gomock.Any(), gomock.Any()).
		Return(&engine.NewCreatureOutput{Creature: c}, nil)
	s.mockCreature.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(&creaturerepo.GetOutput{Creature: c.Clone()}, nil)
	mocks.ExpectCreaturePersist(s.mockCreature, testutils.TestUserID)
	s.mockJournal.EXPECT().
		Append(gomock.Any(), gomock.Any()).
		Return(nil, errors.Internal("redis down"))

	out, err := s.orchestrator.Start(s.ctx, &creature.StartInput{UserID: testutils.TestUserID, Name: "Rex"})
	s.Require().NoError(err)
	s.True(out.Replaced)
}
