package creature_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/tamagotchi-api/internal/errors"
	"github.com/KirkDiggler/tamagotchi-api/internal/repositories/creature"
	"github.com/KirkDiggler/tamagotchi-api/internal/testutils"
)

type InMemoryCreatureTestSuite struct {
	suite.Suite
	repo *creature.InMemoryRepository
	ctx  context.Context
}

func TestInMemoryCreatureSuite(t *testing.T) {
	suite.Run(t, new(InMemoryCreatureTestSuite))
}

func (s *InMemoryCreatureTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = creature.NewInMemory()
}

func (s *InMemoryCreatureTestSuite) TestRoundTrip() {
	c := testutils.CreateTestCreature("1")
	_, err := s.repo.Save(s.ctx, creature.SaveInput{Creature: c})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, creature.GetInput{UserID: "1"})
	s.Require().NoError(err)
	s.Equal(c, out.Creature)
	s.NotSame(c, out.Creature)
}

func (s *InMemoryCreatureTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, creature.GetInput{UserID: "1"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Get(s.ctx, creature.GetInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *InMemoryCreatureTestSuite) TestListSortedByUserID() {
	for _, id := range []string{"c", "a", "b"} {
		_, err := s.repo.Save(s.ctx, creature.SaveInput{Creature: testutils.CreateTestCreature(id)})
		s.Require().NoError(err)
	}

	out, err := s.repo.List(s.ctx, creature.ListInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Creatures, 3)
	s.Equal("a", out.Creatures[0].UserID)
	s.Equal("b", out.Creatures[1].UserID)
	s.Equal("c", out.Creatures[2].UserID)

	flushed, err := s.repo.Flush(s.ctx, creature.FlushInput{})
	s.Require().NoError(err)
	s.False(flushed.Written)
}
