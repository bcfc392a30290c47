package redis

import (
	"context"
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mauv0809/rollforteams/internal/player"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) TestListAllEmpty() {
	players, err := s.storage.ListAll(s.ctx)
	s.Require().NoError(err)
	s.NotNil(players)
	s.Empty(players)
}

func (s *StorageSuite) TestAddAndListAll() {
	p, err := s.storage.Add(s.ctx, "Alice")
	s.Require().NoError(err)
	s.NotEmpty(p.ID)
	s.True(s.mini.Exists(playerKey(p.ID)))

	players, err := s.storage.ListAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(players, 1)
	s.Equal(p.ID, players[0].ID)
	s.Equal("Alice", players[0].Name)
	s.True(p.CreatedAt.Equal(players[0].CreatedAt))
}

func (s *StorageSuite) TestListAllKeepsInsertionOrder() {
	var want []string
	for i := 0; i < 30; i++ {
		p, err := s.storage.Add(s.ctx, fmt.Sprintf("Player %02d", i))
		s.Require().NoError(err)
		want = append(want, p.ID)
	}

	players, err := s.storage.ListAll(s.ctx)
	s.Require().NoError(err)

	got := make([]string, len(players))
	for i, p := range players {
		got[i] = p.ID
	}
	s.Equal(want, got)
}

func (s *StorageSuite) TestListAllKeepsInsertionOrderAfterRemove() {
	a, err := s.storage.Add(s.ctx, "Alice")
	s.Require().NoError(err)
	b, err := s.storage.Add(s.ctx, "Bob")
	s.Require().NoError(err)
	s.Require().NoError(s.storage.Remove(s.ctx, a.ID))
	c, err := s.storage.Add(s.ctx, "Carol")
	s.Require().NoError(err)

	players, err := s.storage.ListAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(players, 2)
	s.Equal(b.ID, players[0].ID)
	s.Equal(c.ID, players[1].ID)
}

func (s *StorageSuite) TestListAllSkipsDanglingIndexEntries() {
	p, err := s.storage.Add(s.ctx, "Alice")
	s.Require().NoError(err)
	s.mini.Del(playerKey(p.ID))

	players, err := s.storage.ListAll(s.ctx)
	s.Require().NoError(err)
	s.Empty(players)
}

func (s *StorageSuite) TestAddRejectsEmptyName() {
	_, err := s.storage.Add(s.ctx, " ")
	s.ErrorIs(err, player.ErrInvalidName)
}

func (s *StorageSuite) TestRemove() {
	p, err := s.storage.Add(s.ctx, "Alice")
	s.Require().NoError(err)

	s.Require().NoError(s.storage.Remove(s.ctx, p.ID))
	s.False(s.mini.Exists(playerKey(p.ID)))

	err = s.storage.Remove(s.ctx, p.ID)
	s.ErrorIs(err, player.ErrPlayerNotFound)
}

func (s *StorageSuite) TestClear() {
	_, err := s.storage.Add(s.ctx, "Alice")
	s.Require().NoError(err)
	_, err = s.storage.Add(s.ctx, "Bob")
	s.Require().NoError(err)

	s.Require().NoError(s.storage.Clear(s.ctx))

	players, err := s.storage.ListAll(s.ctx)
	s.Require().NoError(err)
	s.Empty(players)
	s.False(s.mini.Exists(playersIndexKey()))
}

func (s *StorageSuite) TestStoreUnavailable() {
	s.mini.Close()

	_, err := s.storage.ListAll(s.ctx)
	s.Error(err)
	s.Error(s.storage.Ping(s.ctx))
}
