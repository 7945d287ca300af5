package redis

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sculink/internal/types"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisTestSuite struct {
	suite.Suite
	store *SectionStore
}

// Runs against a live server only, e.g. REDIS_HOST=localhost REDIS_PORT=6379.
func TestRedisTestSuite(t *testing.T) {
	if os.Getenv("REDIS_HOST") == "" {
		t.Skip("REDIS_HOST not set")
	}
	suite.Run(t, new(RedisTestSuite))
}

func (s *RedisTestSuite) SetupTest() {
	port := os.Getenv("REDIS_PORT")
	if port == "" {
		port = "6379"
	}
	cli := redis.NewClient(&redis.Options{Addr: fmt.Sprintf("%s:%s", os.Getenv("REDIS_HOST"), port)})
	s.store = NewSectionStore(cli)
	s.Require().NoError(s.store.ClearAll(context.Background()))
}

func (s *RedisTestSuite) TestPutGetListDelete() {
	ctx := context.Background()
	sec := types.Section{Name: "kasse1", Values: map[string]string{"tss_type": "1", "scu_url": "http://scu.local"}}
	s.Require().NoError(s.store.PutSection(ctx, sec))

	got, err := s.store.GetSection(ctx, "kasse1")
	s.Require().NoError(err)
	s.Equal(sec, got)

	all, err := s.store.ListSections(ctx)
	s.Require().NoError(err)
	s.Equal([]types.Section{sec}, all)

	s.Require().NoError(s.store.DeleteSection(ctx, "kasse1"))
	_, err = s.store.GetSection(ctx, "kasse1")
	s.True(errors.Is(err, types.ErrNotFound))
}

func (s *RedisTestSuite) TestRejectsInvalidSection() {
	err := s.store.PutSection(context.Background(), types.Section{Name: "x", Values: map[string]string{"tss_type": "9"}})
	s.Error(err)
}
