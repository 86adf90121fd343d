package fortunes

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	boterr "github.com/tavernbot/dicebot/internal/errors"
)

type RedisRepoTestSuite struct {
	suite.Suite
	mockClient *redis.Client
	mock       redismock.ClientMock
	repo       Repository
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.mockClient, s.mock = redismock.NewClientMock()
	s.repo = NewRedisRepository(&RedisRepoConfig{
		Client: s.mockClient,
		TTL:    time.Hour,
	})
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) TestSet() {
	ctx := context.Background()
	fortune := &Fortune{
		UserID: "user-1",
		Date:   "2026-08-24",
		Value:  87,
	}

	expectedData, err := json.Marshal(fortune)
	s.Require().NoError(err)

	// Happy path
	s.mock.ExpectSet("fortune:user-1:2026-08-24", string(expectedData), time.Hour).SetVal("OK")

	err = s.repo.Set(ctx, fortune)
	s.NoError(err)

	// Dependency error
	s.mock.ExpectSet("fortune:user-1:2026-08-24", string(expectedData), time.Hour).SetErr(errors.New("redis error"))

	err = s.repo.Set(ctx, fortune)
	s.Error(err)

	// Input validation
	s.Error(s.repo.Set(ctx, nil))
	s.Error(s.repo.Set(ctx, &Fortune{Date: "2026-08-24", Value: 1}))
	s.Error(s.repo.Set(ctx, &Fortune{UserID: "user-1", Value: 1}))
}

func (s *RedisRepoTestSuite) TestGet() {
	ctx := context.Background()
	fortune := Fortune{
		UserID: "user-1",
		Date:   "2026-08-24",
		Value:  42,
	}
	jsonData, err := json.Marshal(fortune)
	s.Require().NoError(err)

	// Happy path
	s.mock.ExpectGet("fortune:user-1:2026-08-24").SetVal(string(jsonData))

	got, err := s.repo.Get(ctx, "user-1", "2026-08-24")
	s.NoError(err)
	s.Equal(&fortune, got)

	// Missing record maps to a not found error
	s.mock.ExpectGet("fortune:user-1:2026-08-25").RedisNil()

	_, err = s.repo.Get(ctx, "user-1", "2026-08-25")
	s.Error(err)
	s.True(boterr.IsNotFound(err))

	// Dependency error
	s.mock.ExpectGet("fortune:user-1:2026-08-24").SetErr(errors.New("redis error"))

	_, err = s.repo.Get(ctx, "user-1", "2026-08-24")
	s.Error(err)
	s.False(boterr.IsNotFound(err))
}

func TestInMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRepository()

	fortune := &Fortune{UserID: "user-1", Date: "2026-08-24", Value: 100}

	require.NoError(t, repo.Set(ctx, fortune))

	got, err := repo.Get(ctx, "user-1", "2026-08-24")
	require.NoError(t, err)
	assert.Equal(t, 100, got.Value)

	// Another day is a separate record
	_, err = repo.Get(ctx, "user-1", "2026-08-25")
	assert.True(t, boterr.IsNotFound(err))

	// Stored records are isolated from caller mutation
	fortune.Value = 1
	got, err = repo.Get(ctx, "user-1", "2026-08-24")
	require.NoError(t, err)
	assert.Equal(t, 100, got.Value)
}
