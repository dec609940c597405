package adapter

import (
	"context"
	"errors"
	"testing"
	"time"

	"ai-assessment/internal/domain"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestRedisCacheAdapter_Get(t *testing.T) {
	db, mock := redismock.NewClientMock()
	adapter := NewRedisCacheAdapter(db)
	ctx := context.Background()

	key := "assessment:stats:cohort:default"
	expectedValue := `{"cohort":"default","total_count":1}`

	t.Run("Success", func(t *testing.T) {
		mock.ExpectGet(key).SetVal(expectedValue)
		val, err := adapter.Get(ctx, key)
		assert.NoError(t, err)
		assert.Equal(t, expectedValue, val)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("CacheMiss", func(t *testing.T) {
		mock.ExpectGet(key).SetErr(redis.Nil)
		val, err := adapter.Get(ctx, key)
		assert.ErrorIs(t, err, domain.ErrCacheMiss)
		assert.Empty(t, val)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RedisError", func(t *testing.T) {
		redisErr := errors.New("connection reset")
		mock.ExpectGet(key).SetErr(redisErr)
		val, err := adapter.Get(ctx, key)
		assert.ErrorIs(t, err, redisErr)
		assert.Empty(t, val)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisCacheAdapter_SetAndDelete(t *testing.T) {
	db, mock := redismock.NewClientMock()
	adapter := NewRedisCacheAdapter(db)
	ctx := context.Background()

	key := "assessment:stats:cohort:class-a"
	ttl := 30 * time.Second

	mock.ExpectSet(key, "payload", ttl).SetVal("OK")
	assert.NoError(t, adapter.Set(ctx, key, "payload", ttl))

	mock.ExpectDel(key).SetVal(1)
	assert.NoError(t, adapter.Delete(ctx, key))

	// deleting an absent key is not an error
	mock.ExpectDel(key).SetVal(0)
	assert.NoError(t, adapter.Delete(ctx, key))

	redisErr := errors.New("READONLY")
	mock.ExpectSet(key, "payload", ttl).SetErr(redisErr)
	assert.ErrorIs(t, adapter.Set(ctx, key, "payload", ttl), redisErr)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCacheAdapter_IncrExpire(t *testing.T) {
	db, mock := redismock.NewClientMock()
	adapter := NewRedisCacheAdapter(db)
	ctx := context.Background()

	key := "assessment:ratelimit:client:10.0.0.1"

	mock.ExpectIncr(key).SetVal(1)
	mock.ExpectExpire(key, time.Minute).SetVal(true)
	mock.ExpectIncr(key).SetVal(2)

	n, err := adapter.Incr(ctx, key)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.NoError(t, adapter.Expire(ctx, key, time.Minute))

	n, err = adapter.Incr(ctx, key)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), n)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCacheAdapter_TTL(t *testing.T) {
	db, mock := redismock.NewClientMock()
	adapter := NewRedisCacheAdapter(db)
	ctx := context.Background()

	key := "assessment:ratelimit:client:10.0.0.1"

	mock.ExpectTTL(key).SetVal(45 * time.Second)
	ttl, err := adapter.TTL(ctx, key)
	assert.NoError(t, err)
	assert.Equal(t, 45*time.Second, ttl)

	// a counter whose EXPIRE was lost
	mock.ExpectTTL(key).SetVal(-1)
	ttl, err = adapter.TTL(ctx, key)
	assert.NoError(t, err)
	assert.Less(t, ttl, time.Duration(0))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCacheAdapter_Ping(t *testing.T) {
	db, mock := redismock.NewClientMock()
	adapter := NewRedisCacheAdapter(db)

	mock.ExpectPing().SetVal("PONG")
	assert.NoError(t, adapter.Ping(context.Background()))

	mock.ExpectPing().SetErr(errors.New("down"))
	assert.Error(t, adapter.Ping(context.Background()))

	assert.NoError(t, mock.ExpectationsWereMet())
}
