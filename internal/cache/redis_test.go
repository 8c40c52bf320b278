package cache

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ravi2k3/E-commerce-assessment/internal/domain"
)

func setupTestRedis(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisCache(client), mr
}

func TestRedisCache_SetGet(t *testing.T) {
	c, _ := setupTestRedis(t)
	ctx := context.Background()

	cart := &domain.Cart{
		UserID: "u1",
		Items: []domain.CartItem{
			{ProductID: 1, Quantity: 2},
			{ProductID: 2, Quantity: 3},
		},
	}
	require.NoError(t, c.Set(ctx, "u1", cart))

	got, err := c.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)
	require.Len(t, got.Items, 2)
	assert.Equal(t, int64(1), got.Items[0].ProductID)
	assert.Equal(t, 2, got.Items[0].Quantity)
}

func TestRedisCache_Get_Miss(t *testing.T) {
	c, _ := setupTestRedis(t)

	got, err := c.Get(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrCacheMiss)
	assert.Nil(t, got)
}

func TestRedisCache_Get_CorruptEntry(t *testing.T) {
	c, mr := setupTestRedis(t)

	require.NoError(t, mr.Set(cacheKey("u1"), "not-json"))

	_, err := c.Get(context.Background(), "u1")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrCacheMiss)
}

func TestRedisCache_Delete(t *testing.T) {
	c, _ := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "u1", &domain.Cart{UserID: "u1"}))
	require.NoError(t, c.Delete(ctx, "u1"))

	_, err := c.Get(ctx, "u1")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestRedisCache_Delete_MissingKeyIsFine(t *testing.T) {
	c, _ := setupTestRedis(t)

	assert.NoError(t, c.Delete(context.Background(), "nobody"))
}

func TestRedisCache_Set_HasTTL(t *testing.T) {
	c, mr := setupTestRedis(t)

	require.NoError(t, c.Set(context.Background(), "u1", &domain.Cart{UserID: "u1"}))

	ttl := mr.TTL(cacheKey("u1"))
	assert.GreaterOrEqual(t, ttl, baseTTL)
	assert.LessOrEqual(t, ttl, baseTTL+ttlJitter)
}

func TestRedisCache_StoresJSON(t *testing.T) {
	c, mr := setupTestRedis(t)

	cart := &domain.Cart{UserID: "u1", Items: []domain.CartItem{{ProductID: 5, Quantity: 1}}}
	require.NoError(t, c.Set(context.Background(), "u1", cart))

	raw, err := mr.Get(cacheKey("u1"))
	require.NoError(t, err)

	var decoded domain.Cart
	require.NoError(t, json.Unmarshal([]byte(raw), &decoded))
	assert.Equal(t, *cart, decoded)
}
