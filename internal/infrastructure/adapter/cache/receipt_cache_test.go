package cache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/receipt-analyzer/internal/domain/entity"
	errs "github.com/amirhossein-jamali/receipt-analyzer/internal/domain/error"
	"github.com/amirhossein-jamali/receipt-analyzer/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/receipt-analyzer/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/receipt-analyzer/internal/infrastructure/config"
)

func TestCachedReceiptRoundTrip(t *testing.T) {
	amount := decimal.RequireFromString("25.99")
	created := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	original := []*entity.Receipt{
		{
			ID:           1,
			MerchantName: entity.StringPtr("Test Store"),
			Amount:       &amount,
			Category:     entity.StringPtr("Food & Dining"),
			Status:       entity.ReceiptStatusCompleted,
			CreatedAt:    created,
		},
		{ID: 2, Status: entity.ReceiptStatusProcessing, CreatedAt: created},
	}
	original[1].SetDate(time.Date(2024, 5, 30, 18, 45, 0, 0, time.UTC))

	raw, err := json.Marshal(toCached(original))
	require.NoError(t, err)

	var decoded []cachedReceipt
	require.NoError(t, json.Unmarshal(raw, &decoded))

	restored, err := fromCached(decoded)
	require.NoError(t, err)
	require.Len(t, restored, 2)

	assert.Equal(t, "25.99", *restored[0].FormattedAmount())
	assert.Equal(t, "Test Store", *restored[0].MerchantName)
	assert.Nil(t, restored[0].Date)
	assert.Equal(t, entity.ReceiptStatusCompleted, restored[0].Status)
	assert.True(t, created.Equal(restored[0].CreatedAt))

	assert.Nil(t, restored[1].Amount)
	assert.Equal(t, "2024-05-30", *restored[1].FormattedDate())
}

func TestFromCachedRejectsUnknownStatus(t *testing.T) {
	_, err := fromCached([]cachedReceipt{{ID: 1, Status: "archived"}})

	assert.ErrorIs(t, err, errs.ErrInvalidStatus)
}

func TestRedisReceiptCache_Keys(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	t.Cleanup(func() { _ = client.Close() })

	withPrefix := NewRedisReceiptCache(client, "ra", 0, logger.NewNoopLogger()).(*RedisReceiptCache)
	assert.Equal(t, "ra:receipts:gen", withPrefix.generationKey)
	assert.Equal(t, "ra:receipts:list:7", withPrefix.listKey(7))
	assert.Equal(t, DefaultTTL, withPrefix.ttl)

	bare := NewRedisReceiptCache(client, "", 5*time.Second, logger.NewNoopLogger()).(*RedisReceiptCache)
	assert.Equal(t, "receipts:gen", bare.generationKey)
	assert.Equal(t, "receipts:list:0", bare.listKey(0))
	assert.Equal(t, 5*time.Second, bare.ttl)
}

func newMiniredisCache(t *testing.T, ttl time.Duration) (*miniredis.Miniredis, persistence.ReceiptCache) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return server, NewRedisReceiptCache(client, "ra", ttl, logger.NewNoopLogger())
}

func TestRedisReceiptCache_SetThenGet(t *testing.T) {
	server, c := newMiniredisCache(t, time.Minute)
	ctx := context.Background()

	receipts, generation, found, err := c.GetList(ctx)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, receipts)
	assert.Equal(t, uint64(0), generation)

	amount := decimal.RequireFromString("25.99")
	stored := []*entity.Receipt{
		{ID: 1, MerchantName: entity.StringPtr("Test Store"), Amount: &amount, Status: entity.ReceiptStatusCompleted},
		{ID: 2, Status: entity.ReceiptStatusProcessing},
	}
	require.NoError(t, c.SetList(ctx, generation, stored))

	assert.True(t, server.Exists("ra:receipts:list:0"))
	assert.Equal(t, time.Minute, server.TTL("ra:receipts:list:0"))

	receipts, generation, found, err = c.GetList(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, uint64(0), generation)
	require.Len(t, receipts, 2)
	assert.Equal(t, "25.99", *receipts[0].FormattedAmount())
	assert.Equal(t, entity.ReceiptStatusProcessing, receipts[1].Status)
}

func TestRedisReceiptCache_InvalidateThenMiss(t *testing.T) {
	server, c := newMiniredisCache(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, c.SetList(ctx, 0, []*entity.Receipt{{ID: 1, Status: entity.ReceiptStatusCompleted}}))
	require.NoError(t, c.Invalidate(ctx))

	receipts, generation, found, err := c.GetList(ctx)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, receipts)
	assert.Equal(t, uint64(1), generation)

	value, err := server.Get("ra:receipts:gen")
	require.NoError(t, err)
	assert.Equal(t, "1", value)
}

func TestRedisReceiptCache_ExpiresAfterTTL(t *testing.T) {
	server, c := newMiniredisCache(t, 30*time.Second)
	ctx := context.Background()

	require.NoError(t, c.SetList(ctx, 0, []*entity.Receipt{{ID: 1, Status: entity.ReceiptStatusCompleted}}))

	server.FastForward(29 * time.Second)
	_, _, found, err := c.GetList(ctx)
	require.NoError(t, err)
	assert.True(t, found)

	server.FastForward(2 * time.Second)
	_, _, found, err = c.GetList(ctx)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisReceiptCache_LateWriteForOldGenerationIsNotServed(t *testing.T) {
	_, c := newMiniredisCache(t, time.Minute)
	ctx := context.Background()

	// a list request misses and reads the database
	_, readGeneration, found, err := c.GetList(ctx)
	require.NoError(t, err)
	require.False(t, found)

	// an insert commits and invalidates before the list request writes back
	require.NoError(t, c.Invalidate(ctx))
	require.NoError(t, c.SetList(ctx, readGeneration, []*entity.Receipt{}))

	receipts, generation, found, err := c.GetList(ctx)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, receipts)
	assert.Equal(t, readGeneration+1, generation)
}

func TestRedisReceiptCache_CorruptValue(t *testing.T) {
	server, c := newMiniredisCache(t, time.Minute)
	require.NoError(t, server.Set("ra:receipts:list:0", "not json"))

	_, _, found, err := c.GetList(context.Background())

	assert.Error(t, err)
	assert.False(t, found)
}

func TestRedisReceiptCache_UnreachableServer(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	c := NewRedisReceiptCache(client, "ra", time.Minute, logger.NewNoopLogger())
	ctx := context.Background()

	_, _, found, err := c.GetList(ctx)
	assert.Error(t, err)
	assert.False(t, found)
	assert.Error(t, c.SetList(ctx, 0, nil))
	assert.Error(t, c.Invalidate(ctx))
}

func TestNewRedisClient_PingFailure(t *testing.T) {
	_, err := NewRedisClient(context.Background(), config.CacheConfig{Addr: "127.0.0.1:1"})

	assert.Error(t, err)
}

func TestNewRedisClient(t *testing.T) {
	server := miniredis.RunT(t)

	client, err := NewRedisClient(context.Background(), config.CacheConfig{Addr: server.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	assert.NoError(t, client.Ping(context.Background()).Err())
}

func TestNoopReceiptCache(t *testing.T) {
	c := NewNoopReceiptCache()
	ctx := context.Background()

	receipts, generation, found, err := c.GetList(ctx)
	assert.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, receipts)
	assert.Equal(t, uint64(0), generation)
	assert.NoError(t, c.SetList(ctx, generation, []*entity.Receipt{{ID: 1}}))
	assert.NoError(t, c.Invalidate(ctx))
}
