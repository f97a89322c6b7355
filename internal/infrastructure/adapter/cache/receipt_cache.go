package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/receipt-analyzer/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/receipt-analyzer/internal/domain/port/core"
	"github.com/amirhossein-jamali/receipt-analyzer/internal/domain/port/persistence"
)

// DefaultTTL applies when the configured TTL is not positive
const DefaultTTL = time.Minute

// cachedReceipt is the JSON shape stored in Redis
type cachedReceipt struct {
	ID           uint64           `json:"id"`
	MerchantName *string          `json:"merchant_name,omitempty"`
	Amount       *decimal.Decimal `json:"amount,omitempty"`
	Date         *time.Time       `json:"date,omitempty"`
	Category     *string          `json:"category,omitempty"`
	ImageURL     *string          `json:"image_url,omitempty"`
	RawOCRText   *string          `json:"raw_ocr_text,omitempty"`
	Status       string           `json:"status"`
	CreatedAt    time.Time        `json:"created_at"`
}

// RedisReceiptCache stores the receipt list under a key suffixed with the current
// generation. Invalidate increments the generation counter, which orphans any list
// written for an older generation until its TTL removes it.
type RedisReceiptCache struct {
	client        redis.Cmdable
	generationKey string
	listKeyPrefix string
	ttl           time.Duration
	logger        coreport.Logger
}

// NewRedisReceiptCache creates a receipt cache keeping its counter in "<prefix>:receipts:gen"
// and its lists in "<prefix>:receipts:list:<generation>"
func NewRedisReceiptCache(client redis.Cmdable, prefix string, ttl time.Duration, logger coreport.Logger) persistence.ReceiptCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	base := "receipts"
	if prefix != "" {
		base = prefix + ":" + base
	}

	return &RedisReceiptCache{
		client:        client,
		generationKey: base + ":gen",
		listKeyPrefix: base + ":list:",
		ttl:           ttl,
		logger:        logger.With(map[string]any{"component": "receipt_cache"}),
	}
}

func (c *RedisReceiptCache) listKey(generation uint64) string {
	return c.listKeyPrefix + strconv.FormatUint(generation, 10)
}

// generation reads the counter; a missing counter is generation 0
func (c *RedisReceiptCache) generation(ctx context.Context) (uint64, error) {
	generation, err := c.client.Get(ctx, c.generationKey).Uint64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get %s: %w", c.generationKey, err)
	}
	return generation, nil
}

// GetList returns the list cached for the current generation; a missing key is a miss, not an error
func (c *RedisReceiptCache) GetList(ctx context.Context) ([]*entity.Receipt, uint64, bool, error) {
	generation, err := c.generation(ctx)
	if err != nil {
		return nil, 0, false, err
	}

	key := c.listKey(generation)
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		c.logger.Debug("Receipt list cache miss", map[string]any{"generation": generation})
		return nil, generation, false, nil
	}
	if err != nil {
		return nil, 0, false, fmt.Errorf("get %s: %w", key, err)
	}

	var cached []cachedReceipt
	if err := json.Unmarshal(raw, &cached); err != nil {
		return nil, 0, false, fmt.Errorf("decode %s: %w", key, err)
	}

	receipts, err := fromCached(cached)
	if err != nil {
		return nil, 0, false, err
	}

	c.logger.Debug("Receipt list cache hit", map[string]any{
		"count":      len(receipts),
		"generation": generation,
	})
	return receipts, generation, true, nil
}

// SetList stores the list for the given generation
func (c *RedisReceiptCache) SetList(ctx context.Context, generation uint64, receipts []*entity.Receipt) error {
	key := c.listKey(generation)
	raw, err := json.Marshal(toCached(receipts))
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// Invalidate moves the cache to the next generation
func (c *RedisReceiptCache) Invalidate(ctx context.Context) error {
	generation, err := c.client.Incr(ctx, c.generationKey).Result()
	if err != nil {
		return fmt.Errorf("incr %s: %w", c.generationKey, err)
	}

	c.logger.Debug("Receipt list cache invalidated", map[string]any{"generation": generation})
	return nil
}

func toCached(receipts []*entity.Receipt) []cachedReceipt {
	cached := make([]cachedReceipt, 0, len(receipts))
	for _, r := range receipts {
		cached = append(cached, cachedReceipt{
			ID:           r.ID,
			MerchantName: r.MerchantName,
			Amount:       r.Amount,
			Date:         r.Date,
			Category:     r.Category,
			ImageURL:     r.ImageURL,
			RawOCRText:   r.RawOCRText,
			Status:       r.Status.String(),
			CreatedAt:    r.CreatedAt,
		})
	}
	return cached
}

func fromCached(cached []cachedReceipt) ([]*entity.Receipt, error) {
	receipts := make([]*entity.Receipt, 0, len(cached))
	for _, c := range cached {
		status, err := entity.ParseReceiptStatus(c.Status)
		if err != nil {
			return nil, fmt.Errorf("cached receipt %d: %w", c.ID, err)
		}

		receipt := &entity.Receipt{
			ID:           c.ID,
			MerchantName: c.MerchantName,
			Amount:       c.Amount,
			Category:     c.Category,
			ImageURL:     c.ImageURL,
			RawOCRText:   c.RawOCRText,
			Status:       status,
			CreatedAt:    c.CreatedAt,
		}
		if c.Date != nil {
			receipt.SetDate(*c.Date)
		}
		receipts = append(receipts, receipt)
	}
	return receipts, nil
}
