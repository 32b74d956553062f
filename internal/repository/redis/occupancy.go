package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	red "github.com/redis/go-redis/v9"

	"github.com/Gustavo-Gaia/sistema-redec10/internal/core/domain"
	"github.com/Gustavo-Gaia/sistema-redec10/internal/core/port"
)

const defaultOccupancyPrefix = "roster:occupancy"

// OccupancyCache caches current role occupants for low-latency dashboard
// reads. Entries are invalidated on every ledger mutation.
type OccupancyCache struct {
	client *red.Client
	prefix string
}

// NewOccupancyCache constructs an occupancy cache helper.
func NewOccupancyCache(client *red.Client, keyPrefix string) *OccupancyCache {
	prefix := strings.TrimSpace(keyPrefix)
	if prefix == "" {
		prefix = defaultOccupancyPrefix
	}

	return &OccupancyCache{client: client, prefix: prefix}
}

// Get fetches cached occupants, reporting a miss instead of an error when
// the role has no cached entry.
func (c *OccupancyCache) Get(ctx context.Context, role domain.Role) ([]domain.RoleAssignment, bool, error) {
	value, err := c.client.Get(ctx, c.key(role)).Result()
	if err != nil {
		if errors.Is(err, red.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis get occupancy: %w", err)
	}

	var entries []domain.RoleAssignment
	if err := json.Unmarshal([]byte(value), &entries); err != nil {
		return nil, false, fmt.Errorf("decode cached occupancy: %w", err)
	}

	return entries, true, nil
}

// Set stores the occupants for a role with the provided TTL.
func (c *OccupancyCache) Set(ctx context.Context, role domain.Role, entries []domain.RoleAssignment, ttl time.Duration) error {
	if ttl <= 0 {
		return fmt.Errorf("ttl must be positive")
	}

	encoded, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode occupancy: %w", err)
	}

	if err := c.client.Set(ctx, c.key(role), encoded, ttl).Err(); err != nil {
		return fmt.Errorf("redis set occupancy: %w", err)
	}
	return nil
}

// Invalidate drops the cached occupants for a role.
func (c *OccupancyCache) Invalidate(ctx context.Context, role domain.Role) error {
	if err := c.client.Del(ctx, c.key(role)).Err(); err != nil {
		return fmt.Errorf("redis delete occupancy: %w", err)
	}
	return nil
}

func (c *OccupancyCache) key(role domain.Role) string {
	return fmt.Sprintf("%s:%s", c.prefix, role)
}

var _ port.OccupancyCache = (*OccupancyCache)(nil)
