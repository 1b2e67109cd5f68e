package nutrition

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"

	"github.com/fitme-app/fitme/internal/telemetry/metrics"
	"github.com/fitme-app/fitme/internal/telemetry/tracing"
)

const megabyte = 1024 * 1024

//go:generate mockgen -source=$GOFILE -destination=cached_targets_mocks_test.go -package=nutrition_test

type targetsStore interface {
	Targets(ctx context.Context, userID string) (*Targets, error)
	UpsertTargets(ctx context.Context, t Targets) (*Targets, error)
}

// CachedTargets keeps recently read user targets in memory.
// Only found targets are cached, a missing row is always re-read from the store.
type CachedTargets struct {
	store          targetsStore
	cache          *freecache.Cache
	expireSeconds  int
	metricsManager *metrics.Manager

	// generation is bumped on every upsert. A read that started before an
	// upsert must not put what it read back into the cache.
	mu         sync.Mutex
	generation uint64
}

func NewCachedTargets(
	store targetsStore,
	sizeMB int,
	ttl time.Duration,
	metricsManager *metrics.Manager,
) *CachedTargets {
	return &CachedTargets{
		store:          store,
		cache:          freecache.NewCache(sizeMB * megabyte),
		expireSeconds:  int(ttl.Seconds()),
		metricsManager: metricsManager,
	}
}

func (c *CachedTargets) Targets(ctx context.Context, userID string) (*Targets, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "cache.nutrition.targets.get")
	defer span.End()

	if cached, err := c.cache.Get([]byte(userID)); err == nil {
		t := &Targets{}
		if err := json.Unmarshal(cached, t); err == nil {
			c.countLookup("hit")
			return t, nil
		} else {
			log.Errorf("unmarshal cached targets for %s: %s", userID, err)
		}
	}
	c.countLookup("miss")

	c.mu.Lock()
	readGeneration := c.generation
	c.mu.Unlock()

	t, err := c.store.Targets(ctx, userID)
	if err != nil {
		return nil, err
	}

	tBytes, err := json.Marshal(t)
	if err != nil {
		log.Errorf("marshal targets for cache: %s", err)
		return t, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generation != readGeneration {
		return t, nil
	}
	if err := c.cache.Set([]byte(userID), tBytes, c.expireSeconds); err != nil {
		log.Errorf("set targets cache for %s: %s", userID, err)
	}

	return t, nil
}

func (c *CachedTargets) UpsertTargets(ctx context.Context, t Targets) (*Targets, error) {
	updated, err := c.store.UpsertTargets(ctx, t)

	c.mu.Lock()
	c.generation++
	c.cache.Del([]byte(t.UserID))
	c.mu.Unlock()

	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (c *CachedTargets) countLookup(result string) {
	if c.metricsManager != nil {
		c.metricsManager.CounterTargetsCache.WithLabelValues(result).Inc()
	}
}

// Store is the nutrition repo with target reads and writes going through the cache.
type Store struct {
	*Repo
	targets *CachedTargets
}

func NewStore(repo *Repo, cached *CachedTargets) *Store {
	return &Store{
		Repo:    repo,
		targets: cached,
	}
}

func (s *Store) Targets(ctx context.Context, userID string) (*Targets, error) {
	return s.targets.Targets(ctx, userID)
}

func (s *Store) UpsertTargets(ctx context.Context, t Targets) (*Targets, error) {
	return s.targets.UpsertTargets(ctx, t)
}
