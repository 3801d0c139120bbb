package cache

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync/atomic"

	"github.com/TechieQuokka/lirs/internal/util"
	"golang.org/x/sync/singleflight"
)

// ErrNoLoader is returned by GetOrLoad when no Loader was configured.
var ErrNoLoader = errors.New("cache: no Loader provided")

// ErrInvalidCapacity mirrors lirs.ErrInvalidCapacity for a non-positive
// total Options.Capacity, surfaced before any shard is constructed.
var ErrInvalidCapacity = errors.New("cache: capacity must be a positive integer")

type cache[K comparable, V any] struct {
	shards []*shard[K, V]
	opt    Options[K, V]
	sf     singleflight.Group
	closed atomic.Bool
}

// New constructs a sharded Cache from opt. Shards default to
// nextPow2(2*GOMAXPROCS); capacity is split evenly across shards (the
// last shard absorbs any remainder), and HIRRatio is forwarded unchanged
// to every shard's engine. New returns an error instead of panicking,
// following the same validation-over-panic convention as the engine.
func New[K comparable, V any](opt Options[K, V]) (Cache[K, V], error) {
	if opt.Capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if opt.Metrics == nil {
		opt.Metrics = NoopMetrics{}
	}

	shardCount := opt.Shards
	if shardCount <= 0 {
		shardCount = int(util.NextPow2(uint64(2 * runtime.GOMAXPROCS(0))))
	} else {
		shardCount = int(util.NextPow2(uint64(shardCount)))
	}
	if shardCount > opt.Capacity {
		shardCount = 1
	}

	perShard := opt.Capacity / shardCount
	remainder := opt.Capacity % shardCount

	shards := make([]*shard[K, V], shardCount)
	for i := 0; i < shardCount; i++ {
		shardCap := perShard
		if i == shardCount-1 {
			shardCap += remainder
		}
		s, err := newShard[K, V](shardCap, opt.HIRRatio, opt)
		if err != nil {
			return nil, err
		}
		shards[i] = s
	}

	return &cache[K, V]{shards: shards, opt: opt}, nil
}

func (c *cache[K, V]) getShard(k K) *shard[K, V] {
	h := util.HashKey(k)
	idx := util.ShardIndex(h, len(c.shards))
	return c.shards[idx]
}

func (c *cache[K, V]) Get(k K) (V, bool) {
	if c.closed.Load() {
		var zero V
		return zero, false
	}
	return c.getShard(k).Get(k)
}

func (c *cache[K, V]) Put(k K, v V) {
	if c.closed.Load() {
		return
	}
	c.getShard(k).Put(k, v)
}

func (c *cache[K, V]) Len() int {
	total := 0
	for _, s := range c.shards {
		total += s.Len()
	}
	return total
}

func (c *cache[K, V]) Close() error {
	c.closed.Store(true)
	return nil
}

// GetOrLoad returns the value for k, loading it via Options.Loader on a
// miss. Concurrent loads for the same key are coalesced so only one
// Loader call is in flight at a time for that key; singleflight.Group
// keys on a string, so k's %v form stands in for K itself.
func (c *cache[K, V]) GetOrLoad(ctx context.Context, k K) (V, error) {
	if v, ok := c.Get(k); ok {
		return v, nil
	}
	if c.opt.Loader == nil {
		var zero V
		return zero, ErrNoLoader
	}

	sfKey := fmt.Sprintf("%v", k)
	result, err, _ := c.sf.Do(sfKey, func() (interface{}, error) {
		if v, ok := c.Get(k); ok {
			return v, nil
		}
		v, err := c.opt.Loader(ctx, k)
		if err != nil {
			return v, err
		}
		c.Put(k, v)
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return result.(V), nil
}
