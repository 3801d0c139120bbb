package cache

import "context"

// EvictReason explains why an entry left a shard's engine.
type EvictReason int

const (
	// EvictCapacity — the insertion of a new key forced out the current
	// bottom of the HIR queue.
	EvictCapacity EvictReason = iota
)

// Metrics exposes cache-level observability hooks. A NoopMetrics
// implementation is used when Options.Metrics is left nil; see
// package metrics/prom for a Prometheus-backed one.
type Metrics interface {
	Hit()
	Miss()
	Evict(reason EvictReason)
	Size(entries int)
}

// Options configures a sharded Cache. Zero values are mostly safe; New
// applies the defaults documented per field below. Unlike general-purpose
// caches, there is no TTL, cost/weight, or explicit Remove: the underlying
// engine's contract has no notion of expiry or eviction-by-weight, and
// exposing Remove would let callers desynchronize shard state from the
// engine's own S/Q bookkeeping.
type Options[K comparable, V any] struct {
	// Capacity is the total entry budget, split evenly across shards.
	Capacity int

	// HIRRatio is the fraction of each shard's capacity reserved for the
	// HIR queue; forwarded unchanged to every shard's engine.
	HIRRatio float64

	// Shards is the shard count. If 0, it is derived from GOMAXPROCS and
	// rounded up to a power of two.
	Shards int

	// Loader fetches a value on a GetOrLoad miss.
	Loader func(ctx context.Context, k K) (V, error)

	// OnEvict is called synchronously, under the owning shard's lock, for
	// every key forced out by an overflowing Put. Keep it cheap.
	OnEvict func(k K, v V, reason EvictReason)

	// Metrics receives Hit/Miss/Evict/Size signals. Nil uses NoopMetrics.
	Metrics Metrics
}
