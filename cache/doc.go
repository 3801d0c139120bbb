// Package cache provides a sharded, concurrency-safe facade over the
// single-threaded LIRS engine in package lirs.
//
// Design
//
//   - Concurrency: the cache is split into shards, each owning an
//     independent *lirs.Cache and its own mutex. Unlike a plain LRU
//     facade, a shard's lock must be a full Mutex rather than an
//     RWMutex: LIRS reorganises its internal stack and queue on every
//     Get that hits, so a read is not read-only at the engine level.
//
//   - Routing: keys are routed to a shard with xxhash (via
//     internal/util.HashKey) masked against a power-of-two shard count,
//     so routing is a few instructions instead of a division.
//
//   - Capacity: Options.Capacity is split evenly across shards; the
//     last shard absorbs the remainder. Options.HIRRatio is forwarded
//     unchanged to every shard's engine.
//
//   - GetOrLoad: concurrent loads for the same key are coalesced with
//     golang.org/x/sync/singleflight so exactly one Options.Loader call
//     is in flight per key at a time.
//
//   - Metrics: Options.Metrics receives Hit/Miss/Evict/Size signals; the
//     default is NoopMetrics. See package metrics/prom for a
//     Prometheus-backed implementation.
package cache
