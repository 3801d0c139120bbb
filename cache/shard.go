package cache

import (
	"sync"

	"github.com/TechieQuokka/lirs/internal/util"
	"github.com/TechieQuokka/lirs/lirs"
)

// shard owns one independent LIRS engine and the lock that serializes
// access to it. A full mutex is required rather than an RWMutex: Get is
// not read-only here, it reorganises S/Q on a hit.
type shard[K comparable, V any] struct {
	mu     sync.Mutex
	engine *lirs.Cache[K, V]
	opt    Options[K, V]

	_      util.CacheLinePad
	hits   util.PaddedAtomicInt64
	misses util.PaddedAtomicInt64
	evicts util.PaddedAtomicUint64
}

func newShard[K comparable, V any](capacity int, hirRatio float64, opt Options[K, V]) (*shard[K, V], error) {
	engine, err := lirs.New[K, V](capacity, hirRatio)
	if err != nil {
		return nil, err
	}
	s := &shard[K, V]{engine: engine, opt: opt}
	engine.OnEvict(func(k K, v V) {
		s.evicts.Add(1)
		s.opt.Metrics.Evict(EvictCapacity)
		if cb := s.opt.OnEvict; cb != nil {
			cb(k, v, EvictCapacity)
		}
	})
	return s, nil
}

func (s *shard[K, V]) Get(k K) (V, bool) {
	s.mu.Lock()
	v, ok := s.engine.Get(k)
	n := s.engine.Size()
	s.mu.Unlock()

	if ok {
		s.hits.Add(1)
		s.opt.Metrics.Hit()
	} else {
		s.misses.Add(1)
		s.opt.Metrics.Miss()
	}
	s.opt.Metrics.Size(n)
	return v, ok
}

func (s *shard[K, V]) Put(k K, v V) {
	s.mu.Lock()
	s.engine.Put(k, v)
	n := s.engine.Size()
	s.mu.Unlock()
	s.opt.Metrics.Size(n)
}

func (s *shard[K, V]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Size()
}
