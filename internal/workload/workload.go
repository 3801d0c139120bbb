// Package workload generates synthetic key-access sequences for driving
// and comparing cache replacement policies.
package workload

import (
	"math"
	"math/rand"
)

// Generator produces a fixed-length sequence of integer keys in
// [0, KeySpace).
type Generator interface {
	Name() string
	Keys(n int) []int
}

// Loop repeats a fixed-size working set end to end, over and over. This
// is the classic pattern that defeats strict LRU (every key is evicted
// just before it is needed again) but that LIRS handles well once its
// LIR set has absorbed the loop.
type Loop struct {
	KeySpace int
}

func (l Loop) Name() string { return "loop" }

func (l Loop) Keys(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i % l.KeySpace
	}
	return out
}

// Zipf draws keys from a Zipfian distribution, modeling the heavy-tailed
// popularity skew typical of real request traffic.
type Zipf struct {
	KeySpace int
	S        float64 // skew parameter, > 1
	Seed     int64
}

func (z Zipf) Name() string { return "zipf" }

func (z Zipf) Keys(n int) []int {
	r := rand.New(rand.NewSource(z.Seed))
	s := z.S
	if s <= 1 {
		s = 1.1
	}
	zipf := rand.NewZipf(r, s, 1, uint64(z.KeySpace-1))
	out := make([]int, n)
	for i := range out {
		out[i] = int(zipf.Uint64())
	}
	return out
}

// Hotspot spends hotFraction of accesses on a small hot key set and the
// remainder spread uniformly over the full key space (an 80/20-style
// workload).
type Hotspot struct {
	KeySpace    int
	HotKeys     int
	HotFraction float64 // e.g. 0.8
	Seed        int64
}

func (h Hotspot) Name() string { return "hotspot" }

func (h Hotspot) Keys(n int) []int {
	r := rand.New(rand.NewSource(h.Seed))
	hot := h.HotKeys
	if hot <= 0 {
		hot = int(math.Max(1, float64(h.KeySpace)*0.2))
	}
	frac := h.HotFraction
	if frac <= 0 {
		frac = 0.8
	}
	out := make([]int, n)
	for i := range out {
		if r.Float64() < frac {
			out[i] = r.Intn(hot)
		} else {
			out[i] = r.Intn(h.KeySpace)
		}
	}
	return out
}

// Scan walks the key space sequentially from 0; useful as the adversarial
// case for any recency-only policy (a single pass pollutes an LRU cache
// end to end). When n exceeds KeySpace it wraps around to 0, so for such
// n the sequence is the same as Loop's.
type Scan struct {
	KeySpace int
}

func (s Scan) Name() string { return "scan" }

func (s Scan) Keys(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i % s.KeySpace
	}
	return out
}

// ByName resolves one of the built-in generators, or nil if name is
// unrecognised.
func ByName(name string, keySpace int, seed int64) Generator {
	switch name {
	case "loop":
		return Loop{KeySpace: keySpace}
	case "zipf":
		return Zipf{KeySpace: keySpace, S: 1.2, Seed: seed}
	case "hotspot":
		return Hotspot{KeySpace: keySpace, HotFraction: 0.8, Seed: seed}
	case "scan":
		return Scan{KeySpace: keySpace}
	default:
		return nil
	}
}
