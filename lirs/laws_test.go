package lirs

import (
	"fmt"
	"testing"
)

// L1: get on a never-inserted key returns absent and leaves everything
// byte-identical.
func TestLawL1NeverInsertedKeyIsInert(t *testing.T) {
	c, _ := New[string, string](5, 0.2)
	for i := 0; i < 4; i++ {
		c.Put(fmt.Sprintf("k%d", i), fmt.Sprintf("v%d", i))
	}
	before := c.Dump()

	if _, ok := c.Get("never-seen"); ok {
		t.Fatal("expected miss")
	}
	if after := c.Dump(); after != before {
		t.Fatalf("state changed on miss:\nbefore:\n%s\nafter:\n%s", before, after)
	}
}

// L2: get on a ghost returns absent and does not reorder S or Q.
func TestLawL2GhostGetDoesNotReorder(t *testing.T) {
	c, _ := New[int, string](5, 0.2)
	for i := 1; i <= 6; i++ {
		c.Put(i, fmt.Sprintf("v%d", i))
	}
	// key 5 is now a ghost (the HIR victim evicted by Put(6)); find
	// whichever key became the first ghost by scanning S.
	var ghostKey int
	found := false
	for _, se := range c.Stack() {
		if se.Class == ClassHIRGhost {
			ghostKey = se.Key
			found = true
			break
		}
	}
	if !found {
		t.Fatal("expected at least one ghost entry after overflowing warm-up")
	}

	before := c.Dump()
	if _, ok := c.Get(ghostKey); ok {
		t.Fatalf("ghost key %v should not be resident", ghostKey)
	}
	if after := c.Dump(); after != before {
		t.Fatalf("ghost Get reordered state:\nbefore:\n%s\nafter:\n%s", before, after)
	}
}

// L3: two successive Put(k, v1) then Put(k, v2) with no intervening
// operations yield the same final value and the same S/Q structure as a
// single Put(k, v2) from the same starting state.
func TestLawL3SuccessivePutsCollapse(t *testing.T) {
	build := func() *Cache[string, string] {
		c, _ := New[string, string](5, 0.2)
		for i := 0; i < 4; i++ {
			c.Put(fmt.Sprintf("k%d", i), fmt.Sprintf("v%d", i))
		}
		return c
	}

	double := build()
	double.Put("k0", "v1")
	double.Put("k0", "v2")

	single := build()
	single.Put("k0", "v2")

	if got, ok := double.Get("k0"); !ok || got != "v2" {
		t.Fatalf("double Put: Get(k0) = (%v, %v), want (v2, true)", got, ok)
	}
	if doubleDump, singleDump := double.Dump(), single.Dump(); doubleDump != singleDump {
		t.Fatalf("double-Put structure differs from single-Put:\ndouble:\n%s\nsingle:\n%s", doubleDump, singleDump)
	}
}

// L4: inserting a completely new key when the cache is full evicts
// exactly one resident key, the one at the bottom of Q immediately
// before the insertion.
func TestLawL4InsertionEvictsBottomOfQ(t *testing.T) {
	c, _ := New[int, string](5, 0.2)
	for i := 1; i <= 5; i++ {
		c.Put(i, fmt.Sprintf("v%d", i))
	}
	// Capacity 5, hirRatio 0.2 -> lirCapacity=4, hirCapacity=1. After
	// Put(1..5): keys 1-4 are LIR, 5 is the sole HIR resident, so Q = [5].
	queueBefore := c.Queue()
	if len(queueBefore) == 0 {
		t.Fatal("expected a non-empty Q before the overflowing insert")
	}
	victim := queueBefore[len(queueBefore)-1] // bottom of Q

	beforeResident := make(map[int]bool)
	for _, re := range c.Resident() {
		beforeResident[re.Key] = true
	}

	c.Put(6, "v6")

	if _, ok := c.Get(victim); ok {
		t.Fatalf("expected victim %v to be evicted", victim)
	}

	afterResident := make(map[int]bool)
	for _, re := range c.Resident() {
		afterResident[re.Key] = true
	}

	evicted := 0
	for k := range beforeResident {
		if !afterResident[k] {
			evicted++
			if k != victim {
				t.Fatalf("evicted key %v, expected victim %v", k, victim)
			}
		}
	}
	if evicted != 1 {
		t.Fatalf("expected exactly 1 eviction, got %d", evicted)
	}
}

// Property-based sweep: run a pseudo-random mixed workload and check
// P1-P7 after every single operation.
func TestInvariantsHoldUnderMixedWorkload(t *testing.T) {
	c, _ := New[int, int](7, 0.3)
	seed := 1
	next := func() int {
		seed = (seed*1103515245 + 12345) & 0x7fffffff
		return seed
	}

	for i := 0; i < 5000; i++ {
		key := next() % 20
		if next()%3 == 0 {
			c.Put(key, key*10)
		} else {
			c.Get(key)
		}
		checkInvariants(t, c)
	}
}
