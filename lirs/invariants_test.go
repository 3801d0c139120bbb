package lirs

import "testing"

// checkInvariants verifies P1-P7 from spec.md §8 against a cache's
// current internal state. It is called after every operation in the
// property-based test in laws_test.go.
func checkInvariants[K comparable, V any](t *testing.T, c *Cache[K, V]) {
	t.Helper()

	// P1: size() <= capacity().
	if c.Size() > c.Capacity() {
		t.Fatalf("P1 violated: size=%d capacity=%d", c.Size(), c.Capacity())
	}

	// P2: lir_count <= lir_capacity.
	if c.lirCount > c.lirCapacity {
		t.Fatalf("P2 violated: lirCount=%d lirCapacity=%d", c.lirCount, c.lirCapacity)
	}

	// P3: bottom of S (if any) is LIR.
	if back := c.stackS.Back(); back != nil {
		e := back.Value.(*entry[K, V])
		if !e.isLIR {
			t.Fatalf("P3 violated: bottom of S (%v) is not LIR", e.key)
		}
	}

	// P4/P5/P6/P7 over the entry table.
	for k, e := range c.items {
		if k != e.key {
			t.Fatalf("entry table key mismatch: map key %v, entry key %v", k, e.key)
		}

		inS := e.stackElem != nil
		inQ := e.queueElem != nil

		if e.isLIR {
			// P4: every LIR key is in S and not in Q.
			if !inS || inQ {
				t.Fatalf("P4 violated for %v: isLIR=%v inS=%v inQ=%v", k, e.isLIR, inS, inQ)
			}
		}

		if inQ {
			// P5: every key in Q is resident and HIR.
			if !e.isResident || e.isLIR {
				t.Fatalf("P5 violated for %v: isResident=%v isLIR=%v", k, e.isResident, e.isLIR)
			}
		}

		if !e.isResident {
			// P6: every non-resident key is in S and not in Q.
			if !inS || inQ {
				t.Fatalf("P6 violated for %v: inS=%v inQ=%v", k, inS, inQ)
			}
		}

		// P7: every key in the entry table is in S or Q (or both).
		if !inS && !inQ {
			t.Fatalf("P7 violated for %v: untracked in both S and Q", k)
		}
	}
}
