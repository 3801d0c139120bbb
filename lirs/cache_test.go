package lirs

import "testing"

func TestNewRejectsInvalidCapacity(t *testing.T) {
	if _, err := New[string, string](0, 0.2); err != ErrInvalidCapacity {
		t.Fatalf("capacity=0: got %v, want ErrInvalidCapacity", err)
	}
	if _, err := New[string, string](-1, 0.2); err != ErrInvalidCapacity {
		t.Fatalf("capacity=-1: got %v, want ErrInvalidCapacity", err)
	}
}

func TestNewRejectsInvalidHIRRatio(t *testing.T) {
	for _, ratio := range []float64{0, 1, -0.1, 1.5} {
		if _, err := New[string, string](5, ratio); err != ErrInvalidHIRRatio {
			t.Fatalf("ratio=%v: got %v, want ErrInvalidHIRRatio", ratio, err)
		}
	}
}

func TestNewCapacitySplit(t *testing.T) {
	c, err := New[int, string](5, 0.2)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := c.HIRCapacity(), 1; got != want {
		t.Errorf("HIRCapacity() = %d, want %d", got, want)
	}
	if got, want := c.LIRCapacity(), 4; got != want {
		t.Errorf("LIRCapacity() = %d, want %d", got, want)
	}
	if got, want := c.Capacity(), 5; got != want {
		t.Errorf("Capacity() = %d, want %d", got, want)
	}
}

func TestGetUnknownKeyIsAbsentAndInert(t *testing.T) {
	c, _ := New[string, string](5, 0.2)
	c.Put("a", "A")
	before := c.Dump()

	if _, ok := c.Get("nope"); ok {
		t.Fatal("expected miss on unknown key")
	}
	if after := c.Dump(); after != before {
		t.Fatalf("Get on unknown key mutated state:\nbefore:\n%s\nafter:\n%s", before, after)
	}
}

func TestPutOverwriteUpdatesValue(t *testing.T) {
	c, _ := New[string, int](5, 0.2)
	c.Put("a", 1)
	c.Put("a", 2)

	v, ok := c.Get("a")
	if !ok || v != 2 {
		t.Fatalf("Get(a) = (%v, %v), want (2, true)", v, ok)
	}
}

func TestSizeNeverExceedsCapacity(t *testing.T) {
	c, _ := New[int, int](4, 0.25)
	for i := 0; i < 100; i++ {
		c.Put(i, i)
		if c.Size() > c.Capacity() {
			t.Fatalf("after Put(%d): Size()=%d exceeds Capacity()=%d", i, c.Size(), c.Capacity())
		}
	}
}

func TestEmpty(t *testing.T) {
	c, _ := New[string, string](3, 0.3)
	if !c.Empty() {
		t.Fatal("fresh cache should be empty")
	}
	c.Put("a", "A")
	if c.Empty() {
		t.Fatal("cache with one entry should not be empty")
	}
}
