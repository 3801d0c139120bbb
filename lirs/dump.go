package lirs

import (
	"fmt"
	"sort"
	"strings"
)

// Dump renders a textual snapshot of the cache: a header, a capacity
// block, the S listing, the Q listing, and the resident-values listing.
// Formatting is not part of the core contract (§6) — Dump exists purely
// as a debugging aid for external collaborators.
func (c *Cache[K, V]) Dump() string {
	var b strings.Builder

	fmt.Fprintln(&b, "=== LIRS cache dump ===")
	fmt.Fprintf(&b, "capacity=%d lir=%d hir=%d lir_count=%d cache_size=%d\n",
		c.capacity, c.lirCapacity, c.hirCapacity, c.lirCount, c.residentCount)

	fmt.Fprintln(&b, "--- stack S (top to bottom) ---")
	stack := c.Stack()
	if len(stack) == 0 {
		fmt.Fprintln(&b, "(empty)")
	} else {
		for _, se := range stack {
			fmt.Fprintf(&b, "%v [%s]\n", se.Key, se.Class)
		}
	}

	fmt.Fprintln(&b, "--- queue Q (top to bottom) ---")
	queue := c.Queue()
	if len(queue) == 0 {
		fmt.Fprintln(&b, "(empty)")
	} else {
		for _, k := range queue {
			fmt.Fprintf(&b, "%v\n", k)
		}
	}

	fmt.Fprintln(&b, "--- resident values ---")
	resident := c.Resident()
	// Resident() walks the entry map, whose iteration order is randomized
	// by the runtime; sort by the key's textual form so Dump is stable.
	sort.Slice(resident, func(i, j int) bool {
		return fmt.Sprint(resident[i].Key) < fmt.Sprint(resident[j].Key)
	})
	if len(resident) == 0 {
		fmt.Fprintln(&b, "(empty)")
	} else {
		for _, re := range resident {
			fmt.Fprintf(&b, "%v=%v [%s]\n", re.Key, re.Value, re.Class)
		}
	}

	return b.String()
}
