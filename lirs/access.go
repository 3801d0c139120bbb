package lirs

// case1 handles a resident LIR access (§4.2 Case 1): move to the top of
// S, and if the key was at the bottom, prune.
func (c *Cache[K, V]) case1(e *entry[K, V]) {
	wasBottom := c.isStackBottom(e)
	c.moveToStackTop(e)
	if wasBottom {
		c.prune()
	}
}

// case2a handles a resident HIR access where the key is still in S
// (§4.2 Case 2a): promote to LIR. Step order matters — see spec.md §9:
// set LIR, move in S, remove from Q, demote bottom LIR, then prune.
func (c *Cache[K, V]) case2a(e *entry[K, V]) {
	e.isLIR = true
	c.lirCount++
	c.moveToStackTop(e)
	c.removeFromQueue(e)
	c.demoteBottomLIR()
	c.prune()
}

// case2b handles a resident HIR access where the key has aged out of S
// (§4.2 Case 2b): a refresh only. LIR count is unaffected and nothing is
// pruned, since the newly inserted stack top is HIR and the bottom of S
// is untouched.
func (c *Cache[K, V]) case2b(e *entry[K, V]) {
	c.insertAtStackTop(e)
	c.moveToQueueTop(e)
}

// accessGhost handles a non-resident access whose key is in S (§4.2 Case
// 3a): evict one HIR-resident victim if needed, install the value, and
// promote exactly as case2a does — except the key starts out of Q, so
// there is nothing to remove from it.
func (c *Cache[K, V]) accessGhost(e *entry[K, V], value V) {
	c.evictHIR()

	e.isResident = true
	e.value = value
	c.residentCount++

	e.isLIR = true
	c.lirCount++
	c.moveToStackTop(e)
	c.demoteBottomLIR()
	c.prune()
}

// insertNew admits a key never seen before (§4.3). During warm-up
// (lirCount < lirCapacity) the key is admitted directly as LIR; in
// steady state it evicts one HIR victim and is admitted as HIR, present
// in both S and Q.
func (c *Cache[K, V]) insertNew(key K, value V) {
	e := &entry[K, V]{key: key, value: value, isResident: true}

	if c.lirCount < c.lirCapacity {
		e.isLIR = true
		c.lirCount++
		c.insertAtStackTop(e)
	} else {
		c.evictHIR()
		c.insertAtStackTop(e)
		c.insertAtQueueTop(e)
	}

	c.items[key] = e
	c.residentCount++
}
