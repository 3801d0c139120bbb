// Package lirs implements the Low Inter-reference Recency Set (LIRS)
// cache replacement policy.
//
// Design
//
//   - Data model: an entry table (map[K]*entry) tracks, per key, whether
//     it is LIR or HIR, whether it is resident, and opaque cursors into
//     two ordered sequences: the LIRS stack S and the HIR queue Q. Both
//     S and Q are container/list.List values; cursors are *list.Element
//     pointers stored on the entry, giving O(1) removal and reordering.
//
//   - S may hold ghost entries: non-resident keys whose metadata is kept
//     so that a later reference can promote them straight back to LIR
//     without going through the full warm-up path.
//
//   - Q only ever holds resident HIR keys; it is the eviction source.
//
//   - Every public operation ends by restoring the stack/queue invariants
//     via the three reorganisation routines: prune, demoteBottomLIR and
//     evictHIR (see reorg.go).
//
//   - The engine is single-threaded: it is not safe for concurrent use
//     from multiple goroutines without external synchronisation. Package
//     cache provides a sharded, mutex-guarded facade built on top of it.
package lirs
