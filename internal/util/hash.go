package util

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// HashKey passes strings and byte slices straight to xxhash without an
// intermediate allocation, hashes integer keys via their decimal form and
// fmt.Stringer keys via String(), and falls back to the key's %v form for
// everything else. Unknown/unsupported key shapes still hash (unlike
// panicking designs elsewhere in the ecosystem) because shard routing
// only needs a stable, well-distributed digest, not a canonical one.
func HashKey[K comparable](k K) uint64 {
	switch v := any(k).(type) {
	case string:
		return xxhash.Sum64String(v)
	case []byte:
		return xxhash.Sum64(v)
	case int:
		return xxhash.Sum64String(fmt.Sprintf("%d", v))
	case int32:
		return xxhash.Sum64String(fmt.Sprintf("%d", v))
	case int64:
		return xxhash.Sum64String(fmt.Sprintf("%d", v))
	case uint:
		return xxhash.Sum64String(fmt.Sprintf("%d", v))
	case uint32:
		return xxhash.Sum64String(fmt.Sprintf("%d", v))
	case uint64:
		return xxhash.Sum64String(fmt.Sprintf("%d", v))
	case fmt.Stringer:
		return xxhash.Sum64String(v.String())
	default:
		return xxhash.Sum64String(fmt.Sprintf("%v", v))
	}
}
