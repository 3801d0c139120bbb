package main

import (
	"fmt"

	"github.com/TechieQuokka/lirs/internal/workload"
	"github.com/TechieQuokka/lirs/lirs"
	lru "github.com/hashicorp/golang-lru"
	"github.com/spf13/cobra"
)

func newCompareCmd() *cobra.Command {
	var (
		capacity int
		hirRatio float64
		name     string
		keySpace int
		ops      int
		seed     int64
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run a workload against lirs.Cache and a strict-LRU baseline, side by side",
		RunE: func(cmd *cobra.Command, args []string) error {
			gen := workload.ByName(name, keySpace, seed)
			if gen == nil {
				return fmt.Errorf("unknown workload %q (want loop|zipf|hotspot|scan)", name)
			}
			keys := gen.Keys(ops)

			lirsCache, err := lirs.New[int, struct{}](capacity, hirRatio)
			if err != nil {
				return err
			}
			lirsHits, lirsMisses := driveLIRS(lirsCache, keys)

			lruCache, err := lru.New(capacity)
			if err != nil {
				return err
			}
			lruHits, lruMisses := driveLRU(lruCache, keys)

			fmt.Printf("workload=%s capacity=%d ops=%d\n", gen.Name(), capacity, ops)
			fmt.Printf("  lirs: hits=%d misses=%d hit_rate=%.2f%%\n",
				lirsHits, lirsMisses, hitRate(lirsHits, lirsMisses))
			fmt.Printf("  lru:  hits=%d misses=%d hit_rate=%.2f%%\n",
				lruHits, lruMisses, hitRate(lruHits, lruMisses))
			return nil
		},
	}

	cmd.Flags().IntVar(&capacity, "capacity", 100, "total cache capacity for both policies")
	cmd.Flags().Float64Var(&hirRatio, "hir-ratio", 0.1, "fraction of capacity reserved for the HIR queue (lirs only)")
	cmd.Flags().StringVar(&name, "workload", "loop", "workload generator: loop|zipf|hotspot|scan")
	cmd.Flags().IntVar(&keySpace, "keyspace", 1000, "number of distinct keys the workload draws from")
	cmd.Flags().IntVar(&ops, "ops", 100000, "number of get/put operations to run")
	cmd.Flags().Int64Var(&seed, "seed", 1, "PRNG seed for workloads that sample randomly")

	return cmd
}

func driveLIRS(c *lirs.Cache[int, struct{}], keys []int) (hits, misses int) {
	for _, k := range keys {
		if _, ok := c.Get(k); ok {
			hits++
		} else {
			misses++
			c.Put(k, struct{}{})
		}
	}
	return hits, misses
}

func driveLRU(c *lru.Cache, keys []int) (hits, misses int) {
	for _, k := range keys {
		if _, ok := c.Get(k); ok {
			hits++
		} else {
			misses++
			c.Add(k, struct{}{})
		}
	}
	return hits, misses
}

func hitRate(hits, misses int) float64 {
	total := hits + misses
	if total == 0 {
		return 0
	}
	return 100 * float64(hits) / float64(total)
}
