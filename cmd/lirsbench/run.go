package main

import (
	"fmt"

	"github.com/TechieQuokka/lirs/internal/workload"
	"github.com/TechieQuokka/lirs/lirs"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	var (
		capacity int
		hirRatio float64
		name     string
		keySpace int
		ops      int
		seed     int64
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Drive a synthetic workload against the LIRS engine and report the hit rate",
		RunE: func(cmd *cobra.Command, args []string) error {
			gen := workload.ByName(name, keySpace, seed)
			if gen == nil {
				return fmt.Errorf("unknown workload %q (want loop|zipf|hotspot|scan)", name)
			}

			c, err := lirs.New[int, struct{}](capacity, hirRatio)
			if err != nil {
				return err
			}

			hits, misses := runWorkload(c, gen, ops)
			total := hits + misses
			rate := 0.0
			if total > 0 {
				rate = 100 * float64(hits) / float64(total)
			}
			fmt.Printf("workload=%s capacity=%d hir_ratio=%.3f ops=%d hits=%d misses=%d hit_rate=%.2f%%\n",
				gen.Name(), capacity, hirRatio, ops, hits, misses, rate)
			return nil
		},
	}

	cmd.Flags().IntVar(&capacity, "capacity", 100, "total cache capacity")
	cmd.Flags().Float64Var(&hirRatio, "hir-ratio", 0.1, "fraction of capacity reserved for the HIR queue")
	cmd.Flags().StringVar(&name, "workload", "loop", "workload generator: loop|zipf|hotspot|scan")
	cmd.Flags().IntVar(&keySpace, "keyspace", 1000, "number of distinct keys the workload draws from")
	cmd.Flags().IntVar(&ops, "ops", 100000, "number of get/put operations to run")
	cmd.Flags().Int64Var(&seed, "seed", 1, "PRNG seed for workloads that sample randomly")

	return cmd
}

// runWorkload replays keys against c: a get that hits counts as a hit; a
// miss triggers an immediate put with a placeholder value, as if the
// caller re-fetched the value from whatever backs the cache.
func runWorkload(c *lirs.Cache[int, struct{}], gen workload.Generator, ops int) (hits, misses int) {
	for _, k := range gen.Keys(ops) {
		if _, ok := c.Get(k); ok {
			hits++
		} else {
			misses++
			c.Put(k, struct{}{})
		}
	}
	return hits, misses
}
