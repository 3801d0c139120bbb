package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/TechieQuokka/lirs/lirs"
	"github.com/spf13/cobra"
)

func newDumpCmd() *cobra.Command {
	var (
		capacity int
		hirRatio float64
	)

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Replay get/put lines from stdin and print the engine's state after each",
		Long: "Reads lines of the form \"get K\" or \"put K V\" from stdin (integer K, " +
			"string V) and prints lirs.Cache.Dump() after every line.",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := lirs.New[int, string](capacity, hirRatio)
			if err != nil {
				return err
			}

			scanner := bufio.NewScanner(os.Stdin)
			for scanner.Scan() {
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}
				if err := replayLine(c, line); err != nil {
					fmt.Fprintf(os.Stderr, "skipping %q: %v\n", line, err)
					continue
				}
				fmt.Println(c.Dump())
			}
			return scanner.Err()
		},
	}

	cmd.Flags().IntVar(&capacity, "capacity", 10, "total cache capacity")
	cmd.Flags().Float64Var(&hirRatio, "hir-ratio", 0.2, "fraction of capacity reserved for the HIR queue")

	return cmd
}

func replayLine(c *lirs.Cache[int, string], line string) error {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return fmt.Errorf("expected \"get K\" or \"put K V\"")
	}

	key, err := strconv.Atoi(fields[1])
	if err != nil {
		return fmt.Errorf("key %q is not an integer", fields[1])
	}

	switch fields[0] {
	case "get":
		c.Get(key)
	case "put":
		if len(fields) < 3 {
			return fmt.Errorf("put requires a value")
		}
		c.Put(key, strings.Join(fields[2:], " "))
	default:
		return fmt.Errorf("unknown command %q", fields[0])
	}
	return nil
}
