package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bingo/internal/card"
)

var (
	statsGen    genFlags
	statsTrials int
	statsSweep  bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Measure how many attempts cards need",
	Long: `Run the card generator many times and report how often it succeeds
within --max-attempts and how many attempts successful cards needed.

With --sweep every win-at value from 1 to the catalog size is measured,
which shows which targets are practical.

Examples:
  bingo stats
  bingo stats -w 25 --trials 500
  bingo stats --sweep --trials 100`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	statsGen.register(statsCmd)
	statsCmd.Flags().IntVar(&statsTrials, "trials", 200, "Number of cards to generate")
	statsCmd.Flags().BoolVar(&statsSweep, "sweep", false, "Measure every win-at value")
}

func runStats(cmd *cobra.Command, args []string) error {
	c, err := resolveCatalog(statsGen.game, statsGen.catalogFile)
	if err != nil {
		return err
	}
	if statsTrials < 1 {
		return fmt.Errorf("trials must be at least 1, got %d", statsTrials)
	}

	p := statsGen.params(cmd, c)
	rng := card.NewRNG(resolveSeed())

	if !statsSweep {
		stats, err := card.MeasureAttempts(rng, p, statsTrials)
		if err != nil {
			return explain(err)
		}
		printStats(p, stats)
		return nil
	}

	fmt.Printf("  %6s  %8s  %9s  %s\n", "win_at", "success", "mean", "max")
	fmt.Printf("  %6s  %8s  %9s  %s\n", "------", "-------", "----", "---")
	for winAt := 1; winAt <= c.Size(); winAt++ {
		p.WinAt = winAt
		stats, err := card.MeasureAttempts(rng, p, statsTrials)
		if err != nil {
			fmt.Printf("  %6d  %8s  %s\n", winAt, "-", err)
			continue
		}
		fmt.Printf("  %6d  %7.1f%%  %9.2f  %d\n", winAt, 100*stats.SuccessRate(), stats.Mean, stats.Max)
	}
	return nil
}

func printStats(p card.GenParams, s card.AttemptStats) {
	fmt.Printf("win_at=%d total_items=%d max_attempts=%d trials=%d\n", p.WinAt, p.TotalItems, p.MaxAttempts, s.Trials)
	fmt.Printf("  success rate: %.1f%% (%d exhausted)\n", 100*s.SuccessRate(), s.Exhausted)
	if s.Successes == 0 {
		return
	}
	fmt.Printf("  attempts: min %d, mean %.2f, max %d\n", s.Min, s.Mean, s.Max)
	fmt.Println()

	peak := 0
	for _, n := range s.Histogram {
		peak = max(peak, n)
	}
	for _, attempts := range s.Buckets() {
		n := s.Histogram[attempts]
		bar := strings.Repeat("#", max(1, n*40/peak))
		fmt.Printf("  %4d  %5d  %s\n", attempts, n, bar)
	}
}
