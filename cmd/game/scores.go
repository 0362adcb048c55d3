package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/younwookim/cave/internal/infrastructure/storage"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best finished runs, highest score first.
Equal scores rank the faster run first.

Examples:
  cave scores
  cave scores --limit 20`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer func() { _ = store.Close() }()

	runs, err := store.TopRuns(flagLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "High Scores - Cave Explorer")
	fmt.Fprintln(out)

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'cave play' to set the first high score!")
		return nil
	}

	high, err := store.HighScore()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Best: %d\n\n", high)

	fmt.Fprintf(out, "  %-4s  %-8s  %-10s  %-8s  %-20s  %s\n", "Rank", "Score", "Outcome", "Time", "Seed", "Date")
	fmt.Fprintf(out, "  %-4s  %-8s  %-10s  %-8s  %-20s  %s\n", "----", "-----", "-------", "----", "----", "----")
	for i, r := range runs {
		fmt.Fprintf(out, "  %-4d  %-8d  %-10s  %-8s  %-20d  %s\n",
			i+1, r.Score, r.Outcome, formatTicks(r.Ticks), r.Seed, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

// formatTicks renders a tick count at 60 ticks per second as m:ss
func formatTicks(ticks int) string {
	secs := ticks / 60
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
