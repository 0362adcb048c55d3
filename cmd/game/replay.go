package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/younwookim/cave/internal/application/replay"
	"github.com/younwookim/cave/internal/application/session"
	"github.com/younwookim/cave/internal/application/state"
)

var flagVerify bool

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Re-simulate a recorded run",
	Long: `Replay a recording headless and print how the run ended.

The config is taken from --config, or from the name stored in the
recording when --config is not given.

Examples:
  cave replay run.json
  cave replay run.json --verify`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagVerify, "verify", false, "Fail if the result differs from the recorded outcome")
}

func runReplay(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd.ErrOrStderr(), flagVerbose)

	data, err := replay.LoadReplay(args[0])
	if err != nil {
		return err
	}

	cfgName := flagConfig
	if cfgName == "" {
		cfgName = data.Config
	}
	cfg, cfgName, err := loadConfig(cfgName)
	if err != nil {
		return err
	}
	logger.Debug("replaying", "file", args[0], "run", data.RunID, "seed", data.Seed,
		"frames", len(data.Frames), "config", cfgName)

	opts := []session.Option{session.WithLogger(logger)}
	var sum session.Summary
	if flagVerify {
		sum, err = replay.Verify(cfg, *data, opts...)
	} else {
		sum, err = replay.Simulate(cfg, *data, opts...)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run:     %s\n", data.RunID)
	fmt.Fprintf(out, "seed:    %d\n", sum.Seed)
	fmt.Fprintf(out, "outcome: %s\n", describeOutcome(sum))
	fmt.Fprintf(out, "score:   %d\n", sum.Score)
	fmt.Fprintf(out, "kills:   %d\n", sum.Kills)
	fmt.Fprintf(out, "ticks:   %d\n", sum.Ticks)
	if flagVerify {
		fmt.Fprintln(out, "verified: outcome matches the recording")
	}
	return nil
}

func describeOutcome(sum session.Summary) string {
	if sum.Outcome == state.StateGameOver {
		return fmt.Sprintf("%s (%s)", sum.Outcome, sum.Cause)
	}
	return sum.Outcome.String()
}
