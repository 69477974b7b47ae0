package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/zhubert/wowint/internal/demo"
	"github.com/zhubert/wowint/internal/registry"
)

var (
	tapHold time.Duration
	tapGap  time.Duration
)

var tapCmd = &cobra.Command{
	Use:   "tap <name>...",
	Short: "Press and release keys by name",
	Long: `Tap each named key in order: send its press code, hold it, then send its
release code. Hold and gap default to the hold_ms and gap_ms config values.`,
	Example: `  wowint tap W
  wowint tap --hold 250ms Space Space`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTap,
}

func init() {
	tapCmd.Flags().DurationVar(&tapHold, "hold", 0, "How long each key stays down")
	tapCmd.Flags().DurationVar(&tapGap, "gap", 0, "Pause after each release")
	rootCmd.AddCommand(tapCmd)
}

// tapScenario builds a one-shot scenario tapping each key in turn.
func tapScenario(names []string) (*demo.Scenario, error) {
	s := &demo.Scenario{Name: "tap", Description: "Command line taps"}
	for _, name := range names {
		if _, ok := registry.LookupByName(name); !ok {
			_, err := registry.Resolve(name)
			if err == nil {
				err = fmt.Errorf("%s is not a key name", name)
			}
			return nil, err
		}
		s.Steps = append(s.Steps, demo.Tap(name))
	}
	return s, nil
}

func runTap(cmd *cobra.Command, args []string) error {
	scenario, err := tapScenario(args)
	if err != nil {
		return err
	}

	s, cfg, err := newSender(cmd)
	if err != nil {
		return err
	}

	execCfg := demo.DefaultExecutorConfig()
	execCfg.Hold = cfg.Hold()
	execCfg.Gap = cfg.Gap()
	if cmd.Flags().Changed("hold") {
		execCfg.Hold = tapHold
	}
	if cmd.Flags().Changed("gap") {
		execCfg.Gap = tapGap
	}
	out := stdout(cmd)
	execCfg.OnSend = func(code int32) {
		fmt.Fprintf(out, "sent %s\n", describe(code))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	_, err = demo.NewExecutor(s, execCfg).Run(ctx, scenario)
	return err
}
