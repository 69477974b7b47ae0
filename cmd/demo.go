package cmd

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/zhubert/wowint/internal/demo"
	"github.com/zhubert/wowint/internal/demo/scenarios"
	"github.com/zhubert/wowint/internal/errors"
	"github.com/zhubert/wowint/internal/notification"
	"github.com/zhubert/wowint/internal/random"
)

var (
	demoLoops  int
	demoHold   time.Duration
	demoGap    time.Duration
	demoSeed   uint64
	demoNotify bool
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Play built-in driving loops against the receiver",
	Long: `Play built-in driving loops against the receiver.

Available subcommands:
  list      - List available demo scenarios
  run       - Play a scenario`,
}

var demoListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available demo scenarios",
	Run: func(cmd *cobra.Command, args []string) {
		out := stdout(cmd)
		fmt.Fprintln(out, "Available demo scenarios:")
		fmt.Fprintln(out)
		for _, s := range scenarios.All() {
			fmt.Fprintf(out, "  %-15s %s\n", s.Name, s.Description)
		}
	},
}

var demoRunCmd = &cobra.Command{
	Use:   "run <scenario>",
	Short: "Play a scenario until it finishes or is interrupted",
	Example: `  wowint demo run hello
  wowint demo run letters --loops 0 --seed 7`,
	Args: cobra.ExactArgs(1),
	RunE: runDemoRun,
}

func init() {
	demoRunCmd.Flags().IntVar(&demoLoops, "loops", 1, "Times to repeat the scenario (0 = until interrupted)")
	demoRunCmd.Flags().DurationVar(&demoHold, "hold", 0, "How long tapped keys stay down (default from config)")
	demoRunCmd.Flags().DurationVar(&demoGap, "gap", 0, "Pause after each code (default from config)")
	demoRunCmd.Flags().Uint64Var(&demoSeed, "seed", 0, "Seed for random taps (default unseeded)")
	demoRunCmd.Flags().BoolVar(&demoNotify, "notify", false, "Desktop notification when the run ends")

	demoCmd.AddCommand(demoListCmd)
	demoCmd.AddCommand(demoRunCmd)
	rootCmd.AddCommand(demoCmd)
}

func runDemoRun(cmd *cobra.Command, args []string) error {
	scenario := scenarios.Get(args[0])
	if scenario == nil {
		return errors.ScenarioNotFound(args[0])
	}

	s, cfg, err := newSender(cmd)
	if err != nil {
		return err
	}

	execCfg := demo.DefaultExecutorConfig()
	execCfg.Hold = cfg.Hold()
	execCfg.Gap = cfg.Gap()
	execCfg.Loops = demoLoops
	flags := cmd.Flags()
	if flags.Changed("hold") {
		execCfg.Hold = demoHold
	}
	if flags.Changed("gap") {
		execCfg.Gap = demoGap
	}
	if flags.Changed("seed") {
		execCfg.Source = random.New(demoSeed)
	}
	out := stdout(cmd)
	execCfg.OnSend = func(code int32) {
		fmt.Fprintf(out, "sent %s\n", describe(code))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Fprintf(out, "Playing %s against %s (ctrl+c to stop)\n", scenario.Name, s.Addr())
	result, err := demo.NewExecutor(s, execCfg).Run(ctx, scenario)
	if stderrors.Is(err, context.Canceled) {
		err = nil
	}
	fmt.Fprintf(out, "Run %s: %d code(s) sent over %d loop(s)\n", result.RunID, result.Sent, result.Loops)

	if demoNotify || cfg.NotificationsEnabled {
		_ = notification.RunFinished(scenario.Name, result.Sent, err)
	}
	return err
}
