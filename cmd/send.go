package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zhubert/wowint/internal/logger"
	"github.com/zhubert/wowint/internal/registry"
	"github.com/zhubert/wowint/internal/sender"
)

var (
	sendAt  int32
	sendAll bool
)

var sendCmd = &cobra.Command{
	Use:   "send <code|name>...",
	Short: "Send raw codes or key names to the receiver",
	Long: `Resolve each argument to an action code and send it, in order.

An argument is a decimal integer (sent as is), a key name (its press code),
a key name with a transition such as LeftArrow:up, or a gamepad action name
such as PressA.`,
	Example: `  wowint send 42
  wowint send LeftArrow LeftArrow:up
  wowint send --at 2 PressA ReleaseA`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSend,
}

func init() {
	sendCmd.Flags().Int32Var(&sendAt, "at", 0, "Send to this target index instead of the default")
	sendCmd.Flags().BoolVar(&sendAll, "all", false, "Send to all targets")
	rootCmd.AddCommand(sendCmd)
}

func runSend(cmd *cobra.Command, args []string) error {
	codes, err := resolveTokens(args)
	if err != nil {
		return err
	}

	s, _, err := newSender(cmd)
	if err != nil {
		return err
	}

	deliver := sendFunc(s, cmd.Flags().Changed("at"), sendAt, sendAll)
	out := stdout(cmd)
	for _, code := range codes {
		if err := deliver(code); err != nil {
			logger.Error("Send: code %d to %s failed: %v", code, s.Addr(), err)
			return err
		}
		logger.Info("Send: code %d to %s", code, s.Addr())
		fmt.Fprintf(out, "sent %s\n", describe(code))
	}
	return nil
}

// resolveTokens resolves every argument before anything is sent.
func resolveTokens(args []string) ([]int32, error) {
	codes := make([]int32, 0, len(args))
	for _, arg := range args {
		code, err := registry.Resolve(arg)
		if err != nil {
			return nil, err
		}
		codes = append(codes, int32(code))
	}
	return codes, nil
}

// sendFunc picks the sender operation selected by the flags.
func sendFunc(s sender.Sender, explicit bool, index int32, all bool) func(int32) error {
	switch {
	case all:
		return s.SendToAll
	case explicit:
		return func(code int32) error { return s.SendToTargetAtIndex(index, code) }
	default:
		return s.SendToDefaultTarget
	}
}

// describe renders a code with its registry meaning, if any.
func describe(code int32) string {
	if d := registry.Describe(registry.Code(code)); d != "" {
		return fmt.Sprintf("%d (%s)", code, d)
	}
	return fmt.Sprintf("%d", code)
}
