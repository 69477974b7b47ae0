package cmd

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/zhubert/wowint/internal/remote"
)

var remoteCmd = &cobra.Command{
	Use:   "remote",
	Short: "Forward terminal key presses to the receiver",
	Long: `Open an interactive remote. Every key pressed in the terminal is sent as
its press code, followed by its release code after the configured hold time.

ctrl+t opens a field for typing raw codes or key names, ctrl+p sends the
gamepad ReleaseAll action and ctrl+c quits.`,
	RunE: runRemote,
}

func init() {
	rootCmd.AddCommand(remoteCmd)
}

func runRemote(cmd *cobra.Command, args []string) error {
	s, cfg, err := newSender(cmd)
	if err != nil {
		return err
	}

	m := remote.New(s, fmt.Sprintf("%s index %d", s.Addr(), s.Index()), cfg.Hold())
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running remote: %w", err)
	}
	fmt.Fprintf(stdout(cmd), "%d code(s) sent\n", m.Sent())
	return nil
}
