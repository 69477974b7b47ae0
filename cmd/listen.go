package cmd

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/zhubert/wowint/internal/listener"
	"github.com/zhubert/wowint/internal/logger"
)

var (
	listenBind  string
	listenCount int
)

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Print datagrams arriving on the receiver port",
	Long: `Bind the receiver port and print every datagram as index, code and key
name. Useful for checking a sender without the game running. The port comes
from --port or the config.`,
	Example: `  wowint listen
  wowint listen --port 7001 --count 4`,
	RunE: runListen,
}

func init() {
	listenCmd.Flags().StringVar(&listenBind, "bind", "", "Address to bind (default all interfaces)")
	listenCmd.Flags().IntVar(&listenCount, "count", 0, "Exit after this many datagrams (0 = until interrupted)")
	rootCmd.AddCommand(listenCmd)
}

func runListen(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	t, err := resolveTarget(cmd, cfg)
	if err != nil {
		return err
	}

	l, err := listener.Listen(net.JoinHostPort(listenBind, strconv.Itoa(int(t.Port))))
	if err != nil {
		return err
	}
	defer l.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	out := stdout(cmd)
	fmt.Fprintf(out, "Listening on %s\n", l.Addr())
	return l.Serve(ctx, listenCount, func(d listener.Datagram) {
		fmt.Fprintln(out, formatDatagram(d))
		logger.Debug("Listen: %s", formatDatagram(d))
	})
}

func formatDatagram(d listener.Datagram) string {
	if d.Err != nil {
		return fmt.Sprintf("%s  malformed: %v", d.From, d.Err)
	}
	line := fmt.Sprintf("%s  index=%d code=%d", d.From, d.Index, d.Code)
	if d.Name != "" {
		line += "  " + d.Name
	}
	return line
}
