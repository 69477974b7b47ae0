package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/zhubert/wowint/internal/config"
	"github.com/zhubert/wowint/internal/logger"
	"github.com/zhubert/wowint/internal/sender"
)

var (
	debugMode             bool
	quietMode             bool
	configPath            string
	targetName            string
	hostFlag              string
	portFlag              uint16
	indexFlag             int32
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "wowint",
	Short: "Send key and gamepad action codes to a game-side UDP receiver",
	Long: `wowint drives a game-side receiver over UDP. Every message is 8 bytes:
the target player index and an action code, both little-endian int32.

Key codes are 1000 + virtual key for a press and 2000 + virtual key for a
release. Gamepad actions use codes 1300-1399.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", true, "Enable debug logging (on by default)")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.wowint/config.json)")
	rootCmd.PersistentFlags().StringVar(&targetName, "target", "", "Named target from the config file")
	rootCmd.PersistentFlags().StringVar(&hostFlag, "host", "", "Receiver host (overrides config)")
	rootCmd.PersistentFlags().Uint16Var(&portFlag, "port", 0, "Receiver UDP port (overrides config)")
	rootCmd.PersistentFlags().Int32Var(&indexFlag, "index", 0, "Default target index (overrides config)")
}

func initConfig() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	defer logger.Close()
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("wowint %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("wowint %s\n", version)
}

// loadConfig reads the config file named by --config.
func loadConfig() (*config.Config, error) {
	return config.Load(configPath)
}

// resolveTarget picks the receiver from the config, the --target flag and
// any explicit --host, --port or --index flags, in increasing precedence.
func resolveTarget(cmd *cobra.Command, cfg *config.Config) (config.Target, error) {
	t, err := cfg.Target(targetName)
	if err != nil {
		return config.Target{}, err
	}
	flags := cmd.Flags()
	if flags.Changed("host") {
		t.Host = hostFlag
	}
	if flags.Changed("port") {
		t.Port = portFlag
	}
	if flags.Changed("index") {
		t.Index = indexFlag
	}
	return t, nil
}

// newSender loads the config and builds a sender for the resolved target.
func newSender(cmd *cobra.Command) (*sender.Target, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("error loading config: %w", err)
	}
	t, err := resolveTarget(cmd, cfg)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("Target: %s:%d index %d", t.Host, t.Port, t.Index)
	return sender.New(t.Host, t.Port, t.Index), cfg, nil
}

// stdout returns the command's output writer.
func stdout(cmd *cobra.Command) io.Writer {
	if cmd == nil {
		return os.Stdout
	}
	return cmd.OutOrStdout()
}
