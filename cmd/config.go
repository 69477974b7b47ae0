package cmd

import (
	"bytes"
	"fmt"
	"strconv"

	"charm.land/huh/v2"
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/spf13/cobra"

	"github.com/zhubert/wowint/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or create the config file",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective config as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		data, err := cfg.JSON()
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout(cmd), highlightCode(string(data), "json"))
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			p, err := config.DefaultPath()
			if err != nil {
				return err
			}
			path = p
		}
		fmt.Fprintln(stdout(cmd), path)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Interactively write the receiver settings",
	RunE:  runConfigInit,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

// highlightCode applies syntax highlighting to code using chroma
func highlightCode(code, language string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}

	return buf.String()
}

// configForm holds the string values edited by the init form.
type configForm struct {
	host   string
	port   string
	index  string
	notify bool
}

func newConfigForm(cfg *config.Config) *configForm {
	return &configForm{
		host:   cfg.Host,
		port:   strconv.Itoa(int(cfg.Port)),
		index:  strconv.Itoa(int(cfg.Index)),
		notify: cfg.NotificationsEnabled,
	}
}

func validatePort(s string) error {
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil || n == 0 {
		return fmt.Errorf("port must be 1-65535")
	}
	return nil
}

func validateIndex(s string) error {
	if _, err := strconv.ParseInt(s, 10, 32); err != nil {
		return fmt.Errorf("index must be a 32-bit integer")
	}
	return nil
}

// apply copies the form values into cfg.
func (f *configForm) apply(cfg *config.Config) error {
	if err := validatePort(f.port); err != nil {
		return err
	}
	if err := validateIndex(f.index); err != nil {
		return err
	}
	port, _ := strconv.ParseUint(f.port, 10, 16)
	index, _ := strconv.ParseInt(f.index, 10, 32)
	cfg.Host = f.host
	cfg.Port = uint16(port)
	cfg.Index = int32(index)
	cfg.NotificationsEnabled = f.notify
	return cfg.Validate()
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	f := newConfigForm(cfg)
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Receiver host").
				Placeholder(config.DefaultHost).
				Value(&f.host),
			huh.NewInput().
				Title("Receiver UDP port").
				Validate(validatePort).
				Value(&f.port),
			huh.NewInput().
				Title("Default target index").
				Validate(validateIndex).
				Value(&f.index),
			huh.NewConfirm().
				Title("Notify when a demo run ends?").
				Value(&f.notify),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	if err := f.apply(cfg); err != nil {
		return err
	}
	if err := cfg.Save(); err != nil {
		return err
	}
	fmt.Fprintf(stdout(cmd), "Saved %s\n", cfg.Path())
	return nil
}
