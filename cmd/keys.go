package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/zhubert/wowint/internal/clipboard"
	"github.com/zhubert/wowint/internal/gamepad"
	"github.com/zhubert/wowint/internal/registry"
)

var (
	keysFilter string
	keysCopy   bool
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Inspect the key and gamepad code tables",
}

var keysListCmd = &cobra.Command{
	Use:   "list",
	Short: "List keyboard keys with their virtual key, press and release codes",
	RunE: func(cmd *cobra.Command, args []string) error {
		writeKeyTable(stdout(cmd), filterKeys(registry.All(), keysFilter))
		return nil
	},
}

var keysLookupCmd = &cobra.Command{
	Use:   "lookup <name|code>",
	Short: "Show what a key name or code means",
	Example: `  wowint keys lookup LeftArrow
  wowint keys lookup 2037
  wowint keys lookup --copy Space`,
	Args: cobra.ExactArgs(1),
	RunE: runKeysLookup,
}

var keysPadCmd = &cobra.Command{
	Use:   "pad",
	Short: "List gamepad actions",
	RunE: func(cmd *cobra.Command, args []string) error {
		writePadTable(stdout(cmd), gamepad.All())
		return nil
	},
}

func init() {
	keysListCmd.Flags().StringVar(&keysFilter, "filter", "", "Only list keys whose name contains this text")
	keysLookupCmd.Flags().BoolVar(&keysCopy, "copy", false, "Copy the code to the clipboard")

	keysCmd.AddCommand(keysListCmd)
	keysCmd.AddCommand(keysLookupCmd)
	keysCmd.AddCommand(keysPadCmd)
	rootCmd.AddCommand(keysCmd)
}

// filterKeys keeps keys whose name contains filter, ignoring case.
func filterKeys(all []registry.KeyInfo, filter string) []registry.KeyInfo {
	if filter == "" {
		return all
	}
	filter = strings.ToLower(filter)
	var out []registry.KeyInfo
	for _, k := range all {
		if strings.Contains(strings.ToLower(k.Name), filter) {
			out = append(out, k)
		}
	}
	return out
}

// nameWidth returns the display width of the widest name, at least floor.
func nameWidth(names []string, floor int) int {
	w := floor
	for _, n := range names {
		if nw := runewidth.StringWidth(n); nw > w {
			w = nw
		}
	}
	return w
}

func writeKeyTable(w io.Writer, list []registry.KeyInfo) {
	names := make([]string, len(list))
	for i, k := range list {
		names[i] = k.Name
	}
	width := nameWidth(names, len("NAME"))

	fmt.Fprintf(w, "%s  %-4s  %-5s  %s\n", runewidth.FillRight("NAME", width), "VK", "PRESS", "RELEASE")
	for _, k := range list {
		fmt.Fprintf(w, "%s  0x%02X  %-5d  %d\n", runewidth.FillRight(k.Name, width), k.PlatformCode, k.PressCode, k.ReleaseCode)
	}
}

func writePadTable(w io.Writer, actions []gamepad.Action) {
	names := make([]string, len(actions))
	for i, a := range actions {
		names[i] = a.String()
	}
	width := nameWidth(names, len("ACTION"))

	fmt.Fprintf(w, "%s  %s\n", runewidth.FillRight("ACTION", width), "CODE")
	for _, a := range actions {
		fmt.Fprintf(w, "%s  %d\n", runewidth.FillRight(a.String(), width), a.Code())
	}
}

// lookupKey describes a name or code and returns the code to copy.
func lookupKey(arg string) (string, int32, error) {
	if n, err := strconv.ParseInt(arg, 10, 32); err == nil {
		code := registry.Code(n)
		if code.IsGamepad() {
			if a := gamepad.Action(code); a.Valid() {
				return fmt.Sprintf("%d  gamepad action %s", code, a), int32(code), nil
			}
		}
		if key, ok := registry.LookupByCode(code); ok {
			return describeKey(key), int32(code), nil
		}
		return fmt.Sprintf("%d  no key or gamepad action", code), int32(code), nil
	}

	if key, ok := registry.LookupByName(arg); ok {
		return describeKey(key), int32(key.PressCode), nil
	}
	if a, ok := gamepad.Lookup(arg); ok {
		return fmt.Sprintf("%s  gamepad action %d", a, a.Code()), a.Code(), nil
	}

	// Resolve reports the unknown name with suggestions.
	_, err := registry.Resolve(arg)
	if err == nil {
		err = fmt.Errorf("cannot look up %q", arg)
	}
	return "", 0, err
}

func describeKey(k registry.KeyInfo) string {
	return fmt.Sprintf("%s  vk 0x%02X (%d)  press %d  release %d",
		k.Name, k.PlatformCode, k.PlatformCode, k.PressCode, k.ReleaseCode)
}

func runKeysLookup(cmd *cobra.Command, args []string) error {
	line, code, err := lookupKey(args[0])
	if err != nil {
		return err
	}
	out := stdout(cmd)
	fmt.Fprintln(out, line)

	if keysCopy {
		if err := clipboard.WriteText(strconv.Itoa(int(code))); err != nil {
			return fmt.Errorf("error copying to clipboard: %w", err)
		}
		fmt.Fprintf(out, "copied %d\n", code)
	}
	return nil
}
