// Package clipboard copies text to the system clipboard.
package clipboard

import (
	"fmt"
	"sync"

	"golang.design/x/clipboard"

	"github.com/zhubert/wowint/internal/logger"
)

var (
	initOnce sync.Once
	initErr  error

	// writer performs the write. Tests replace it.
	writer = systemWrite
)

// Init initializes the clipboard. It is safe to call multiple times.
func Init() error {
	initOnce.Do(func() {
		if err := clipboard.Init(); err != nil {
			logger.Warn("Clipboard: failed to initialize: %v", err)
			initErr = fmt.Errorf("failed to initialize clipboard: %w", err)
		}
	})
	return initErr
}

func systemWrite(text string) error {
	if err := Init(); err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}

// WriteText puts text on the clipboard.
func WriteText(text string) error {
	if err := writer(text); err != nil {
		return err
	}
	logger.Debug("Clipboard: wrote %d bytes", len(text))
	return nil
}

// SetWriter replaces the clipboard writer.
func SetWriter(fn func(text string) error) {
	writer = fn
}

// ResetWriter restores the system clipboard writer.
func ResetWriter() {
	writer = systemWrite
}
