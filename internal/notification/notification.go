// Package notification provides cross-platform desktop notifications.
// It uses the beeep library to send notifications on macOS, Linux, and Windows.
package notification

import (
	"fmt"

	"github.com/gen2brain/beeep"

	"github.com/zhubert/wowint/internal/logger"
)

// notifier sends the notification. Tests replace it.
var notifier = beeep.Notify

// SetNotifier replaces the notification function.
func SetNotifier(fn func(title, message string, icon any) error) {
	notifier = fn
}

// ResetNotifier restores the beeep notifier.
func ResetNotifier() {
	notifier = beeep.Notify
}

// Send sends a desktop notification with the given title and message.
func Send(title, message string) error {
	log := logger.ComponentLogger("notification")
	log.Debug("sending notification", "title", title, "message", message)
	// Empty icon lets beeep use the platform default
	err := notifier(title, message, "")
	if err != nil {
		log.Warn("notification failed", "error", err)
	}
	return err
}

// RunFinished announces the end of a demo run.
func RunFinished(scenario string, sent int, runErr error) error {
	if runErr != nil {
		return Send("wowint", fmt.Sprintf("%s stopped after %d codes: %v", scenario, sent, runErr))
	}
	return Send("wowint", fmt.Sprintf("%s finished, %d codes sent", scenario, sent))
}
