// Package errors provides structured error types for wowint.
// These errors provide context about what operation failed and where.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Op describes an operation, usually as "package.function".
type Op string

// Kind categorizes the type of error.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInvalid
	KindIO
	KindNetwork
	KindConfig
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindInvalid:
		return "invalid"
	case KindIO:
		return "I/O error"
	case KindNetwork:
		return "network error"
	case KindConfig:
		return "configuration error"
	default:
		return "unknown error"
	}
}

// Error is the structured error type for wowint.
type Error struct {
	Op      Op     // Operation that failed
	Kind    Kind   // Category of error
	Err     error  // Underlying error
	Context string // Additional context
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Context, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// E creates a new Error. Arguments can be:
// - Op: the operation name
// - Kind: the error kind
// - string: context message
// - error: the underlying error
func E(args ...interface{}) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case string:
			e.Context = a
		case error:
			e.Err = a
		}
	}
	if e.Err == nil {
		e.Err = errors.New(e.Context)
		e.Context = ""
	}
	return e
}

// Is reports whether err is of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// GetKind returns the Kind of an error.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Registry errors
func KeyNotFound(name string, suggestions []string) error {
	msg := fmt.Sprintf("unknown key %q", name)
	if len(suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(suggestions, ", "))
	}
	return E(Op("registry.Resolve"), KindNotFound, msg)
}

func InvalidToken(token string, reason string) error {
	return E(Op("registry.Resolve"), KindInvalid, fmt.Sprintf("cannot use %q: %s", token, reason))
}

// Wire errors
func InvalidPayload(size int) error {
	return E(Op("wire.Decode"), KindInvalid, fmt.Sprintf("payload is %d bytes, want 8", size))
}

// Transport errors
func ResolveFailed(addr string, err error) error {
	return E(Op("sender.Resolve"), KindNetwork, fmt.Sprintf("failed to resolve %s", addr), err)
}

func EndpointFailed(err error) error {
	return E(Op("sender.Bind"), KindNetwork, "failed to open local endpoint", err)
}

func SendFailed(addr string, err error) error {
	return E(Op("sender.Send"), KindNetwork, fmt.Sprintf("failed to send to %s", addr), err)
}

func ListenFailed(addr string, err error) error {
	return E(Op("listener.Listen"), KindIO, fmt.Sprintf("failed to listen on %s", addr), err)
}

// Script errors
func ScenarioNotFound(name string) error {
	return E(Op("scenarios.Get"), KindNotFound, fmt.Sprintf("scenario %s not found", name))
}

// Config errors
func ConfigLoadFailed(path string, err error) error {
	return E(Op("config.Load"), KindConfig, fmt.Sprintf("failed to load config from %s", path), err)
}

func ConfigSaveFailed(path string, err error) error {
	return E(Op("config.Save"), KindConfig, fmt.Sprintf("failed to save config to %s", path), err)
}

func ConfigInvalid(reason string) error {
	return E(Op("config.Validate"), KindInvalid, reason)
}

func TargetNotFound(name string) error {
	return E(Op("config.Target"), KindNotFound, fmt.Sprintf("target %s not found", name))
}
