package kana

import (
	"log/slog"
	"time"
)

// Config holds the optional settings of an Adapter
type Config struct {
	// Provider is an explicit handle to the extension. When nil it is looked
	// up through Host at construction and again on every call.
	Provider Provider

	// Host is the page scope to detect the extension in. A nil Host with a nil
	// Provider means there is no page at all and the adapter is Unsupported.
	Host Host

	// Timeout is kept for compatibility with the adapter framework's options.
	// No operation applies it; callers bound calls through their context.
	Timeout time.Duration

	// PollInterval is the delay between extension detection checks (default 1s)
	PollInterval time.Duration

	Logger *slog.Logger
}
