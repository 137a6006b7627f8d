package bridge

import (
	"context"
	"log/slog"
	"sync"

	"github.com/sigweihq/kanawallet/pkg/constants"
	"github.com/sigweihq/kanawallet/pkg/kana"
)

// Host implements kana.Host by probing an extension bridge.
// The provider counts as present once the bridge answers kana_isInstalled
// with true; the connection is then kept for the lifetime of the Host.
type Host struct {
	dial   func(ctx context.Context) (*Client, error)
	logger *slog.Logger

	mu     sync.Mutex
	client *Client
}

// Verify Host implements kana.Host
var _ kana.Host = (*Host)(nil)

// NewHost creates a host that dials the bridge described by config on demand
func NewHost(config *Config) *Host {
	if config == nil {
		config = &Config{URL: constants.DefaultBridgeURL}
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	cfg := *config
	return &Host{
		dial: func(ctx context.Context) (*Client, error) {
			return Dial(ctx, &cfg)
		},
		logger: logger,
	}
}

// NewInProcHost creates a host attached to server without a network hop
func NewInProcHost(server *Server) *Host {
	return &Host{
		dial: func(ctx context.Context) (*Client, error) {
			return server.DialInProc(), nil
		},
		logger: server.logger,
	}
}

// Provider implements kana.Host; it returns nil while the extension is absent
func (h *Host) Provider() kana.Provider {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.client != nil {
		return h.client
	}

	ctx, cancel := context.WithTimeout(context.Background(), constants.BridgeProbeTimeout)
	defer cancel()

	client, err := h.dial(ctx)
	if err != nil {
		h.logger.Debug("bridge not reachable", "error", err)
		return nil
	}

	installed, err := client.IsInstalled(ctx)
	if err != nil || !installed {
		if err != nil {
			h.logger.Debug("bridge probe failed", "error", err)
		}
		client.Close()
		return nil
	}

	h.client = client
	return client
}

// Close releases the bridge connection, if any
func (h *Host) Close() {
	h.mu.Lock()
	client := h.client
	h.client = nil
	h.mu.Unlock()

	if client != nil {
		client.Close()
	}
}
