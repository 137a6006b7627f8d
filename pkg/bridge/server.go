package bridge

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/ethereum/go-ethereum/rpc"
	"github.com/sigweihq/kanawallet/pkg/constants"
	"github.com/sigweihq/kanawallet/pkg/kana"
	"github.com/sigweihq/kanawallet/pkg/types"
)

// Server exposes a kana.Provider over JSON-RPC under the "kana" namespace.
// It is the counterpart of Client: a native host or test harness attaches the
// extension's provider and clients reach it over websocket, IPC or in-process.
type Server struct {
	rpc    *rpc.Server
	logger *slog.Logger

	mu       sync.RWMutex
	provider kana.Provider
}

// NewServer creates a bridge server. provider may be nil and attached later.
func NewServer(provider kana.Provider, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		rpc:      rpc.NewServer(),
		logger:   logger,
		provider: provider,
	}
	if err := s.rpc.RegisterName(constants.BridgeNamespace, &service{server: s}); err != nil {
		return nil, fmt.Errorf("failed to register bridge service: %w", err)
	}
	return s, nil
}

// SetProvider attaches or detaches (nil) the extension provider
func (s *Server) SetProvider(provider kana.Provider) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.provider = provider
}

func (s *Server) current() (kana.Provider, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.provider == nil {
		return nil, ErrNotInstalled
	}
	return s.provider, nil
}

// ServeHTTP serves JSON-RPC over plain HTTP (no subscriptions)
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.rpc.ServeHTTP(w, r)
}

// WebsocketHandler serves JSON-RPC over websocket, including subscriptions
func (s *Server) WebsocketHandler(allowedOrigins []string) http.Handler {
	return s.rpc.WebsocketHandler(allowedOrigins)
}

// DialInProc returns a client connected to this server in-process
func (s *Server) DialInProc() *Client {
	return NewClient(rpc.DialInProc(s.rpc), s.logger)
}

// Stop closes all connections and subscriptions
func (s *Server) Stop() {
	s.rpc.Stop()
}

// service holds the RPC methods; every exported method becomes kana_<method>
type service struct {
	server *Server
}

func (svc *service) IsInstalled() bool {
	_, err := svc.server.current()
	return err == nil
}

func (svc *service) Connect(ctx context.Context) (*types.AddressInfo, error) {
	provider, err := svc.server.current()
	if err != nil {
		return nil, err
	}
	return provider.Connect(ctx)
}

func (svc *service) Account(ctx context.Context) (*types.AddressInfo, error) {
	provider, err := svc.server.current()
	if err != nil {
		return nil, err
	}
	return provider.Account(ctx)
}

func (svc *service) IsConnected(ctx context.Context) (bool, error) {
	provider, err := svc.server.current()
	if err != nil {
		return false, err
	}
	return provider.IsConnected(ctx)
}

func (svc *service) SignTransaction(ctx context.Context, tx *types.TransactionPayload, opts *types.TransactionOptions) (*types.SignTransactionResult, error) {
	provider, err := svc.server.current()
	if err != nil {
		return nil, err
	}
	return provider.SignTransaction(ctx, tx, opts)
}

func (svc *service) SignAndSubmitTransaction(ctx context.Context, tx *types.TransactionPayload, opts *types.TransactionOptions) (*types.SubmitTransactionResult, error) {
	provider, err := svc.server.current()
	if err != nil {
		return nil, err
	}
	return provider.SignAndSubmitTransaction(ctx, tx, opts)
}

func (svc *service) SignMessage(ctx context.Context, payload *types.SignMessagePayload) (*types.SignMessageResponse, error) {
	provider, err := svc.server.current()
	if err != nil {
		return nil, err
	}
	return provider.SignMessage(ctx, payload)
}

func (svc *service) Disconnect(ctx context.Context) error {
	provider, err := svc.server.current()
	if err != nil {
		return err
	}
	return provider.Disconnect(ctx)
}

func (svc *service) Network(ctx context.Context) (string, error) {
	provider, err := svc.server.current()
	if err != nil {
		return "", err
	}
	return provider.Network(ctx)
}

// AccountChange streams account change notifications (kana_subscribe "accountChange")
func (svc *service) AccountChange(ctx context.Context) (*rpc.Subscription, error) {
	return notify(ctx, svc.server, "accountChange", func(p kana.Provider, listener func(types.AddressInfo)) error {
		return p.OnAccountChange(ctx, listener)
	})
}

// NetworkChange streams network change notifications (kana_subscribe "networkChange")
func (svc *service) NetworkChange(ctx context.Context) (*rpc.Subscription, error) {
	return notify(ctx, svc.server, "networkChange", func(p kana.Provider, listener func(types.NetworkChange)) error {
		return p.OnNetworkChange(ctx, listener)
	})
}

// notify registers a provider listener and relays its callbacks to the subscriber.
// Providers cannot remove listeners, so a listener outliving its subscription
// becomes a no-op.
func notify[T any](ctx context.Context, s *Server, topic string, register func(kana.Provider, func(T)) error) (*rpc.Subscription, error) {
	notifier, supported := rpc.NotifierFromContext(ctx)
	if !supported {
		return &rpc.Subscription{}, rpc.ErrNotificationsUnsupported
	}

	provider, err := s.current()
	if err != nil {
		return nil, err
	}

	updates := make(chan T, constants.MaxSubscriptionBacklog)
	done := make(chan struct{})
	listener := func(value T) {
		select {
		case <-done:
			return
		default:
		}
		select {
		case updates <- value:
		default:
			s.logger.Warn("dropping bridge notification", "topic", topic)
		}
	}

	if err := register(provider, listener); err != nil {
		return nil, err
	}

	sub := notifier.CreateSubscription()
	go func() {
		defer close(done)
		for {
			select {
			case value := <-updates:
				if err := notifier.Notify(sub.ID, value); err != nil {
					s.logger.Debug("bridge notification failed", "topic", topic, "error", err)
				}
			case <-sub.Err():
				return
			}
		}
	}()

	return sub, nil
}
