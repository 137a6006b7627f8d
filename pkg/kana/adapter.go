package kana

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/event"
	"github.com/sigweihq/kanawallet/pkg/constants"
	"github.com/sigweihq/kanawallet/pkg/types"
	"github.com/sigweihq/kanawallet/pkg/walletadapter"
)

// WalletName is the name the Kana adapter registers under
const WalletName walletadapter.WalletName = constants.WalletName

// session is the locally held record of the connected account
type session struct {
	Address   string
	PublicKey string
	AuthKey   string
	Connected bool
}

// Adapter bridges the generic wallet adapter contract to the Kana extension
type Adapter struct {
	provider Provider
	host     Host
	timeout  time.Duration
	logger   *slog.Logger
	emitter  walletadapter.Emitter

	mu         sync.RWMutex
	wallet     *session
	network    string
	readyState walletadapter.ReadyState
	connecting bool

	stopPolling func()
}

// Verify Adapter satisfies the framework contract
var _ walletadapter.Adapter = (*Adapter)(nil)

// NewAdapter creates a Kana adapter and, when a host is available, starts
// polling for the extension in the background
func NewAdapter(config *Config) *Adapter {
	if config == nil {
		config = &Config{}
	}

	timeout := config.Timeout
	if timeout <= 0 {
		timeout = constants.DefaultTimeout
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	host := config.Host
	if host == nil && config.Provider != nil {
		host = StaticHost{P: config.Provider}
	}

	a := &Adapter{
		provider:    config.Provider,
		host:        host,
		timeout:     timeout,
		logger:      logger,
		readyState:  walletadapter.ReadyStateUnsupported,
		stopPolling: func() {},
	}
	if host == nil {
		return a
	}

	if a.provider == nil {
		a.provider = host.Provider()
	}
	a.readyState = walletadapter.ReadyStateNotDetected

	interval := config.PollInterval
	if interval <= 0 {
		interval = constants.DefaultPollInterval
	}
	a.stopPolling = walletadapter.ScopePollingDetectionStrategy(context.Background(), interval, a.detect)

	return a
}

// detect is the polling check; it reports true once the extension is present
func (a *Adapter) detect() bool {
	if a.host.Provider() == nil {
		return false
	}

	a.mu.Lock()
	a.readyState = walletadapter.ReadyStateInstalled
	a.mu.Unlock()

	a.logger.Debug("wallet extension detected", "wallet", constants.WalletName)
	a.emitter.Emit(walletadapter.ReadyStateChangeEvent{State: walletadapter.ReadyStateInstalled})
	return true
}

// Close stops extension detection and ends all event subscriptions
// Subscriptions end first so a detection blocked on an undrained subscriber
// can finish.
func (a *Adapter) Close() {
	a.emitter.Close()
	a.stopPolling()
}

// Name implements walletadapter.Adapter
func (a *Adapter) Name() walletadapter.WalletName {
	return WalletName
}

// URL implements walletadapter.Adapter
func (a *Adapter) URL() string {
	return constants.WalletURL
}

// Icon implements walletadapter.Adapter
func (a *Adapter) Icon() string {
	return constants.WalletIcon
}

// Timeout returns the configured request timeout
func (a *Adapter) Timeout() time.Duration {
	return a.timeout
}

// ReadyState implements walletadapter.Adapter
func (a *Adapter) ReadyState() walletadapter.ReadyState {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.readyState
}

// PublicAccount implements walletadapter.Adapter
func (a *Adapter) PublicAccount() walletadapter.AccountKeys {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.wallet == nil {
		return walletadapter.AccountKeys{}
	}
	return walletadapter.AccountKeys{
		PublicKey: a.wallet.PublicKey,
		Address:   a.wallet.Address,
		AuthKey:   a.wallet.AuthKey,
	}
}

// Network implements walletadapter.Adapter.
// API and ChainID stay empty: the extension does not report them.
func (a *Adapter) Network() walletadapter.NetworkInfo {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return walletadapter.NetworkInfo{Name: a.network}
}

// Connecting implements walletadapter.Adapter
func (a *Adapter) Connecting() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.connecting
}

// Connected implements walletadapter.Adapter
func (a *Adapter) Connected() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.wallet != nil && a.wallet.Connected
}

// Subscribe implements walletadapter.Adapter
func (a *Adapter) Subscribe(ch chan<- walletadapter.Event) event.Subscription {
	return a.emitter.Subscribe(ch)
}

// currentProvider returns the captured provider, falling back to the host
func (a *Adapter) currentProvider() Provider {
	if a.provider != nil {
		return a.provider
	}
	if a.host != nil {
		return a.host.Provider()
	}
	return nil
}

// connectedProvider returns the provider when a session is active
func (a *Adapter) connectedProvider() (Provider, error) {
	a.mu.RLock()
	wallet := a.wallet
	a.mu.RUnlock()

	provider := a.currentProvider()
	if wallet == nil || provider == nil {
		return nil, walletadapter.ErrNotConnected
	}
	return provider, nil
}

// fail wraps err into kind, emits it and returns it
func (a *Adapter) fail(kind walletadapter.ErrorKind, err error) error {
	wrapped := walletadapter.NewError(kind, err)
	a.emitter.Emit(walletadapter.ErrorEvent{Err: wrapped})
	return wrapped
}

// Connect implements walletadapter.Adapter.
// It returns immediately when already connected or while another Connect is in flight.
func (a *Adapter) Connect(ctx context.Context) error {
	a.mu.Lock()
	if (a.wallet != nil && a.wallet.Connected) || a.connecting {
		a.mu.Unlock()
		return nil
	}
	if !a.readyState.CanConnect() {
		a.mu.Unlock()
		a.emitter.Emit(walletadapter.ErrorEvent{Err: walletadapter.ErrNotReady})
		return walletadapter.ErrNotReady
	}
	a.connecting = true
	a.mu.Unlock()

	defer func() {
		a.mu.Lock()
		a.connecting = false
		a.mu.Unlock()
	}()

	provider := a.currentProvider()
	if provider == nil {
		a.emitter.Emit(walletadapter.ErrorEvent{Err: walletadapter.ErrNotReady})
		return walletadapter.ErrNotReady
	}

	info, err := provider.Connect(ctx)
	if err == nil && info == nil {
		err = errors.New("empty connect response")
	}
	if err != nil {
		a.logger.Debug("wallet connect failed", "error", err)
		a.emitter.Emit(walletadapter.ErrorEvent{Err: err})
		return err
	}

	name, err := provider.Network(ctx)
	if err != nil {
		a.logger.Debug("failed to read wallet network", "error", err)
		return a.fail(walletadapter.KindGetNetwork, err)
	}

	wallet := &session{
		Address:   info.Address,
		PublicKey: info.PublicKey,
		AuthKey:   info.AuthKey,
		Connected: true,
	}

	a.mu.Lock()
	a.wallet = wallet
	a.network = name
	a.mu.Unlock()

	a.logger.Info("wallet connected", "address", wallet.Address, "network", name)
	a.emitter.Emit(walletadapter.ConnectEvent{PublicKey: wallet.PublicKey})
	return nil
}

// Disconnect implements walletadapter.Adapter.
// The session is cleared before the extension is told; extension failures are
// only reported as events, so Disconnect always returns nil.
func (a *Adapter) Disconnect(ctx context.Context) error {
	a.mu.Lock()
	wallet := a.wallet
	a.wallet = nil
	a.mu.Unlock()

	if wallet != nil {
		if provider := a.currentProvider(); provider != nil {
			if err := provider.Disconnect(ctx); err != nil {
				a.logger.Warn("wallet disconnect failed", "error", err)
				a.emitter.Emit(walletadapter.ErrorEvent{Err: walletadapter.NewError(walletadapter.KindDisconnection, err)})
			}
		}
	}

	a.emitter.Emit(walletadapter.DisconnectEvent{})
	return nil
}

// SignTransaction implements walletadapter.Adapter
func (a *Adapter) SignTransaction(ctx context.Context, tx *types.TransactionPayload, opts *types.TransactionOptions) ([]byte, error) {
	provider, err := a.connectedProvider()
	if err != nil {
		return nil, a.fail(walletadapter.KindSignTransaction, err)
	}

	result, err := provider.SignTransaction(ctx, tx, opts)
	if err != nil {
		return nil, a.fail(walletadapter.KindSignTransaction, err)
	}

	signed, err := result.Get()
	if err != nil {
		return nil, a.fail(walletadapter.KindSignTransaction, err)
	}
	return signed, nil
}

// SignAndSubmitTransaction implements walletadapter.Adapter
func (a *Adapter) SignAndSubmitTransaction(ctx context.Context, tx *types.TransactionPayload, opts *types.TransactionOptions) (*types.PendingTransaction, error) {
	provider, err := a.connectedProvider()
	if err != nil {
		return nil, a.fail(walletadapter.KindSignAndSubmitMessage, err)
	}

	result, err := provider.SignAndSubmitTransaction(ctx, tx, opts)
	if err != nil {
		return nil, a.fail(walletadapter.KindSignAndSubmitMessage, err)
	}

	pending, err := result.Get()
	if err != nil {
		return nil, a.fail(walletadapter.KindSignAndSubmitMessage, err)
	}
	return &pending, nil
}

// SignMessage implements walletadapter.Adapter.
// The payload must carry a nonce; it is otherwise forwarded untouched.
func (a *Adapter) SignMessage(ctx context.Context, payload *types.SignMessagePayload) (*types.SignMessageResponse, error) {
	provider, err := a.connectedProvider()
	if err != nil {
		return nil, a.fail(walletadapter.KindSignMessage, err)
	}

	if payload == nil || payload.Nonce == "" {
		return nil, a.fail(walletadapter.KindSignMessage, &walletadapter.Error{
			Kind:    walletadapter.KindSignMessage,
			Message: constants.MsgInvalidSignMessagePayload,
		})
	}

	response, err := provider.SignMessage(ctx, payload)
	if err == nil && response == nil {
		err = errors.New(constants.MsgSignMessageFailed)
	}
	if err != nil {
		return nil, a.fail(walletadapter.KindSignMessage, err)
	}
	return response, nil
}

// OnAccountChange implements walletadapter.Adapter.
// The extension does not always report every field, so missing values keep
// their previous session value.
func (a *Adapter) OnAccountChange(ctx context.Context) error {
	provider, err := a.connectedProvider()
	if err != nil {
		return a.fail(walletadapter.KindAccountChange, err)
	}

	listener := func(next types.AddressInfo) {
		a.logger.Debug("account changed", "address", next.Address, "publicKey", next.PublicKey)

		a.mu.Lock()
		if a.wallet == nil {
			a.mu.Unlock()
			a.logger.Debug("ignoring account change without a session", "address", next.Address)
			return
		}
		merged := *a.wallet
		if next.Address != "" {
			merged.Address = next.Address
		}
		if next.PublicKey != "" {
			merged.PublicKey = next.PublicKey
		}
		if next.AuthKey != "" {
			merged.AuthKey = next.AuthKey
		}
		a.wallet = &merged
		a.mu.Unlock()

		a.emitter.Emit(walletadapter.AccountChangeEvent{PublicKey: merged.PublicKey})
	}

	if err := provider.OnAccountChange(ctx, listener); err != nil {
		return a.fail(walletadapter.KindAccountChange, err)
	}
	return nil
}

// OnNetworkChange implements walletadapter.Adapter
func (a *Adapter) OnNetworkChange(ctx context.Context) error {
	provider, err := a.connectedProvider()
	if err != nil {
		return a.fail(walletadapter.KindNetworkChange, err)
	}

	listener := func(next types.NetworkChange) {
		a.logger.Debug("network changed", "network", next.NetworkName)

		a.mu.Lock()
		a.network = next.NetworkName
		a.mu.Unlock()

		a.emitter.Emit(walletadapter.NetworkChangeEvent{Network: next.NetworkName})
	}

	if err := provider.OnNetworkChange(ctx, listener); err != nil {
		return a.fail(walletadapter.KindNetworkChange, err)
	}
	return nil
}
