package bridge

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ethereum/go-ethereum/rpc"
	"github.com/sigweihq/kanawallet/pkg/constants"
	"github.com/sigweihq/kanawallet/pkg/kana"
	"github.com/sigweihq/kanawallet/pkg/types"
	"github.com/sigweihq/kanawallet/pkg/utils"
)

// Config holds the settings for reaching an extension bridge
type Config struct {
	URL    string // ws://, wss://, http(s):// or IPC path
	Token  string // optional bearer token sent with every request
	Logger *slog.Logger
}

// Client implements kana.Provider on top of a JSON-RPC bridge to the extension
type Client struct {
	rpc    *rpc.Client
	logger *slog.Logger

	mu   sync.Mutex
	subs []*rpc.ClientSubscription
	wg   sync.WaitGroup
}

// Verify Client implements kana.Provider
var _ kana.Provider = (*Client)(nil)

// Dial connects to the bridge described by config
func Dial(ctx context.Context, config *Config) (*Client, error) {
	if config == nil {
		config = &Config{URL: constants.DefaultBridgeURL}
	}
	if config.URL == "" {
		config.URL = constants.DefaultBridgeURL
	}

	if err := utils.ValidateBridgeURL(config.URL); err != nil {
		return nil, err
	}

	var options []rpc.ClientOption
	if config.Token != "" {
		options = append(options, rpc.WithHeader("Authorization", "Bearer "+config.Token))
	}

	c, err := rpc.DialOptions(ctx, config.URL, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to dial bridge %s: %w", config.URL, err)
	}
	return NewClient(c, config.Logger), nil
}

// NewClient wraps an established JSON-RPC connection
func NewClient(c *rpc.Client, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		rpc:    c,
		logger: logger,
	}
}

// Close ends all listener subscriptions and the underlying connection
func (c *Client) Close() {
	c.mu.Lock()
	subs := c.subs
	c.subs = nil
	c.mu.Unlock()

	for _, sub := range subs {
		sub.Unsubscribe()
	}
	c.rpc.Close()
	c.wg.Wait()
}

func (c *Client) call(ctx context.Context, result any, method string, args ...any) error {
	if err := c.rpc.CallContext(ctx, result, constants.BridgeNamespace+"_"+method, args...); err != nil {
		return wrapCallError(method, err)
	}
	return nil
}

// IsInstalled reports whether the bridge has an extension attached
func (c *Client) IsInstalled(ctx context.Context) (bool, error) {
	var installed bool
	err := c.call(ctx, &installed, "isInstalled")
	return installed, err
}

// Connect implements kana.Provider
func (c *Client) Connect(ctx context.Context) (*types.AddressInfo, error) {
	var info *types.AddressInfo
	if err := c.call(ctx, &info, "connect"); err != nil {
		return nil, err
	}
	return info, nil
}

// Account implements kana.Provider
func (c *Client) Account(ctx context.Context) (*types.AddressInfo, error) {
	var info *types.AddressInfo
	if err := c.call(ctx, &info, "account"); err != nil {
		return nil, err
	}
	return info, nil
}

// IsConnected implements kana.Provider
func (c *Client) IsConnected(ctx context.Context) (bool, error) {
	var connected bool
	err := c.call(ctx, &connected, "isConnected")
	return connected, err
}

// SignTransaction implements kana.Provider
func (c *Client) SignTransaction(ctx context.Context, tx *types.TransactionPayload, opts *types.TransactionOptions) (*types.SignTransactionResult, error) {
	var result *types.SignTransactionResult
	if err := c.call(ctx, &result, "signTransaction", tx, opts); err != nil {
		return nil, err
	}
	return result, nil
}

// SignAndSubmitTransaction implements kana.Provider
func (c *Client) SignAndSubmitTransaction(ctx context.Context, tx *types.TransactionPayload, opts *types.TransactionOptions) (*types.SubmitTransactionResult, error) {
	var result *types.SubmitTransactionResult
	if err := c.call(ctx, &result, "signAndSubmitTransaction", tx, opts); err != nil {
		return nil, err
	}
	return result, nil
}

// SignMessage implements kana.Provider
func (c *Client) SignMessage(ctx context.Context, payload *types.SignMessagePayload) (*types.SignMessageResponse, error) {
	var response *types.SignMessageResponse
	if err := c.call(ctx, &response, "signMessage", payload); err != nil {
		return nil, err
	}
	return response, nil
}

// Disconnect implements kana.Provider
func (c *Client) Disconnect(ctx context.Context) error {
	return c.call(ctx, nil, "disconnect")
}

// Network implements kana.Provider
func (c *Client) Network(ctx context.Context) (string, error) {
	var name string
	err := c.call(ctx, &name, "network")
	return name, err
}

// OnAccountChange implements kana.Provider.
// The listener runs on a bridge goroutine until the client is closed.
func (c *Client) OnAccountChange(ctx context.Context, listener func(types.AddressInfo)) error {
	return listen(ctx, c, "accountChange", listener)
}

// OnNetworkChange implements kana.Provider
func (c *Client) OnNetworkChange(ctx context.Context, listener func(types.NetworkChange)) error {
	return listen(ctx, c, "networkChange", listener)
}

// listen subscribes to topic and feeds every notification to listener
func listen[T any](ctx context.Context, c *Client, topic string, listener func(T)) error {
	ch := make(chan T, constants.MaxSubscriptionBacklog)
	sub, err := c.rpc.Subscribe(ctx, constants.BridgeNamespace, ch, topic)
	if err != nil {
		return wrapCallError("subscribe "+topic, err)
	}

	c.mu.Lock()
	c.subs = append(c.subs, sub)
	c.mu.Unlock()

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		for {
			select {
			case value := <-ch:
				listener(value)
			case err, ok := <-sub.Err():
				if ok && err != nil {
					c.logger.Warn("bridge subscription ended", "topic", topic, "error", err)
				}
				return
			}
		}
	}()

	return nil
}
