package walletadapter

import (
	"context"

	"github.com/ethereum/go-ethereum/event"
	"github.com/sigweihq/kanawallet/pkg/types"
)

// WalletName is the display name of a wallet adapter (e.g., "Kana")
type WalletName string

// ReadyState is the detection status of a wallet extension
type ReadyState string

const (
	// ReadyStateUnsupported means there is no host page to detect an extension in
	ReadyStateUnsupported ReadyState = "Unsupported"
	// ReadyStateNotDetected means the extension has not been observed yet
	ReadyStateNotDetected ReadyState = "NotDetected"
	// ReadyStateLoadable means the wallet can be loaded on demand
	ReadyStateLoadable ReadyState = "Loadable"
	// ReadyStateInstalled means the extension's provider object is present
	ReadyStateInstalled ReadyState = "Installed"
)

// CanConnect reports whether a connection attempt is allowed in this state
func (s ReadyState) CanConnect() bool {
	return s == ReadyStateLoadable || s == ReadyStateInstalled
}

// AccountKeys is the public view of the connected account.
// Empty fields mean the value is unknown.
type AccountKeys struct {
	PublicKey string
	Address   string
	AuthKey   string
}

// NetworkInfo describes the network the wallet is connected to
type NetworkInfo struct {
	Name    string
	API     string
	ChainID string
}

// Adapter is the contract a host application expects from any wallet adapter
type Adapter interface {
	// Identity
	Name() WalletName
	URL() string
	Icon() string

	// State
	ReadyState() ReadyState
	PublicAccount() AccountKeys
	Network() NetworkInfo
	Connecting() bool
	Connected() bool

	// Lifecycle
	Connect(ctx context.Context) error
	Disconnect(ctx context.Context) error

	// Signing
	SignTransaction(ctx context.Context, tx *types.TransactionPayload, opts *types.TransactionOptions) ([]byte, error)
	SignAndSubmitTransaction(ctx context.Context, tx *types.TransactionPayload, opts *types.TransactionOptions) (*types.PendingTransaction, error)
	SignMessage(ctx context.Context, payload *types.SignMessagePayload) (*types.SignMessageResponse, error)

	// Listeners
	OnAccountChange(ctx context.Context) error
	OnNetworkChange(ctx context.Context) error

	// Subscribe delivers lifecycle events to ch until the subscription ends
	Subscribe(ch chan<- Event) event.Subscription
}
