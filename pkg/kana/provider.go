package kana

import (
	"context"

	"github.com/sigweihq/kanawallet/pkg/types"
)

// Provider is the capability set the Kana extension injects into the page.
// Every call blocks until the extension settles the request.
type Provider interface {
	Connect(ctx context.Context) (*types.AddressInfo, error)
	Account(ctx context.Context) (*types.AddressInfo, error)
	IsConnected(ctx context.Context) (bool, error)

	// SignTransaction returns either signed transaction bytes or an error-shaped reply
	SignTransaction(ctx context.Context, tx *types.TransactionPayload, opts *types.TransactionOptions) (*types.SignTransactionResult, error)

	// SignAndSubmitTransaction returns either the pending transaction hash or an error-shaped reply
	SignAndSubmitTransaction(ctx context.Context, tx *types.TransactionPayload, opts *types.TransactionOptions) (*types.SubmitTransactionResult, error)

	SignMessage(ctx context.Context, payload *types.SignMessagePayload) (*types.SignMessageResponse, error)
	Disconnect(ctx context.Context) error
	Network(ctx context.Context) (string, error)

	// OnAccountChange registers listener for account switches inside the extension
	OnAccountChange(ctx context.Context, listener func(types.AddressInfo)) error

	// OnNetworkChange registers listener for network switches inside the extension
	OnNetworkChange(ctx context.Context, listener func(types.NetworkChange)) error
}

// Host is the page scope the extension injects its provider into.
// Provider returns nil while the extension is not present.
type Host interface {
	Provider() Provider
}

// StaticHost is a Host whose provider is fixed up front
type StaticHost struct {
	P Provider
}

// Provider implements Host
func (h StaticHost) Provider() Provider {
	return h.P
}
