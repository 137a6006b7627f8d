package kana

import (
	"context"
	"errors"
	"sync"

	"github.com/sigweihq/kanawallet/pkg/constants"
	"github.com/sigweihq/kanawallet/pkg/types"
)

// fakeProvider is a scripted extension provider that records calls
type fakeProvider struct {
	mu    sync.Mutex
	calls map[string]int

	connectFn       func(ctx context.Context) (*types.AddressInfo, error)
	networkFn       func(ctx context.Context) (string, error)
	disconnectFn    func(ctx context.Context) error
	signTxFn        func(tx *types.TransactionPayload) (*types.SignTransactionResult, error)
	submitTxFn      func(tx *types.TransactionPayload) (*types.SubmitTransactionResult, error)
	signMessageFn   func(payload *types.SignMessagePayload) (*types.SignMessageResponse, error)
	accountChangeFn func(listener func(types.AddressInfo)) error
	networkChangeFn func(listener func(types.NetworkChange)) error

	accountListener func(types.AddressInfo)
	networkListener func(types.NetworkChange)
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{
		calls: make(map[string]int),
		connectFn: func(ctx context.Context) (*types.AddressInfo, error) {
			return &types.AddressInfo{Address: "0xAB", PublicKey: "pk1", AuthKey: "ak1"}, nil
		},
		networkFn: func(ctx context.Context) (string, error) {
			return constants.NetworkTestnet, nil
		},
	}
}

func (f *fakeProvider) record(method string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[method]++
}

func (f *fakeProvider) count(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[method]
}

func (f *fakeProvider) totalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for _, n := range f.calls {
		total += n
	}
	return total
}

func (f *fakeProvider) Connect(ctx context.Context) (*types.AddressInfo, error) {
	f.record("connect")
	return f.connectFn(ctx)
}

func (f *fakeProvider) Account(ctx context.Context) (*types.AddressInfo, error) {
	f.record("account")
	return f.connectFn(ctx)
}

func (f *fakeProvider) IsConnected(ctx context.Context) (bool, error) {
	f.record("isConnected")
	return true, nil
}

func (f *fakeProvider) SignTransaction(ctx context.Context, tx *types.TransactionPayload, opts *types.TransactionOptions) (*types.SignTransactionResult, error) {
	f.record("signTransaction")
	if f.signTxFn == nil {
		return types.Ok(types.SignedTransaction{0x01}), nil
	}
	return f.signTxFn(tx)
}

func (f *fakeProvider) SignAndSubmitTransaction(ctx context.Context, tx *types.TransactionPayload, opts *types.TransactionOptions) (*types.SubmitTransactionResult, error) {
	f.record("signAndSubmitTransaction")
	if f.submitTxFn == nil {
		return types.Ok(types.PendingTransaction{Hash: "0xfeed"}), nil
	}
	return f.submitTxFn(tx)
}

func (f *fakeProvider) SignMessage(ctx context.Context, payload *types.SignMessagePayload) (*types.SignMessageResponse, error) {
	f.record("signMessage")
	if f.signMessageFn == nil {
		return &types.SignMessageResponse{Message: payload.Message, Nonce: payload.Nonce, Prefix: "APTOS", Signature: "0xsig"}, nil
	}
	return f.signMessageFn(payload)
}

func (f *fakeProvider) Disconnect(ctx context.Context) error {
	f.record("disconnect")
	if f.disconnectFn == nil {
		return nil
	}
	return f.disconnectFn(ctx)
}

func (f *fakeProvider) Network(ctx context.Context) (string, error) {
	f.record("network")
	return f.networkFn(ctx)
}

func (f *fakeProvider) OnAccountChange(ctx context.Context, listener func(types.AddressInfo)) error {
	f.record("onAccountChange")
	if f.accountChangeFn != nil {
		return f.accountChangeFn(listener)
	}
	f.mu.Lock()
	f.accountListener = listener
	f.mu.Unlock()
	return nil
}

func (f *fakeProvider) OnNetworkChange(ctx context.Context, listener func(types.NetworkChange)) error {
	f.record("onNetworkChange")
	if f.networkChangeFn != nil {
		return f.networkChangeFn(listener)
	}
	f.mu.Lock()
	f.networkListener = listener
	f.mu.Unlock()
	return nil
}

func (f *fakeProvider) emitAccountChange(info types.AddressInfo) {
	f.mu.Lock()
	listener := f.accountListener
	f.mu.Unlock()
	listener(info)
}

func (f *fakeProvider) emitNetworkChange(name string) {
	f.mu.Lock()
	listener := f.networkListener
	f.mu.Unlock()
	listener(types.NetworkChange{NetworkName: name})
}

// switchableHost is a Host whose provider can appear later
type switchableHost struct {
	mu sync.Mutex
	p  Provider
}

func (h *switchableHost) Provider() Provider {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.p
}

func (h *switchableHost) set(p Provider) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.p = p
}

var errBoom = errors.New("boom")
