package kana

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/sigweihq/kanawallet/pkg/constants"
	"github.com/sigweihq/kanawallet/pkg/types"
	"github.com/sigweihq/kanawallet/pkg/walletadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestAdapter(t *testing.T, host Host) (*Adapter, chan walletadapter.Event) {
	t.Helper()

	adapter := NewAdapter(&Config{Host: host, PollInterval: 5 * time.Millisecond, Logger: testLogger()})
	t.Cleanup(adapter.Close)

	events := make(chan walletadapter.Event, 32)
	adapter.Subscribe(events)
	return adapter, events
}

func connectedAdapter(t *testing.T, provider *fakeProvider) (*Adapter, chan walletadapter.Event) {
	t.Helper()

	adapter, events := newTestAdapter(t, StaticHost{P: provider})
	require.NoError(t, adapter.Connect(context.Background()))
	drain(events)
	return adapter, events
}

// drain returns every event currently buffered
func drain(events chan walletadapter.Event) []walletadapter.Event {
	var out []walletadapter.Event
	for {
		select {
		case ev := <-events:
			out = append(out, ev)
		default:
			return out
		}
	}
}

func errorEvents(events []walletadapter.Event) []error {
	var errs []error
	for _, ev := range events {
		if e, ok := ev.(walletadapter.ErrorEvent); ok {
			errs = append(errs, e.Err)
		}
	}
	return errs
}

func TestNewAdapter_Identity(t *testing.T) {
	adapter := NewAdapter(nil)
	defer adapter.Close()

	assert.Equal(t, walletadapter.WalletName("Kana"), adapter.Name())
	assert.Equal(t, constants.WalletURL, adapter.URL())
	assert.Contains(t, adapter.Icon(), "data:image/png;base64,")
	assert.Equal(t, constants.DefaultTimeout, adapter.Timeout())
}

func TestNewAdapter_ReadyState(t *testing.T) {
	t.Run("no host is unsupported", func(t *testing.T) {
		adapter := NewAdapter(&Config{Logger: testLogger()})
		defer adapter.Close()

		assert.Equal(t, walletadapter.ReadyStateUnsupported, adapter.ReadyState())
		assert.ErrorIs(t, adapter.Connect(context.Background()), walletadapter.ErrNotReady)
	})

	t.Run("extension present is installed", func(t *testing.T) {
		adapter, _ := newTestAdapter(t, StaticHost{P: newFakeProvider()})
		assert.Equal(t, walletadapter.ReadyStateInstalled, adapter.ReadyState())
	})

	t.Run("explicit provider without host is installed", func(t *testing.T) {
		adapter := NewAdapter(&Config{Provider: newFakeProvider(), Logger: testLogger()})
		defer adapter.Close()

		assert.Equal(t, walletadapter.ReadyStateInstalled, adapter.ReadyState())
	})

	t.Run("custom timeout is kept", func(t *testing.T) {
		adapter := NewAdapter(&Config{Timeout: 3 * time.Second, Logger: testLogger()})
		defer adapter.Close()

		assert.Equal(t, 3*time.Second, adapter.Timeout())
	})
}

func TestAdapter_DetectsLateExtension(t *testing.T) {
	host := &switchableHost{}
	adapter, events := newTestAdapter(t, host)

	assert.Equal(t, walletadapter.ReadyStateNotDetected, adapter.ReadyState())

	host.set(newFakeProvider())

	select {
	case ev := <-events:
		change, ok := ev.(walletadapter.ReadyStateChangeEvent)
		require.True(t, ok)
		assert.Equal(t, walletadapter.ReadyStateInstalled, change.State)
	case <-time.After(time.Second):
		t.Fatal("ready state change was not emitted")
	}
	assert.Equal(t, walletadapter.ReadyStateInstalled, adapter.ReadyState())

	// Detection is one-shot and the state never reverts
	host.set(nil)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, walletadapter.ReadyStateInstalled, adapter.ReadyState())
	assert.Empty(t, drain(events))
}

func TestAdapter_ConnectNotDetected(t *testing.T) {
	provider := newFakeProvider()
	adapter := NewAdapter(&Config{
		Provider:     provider,
		Host:         &switchableHost{},
		PollInterval: time.Hour,
		Logger:       testLogger(),
	})
	t.Cleanup(adapter.Close)
	require.Equal(t, walletadapter.ReadyStateNotDetected, adapter.ReadyState())

	events := make(chan walletadapter.Event, 32)
	adapter.Subscribe(events)

	err := adapter.Connect(context.Background())
	assert.ErrorIs(t, err, walletadapter.ErrNotReady)
	assert.Equal(t, 0, provider.totalCalls())
	assert.False(t, adapter.Connecting())

	errs := errorEvents(drain(events))
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], walletadapter.ErrNotReady)
}

func TestAdapter_Connect(t *testing.T) {
	provider := newFakeProvider()
	adapter, events := newTestAdapter(t, StaticHost{P: provider})

	require.NoError(t, adapter.Connect(context.Background()))

	assert.True(t, adapter.Connected())
	assert.False(t, adapter.Connecting())
	assert.Equal(t, walletadapter.AccountKeys{PublicKey: "pk1", Address: "0xAB", AuthKey: "ak1"}, adapter.PublicAccount())
	assert.Equal(t, walletadapter.NetworkInfo{Name: constants.NetworkTestnet}, adapter.Network())

	got := drain(events)
	require.Len(t, got, 1)
	assert.Equal(t, walletadapter.ConnectEvent{PublicKey: "pk1"}, got[0])

	// Connecting again is a no-op
	require.NoError(t, adapter.Connect(context.Background()))
	assert.Equal(t, 1, provider.count("connect"))
}

func TestAdapter_ConnectInFlightIsNoop(t *testing.T) {
	provider := newFakeProvider()
	release := make(chan struct{})
	provider.connectFn = func(ctx context.Context) (*types.AddressInfo, error) {
		<-release
		return &types.AddressInfo{Address: "0xAB", PublicKey: "pk1"}, nil
	}
	adapter, _ := newTestAdapter(t, StaticHost{P: provider})

	done := make(chan error, 1)
	go func() {
		done <- adapter.Connect(context.Background())
	}()

	require.Eventually(t, adapter.Connecting, time.Second, time.Millisecond)

	require.NoError(t, adapter.Connect(context.Background()))
	assert.Equal(t, 1, provider.count("connect"))

	close(release)
	require.NoError(t, <-done)
	assert.False(t, adapter.Connecting())
	assert.True(t, adapter.Connected())
	assert.Equal(t, 1, provider.count("connect"))
}

func TestAdapter_ConnectFailure(t *testing.T) {
	provider := newFakeProvider()
	provider.connectFn = func(ctx context.Context) (*types.AddressInfo, error) {
		return nil, errBoom
	}
	adapter, events := newTestAdapter(t, StaticHost{P: provider})

	err := adapter.Connect(context.Background())
	assert.ErrorIs(t, err, errBoom)
	assert.False(t, adapter.Connected())
	assert.False(t, adapter.Connecting())
	assert.Equal(t, 0, provider.count("network"))

	errs := errorEvents(drain(events))
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], errBoom)
}

func TestAdapter_ConnectEmptyResponse(t *testing.T) {
	provider := newFakeProvider()
	provider.connectFn = func(ctx context.Context) (*types.AddressInfo, error) {
		return nil, nil
	}
	adapter, _ := newTestAdapter(t, StaticHost{P: provider})

	assert.Error(t, adapter.Connect(context.Background()))
	assert.False(t, adapter.Connected())
}

func TestAdapter_ConnectNetworkFailure(t *testing.T) {
	provider := newFakeProvider()
	provider.networkFn = func(ctx context.Context) (string, error) {
		return "", errors.New("network unavailable")
	}
	adapter, events := newTestAdapter(t, StaticHost{P: provider})

	err := adapter.Connect(context.Background())
	require.Error(t, err)
	assert.Equal(t, "network unavailable", err.Error())
	assert.True(t, walletadapter.IsKind(err, walletadapter.KindGetNetwork))

	// The session is only committed once the network is known
	assert.False(t, adapter.Connected())
	assert.Equal(t, walletadapter.AccountKeys{}, adapter.PublicAccount())
	assert.False(t, adapter.Connecting())

	got := drain(events)
	errs := errorEvents(got)
	require.Len(t, errs, 1)
	assert.True(t, walletadapter.IsKind(errs[0], walletadapter.KindGetNetwork))
	for _, ev := range got {
		assert.NotEqual(t, walletadapter.EventConnect, ev.Name())
	}
}

func TestAdapter_RequiresSession(t *testing.T) {
	ctx := context.Background()
	tx := &types.TransactionPayload{Type: "entry_function_payload", Function: "0x1::coin::transfer"}

	tests := []struct {
		name string
		kind walletadapter.ErrorKind
		call func(a *Adapter) error
	}{
		{
			name: "sign transaction",
			kind: walletadapter.KindSignTransaction,
			call: func(a *Adapter) error {
				_, err := a.SignTransaction(ctx, tx, nil)
				return err
			},
		},
		{
			name: "sign and submit transaction",
			kind: walletadapter.KindSignAndSubmitMessage,
			call: func(a *Adapter) error {
				_, err := a.SignAndSubmitTransaction(ctx, tx, nil)
				return err
			},
		},
		{
			name: "sign message",
			kind: walletadapter.KindSignMessage,
			call: func(a *Adapter) error {
				_, err := a.SignMessage(ctx, &types.SignMessagePayload{Message: "hi", Nonce: "1"})
				return err
			},
		},
		{
			name: "account change",
			kind: walletadapter.KindAccountChange,
			call: func(a *Adapter) error { return a.OnAccountChange(ctx) },
		},
		{
			name: "network change",
			kind: walletadapter.KindNetworkChange,
			call: func(a *Adapter) error { return a.OnNetworkChange(ctx) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := newFakeProvider()
			adapter, events := newTestAdapter(t, StaticHost{P: provider})

			err := tt.call(adapter)
			assert.ErrorIs(t, err, walletadapter.ErrNotConnected)
			assert.True(t, walletadapter.IsKind(err, tt.kind))
			assert.Equal(t, 0, provider.totalCalls())

			errs := errorEvents(drain(events))
			require.Len(t, errs, 1)
			assert.True(t, walletadapter.IsKind(errs[0], tt.kind))
		})
	}
}

func TestAdapter_Disconnect(t *testing.T) {
	t.Run("without session", func(t *testing.T) {
		provider := newFakeProvider()
		adapter, events := newTestAdapter(t, StaticHost{P: provider})

		require.NoError(t, adapter.Disconnect(context.Background()))
		assert.Equal(t, 0, provider.count("disconnect"))

		got := drain(events)
		require.Len(t, got, 1)
		assert.Equal(t, walletadapter.DisconnectEvent{}, got[0])
	})

	t.Run("clears session before provider call", func(t *testing.T) {
		provider := newFakeProvider()
		adapter, events := connectedAdapter(t, provider)

		var connectedDuringCall bool
		provider.disconnectFn = func(ctx context.Context) error {
			connectedDuringCall = adapter.Connected()
			return nil
		}

		require.NoError(t, adapter.Disconnect(context.Background()))
		assert.False(t, connectedDuringCall)
		assert.Equal(t, 1, provider.count("disconnect"))
		assert.False(t, adapter.Connected())
		assert.Equal(t, walletadapter.AccountKeys{}, adapter.PublicAccount())

		got := drain(events)
		require.Len(t, got, 1)
		assert.Equal(t, walletadapter.EventDisconnect, got[0].Name())
	})

	t.Run("provider failure is reported but not returned", func(t *testing.T) {
		provider := newFakeProvider()
		adapter, events := connectedAdapter(t, provider)
		provider.disconnectFn = func(ctx context.Context) error {
			return errBoom
		}

		require.NoError(t, adapter.Disconnect(context.Background()))
		assert.False(t, adapter.Connected())

		got := drain(events)
		require.Len(t, got, 2)
		errEvent, ok := got[0].(walletadapter.ErrorEvent)
		require.True(t, ok)
		assert.True(t, walletadapter.IsKind(errEvent.Err, walletadapter.KindDisconnection))
		assert.ErrorIs(t, errEvent.Err, errBoom)
		assert.Equal(t, walletadapter.DisconnectEvent{}, got[1])
	})
}

func TestAdapter_SignTransaction(t *testing.T) {
	t.Run("returns signed bytes", func(t *testing.T) {
		provider := newFakeProvider()
		provider.signTxFn = func(tx *types.TransactionPayload) (*types.SignTransactionResult, error) {
			return types.Ok(types.SignedTransaction{0xde, 0xad}), nil
		}
		adapter, _ := connectedAdapter(t, provider)

		signed, err := adapter.SignTransaction(context.Background(), &types.TransactionPayload{}, nil)
		require.NoError(t, err)
		assert.Equal(t, []byte{0xde, 0xad}, signed)
	})

	t.Run("error shaped reply is a failure", func(t *testing.T) {
		provider := newFakeProvider()
		provider.signTxFn = func(tx *types.TransactionPayload) (*types.SignTransactionResult, error) {
			return types.Fail[types.SignedTransaction](4001, "", "User rejected"), nil
		}
		adapter, events := connectedAdapter(t, provider)

		signed, err := adapter.SignTransaction(context.Background(), &types.TransactionPayload{}, nil)
		require.Error(t, err)
		assert.Nil(t, signed)
		assert.Equal(t, "User rejected", err.Error())

		var providerErr *types.ProviderError
		require.True(t, errors.As(err, &providerErr))
		assert.Equal(t, 4001, providerErr.Code)

		errs := errorEvents(drain(events))
		require.Len(t, errs, 1)
		assert.True(t, walletadapter.IsKind(errs[0], walletadapter.KindSignTransaction))
		assert.Equal(t, "User rejected", errs[0].Error())
	})

	t.Run("provider call failure", func(t *testing.T) {
		provider := newFakeProvider()
		provider.signTxFn = func(tx *types.TransactionPayload) (*types.SignTransactionResult, error) {
			return nil, errBoom
		}
		adapter, _ := connectedAdapter(t, provider)

		_, err := adapter.SignTransaction(context.Background(), &types.TransactionPayload{}, nil)
		assert.ErrorIs(t, err, errBoom)
		assert.True(t, walletadapter.IsKind(err, walletadapter.KindSignTransaction))
	})
}

func TestAdapter_SignAndSubmitTransaction(t *testing.T) {
	t.Run("returns hash", func(t *testing.T) {
		provider := newFakeProvider()
		adapter, _ := connectedAdapter(t, provider)

		pending, err := adapter.SignAndSubmitTransaction(context.Background(), &types.TransactionPayload{}, &types.TransactionOptions{MaxGasAmount: "2000"})
		require.NoError(t, err)
		assert.Equal(t, "0xfeed", pending.Hash)
	})

	t.Run("error shaped reply is a failure", func(t *testing.T) {
		provider := newFakeProvider()
		provider.submitTxFn = func(tx *types.TransactionPayload) (*types.SubmitTransactionResult, error) {
			return types.Fail[types.PendingTransaction](4100, "Unauthorized", "not allowed"), nil
		}
		adapter, events := connectedAdapter(t, provider)

		pending, err := adapter.SignAndSubmitTransaction(context.Background(), &types.TransactionPayload{}, nil)
		assert.Nil(t, pending)
		assert.EqualError(t, err, "not allowed")

		errs := errorEvents(drain(events))
		require.Len(t, errs, 1)
		assert.True(t, walletadapter.IsKind(errs[0], walletadapter.KindSignAndSubmitMessage))
	})
}

func TestAdapter_SignMessage(t *testing.T) {
	t.Run("forwards payload", func(t *testing.T) {
		provider := newFakeProvider()
		adapter, _ := connectedAdapter(t, provider)

		response, err := adapter.SignMessage(context.Background(), &types.SignMessagePayload{Message: "hello", Nonce: "42"})
		require.NoError(t, err)
		assert.Equal(t, "hello", response.Message)
		assert.Equal(t, "42", response.Nonce)
	})

	invalid := []struct {
		name    string
		payload *types.SignMessagePayload
	}{
		{name: "nil payload", payload: nil},
		{name: "missing nonce", payload: &types.SignMessagePayload{Message: "hello"}},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			provider := newFakeProvider()
			adapter, events := connectedAdapter(t, provider)

			_, err := adapter.SignMessage(context.Background(), tt.payload)
			require.Error(t, err)
			assert.Equal(t, "Invalid signMessage Payload", err.Error())
			assert.True(t, walletadapter.IsKind(err, walletadapter.KindSignMessage))
			assert.Equal(t, 0, provider.count("signMessage"))

			errs := errorEvents(drain(events))
			require.Len(t, errs, 1)
			assert.Equal(t, "Invalid signMessage Payload", errs[0].Error())
		})
	}

	t.Run("empty response", func(t *testing.T) {
		provider := newFakeProvider()
		provider.signMessageFn = func(payload *types.SignMessagePayload) (*types.SignMessageResponse, error) {
			return nil, nil
		}
		adapter, _ := connectedAdapter(t, provider)

		_, err := adapter.SignMessage(context.Background(), &types.SignMessagePayload{Message: "hello", Nonce: "1"})
		assert.EqualError(t, err, "Sign Message failed")
		assert.True(t, walletadapter.IsKind(err, walletadapter.KindSignMessage))
	})

	t.Run("provider failure", func(t *testing.T) {
		provider := newFakeProvider()
		provider.signMessageFn = func(payload *types.SignMessagePayload) (*types.SignMessageResponse, error) {
			return nil, errBoom
		}
		adapter, _ := connectedAdapter(t, provider)

		_, err := adapter.SignMessage(context.Background(), &types.SignMessagePayload{Message: "hello", Nonce: "1"})
		assert.ErrorIs(t, err, errBoom)
	})
}

func TestAdapter_OnAccountChange(t *testing.T) {
	provider := newFakeProvider()
	adapter, events := connectedAdapter(t, provider)

	require.NoError(t, adapter.OnAccountChange(context.Background()))

	// Only the address is reported: keys keep their previous values
	provider.emitAccountChange(types.AddressInfo{Address: "0xCD"})
	assert.Equal(t, walletadapter.AccountKeys{PublicKey: "pk1", Address: "0xCD", AuthKey: "ak1"}, adapter.PublicAccount())

	got := drain(events)
	require.Len(t, got, 1)
	assert.Equal(t, walletadapter.AccountChangeEvent{PublicKey: "pk1"}, got[0])

	provider.emitAccountChange(types.AddressInfo{Address: "0xEF", PublicKey: "pk2", AuthKey: "ak2"})
	assert.Equal(t, walletadapter.AccountKeys{PublicKey: "pk2", Address: "0xEF", AuthKey: "ak2"}, adapter.PublicAccount())
	assert.Equal(t, []walletadapter.Event{walletadapter.AccountChangeEvent{PublicKey: "pk2"}}, drain(events))
	assert.True(t, adapter.Connected())

	// Notifications after disconnect do not resurrect the session
	require.NoError(t, adapter.Disconnect(context.Background()))
	drain(events)
	provider.emitAccountChange(types.AddressInfo{Address: "0x99"})
	assert.False(t, adapter.Connected())
	assert.Empty(t, drain(events))
}

func TestAdapter_OnAccountChangeWithoutSessionIsLogged(t *testing.T) {
	var logs bytes.Buffer
	provider := newFakeProvider()
	adapter := NewAdapter(&Config{
		Provider: provider,
		Logger:   slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})),
	})
	t.Cleanup(adapter.Close)

	require.NoError(t, adapter.Connect(context.Background()))
	require.NoError(t, adapter.OnAccountChange(context.Background()))
	require.NoError(t, adapter.Disconnect(context.Background()))

	provider.emitAccountChange(types.AddressInfo{Address: "0x99"})
	assert.False(t, adapter.Connected())
	assert.Contains(t, logs.String(), "ignoring account change without a session")
	assert.Contains(t, logs.String(), "address=0x99")
}

func TestAdapter_OnAccountChangeRegistrationFailure(t *testing.T) {
	provider := newFakeProvider()
	provider.accountChangeFn = func(listener func(types.AddressInfo)) error {
		return errBoom
	}
	adapter, events := connectedAdapter(t, provider)

	err := adapter.OnAccountChange(context.Background())
	assert.ErrorIs(t, err, errBoom)
	assert.True(t, walletadapter.IsKind(err, walletadapter.KindAccountChange))
	assert.Len(t, errorEvents(drain(events)), 1)
}

func TestAdapter_OnNetworkChange(t *testing.T) {
	provider := newFakeProvider()
	adapter, events := connectedAdapter(t, provider)

	require.NoError(t, adapter.OnNetworkChange(context.Background()))

	provider.emitNetworkChange(constants.NetworkMainnet)
	assert.Equal(t, constants.NetworkMainnet, adapter.Network().Name)
	assert.Empty(t, adapter.Network().API)
	assert.Empty(t, adapter.Network().ChainID)
	assert.Equal(t, []walletadapter.Event{walletadapter.NetworkChangeEvent{Network: constants.NetworkMainnet}}, drain(events))
}

func TestAdapter_OnNetworkChangeRegistrationFailure(t *testing.T) {
	provider := newFakeProvider()
	provider.networkChangeFn = func(listener func(types.NetworkChange)) error {
		return errBoom
	}
	adapter, _ := connectedAdapter(t, provider)

	err := adapter.OnNetworkChange(context.Background())
	assert.ErrorIs(t, err, errBoom)
	assert.True(t, walletadapter.IsKind(err, walletadapter.KindNetworkChange))
}

func TestAdapter_ProviderLookupFallsBackToHost(t *testing.T) {
	host := &switchableHost{}
	adapter, _ := newTestAdapter(t, host)

	provider := newFakeProvider()
	host.set(provider)
	require.Eventually(t, func() bool {
		return adapter.ReadyState() == walletadapter.ReadyStateInstalled
	}, time.Second, time.Millisecond)

	require.NoError(t, adapter.Connect(context.Background()))
	assert.Equal(t, 1, provider.count("connect"))
	assert.True(t, adapter.Connected())
}

func TestAdapter_CloseWithUndrainedSubscriber(t *testing.T) {
	host := &switchableHost{}
	adapter := NewAdapter(&Config{Host: host, PollInterval: 5 * time.Millisecond, Logger: testLogger()})

	stalled := make(chan walletadapter.Event)
	adapter.Subscribe(stalled)

	host.set(newFakeProvider())
	require.Eventually(t, func() bool {
		return adapter.ReadyState() == walletadapter.ReadyStateInstalled
	}, time.Second, 5*time.Millisecond)

	closed := make(chan struct{})
	go func() {
		adapter.Close()
		close(closed)
	}()

	select {
	case <-closed:
	case <-time.After(2 * time.Second):
		t.Fatal("Close blocked on a subscriber that stopped reading")
	}
}
