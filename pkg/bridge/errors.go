package bridge

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/rpc"
	"github.com/sigweihq/kanawallet/pkg/types"
)

// ErrNotInstalled is returned by the bridge server while no extension provider is attached
var ErrNotInstalled = errors.New("kana extension not installed")

// RPCError represents a failed bridge call
type RPCError struct {
	Method string
	Err    error
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("bridge call %s: %v", e.Method, e.Err)
}

func (e *RPCError) Unwrap() error {
	return e.Err
}

// JSON-RPC reserves codes -32768 to -32000 for the protocol itself
func isProtocolCode(code int) bool {
	return code >= -32768 && code <= -32000
}

// wrapCallError turns a JSON-RPC error carrying an extension code back into a
// *types.ProviderError so callers see the same shape as an in-page provider
func wrapCallError(method string, err error) error {
	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) && !isProtocolCode(rpcErr.ErrorCode()) {
		err = &types.ProviderError{Code: rpcErr.ErrorCode(), Message: rpcErr.Error()}
	}
	return &RPCError{Method: method, Err: err}
}
