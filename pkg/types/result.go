package types

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// ProviderError is the error-shaped object the extension returns in place of
// a result when a request is rejected
type ProviderError struct {
	Code    int    `json:"code"`
	Name    string `json:"name,omitempty"`
	Message string `json:"message"`
}

func (e *ProviderError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Name != "" {
		return e.Name
	}
	return fmt.Sprintf("provider error code %d", e.Code)
}

// ErrorCode returns the extension's numeric code; it also lets the error keep
// its code when relayed as a JSON-RPC error
func (e *ProviderError) ErrorCode() int {
	return e.Code
}

// Result is a reply that is either a value of type T or a ProviderError.
// A JSON object carrying a numeric "code" member decodes as a failure; any other
// body decodes into T.
type Result[T any] struct {
	Value   T
	Failure *ProviderError
}

// SignTransactionResult is the reply to signTransaction
type SignTransactionResult = Result[SignedTransaction]

// SubmitTransactionResult is the reply to signAndSubmitTransaction
type SubmitTransactionResult = Result[PendingTransaction]

// Ok wraps a successful value
func Ok[T any](v T) *Result[T] {
	return &Result[T]{Value: v}
}

// Fail wraps an error-shaped reply
func Fail[T any](code int, name, message string) *Result[T] {
	return &Result[T]{Failure: &ProviderError{Code: code, Name: name, Message: message}}
}

// Get resolves the reply into its value or its failure
func (r *Result[T]) Get() (T, error) {
	var zero T
	if r == nil {
		return zero, fmt.Errorf("empty provider response")
	}
	if r.Failure != nil {
		return zero, r.Failure
	}
	return r.Value, nil
}

// MarshalJSON implements json.Marshaler
func (r Result[T]) MarshalJSON() ([]byte, error) {
	if r.Failure != nil {
		return json.Marshal(r.Failure)
	}
	return json.Marshal(r.Value)
}

// UnmarshalJSON implements json.Unmarshaler
func (r *Result[T]) UnmarshalJSON(data []byte) error {
	r.Failure = nil
	if isErrorShaped(data) {
		var failure ProviderError
		if err := json.Unmarshal(data, &failure); err != nil {
			return fmt.Errorf("failed to decode provider error: %w", err)
		}
		r.Failure = &failure
		return nil
	}
	return json.Unmarshal(data, &r.Value)
}

// isErrorShaped reports whether data is an object with a numeric "code" member
func isErrorShaped(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return false
	}
	var probe struct {
		Code json.RawMessage `json:"code"`
	}
	if err := json.Unmarshal(trimmed, &probe); err != nil || len(probe.Code) == 0 {
		return false
	}
	c := probe.Code[0]
	return c == '-' || (c >= '0' && c <= '9')
}

// SignedTransaction holds the BCS bytes of a signed transaction.
// It encodes as 0x-prefixed hex and decodes from hex or from a JSON array of
// byte values (the serialized form of a Uint8Array).
type SignedTransaction []byte

// MarshalJSON implements json.Marshaler
func (s SignedTransaction) MarshalJSON() ([]byte, error) {
	return json.Marshal(hexutil.Encode(s))
}

// UnmarshalJSON implements json.Unmarshaler
func (s *SignedTransaction) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var values []uint8
		if err := json.Unmarshal(trimmed, &values); err != nil {
			return fmt.Errorf("invalid signed transaction bytes: %w", err)
		}
		*s = values
		return nil
	}
	var b hexutil.Bytes
	if err := json.Unmarshal(trimmed, &b); err != nil {
		return fmt.Errorf("invalid signed transaction hex: %w", err)
	}
	*s = SignedTransaction(b)
	return nil
}
