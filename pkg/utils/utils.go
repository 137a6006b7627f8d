package utils

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// AddressLength is the byte length of an Aptos account address
const AddressLength = 32

// ValidateBridgeURL validates that a bridge endpoint is safe to dial.
// Remote endpoints must use https or wss; plain http and ws are only allowed
// on loopback for local bridges. Absolute paths are IPC sockets.
func ValidateBridgeURL(rawURL string) error {
	if strings.HasPrefix(rawURL, "/") || strings.HasPrefix(rawURL, `\\.\pipe\`) {
		return nil
	}

	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return fmt.Errorf("invalid bridge URL: %q", rawURL)
	}
	if u.User != nil {
		return fmt.Errorf("bridge URL must not carry credentials: %s", u.Redacted())
	}

	switch u.Scheme {
	case "https", "wss":
		return nil
	case "http", "ws":
		if isLoopbackHost(u.Hostname()) {
			return nil
		}
	}
	return fmt.Errorf("bridge URL must use HTTPS or WSS: %s", rawURL)
}

func isLoopbackHost(host string) bool {
	return host == "localhost" || host == "127.0.0.1" || host == "::1"
}

// NormalizeAddress returns the long form of an Aptos address: 0x followed by
// 64 lowercase hex characters. Short forms such as "0x1" are left-padded.
func NormalizeAddress(address string) (string, error) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(address, "0x"), "0X")
	if trimmed == "" || len(trimmed) > AddressLength*2 {
		return "", fmt.Errorf("invalid address length: %q", address)
	}

	padded := strings.Repeat("0", AddressLength*2-len(trimmed)) + trimmed
	raw, err := hexutil.Decode("0x" + padded)
	if err != nil {
		return "", fmt.Errorf("invalid address %q: %w", address, err)
	}
	return hexutil.Encode(raw), nil
}

// ShortAddress abbreviates an address for display (e.g., 0x1234…cdef)
func ShortAddress(address string) string {
	if len(address) <= 12 {
		return address
	}
	return address[:6] + "…" + address[len(address)-4:]
}

// NormalizeHash validates a hex encoded transaction hash and returns it lowercased
func NormalizeHash(hash string) (string, error) {
	raw, err := hexutil.Decode(strings.ToLower(hash))
	if err != nil {
		return "", fmt.Errorf("invalid transaction hash %q: %w", hash, err)
	}
	if len(raw) != 32 {
		return "", fmt.Errorf("invalid transaction hash length: %d bytes", len(raw))
	}
	return hexutil.Encode(raw), nil
}

// GetCurrentTimeNanos returns the current time in Unix nanoseconds
func GetCurrentTimeNanos() int64 {
	return time.Now().UnixNano()
}

// NewNonce returns a nonce for message signing requests
func NewNonce() string {
	return strconv.FormatInt(GetCurrentTimeNanos(), 10)
}
