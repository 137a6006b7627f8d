package walletadapter

import "errors"

// ErrorKind names a failure class of the adapter contract
type ErrorKind string

const (
	KindNotReady             ErrorKind = "WalletNotReadyError"
	KindNotConnected         ErrorKind = "WalletNotConnectedError"
	KindGetNetwork           ErrorKind = "WalletGetNetworkError"
	KindDisconnection        ErrorKind = "WalletDisconnectionError"
	KindSignTransaction      ErrorKind = "WalletSignTransactionError"
	KindSignAndSubmitMessage ErrorKind = "WalletSignAndSubmitMessageError"
	KindSignMessage          ErrorKind = "WalletSignMessageError"
	KindAccountChange        ErrorKind = "WalletAccountChangeError"
	KindNetworkChange        ErrorKind = "WalletNetworkChangeError"
)

var (
	// ErrNotReady is returned when connecting while the extension is not detected
	ErrNotReady = &Error{Kind: KindNotReady}

	// ErrNotConnected is returned by operations that need an active session
	ErrNotConnected = &Error{Kind: KindNotConnected}
)

// Error is an operation failure with the underlying reason attached
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

// NewError wraps err into an Error of the given kind, carrying err's message
func NewError(kind ErrorKind, err error) *Error {
	e := &Error{Kind: kind, Err: err}
	if err != nil {
		e.Message = err.Error()
	}
	return e
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so errors.Is(err, ErrNotConnected)
// holds for every not-connected failure regardless of message
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// IsKind reports whether err or anything it wraps is an *Error of kind
func IsKind(err error, kind ErrorKind) bool {
	return errors.Is(err, &Error{Kind: kind})
}
