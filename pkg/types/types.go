package types

// AddressInfo is the account shape the extension reports on connect, account
// queries and account change notifications
type AddressInfo struct {
	Address   string `json:"address"`
	PublicKey string `json:"publicKey"`
	AuthKey   string `json:"authKey,omitempty"`
}

// TransactionPayload represents an Aptos entry function payload
// Matches Types.TransactionPayload of the Aptos REST API
type TransactionPayload struct {
	Type          string   `json:"type"`     // e.g. "entry_function_payload"
	Function      string   `json:"function"` // e.g. "0x1::coin::transfer"
	TypeArguments []string `json:"type_arguments"`
	Arguments     []any    `json:"arguments"`
}

// TransactionOptions are optional overrides forwarded to the extension untouched
type TransactionOptions struct {
	Sender                  string `json:"sender,omitempty"`
	SequenceNumber          string `json:"sequence_number,omitempty"`
	MaxGasAmount            string `json:"max_gas_amount,omitempty"`
	GasUnitPrice            string `json:"gas_unit_price,omitempty"`
	ExpirationTimestampSecs string `json:"expiration_timestamp_secs,omitempty"`
}

// PendingTransaction is returned by the extension after a successful submission
type PendingTransaction struct {
	Hash string `json:"hash"` // hex encoded transaction hash
}

// SignMessagePayload represents a message signing request
// The boolean fields ask the extension to include the value in the signed message
type SignMessagePayload struct {
	Address     bool   `json:"address,omitempty"`
	Application bool   `json:"application,omitempty"`
	ChainID     bool   `json:"chainId,omitempty"`
	Message     string `json:"message"`
	Nonce       string `json:"nonce"`
}

// SignMessageResponse represents the extension's reply to a signing request
type SignMessageResponse struct {
	Address     string `json:"address,omitempty"`
	Application string `json:"application,omitempty"`
	ChainID     int    `json:"chainId,omitempty"`
	FullMessage string `json:"fullMessage"`
	Message     string `json:"message"`
	Nonce       string `json:"nonce"`
	Prefix      string `json:"prefix"` // always "APTOS"
	Signature   string `json:"signature"`
	Bitmap      []byte `json:"bitmap,omitempty"`
}

// NetworkChange is the payload of a network change notification
type NetworkChange struct {
	NetworkName string `json:"networkName"`
}
