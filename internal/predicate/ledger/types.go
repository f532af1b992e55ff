package ledger

import "encoding/json"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// RPCClient sends raw JSON-RPC requests to the ledger node.
	RPCClient interface {
		RawRequest(method string, params []json.RawMessage) (json.RawMessage, error)
	}
)
