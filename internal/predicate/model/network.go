// Package model defines domain models for predicate transaction preparation.
package model

// Network names the ledger network a service is bound to; it labels logs, metrics and journal rows.
type Network string

var (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
	Local   Network = "local"
)
