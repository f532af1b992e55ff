package model

import "time"

// Assembly records the fee decision made while preparing a transaction.
type Assembly struct {
	Network          Network
	TxID             TxID
	ChainID          uint64
	PredicateAddress Address
	PredicateInputs  uint32
	PredicateGas     uint64
	GasPrice         uint64
	GasPriceFactor   uint64
	QuotedMaxFee     uint64
	MaxFee           uint64
	FeeRaised        bool
	CreatedAt        time.Time
}
