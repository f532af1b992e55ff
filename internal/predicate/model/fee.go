package model

import (
	"errors"
	"fmt"

	"github.com/holiman/uint256"
)

// GasConfig holds the ledger's gas pricing parameters.
type GasConfig struct {
	GasPriceFactor     uint64 `json:"gas_price_factor"`
	MaxGasPerPredicate uint64 `json:"max_gas_per_predicate"`
	MaxGasPerTx        uint64 `json:"max_gas_per_tx"`
}

// GasQuote is the ledger's cost estimate for a transaction plus the predicate gas the
// pipeline accounted for on top of it.
type GasQuote struct {
	PredicateGasUsed uint64 `json:"predicate_gas_used"`
	GasPrice         uint64 `json:"gas_price"`
	GasPriceFactor   uint64 `json:"gas_price_factor"`
	MaxFee           uint64 `json:"max_fee"`
}

// CalculateGasFee converts gas to fee: ceil(gas * gasPrice / priceFactor).
func CalculateGasFee(gas, gasPrice, priceFactor uint64) (uint64, error) {
	if priceFactor == 0 {
		return 0, errors.New("gas price factor must be positive")
	}
	product, overflow := new(uint256.Int).MulOverflow(uint256.NewInt(gas), uint256.NewInt(gasPrice))
	if overflow {
		return 0, fmt.Errorf("gas %d * price %d overflows", gas, gasPrice)
	}
	factor := uint256.NewInt(priceFactor)
	fee, rem := new(uint256.Int).DivMod(product, factor, new(uint256.Int))
	if !rem.IsZero() {
		fee.AddUint64(fee, 1)
	}
	if !fee.IsUint64() {
		return 0, fmt.Errorf("fee for gas %d exceeds uint64", gas)
	}
	return fee.Uint64(), nil
}

// AddFee sums fee components, failing on overflow.
func AddFee(fees ...uint64) (uint64, error) {
	total := new(uint256.Int)
	for _, f := range fees {
		total.AddUint64(total, f)
	}
	if !total.IsUint64() {
		return 0, errors.New("fee overflows uint64")
	}
	return total.Uint64(), nil
}
