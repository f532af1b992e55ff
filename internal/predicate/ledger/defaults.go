package ledger

import "time"

const (
	methodChainID              = "chain_id"
	methodGasConfig            = "gas_config"
	methodEstimateTxGasAndFee  = "estimate_tx_gas_and_fee"
	methodEstimatePredicates   = "estimate_predicates"
	methodEstimateDependencies = "estimate_tx_dependencies"
	methodSubmit               = "submit_tx"
	methodStatus               = "tx_status"

	// rpcCodeInsufficientFee is the node's error code for a max fee below the actual cost.
	rpcCodeInsufficientFee = -32010

	defaultPollInterval = time.Second
	maxPollInterval     = 10 * time.Second
)
