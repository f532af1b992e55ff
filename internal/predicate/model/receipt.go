package model

// TxStatus is the final or pending status reported for a submitted transaction.
type TxStatus string

var (
	TxSubmitted  TxStatus = "submitted"
	TxSuccess    TxStatus = "success"
	TxFailure    TxStatus = "failure"
	TxSqueezeOut TxStatus = "squeezed_out"
)

// Final reports whether the status will not change anymore.
func (s TxStatus) Final() bool {
	return s == TxSuccess || s == TxFailure || s == TxSqueezeOut
}

// Receipt describes the outcome of a submitted transaction.
type Receipt struct {
	ID          TxID     `json:"id"`
	Status      TxStatus `json:"status"`
	BlockHeight uint64   `json:"block_height"`
	TotalGas    uint64   `json:"total_gas"`
	TotalFee    uint64   `json:"total_fee"`
	Reason      string   `json:"reason,omitempty"`
}
