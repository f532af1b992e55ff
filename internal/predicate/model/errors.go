package model

import "errors"

// ErrFeeInsufficient is returned when the ledger rejects a submission because its max fee
// does not cover the actual cost. The transaction must be prepared again.
var ErrFeeInsufficient = errors.New("transaction fee insufficient")
