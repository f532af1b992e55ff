package service

import "errors"

// ErrEstimationFailed is returned when the disposable estimation transaction could not be
// executed or its predicate input could not be located in the ledger's response.
var ErrEstimationFailed = errors.New("predicate gas estimation failed")

// ErrInvalidRequest is returned when a preparation request is rejected before any ledger call.
var ErrInvalidRequest = errors.New("invalid preparation request")
