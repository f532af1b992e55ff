package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/luisburigo/fuel-predicate-example/internal/predicate/model"
	"github.com/luisburigo/fuel-predicate-example/internal/predicate/witness"
	"github.com/luisburigo/fuel-predicate-example/pkg/safe"
	"go.uber.org/zap"
)

// PredicateGasEstimator measures the gas a predicate consumes by running a disposable
// transaction, signed with throwaway keys, through the ledger's predicate estimation.
type PredicateGasEstimator struct {
	ledger  LedgerService
	keys    KeyGenerator
	encoder Encoder
	metrics GasEstimatorMetrics
	logger  *zap.Logger
}

// NewPredicateGasEstimator builds a PredicateGasEstimator.
func NewPredicateGasEstimator(
	ledger LedgerService,
	keys KeyGenerator,
	encoder Encoder,
	metrics GasEstimatorMetrics,
	logger *zap.Logger,
) (*PredicateGasEstimator, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if ledger == nil {
		return nil, errors.New("ledger service is required")
	}
	if keys == nil {
		return nil, errors.New("key generator is required")
	}
	if encoder == nil {
		return nil, errors.New("signature encoder is required")
	}
	if metrics == nil {
		return nil, errors.New("gas estimator metrics is required")
	}
	return &PredicateGasEstimator{
		ledger:  ledger,
		keys:    keys,
		encoder: encoder,
		metrics: metrics,
		logger:  logger,
	}, nil
}

// Estimate returns the gas one input spent by predicate consumes when unlocked by one
// signature per scheme. The real predicate and any draft it is used with are never touched.
func (e *PredicateGasEstimator) Estimate(ctx context.Context, predicate Predicate, schemes []model.SignatureType) (gas uint64, err error) {
	started := time.Now()
	defer func() {
		e.metrics.ObserveEstimate(err, gas, started)
	}()

	if len(schemes) == 0 {
		return 0, errors.New("estimate predicate gas: no signature schemes")
	}

	signers := make([]Signer, 0, len(schemes))
	addresses := make([]model.Address, 0, len(schemes))
	for _, scheme := range schemes {
		s, err := e.keys.Generate(scheme)
		if err != nil {
			return 0, fmt.Errorf("generate %s key: %w", scheme, err)
		}
		signers = append(signers, s)
		addresses = append(addresses, s.Address())
	}

	disposable, err := predicate.Derive(addresses)
	if err != nil {
		return 0, fmt.Errorf("derive disposable predicate: %w", err)
	}

	draft := syntheticDraft(disposable.Address())
	disposable.Populate(draft)

	slots := witness.Allocate(draft.Witnesses, len(signers))
	if err := witness.Reserve(draft, slots); err != nil {
		return 0, err
	}
	first, err := safe.Uint16(slots[0].Index())
	if err != nil {
		return 0, err
	}
	for i := range draft.Inputs {
		if draft.Inputs[i].IsPredicate() {
			draft.Inputs[i].WitnessIndex = first
		}
	}

	chainID, err := e.ledger.ChainID(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrEstimationFailed, err)
	}
	id, err := e.ledger.TransactionID(draft, chainID)
	if err != nil {
		return 0, err
	}
	msg := id.SigningMessage()
	for i, s := range signers {
		raw, err := s.SignMessage(msg)
		if err != nil {
			return 0, fmt.Errorf("sign with %s key: %w", s.Scheme(), err)
		}
		sig, err := e.encoder.Encode(model.SignatureInput{Type: s.Scheme(), Signature: raw})
		if err != nil {
			return 0, err
		}
		if err := witness.Fill(draft, slots[i], sig); err != nil {
			return 0, err
		}
	}

	estimated, err := e.ledger.EstimatePredicates(ctx, draft)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrEstimationFailed, err)
	}
	if estimated == nil {
		return 0, fmt.Errorf("%w: empty estimation result", ErrEstimationFailed)
	}
	for _, in := range estimated.Inputs {
		if in.IsPredicate() && in.Owner == disposable.Address() {
			e.logger.Debug("predicate gas estimated",
				zap.Uint64("gas", in.PredicateGasUsed),
				zap.Int("schemes", len(schemes)),
			)
			return in.PredicateGasUsed, nil
		}
	}
	return 0, fmt.Errorf("%w: predicate input not found in estimation result", ErrEstimationFailed)
}

// syntheticDraft is a minimal transaction with a single zero-valued coin owned by owner.
func syntheticDraft(owner model.Address) *model.TransactionDraft {
	draft := &model.TransactionDraft{
		Inputs: []model.Input{{
			Type:  model.InputCoin,
			Owner: owner,
		}},
	}
	draft.Normalize()
	return draft
}
