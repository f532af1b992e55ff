package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/luisburigo/fuel-predicate-example/internal/predicate/model"
	"go.uber.org/zap"
)

// TransferService runs the full construct, estimate, sign and submit flow for a draft spent
// by a predicate.
type TransferService struct {
	assembler Assembler
	signer    *TransactionSigner
	ledger    LedgerService
	metrics   TransferMetrics
	logger    *zap.Logger
}

// NewTransferService builds a TransferService.
func NewTransferService(
	assembler Assembler,
	signer *TransactionSigner,
	ledger LedgerService,
	metrics TransferMetrics,
	logger *zap.Logger,
) (*TransferService, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if assembler == nil {
		return nil, errors.New("assembler is required")
	}
	if signer == nil {
		return nil, errors.New("transaction signer is required")
	}
	if ledger == nil {
		return nil, errors.New("ledger service is required")
	}
	if metrics == nil {
		return nil, errors.New("transfer metrics is required")
	}
	return &TransferService{
		assembler: assembler,
		signer:    signer,
		ledger:    ledger,
		metrics:   metrics,
		logger:    logger,
	}, nil
}

// Execute prepares draft for the schemes of signers, signs it, records the real predicate
// gas on its inputs and submits it. A model.ErrFeeInsufficient rejection is returned as is;
// the caller is expected to prepare the draft again.
func (s *TransferService) Execute(
	ctx context.Context,
	draft *model.TransactionDraft,
	predicate Predicate,
	signers []Signer,
) (receipt *model.Receipt, err error) {
	started := time.Now()
	defer func() {
		var status model.TxStatus
		if receipt != nil {
			status = receipt.Status
		}
		s.metrics.ObserveExecute(status, err, started)
	}()

	schemes := make([]model.SignatureType, 0, len(signers))
	for _, signer := range signers {
		schemes = append(schemes, signer.Scheme())
	}

	prepared, err := s.assembler.Prepare(ctx, draft, predicate, schemes)
	if err != nil {
		return nil, fmt.Errorf("prepare: %w", err)
	}
	logger := s.logger.With(zap.Stringer("tx_id", prepared.ID))

	if err := s.signer.Sign(prepared, signers); err != nil {
		return nil, fmt.Errorf("sign: %w", err)
	}

	if err := s.recordPredicateGas(ctx, prepared.Draft); err != nil {
		return nil, err
	}

	receipt, err = s.ledger.Submit(ctx, prepared.Draft)
	if err != nil {
		if errors.Is(err, model.ErrFeeInsufficient) {
			logger.Warn("ledger rejected max fee", zap.Uint64("max_fee", prepared.Draft.MaxFee), zap.Error(err))
		}
		return nil, fmt.Errorf("submit: %w", err)
	}
	logger.Info("transfer finished",
		zap.String("status", string(receipt.Status)),
		zap.Uint64("block_height", receipt.BlockHeight),
		zap.Uint64("total_fee", receipt.TotalFee),
	)
	return receipt, nil
}

// recordPredicateGas dry-runs the signed predicates and copies the gas they used onto the
// draft's inputs. The transaction identifier does not cover these fields.
func (s *TransferService) recordPredicateGas(ctx context.Context, draft *model.TransactionDraft) error {
	estimated, err := s.ledger.EstimatePredicates(ctx, draft)
	if err != nil {
		return fmt.Errorf("estimate predicates: %w", err)
	}
	if estimated == nil || len(estimated.Inputs) != len(draft.Inputs) {
		return errors.New("estimate predicates: input count changed")
	}
	for i := range draft.Inputs {
		if draft.Inputs[i].IsPredicate() {
			draft.Inputs[i].PredicateGasUsed = estimated.Inputs[i].PredicateGasUsed
		}
	}
	return nil
}
