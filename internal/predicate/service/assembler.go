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

// Prepared is a draft whose shape and max fee are final, waiting for its real signatures.
type Prepared struct {
	Draft        *model.TransactionDraft `json:"transaction"`
	ID           model.TxID              `json:"id"`
	ChainID      uint64                  `json:"chain_id"`
	Schemes      []model.SignatureType   `json:"schemes"`
	Slots        []witness.Slot          `json:"-"`
	PredicateGas uint64                  `json:"predicate_gas"`
	Quote        model.GasQuote          `json:"quote"`
	FeeRaised    bool                    `json:"fee_raised"`
}

// SlotIndexes returns the witness indexes reserved for each scheme, in scheme order.
func (p *Prepared) SlotIndexes() []int {
	out := make([]int, len(p.Slots))
	for i, s := range p.Slots {
		out[i] = s.Index()
	}
	return out
}

// AssemblerOption configures a FeeAssembler.
type AssemblerOption func(*FeeAssembler)

// WithZeroGasFallback makes the assembler assume zero predicate gas when estimation fails
// instead of failing the preparation.
func WithZeroGasFallback() AssemblerOption {
	return func(a *FeeAssembler) { a.zeroGasFallback = true }
}

// WithJournal records every successful preparation.
func WithJournal(journal AssemblyJournal) AssemblerOption {
	return func(a *FeeAssembler) { a.journal = journal }
}

// WithSafetyMargin overrides the amount added on top of a raised max fee.
func WithSafetyMargin(margin uint64) AssemblerOption {
	return func(a *FeeAssembler) { a.safetyMargin = margin }
}

// FeeAssembler turns a caller-built draft into one whose max fee covers execution, witness
// bytes and predicate verification before any real signature exists.
type FeeAssembler struct {
	ledger          LedgerService
	estimator       GasEstimator
	encoder         Encoder
	metrics         FeeAssemblerMetrics
	journal         AssemblyJournal
	logger          *zap.Logger
	network         model.Network
	safetyMargin    uint64
	zeroGasFallback bool
	now             func() time.Time
}

// NewFeeAssembler builds a FeeAssembler.
func NewFeeAssembler(
	ledger LedgerService,
	estimator GasEstimator,
	encoder Encoder,
	metrics FeeAssemblerMetrics,
	network model.Network,
	logger *zap.Logger,
	opts ...AssemblerOption,
) (*FeeAssembler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if ledger == nil {
		return nil, errors.New("ledger service is required")
	}
	if estimator == nil {
		return nil, errors.New("gas estimator is required")
	}
	if encoder == nil {
		return nil, errors.New("signature encoder is required")
	}
	if metrics == nil {
		return nil, errors.New("fee assembler metrics is required")
	}
	a := &FeeAssembler{
		ledger:       ledger,
		estimator:    estimator,
		encoder:      encoder,
		metrics:      metrics,
		logger:       logger.With(zap.String("network", string(network))),
		network:      network,
		safetyMargin: defaultSafetyMargin,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Prepare reserves one signature slot per scheme, prices the draft with those slots in
// place and raises its max fee when the quote plus predicate cost exceeds it. draft is
// updated only when preparation succeeds.
func (a *FeeAssembler) Prepare(
	ctx context.Context,
	draft *model.TransactionDraft,
	predicate Predicate,
	schemes []model.SignatureType,
) (prepared *Prepared, err error) {
	started := time.Now()
	defer func() {
		a.metrics.ObservePrepare(err, started)
	}()

	if draft == nil {
		return nil, fmt.Errorf("%w: draft is required", ErrInvalidRequest)
	}
	if predicate == nil {
		return nil, fmt.Errorf("%w: predicate is required", ErrInvalidRequest)
	}
	if err := a.validateSchemes(schemes); err != nil {
		return nil, err
	}

	work := draft.Clone()
	work.Normalize()
	budget := work.MaxFee
	owner := predicate.Address()
	logger := a.logger.With(zap.Stringer("predicate", owner))

	perPredicate, err := a.estimatePredicateGas(ctx, predicate, schemes, logger)
	if err != nil {
		return nil, err
	}

	slots := witness.Allocate(work.Witnesses, len(schemes))
	first, err := safe.Uint16(slots[0].Index())
	if err != nil {
		return nil, fmt.Errorf("witness index: %w", err)
	}

	predicate.Populate(work)
	var predicateInputs int
	var predicateGas uint64
	for i := range work.Inputs {
		in := &work.Inputs[i]
		if !in.IsPredicate() || in.Owner != owner {
			continue
		}
		in.WitnessIndex = first
		predicateInputs++
		if predicateGas, err = model.AddFee(predicateGas, perPredicate); err != nil {
			return nil, fmt.Errorf("predicate gas: %w", err)
		}
	}
	if predicateInputs == 0 {
		logger.Warn("draft has no inputs owned by the predicate")
	}
	journaledInputs, err := safe.Uint32(predicateInputs)
	if err != nil {
		return nil, fmt.Errorf("predicate inputs: %w", err)
	}

	if err := witness.Reserve(work, slots); err != nil {
		return nil, err
	}

	cfg, err := a.ledger.GasConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("gas config: %w", err)
	}
	quote, err := a.ledger.EstimateTxGasAndFee(ctx, work)
	if err != nil {
		return nil, fmt.Errorf("estimate fee: %w", err)
	}
	quote.PredicateGasUsed = predicateGas
	quote.GasPriceFactor = cfg.GasPriceFactor

	feeDiff, err := model.CalculateGasFee(predicateGas, quote.GasPrice, cfg.GasPriceFactor)
	if err != nil {
		return nil, fmt.Errorf("predicate fee: %w", err)
	}
	feeWithMargin, err := model.AddFee(quote.MaxFee, feeDiff)
	if err != nil {
		return nil, err
	}
	raised := feeWithMargin > budget
	if raised {
		if work.MaxFee, err = model.AddFee(feeWithMargin, a.safetyMargin); err != nil {
			return nil, err
		}
	}
	a.metrics.ObserveFeeDecision(raised)
	logger.Info("fee assembled",
		zap.Uint64("quoted_max_fee", quote.MaxFee),
		zap.Uint64("predicate_fee_diff", feeDiff),
		zap.Uint64("budget", budget),
		zap.Uint64("max_fee", work.MaxFee),
		zap.Bool("raised", raised),
	)

	resolved, err := a.ledger.EstimateDependencies(ctx, work)
	if err != nil {
		return nil, fmt.Errorf("estimate dependencies: %w", err)
	}
	if resolved == nil {
		return nil, errors.New("estimate dependencies: empty result")
	}
	resolved.Normalize()
	if resolved.MaxFee < work.MaxFee {
		resolved.MaxFee = work.MaxFee
	}
	if err := witness.Reserve(resolved, slots); err != nil {
		return nil, fmt.Errorf("after dependency estimation: %w", err)
	}

	chainID, err := a.ledger.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("chain id: %w", err)
	}
	id, err := a.ledger.TransactionID(resolved, chainID)
	if err != nil {
		return nil, fmt.Errorf("transaction id: %w", err)
	}

	*draft = *resolved
	prepared = &Prepared{
		Draft:        draft,
		ID:           id,
		ChainID:      chainID,
		Schemes:      append([]model.SignatureType(nil), schemes...),
		Slots:        slots,
		PredicateGas: predicateGas,
		Quote:        quote,
		FeeRaised:    raised,
	}
	a.record(ctx, prepared, owner, journaledInputs, logger)
	return prepared, nil
}

func (a *FeeAssembler) validateSchemes(schemes []model.SignatureType) error {
	if len(schemes) == 0 {
		return fmt.Errorf("%w: at least one signature scheme is required", ErrInvalidRequest)
	}
	seen := make(map[model.SignatureType]struct{}, len(schemes))
	for _, scheme := range schemes {
		if !a.encoder.Supports(scheme) {
			return fmt.Errorf("%w: scheme %s has no registered coder", ErrInvalidRequest, scheme)
		}
		if _, ok := seen[scheme]; ok {
			return fmt.Errorf("%w: scheme %s requested twice", ErrInvalidRequest, scheme)
		}
		seen[scheme] = struct{}{}
	}
	return nil
}

func (a *FeeAssembler) estimatePredicateGas(
	ctx context.Context,
	predicate Predicate,
	schemes []model.SignatureType,
	logger *zap.Logger,
) (uint64, error) {
	gas, err := a.estimator.Estimate(ctx, predicate, schemes)
	if err == nil {
		return gas, nil
	}
	if a.zeroGasFallback && errors.Is(err, ErrEstimationFailed) {
		logger.Warn("predicate gas estimation failed, assuming zero", zap.Error(err))
		return 0, nil
	}
	return 0, err
}

func (a *FeeAssembler) record(ctx context.Context, p *Prepared, owner model.Address, inputs uint32, logger *zap.Logger) {
	if a.journal == nil {
		return
	}
	err := a.journal.Record(ctx, model.Assembly{
		Network:          a.network,
		TxID:             p.ID,
		ChainID:          p.ChainID,
		PredicateAddress: owner,
		PredicateInputs:  inputs,
		PredicateGas:     p.PredicateGas,
		GasPrice:         p.Quote.GasPrice,
		GasPriceFactor:   p.Quote.GasPriceFactor,
		QuotedMaxFee:     p.Quote.MaxFee,
		MaxFee:           p.Draft.MaxFee,
		FeeRaised:        p.FeeRaised,
		CreatedAt:        a.now().UTC(),
	})
	if err != nil {
		logger.Warn("assembly not journaled", zap.Stringer("tx_id", p.ID), zap.Error(err))
	}
}
