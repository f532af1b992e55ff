package service

import (
	"context"
	"time"

	"github.com/luisburigo/fuel-predicate-example/internal/predicate/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	LedgerService interface {
		ChainID(ctx context.Context) (uint64, error)
		GasConfig(ctx context.Context) (model.GasConfig, error)
		EstimateTxGasAndFee(ctx context.Context, draft *model.TransactionDraft) (model.GasQuote, error)
		EstimatePredicates(ctx context.Context, draft *model.TransactionDraft) (*model.TransactionDraft, error)
		EstimateDependencies(ctx context.Context, draft *model.TransactionDraft) (*model.TransactionDraft, error)
		TransactionID(draft *model.TransactionDraft, chainID uint64) (model.TxID, error)
		Submit(ctx context.Context, draft *model.TransactionDraft) (*model.Receipt, error)
	}
	Predicate interface {
		Address() model.Address
		Populate(draft *model.TransactionDraft)
		Derive(signers []model.Address) (model.Predicate, error)
	}
	Signer interface {
		Scheme() model.SignatureType
		Address() model.Address
		SignMessage(msg []byte) ([]byte, error)
	}
	KeyGenerator interface {
		Generate(scheme model.SignatureType) (model.Signer, error)
	}
	Encoder interface {
		Encode(in model.SignatureInput) ([]byte, error)
		Supports(tag model.SignatureType) bool
	}
	GasEstimator interface {
		Estimate(ctx context.Context, predicate Predicate, schemes []model.SignatureType) (uint64, error)
	}
	Assembler interface {
		Prepare(ctx context.Context, draft *model.TransactionDraft, predicate Predicate, schemes []model.SignatureType) (*Prepared, error)
	}
	AssemblyJournal interface {
		Record(ctx context.Context, assembly model.Assembly) error
	}
	JournalRepository interface {
		InsertAssemblies(ctx context.Context, assemblies []model.Assembly) error
	}

	GasEstimatorMetrics interface {
		ObserveEstimate(err error, gas uint64, started time.Time)
	}
	FeeAssemblerMetrics interface {
		ObservePrepare(err error, started time.Time)
		ObserveFeeDecision(raised bool)
	}
	TransferMetrics interface {
		ObserveExecute(status model.TxStatus, err error, started time.Time)
	}
)
