package transport

import (
	"context"

	"github.com/luisburigo/fuel-predicate-example/internal/predicate/model"
	"github.com/luisburigo/fuel-predicate-example/internal/predicate/service"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Assembler interface {
		Prepare(ctx context.Context, draft *model.TransactionDraft, predicate service.Predicate, schemes []model.SignatureType) (*service.Prepared, error)
	}
)
