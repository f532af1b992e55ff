package service

import (
	"context"
	"errors"

	"github.com/luisburigo/fuel-predicate-example/internal/predicate/model"
	"github.com/luisburigo/fuel-predicate-example/pkg/batcher"
	"go.uber.org/zap"
)

// Journal buffers assembly records and writes them to the repository in batches.
type Journal struct {
	batcher *batcher.Batcher[model.Assembly]
}

// NewJournal builds a Journal. Start must be called before records are flushed.
func NewJournal(repo JournalRepository, logger *zap.Logger) (*Journal, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if repo == nil {
		return nil, errors.New("journal repository is required")
	}
	return &Journal{
		batcher: batcher.New[model.Assembly](
			logger.Named("journal"),
			repo.InsertAssemblies,
			journalBatchSize,
			journalFlushInterval,
			journalFlushRPS,
		),
	}, nil
}

// Start begins flushing in the background.
func (j *Journal) Start(ctx context.Context) {
	j.batcher.Start(ctx)
}

// Stop flushes pending records and waits for the flush to finish.
func (j *Journal) Stop() {
	j.batcher.Stop()
}

// Record queues an assembly for writing.
func (j *Journal) Record(ctx context.Context, assembly model.Assembly) error {
	return j.batcher.Add(ctx, assembly)
}
