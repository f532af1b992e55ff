package service

import "time"

const (
	// defaultSafetyMargin is added on top of a raised max fee to absorb estimation slack.
	defaultSafetyMargin uint64 = 10

	journalBatchSize     = 500
	journalFlushInterval = 5 * time.Second
	journalFlushRPS      = 10
)
