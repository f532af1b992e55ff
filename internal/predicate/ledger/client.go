// Package ledger talks to the ledger node's JSON-RPC endpoint for fee quotes, predicate
// estimation, dependency resolution and submission.
package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/luisburigo/fuel-predicate-example/internal/clock"
	"github.com/luisburigo/fuel-predicate-example/internal/predicate/model"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// Client implements the ledger transaction service over JSON-RPC.
type Client struct {
	rpc         RPCClient
	limiter     ratelimit.Limiter
	logger      *zap.Logger
	sleep       func(context.Context, time.Duration) error
	pollBackoff clock.Backoff
}

// NewClient builds a Client. rps <= 0 disables request throttling.
func NewClient(rpc RPCClient, rps int, logger *zap.Logger) (*Client, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if rpc == nil {
		return nil, errors.New("ledger rpc client is required")
	}
	limiter := ratelimit.NewUnlimited()
	if rps > 0 {
		limiter = ratelimit.New(rps)
	}
	return &Client{
		rpc:         rpc,
		limiter:     limiter,
		logger:      logger,
		sleep:       clock.SleepWithContext,
		pollBackoff: clock.Backoff{Initial: defaultPollInterval, Max: maxPollInterval},
	}, nil
}

// ChainID returns the node's chain identifier.
func (c *Client) ChainID(ctx context.Context) (uint64, error) {
	var chainID uint64
	if err := c.call(ctx, methodChainID, &chainID); err != nil {
		return 0, err
	}
	return chainID, nil
}

// GasConfig returns the node's gas pricing parameters.
func (c *Client) GasConfig(ctx context.Context) (model.GasConfig, error) {
	var cfg model.GasConfig
	if err := c.call(ctx, methodGasConfig, &cfg); err != nil {
		return model.GasConfig{}, err
	}
	if cfg.GasPriceFactor == 0 {
		return model.GasConfig{}, errors.New("gas config: gas price factor is zero")
	}
	return cfg, nil
}

type feeEstimate struct {
	GasPrice uint64 `json:"gas_price"`
	MaxFee   uint64 `json:"max_fee"`
	MinFee   uint64 `json:"min_fee"`
}

// EstimateTxGasAndFee quotes max fee and gas price for draft as it stands.
func (c *Client) EstimateTxGasAndFee(ctx context.Context, draft *model.TransactionDraft) (model.GasQuote, error) {
	var est feeEstimate
	if err := c.call(ctx, methodEstimateTxGasAndFee, &est, draft); err != nil {
		return model.GasQuote{}, err
	}
	return model.GasQuote{GasPrice: est.GasPrice, MaxFee: est.MaxFee}, nil
}

// EstimatePredicates dry-runs the predicates on draft and returns a copy with the gas each
// predicate input consumed.
func (c *Client) EstimatePredicates(ctx context.Context, draft *model.TransactionDraft) (*model.TransactionDraft, error) {
	var out model.TransactionDraft
	if err := c.call(ctx, methodEstimatePredicates, &out, draft); err != nil {
		return nil, err
	}
	return &out, nil
}

// EstimateDependencies returns draft with missing inputs and outputs resolved by the node.
func (c *Client) EstimateDependencies(ctx context.Context, draft *model.TransactionDraft) (*model.TransactionDraft, error) {
	var out model.TransactionDraft
	if err := c.call(ctx, methodEstimateDependencies, &out, draft); err != nil {
		return nil, err
	}
	return &out, nil
}

// TransactionID derives draft's identifier for chainID.
func (c *Client) TransactionID(draft *model.TransactionDraft, chainID uint64) (model.TxID, error) {
	return draft.ID(chainID)
}

type submitResult struct {
	ID model.TxID `json:"id"`
}

// Submit sends draft and polls its status until it is final or ctx is done.
func (c *Client) Submit(ctx context.Context, draft *model.TransactionDraft) (*model.Receipt, error) {
	var res submitResult
	if err := c.call(ctx, methodSubmit, &res, draft); err != nil {
		return nil, err
	}
	logger := c.logger.With(zap.Stringer("tx_id", res.ID))
	logger.Info("transaction submitted")

	for attempt := 0; ; attempt++ {
		var receipt model.Receipt
		if err := c.call(ctx, methodStatus, &receipt, res.ID); err != nil {
			return nil, err
		}
		if receipt.Status.Final() {
			receipt.ID = res.ID
			logger.Info("transaction final", zap.String("status", string(receipt.Status)), zap.Uint64("block_height", receipt.BlockHeight))
			return &receipt, nil
		}
		logger.Debug("transaction pending", zap.String("status", string(receipt.Status)))
		if err := c.sleep(ctx, c.pollBackoff.Delay(attempt)); err != nil {
			return nil, err
		}
	}
}

func (c *Client) call(ctx context.Context, method string, result any, params ...any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	raw := make([]json.RawMessage, 0, len(params))
	for _, p := range params {
		b, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("%s: encode params: %w", method, err)
		}
		raw = append(raw, b)
	}

	c.limiter.Take()
	res, err := c.rpc.RawRequest(method, raw)
	if err != nil {
		return mapError(method, err)
	}
	if err := json.Unmarshal(res, result); err != nil {
		return fmt.Errorf("%s: decode result: %w", method, err)
	}
	return nil
}

func mapError(method string, err error) error {
	var rpcErr *btcjson.RPCError
	if errors.As(err, &rpcErr) && isInsufficientFee(rpcErr) {
		return fmt.Errorf("%s: %w: %s", method, model.ErrFeeInsufficient, rpcErr.Message)
	}
	return fmt.Errorf("%s: %w", method, err)
}

func isInsufficientFee(err *btcjson.RPCError) bool {
	return err.Code == rpcCodeInsufficientFee || strings.Contains(err.Message, "InsufficientMaxFee")
}
