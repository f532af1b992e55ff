// Package main prepares, signs and submits predicate-owned transaction drafts read from files.
package main

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/luisburigo/fuel-predicate-example/internal/metrics"
	rpcclient "github.com/luisburigo/fuel-predicate-example/internal/pkg/btcd/rpcclient"
	"github.com/luisburigo/fuel-predicate-example/internal/predicate/coder"
	"github.com/luisburigo/fuel-predicate-example/internal/predicate/ledger"
	"github.com/luisburigo/fuel-predicate-example/internal/predicate/model"
	"github.com/luisburigo/fuel-predicate-example/internal/predicate/program"
	"github.com/luisburigo/fuel-predicate-example/internal/predicate/repository/clickhouse"
	"github.com/luisburigo/fuel-predicate-example/internal/predicate/service"
	"github.com/luisburigo/fuel-predicate-example/internal/predicate/signer"
	"github.com/luisburigo/fuel-predicate-example/pkg/workerpool"
)

type config struct {
	Network          model.Network `long:"network" env:"PREDICATE_NETWORK" description:"ledger network name" required:"true"`
	RPCURL           string        `long:"rpc-url" env:"PREDICATE_RPC_URL" description:"ledger JSON-RPC URL" default:"http://127.0.0.1:4000/v1/rpc"`
	RPCUser          string        `long:"rpc-user" env:"PREDICATE_RPC_USER" description:"ledger RPC username"`
	RPCPassword      string        `long:"rpc-password" env:"PREDICATE_RPC_PASSWORD" description:"ledger RPC password"`
	RPCRPS           int           `long:"rpc-rps" env:"PREDICATE_RPC_RPS" description:"max ledger requests per second, 0 disables the limit" default:"20"`
	PredicateFile    string        `long:"predicate-file" env:"PREDICATE_BYTECODE_FILE" description:"compiled predicate bytecode" required:"true"`
	SignersOffset    int           `long:"signers-offset" env:"PREDICATE_SIGNERS_OFFSET" description:"byte offset of the signer address block in the bytecode" required:"true"`
	MaxSigners       int           `long:"max-signers" env:"PREDICATE_MAX_SIGNERS" description:"signer slots compiled into the predicate" default:"2"`
	PredicateSigners []string      `long:"predicate-signer" env:"PREDICATE_SIGNERS" env-delim:"," description:"predicate signer address, defaults to the addresses of the configured keys"`
	NativeKey        string        `long:"native-key" env:"PREDICATE_NATIVE_KEY" description:"hex secp256k1 secret for the native scheme"`
	EVMKey           string        `long:"evm-key" env:"PREDICATE_EVM_KEY" description:"hex secret for the evm scheme"`
	Drafts           []string      `long:"draft" description:"transaction draft file, .json or .cbor" required:"true"`
	Workers          int           `long:"workers" env:"PREDICATE_WORKERS" description:"drafts processed concurrently" default:"4"`
	PrepareOnly      bool          `long:"prepare-only" env:"PREDICATE_PREPARE_ONLY" description:"print prepared drafts without signing or submitting"`
	ZeroGasFallback  bool          `long:"zero-gas-fallback" env:"PREDICATE_ZERO_GAS_FALLBACK" description:"assume zero predicate gas when estimation fails"`
	SafetyMargin     uint64        `long:"safety-margin" env:"PREDICATE_SAFETY_MARGIN" description:"amount added on top of a raised max fee" default:"10"`
	ClickhouseDSN    string        `long:"clickhouse-dsn" env:"PREDICATE_CLICKHOUSE_DSN" description:"ClickHouse DSN for the fee journal, empty disables it"`
	MetricsAddr      string        `long:"metrics-addr" env:"PREDICATE_METRICS_ADDR" description:"address for metrics server" default:":2112"`
}

type result struct {
	Draft    string            `json:"draft"`
	Prepared *service.Prepared `json:"prepared,omitempty"`
	Receipt  *model.Receipt    `json:"receipt,omitempty"`
	Error    string            `json:"error,omitempty"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger.With(zap.String("network", string(cfg.Network)))); err != nil {
		logger.Fatal("predicate transfer failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	signers, err := loadSigners(cfg)
	if err != nil {
		return err
	}
	predicate, err := loadPredicate(cfg, signers)
	if err != nil {
		return err
	}
	logger.Info("predicate configured", zap.Stringer("address", predicate.Address()), zap.Int("signers", len(predicate.Signers())))

	rpcClient, err := rpcclient.NewHTTPClient(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword)
	if err != nil {
		return fmt.Errorf("init ledger rpc client: %w", err)
	}
	defer func() {
		rpcClient.Shutdown()
		rpcClient.WaitForShutdown()
	}()
	rpc := rpcclient.NewObservedClient(rpcClient, metrics.NewLedgerClient(cfg.Network))
	ledgerClient, err := ledger.NewClient(rpc, cfg.RPCRPS, logger.Named("ledger"))
	if err != nil {
		return err
	}

	encoder := coder.NewDefaultRegistry()
	estimator, err := service.NewPredicateGasEstimator(ledgerClient, signer.Generator{}, encoder, metrics.NewGasEstimator(cfg.Network), logger.Named("estimator"))
	if err != nil {
		return err
	}

	opts := []service.AssemblerOption{service.WithSafetyMargin(cfg.SafetyMargin)}
	if cfg.ZeroGasFallback {
		opts = append(opts, service.WithZeroGasFallback())
	}
	if cfg.ClickhouseDSN != "" {
		repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			return fmt.Errorf("init repository: %w", err)
		}
		defer func() {
			_ = repo.Close()
		}()
		journal, err := service.NewJournal(repo, logger)
		if err != nil {
			return err
		}
		journal.Start(ctx)
		defer journal.Stop()
		opts = append(opts, service.WithJournal(journal))
	}

	assembler, err := service.NewFeeAssembler(ledgerClient, estimator, encoder, metrics.NewFeeAssembler(cfg.Network), cfg.Network, logger.Named("assembler"), opts...)
	if err != nil {
		return err
	}
	txSigner, err := service.NewTransactionSigner(encoder, logger.Named("signer"))
	if err != nil {
		return err
	}
	transfer, err := service.NewTransferService(assembler, txSigner, ledgerClient, metrics.NewTransfer(cfg.Network), logger.Named("transfer"))
	if err != nil {
		return err
	}

	schemes := make([]model.SignatureType, 0, len(signers))
	for _, s := range signers {
		schemes = append(schemes, s.Scheme())
	}

	results, errs := workerpool.Map(ctx, cfg.Workers, cfg.Drafts, func(ctx context.Context, path string) (result, error) {
		draft, err := loadDraft(path)
		if err != nil {
			return result{}, err
		}
		if cfg.PrepareOnly {
			prepared, err := assembler.Prepare(ctx, draft, predicate, schemes)
			if err != nil {
				return result{}, err
			}
			return result{Prepared: prepared}, nil
		}
		receipt, err := transfer.Execute(ctx, draft, predicate, signers)
		if err != nil {
			return result{}, err
		}
		return result{Receipt: receipt}, nil
	})

	out := json.NewEncoder(os.Stdout)
	var failed int
	for i, path := range cfg.Drafts {
		res := results[i]
		res.Draft = path
		if errs[i] != nil {
			failed++
			res.Error = errs[i].Error()
			logger.Error("draft failed", zap.String("draft", path), zap.Error(errs[i]))
		}
		if err := out.Encode(res); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d drafts failed", failed, len(cfg.Drafts))
	}
	return nil
}

func loadSigners(cfg config) ([]service.Signer, error) {
	var signers []service.Signer
	if cfg.NativeKey != "" {
		secret, err := hex.DecodeString(strings.TrimPrefix(cfg.NativeKey, "0x"))
		if err != nil {
			return nil, fmt.Errorf("decode native key: %w", err)
		}
		native, err := signer.NativeFromBytes(secret)
		if err != nil {
			return nil, fmt.Errorf("native key: %w", err)
		}
		signers = append(signers, native)
	}
	if cfg.EVMKey != "" {
		evm, err := signer.EVMFromHex(cfg.EVMKey)
		if err != nil {
			return nil, fmt.Errorf("evm key: %w", err)
		}
		signers = append(signers, evm)
	}
	if len(signers) == 0 {
		return nil, errors.New("at least one of --native-key or --evm-key is required")
	}
	return signers, nil
}

func loadPredicate(cfg config, signers []service.Signer) (*program.Predicate, error) {
	bytecode, err := os.ReadFile(cfg.PredicateFile)
	if err != nil {
		return nil, fmt.Errorf("read predicate bytecode: %w", err)
	}
	template := &program.Template{
		Bytecode:      bytecode,
		SignersOffset: cfg.SignersOffset,
		MaxSigners:    cfg.MaxSigners,
	}

	addresses := make([]model.Address, 0, len(cfg.PredicateSigners))
	for _, raw := range cfg.PredicateSigners {
		address, err := model.ParseAddress(raw)
		if err != nil {
			return nil, fmt.Errorf("predicate signer %q: %w", raw, err)
		}
		addresses = append(addresses, address)
	}
	if len(addresses) == 0 {
		for _, s := range signers {
			addresses = append(addresses, s.Address())
		}
	}
	return template.New(addresses)
}

func loadDraft(path string) (*model.TransactionDraft, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read draft: %w", err)
	}
	if strings.ToLower(filepath.Ext(path)) == ".cbor" {
		draft, err := model.DecodeDraft(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return draft, nil
	}
	var draft model.TransactionDraft
	if err := json.Unmarshal(raw, &draft); err != nil {
		return nil, fmt.Errorf("decode draft %s: %w", path, err)
	}
	return &draft, nil
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	if addr == "" {
		return
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("metrics server shutdown failed", zap.Error(err))
		}
	}()
}
