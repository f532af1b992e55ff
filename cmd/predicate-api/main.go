// Package main serves fee preparation for predicate-owned drafts over HTTP.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
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
	"github.com/luisburigo/fuel-predicate-example/internal/transport"
)

var config struct {
	Addr            string        `long:"addr" env:"PREDICATE_API_ADDR" description:"http listen address" default:":8001"`
	Network         model.Network `long:"network" env:"PREDICATE_NETWORK" description:"ledger network name" required:"true"`
	RPCURL          string        `long:"rpc-url" env:"PREDICATE_RPC_URL" description:"ledger JSON-RPC URL" default:"http://127.0.0.1:4000/v1/rpc"`
	RPCUser         string        `long:"rpc-user" env:"PREDICATE_RPC_USER" description:"ledger RPC username"`
	RPCPassword     string        `long:"rpc-password" env:"PREDICATE_RPC_PASSWORD" description:"ledger RPC password"`
	RPCRPS          int           `long:"rpc-rps" env:"PREDICATE_RPC_RPS" description:"max ledger requests per second, 0 disables the limit" default:"20"`
	PredicateFile   string        `long:"predicate-file" env:"PREDICATE_BYTECODE_FILE" description:"compiled predicate bytecode" required:"true"`
	SignersOffset   int           `long:"signers-offset" env:"PREDICATE_SIGNERS_OFFSET" description:"byte offset of the signer address block in the bytecode" required:"true"`
	MaxSigners      int           `long:"max-signers" env:"PREDICATE_MAX_SIGNERS" description:"signer slots compiled into the predicate" default:"2"`
	ZeroGasFallback bool          `long:"zero-gas-fallback" env:"PREDICATE_ZERO_GAS_FALLBACK" description:"assume zero predicate gas when estimation fails"`
	SafetyMargin    uint64        `long:"safety-margin" env:"PREDICATE_SAFETY_MARGIN" description:"amount added on top of a raised max fee" default:"10"`
	ClickhouseDSN   string        `long:"clickhouse-dsn" env:"PREDICATE_CLICKHOUSE_DSN" description:"ClickHouse DSN for the fee journal, empty disables it"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	if _, err := flags.ParseArgs(&config, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("Failed to parse arguments", zap.Error(err))
	}

	if err := run(ctx, logger.With(zap.String("network", string(config.Network)))); err != nil {
		logger.Fatal("predicate api failed", zap.Error(err))
	}
}

func run(ctx context.Context, logger *zap.Logger) error {
	bytecode, err := os.ReadFile(config.PredicateFile)
	if err != nil {
		return fmt.Errorf("read predicate bytecode: %w", err)
	}
	template := &program.Template{
		Bytecode:      bytecode,
		SignersOffset: config.SignersOffset,
		MaxSigners:    config.MaxSigners,
	}

	rpcClient, err := rpcclient.NewHTTPClient(config.RPCURL, config.RPCUser, config.RPCPassword)
	if err != nil {
		return fmt.Errorf("init ledger rpc client: %w", err)
	}
	defer func() {
		rpcClient.Shutdown()
		rpcClient.WaitForShutdown()
	}()
	rpc := rpcclient.NewObservedClient(rpcClient, metrics.NewLedgerClient(config.Network))
	ledgerClient, err := ledger.NewClient(rpc, config.RPCRPS, logger.Named("ledger"))
	if err != nil {
		return err
	}

	encoder := coder.NewDefaultRegistry()
	estimator, err := service.NewPredicateGasEstimator(ledgerClient, signer.Generator{}, encoder, metrics.NewGasEstimator(config.Network), logger.Named("estimator"))
	if err != nil {
		return err
	}

	opts := []service.AssemblerOption{service.WithSafetyMargin(config.SafetyMargin)}
	if config.ZeroGasFallback {
		opts = append(opts, service.WithZeroGasFallback())
	}
	if config.ClickhouseDSN != "" {
		repo, err := clickhouse.NewRepository(config.ClickhouseDSN, metrics.NewClickhouseRepository())
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

	assembler, err := service.NewFeeAssembler(ledgerClient, estimator, encoder, metrics.NewFeeAssembler(config.Network), config.Network, logger.Named("assembler"), opts...)
	if err != nil {
		return err
	}
	handler, err := transport.NewPrepareHandler(assembler, template, logger)
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	handler.Register(mux)
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              config.Addr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", config.Addr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen and serve: %w", err)
	}
	return nil
}
