package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/luisburigo/fuel-predicate-example/internal/predicate/model"
)

const insertAssembliesQuery = `
INSERT INTO predicate_fee_assemblies (
	network,
	tx_id,
	chain_id,
	predicate_address,
	predicate_inputs,
	predicate_gas,
	gas_price,
	gas_price_factor,
	quoted_max_fee,
	max_fee,
	fee_raised,
	created_at
) VALUES`

// InsertAssemblies stores fee assembly rows in ClickHouse.
func (r *Repository) InsertAssemblies(ctx context.Context, assemblies []model.Assembly) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_assemblies", firstNetwork(assemblies), len(assemblies), err, start)
	}()

	if len(assemblies) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertAssembliesQuery)
	if err != nil {
		return fmt.Errorf("prepare assemblies batch: %w", err)
	}

	for _, a := range assemblies {
		if err = batch.Append(
			string(a.Network),
			a.TxID.String(),
			a.ChainID,
			a.PredicateAddress.String(),
			a.PredicateInputs,
			a.PredicateGas,
			a.GasPrice,
			a.GasPriceFactor,
			a.QuotedMaxFee,
			a.MaxFee,
			a.FeeRaised,
			a.CreatedAt,
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append assembly %s: %w", a.TxID, err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert assemblies: %w", err)
	}
	return nil
}

func firstNetwork(assemblies []model.Assembly) model.Network {
	if len(assemblies) == 0 {
		return ""
	}
	return assemblies[0].Network
}
