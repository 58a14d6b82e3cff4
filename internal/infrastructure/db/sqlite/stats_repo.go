package sqlitedb

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"

	"github.com/unft/unftd/internal/core/domain"
)

type statsRepository struct {
	db *sql.DB
}

func NewStatsRepository(config ...interface{}) (domain.StatsRepository, error) {
	if len(config) != 1 {
		return nil, fmt.Errorf("invalid config: expected 1 argument, got %d", len(config))
	}
	db, ok := config[0].(*sql.DB)
	if !ok {
		return nil, fmt.Errorf(
			"cannot open stats repository: expected *sql.DB but got %T", config[0],
		)
	}

	return &statsRepository{db}, nil
}

func (r *statsRepository) Get(ctx context.Context) (*domain.BridgeStats, error) {
	row := r.db.QueryRowContext(
		ctx, "SELECT total_minted, total_transfers FROM bridge_stats WHERE id = 1",
	)

	var minted, transfers int64
	err := row.Scan(&minted, &transfers)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	return &domain.BridgeStats{
		TotalMinted:    uint64(minted),
		TotalTransfers: uint64(transfers),
	}, nil
}

func (r *statsRepository) Upsert(ctx context.Context, stats domain.BridgeStats) error {
	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO bridge_stats (id, total_minted, total_transfers) VALUES (1, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET
		    total_minted = excluded.total_minted,
		    total_transfers = excluded.total_transfers`,
		int64(stats.TotalMinted), int64(stats.TotalTransfers),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert stats: %w", err)
	}
	return nil
}

func (r *statsRepository) Close() {}
