package badgerdb

import (
	"context"
	stderrors "errors"
	"fmt"
	"path/filepath"

	"github.com/dgraph-io/badger/v4"
	"github.com/timshannon/badgerhold/v4"
	"github.com/unft/unftd/internal/core/domain"
)

const (
	statsStoreDir = "stats"
	statsKey      = "stats"
)

type statsRepository struct {
	store *badgerhold.Store
}

func NewStatsRepository(config ...interface{}) (domain.StatsRepository, error) {
	if len(config) != 2 {
		return nil, fmt.Errorf("invalid config")
	}
	baseDir, ok := config[0].(string)
	if !ok {
		return nil, fmt.Errorf("invalid base directory")
	}
	var logger badger.Logger
	if config[1] != nil {
		logger, ok = config[1].(badger.Logger)
		if !ok {
			return nil, fmt.Errorf("invalid logger")
		}
	}

	var dir string
	if len(baseDir) > 0 {
		dir = filepath.Join(baseDir, statsStoreDir)
	}
	store, err := createDB(dir, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open stats store: %s", err)
	}

	return &statsRepository{store}, nil
}

func (r *statsRepository) Get(ctx context.Context) (*domain.BridgeStats, error) {
	var stats domain.BridgeStats
	err := r.store.Get(statsKey, &stats)
	if stderrors.Is(err, badgerhold.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}
	return &stats, nil
}

func (r *statsRepository) Upsert(ctx context.Context, stats domain.BridgeStats) error {
	return retryOnConflict(func() error {
		return r.store.Upsert(statsKey, &stats)
	})
}

func (r *statsRepository) Close() {
	// nolint:all
	r.store.Close()
}
