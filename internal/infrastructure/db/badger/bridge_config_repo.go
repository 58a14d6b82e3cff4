package badgerdb

import (
	"context"
	stderrors "errors"
	"fmt"
	"path/filepath"

	"github.com/dgraph-io/badger/v4"
	"github.com/timshannon/badgerhold/v4"
	"github.com/unft/unftd/internal/core/domain"
	"github.com/unft/unftd/pkg/errors"
)

const (
	configStoreDir = "config"
	configKey      = "config"
)

type configRepository struct {
	store *badgerhold.Store
}

func NewConfigRepository(config ...interface{}) (domain.ConfigRepository, error) {
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
		dir = filepath.Join(baseDir, configStoreDir)
	}
	store, err := createDB(dir, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open config store: %s", err)
	}

	return &configRepository{store}, nil
}

func (r *configRepository) Get(ctx context.Context) (*domain.BridgeConfig, error) {
	var config domain.BridgeConfig
	err := r.store.Get(configKey, &config)
	if stderrors.Is(err, badgerhold.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get config: %w", err)
	}
	return &config, nil
}

func (r *configRepository) Insert(ctx context.Context, config domain.BridgeConfig) error {
	err := retryOnConflict(func() error {
		return r.store.Insert(configKey, &config)
	})
	if stderrors.Is(err, badgerhold.ErrKeyExists) {
		return errors.ALREADY_INITIALIZED.New("bridge config already exists")
	}
	return err
}

func (r *configRepository) Update(ctx context.Context, config domain.BridgeConfig) error {
	err := retryOnConflict(func() error {
		return r.store.Update(configKey, &config)
	})
	if stderrors.Is(err, badgerhold.ErrNotFound) {
		return errors.NOT_INITIALIZED.New("bridge config does not exist")
	}
	return err
}

func (r *configRepository) Close() {
	// nolint:all
	r.store.Close()
}
