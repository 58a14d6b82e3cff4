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

const assetStoreDir = "assets"

type assetRepository struct {
	store *badgerhold.Store
}

func NewAssetRepository(config ...interface{}) (domain.AssetRepository, error) {
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
		dir = filepath.Join(baseDir, assetStoreDir)
	}
	store, err := createDB(dir, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open asset store: %s", err)
	}

	return &assetRepository{store}, nil
}

func (r *assetRepository) AddAsset(ctx context.Context, asset domain.Asset) error {
	err := retryOnConflict(func() error {
		return r.store.Insert(asset.MintID, &asset)
	})
	if stderrors.Is(err, badgerhold.ErrKeyExists) {
		return fmt.Errorf("asset %s already exists", asset.MintID)
	}
	return err
}

func (r *assetRepository) GetAsset(ctx context.Context, mintID string) (*domain.Asset, error) {
	var asset domain.Asset
	err := r.store.Get(mintID, &asset)
	if stderrors.Is(err, badgerhold.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get asset %s: %w", mintID, err)
	}
	return &asset, nil
}

func (r *assetRepository) UpdateAsset(ctx context.Context, asset domain.Asset) error {
	err := retryOnConflict(func() error {
		return r.store.Update(asset.MintID, &asset)
	})
	if stderrors.Is(err, badgerhold.ErrNotFound) {
		return fmt.Errorf("asset %s does not exist", asset.MintID)
	}
	return err
}

func (r *assetRepository) ListAssets(ctx context.Context) ([]domain.Asset, error) {
	var assets []domain.Asset
	if err := r.store.Find(&assets, nil); err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	return assets, nil
}

func (r *assetRepository) Close() {
	// nolint:all
	r.store.Close()
}
