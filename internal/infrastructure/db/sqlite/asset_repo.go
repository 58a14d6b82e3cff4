package sqlitedb

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"

	"github.com/unft/unftd/internal/core/domain"
)

type assetRepository struct {
	db *sql.DB
}

func NewAssetRepository(config ...interface{}) (domain.AssetRepository, error) {
	if len(config) != 1 {
		return nil, fmt.Errorf("invalid config: expected 1 argument, got %d", len(config))
	}
	db, ok := config[0].(*sql.DB)
	if !ok {
		return nil, fmt.Errorf(
			"cannot open asset repository: expected *sql.DB but got %T", config[0],
		)
	}

	return &assetRepository{db}, nil
}

func (r *assetRepository) AddAsset(ctx context.Context, asset domain.Asset) error {
	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO asset (
		    mint_id, original_owner, current_owner, uri, name, symbol,
		    cross_chain_enabled, locked, origin_chain_id, created_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		asset.MintID, asset.OriginalOwner, asset.CurrentOwner, asset.URI,
		asset.Name, asset.Symbol, asset.CrossChainEnabled, asset.Locked,
		int64(asset.OriginChainID), asset.CreatedAt,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("asset %s already exists", asset.MintID)
	}
	if err != nil {
		return fmt.Errorf("failed to insert asset: %w", err)
	}
	return nil
}

func (r *assetRepository) GetAsset(ctx context.Context, mintID string) (*domain.Asset, error) {
	row := r.db.QueryRowContext(
		ctx,
		`SELECT mint_id, original_owner, current_owner, uri, name, symbol,
		        cross_chain_enabled, locked, origin_chain_id, created_at
		 FROM asset WHERE mint_id = ?`,
		mintID,
	)

	asset, err := scanAsset(row.Scan)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get asset %s: %w", mintID, err)
	}
	return asset, nil
}

func (r *assetRepository) UpdateAsset(ctx context.Context, asset domain.Asset) error {
	res, err := r.db.ExecContext(
		ctx,
		`UPDATE asset SET
		    original_owner = ?, current_owner = ?, uri = ?, name = ?, symbol = ?,
		    cross_chain_enabled = ?, locked = ?, origin_chain_id = ?
		 WHERE mint_id = ?`,
		asset.OriginalOwner, asset.CurrentOwner, asset.URI, asset.Name,
		asset.Symbol, asset.CrossChainEnabled, asset.Locked,
		int64(asset.OriginChainID), asset.MintID,
	)
	if err != nil {
		return fmt.Errorf("failed to update asset %s: %w", asset.MintID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update asset %s: %w", asset.MintID, err)
	}
	if affected == 0 {
		return fmt.Errorf("asset %s does not exist", asset.MintID)
	}
	return nil
}

func (r *assetRepository) ListAssets(ctx context.Context) ([]domain.Asset, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT mint_id, original_owner, current_owner, uri, name, symbol,
		        cross_chain_enabled, locked, origin_chain_id, created_at
		 FROM asset ORDER BY created_at`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	// nolint:all
	defer rows.Close()

	assets := make([]domain.Asset, 0)
	for rows.Next() {
		asset, err := scanAsset(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan asset: %w", err)
		}
		assets = append(assets, *asset)
	}
	return assets, rows.Err()
}

func (r *assetRepository) Close() {}

func scanAsset(scan func(dest ...any) error) (*domain.Asset, error) {
	var asset domain.Asset
	var originChainID int64
	if err := scan(
		&asset.MintID, &asset.OriginalOwner, &asset.CurrentOwner, &asset.URI,
		&asset.Name, &asset.Symbol, &asset.CrossChainEnabled, &asset.Locked,
		&originChainID, &asset.CreatedAt,
	); err != nil {
		return nil, err
	}
	asset.OriginChainID = uint64(originChainID)
	return &asset, nil
}
