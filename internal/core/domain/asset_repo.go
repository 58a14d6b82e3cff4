package domain

import "context"

type AssetRepository interface {
	// AddAsset fails if an asset with the same mint id already exists.
	AddAsset(ctx context.Context, asset Asset) error
	GetAsset(ctx context.Context, mintID string) (*Asset, error)
	UpdateAsset(ctx context.Context, asset Asset) error
	ListAssets(ctx context.Context) ([]Asset, error)
	Close()
}
