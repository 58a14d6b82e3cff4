package domain

import "context"

type ConfigRepository interface {
	// Get returns nil without error when the bridge is not initialized.
	Get(ctx context.Context) (*BridgeConfig, error)
	// Insert fails if a configuration already exists.
	Insert(ctx context.Context, config BridgeConfig) error
	Update(ctx context.Context, config BridgeConfig) error
	Close()
}

type StatsRepository interface {
	// Get returns nil without error when the summary record does not exist.
	Get(ctx context.Context) (*BridgeStats, error)
	Upsert(ctx context.Context, stats BridgeStats) error
	Close()
}
