package ports

import "github.com/unft/unftd/internal/core/domain"

type RepoManager interface {
	Config() domain.ConfigRepository
	Stats() domain.StatsRepository
	Assets() domain.AssetRepository
	Transfers() domain.TransferRepository
	Receipts() domain.ReceiptRepository
	Close()
}
