package db_test

import (
	"bytes"
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/unft/unftd/internal/core/domain"
	"github.com/unft/unftd/internal/core/ports"
	"github.com/unft/unftd/internal/infrastructure/db"
	"github.com/unft/unftd/pkg/errors"
)

var ctx = context.Background()

func TestRepoManager(t *testing.T) {
	stores := []struct {
		name   string
		config func(t *testing.T) db.ServiceConfig
	}{
		{
			name: "badger",
			config: func(t *testing.T) db.ServiceConfig {
				return db.ServiceConfig{
					DataStoreType:   "badger",
					DataStoreConfig: []interface{}{"", nil},
				}
			},
		},
		{
			name: "sqlite",
			config: func(t *testing.T) db.ServiceConfig {
				return db.ServiceConfig{
					DataStoreType:   "sqlite",
					DataStoreConfig: []interface{}{t.TempDir()},
				}
			},
		},
	}

	for _, store := range stores {
		t.Run(store.name, func(t *testing.T) {
			svc, err := db.NewService(store.config(t))
			require.NoError(t, err)
			defer svc.Close()

			testConfigStore(t, svc)
			testStatsStore(t, svc)
			testAssetStore(t, svc)
			testTransferStore(t, svc)
			testReceiptStore(t, svc)
		})
	}

	t.Run("unknown store type", func(t *testing.T) {
		_, err := db.NewService(db.ServiceConfig{DataStoreType: "mongo"})
		require.Error(t, err)
	})
}

func testConfigStore(t *testing.T, svc ports.RepoManager) {
	repo := svc.Config()

	cfg, err := repo.Get(ctx)
	require.NoError(t, err)
	require.Nil(t, cfg)

	newCfg := *domain.NewBridgeConfig("gateway", "tss", 900)
	require.NoError(t, repo.Insert(ctx, newCfg))

	err = repo.Insert(ctx, newCfg)
	requireErrorCode(t, err, errors.ALREADY_INITIALIZED.Code)

	cfg, err = repo.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, newCfg, *cfg)

	newCfg.Paused = true
	newCfg.UpdatedAt = newCfg.UpdatedAt + 1
	require.NoError(t, repo.Update(ctx, newCfg))

	cfg, err = repo.Get(ctx)
	require.NoError(t, err)
	require.True(t, cfg.Paused)
}

func testStatsStore(t *testing.T, svc ports.RepoManager) {
	repo := svc.Stats()

	stats, err := repo.Get(ctx)
	require.NoError(t, err)
	require.Nil(t, stats)

	require.NoError(t, repo.Upsert(ctx, domain.BridgeStats{TotalMinted: 1}))
	require.NoError(t, repo.Upsert(ctx, domain.BridgeStats{TotalMinted: 2, TotalTransfers: 1}))

	stats, err = repo.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.BridgeStats{TotalMinted: 2, TotalTransfers: 1}, *stats)
}

func testAssetStore(t *testing.T, svc ports.RepoManager) {
	repo := svc.Assets()

	asset := domain.Asset{
		MintID:            "mint-1",
		OriginalOwner:     "alice",
		CurrentOwner:      "alice",
		URI:               "https://meta/1.json",
		Name:              "Galaxy #1",
		Symbol:            "GLX",
		CrossChainEnabled: true,
		OriginChainID:     900,
		CreatedAt:         100,
	}
	require.NoError(t, repo.AddAsset(ctx, asset))
	require.Error(t, repo.AddAsset(ctx, asset))

	got, err := repo.GetAsset(ctx, "mint-1")
	require.NoError(t, err)
	require.Equal(t, asset, *got)

	asset.Locked = true
	asset.CurrentOwner = "bob"
	require.NoError(t, repo.UpdateAsset(ctx, asset))

	got, err = repo.GetAsset(ctx, "mint-1")
	require.NoError(t, err)
	require.True(t, got.Locked)
	require.Equal(t, "bob", got.CurrentOwner)

	assets, err := repo.ListAssets(ctx)
	require.NoError(t, err)
	require.Len(t, assets, 1)
}

func testTransferStore(t *testing.T, svc ports.RepoManager) {
	repo := svc.Transfers()

	transfer := domain.Transfer{
		TransferKey:        domain.TransferKey{Mint: "mint-1", Nonce: 1},
		OriginalOwner:      "alice",
		DestinationChainID: 1,
		RecipientAddress:   []byte{0xaa},
		Timestamp:          100,
		Status:             domain.TransferStatusPending,
	}
	require.NoError(t, repo.AddTransfer(ctx, transfer))

	err := repo.AddTransfer(ctx, transfer)
	requireErrorCode(t, err, errors.TRANSFER_ALREADY_EXISTS.Code)

	got, err := repo.GetTransfer(ctx, transfer.TransferKey)
	require.NoError(t, err)
	require.Equal(t, transfer, *got)

	require.NoError(t, repo.UpdateTransferStatus(
		ctx, transfer.TransferKey, domain.TransferStatusCompleted,
	))

	got, err = repo.GetTransfer(ctx, transfer.TransferKey)
	require.NoError(t, err)
	require.Equal(t, domain.TransferStatusCompleted, got.Status)

	transfers, err := repo.ListTransfersByMint(ctx, "mint-1")
	require.NoError(t, err)
	require.Len(t, transfers, 1)
}

func testReceiptStore(t *testing.T, svc ports.RepoManager) {
	repo := svc.Receipts()

	receipt := domain.Receipt{
		ReceiptKey:    domain.ReceiptKey{OriginTxHash: bytes.Repeat([]byte{0x11}, 32), Nonce: 1},
		OriginChainID: 1,
		Mint:          "mint-1",
		Recipient:     "bob",
		OriginalOwner: []byte{0x22},
		Timestamp:     100,
		TssSignature:  []byte{0x33},
	}
	require.NoError(t, repo.AddReceipt(ctx, receipt))

	err := repo.AddReceipt(ctx, receipt)
	requireErrorCode(t, err, errors.RECEIPT_ALREADY_EXISTS.Code)

	got, err := repo.GetReceipt(ctx, receipt.ReceiptKey)
	require.NoError(t, err)
	require.Equal(t, receipt, *got)
}

func requireErrorCode(t *testing.T, err error, code uint16) {
	t.Helper()
	require.Error(t, err)
	var coded errors.Error
	require.True(t, stderrors.As(err, &coded), "expected a coded error, got %v", err)
	require.Equal(t, code, coded.Code())
}
