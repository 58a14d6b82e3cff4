package db

import (
	"embed"
	stderrors "errors"
	"fmt"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	sqlitemigrate "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/unft/unftd/internal/core/domain"
	"github.com/unft/unftd/internal/core/ports"
	badgerdb "github.com/unft/unftd/internal/infrastructure/db/badger"
	sqlitedb "github.com/unft/unftd/internal/infrastructure/db/sqlite"
)

//go:embed sqlite/migration/*
var migrations embed.FS

var (
	configStoreTypes = map[string]func(...interface{}) (domain.ConfigRepository, error){
		"badger": badgerdb.NewConfigRepository,
		"sqlite": sqlitedb.NewConfigRepository,
	}
	statsStoreTypes = map[string]func(...interface{}) (domain.StatsRepository, error){
		"badger": badgerdb.NewStatsRepository,
		"sqlite": sqlitedb.NewStatsRepository,
	}
	assetStoreTypes = map[string]func(...interface{}) (domain.AssetRepository, error){
		"badger": badgerdb.NewAssetRepository,
		"sqlite": sqlitedb.NewAssetRepository,
	}
	transferStoreTypes = map[string]func(...interface{}) (domain.TransferRepository, error){
		"badger": badgerdb.NewTransferRepository,
		"sqlite": sqlitedb.NewTransferRepository,
	}
	receiptStoreTypes = map[string]func(...interface{}) (domain.ReceiptRepository, error){
		"badger": badgerdb.NewReceiptRepository,
		"sqlite": sqlitedb.NewReceiptRepository,
	}
)

const sqliteDbFile = "sqlite.db"

type ServiceConfig struct {
	DataStoreType   string
	DataStoreConfig []interface{}
}

type service struct {
	configStore   domain.ConfigRepository
	statsStore    domain.StatsRepository
	assetStore    domain.AssetRepository
	transferStore domain.TransferRepository
	receiptStore  domain.ReceiptRepository
}

func NewService(config ServiceConfig) (ports.RepoManager, error) {
	configStoreFactory, ok := configStoreTypes[config.DataStoreType]
	if !ok {
		return nil, fmt.Errorf("invalid data store type: %s", config.DataStoreType)
	}
	statsStoreFactory := statsStoreTypes[config.DataStoreType]
	assetStoreFactory := assetStoreTypes[config.DataStoreType]
	transferStoreFactory := transferStoreTypes[config.DataStoreType]
	receiptStoreFactory := receiptStoreTypes[config.DataStoreType]

	var storeConfig []interface{}
	switch config.DataStoreType {
	case "badger":
		storeConfig = config.DataStoreConfig
	case "sqlite":
		if len(config.DataStoreConfig) != 1 {
			return nil, fmt.Errorf("invalid data store config")
		}
		baseDir, ok := config.DataStoreConfig[0].(string)
		if !ok {
			return nil, fmt.Errorf("invalid base directory")
		}

		dbFile := filepath.Join(baseDir, sqliteDbFile)
		db, err := sqlitedb.OpenDb(dbFile)
		if err != nil {
			return nil, fmt.Errorf("failed to open db: %s", err)
		}

		driver, err := sqlitemigrate.WithInstance(db, &sqlitemigrate.Config{})
		if err != nil {
			return nil, fmt.Errorf("failed to init driver: %s", err)
		}

		source, err := iofs.New(migrations, "sqlite/migration")
		if err != nil {
			return nil, fmt.Errorf("failed to embed migrations: %s", err)
		}

		m, err := migrate.NewWithInstance("iofs", source, "unftdb", driver)
		if err != nil {
			return nil, fmt.Errorf("failed to create migration instance: %s", err)
		}

		if err := m.Up(); err != nil && !stderrors.Is(err, migrate.ErrNoChange) {
			return nil, fmt.Errorf("failed to run migrations: %s", err)
		}

		storeConfig = []interface{}{db}
	}

	configStore, err := configStoreFactory(storeConfig...)
	if err != nil {
		return nil, fmt.Errorf("failed to open config store: %s", err)
	}
	statsStore, err := statsStoreFactory(storeConfig...)
	if err != nil {
		return nil, fmt.Errorf("failed to open stats store: %s", err)
	}
	assetStore, err := assetStoreFactory(storeConfig...)
	if err != nil {
		return nil, fmt.Errorf("failed to open asset store: %s", err)
	}
	transferStore, err := transferStoreFactory(storeConfig...)
	if err != nil {
		return nil, fmt.Errorf("failed to open transfer store: %s", err)
	}
	receiptStore, err := receiptStoreFactory(storeConfig...)
	if err != nil {
		return nil, fmt.Errorf("failed to open receipt store: %s", err)
	}

	return &service{
		configStore:   configStore,
		statsStore:    statsStore,
		assetStore:    assetStore,
		transferStore: transferStore,
		receiptStore:  receiptStore,
	}, nil
}

func (s *service) Config() domain.ConfigRepository {
	return s.configStore
}

func (s *service) Stats() domain.StatsRepository {
	return s.statsStore
}

func (s *service) Assets() domain.AssetRepository {
	return s.assetStore
}

func (s *service) Transfers() domain.TransferRepository {
	return s.transferStore
}

func (s *service) Receipts() domain.ReceiptRepository {
	return s.receiptStore
}

func (s *service) Close() {
	s.configStore.Close()
	s.statsStore.Close()
	s.assetStore.Close()
	s.transferStore.Close()
	s.receiptStore.Close()
}
