package sqlitedb

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"

	"github.com/unft/unftd/internal/core/domain"
	"github.com/unft/unftd/pkg/errors"
)

type configRepository struct {
	db *sql.DB
}

func NewConfigRepository(config ...interface{}) (domain.ConfigRepository, error) {
	if len(config) != 1 {
		return nil, fmt.Errorf("invalid config: expected 1 argument, got %d", len(config))
	}
	db, ok := config[0].(*sql.DB)
	if !ok {
		return nil, fmt.Errorf(
			"cannot open config repository: expected *sql.DB but got %T", config[0],
		)
	}

	return &configRepository{db}, nil
}

func (r *configRepository) Get(ctx context.Context) (*domain.BridgeConfig, error) {
	row := r.db.QueryRowContext(
		ctx,
		`SELECT gateway_address, tss_address, chain_id, paused, nonce_counter,
		        created_at, updated_at
		 FROM bridge_config WHERE id = 1`,
	)

	var config domain.BridgeConfig
	var chainID, nonceCounter int64
	var paused bool
	err := row.Scan(
		&config.GatewayAddress, &config.TssAddress, &chainID, &paused,
		&nonceCounter, &config.CreatedAt, &config.UpdatedAt,
	)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get config: %w", err)
	}

	config.ChainID = uint64(chainID)
	config.NonceCounter = uint64(nonceCounter)
	config.Paused = paused
	return &config, nil
}

func (r *configRepository) Insert(ctx context.Context, config domain.BridgeConfig) error {
	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO bridge_config (
		    id, gateway_address, tss_address, chain_id, paused, nonce_counter,
		    created_at, updated_at
		 ) VALUES (1, ?, ?, ?, ?, ?, ?, ?)`,
		config.GatewayAddress, config.TssAddress, int64(config.ChainID),
		config.Paused, int64(config.NonceCounter), config.CreatedAt, config.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return errors.ALREADY_INITIALIZED.New("bridge config already exists")
	}
	if err != nil {
		return fmt.Errorf("failed to insert config: %w", err)
	}
	return nil
}

func (r *configRepository) Update(ctx context.Context, config domain.BridgeConfig) error {
	res, err := r.db.ExecContext(
		ctx,
		`UPDATE bridge_config SET
		    gateway_address = ?, tss_address = ?, chain_id = ?, paused = ?,
		    nonce_counter = ?, updated_at = ?
		 WHERE id = 1`,
		config.GatewayAddress, config.TssAddress, int64(config.ChainID),
		config.Paused, int64(config.NonceCounter), config.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update config: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update config: %w", err)
	}
	if affected == 0 {
		return errors.NOT_INITIALIZED.New("bridge config does not exist")
	}
	return nil
}

func (r *configRepository) Close() {}
