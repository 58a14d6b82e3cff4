package sqlitedb

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"

	"github.com/unft/unftd/internal/core/domain"
	"github.com/unft/unftd/pkg/errors"
)

type transferRepository struct {
	db *sql.DB
}

func NewTransferRepository(config ...interface{}) (domain.TransferRepository, error) {
	if len(config) != 1 {
		return nil, fmt.Errorf("invalid config: expected 1 argument, got %d", len(config))
	}
	db, ok := config[0].(*sql.DB)
	if !ok {
		return nil, fmt.Errorf(
			"cannot open transfer repository: expected *sql.DB but got %T", config[0],
		)
	}

	return &transferRepository{db}, nil
}

func (r *transferRepository) AddTransfer(ctx context.Context, transfer domain.Transfer) error {
	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO transfer (
		    mint, nonce, original_owner, destination_chain_id, recipient_address,
		    timestamp, status
		 ) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		transfer.Mint, int64(transfer.Nonce), transfer.OriginalOwner,
		int64(transfer.DestinationChainID), transfer.RecipientAddress,
		transfer.Timestamp, uint8(transfer.Status),
	)
	if isUniqueViolation(err) {
		return errors.TRANSFER_ALREADY_EXISTS.
			New("transfer record for %s already exists", transfer.TransferKey).
			WithMetadata(errors.TransferMetadata{Mint: transfer.Mint, Nonce: transfer.Nonce})
	}
	if err != nil {
		return fmt.Errorf("failed to insert transfer: %w", err)
	}
	return nil
}

func (r *transferRepository) GetTransfer(
	ctx context.Context, key domain.TransferKey,
) (*domain.Transfer, error) {
	row := r.db.QueryRowContext(
		ctx,
		`SELECT mint, nonce, original_owner, destination_chain_id, recipient_address,
		        timestamp, status
		 FROM transfer WHERE mint = ? AND nonce = ?`,
		key.Mint, int64(key.Nonce),
	)

	transfer, err := scanTransfer(row.Scan)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transfer %s: %w", key, err)
	}
	return transfer, nil
}

func (r *transferRepository) UpdateTransferStatus(
	ctx context.Context, key domain.TransferKey, status domain.TransferStatus,
) error {
	res, err := r.db.ExecContext(
		ctx,
		"UPDATE transfer SET status = ? WHERE mint = ? AND nonce = ?",
		uint8(status), key.Mint, int64(key.Nonce),
	)
	if err != nil {
		return fmt.Errorf("failed to update transfer %s: %w", key, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update transfer %s: %w", key, err)
	}
	if affected == 0 {
		return fmt.Errorf("transfer %s does not exist", key)
	}
	return nil
}

func (r *transferRepository) ListTransfersByMint(
	ctx context.Context, mintID string,
) ([]domain.Transfer, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT mint, nonce, original_owner, destination_chain_id, recipient_address,
		        timestamp, status
		 FROM transfer WHERE mint = ? ORDER BY nonce`,
		mintID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list transfers for mint %s: %w", mintID, err)
	}
	// nolint:all
	defer rows.Close()

	transfers := make([]domain.Transfer, 0)
	for rows.Next() {
		transfer, err := scanTransfer(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transfer: %w", err)
		}
		transfers = append(transfers, *transfer)
	}
	return transfers, rows.Err()
}

func (r *transferRepository) Close() {}

func scanTransfer(scan func(dest ...any) error) (*domain.Transfer, error) {
	var transfer domain.Transfer
	var nonce, destinationChainID int64
	var status uint8
	if err := scan(
		&transfer.Mint, &nonce, &transfer.OriginalOwner, &destinationChainID,
		&transfer.RecipientAddress, &transfer.Timestamp, &status,
	); err != nil {
		return nil, err
	}
	transfer.Nonce = uint64(nonce)
	transfer.DestinationChainID = uint64(destinationChainID)
	transfer.Status = domain.TransferStatus(status)
	return &transfer, nil
}
