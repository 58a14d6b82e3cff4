package sqlitedb

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"

	"github.com/unft/unftd/internal/core/domain"
	"github.com/unft/unftd/pkg/errors"
)

type receiptRepository struct {
	db *sql.DB
}

func NewReceiptRepository(config ...interface{}) (domain.ReceiptRepository, error) {
	if len(config) != 1 {
		return nil, fmt.Errorf("invalid config: expected 1 argument, got %d", len(config))
	}
	db, ok := config[0].(*sql.DB)
	if !ok {
		return nil, fmt.Errorf(
			"cannot open receipt repository: expected *sql.DB but got %T", config[0],
		)
	}

	return &receiptRepository{db}, nil
}

func (r *receiptRepository) AddReceipt(ctx context.Context, receipt domain.Receipt) error {
	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO receipt (
		    origin_tx_hash, nonce, origin_chain_id, mint, recipient,
		    original_owner, timestamp, tss_signature
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		receipt.OriginTxHash, int64(receipt.Nonce), int64(receipt.OriginChainID),
		receipt.Mint, receipt.Recipient, receipt.OriginalOwner,
		receipt.Timestamp, receipt.TssSignature,
	)
	if isUniqueViolation(err) {
		return errors.RECEIPT_ALREADY_EXISTS.
			New("receipt for %s already exists", receipt.ReceiptKey).
			WithMetadata(errors.ReceiptMetadata{
				OriginTxHash: receipt.ReceiptKey.String(),
				Nonce:        receipt.Nonce,
			})
	}
	if err != nil {
		return fmt.Errorf("failed to insert receipt: %w", err)
	}
	return nil
}

func (r *receiptRepository) GetReceipt(
	ctx context.Context, key domain.ReceiptKey,
) (*domain.Receipt, error) {
	row := r.db.QueryRowContext(
		ctx,
		`SELECT origin_tx_hash, nonce, origin_chain_id, mint, recipient,
		        original_owner, timestamp, tss_signature
		 FROM receipt WHERE origin_tx_hash = ? AND nonce = ?`,
		key.OriginTxHash, int64(key.Nonce),
	)

	var receipt domain.Receipt
	var nonce, originChainID int64
	err := row.Scan(
		&receipt.OriginTxHash, &nonce, &originChainID, &receipt.Mint,
		&receipt.Recipient, &receipt.OriginalOwner, &receipt.Timestamp,
		&receipt.TssSignature,
	)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get receipt %s: %w", key, err)
	}

	receipt.Nonce = uint64(nonce)
	receipt.OriginChainID = uint64(originChainID)
	return &receipt, nil
}

func (r *receiptRepository) Close() {}
