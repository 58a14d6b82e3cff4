package badgerdb

import (
	"context"
	stderrors "errors"
	"fmt"
	"path/filepath"

	"github.com/dgraph-io/badger/v4"
	"github.com/timshannon/badgerhold/v4"
	"github.com/unft/unftd/internal/core/domain"
	"github.com/unft/unftd/pkg/errors"
)

const receiptStoreDir = "receipts"

type receiptRepository struct {
	store *badgerhold.Store
}

func NewReceiptRepository(config ...interface{}) (domain.ReceiptRepository, error) {
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
		dir = filepath.Join(baseDir, receiptStoreDir)
	}
	store, err := createDB(dir, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open receipt store: %s", err)
	}

	return &receiptRepository{store}, nil
}

func (r *receiptRepository) AddReceipt(ctx context.Context, receipt domain.Receipt) error {
	err := retryOnConflict(func() error {
		return r.store.Insert(receipt.ReceiptKey.String(), &receipt)
	})
	if stderrors.Is(err, badgerhold.ErrKeyExists) {
		return errors.RECEIPT_ALREADY_EXISTS.
			New("receipt for %s already exists", receipt.ReceiptKey).
			WithMetadata(errors.ReceiptMetadata{
				OriginTxHash: receipt.ReceiptKey.String(),
				Nonce:        receipt.Nonce,
			})
	}
	return err
}

func (r *receiptRepository) GetReceipt(
	ctx context.Context, key domain.ReceiptKey,
) (*domain.Receipt, error) {
	var receipt domain.Receipt
	err := r.store.Get(key.String(), &receipt)
	if stderrors.Is(err, badgerhold.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get receipt %s: %w", key, err)
	}
	return &receipt, nil
}

func (r *receiptRepository) Close() {
	// nolint:all
	r.store.Close()
}
