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

const transferStoreDir = "transfers"

type transferRepository struct {
	store *badgerhold.Store
}

// transferDTO flattens the composite key so badgerhold queries can match on
// the Mint field.
type transferDTO struct {
	Mint               string
	Nonce              uint64
	OriginalOwner      string
	DestinationChainID uint64
	RecipientAddress   []byte
	Timestamp          int64
	Status             uint8
}

func toTransferDTO(transfer domain.Transfer) transferDTO {
	return transferDTO{
		Mint:               transfer.Mint,
		Nonce:              transfer.Nonce,
		OriginalOwner:      transfer.OriginalOwner,
		DestinationChainID: transfer.DestinationChainID,
		RecipientAddress:   transfer.RecipientAddress,
		Timestamp:          transfer.Timestamp,
		Status:             uint8(transfer.Status),
	}
}

func (d transferDTO) toTransfer() domain.Transfer {
	return domain.Transfer{
		TransferKey:        domain.TransferKey{Mint: d.Mint, Nonce: d.Nonce},
		OriginalOwner:      d.OriginalOwner,
		DestinationChainID: d.DestinationChainID,
		RecipientAddress:   d.RecipientAddress,
		Timestamp:          d.Timestamp,
		Status:             domain.TransferStatus(d.Status),
	}
}

func NewTransferRepository(config ...interface{}) (domain.TransferRepository, error) {
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
		dir = filepath.Join(baseDir, transferStoreDir)
	}
	store, err := createDB(dir, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open transfer store: %s", err)
	}

	return &transferRepository{store}, nil
}

func (r *transferRepository) AddTransfer(ctx context.Context, transfer domain.Transfer) error {
	dto := toTransferDTO(transfer)
	err := retryOnConflict(func() error {
		return r.store.Insert(transfer.TransferKey.String(), &dto)
	})
	if stderrors.Is(err, badgerhold.ErrKeyExists) {
		return errors.TRANSFER_ALREADY_EXISTS.
			New("transfer record for %s already exists", transfer.TransferKey).
			WithMetadata(errors.TransferMetadata{Mint: transfer.Mint, Nonce: transfer.Nonce})
	}
	return err
}

func (r *transferRepository) GetTransfer(
	ctx context.Context, key domain.TransferKey,
) (*domain.Transfer, error) {
	var dto transferDTO
	err := r.store.Get(key.String(), &dto)
	if stderrors.Is(err, badgerhold.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transfer %s: %w", key, err)
	}
	transfer := dto.toTransfer()
	return &transfer, nil
}

func (r *transferRepository) UpdateTransferStatus(
	ctx context.Context, key domain.TransferKey, status domain.TransferStatus,
) error {
	err := retryOnConflict(func() error {
		return r.store.UpdateMatching(
			&transferDTO{},
			badgerhold.Where(badgerhold.Key).Eq(key.String()),
			func(record interface{}) error {
				dto, ok := record.(*transferDTO)
				if !ok {
					return fmt.Errorf("unexpected record type %T", record)
				}
				dto.Status = uint8(status)
				return nil
			},
		)
	})
	if err != nil {
		return fmt.Errorf("failed to update transfer %s: %w", key, err)
	}
	return nil
}

func (r *transferRepository) ListTransfersByMint(
	ctx context.Context, mintID string,
) ([]domain.Transfer, error) {
	var dtos []transferDTO
	if err := r.store.Find(&dtos, badgerhold.Where("Mint").Eq(mintID)); err != nil {
		return nil, fmt.Errorf("failed to list transfers for mint %s: %w", mintID, err)
	}
	transfers := make([]domain.Transfer, 0, len(dtos))
	for _, dto := range dtos {
		transfers = append(transfers, dto.toTransfer())
	}
	return transfers, nil
}

func (r *transferRepository) Close() {
	// nolint:all
	r.store.Close()
}
