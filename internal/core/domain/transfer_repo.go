package domain

import "context"

type TransferRepository interface {
	// AddTransfer must be an exclusive create: a second attempt with the
	// same (mint, nonce) key fails with TRANSFER_ALREADY_EXISTS.
	AddTransfer(ctx context.Context, transfer Transfer) error
	GetTransfer(ctx context.Context, key TransferKey) (*Transfer, error)
	UpdateTransferStatus(ctx context.Context, key TransferKey, status TransferStatus) error
	ListTransfersByMint(ctx context.Context, mintID string) ([]Transfer, error)
	Close()
}
