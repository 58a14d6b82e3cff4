package domain

import "context"

type ReceiptRepository interface {
	// AddReceipt must be an exclusive create: a second attempt with the
	// same (origin tx hash, nonce) key fails with RECEIPT_ALREADY_EXISTS.
	AddReceipt(ctx context.Context, receipt Receipt) error
	GetReceipt(ctx context.Context, key ReceiptKey) (*Receipt, error)
	Close()
}
