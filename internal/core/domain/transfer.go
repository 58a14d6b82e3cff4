package domain

import "fmt"

type TransferStatus uint8

const (
	TransferStatusPending TransferStatus = iota
	TransferStatusCompleted
	TransferStatusFailed
)

func (s TransferStatus) String() string {
	switch s {
	case TransferStatusPending:
		return "pending"
	case TransferStatusCompleted:
		return "completed"
	case TransferStatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("unknown (%d)", uint8(s))
	}
}

// TransferKey identifies an outbound transfer. Its uniqueness in the store
// is the replay guard for (mint, nonce) pairs.
type TransferKey struct {
	Mint  string
	Nonce uint64
}

func (k TransferKey) String() string {
	return fmt.Sprintf("%s:%d", k.Mint, k.Nonce)
}

type Transfer struct {
	TransferKey
	OriginalOwner      string
	DestinationChainID uint64
	RecipientAddress   []byte
	Timestamp          int64
	Status             TransferStatus
}
