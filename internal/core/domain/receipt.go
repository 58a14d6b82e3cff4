package domain

import (
	"encoding/hex"
	"fmt"
)

// ReceiptKey identifies a processed inbound message. Its uniqueness in the
// store is the sole defense against replaying the same foreign event.
type ReceiptKey struct {
	OriginTxHash []byte
	Nonce        uint64
}

func (k ReceiptKey) String() string {
	return fmt.Sprintf("%s:%d", hex.EncodeToString(k.OriginTxHash), k.Nonce)
}

type Receipt struct {
	ReceiptKey
	OriginChainID uint64
	Mint          string
	Recipient     string
	OriginalOwner []byte
	Timestamp     int64
	TssSignature  []byte
}
