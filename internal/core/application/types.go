package application

// ReceiveTransferRequest carries an inbound cross-chain message as relayed
// from the foreign chain through the gateway.
type ReceiveTransferRequest struct {
	OriginChainID uint64
	OriginTxHash  []byte
	URI           string
	Name          string
	Symbol        string
	OriginalOwner []byte
	TssSignature  []byte
	Nonce         uint64
	Recipient     string
}

// OwnershipProof is the result of a read-only ownership verification.
type OwnershipProof struct {
	Mint              string
	Owner             string
	CrossChainEnabled bool
	Locked            bool
	VerifiedAt        int64
}
