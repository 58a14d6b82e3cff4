package domain

// Topics for the notifications observed by the external relay.
const (
	TopicTransferInitiated = "nft.transfer.initiated"
	TopicTransferReceived  = "nft.transfer.received"
	TopicOwnershipVerified = "nft.ownership.verified"
)

type TransferInitiatedEvent struct {
	Mint               string `json:"mint"`
	Owner              string `json:"owner"`
	DestinationChainID uint64 `json:"destination_chain_id"`
	RecipientAddress   []byte `json:"recipient_address"`
	Nonce              uint64 `json:"nonce"`
	Timestamp          int64  `json:"timestamp"`
}

type TransferReceivedEvent struct {
	Mint          string `json:"mint"`
	Recipient     string `json:"recipient"`
	OriginChainID uint64 `json:"origin_chain_id"`
	Nonce         uint64 `json:"nonce"`
	Timestamp     int64  `json:"timestamp"`
}

type OwnershipVerifiedEvent struct {
	Mint              string `json:"mint"`
	Owner             string `json:"owner"`
	CrossChainEnabled bool   `json:"cross_chain_enabled"`
	Locked            bool   `json:"locked"`
	Timestamp         int64  `json:"timestamp"`
}
