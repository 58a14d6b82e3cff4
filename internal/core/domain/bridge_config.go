package domain

import "time"

type BridgeConfig struct {
	GatewayAddress string
	TssAddress     string
	ChainID        uint64
	Paused         bool
	// NonceCounter is the high-water mark checked by outbound transfers.
	// It is not advanced when a transfer is accepted: replay protection for
	// a (mint, nonce) pair comes from the transfer record's exclusive
	// create, not from this counter.
	NonceCounter uint64
	CreatedAt    int64
	UpdatedAt    int64
}

func NewBridgeConfig(gatewayAddress, tssAddress string, chainID uint64) *BridgeConfig {
	now := time.Now().Unix()
	return &BridgeConfig{
		GatewayAddress: gatewayAddress,
		TssAddress:     tssAddress,
		ChainID:        chainID,
		Paused:         false,
		NonceCounter:   0,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
