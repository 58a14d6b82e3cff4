package signer

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/unft/unftd/internal/core/ports"
)

// schnorrVerifier checks a BIP340 schnorr signature over the sha256 digest
// of the canonical message. The trusted signer address must be the
// hex-encoded x-only public key of the signer set's aggregated key.
type schnorrVerifier struct{}

func NewSchnorrVerifier() ports.TssVerifier {
	return &schnorrVerifier{}
}

func (v *schnorrVerifier) Verify(
	ctx context.Context, message, signature []byte, tssAddress string,
) (bool, error) {
	if len(message) == 0 {
		return false, fmt.Errorf("malformed message: empty")
	}
	if len(signature) == 0 {
		return false, fmt.Errorf("malformed signature: empty")
	}

	pubkeyBytes, err := hex.DecodeString(tssAddress)
	if err != nil {
		return false, fmt.Errorf("invalid tss pubkey: %w", err)
	}
	pubkey, err := schnorr.ParsePubKey(pubkeyBytes)
	if err != nil {
		return false, fmt.Errorf("invalid tss pubkey: %w", err)
	}
	sig, err := schnorr.ParseSignature(signature)
	if err != nil {
		return false, fmt.Errorf("invalid signature encoding: %w", err)
	}

	digest := sha256.Sum256(message)
	return sig.Verify(digest[:], pubkey), nil
}
