package signer

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/unft/unftd/internal/core/ports"
)

// staticVerifier accepts any well-formed signature. It is a placeholder for
// a real threshold-signature scheme and provides no cryptographic guarantee;
// it exists so the rest of the pipeline can run without the signer set
// deployed. Do not enable it where authenticity matters.
type staticVerifier struct{}

func NewStaticVerifier() ports.TssVerifier {
	return &staticVerifier{}
}

func (v *staticVerifier) Verify(
	ctx context.Context, message, signature []byte, tssAddress string,
) (bool, error) {
	if len(message) == 0 {
		return false, fmt.Errorf("malformed message: empty")
	}
	if len(signature) == 0 {
		return false, fmt.Errorf("malformed signature: empty")
	}

	log.WithFields(log.Fields{
		"message_len":   len(message),
		"signature_len": len(signature),
		"tss":           tssAddress,
	}).Debug("tss signature accepted (static verifier)")
	return true, nil
}
