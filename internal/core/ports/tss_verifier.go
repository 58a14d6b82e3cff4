package ports

import "context"

// TssVerifier checks that an inbound cross-chain message is endorsed by the
// configured trusted signer set. Implementations must reject empty messages
// and empty signatures. The default implementation is a placeholder, not a
// cryptographic check; swap in a real scheme behind this interface before
// trusting it in production.
type TssVerifier interface {
	Verify(ctx context.Context, message, signature []byte, tssAddress string) (bool, error)
}
