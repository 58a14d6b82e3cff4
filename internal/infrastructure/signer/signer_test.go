package signer_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/stretchr/testify/require"
	"github.com/unft/unftd/internal/infrastructure/signer"
)

var ctx = context.Background()

func TestStaticVerifier(t *testing.T) {
	verifier := signer.NewStaticVerifier()

	t.Run("accepts any non empty signature", func(t *testing.T) {
		valid, err := verifier.Verify(ctx, []byte("message"), []byte("signature"), "tss")
		require.NoError(t, err)
		require.True(t, valid)
	})

	t.Run("rejects empty message", func(t *testing.T) {
		_, err := verifier.Verify(ctx, nil, []byte("signature"), "tss")
		require.Error(t, err)
	})

	t.Run("rejects empty signature", func(t *testing.T) {
		_, err := verifier.Verify(ctx, []byte("message"), nil, "tss")
		require.Error(t, err)
	})
}

func TestSchnorrVerifier(t *testing.T) {
	privkey, err := btcec.NewPrivateKey()
	require.NoError(t, err)
	tssAddress := hex.EncodeToString(schnorr.SerializePubKey(privkey.PubKey()))

	message := []byte("canonical bridge message")
	digest := sha256.Sum256(message)
	sig, err := schnorr.Sign(privkey, digest[:])
	require.NoError(t, err)

	verifier := signer.NewSchnorrVerifier()

	t.Run("valid signature", func(t *testing.T) {
		valid, err := verifier.Verify(ctx, message, sig.Serialize(), tssAddress)
		require.NoError(t, err)
		require.True(t, valid)
	})

	t.Run("tampered message", func(t *testing.T) {
		valid, err := verifier.Verify(ctx, []byte("another message"), sig.Serialize(), tssAddress)
		require.NoError(t, err)
		require.False(t, valid)
	})

	t.Run("wrong key", func(t *testing.T) {
		other, err := btcec.NewPrivateKey()
		require.NoError(t, err)
		otherAddress := hex.EncodeToString(schnorr.SerializePubKey(other.PubKey()))

		valid, err := verifier.Verify(ctx, message, sig.Serialize(), otherAddress)
		require.NoError(t, err)
		require.False(t, valid)
	})

	t.Run("malformed inputs", func(t *testing.T) {
		_, err := verifier.Verify(ctx, nil, sig.Serialize(), tssAddress)
		require.Error(t, err)

		_, err = verifier.Verify(ctx, message, nil, tssAddress)
		require.Error(t, err)

		_, err = verifier.Verify(ctx, message, []byte{0x01}, tssAddress)
		require.Error(t, err)

		_, err = verifier.Verify(ctx, message, sig.Serialize(), "not-hex")
		require.Error(t, err)
	})
}
