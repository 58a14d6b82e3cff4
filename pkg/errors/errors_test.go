package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/unft/unftd/pkg/errors"
)

func TestNew(t *testing.T) {
	err := errors.INVALID_NONCE.New("nonce must be greater than %d", 10)

	require.EqualError(t, err, "INVALID_NONCE (8): nonce must be greater than 10")
	require.Equal(t, uint16(8), err.Code())
	require.Equal(t, "INVALID_NONCE", err.CodeName())
	require.Equal(t, http.StatusBadRequest, err.HTTPStatus())
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := errors.INTERNAL_ERROR.Wrap(cause)

	require.ErrorContains(t, err, "disk full")
	require.Equal(t, uint16(0), err.Code())
}

func TestWithMetadata(t *testing.T) {
	err := errors.INVALID_NONCE.
		New("bad nonce").
		WithMetadata(errors.NonceMetadata{Nonce: 5, NonceCounter: 10})

	metadata := err.Metadata()
	require.Equal(t, "5", metadata["nonce"])
	require.Equal(t, "10", metadata["nonce_counter"])
}

func TestLog(t *testing.T) {
	entry := errors.NFT_LOCKED.New("locked").Log()
	require.NotNil(t, entry)
	require.Equal(t, "NFT_LOCKED", entry.Data["name"])
}
