package web

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/unft/unftd/internal/core/application"
	"github.com/unft/unftd/internal/infrastructure/chains"
	"github.com/unft/unftd/internal/infrastructure/db"
	"github.com/unft/unftd/internal/infrastructure/signer"
	"github.com/unft/unftd/internal/infrastructure/token"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	repoManager, err := db.NewService(db.ServiceConfig{
		DataStoreType:   "badger",
		DataStoreConfig: []interface{}{"", nil},
	})
	require.NoError(t, err)
	t.Cleanup(repoManager.Close)

	svc := application.NewService(
		repoManager, token.NewInMemoryLedger(),
		signer.NewStaticVerifier(), chains.NewAllowAllRegistry(), nil,
	)
	return NewServer(0, svc).server.Handler
}

func doRequest(
	t *testing.T, router http.Handler, method, path string, body any,
) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func initializeBridge(t *testing.T, router http.Handler) {
	t.Helper()
	w := doRequest(t, router, http.MethodPost, "/v1/admin/initialize", map[string]any{
		"gateway_address": "gateway",
		"tss_address":     "tss",
		"chain_id":        900,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestHealthz(t *testing.T) {
	router := newTestServer(t)

	w := doRequest(t, router, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestInitializeEndpoint(t *testing.T) {
	router := newTestServer(t)

	t.Run("missing fields", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/v1/admin/initialize", map[string]any{})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("valid request", func(t *testing.T) {
		initializeBridge(t, router)

		w := doRequest(t, router, http.MethodGet, "/v1/config", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), "gateway")
	})

	t.Run("second initialize conflicts", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/v1/admin/initialize", map[string]any{
			"gateway_address": "gateway",
			"tss_address":     "tss",
			"chain_id":        900,
		})
		require.Equal(t, http.StatusConflict, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Equal(t, "ALREADY_INITIALIZED", resp["code"])
	})
}

func TestNftEndpoints(t *testing.T) {
	router := newTestServer(t)
	initializeBridge(t, router)

	w := doRequest(t, router, http.MethodPost, "/v1/nfts", map[string]any{
		"owner":               "alice",
		"uri":                 "https://meta/1.json",
		"name":                "Galaxy #1",
		"symbol":              "GLX",
		"cross_chain_enabled": true,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var minted struct {
		Mint string `json:"mint"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &minted))
	require.NotEmpty(t, minted.Mint)

	t.Run("get asset", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/v1/nfts/"+minted.Mint, nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), "Galaxy #1")
	})

	t.Run("unknown asset", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/v1/nfts/unknown", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("verify ownership", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost,
			fmt.Sprintf("/v1/nfts/%s/verify", minted.Mint),
			map[string]any{"owner": "alice"},
		)
		require.Equal(t, http.StatusOK, w.Code)

		w = doRequest(t, router, http.MethodPost,
			fmt.Sprintf("/v1/nfts/%s/verify", minted.Mint),
			map[string]any{"owner": "bob"},
		)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("list assets", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/v1/nfts", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), minted.Mint)
	})
}

func TestTransferEndpoints(t *testing.T) {
	router := newTestServer(t)
	initializeBridge(t, router)

	w := doRequest(t, router, http.MethodPost, "/v1/nfts", map[string]any{
		"owner":               "alice",
		"cross_chain_enabled": true,
	})
	require.Equal(t, http.StatusOK, w.Code)
	var minted struct {
		Mint string `json:"mint"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &minted))

	transferBody := map[string]any{
		"owner":                "alice",
		"mint":                 minted.Mint,
		"destination_chain_id": 1,
		"recipient_address":    "aabb",
		"nonce":                1,
	}

	w = doRequest(t, router, http.MethodPost, "/v1/transfers", transferBody)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	t.Run("get transfer", func(t *testing.T) {
		path := fmt.Sprintf("/v1/transfers/%s/1", minted.Mint)
		w := doRequest(t, router, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, w.Code)

		w = doRequest(t, router, http.MethodGet,
			fmt.Sprintf("/v1/transfers/%s/99", minted.Mint), nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("locked asset conflicts", func(t *testing.T) {
		body := transferBody
		body["nonce"] = 2
		w := doRequest(t, router, http.MethodPost, "/v1/transfers", body)
		require.Equal(t, http.StatusConflict, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Equal(t, "NFT_LOCKED", resp["code"])
	})

	t.Run("invalid hex recipient", func(t *testing.T) {
		body := map[string]any{
			"owner":                "alice",
			"mint":                 minted.Mint,
			"destination_chain_id": 1,
			"recipient_address":    "not-hex",
			"nonce":                3,
		}
		w := doRequest(t, router, http.MethodPost, "/v1/transfers", body)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestReceiptEndpoints(t *testing.T) {
	router := newTestServer(t)
	initializeBridge(t, router)

	txHash := bytes.Repeat([]byte{0x11}, 32)
	receiveBody := map[string]any{
		"origin_chain_id": 1,
		"origin_tx_hash":  hex.EncodeToString(txHash),
		"uri":             "https://meta/inbound.json",
		"name":            "Inbound",
		"symbol":          "INB",
		"original_owner":  hex.EncodeToString(bytes.Repeat([]byte{0x22}, 20)),
		"tss_signature":   hex.EncodeToString(bytes.Repeat([]byte{0x33}, 64)),
		"nonce":           1,
		"recipient":       "bob",
	}

	w := doRequest(t, router, http.MethodPost, "/v1/receipts", receiveBody)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	t.Run("get receipt", func(t *testing.T) {
		path := fmt.Sprintf("/v1/receipts/%s/1", hex.EncodeToString(txHash))
		w := doRequest(t, router, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, w.Code)

		w = doRequest(t, router, http.MethodGet,
			fmt.Sprintf("/v1/receipts/%s/99", hex.EncodeToString(txHash)), nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("replayed event conflicts", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/v1/receipts", receiveBody)
		require.Equal(t, http.StatusConflict, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Equal(t, "RECEIPT_ALREADY_EXISTS", resp["code"])
	})
}

func TestPauseEndpoint(t *testing.T) {
	router := newTestServer(t)
	initializeBridge(t, router)

	w := doRequest(t, router, http.MethodPost, "/v1/admin/pause", map[string]any{"paused": true})
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, router, http.MethodPost, "/v1/transfers", map[string]any{
		"owner": "alice", "mint": "any", "destination_chain_id": 1,
		"recipient_address": "aa", "nonce": 1,
	})
	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = doRequest(t, router, http.MethodPost, "/v1/admin/pause", map[string]any{"paused": false})
	require.Equal(t, http.StatusOK, w.Code)
}
