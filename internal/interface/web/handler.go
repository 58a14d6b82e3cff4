package web

import (
	"encoding/hex"
	stderrors "errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/unft/unftd/internal/core/application"
	"github.com/unft/unftd/pkg/errors"
)

type handler struct {
	svc application.Service
}

func newHandler(svc application.Service) *handler {
	return &handler{svc}
}

type initializeRequest struct {
	GatewayAddress string `json:"gateway_address" binding:"required"`
	TssAddress     string `json:"tss_address" binding:"required"`
	ChainID        uint64 `json:"chain_id"`
}

func (h *handler) initialize(c *gin.Context) {
	var req initializeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	if err := h.svc.Initialize(
		c.Request.Context(), req.GatewayAddress, req.TssAddress, req.ChainID,
	); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"initialized": true})
}

type setPausedRequest struct {
	Paused *bool `json:"paused" binding:"required"`
}

func (h *handler) setPaused(c *gin.Context) {
	var req setPausedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	if err := h.svc.SetPaused(c.Request.Context(), *req.Paused); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"paused": *req.Paused})
}

type mintRequest struct {
	Owner             string `json:"owner" binding:"required"`
	URI               string `json:"uri"`
	Name              string `json:"name"`
	Symbol            string `json:"symbol"`
	CrossChainEnabled bool   `json:"cross_chain_enabled"`
}

func (h *handler) mintNft(c *gin.Context) {
	var req mintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	mint, err := h.svc.MintNft(
		c.Request.Context(), req.Owner, req.URI, req.Name, req.Symbol, req.CrossChainEnabled,
	)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mint": mint})
}

type initiateTransferRequest struct {
	Owner              string `json:"owner" binding:"required"`
	Mint               string `json:"mint" binding:"required"`
	DestinationChainID uint64 `json:"destination_chain_id"`
	RecipientAddress   string `json:"recipient_address"`
	Nonce              uint64 `json:"nonce"`
}

func (h *handler) initiateTransfer(c *gin.Context) {
	var req initiateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	recipient, err := hex.DecodeString(req.RecipientAddress)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "recipient_address must be hex encoded"})
		return
	}

	if err := h.svc.InitiateTransfer(
		c.Request.Context(), req.Owner, req.Mint,
		req.DestinationChainID, recipient, req.Nonce,
	); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mint": req.Mint, "nonce": req.Nonce, "status": "pending"})
}

type receiveTransferRequest struct {
	OriginChainID uint64 `json:"origin_chain_id"`
	OriginTxHash  string `json:"origin_tx_hash"`
	URI           string `json:"uri"`
	Name          string `json:"name"`
	Symbol        string `json:"symbol"`
	OriginalOwner string `json:"original_owner"`
	TssSignature  string `json:"tss_signature"`
	Nonce         uint64 `json:"nonce"`
	Recipient     string `json:"recipient" binding:"required"`
}

func (h *handler) receiveTransfer(c *gin.Context) {
	var req receiveTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	txHash, err := hex.DecodeString(req.OriginTxHash)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "origin_tx_hash must be hex encoded"})
		return
	}
	originalOwner, err := hex.DecodeString(req.OriginalOwner)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "original_owner must be hex encoded"})
		return
	}
	signature, err := hex.DecodeString(req.TssSignature)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tss_signature must be hex encoded"})
		return
	}

	mint, err := h.svc.ReceiveTransfer(c.Request.Context(), application.ReceiveTransferRequest{
		OriginChainID: req.OriginChainID,
		OriginTxHash:  txHash,
		URI:           req.URI,
		Name:          req.Name,
		Symbol:        req.Symbol,
		OriginalOwner: originalOwner,
		TssSignature:  signature,
		Nonce:         req.Nonce,
		Recipient:     req.Recipient,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mint": mint})
}

type verifyOwnershipRequest struct {
	Owner string `json:"owner" binding:"required"`
}

func (h *handler) verifyOwnership(c *gin.Context) {
	var req verifyOwnershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	proof, err := h.svc.VerifyOwnership(c.Request.Context(), c.Param("mint"), req.Owner)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"mint":                proof.Mint,
		"owner":               proof.Owner,
		"cross_chain_enabled": proof.CrossChainEnabled,
		"locked":              proof.Locked,
		"verified_at":         proof.VerifiedAt,
	})
}

func (h *handler) getConfig(c *gin.Context) {
	config, err := h.svc.GetConfig(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, config)
}

func (h *handler) getStats(c *gin.Context) {
	stats, err := h.svc.GetStats(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *handler) getAsset(c *gin.Context) {
	asset, err := h.svc.GetAsset(c.Request.Context(), c.Param("mint"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, asset)
}

func (h *handler) listAssets(c *gin.Context) {
	assets, err := h.svc.ListAssets(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"assets": assets})
}

func (h *handler) getTransfer(c *gin.Context) {
	nonce, err := strconv.ParseUint(c.Param("nonce"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid nonce"})
		return
	}

	transfer, err := h.svc.GetTransfer(c.Request.Context(), c.Param("mint"), nonce)
	if err != nil {
		writeError(c, err)
		return
	}
	if transfer == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "transfer not found"})
		return
	}
	c.JSON(http.StatusOK, transfer)
}

func (h *handler) getReceipt(c *gin.Context) {
	txHash, err := hex.DecodeString(c.Param("txhash"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tx hash must be hex encoded"})
		return
	}
	nonce, err := strconv.ParseUint(c.Param("nonce"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid nonce"})
		return
	}

	receipt, err := h.svc.GetReceipt(c.Request.Context(), txHash, nonce)
	if err != nil {
		writeError(c, err)
		return
	}
	if receipt == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "receipt not found"})
		return
	}
	c.JSON(http.StatusOK, receipt)
}

func (h *handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func writeError(c *gin.Context, err error) {
	var bridgeErr errors.Error
	if stderrors.As(err, &bridgeErr) {
		c.JSON(bridgeErr.HTTPStatus(), gin.H{
			"error":    err.Error(),
			"code":     bridgeErr.CodeName(),
			"metadata": bridgeErr.Metadata(),
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
