package application

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/unft/unftd/internal/core/domain"
	"github.com/unft/unftd/internal/core/ports"
	"github.com/unft/unftd/pkg/errors"
)

// Service is the cross-chain transfer state machine together with its
// authorization and replay-protection logic.
type Service interface {
	Initialize(ctx context.Context, gatewayAddress, tssAddress string, chainID uint64) error
	MintNft(
		ctx context.Context, owner, uri, name, symbol string, crossChainEnabled bool,
	) (string, error)
	InitiateTransfer(
		ctx context.Context, owner, mint string,
		destinationChainID uint64, recipientAddress []byte, nonce uint64,
	) error
	ReceiveTransfer(ctx context.Context, req ReceiveTransferRequest) (string, error)
	VerifyOwnership(ctx context.Context, mint, owner string) (*OwnershipProof, error)
	SetPaused(ctx context.Context, paused bool) error

	GetConfig(ctx context.Context) (*domain.BridgeConfig, error)
	GetStats(ctx context.Context) (*domain.BridgeStats, error)
	GetAsset(ctx context.Context, mint string) (*domain.Asset, error)
	ListAssets(ctx context.Context) ([]domain.Asset, error)
	GetTransfer(ctx context.Context, mint string, nonce uint64) (*domain.Transfer, error)
	GetReceipt(ctx context.Context, originTxHash []byte, nonce uint64) (*domain.Receipt, error)
}

type bridgeService struct {
	repoManager ports.RepoManager
	tokens      ports.TokenLedger
	tss         ports.TssVerifier
	chains      ports.ChainRegistry
	events      ports.EventPublisher

	// Mimics the host ledger's single-writer transaction model: mutating
	// operations run one at a time, so a guard list and the writes that
	// follow it form one atomic unit.
	mu sync.Mutex
}

func NewService(
	repoManager ports.RepoManager, tokens ports.TokenLedger,
	tss ports.TssVerifier, chains ports.ChainRegistry, events ports.EventPublisher,
) Service {
	return &bridgeService{
		repoManager: repoManager,
		tokens:      tokens,
		tss:         tss,
		chains:      chains,
		events:      events,
	}
}

func (s *bridgeService) Initialize(
	ctx context.Context, gatewayAddress, tssAddress string, chainID uint64,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.repoManager.Config().Get(ctx)
	if err != nil {
		return errors.INTERNAL_ERROR.Wrap(err)
	}
	if existing != nil {
		return errors.ALREADY_INITIALIZED.New("bridge already initialized")
	}
	if gatewayAddress == "" {
		return errors.INVALID_GATEWAY.New("gateway address is required")
	}
	if tssAddress == "" {
		return errors.INVALID_TSS_AUTHORITY.New("tss address is required")
	}
	if chainID == 0 {
		return errors.UNSUPPORTED_CHAIN.New("home chain id must not be zero").
			WithMetadata(errors.ChainMetadata{ChainID: chainID})
	}

	config := domain.NewBridgeConfig(gatewayAddress, tssAddress, chainID)
	if err := s.repoManager.Config().Insert(ctx, *config); err != nil {
		return errors.INTERNAL_ERROR.Wrap(err)
	}
	if err := s.repoManager.Stats().Upsert(ctx, domain.BridgeStats{}); err != nil {
		return errors.INTERNAL_ERROR.Wrap(err)
	}

	log.WithFields(log.Fields{
		"gateway":  gatewayAddress,
		"tss":      tssAddress,
		"chain_id": chainID,
	}).Info("bridge initialized")
	return nil
}

func (s *bridgeService) MintNft(
	ctx context.Context, owner, uri, name, symbol string, crossChainEnabled bool,
) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	config, err := s.config(ctx)
	if err != nil {
		return "", err
	}
	if owner == "" {
		return "", errors.INVALID_OWNER.New("owner is required")
	}
	if err := validateAssetMetadata(uri, name, symbol); err != nil {
		return "", err
	}

	stats, err := s.stats(ctx)
	if err != nil {
		return "", err
	}
	if err := stats.IncrementMinted(); err != nil {
		return "", err
	}

	mintID := uuid.NewString()
	if err := s.tokens.Mint(ctx, mintID, owner); err != nil {
		return "", errors.INTERNAL_ERROR.Wrap(err)
	}

	asset := domain.Asset{
		MintID:            mintID,
		OriginalOwner:     owner,
		CurrentOwner:      owner,
		URI:               uri,
		Name:              name,
		Symbol:            symbol,
		CrossChainEnabled: crossChainEnabled,
		Locked:            false,
		OriginChainID:     config.ChainID,
		CreatedAt:         time.Now().Unix(),
	}
	if err := s.repoManager.Assets().AddAsset(ctx, asset); err != nil {
		return "", errors.INTERNAL_ERROR.Wrap(err)
	}
	if err := s.repoManager.Stats().Upsert(ctx, stats); err != nil {
		return "", errors.INTERNAL_ERROR.Wrap(err)
	}

	log.WithFields(log.Fields{
		"mint":                mintID,
		"owner":               owner,
		"cross_chain_enabled": crossChainEnabled,
	}).Info("minted nft")
	return mintID, nil
}

func (s *bridgeService) InitiateTransfer(
	ctx context.Context, owner, mint string,
	destinationChainID uint64, recipientAddress []byte, nonce uint64,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	config, err := s.config(ctx)
	if err != nil {
		return err
	}
	if config.Paused {
		return errors.CROSS_CHAIN_PAUSED.New("cross-chain transfers are paused")
	}

	asset, err := s.asset(ctx, mint)
	if err != nil {
		return err
	}
	if !asset.CrossChainEnabled {
		return errors.CROSS_CHAIN_NOT_ENABLED.New("cross-chain transfers not enabled for %s", mint).
			WithMetadata(errors.AssetMetadata{Mint: mint})
	}
	if asset.Locked {
		return errors.NFT_LOCKED.New("nft %s is locked for cross-chain transfer", mint).
			WithMetadata(errors.AssetMetadata{Mint: mint})
	}

	balance, err := s.tokens.BalanceOf(ctx, mint, owner)
	if err != nil {
		return errors.INTERNAL_ERROR.Wrap(err)
	}
	if balance < 1 {
		return errors.INSUFFICIENT_TOKENS.New("owner %s holds no tokens for mint %s", owner, mint).
			WithMetadata(errors.BalanceMetadata{Mint: mint, Owner: owner, Balance: balance})
	}

	if nonce <= config.NonceCounter {
		return errors.INVALID_NONCE.
			New("nonce must be greater than current counter %d", config.NonceCounter).
			WithMetadata(errors.NonceMetadata{Nonce: nonce, NonceCounter: config.NonceCounter})
	}
	if err := validateRecipientAddress(recipientAddress); err != nil {
		return err
	}
	if destinationChainID == 0 || destinationChainID == config.ChainID ||
		!s.chains.Supports(destinationChainID) {
		return errors.UNSUPPORTED_CHAIN.
			New("unsupported destination chain %d", destinationChainID).
			WithMetadata(errors.ChainMetadata{ChainID: destinationChainID})
	}

	stats, err := s.stats(ctx)
	if err != nil {
		return err
	}
	if err := stats.IncrementTransfers(); err != nil {
		return err
	}

	now := time.Now().Unix()
	transfer := domain.Transfer{
		TransferKey:        domain.TransferKey{Mint: mint, Nonce: nonce},
		OriginalOwner:      owner,
		DestinationChainID: destinationChainID,
		RecipientAddress:   recipientAddress,
		Timestamp:          now,
		Status:             domain.TransferStatusPending,
	}
	// The exclusive create is the authoritative replay check for the
	// (mint, nonce) pair; it runs before any other write so a duplicate
	// leaves no partial state behind.
	if err := s.repoManager.Transfers().AddTransfer(ctx, transfer); err != nil {
		return err
	}

	asset.Locked = true
	asset.CurrentOwner = owner
	if err := s.repoManager.Assets().UpdateAsset(ctx, *asset); err != nil {
		return errors.INTERNAL_ERROR.Wrap(err)
	}
	if err := s.repoManager.Stats().Upsert(ctx, stats); err != nil {
		return errors.INTERNAL_ERROR.Wrap(err)
	}

	s.publish(domain.TopicTransferInitiated, domain.TransferInitiatedEvent{
		Mint:               mint,
		Owner:              owner,
		DestinationChainID: destinationChainID,
		RecipientAddress:   recipientAddress,
		Nonce:              nonce,
		Timestamp:          now,
	})

	log.WithFields(log.Fields{
		"mint":              mint,
		"destination_chain": destinationChainID,
		"nonce":             nonce,
	}).Info("cross-chain transfer initiated")
	return nil
}

func (s *bridgeService) ReceiveTransfer(
	ctx context.Context, req ReceiveTransferRequest,
) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	config, err := s.config(ctx)
	if err != nil {
		return "", err
	}
	if config.Paused {
		return "", errors.CROSS_CHAIN_PAUSED.New("cross-chain transfers are paused")
	}

	if err := validateAssetMetadata(req.URI, req.Name, req.Symbol); err != nil {
		return "", err
	}
	if err := validateRequiredBytes(
		"origin_tx_hash", req.OriginTxHash, domain.MaxOriginTxHashLen,
	); err != nil {
		return "", err
	}
	if err := validateRequiredBytes(
		"original_owner", req.OriginalOwner, domain.MaxOriginalOwnerLen,
	); err != nil {
		return "", err
	}
	if err := validateTssSignature(req.TssSignature); err != nil {
		return "", err
	}
	if req.Recipient == "" {
		return "", errors.INVALID_OWNER.New("recipient is required")
	}

	message := EncodeReceiveMessage(
		req.OriginChainID, req.OriginTxHash,
		req.URI, req.Name, req.Symbol, req.OriginalOwner, req.Nonce,
	)
	valid, err := s.tss.Verify(ctx, message, req.TssSignature, config.TssAddress)
	if err != nil {
		return "", errors.INVALID_TSS_SIGNATURE.Wrap(err)
	}
	if !valid {
		return "", errors.INVALID_TSS_SIGNATURE.New("tss signature verification failed")
	}

	stats, err := s.stats(ctx)
	if err != nil {
		return "", err
	}
	if err := stats.IncrementMinted(); err != nil {
		return "", err
	}

	now := time.Now().Unix()
	mintID := uuid.NewString()
	receipt := domain.Receipt{
		ReceiptKey:    domain.ReceiptKey{OriginTxHash: req.OriginTxHash, Nonce: req.Nonce},
		OriginChainID: req.OriginChainID,
		Mint:          mintID,
		Recipient:     req.Recipient,
		OriginalOwner: req.OriginalOwner,
		Timestamp:     now,
		TssSignature:  req.TssSignature,
	}
	// Exclusive create of the receipt is the sole defense against
	// double-minting the same foreign event: it runs before the token mint
	// so a replay has no effect at all.
	if err := s.repoManager.Receipts().AddReceipt(ctx, receipt); err != nil {
		return "", err
	}

	if err := s.tokens.Mint(ctx, mintID, req.Recipient); err != nil {
		return "", errors.INTERNAL_ERROR.Wrap(err)
	}
	asset := domain.Asset{
		MintID:        mintID,
		OriginalOwner: req.Recipient,
		CurrentOwner:  req.Recipient,
		URI:           req.URI,
		Name:          req.Name,
		Symbol:        req.Symbol,
		// Assets received from another chain are always re-transferable.
		CrossChainEnabled: true,
		Locked:            false,
		OriginChainID:     req.OriginChainID,
		CreatedAt:         now,
	}
	if err := s.repoManager.Assets().AddAsset(ctx, asset); err != nil {
		return "", errors.INTERNAL_ERROR.Wrap(err)
	}
	if err := s.repoManager.Stats().Upsert(ctx, stats); err != nil {
		return "", errors.INTERNAL_ERROR.Wrap(err)
	}

	s.publish(domain.TopicTransferReceived, domain.TransferReceivedEvent{
		Mint:          mintID,
		Recipient:     req.Recipient,
		OriginChainID: req.OriginChainID,
		Nonce:         req.Nonce,
		Timestamp:     now,
	})

	log.WithFields(log.Fields{
		"mint":         mintID,
		"origin_chain": req.OriginChainID,
		"nonce":        req.Nonce,
	}).Info("received cross-chain nft")
	return mintID, nil
}

func (s *bridgeService) VerifyOwnership(
	ctx context.Context, mint, owner string,
) (*OwnershipProof, error) {
	asset, err := s.asset(ctx, mint)
	if err != nil {
		return nil, err
	}

	balance, err := s.tokens.BalanceOf(ctx, mint, owner)
	if err != nil {
		return nil, errors.INTERNAL_ERROR.Wrap(err)
	}
	if balance < 1 {
		return nil, errors.INSUFFICIENT_TOKENS.
			New("owner %s holds no tokens for mint %s", owner, mint).
			WithMetadata(errors.BalanceMetadata{Mint: mint, Owner: owner, Balance: balance})
	}

	now := time.Now().Unix()
	s.publish(domain.TopicOwnershipVerified, domain.OwnershipVerifiedEvent{
		Mint:              mint,
		Owner:             owner,
		CrossChainEnabled: asset.CrossChainEnabled,
		Locked:            asset.Locked,
		Timestamp:         now,
	})

	return &OwnershipProof{
		Mint:              mint,
		Owner:             owner,
		CrossChainEnabled: asset.CrossChainEnabled,
		Locked:            asset.Locked,
		VerifiedAt:        now,
	}, nil
}

func (s *bridgeService) SetPaused(ctx context.Context, paused bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	config, err := s.config(ctx)
	if err != nil {
		return err
	}
	if config.Paused == paused {
		return nil
	}

	config.Paused = paused
	config.UpdatedAt = time.Now().Unix()
	if err := s.repoManager.Config().Update(ctx, *config); err != nil {
		return errors.INTERNAL_ERROR.Wrap(err)
	}

	log.WithField("paused", paused).Info("updated bridge pause flag")
	return nil
}

func (s *bridgeService) GetConfig(ctx context.Context) (*domain.BridgeConfig, error) {
	return s.config(ctx)
}

func (s *bridgeService) GetStats(ctx context.Context) (*domain.BridgeStats, error) {
	stats, err := s.stats(ctx)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *bridgeService) GetAsset(ctx context.Context, mint string) (*domain.Asset, error) {
	return s.asset(ctx, mint)
}

func (s *bridgeService) ListAssets(ctx context.Context) ([]domain.Asset, error) {
	assets, err := s.repoManager.Assets().ListAssets(ctx)
	if err != nil {
		return nil, errors.INTERNAL_ERROR.Wrap(err)
	}
	return assets, nil
}

func (s *bridgeService) GetTransfer(
	ctx context.Context, mint string, nonce uint64,
) (*domain.Transfer, error) {
	transfer, err := s.repoManager.Transfers().GetTransfer(
		ctx, domain.TransferKey{Mint: mint, Nonce: nonce},
	)
	if err != nil {
		return nil, errors.INTERNAL_ERROR.Wrap(err)
	}
	return transfer, nil
}

func (s *bridgeService) GetReceipt(
	ctx context.Context, originTxHash []byte, nonce uint64,
) (*domain.Receipt, error) {
	receipt, err := s.repoManager.Receipts().GetReceipt(
		ctx, domain.ReceiptKey{OriginTxHash: originTxHash, Nonce: nonce},
	)
	if err != nil {
		return nil, errors.INTERNAL_ERROR.Wrap(err)
	}
	return receipt, nil
}

func (s *bridgeService) config(ctx context.Context) (*domain.BridgeConfig, error) {
	config, err := s.repoManager.Config().Get(ctx)
	if err != nil {
		return nil, errors.INTERNAL_ERROR.Wrap(err)
	}
	if config == nil {
		return nil, errors.NOT_INITIALIZED.New("bridge not initialized")
	}
	return config, nil
}

func (s *bridgeService) stats(ctx context.Context) (domain.BridgeStats, error) {
	stats, err := s.repoManager.Stats().Get(ctx)
	if err != nil {
		return domain.BridgeStats{}, errors.INTERNAL_ERROR.Wrap(err)
	}
	if stats == nil {
		return domain.BridgeStats{}, nil
	}
	return *stats, nil
}

func (s *bridgeService) asset(ctx context.Context, mint string) (*domain.Asset, error) {
	asset, err := s.repoManager.Assets().GetAsset(ctx, mint)
	if err != nil {
		return nil, errors.INTERNAL_ERROR.Wrap(err)
	}
	if asset == nil {
		return nil, errors.ASSET_NOT_FOUND.New("no asset record for mint %s", mint).
			WithMetadata(errors.AssetMetadata{Mint: mint})
	}
	return asset, nil
}

// Notifications are best effort: a publish failure is logged, it never
// aborts an already committed operation.
func (s *bridgeService) publish(topic string, payload any) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(topic, payload); err != nil {
		log.WithError(err).WithField("topic", topic).Warn("failed to publish event")
	}
}
