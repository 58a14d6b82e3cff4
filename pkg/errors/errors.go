package errors

import (
	"encoding/json"
	"fmt"
	"net/http"

	log "github.com/sirupsen/logrus"
)

// Code is the type representing a namespace error code.
type Code[MT any] struct {
	Code       uint16
	Name       string
	HTTPStatus int
}

// New creates a new error with the given code and the message
func (c Code[MT]) New(msg string, args ...any) TypedError[MT] {
	return &ErrorImpl[MT]{
		code:  c,
		cause: fmt.Errorf(msg, args...),
	}
}

// Wrap creates a new Error with the given code and the cause error
func (c Code[MT]) Wrap(cause error) TypedError[MT] {
	return &ErrorImpl[MT]{
		code:  c,
		cause: cause,
	}
}

func (c Code[MT]) String() string {
	return fmt.Sprintf("%s (%d)", c.Name, c.Code)
}

type Error interface {
	error
	Log() *log.Entry
	Code() uint16
	CodeName() string
	HTTPStatus() int
	Metadata() map[string]string
}

type TypedError[MT any] interface {
	Error
	WithMetadata(MT) TypedError[MT]
}

// ErrorImpl is the default concrete implementation of TypedError.
type ErrorImpl[MT any] struct {
	code     Code[MT]
	cause    error
	metadata MT
}

func (e *ErrorImpl[MT]) Log() *log.Entry {
	return log.WithField("name", e.code.Name).
		WithField("code", e.code.Code).
		WithField("metadata", e.metadata)
}

func (e *ErrorImpl[MT]) Metadata() map[string]string {
	// convert any metadata to map[string]string
	metadata := make(map[string]string)
	buf, err := json.Marshal(e.metadata)
	if err == nil {
		var genericMap map[string]any
		if err := json.Unmarshal(buf, &genericMap); err == nil {
			for k, v := range genericMap {
				vStr := ""
				if v != nil {
					vStr = fmt.Sprintf("%v", v)
				}
				metadata[k] = vStr
			}
		}
	}
	return metadata
}

func (e *ErrorImpl[MT]) HTTPStatus() int {
	return e.code.HTTPStatus
}

func (e *ErrorImpl[MT]) Code() uint16 {
	return e.code.Code
}

func (e *ErrorImpl[MT]) CodeName() string {
	return e.code.Name
}

// Error() implements the error interface.
func (e *ErrorImpl[MT]) Error() string {
	return fmt.Sprintf("%s: %s", e.code.String(), e.cause.Error())
}

func (e *ErrorImpl[MT]) WithMetadata(metadata MT) TypedError[MT] {
	e.metadata = metadata
	return e
}

var INTERNAL_ERROR = Code[map[string]any]{0, "INTERNAL_ERROR", http.StatusInternalServerError}
var NOT_INITIALIZED = Code[any]{1, "NOT_INITIALIZED", http.StatusConflict}
var ALREADY_INITIALIZED = Code[any]{2, "ALREADY_INITIALIZED", http.StatusConflict}
var CROSS_CHAIN_PAUSED = Code[any]{3, "CROSS_CHAIN_PAUSED", http.StatusServiceUnavailable}
var CROSS_CHAIN_NOT_ENABLED = Code[AssetMetadata]{
	4,
	"CROSS_CHAIN_NOT_ENABLED",
	http.StatusUnprocessableEntity,
}
var NFT_LOCKED = Code[AssetMetadata]{5, "NFT_LOCKED", http.StatusConflict}
var INSUFFICIENT_TOKENS = Code[BalanceMetadata]{
	6,
	"INSUFFICIENT_TOKENS",
	http.StatusUnprocessableEntity,
}
var ASSET_NOT_FOUND = Code[AssetMetadata]{7, "ASSET_NOT_FOUND", http.StatusNotFound}
var INVALID_NONCE = Code[NonceMetadata]{8, "INVALID_NONCE", http.StatusBadRequest}
var INVALID_RECIPIENT_ADDRESS = Code[LengthMetadata]{
	9,
	"INVALID_RECIPIENT_ADDRESS",
	http.StatusBadRequest,
}
var UNSUPPORTED_CHAIN = Code[ChainMetadata]{10, "UNSUPPORTED_CHAIN", http.StatusBadRequest}
var INVALID_METADATA = Code[FieldMetadata]{11, "INVALID_METADATA", http.StatusBadRequest}
var INVALID_TSS_SIGNATURE = Code[map[string]any]{
	12,
	"INVALID_TSS_SIGNATURE",
	http.StatusUnauthorized,
}
var TRANSFER_ALREADY_EXISTS = Code[TransferMetadata]{
	13,
	"TRANSFER_ALREADY_EXISTS",
	http.StatusConflict,
}
var RECEIPT_ALREADY_EXISTS = Code[ReceiptMetadata]{
	14,
	"RECEIPT_ALREADY_EXISTS",
	http.StatusConflict,
}
var ARITHMETIC_OVERFLOW = Code[map[string]any]{
	15,
	"ARITHMETIC_OVERFLOW",
	http.StatusInternalServerError,
}
var INVALID_GATEWAY = Code[any]{16, "INVALID_GATEWAY", http.StatusBadRequest}
var INVALID_TSS_AUTHORITY = Code[any]{17, "INVALID_TSS_AUTHORITY", http.StatusBadRequest}
var INVALID_OWNER = Code[any]{18, "INVALID_OWNER", http.StatusBadRequest}

type AssetMetadata struct {
	Mint string `json:"mint"`
}

type BalanceMetadata struct {
	Mint    string `json:"mint"`
	Owner   string `json:"owner"`
	Balance uint64 `json:"balance"`
}

type NonceMetadata struct {
	Nonce        uint64 `json:"nonce"`
	NonceCounter uint64 `json:"nonce_counter"`
}

type LengthMetadata struct {
	Length    int `json:"length"`
	MaxLength int `json:"max_length"`
}

type ChainMetadata struct {
	ChainID uint64 `json:"chain_id"`
}

type FieldMetadata struct {
	Field     string `json:"field"`
	Length    int    `json:"length"`
	MaxLength int    `json:"max_length"`
}

type TransferMetadata struct {
	Mint  string `json:"mint"`
	Nonce uint64 `json:"nonce"`
}

type ReceiptMetadata struct {
	OriginTxHash string `json:"origin_tx_hash"`
	Nonce        uint64 `json:"nonce"`
}
