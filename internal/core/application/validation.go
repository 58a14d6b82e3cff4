package application

import (
	"github.com/unft/unftd/internal/core/domain"
	"github.com/unft/unftd/pkg/errors"
)

func validateAssetMetadata(uri, name, symbol string) errors.Error {
	if len(uri) > domain.MaxURILen {
		return errors.INVALID_METADATA.New("metadata uri exceeds %d bytes", domain.MaxURILen).
			WithMetadata(errors.FieldMetadata{
				Field: "uri", Length: len(uri), MaxLength: domain.MaxURILen,
			})
	}
	if len(name) > domain.MaxNameLen {
		return errors.INVALID_METADATA.New("name exceeds %d bytes", domain.MaxNameLen).
			WithMetadata(errors.FieldMetadata{
				Field: "name", Length: len(name), MaxLength: domain.MaxNameLen,
			})
	}
	if len(symbol) > domain.MaxSymbolLen {
		return errors.INVALID_METADATA.New("symbol exceeds %d bytes", domain.MaxSymbolLen).
			WithMetadata(errors.FieldMetadata{
				Field: "symbol", Length: len(symbol), MaxLength: domain.MaxSymbolLen,
			})
	}
	return nil
}

// validateRequiredBytes enforces a 1..max length bound on a byte field.
func validateRequiredBytes(field string, value []byte, max int) errors.Error {
	if len(value) == 0 || len(value) > max {
		return errors.INVALID_METADATA.New("%s must be 1 to %d bytes", field, max).
			WithMetadata(errors.FieldMetadata{
				Field: field, Length: len(value), MaxLength: max,
			})
	}
	return nil
}

func validateRecipientAddress(recipient []byte) errors.Error {
	if len(recipient) == 0 || len(recipient) > domain.MaxRecipientAddressLen {
		return errors.INVALID_RECIPIENT_ADDRESS.
			New("recipient address must be 1 to %d bytes", domain.MaxRecipientAddressLen).
			WithMetadata(errors.LengthMetadata{
				Length: len(recipient), MaxLength: domain.MaxRecipientAddressLen,
			})
	}
	return nil
}

func validateTssSignature(signature []byte) errors.Error {
	if len(signature) == 0 || len(signature) > domain.MaxTssSignatureLen {
		return errors.INVALID_TSS_SIGNATURE.
			New("tss signature must be 1 to %d bytes", domain.MaxTssSignatureLen)
	}
	return nil
}
