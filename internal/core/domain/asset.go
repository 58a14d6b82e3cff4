package domain

import "fmt"

const (
	MaxURILen    = 200
	MaxNameLen   = 32
	MaxSymbolLen = 10

	MaxRecipientAddressLen = 64
	MaxOriginTxHashLen     = 64
	MaxOriginalOwnerLen    = 64
	MaxTssSignatureLen     = 128
)

type Asset struct {
	MintID            string
	OriginalOwner     string
	CurrentOwner      string
	URI               string
	Name              string
	Symbol            string
	CrossChainEnabled bool
	Locked            bool
	OriginChainID     uint64
	CreatedAt         int64
}

func (a Asset) String() string {
	return fmt.Sprintf("%s (%s)", a.Name, a.MintID)
}

// IsNative reports whether the asset was minted on the home chain rather
// than received from a foreign one.
func (a Asset) IsNative(homeChainID uint64) bool {
	return a.OriginChainID == homeChainID
}
