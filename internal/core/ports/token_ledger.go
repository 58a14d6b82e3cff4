package ports

import "context"

// TokenLedger is the minting interface of the host ledger's token program.
// Every mint is a fungible unit of one: the balance of an owner for a given
// mint is either zero or one.
type TokenLedger interface {
	// Mint creates the unit token for the given mint id and assigns it to
	// the owner. Fails if the mint id already exists.
	Mint(ctx context.Context, mintID, owner string) error
	// Burn removes the unit token, typically when an asset leaves the home
	// chain for good.
	Burn(ctx context.Context, mintID string) error
	BalanceOf(ctx context.Context, mintID, owner string) (uint64, error)
}
