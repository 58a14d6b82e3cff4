package ports

// ChainRegistry is the destination-chain predicate. The zero id and the home
// chain id are always rejected by the service before this is consulted.
type ChainRegistry interface {
	Supports(chainID uint64) bool
}
