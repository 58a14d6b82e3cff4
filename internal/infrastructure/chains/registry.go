package chains

import "github.com/unft/unftd/internal/core/ports"

type allowAllRegistry struct{}

// NewAllowAllRegistry accepts every non-zero chain id. Used when no
// allow-list is configured.
func NewAllowAllRegistry() ports.ChainRegistry {
	return allowAllRegistry{}
}

func (allowAllRegistry) Supports(chainID uint64) bool {
	return chainID != 0
}

type allowListRegistry struct {
	chains map[uint64]struct{}
}

func NewAllowListRegistry(chainIDs []uint64) ports.ChainRegistry {
	chains := make(map[uint64]struct{}, len(chainIDs))
	for _, id := range chainIDs {
		chains[id] = struct{}{}
	}
	return &allowListRegistry{chains}
}

func (r *allowListRegistry) Supports(chainID uint64) bool {
	_, ok := r.chains[chainID]
	return ok
}
