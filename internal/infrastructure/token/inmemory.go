package token

import (
	"context"
	"fmt"
	"sync"

	"github.com/unft/unftd/internal/core/ports"
)

// inMemoryLedger is a process-local stand-in for the host ledger's token
// program. Every mint is a unit token with a single owner.
type inMemoryLedger struct {
	mu     sync.RWMutex
	owners map[string]string
}

func NewInMemoryLedger() ports.TokenLedger {
	return &inMemoryLedger{
		owners: make(map[string]string),
	}
}

func (l *inMemoryLedger) Mint(ctx context.Context, mintID, owner string) error {
	if mintID == "" || owner == "" {
		return fmt.Errorf("mint id and owner are required")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.owners[mintID]; ok {
		return fmt.Errorf("mint %s already exists", mintID)
	}
	l.owners[mintID] = owner
	return nil
}

func (l *inMemoryLedger) Burn(ctx context.Context, mintID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.owners[mintID]; !ok {
		return fmt.Errorf("mint %s does not exist", mintID)
	}
	delete(l.owners, mintID)
	return nil
}

func (l *inMemoryLedger) BalanceOf(
	ctx context.Context, mintID, owner string,
) (uint64, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.owners[mintID] == owner && owner != "" {
		return 1, nil
	}
	return 0, nil
}
