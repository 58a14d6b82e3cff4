package chains_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/unft/unftd/internal/infrastructure/chains"
)

func TestAllowAllRegistry(t *testing.T) {
	registry := chains.NewAllowAllRegistry()

	require.True(t, registry.Supports(1))
	require.True(t, registry.Supports(56))
	require.False(t, registry.Supports(0))
}

func TestAllowListRegistry(t *testing.T) {
	registry := chains.NewAllowListRegistry([]uint64{1, 56})

	require.True(t, registry.Supports(1))
	require.True(t, registry.Supports(56))
	require.False(t, registry.Supports(137))
	require.False(t, registry.Supports(0))
}
