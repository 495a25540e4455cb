package reconcile_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/evm-deployment-info/internal/domain"
	"github.com/trebuchet-org/evm-deployment-info/internal/reconcile"
)

func TestFilter(t *testing.T) {
	catalog := defaultCatalog(t)
	set := buildSet(domain.SourceDeclared,
		"Ethereum", addrA,
		"Ethereum Sepolia", addrB,
		"Polygon", addrC,
	)
	set.SetChainID("Polygon", 137)

	t.Run("no filter", func(t *testing.T) {
		out, err := reconcile.Filter(set, nil, catalog)
		require.NoError(t, err)
		assert.Same(t, set, out)
	})

	t.Run("by name, case insensitive", func(t *testing.T) {
		out, err := reconcile.Filter(set, []string{"polygon"}, catalog)
		require.NoError(t, err)
		assert.Equal(t, []string{"Polygon"}, out.Networks())
		assert.Equal(t, uint64(137), out.ChainID("Polygon"))
		assert.Equal(t, domain.SourceDeclared, out.Source())
	})

	t.Run("by family", func(t *testing.T) {
		out, err := reconcile.Filter(set, []string{"Ethereum"}, catalog)
		require.NoError(t, err)
		assert.Equal(t, []string{"Ethereum", "Ethereum Sepolia"}, out.Networks())
		assert.Equal(t, 2, reconcile.Count(out))
	})

	t.Run("unknown network suggests close names", func(t *testing.T) {
		_, err := reconcile.Filter(set, []string{"polygn"}, catalog)

		var notFound *domain.NetworkNotFoundError
		require.True(t, errors.As(err, &notFound))
		assert.Equal(t, "polygn", notFound.Network)
		assert.Contains(t, notFound.Suggestions, "Polygon")
	})
}
