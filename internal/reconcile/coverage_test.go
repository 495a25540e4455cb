package reconcile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/evm-deployment-info/internal/domain"
	"github.com/trebuchet-org/evm-deployment-info/internal/reconcile"
)

func TestCoverage(t *testing.T) {
	catalog := defaultCatalog(t)

	t.Run("mainnet and testnet of one family", func(t *testing.T) {
		deployed := buildSet(domain.SourceDeployed,
			"Ethereum", addrA,
			"Ethereum Sepolia", addrB,
		)

		report := reconcile.Coverage(deployed, catalog, catalog)

		require.Len(t, report.Families, 1)
		eth, ok := report.Get("Ethereum")
		require.True(t, ok)
		assert.True(t, eth.HasMainnet)
		assert.True(t, eth.HasTestnet)
		assert.Equal(t, []string{"Ethereum"}, eth.Mainnets)
		assert.Equal(t, []string{"Ethereum Sepolia"}, eth.Testnets)
		assert.Empty(t, report.Incomplete())
	})

	t.Run("one-sided families are incomplete", func(t *testing.T) {
		deployed := buildSet(domain.SourceDeployed,
			"Base Sepolia", addrA,
			"Polygon", addrB,
			"Polygon Amoy", addrC,
		)

		report := reconcile.Coverage(deployed, catalog, catalog)

		incomplete := report.Incomplete()
		require.Len(t, incomplete, 1)
		assert.Equal(t, domain.NetworkFamily("Base"), incomplete[0].Family)
		assert.False(t, incomplete[0].HasMainnet)
		assert.True(t, incomplete[0].HasTestnet)
	})

	t.Run("hardhat directory names group through aliases", func(t *testing.T) {
		deployed := buildSet(domain.SourceDeployed,
			"mainnet", addrA,
			"sepolia", addrB,
			"arbitrumSepolia", addrC,
		)

		report := reconcile.Coverage(deployed, catalog, catalog)

		eth, ok := report.Get("Ethereum")
		require.True(t, ok)
		assert.True(t, eth.Complete())

		arb, ok := report.Get("Arbitrum")
		require.True(t, ok)
		assert.False(t, arb.HasMainnet)
		assert.True(t, arb.HasTestnet)
	})

	t.Run("empty networks do not count", func(t *testing.T) {
		deployed := buildSet(domain.SourceDeployed,
			"Ethereum", addrA,
			"Ethereum Sepolia", nil,
		)

		report := reconcile.Coverage(deployed, catalog, catalog)

		eth, _ := report.Get("Ethereum")
		assert.False(t, eth.HasTestnet)
		assert.Equal(t, []string{"Ethereum Sepolia"}, eth.Empty)
	})

	t.Run("unclassified networks", func(t *testing.T) {
		deployed := buildSet(domain.SourceDeployed, "Acme", addrA)

		report := reconcile.Coverage(deployed, catalog, catalog)

		acme, ok := report.Get("Acme")
		require.True(t, ok)
		assert.Equal(t, []string{"Acme"}, acme.Unknown)
		assert.False(t, acme.Complete())
	})

	t.Run("chain id classifies unknown names", func(t *testing.T) {
		deployed := buildSet(domain.SourceDeployed, "acme-l2", addrA)
		deployed.SetChainID("acme-l2", 84532)

		report := reconcile.Coverage(deployed, catalog, catalog)

		fc, ok := report.Get("acme-l2")
		require.True(t, ok)
		assert.True(t, fc.HasTestnet)
	})
}
