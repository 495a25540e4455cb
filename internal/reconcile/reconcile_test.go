package reconcile_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/evm-deployment-info/internal/domain"
	"github.com/trebuchet-org/evm-deployment-info/internal/domain/network"
	"github.com/trebuchet-org/evm-deployment-info/internal/reconcile"
)

var (
	addrA = common.HexToAddress("0x1111111111111111111111111111111111111111")
	addrB = common.HexToAddress("0x2222222222222222222222222222222222222222")
	addrC = common.HexToAddress("0x3333333333333333333333333333333333333333")
	addrX = common.HexToAddress("0x9999999999999999999999999999999999999999")
)

// buildSet creates a set from network/address pairs, keeping argument order
func buildSet(source string, pairs ...any) *domain.DeploymentSet {
	set := domain.NewDeploymentSet(source)
	for i := 0; i+1 < len(pairs); i += 2 {
		network := pairs[i].(string)
		switch v := pairs[i+1].(type) {
		case common.Address:
			set.Add(network, v, "")
		case nil:
			set.AddNetwork(network)
		}
	}
	return set
}

func defaultCatalog(t *testing.T) *network.Catalog {
	t.Helper()
	table, err := network.DefaultTable()
	require.NoError(t, err)
	return network.NewCatalog(table)
}

func TestCount(t *testing.T) {
	t.Run("sums set sizes", func(t *testing.T) {
		deployed := buildSet(domain.SourceDeployed,
			"Ethereum", addrA,
			"Ethereum", addrB,
			"Polygon", addrA,
			"hardhat", nil,
		)
		assert.Equal(t, 3, reconcile.Count(deployed))
	})

	t.Run("duplicate address does not change count", func(t *testing.T) {
		deployed := buildSet(domain.SourceDeployed, "Ethereum", addrA)
		before := reconcile.Count(deployed)
		deployed.Add("Ethereum", addrA, "Again")
		assert.Equal(t, before, reconcile.Count(deployed))
	})

	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, 0, reconcile.Count(domain.NewDeploymentSet(domain.SourceDeployed)))
	})

	t.Run("per network", func(t *testing.T) {
		deployed := buildSet(domain.SourceDeployed, "Polygon", addrA, "Ethereum", addrB, "Ethereum", addrC)
		deployed.SetChainID("Polygon", 137)

		assert.Equal(t, []reconcile.NetworkCount{
			{Network: "Polygon", ChainID: 137, Count: 1},
			{Network: "Ethereum", Count: 2},
		}, reconcile.CountByNetwork(deployed))
	})
}

func TestList(t *testing.T) {
	catalog := defaultCatalog(t)
	declared := buildSet(domain.SourceDeclared,
		"Ethereum Sepolia", addrB,
		"Polygon", addrC,
		"Ethereum", addrA,
		"Polygon Amoy", addrX,
	)

	t.Run("raw networks in source order", func(t *testing.T) {
		groups := reconcile.List(declared, false, catalog)

		keys := make([]string, 0, len(groups))
		for _, g := range groups {
			keys = append(keys, g.Key)
		}
		assert.Equal(t, []string{"Ethereum Sepolia", "Polygon", "Ethereum", "Polygon Amoy"}, keys)
	})

	t.Run("aggregated by family in first-seen order", func(t *testing.T) {
		groups := reconcile.List(declared, true, catalog)

		require.Len(t, groups, 2)
		assert.Equal(t, "Ethereum", groups[0].Key)
		assert.Equal(t, []string{"Ethereum Sepolia", "Ethereum"}, groups[0].Networks)
		assert.Equal(t, "Polygon", groups[1].Key)
		assert.Equal(t, []string{"Polygon", "Polygon Amoy"}, groups[1].Networks)
	})

	t.Run("aggregation never drops pairs", func(t *testing.T) {
		flat := reconcile.List(declared, false, catalog)
		grouped := reconcile.List(declared, true, catalog)

		var flatRecords, groupedRecords []domain.DeploymentRecord
		for _, g := range flat {
			flatRecords = append(flatRecords, g.Records...)
		}
		for _, g := range grouped {
			groupedRecords = append(groupedRecords, g.Records...)
			for _, r := range g.Records {
				assert.Equal(t, g.Key, string(catalog.Normalize(r.Network)))
			}
		}
		assert.ElementsMatch(t, flatRecords, groupedRecords)
		assert.LessOrEqual(t, len(grouped), len(flat))
	})
}

func TestAudit(t *testing.T) {
	t.Run("network only declared", func(t *testing.T) {
		declared := buildSet(domain.SourceDeclared, "Polygon", addrX)
		deployed := domain.NewDeploymentSet(domain.SourceDeployed)

		result := reconcile.Audit(declared, deployed)

		assert.Equal(t, []domain.DeploymentRecord{
			{Network: "Polygon", Address: addrX, Source: domain.SourceDeclared},
		}, result.OnlyInDeclared)
		assert.Empty(t, result.OnlyInDeployed)
		assert.False(t, result.Clean())
	})

	t.Run("address differences within a shared network", func(t *testing.T) {
		declared := buildSet(domain.SourceDeclared, "Ethereum", addrA, "Ethereum", addrB)
		deployed := buildSet(domain.SourceDeployed, "Ethereum", addrB, "Ethereum", addrC)

		result := reconcile.Audit(declared, deployed)

		require.Len(t, result.OnlyInDeclared, 1)
		assert.Equal(t, addrA, result.OnlyInDeclared[0].Address)
		require.Len(t, result.OnlyInDeployed, 1)
		assert.Equal(t, addrC, result.OnlyInDeployed[0].Address)
		assert.Equal(t, 1, result.Matched)
	})

	t.Run("identical sources are clean", func(t *testing.T) {
		declared := buildSet(domain.SourceDeclared, "Base", addrA)
		deployed := buildSet(domain.SourceDeployed, "Base", addrA)

		result := reconcile.Audit(declared, deployed)
		assert.True(t, result.Clean())
		assert.Equal(t, 1, result.Matched)
	})

	t.Run("swapping inputs swaps sides", func(t *testing.T) {
		declared := buildSet(domain.SourceDeclared,
			"Polygon", addrX, "Ethereum", addrA, "Ethereum", addrB, "Base", addrC)
		deployed := buildSet(domain.SourceDeployed,
			"Ethereum", addrB, "Ethereum", addrC, "Arbitrum One", addrA, "Base", addrC)

		forward := reconcile.Audit(declared, deployed)
		backward := reconcile.Audit(deployed, declared)

		if diff := cmp.Diff(forward.OnlyInDeclared, backward.OnlyInDeployed); diff != "" {
			t.Errorf("onlyInDeclared mismatch (-forward +backward):\n%s", diff)
		}
		if diff := cmp.Diff(forward.OnlyInDeployed, backward.OnlyInDeclared); diff != "" {
			t.Errorf("onlyInDeployed mismatch (-forward +backward):\n%s", diff)
		}
		assert.Equal(t, forward.Matched, backward.Matched)
	})

	t.Run("results are sorted", func(t *testing.T) {
		declared := buildSet(domain.SourceDeclared, "Polygon", addrB, "Ethereum", addrB, "Ethereum", addrA)

		result := reconcile.Audit(declared, nil)

		require.Len(t, result.OnlyInDeclared, 3)
		assert.Equal(t, "Ethereum", result.OnlyInDeclared[0].Network)
		assert.Equal(t, addrA, result.OnlyInDeclared[0].Address)
		assert.Equal(t, addrB, result.OnlyInDeclared[1].Address)
		assert.Equal(t, "Polygon", result.OnlyInDeclared[2].Network)
	})
}
