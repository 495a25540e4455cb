package network_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/evm-deployment-info/internal/domain"
	"github.com/trebuchet-org/evm-deployment-info/internal/domain/network"
)

func TestCatalogClassify(t *testing.T) {
	table, err := network.DefaultTable()
	require.NoError(t, err)
	catalog := network.NewCatalog(table)

	tests := []struct {
		name     string
		network  string
		chainID  uint64
		expected domain.NetworkClass
	}{
		{name: "table entry", network: "Ethereum", expected: domain.NetworkClassMainnet},
		{name: "table entry testnet", network: "Ethereum Sepolia", expected: domain.NetworkClassTestnet},
		{name: "alias", network: "baseSepolia", expected: domain.NetworkClassTestnet},
		{name: "alias is case insensitive", network: "MAINNET", expected: domain.NetworkClassMainnet},
		{name: "chain id fallback", network: "my-l2", chainID: 8453, expected: domain.NetworkClassMainnet},
		{name: "testnet suffix heuristic", network: "Acme Sepolia", expected: domain.NetworkClassTestnet},
		{name: "mainnet suffix heuristic", network: "Acme Mainnet", expected: domain.NetworkClassMainnet},
		{name: "testnet marker wins over mainnet marker", network: "Acme One Testnet", expected: domain.NetworkClassTestnet},
		{name: "unknown", network: "Acme", expected: domain.NetworkClassUnknown},
		{name: "unknown chain id", network: "Acme", chainID: 424242, expected: domain.NetworkClassUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, catalog.Classify(tt.network, tt.chainID))
		})
	}
}

func TestCatalogInjectedTable(t *testing.T) {
	catalog := network.NewCatalog(&network.Table{
		Networks: []network.Entry{
			{Name: "Acme", Class: domain.NetworkClassMainnet},
			{Name: "Acme Devnet", Class: domain.NetworkClassTestnet},
		},
		Suffixes: []network.SuffixRule{{Suffix: "devnet", Class: domain.NetworkClassTestnet}},
	})

	assert.Equal(t, domain.NetworkFamily("Acme"), catalog.Normalize("Acme Devnet"))
	assert.Equal(t, domain.NetworkClassMainnet, catalog.Classify("Acme", 0))
	assert.Equal(t, domain.NetworkClassUnknown, catalog.Classify("Ethereum", 1))
	assert.Len(t, catalog.Entries(), 2)
}
