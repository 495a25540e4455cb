package network

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/evm-deployment-info/internal/domain"
)

func TestDefaultTable(t *testing.T) {
	table, err := DefaultTable()
	require.NoError(t, err)

	eth, ok := table.Lookup("homestead")
	require.True(t, ok)
	assert.Equal(t, "Ethereum", eth.Name)
	assert.Equal(t, uint64(1), eth.ChainID)

	assert.NotEmpty(t, table.Suffixes)
	assert.Equal(t, "Ethereum Sepolia", table.Aliases()["sepolia"])
}

func TestTableValidate(t *testing.T) {
	tests := []struct {
		name  string
		table Table
		err   string
	}{
		{
			name:  "missing name",
			table: Table{Networks: []Entry{{Class: domain.NetworkClassMainnet}}},
			err:   "network #1 has no name",
		},
		{
			name:  "invalid class",
			table: Table{Networks: []Entry{{Name: "Acme", Class: "prod"}}},
			err:   `network "Acme" has invalid class "prod"`,
		},
		{
			name: "alias claimed twice",
			table: Table{Networks: []Entry{
				{Name: "Acme", Class: domain.NetworkClassMainnet, Aliases: []string{"acme-main"}},
				{Name: "Other", Class: domain.NetworkClassMainnet, Aliases: []string{"ACME-MAIN"}},
			}},
			err: `"ACME-MAIN" is claimed by both "Acme" and "Other"`,
		},
		{
			name:  "empty suffix",
			table: Table{Suffixes: []SuffixRule{{Suffix: " "}}},
			err:   "suffix rule with empty suffix",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.table.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.err)
		})
	}
}

func TestTableMerge(t *testing.T) {
	base := &Table{
		Networks: []Entry{
			{Name: "Ethereum", Class: domain.NetworkClassMainnet, ChainID: 1},
			{Name: "Base", Class: domain.NetworkClassMainnet, ChainID: 8453},
		},
		Suffixes: []SuffixRule{{Suffix: "sepolia", Class: domain.NetworkClassTestnet}},
	}
	override := &Table{
		Networks: []Entry{
			{Name: "acme", Class: domain.NetworkClassTestnet},
			{Name: "base", Class: domain.NetworkClassTestnet, ChainID: 84532},
		},
	}

	merged := base.Merge(override)

	require.Len(t, merged.Networks, 3)
	assert.Equal(t, "Ethereum", merged.Networks[0].Name)
	assert.Equal(t, "base", merged.Networks[1].Name)
	assert.Equal(t, domain.NetworkClassTestnet, merged.Networks[1].Class)
	assert.Equal(t, "acme", merged.Networks[2].Name)
	assert.Equal(t, base.Suffixes, merged.Suffixes)

	withRules := base.Merge(&Table{Suffixes: []SuffixRule{{Suffix: "devnet"}}})
	assert.Equal(t, "devnet", withRules.Suffixes[0].Suffix)
}
