package network

import (
	"strings"

	"github.com/trebuchet-org/evm-deployment-info/internal/domain"
)

// Catalog bundles a network table with the normalizer and classifier built
// from it.
type Catalog struct {
	table      *Table
	normalizer *Normalizer
	byName     map[string]domain.NetworkClass
	byChainID  map[uint64]domain.NetworkClass
}

// NewCatalog builds a catalog from a validated table
func NewCatalog(table *Table) *Catalog {
	c := &Catalog{
		table:      table,
		normalizer: NewNormalizer(table.Suffixes, table.Aliases()),
		byName:     make(map[string]domain.NetworkClass),
		byChainID:  make(map[uint64]domain.NetworkClass),
	}
	for _, e := range table.Networks {
		c.byName[strings.ToLower(e.Name)] = e.Class
		for _, alias := range e.Aliases {
			c.byName[strings.ToLower(alias)] = e.Class
		}
		if e.ChainID != 0 {
			c.byChainID[e.ChainID] = e.Class
		}
	}
	return c
}

// Normalize returns the family of a network identifier
func (c *Catalog) Normalize(name string) domain.NetworkFamily {
	return c.normalizer.Normalize(name)
}

// Classify labels a network as mainnet or testnet. Table entries win, then the
// chain ID (0 when unknown), then the class of any stripped suffix, testnet
// markers taking precedence over mainnet ones.
func (c *Catalog) Classify(name string, chainID uint64) domain.NetworkClass {
	if class, ok := c.byName[strings.ToLower(name)]; ok {
		return class
	}
	if chainID != 0 {
		if class, ok := c.byChainID[chainID]; ok {
			return class
		}
	}

	_, stripped := c.normalizer.Strip(name)
	class := domain.NetworkClassUnknown
	for _, rule := range stripped {
		switch rule.Class {
		case domain.NetworkClassTestnet:
			return domain.NetworkClassTestnet
		case domain.NetworkClassMainnet:
			class = domain.NetworkClassMainnet
		}
	}
	return class
}

// Entries returns the table entries in table order
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.table.Networks))
	copy(out, c.table.Networks)
	return out
}

// Lookup finds the table entry for a name or alias
func (c *Catalog) Lookup(name string) (Entry, bool) {
	return c.table.Lookup(name)
}

// Table returns the underlying table
func (c *Catalog) Table() *Table {
	return c.table
}
