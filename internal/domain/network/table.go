package network

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/trebuchet-org/evm-deployment-info/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed networks.yaml
var defaultTableYAML []byte

// Entry classifies a single known network
type Entry struct {
	Name    string              `yaml:"name" toml:"name" json:"name"`
	Class   domain.NetworkClass `yaml:"class" toml:"class" json:"class"`
	ChainID uint64              `yaml:"chain_id,omitempty" toml:"chain_id" json:"chainId,omitempty"`
	Aliases []string            `yaml:"aliases,omitempty" toml:"aliases" json:"aliases,omitempty"`
}

// Table is the classification data behind the normalizer and classifier
type Table struct {
	Networks []Entry      `yaml:"networks" toml:"networks"`
	Suffixes []SuffixRule `yaml:"suffixes" toml:"suffixes"`
}

// DefaultTable returns the built-in table of well-known EVM networks
func DefaultTable() (*Table, error) {
	var t Table
	if err := yaml.Unmarshal(defaultTableYAML, &t); err != nil {
		return nil, fmt.Errorf("failed to parse built-in network table: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("built-in network table: %w", err)
	}
	return &t, nil
}

// Validate checks that every entry is named and classified and that no name
// or alias is claimed twice.
func (t *Table) Validate() error {
	claimed := make(map[string]string)
	for i, e := range t.Networks {
		if strings.TrimSpace(e.Name) == "" {
			return fmt.Errorf("network #%d has no name", i+1)
		}
		if !e.Class.Valid() {
			return fmt.Errorf("network %q has invalid class %q (valid: mainnet, testnet)", e.Name, e.Class)
		}
		for _, key := range append([]string{e.Name}, e.Aliases...) {
			lower := strings.ToLower(key)
			if owner, exists := claimed[lower]; exists && owner != e.Name {
				return fmt.Errorf("%q is claimed by both %q and %q", key, owner, e.Name)
			}
			claimed[lower] = e.Name
		}
	}
	for _, r := range t.Suffixes {
		if strings.TrimSpace(r.Suffix) == "" {
			return fmt.Errorf("suffix rule with empty suffix")
		}
		if r.Class != "" && !r.Class.Valid() {
			return fmt.Errorf("suffix %q has invalid class %q", r.Suffix, r.Class)
		}
	}
	return nil
}

// Merge overlays other on top of t. Entries with the same name are replaced,
// new ones appended; suffix rules of other replace t's when present.
func (t *Table) Merge(other *Table) *Table {
	merged := &Table{
		Networks: make([]Entry, 0, len(t.Networks)+len(other.Networks)),
		Suffixes: t.Suffixes,
	}

	overrides := make(map[string]Entry, len(other.Networks))
	for _, e := range other.Networks {
		overrides[strings.ToLower(e.Name)] = e
	}
	for _, e := range t.Networks {
		key := strings.ToLower(e.Name)
		if o, ok := overrides[key]; ok {
			merged.Networks = append(merged.Networks, o)
			delete(overrides, key)
			continue
		}
		merged.Networks = append(merged.Networks, e)
	}
	for _, e := range other.Networks {
		if _, pending := overrides[strings.ToLower(e.Name)]; pending {
			merged.Networks = append(merged.Networks, e)
		}
	}

	if len(other.Suffixes) > 0 {
		merged.Suffixes = other.Suffixes
	}
	return merged
}

// Lookup finds an entry by name or alias, case-insensitively
func (t *Table) Lookup(name string) (Entry, bool) {
	for _, e := range t.Networks {
		if strings.EqualFold(e.Name, name) {
			return e, true
		}
		for _, alias := range e.Aliases {
			if strings.EqualFold(alias, name) {
				return e, true
			}
		}
	}
	return Entry{}, false
}

// Aliases returns alias -> canonical name for every entry
func (t *Table) Aliases() map[string]string {
	out := make(map[string]string)
	for _, e := range t.Networks {
		for _, alias := range e.Aliases {
			out[alias] = e.Name
		}
	}
	return out
}
