package reconcile

import (
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
	"github.com/trebuchet-org/evm-deployment-info/internal/domain"
)

const maxSuggestions = 3

// Filter restricts a set to the named networks. A name matches a network
// case-insensitively, either by its identifier or by its family, so
// "Ethereum" selects "Ethereum Sepolia" too. An empty filter returns the set
// unchanged.
func Filter(set *domain.DeploymentSet, names []string, normalizer Normalizer) (*domain.DeploymentSet, error) {
	if len(names) == 0 {
		return set, nil
	}

	networks := set.Networks()
	selected := make(map[string]bool)
	for _, name := range names {
		matches := lo.Filter(networks, func(network string, _ int) bool {
			return strings.EqualFold(network, name) ||
				strings.EqualFold(string(normalizer.Normalize(network)), name)
		})
		if len(matches) == 0 {
			return nil, &domain.NetworkNotFoundError{
				Network:     name,
				Suggestions: Suggest(name, networks),
			}
		}
		for _, m := range matches {
			selected[m] = true
		}
	}

	out := domain.NewDeploymentSet(set.Source())
	for _, network := range networks {
		if !selected[network] {
			continue
		}
		out.AddNetwork(network)
		if chainID := set.ChainID(network); chainID != 0 {
			out.SetChainID(network, chainID)
		}
		for _, record := range set.Records(network) {
			out.Add(network, record.Address, record.Contract)
		}
	}
	return out, nil
}

// Suggest returns up to three network names close to a misspelled one
func Suggest(name string, networks []string) []string {
	matches := fuzzy.Find(strings.ToLower(name), lo.Map(networks, func(n string, _ int) string {
		return strings.ToLower(n)
	}))
	out := make([]string, 0, maxSuggestions)
	for _, m := range matches {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, networks[m.Index])
	}
	return out
}
