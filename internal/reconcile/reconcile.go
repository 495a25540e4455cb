// Package reconcile compares declared and deployed deployment sets. Every
// function here is a pure transformation over already loaded data.
package reconcile

import (
	"bytes"
	"sort"

	"github.com/samber/lo"
	"github.com/trebuchet-org/evm-deployment-info/internal/domain"
)

// Normalizer maps raw network identifiers to families
type Normalizer interface {
	Normalize(name string) domain.NetworkFamily
}

// Classifier labels networks as mainnet or testnet
type Classifier interface {
	Classify(name string, chainID uint64) domain.NetworkClass
}

// NetworkCount is the number of deployments recorded for one network
type NetworkCount struct {
	Network string
	ChainID uint64
	Count   int
}

// ListGroup is one block of a listing: a raw network, or a family when the
// listing is aggregated.
type ListGroup struct {
	Key      string
	Networks []string
	Records  []domain.DeploymentRecord
}

// Count returns the total number of distinct records across all networks
func Count(deployed *domain.DeploymentSet) int {
	return lo.SumBy(deployed.Networks(), deployed.Len)
}

// CountByNetwork returns per-network totals in first-seen order
func CountByNetwork(deployed *domain.DeploymentSet) []NetworkCount {
	return lo.Map(deployed.Networks(), func(network string, _ int) NetworkCount {
		return NetworkCount{
			Network: network,
			ChainID: deployed.ChainID(network),
			Count:   deployed.Len(network),
		}
	})
}

// List groups the records of a set by network, or by family when aggregate is
// set. Groups appear in the order their first network appears in the source.
func List(set *domain.DeploymentSet, aggregate bool, normalizer Normalizer) []ListGroup {
	groups := make([]ListGroup, 0)
	index := make(map[string]int)

	for _, network := range set.Networks() {
		key := network
		if aggregate {
			key = string(normalizer.Normalize(network))
		}

		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, ListGroup{Key: key})
		}
		groups[i].Networks = append(groups[i].Networks, network)
		groups[i].Records = append(groups[i].Records, set.Records(network)...)
	}

	return groups
}

// Audit computes the two-way difference between declared and deployed
// records. A network present in only one source contributes all of its
// addresses to that side.
func Audit(declared, deployed *domain.DeploymentSet) domain.AuditResult {
	onlyDeclared := difference(declared, deployed)
	onlyDeployed := difference(deployed, declared)

	return domain.AuditResult{
		OnlyInDeclared: onlyDeclared,
		OnlyInDeployed: onlyDeployed,
		Matched:        Count(declared) - len(onlyDeclared),
	}
}

// difference returns the records of a that b doesn't hold
func difference(a, b *domain.DeploymentSet) []domain.DeploymentRecord {
	out := make([]domain.DeploymentRecord, 0)
	for _, network := range a.Networks() {
		for _, record := range a.Records(network) {
			if !b.Contains(network, record.Address) {
				out = append(out, record)
			}
		}
	}
	sortRecords(out)
	return out
}

// sortRecords orders records by network, then address
func sortRecords(records []domain.DeploymentRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Network != records[j].Network {
			return records[i].Network < records[j].Network
		}
		return bytes.Compare(records[i].Address[:], records[j].Address[:]) < 0
	})
}
