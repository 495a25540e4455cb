package reconcile

import (
	"github.com/trebuchet-org/evm-deployment-info/internal/domain"
)

// Coverage groups deployed networks into families and records, per family,
// whether at least one mainnet and one testnet network hold deployments.
// Networks without deployments are listed but never set a flag.
func Coverage(deployed *domain.DeploymentSet, normalizer Normalizer, classifier Classifier) domain.CoverageReport {
	report := domain.CoverageReport{Families: make([]domain.FamilyCoverage, 0)}
	index := make(map[domain.NetworkFamily]int)

	for _, network := range deployed.Networks() {
		family := normalizer.Normalize(network)
		i, ok := index[family]
		if !ok {
			i = len(report.Families)
			index[family] = i
			report.Families = append(report.Families, domain.FamilyCoverage{
				Family:   family,
				Mainnets: make([]string, 0),
				Testnets: make([]string, 0),
			})
		}
		fc := &report.Families[i]

		if deployed.Len(network) == 0 {
			fc.Empty = append(fc.Empty, network)
			continue
		}

		switch classifier.Classify(network, deployed.ChainID(network)) {
		case domain.NetworkClassMainnet:
			fc.HasMainnet = true
			fc.Mainnets = append(fc.Mainnets, network)
		case domain.NetworkClassTestnet:
			fc.HasTestnet = true
			fc.Testnets = append(fc.Testnets, network)
		default:
			fc.Unknown = append(fc.Unknown, network)
		}
	}

	return report
}
