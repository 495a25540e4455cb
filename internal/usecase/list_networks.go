package usecase

import (
	"context"
	"errors"

	"github.com/samber/lo"
	"github.com/trebuchet-org/evm-deployment-info/internal/domain"
)

// ListNetworksParams contains parameters for listing networks
type ListNetworksParams struct {
	DeployedOnly bool // hide table entries without deployments
}

// ListNetworksResult contains the result of listing networks
type ListNetworksResult struct {
	Networks []NetworkStatus
	Warnings []domain.ArtifactParseWarning
}

// NetworkStatus describes a known or deployed network
type NetworkStatus struct {
	Name        string
	Family      domain.NetworkFamily
	Class       domain.NetworkClass
	ChainID     uint64
	Aliases     []string
	Directories []string // deployment directories resolving to this network
	Deployments int
	Known       bool // listed in the network table
}

// ListNetworks is a use case for listing the network table alongside what is deployed
type ListNetworks struct {
	deployed DeployedSource
	catalog  NetworkCatalog
	sink     ProgressSink
}

// NewListNetworks creates a new ListNetworks use case
func NewListNetworks(deployed DeployedSource, catalog NetworkCatalog, sink ProgressSink) *ListNetworks {
	return &ListNetworks{
		deployed: deployed,
		catalog:  catalog,
		sink:     sink,
	}
}

// Run executes the use case. A project without a deployments directory still
// gets the table.
func (uc *ListNetworks) Run(ctx context.Context, params ListNetworksParams) (*ListNetworksResult, error) {
	deployed, warnings, err := readDeployed(ctx, uc.deployed, uc.sink)
	if err != nil {
		var notFound *domain.DeploymentsDirNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		uc.sink.Info(err.Error())
		deployed = domain.NewDeploymentSet(domain.SourceDeployed)
	}

	entries := uc.catalog.Entries()
	networks := make([]NetworkStatus, 0, len(entries))
	index := make(map[string]int, len(entries))
	for _, e := range entries {
		index[e.Name] = len(networks)
		networks = append(networks, NetworkStatus{
			Name:    e.Name,
			Family:  uc.catalog.Normalize(e.Name),
			Class:   e.Class,
			ChainID: e.ChainID,
			Aliases: e.Aliases,
			Known:   true,
		})
	}

	// Deployment directories are matched by name or alias, unknown ones are appended
	for _, dir := range deployed.Networks() {
		i, ok := -1, false
		if e, found := uc.catalog.Lookup(dir); found {
			i, ok = index[e.Name]
		}
		if !ok {
			i = len(networks)
			index[dir] = i
			networks = append(networks, NetworkStatus{
				Name:    dir,
				Family:  uc.catalog.Normalize(dir),
				Class:   uc.catalog.Classify(dir, deployed.ChainID(dir)),
				ChainID: deployed.ChainID(dir),
			})
		}
		networks[i].Directories = append(networks[i].Directories, dir)
		networks[i].Deployments += deployed.Len(dir)
	}

	if params.DeployedOnly {
		networks = lo.Filter(networks, func(n NetworkStatus, _ int) bool {
			return len(n.Directories) > 0
		})
	}

	return &ListNetworksResult{
		Networks: networks,
		Warnings: warnings,
	}, nil
}
