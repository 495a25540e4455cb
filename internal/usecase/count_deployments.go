package usecase

import (
	"context"

	"github.com/trebuchet-org/evm-deployment-info/internal/domain"
	"github.com/trebuchet-org/evm-deployment-info/internal/reconcile"
)

// CountDeploymentsParams contains parameters for counting deployments
type CountDeploymentsParams struct {
	Networks []string // empty for all networks
}

// CountResult contains the deployed totals
type CountResult struct {
	Total    int
	Networks []reconcile.NetworkCount
	Warnings []domain.ArtifactParseWarning
}

// CountDeployments counts the deployment artifacts on disk
type CountDeployments struct {
	deployed DeployedSource
	catalog  NetworkCatalog
	sink     ProgressSink
}

// NewCountDeployments creates a new CountDeployments use case
func NewCountDeployments(deployed DeployedSource, catalog NetworkCatalog, sink ProgressSink) *CountDeployments {
	return &CountDeployments{
		deployed: deployed,
		catalog:  catalog,
		sink:     sink,
	}
}

// Run executes the count deployments use case
func (uc *CountDeployments) Run(ctx context.Context, params CountDeploymentsParams) (*CountResult, error) {
	deployed, warnings, err := readDeployed(ctx, uc.deployed, uc.sink)
	if err != nil {
		return nil, err
	}

	deployed, err = reconcile.Filter(deployed, params.Networks, uc.catalog)
	if err != nil {
		return nil, err
	}

	return &CountResult{
		Total:    reconcile.Count(deployed),
		Networks: reconcile.CountByNetwork(deployed),
		Warnings: warnings,
	}, nil
}
