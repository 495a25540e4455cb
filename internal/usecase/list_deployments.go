package usecase

import (
	"context"

	"github.com/trebuchet-org/evm-deployment-info/internal/reconcile"
)

// ListDeploymentsParams contains parameters for listing deployments
type ListDeploymentsParams struct {
	Aggregate bool     // group networks by family
	Networks  []string // empty for all networks
}

// ListResult contains the declared deployments grouped for display
type ListResult struct {
	Aggregated bool
	Groups     []reconcile.ListGroup
	Total      int
}

// ListDeployments is the use case for listing declared deployments
type ListDeployments struct {
	declared DeclaredSource
	catalog  NetworkCatalog
	sink     ProgressSink
}

// NewListDeployments creates a new ListDeployments use case
func NewListDeployments(declared DeclaredSource, catalog NetworkCatalog, sink ProgressSink) *ListDeployments {
	return &ListDeployments{
		declared: declared,
		catalog:  catalog,
		sink:     sink,
	}
}

// Run executes the list deployments use case
func (uc *ListDeployments) Run(ctx context.Context, params ListDeploymentsParams) (*ListResult, error) {
	declared, err := readDeclared(ctx, uc.declared, uc.sink)
	if err != nil {
		return nil, err
	}

	declared, err = reconcile.Filter(declared, params.Networks, uc.catalog)
	if err != nil {
		return nil, err
	}

	return &ListResult{
		Aggregated: params.Aggregate,
		Groups:     reconcile.List(declared, params.Aggregate, uc.catalog),
		Total:      reconcile.Count(declared),
	}, nil
}
