package usecase

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"github.com/trebuchet-org/evm-deployment-info/internal/domain"
	"github.com/trebuchet-org/evm-deployment-info/internal/reconcile"
)

// readDeclared loads the declared set while the spinner runs
func readDeclared(ctx context.Context, source DeclaredSource, sink ProgressSink) (*domain.DeploymentSet, error) {
	sink.OnProgress(ctx, ProgressEvent{
		Stage:   "declared",
		Message: "Reading deployments manifest",
		Spinner: true,
	})
	set, err := source.ReadDeclared(ctx)
	sink.OnProgress(ctx, ProgressEvent{Stage: "declared", Message: "Manifest read"})
	return set, err
}

// readDeployed loads the deployed set while the spinner runs
func readDeployed(ctx context.Context, source DeployedSource, sink ProgressSink) (*domain.DeploymentSet, []domain.ArtifactParseWarning, error) {
	sink.OnProgress(ctx, ProgressEvent{
		Stage:   "deployed",
		Message: "Reading deployment artifacts",
		Spinner: true,
	})
	set, warnings, err := source.ReadDeployed(ctx)
	if err != nil {
		sink.OnProgress(ctx, ProgressEvent{Stage: "deployed", Message: "Reading deployment artifacts failed"})
		return nil, nil, err
	}
	sink.OnProgress(ctx, ProgressEvent{
		Stage:   "deployed",
		Current: len(set.Networks()),
		Total:   len(set.Networks()),
		Message: fmt.Sprintf("Read %d network(s)", len(set.Networks())),
	})
	return set, warnings, nil
}

// filterPair applies a network filter to both sides of an audit. A name only
// has to match one side; the other side then simply has nothing for it.
func filterPair(declared, deployed *domain.DeploymentSet, names []string, normalizer reconcile.Normalizer) (*domain.DeploymentSet, *domain.DeploymentSet, error) {
	if len(names) == 0 {
		return declared, deployed, nil
	}

	var forDeclared, forDeployed []string
	for _, name := range names {
		_, errDeclared := reconcile.Filter(declared, []string{name}, normalizer)
		_, errDeployed := reconcile.Filter(deployed, []string{name}, normalizer)
		if errDeclared != nil && errDeployed != nil {
			return nil, nil, &domain.NetworkNotFoundError{
				Network:     name,
				Suggestions: reconcile.Suggest(name, lo.Union(declared.Networks(), deployed.Networks())),
			}
		}
		if errDeclared == nil {
			forDeclared = append(forDeclared, name)
		}
		if errDeployed == nil {
			forDeployed = append(forDeployed, name)
		}
	}

	declared, err := restrict(declared, forDeclared, normalizer)
	if err != nil {
		return nil, nil, err
	}
	deployed, err = restrict(deployed, forDeployed, normalizer)
	if err != nil {
		return nil, nil, err
	}
	return declared, deployed, nil
}

// restrict filters set by names, where no names means nothing is kept
func restrict(set *domain.DeploymentSet, names []string, normalizer reconcile.Normalizer) (*domain.DeploymentSet, error) {
	if len(names) == 0 {
		return domain.NewDeploymentSet(set.Source()), nil
	}
	return reconcile.Filter(set, names, normalizer)
}
