package usecase

import (
	"context"

	"github.com/trebuchet-org/evm-deployment-info/internal/domain"
	"github.com/trebuchet-org/evm-deployment-info/internal/domain/network"
)

// DeclaredSource reads the deployments a project declares
type DeclaredSource interface {
	ReadDeclared(ctx context.Context) (*domain.DeploymentSet, error)
}

// DeployedSource reads the deployments found on disk. Unreadable artifacts
// are reported as warnings, not errors.
type DeployedSource interface {
	ReadDeployed(ctx context.Context) (*domain.DeploymentSet, []domain.ArtifactParseWarning, error)
}

// NetworkCatalog normalizes and classifies network identifiers
type NetworkCatalog interface {
	Normalize(name string) domain.NetworkFamily
	Classify(name string, chainID uint64) domain.NetworkClass
	Lookup(name string) (network.Entry, bool)
	Entries() []network.Entry
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   string
	Current int
	Total   int
	Message string
	Spinner bool
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}
