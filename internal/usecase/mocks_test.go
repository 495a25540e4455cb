package usecase_test

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/evm-deployment-info/internal/domain"
	"github.com/trebuchet-org/evm-deployment-info/internal/domain/network"
	"github.com/trebuchet-org/evm-deployment-info/internal/usecase"
)

// MockDeclaredSource is a mock implementation of DeclaredSource
type MockDeclaredSource struct {
	mock.Mock
}

func (m *MockDeclaredSource) ReadDeclared(ctx context.Context) (*domain.DeploymentSet, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeploymentSet), args.Error(1)
}

// MockDeployedSource is a mock implementation of DeployedSource
type MockDeployedSource struct {
	mock.Mock
}

func (m *MockDeployedSource) ReadDeployed(ctx context.Context) (*domain.DeploymentSet, []domain.ArtifactParseWarning, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var warnings []domain.ArtifactParseWarning
	if w := args.Get(1); w != nil {
		warnings = w.([]domain.ArtifactParseWarning)
	}
	return args.Get(0).(*domain.DeploymentSet), warnings, args.Error(2)
}

// MockProgressSink records progress events
type MockProgressSink struct {
	events []usecase.ProgressEvent
	infos  []string
}

func (m *MockProgressSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	m.events = append(m.events, event)
}

func (m *MockProgressSink) Info(message string) {
	m.infos = append(m.infos, message)
}

func (m *MockProgressSink) Error(message string) {}

var (
	addrA = common.HexToAddress("0x1111111111111111111111111111111111111111")
	addrB = common.HexToAddress("0x2222222222222222222222222222222222222222")
	addrC = common.HexToAddress("0x3333333333333333333333333333333333333333")
)

func newCatalog(t *testing.T) *network.Catalog {
	t.Helper()
	table, err := network.DefaultTable()
	require.NoError(t, err)
	return network.NewCatalog(table)
}

// newSet builds a set from network -> addresses, in argument order
func newSet(source string, networks ...any) *domain.DeploymentSet {
	set := domain.NewDeploymentSet(source)
	for i := 0; i+1 < len(networks); i += 2 {
		name := networks[i].(string)
		set.AddNetwork(name)
		for _, addr := range networks[i+1].([]common.Address) {
			set.Add(name, addr, "")
		}
	}
	return set
}
