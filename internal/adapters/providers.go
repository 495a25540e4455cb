package adapters

import (
	"github.com/google/wire"
	"github.com/trebuchet-org/evm-deployment-info/internal/adapters/hardhat"
	"github.com/trebuchet-org/evm-deployment-info/internal/adapters/manifest"
	"github.com/trebuchet-org/evm-deployment-info/internal/adapters/networks"
	"github.com/trebuchet-org/evm-deployment-info/internal/domain/network"
	"github.com/trebuchet-org/evm-deployment-info/internal/usecase"
)

// ManifestSet provides the declared deployments reader
var ManifestSet = wire.NewSet(
	manifest.NewReader,
	wire.Bind(new(usecase.DeclaredSource), new(*manifest.Reader)),
)

// HardhatSet provides the deployment artifact reader
var HardhatSet = wire.NewSet(
	hardhat.NewDeploymentsReader,
	wire.Bind(new(usecase.DeployedSource), new(*hardhat.DeploymentsReader)),
)

// NetworksSet provides the network table
var NetworksSet = wire.NewSet(
	networks.LoadCatalog,
	wire.Bind(new(usecase.NetworkCatalog), new(*network.Catalog)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	ManifestSet,
	HardhatSet,
	NetworksSet,
)
