// Package hardhat reads hardhat-deploy artifacts from a project's deployments
// directory.
package hardhat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/evm-deployment-info/internal/config"
	"github.com/trebuchet-org/evm-deployment-info/internal/domain"
	"golang.org/x/sync/errgroup"
)

const chainIDFile = ".chainId"

// artifact is the part of a hardhat-deploy deployment file we need
type artifact struct {
	Address string `json:"address"`
}

// networkScan is what one network directory yielded
type networkScan struct {
	name     string
	chainID  uint64
	records  []domain.DeploymentRecord
	warnings []domain.ArtifactParseWarning
}

// DeploymentsReader reads the deployed set from <root>/deployments
type DeploymentsReader struct {
	dir         string
	parallelism int
	log         *slog.Logger
}

// NewDeploymentsReader creates a reader for the configured deployments directory
func NewDeploymentsReader(cfg *config.RuntimeConfig, log *slog.Logger) *DeploymentsReader {
	parallelism := cfg.Parallelism
	if parallelism < 1 {
		parallelism = 1
	}
	return &DeploymentsReader{
		dir:         cfg.DeploymentsDir,
		parallelism: parallelism,
		log:         log,
	}
}

// ReadDeployed scans every network directory. Artifacts that can't be read
// are skipped and reported as warnings; a missing deployments directory fails
// the whole read.
func (r *DeploymentsReader) ReadDeployed(ctx context.Context) (*domain.DeploymentSet, []domain.ArtifactParseWarning, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	info, err := os.Stat(r.dir)
	if err != nil || !info.IsDir() {
		return nil, nil, &domain.DeploymentsDirNotFoundError{Path: r.dir}
	}

	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read deployments directory: %w", err)
	}

	var networks []string
	for _, entry := range entries {
		if entry.IsDir() && !strings.HasPrefix(entry.Name(), ".") {
			networks = append(networks, entry.Name())
		}
	}

	// Scans land in their own slot so the result keeps directory order
	scans := make([]networkScan, len(networks))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.parallelism)
	for i, name := range networks {
		i, name := i, name
		g.Go(func() error {
			scan, err := r.scanNetwork(gctx, name)
			if err != nil {
				return err
			}
			scans[i] = scan
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	set := domain.NewDeploymentSet(domain.SourceDeployed)
	warnings := make([]domain.ArtifactParseWarning, 0)
	for _, scan := range scans {
		set.AddNetwork(scan.name)
		if scan.chainID != 0 {
			set.SetChainID(scan.name, scan.chainID)
		}
		for _, rec := range scan.records {
			set.Add(scan.name, rec.Address, rec.Contract)
		}
		warnings = append(warnings, scan.warnings...)
	}

	return set, warnings, nil
}

// scanNetwork reads the artifacts of a single network directory
func (r *DeploymentsReader) scanNetwork(ctx context.Context, name string) (networkScan, error) {
	scan := networkScan{name: name}
	dir := filepath.Join(r.dir, name)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return scan, fmt.Errorf("failed to read network directory %s: %w", dir, err)
	}
	r.log.Debug("scanning network directory", "network", name, "entries", len(entries))

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return scan, err
		}

		path := filepath.Join(dir, entry.Name())
		switch {
		case entry.Name() == chainIDFile:
			chainID, err := readChainID(path)
			if err != nil {
				scan.warnings = append(scan.warnings, r.warn(name, path, err.Error()))
				continue
			}
			scan.chainID = chainID
		case entry.IsDir(), strings.HasPrefix(entry.Name(), "."):
			// solcInputs and anything hidden
			continue
		case filepath.Ext(entry.Name()) != ".json":
			continue
		default:
			address, err := readArtifact(path)
			if err != nil {
				scan.warnings = append(scan.warnings, r.warn(name, path, err.Error()))
				continue
			}
			scan.records = append(scan.records, domain.DeploymentRecord{
				Network:  name,
				Address:  address,
				Contract: strings.TrimSuffix(entry.Name(), ".json"),
				Source:   domain.SourceDeployed,
			})
		}
	}

	return scan, nil
}

func (r *DeploymentsReader) warn(network, path, reason string) domain.ArtifactParseWarning {
	r.log.Debug("skipping artifact", "network", network, "path", path, "reason", reason)
	return domain.ArtifactParseWarning{Network: network, Path: path, Reason: reason}
}

// readArtifact extracts the deployed address of a hardhat-deploy artifact
func readArtifact(path string) (common.Address, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return common.Address{}, errors.New("permission denied")
		}
		return common.Address{}, err
	}

	var a artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return common.Address{}, fmt.Errorf("invalid JSON: %w", err)
	}
	if a.Address == "" {
		return common.Address{}, errors.New("missing address field")
	}
	if !common.IsHexAddress(a.Address) {
		return common.Address{}, fmt.Errorf("%w %q", domain.ErrInvalidAddress, a.Address)
	}
	return common.HexToAddress(a.Address), nil
}

// readChainID parses the .chainId file hardhat-deploy writes next to artifacts
func readChainID(path string) (uint64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	raw := strings.TrimSpace(string(data))
	base := 10
	if strings.HasPrefix(raw, "0x") || strings.HasPrefix(raw, "0X") {
		raw, base = raw[2:], 16
	}
	chainID, err := strconv.ParseUint(raw, base, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid chain id %q", strings.TrimSpace(string(data)))
	}
	return chainID, nil
}
