// Package manifest reads the declared deployments of a Hardhat project from a
// deployments manifest in the project root.
package manifest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/evm-deployment-info/internal/config"
	"github.com/trebuchet-org/evm-deployment-info/internal/domain"
)

// DefaultFiles are the manifest names searched in the project root, in order
var DefaultFiles = []string{
	"deployments.yaml",
	"deployments.yml",
	"deployments.toml",
	"deployments.json",
}

// Reader reads the declared deployment set
type Reader struct {
	root     string
	manifest string
	log      *slog.Logger
}

// NewReader creates a manifest reader for the configured project
func NewReader(cfg *config.RuntimeConfig, log *slog.Logger) *Reader {
	return &Reader{
		root:     cfg.ProjectRoot,
		manifest: cfg.ManifestPath,
		log:      log,
	}
}

// ReadDeclared parses the manifest into a deployment set. Networks and
// addresses keep the order of the file.
func (r *Reader) ReadDeclared(ctx context.Context) (*domain.DeploymentSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := config.ValidateProject(r.root); err != nil {
		return nil, err
	}

	path, err := r.locate()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	networks, err := decode(path, data)
	if err != nil {
		var parseErr *domain.ConfigParseError
		if errors.As(err, &parseErr) {
			parseErr.Path = path
			return nil, parseErr
		}
		return nil, &domain.ConfigParseError{Path: path, Err: err}
	}

	set := domain.NewDeploymentSet(domain.SourceDeclared)
	for _, n := range networks {
		set.AddNetwork(n.name)
		for _, e := range n.entries {
			raw := strings.TrimSpace(os.ExpandEnv(e.address))
			if !common.IsHexAddress(raw) {
				return nil, &domain.ConfigParseError{
					Path:    path,
					Network: n.name,
					Err:     fmt.Errorf("%w: %q", domain.ErrInvalidAddress, e.address),
				}
			}
			if !set.Add(n.name, common.HexToAddress(raw), e.contract) {
				r.log.Debug("duplicate declared address", "network", n.name, "address", raw)
			}
		}
	}

	r.log.Debug("read declared deployments", "path", path, "networks", len(set.Networks()))
	return set, nil
}

// locate returns the configured manifest or the first default one present
func (r *Reader) locate() (string, error) {
	if r.manifest != "" {
		if _, err := os.Stat(r.manifest); err != nil {
			return "", &domain.ConfigNotFoundError{Root: r.root, Candidates: []string{filepath.Base(r.manifest)}}
		}
		return r.manifest, nil
	}

	for _, name := range DefaultFiles {
		path := filepath.Join(r.root, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", &domain.ConfigNotFoundError{Root: r.root, Candidates: DefaultFiles}
}

func decode(path string, data []byte) ([]declaredNetwork, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return decodeYAML(data)
	case ".toml":
		return decodeTOML(data)
	case ".json":
		return decodeJSON(data)
	default:
		return nil, fmt.Errorf("unsupported manifest format %q (use .yaml, .yml, .toml or .json)", filepath.Ext(path))
	}
}
