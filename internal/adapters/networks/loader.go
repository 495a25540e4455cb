// Package networks builds the network catalog from the built-in table and an
// optional project override file.
package networks

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/trebuchet-org/evm-deployment-info/internal/config"
	"github.com/trebuchet-org/evm-deployment-info/internal/domain"
	"github.com/trebuchet-org/evm-deployment-info/internal/domain/network"
	"gopkg.in/yaml.v3"
)

// LoadCatalog returns the built-in catalog, overlaid with cfg.NetworksFile when set
func LoadCatalog(cfg *config.RuntimeConfig, log *slog.Logger) (*network.Catalog, error) {
	table, err := network.DefaultTable()
	if err != nil {
		return nil, err
	}

	if cfg.NetworksFile != "" {
		override, err := LoadTable(cfg.NetworksFile)
		if err != nil {
			return nil, err
		}
		table = table.Merge(override)
		if err := table.Validate(); err != nil {
			return nil, &domain.ConfigParseError{Path: cfg.NetworksFile, Err: err}
		}
		log.Debug("loaded network table override", "path", cfg.NetworksFile,
			"networks", len(override.Networks), "suffixes", len(override.Suffixes))
	}

	return network.NewCatalog(table), nil
}

// LoadTable reads a network table from a YAML or TOML file
func LoadTable(path string) (*network.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read networks file: %w", err)
	}

	var table network.Table
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&table); err != nil && !errors.Is(err, io.EOF) {
			return nil, &domain.ConfigParseError{Path: path, Err: err}
		}
	case ".toml":
		md, err := toml.Decode(string(data), &table)
		if err != nil {
			return nil, &domain.ConfigParseError{Path: path, Err: err}
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, &domain.ConfigParseError{Path: path, Err: fmt.Errorf("unknown keys: %v", undecoded)}
		}
	default:
		return nil, &domain.ConfigParseError{
			Path: path,
			Err:  fmt.Errorf("unsupported format %q (use .yaml, .yml or .toml)", filepath.Ext(path)),
		}
	}

	return &table, nil
}
