package networks

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/evm-deployment-info/internal/config"
	"github.com/trebuchet-org/evm-deployment-info/internal/domain"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadCatalog(t *testing.T) {
	t.Run("built-in table", func(t *testing.T) {
		catalog, err := LoadCatalog(&config.RuntimeConfig{}, discard)
		require.NoError(t, err)

		assert.Equal(t, domain.NetworkClassTestnet, catalog.Classify("Ethereum Sepolia", 0))
		assert.Equal(t, domain.NetworkFamily("Ethereum"), catalog.Normalize("sepolia"))
	})

	t.Run("yaml override adds networks", func(t *testing.T) {
		path := writeFile(t, "networks.yaml", `
networks:
  - { name: Acme, class: mainnet, chain_id: 4242, aliases: [acme] }
  - { name: Acme Staging, class: testnet, aliases: [acmeStaging] }
`)

		catalog, err := LoadCatalog(&config.RuntimeConfig{NetworksFile: path}, discard)
		require.NoError(t, err)

		assert.Equal(t, domain.NetworkClassMainnet, catalog.Classify("acme", 0))
		assert.Equal(t, domain.NetworkClassTestnet, catalog.Classify("acmeStaging", 0))
		assert.Equal(t, domain.NetworkClassMainnet, catalog.Classify("unknown-name", 4242))
		// built-in entries are still there
		assert.Equal(t, domain.NetworkClassMainnet, catalog.Classify("Polygon", 0))
	})

	t.Run("toml override replaces an entry and the suffix rules", func(t *testing.T) {
		path := writeFile(t, "networks.toml", `
[[networks]]
name = "Polygon"
class = "testnet"

[[suffixes]]
suffix = "staging"
priority = 1
class = "testnet"
`)

		catalog, err := LoadCatalog(&config.RuntimeConfig{NetworksFile: path}, discard)
		require.NoError(t, err)

		assert.Equal(t, domain.NetworkClassTestnet, catalog.Classify("Polygon", 0))
		assert.Equal(t, domain.NetworkFamily("Acme"), catalog.Normalize("Acme Staging"))
		// sepolia is no longer a suffix rule
		assert.Equal(t, domain.NetworkFamily("Foo Sepolia"), catalog.Normalize("Foo Sepolia"))
	})

	t.Run("override conflicting with built-in aliases", func(t *testing.T) {
		path := writeFile(t, "networks.yaml", `
networks:
  - { name: My Chain, class: mainnet, aliases: [sepolia] }
`)

		_, err := LoadCatalog(&config.RuntimeConfig{NetworksFile: path}, discard)

		var parseErr *domain.ConfigParseError
		require.True(t, errors.As(err, &parseErr))
		assert.Equal(t, path, parseErr.Path)
		assert.Contains(t, err.Error(), "sepolia")
	})

	t.Run("missing override file", func(t *testing.T) {
		_, err := LoadCatalog(&config.RuntimeConfig{NetworksFile: filepath.Join(t.TempDir(), "nope.yaml")}, discard)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestLoadTable(t *testing.T) {
	t.Run("unknown yaml keys", func(t *testing.T) {
		path := writeFile(t, "networks.yaml", "networks:\n  - { name: Acme, class: mainnet, chain: 1 }\n")

		_, err := LoadTable(path)

		var parseErr *domain.ConfigParseError
		assert.True(t, errors.As(err, &parseErr))
	})

	t.Run("unknown toml keys", func(t *testing.T) {
		path := writeFile(t, "networks.toml", "[[networks]]\nname = \"Acme\"\nclass = \"mainnet\"\nchain = 1\n")

		_, err := LoadTable(path)

		var parseErr *domain.ConfigParseError
		require.True(t, errors.As(err, &parseErr))
		assert.Contains(t, err.Error(), "unknown keys")
	})

	t.Run("empty yaml", func(t *testing.T) {
		table, err := LoadTable(writeFile(t, "networks.yml", ""))
		require.NoError(t, err)
		assert.Empty(t, table.Networks)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := LoadTable(writeFile(t, "networks.json", "{}"))

		var parseErr *domain.ConfigParseError
		require.True(t, errors.As(err, &parseErr))
		assert.Contains(t, err.Error(), "unsupported format")
	})
}
