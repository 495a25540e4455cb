package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/evm-deployment-info/internal/domain"
)

const (
	// EnvPrefix prefixes every environment variable read through viper
	EnvPrefix = "EDI"

	// ConfigFileName is the optional settings file in the project root
	ConfigFileName = "edi.toml"

	defaultDeploymentsDir = "deployments"
	defaultParallelism    = 8
)

// HardhatConfigFiles are the file names that mark a Hardhat project root
var HardhatConfigFiles = []string{
	"hardhat.config.ts",
	"hardhat.config.js",
	"hardhat.config.cjs",
	"hardhat.config.mjs",
}

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*RuntimeConfig, error) {
	projectRoot := v.GetString("project")
	if projectRoot == "" {
		projectRoot = v.GetString("root")
	}
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, err
		}
	}

	projectRoot, err := filepath.Abs(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project root: %w", err)
	}
	if err := ValidateProject(projectRoot); err != nil {
		return nil, err
	}

	// .env values feed both the EDI_* settings and ${VAR} expansion in the manifest
	loadEnvFiles(projectRoot)

	configFile := filepath.Join(projectRoot, ConfigFileName)
	if _, err := os.Stat(configFile); err == nil {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, &domain.ConfigParseError{Path: configFile, Err: err}
		}
	}

	parallelism := v.GetInt("parallelism")
	if parallelism < 1 {
		parallelism = 1
	}

	cfg := &RuntimeConfig{
		ProjectRoot:    projectRoot,
		DeploymentsDir: resolvePath(projectRoot, v.GetString("deployments_dir")),
		ManifestPath:   resolvePath(projectRoot, v.GetString("manifest")),
		NetworksFile:   resolvePath(projectRoot, v.GetString("networks_file")),
		Parallelism:    parallelism,
		NoColor:        v.GetBool("no_color"),
		Debug:          v.GetBool("debug"),
		Timeout:        v.GetDuration("timeout"),
	}

	return cfg, nil
}

// FindProjectRoot walks up from current directory to find hardhat.config.*
func FindProjectRoot() (string, error) {
	start, err := os.Getwd()
	if err != nil {
		return "", err
	}

	dir := start
	for {
		if hasHardhatConfig(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root without finding a hardhat config
			return "", &domain.ConfigNotFoundError{Root: start, Candidates: HardhatConfigFiles}
		}
		dir = parent
	}
}

// ValidateProject checks that root is a Hardhat project
func ValidateProject(root string) error {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("project root does not exist: %s", root)
	}
	if !hasHardhatConfig(root) {
		return &domain.ConfigNotFoundError{Root: root, Candidates: HardhatConfigFiles}
	}
	return nil
}

// SetupViper creates and configures a viper instance
func SetupViper(cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	// Set up environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Set defaults
	v.SetDefault("deployments_dir", defaultDeploymentsDir)
	v.SetDefault("parallelism", defaultParallelism)
	v.SetDefault("timeout", "1m")
	v.SetDefault("debug", false)
	v.SetDefault("no_color", false)

	// Flags use dashes, settings use underscores
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		err := v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
		if err != nil {
			panic(err)
		}
	})

	return v
}

func hasHardhatConfig(dir string) bool {
	for _, name := range HardhatConfigFiles {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return true
		}
	}
	return false
}

// loadEnvFiles loads .env files without overriding variables already set
func loadEnvFiles(projectRoot string) {
	envFiles := []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, ".env.local"),
	}

	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				// Log warning but don't fail
				fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", envFile, err)
			}
		}
	}
}

func resolvePath(root, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
