package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/treb-diamond/internal/domain/config"
)

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}

	format := config.OutputFormat(strings.ToLower(v.GetString("format")))
	if v.GetBool("json") {
		format = config.OutputJSON
	}
	switch format {
	case config.OutputTable, config.OutputJSON, config.OutputYAML:
	case "":
		format = config.OutputTable
	default:
		return nil, fmt.Errorf("unsupported output format %q (use table, json or yaml)", format)
	}

	cfg := &config.RuntimeConfig{
		ProjectRoot:    projectRoot,
		Profile:        v.GetString("profile"),
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		Format:         format,
		Timeout:        v.GetDuration("timeout"),
	}

	foundryConfig, err := loadFoundryConfig(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to load foundry config: %w", err)
	}
	cfg.FoundryConfig = foundryConfig

	outDir := v.GetString("out")
	if outDir == "" {
		outDir = foundryConfig.OutPath(cfg.Profile)
	}
	if !filepath.IsAbs(outDir) {
		outDir = filepath.Join(projectRoot, outDir)
	}
	cfg.OutDir = outDir

	// Resolve network if specified
	if networkName := v.GetString("network"); networkName != "" {
		network, err := NewNetworkResolver(foundryConfig).Resolve(networkName)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve network %s: %w", networkName, err)
		}
		cfg.Network = network
	}

	return cfg, nil
}

// FindProjectRoot walks up from current directory to find foundry.toml
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return findProjectRootFrom(dir)
}

func findProjectRootFrom(dir string) (string, error) {
	for {
		foundryToml := filepath.Join(dir, "foundry.toml")
		if _, err := os.Stat(foundryToml); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root without finding foundry.toml
			return "", fmt.Errorf("not in a Foundry project (foundry.toml not found)")
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	// Set up config file
	v.SetConfigName("config.local")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(projectRoot, ".treb"))

	// Set up environment variables
	v.SetEnvPrefix("TREB")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Set defaults
	v.SetDefault("profile", "default")
	v.SetDefault("timeout", "1m")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("format", string(config.OutputTable))
	v.SetDefault("project_root", projectRoot)

	// Try to read config file (ignore error if not found)
	_ = v.ReadInConfig()

	if cmd != nil {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			if err := v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f); err != nil {
				panic(err)
			}
		})
	}

	return v
}
