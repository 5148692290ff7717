package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc"
	"github.com/goto/pgsearch/internal/entity"
	"github.com/goto/pgsearch/internal/store/postgres"
	"github.com/goto/pgsearch/pkg/telemetry"
	"github.com/goto/salt/cmdx"
	"github.com/goto/salt/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

const configFlag = "config"

func configCommand(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config <command>",
		Short: "Manage pgsearch configuration",
		Example: heredoc.Doc(`
			$ pgsearch config init
			$ pgsearch config list`),
	}

	cmd.AddCommand(configInitCommand())
	cmd.AddCommand(configListCommand(cfg))

	return cmd
}

func configInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize a new configuration file",
		Example: heredoc.Doc(`
			$ pgsearch config init
		`),
		Annotations: map[string]string{
			"group": "core",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := cmdx.SetConfig("pgsearch")

			if err := cfg.Init(&Config{}); err != nil {
				return err
			}

			fmt.Printf("config created: %v\n", cfg.File())
			return nil
		},
	}
}

func configListCommand(cfg *Config) *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "list",
		Short: "List configuration settings",
		Example: heredoc.Doc(`
			$ pgsearch config list
		`),
		Annotations: map[string]string{
			"group": "core",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return yaml.NewEncoder(cmd.OutOrStdout()).Encode(*cfg)
		},
	}
	return cmd
}

type Config struct {
	// Log
	LogLevel string `yaml:"log_level" mapstructure:"log_level" default:"info"`

	// Database
	DB postgres.Config `yaml:"db" mapstructure:"db"`

	// Telemetry
	Telemetry telemetry.Config `yaml:"telemetry" mapstructure:"telemetry"`

	Multisearch MultisearchConfig `yaml:"multisearch" mapstructure:"multisearch"`
	Rebuild     RebuildConfig     `yaml:"rebuild" mapstructure:"rebuild"`

	// Searchable tables
	Entities []entity.Config `yaml:"entities" mapstructure:"entities"`
}

type MultisearchConfig struct {
	// Enabled toggles document maintenance on save. Rebuilds ignore it.
	Enabled bool `yaml:"enabled" mapstructure:"enabled" default:"true"`
}

type RebuildConfig struct {
	BatchSize int `yaml:"batch_size" mapstructure:"batch_size" default:"500"`
}

func LoadConfig() (*Config, error) {
	var cfg Config
	err := cmdx.SetConfig("pgsearch").Load(&cfg)
	if err != nil {
		if errors.As(err, &config.ConfigFileNotFoundError{}) {
			return LoadFromCurrentDir()
		}
		return &cfg, err
	}
	return &cfg, nil
}

func LoadFromCurrentDir() (*Config, error) {
	var cfg Config
	var opts []config.LoaderOption

	opts = append(opts,
		config.WithPath("./"),
		config.WithName("pgsearch.yaml"),
		config.WithEnvKeyReplacer(".", "_"),
		config.WithEnvPrefix("PGSEARCH"),
	)

	if err := config.NewLoader(opts...).Load(&cfg); err != nil {
		if errors.As(err, &config.ConfigFileNotFoundError{}) {
			return &cfg, ErrConfigNotFound
		}
		return &cfg, err
	}
	return &cfg, nil
}

func LoadConfigFromFlag(cfgFile string, cfg *Config) error {
	if _, err := os.Stat(cfgFile); err != nil {
		return fmt.Errorf("read config %q: %w", cfgFile, err)
	}

	var opts []config.LoaderOption
	opts = append(opts,
		config.WithFile(cfgFile),
		config.WithEnvKeyReplacer(".", "_"),
		config.WithEnvPrefix("PGSEARCH"),
	)

	return config.NewLoader(opts...).Load(cfg)
}
