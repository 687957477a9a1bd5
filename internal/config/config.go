// Package config loads the housebuilder YAML configuration.
package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/housebuilder/internal/demo"
	"git.home.luguber.info/inful/housebuilder/internal/director"
	"git.home.luguber.info/inful/housebuilder/internal/foundation/errors"
	"git.home.luguber.info/inful/housebuilder/internal/house"
	"git.home.luguber.info/inful/housebuilder/internal/logfields"
	"git.home.luguber.info/inful/housebuilder/internal/render"
)

// CurrentVersion is the config schema version written by Init.
const CurrentVersion = "1"

// Config represents the application configuration
type Config struct {
	Version  string           `yaml:"version"`
	Output   OutputConfig     `yaml:"output"`
	Variants []VariantConfig  `yaml:"variants,omitempty"`
	Demo     []ScenarioConfig `yaml:"demo,omitempty"`
}

// OutputConfig represents output configuration
type OutputConfig struct {
	Format string `yaml:"format"` // text, markdown or html
}

// VariantConfig is an extra material table on top of the built-in wood and brick.
type VariantConfig struct {
	Name  string      `yaml:"name"`
	Walls EntryConfig `yaml:"walls"`
	Floor EntryConfig `yaml:"floor"`
	Roof  EntryConfig `yaml:"roof"`
}

// EntryConfig holds the labels one step contributes.
type EntryConfig struct {
	Part string `yaml:"part"`
	Page string `yaml:"page"`
}

// ScenarioConfig is one titled build of the demo run.
type ScenarioConfig struct {
	Title   string `yaml:"title"`
	Variant string `yaml:"variant"`
	Profile string `yaml:"profile"`
}

// Default returns the configuration used when no file exists: text output
// and the classic three-house demonstration.
func Default() *Config {
	cfg := &Config{
		Version: CurrentVersion,
		Output:  OutputConfig{Format: string(render.FormatText)},
	}
	for _, sc := range demo.DefaultScenarios() {
		cfg.Demo = append(cfg.Demo, ScenarioConfig(sc))
	}
	return cfg
}

// Load loads configuration from the specified file.
func Load(configPath string) (*Config, error) {
	loadEnvFile()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundError("configuration file not found").
				WithContext("path", configPath).
				Build()
		}
		return nil, errors.FileSystemError("failed to read config file").
			WithCause(err).
			WithContext("path", configPath).
			Build()
	}

	// Expand environment variables in the YAML content
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "failed to unmarshal config").
			WithContext("path", configPath).
			Build()
	}

	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault loads configPath, falling back to Default when the file does not exist.
// The boolean reports whether a file was read.
func LoadOrDefault(configPath string) (*Config, bool, error) {
	cfg, err := Load(configPath)
	if errors.HasCategory(err, errors.CategoryNotFound) {
		slog.Debug("No configuration file, using defaults", logfields.Path(configPath))
		return Default(), false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return cfg, true, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Version == "" {
		cfg.Version = CurrentVersion
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = string(render.FormatText)
	}
	if len(cfg.Demo) == 0 {
		cfg.Demo = Default().Demo
	}
}

// Validate checks the output format, every variant table and every demo scenario.
func (c *Config) Validate() error {
	if c.Version != CurrentVersion {
		return errors.ConfigError(fmt.Sprintf("unsupported config version %q", c.Version)).Build()
	}
	if _, err := render.ParseFormat(c.Output.Format); err != nil {
		return errors.WrapError(err, errors.CategoryConfig, "invalid output format").Build()
	}
	catalog, err := c.Catalog()
	if err != nil {
		return err
	}
	for i, sc := range c.Demo {
		if sc.Title == "" {
			return errors.ConfigError("demo scenario title is required").WithContext("index", i).Build()
		}
		if _, err := catalog.Lookup(sc.Variant); err != nil {
			return errors.WrapError(err, errors.CategoryConfig, "demo scenario references unknown variant").
				WithContext("scenario", sc.Title).
				Build()
		}
		if _, err := director.LookupProfile(sc.Profile); err != nil {
			return errors.WrapError(err, errors.CategoryConfig, "demo scenario references unknown profile").
				WithContext("scenario", sc.Title).
				Build()
		}
	}
	return nil
}

// Format returns the parsed output format, text when unset or unknown.
func (c *Config) Format() render.Format {
	return render.FormatOrDefault(c.Output.Format)
}

// Catalog returns the built-in variants plus the configured ones.
func (c *Config) Catalog() (*house.Catalog, error) {
	catalog := house.DefaultCatalog()
	for _, vc := range c.Variants {
		if err := catalog.Register(vc.variant()); err != nil {
			return nil, errors.WrapError(err, errors.CategoryConfig, "invalid variant").
				WithContext("variant", vc.Name).
				Build()
		}
	}
	return catalog, nil
}

// Scenarios returns the demo run as demo scenarios.
func (c *Config) Scenarios() []demo.Scenario {
	out := make([]demo.Scenario, 0, len(c.Demo))
	for _, sc := range c.Demo {
		out = append(out, demo.Scenario(sc))
	}
	return out
}

func (vc VariantConfig) variant() house.Variant {
	return house.Variant{
		Name: vc.Name,
		Table: map[house.Step]house.Entry{
			house.StepWalls: house.Entry(vc.Walls),
			house.StepFloor: house.Entry(vc.Floor),
			house.StepRoof:  house.Entry(vc.Roof),
		},
	}
}

// Init creates a new configuration file with example content
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return errors.AlreadyExistsError("configuration file already exists (use --force to overwrite)").
			WithContext("path", configPath).
			Build()
	}

	example := Default()
	example.Variants = []VariantConfig{{
		Name:  "stone",
		Walls: EntryConfig{Part: "Stone Walls", Page: "Stone Walls Description"},
		Floor: EntryConfig{Part: "Slate Floor", Page: "Slate Floor Description"},
		Roof:  EntryConfig{Part: "Stone Roof", Page: "Stone Roof Description"},
	}}

	data, err := yaml.Marshal(example)
	if err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "failed to marshal config").Build()
	}

	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return errors.FileSystemError("failed to write config file").
			WithCause(err).
			WithContext("path", configPath).
			Build()
	}
	return nil
}

// loadEnvFile loads the first of .env/.env.local that exists. Variables already
// present in the process environment are not overwritten.
func loadEnvFile() {
	for _, envPath := range []string{".env", ".env.local"} {
		if err := godotenv.Load(envPath); err == nil {
			slog.Debug("Loaded environment variables", logfields.Path(envPath))
			return
		}
	}
}
