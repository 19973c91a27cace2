package pkg

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/hansbonini/xv2save/pkg/common"
	"github.com/hansbonini/xv2save/pkg/ps4"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Config holds the optional settings read from a YAML file
type Config struct {
	LeftoversPolicy   string `yaml:"leftovers_policy"`
	CompressLeftovers bool   `yaml:"compress_leftovers"`
	PS4OutputName     string `yaml:"ps4_output_name"`
	PCOutputName      string `yaml:"pc_output_name"`
	Verbose           bool   `yaml:"verbose"`
}

// DefaultConfig returns the settings used when no config file is given
func DefaultConfig() *Config {
	return &Config{
		LeftoversPolicy: string(LeftoversFallback),
		PS4OutputName:   ps4.PS4FileName,
		PCOutputName:    ps4.PCReadyFileName,
	}
}

// LoadConfig reads a YAML config file over the defaults. An empty path
// returns the defaults. Unknown keys are rejected.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, common.FormatError(common.ErrFailedToReadConfig, err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, common.FormatError(common.ErrFailedToParseConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	common.LogDebug(common.InfoConfigLoaded, path)
	return cfg, nil
}

// Validate checks policy and output names
func (c *Config) Validate() error {
	if _, err := ParseLeftoversPolicy(c.LeftoversPolicy); err != nil {
		return err
	}
	if c.PS4OutputName == "" || c.PCOutputName == "" {
		return common.FormatErrorString(common.ErrFailedToParseConfig, "output names must not be empty")
	}
	return nil
}

// ApplyFlags overrides settings with flags the user set explicitly
func (c *Config) ApplyFlags(flags *pflag.FlagSet) error {
	var err error
	flags.Visit(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case "leftovers-policy":
			c.LeftoversPolicy = f.Value.String()
		case "compress-leftovers":
			c.CompressLeftovers, err = flags.GetBool(f.Name)
		case "verbose":
			c.Verbose, err = flags.GetBool(f.Name)
		}
	})
	if err != nil {
		return err
	}
	return c.Validate()
}

// ConverterOptions translates the settings into converter options
func (c *Config) ConverterOptions() ([]Option, error) {
	policy, err := ParseLeftoversPolicy(c.LeftoversPolicy)
	if err != nil {
		return nil, err
	}
	return []Option{
		WithLeftoversPolicy(policy),
		WithCompressedLeftovers(c.CompressLeftovers),
	}, nil
}
