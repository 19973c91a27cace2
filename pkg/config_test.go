// Package pkg provides tests for configuration loading
package pkg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hansbonini/xv2save/pkg/ps4"
	"github.com/spf13/pflag"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "xv2save.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig(\"\") failed: %v", err)
	}
	if cfg.LeftoversPolicy != string(LeftoversFallback) {
		t.Errorf("LeftoversPolicy = %q, want %q", cfg.LeftoversPolicy, LeftoversFallback)
	}
	if cfg.PS4OutputName != ps4.PS4FileName || cfg.PCOutputName != ps4.PCReadyFileName {
		t.Errorf("output names = %q, %q", cfg.PS4OutputName, cfg.PCOutputName)
	}
	if cfg.CompressLeftovers || cfg.Verbose {
		t.Error("compression and verbose output should be off by default")
	}
}

func TestLoadConfig_File(t *testing.T) {
	testCases := []struct {
		name     string
		content  string
		hasError bool
		check    func(t *testing.T, cfg *Config)
	}{
		{
			name: "overrides",
			content: `leftovers_policy: strict
compress_leftovers: true
pc_output_name: Editor.sav
verbose: true
`,
			check: func(t *testing.T, cfg *Config) {
				if cfg.LeftoversPolicy != "strict" || !cfg.CompressLeftovers || !cfg.Verbose {
					t.Errorf("config = %+v", cfg)
				}
				if cfg.PCOutputName != "Editor.sav" || cfg.PS4OutputName != ps4.PS4FileName {
					t.Errorf("output names = %q, %q", cfg.PCOutputName, cfg.PS4OutputName)
				}
			},
		},
		{
			name:    "empty file",
			content: "",
			check: func(t *testing.T, cfg *Config) {
				if cfg.LeftoversPolicy != string(LeftoversFallback) {
					t.Errorf("LeftoversPolicy = %q", cfg.LeftoversPolicy)
				}
			},
		},
		{name: "unknown key", content: "colour: blue\n", hasError: true},
		{name: "bad policy", content: "leftovers_policy: maybe\n", hasError: true},
		{name: "empty output name", content: "ps4_output_name: \"\"\n", hasError: true},
		{name: "invalid yaml", content: "leftovers_policy: [\n", hasError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := LoadConfig(writeConfig(t, tc.content))
			if tc.hasError {
				if err == nil {
					t.Errorf("LoadConfig() should fail for %q", tc.content)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadConfig() failed: %v", err)
			}
			tc.check(t, cfg)
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("LoadConfig() should fail for a missing file")
	}
}

func newFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("leftovers-policy", "", "")
	flags.Bool("compress-leftovers", false, "")
	flags.BoolP("verbose", "v", false, "")
	return flags
}

func TestConfig_ApplyFlags(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CompressLeftovers = true

	flags := newFlagSet()
	if err := flags.Parse([]string{"--leftovers-policy", "strict", "-v"}); err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if err := cfg.ApplyFlags(flags); err != nil {
		t.Fatalf("ApplyFlags() failed: %v", err)
	}

	if cfg.LeftoversPolicy != "strict" || !cfg.Verbose {
		t.Errorf("flags not applied: %+v", cfg)
	}
	if !cfg.CompressLeftovers {
		t.Error("unset flags must not override the config")
	}

	bad := newFlagSet()
	if err := bad.Parse([]string{"--leftovers-policy", "never"}); err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if err := DefaultConfig().ApplyFlags(bad); err == nil {
		t.Error("ApplyFlags() should reject an unknown policy")
	}
}

func TestConfig_ConverterOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LeftoversPolicy = string(LeftoversStrict)
	cfg.CompressLeftovers = true

	opts, err := cfg.ConverterOptions()
	if err != nil {
		t.Fatalf("ConverterOptions() failed: %v", err)
	}
	c := NewConverter(opts...)
	if c.policy != LeftoversStrict || !c.compress {
		t.Errorf("converter = %+v", c)
	}
}
