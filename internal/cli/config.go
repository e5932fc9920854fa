// Config loading for the contacts CLI.
package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/contacts/internal/paths"
	"github.com/mesh-intelligence/contacts/internal/shell"
	"github.com/mesh-intelligence/contacts/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	envPrefix      = "CONTACTS"

	cfgKeyBackend  = "backend"
	cfgKeyOutput   = "output"
	cfgKeyLogLevel = "log_level"
	cfgKeyPrompt   = "prompt"

	defaultLogLevel = "warn"
)

// settings are the resolved configuration values for one run.
type settings struct {
	Backend  string `yaml:"backend"`
	Output   string `yaml:"output"`
	LogLevel string `yaml:"log_level"`
	Prompt   string `yaml:"prompt"`
}

// defaultSettings is what a fresh config.yaml contains.
func defaultSettings() settings {
	return settings{
		Backend:  types.BackendMemory,
		Output:   types.OutputConsole,
		LogLevel: defaultLogLevel,
		Prompt:   shell.DefaultPrompt,
	}
}

// configHeader is written above the YAML body of a new config.yaml.
const configHeader = `# contacts CLI configuration
#
# backend:   memory | sqlite   (both keep data only for the session)
# output:    console | json | yaml
# log_level: debug | info | warn | error
# Every key can be overridden with a CONTACTS_<KEY> environment variable
# or the matching command-line flag.

`

// loadSettings reads config.yaml from configDir using Viper. Precedence is
// flag > CONTACTS_* environment > config.yaml > defaults. A missing
// config.yaml is not an error.
func loadSettings(configDir string, flags *pflag.FlagSet) (settings, error) {
	def := defaultSettings()

	v := viper.New()
	v.SetDefault(cfgKeyBackend, def.Backend)
	v.SetDefault(cfgKeyOutput, def.Output)
	v.SetDefault(cfgKeyLogLevel, def.LogLevel)
	v.SetDefault(cfgKeyPrompt, def.Prompt)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for _, key := range []string{cfgKeyBackend, cfgKeyOutput} {
			if f := flags.Lookup(key); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return settings{}, fmt.Errorf("bind flag %s: %w", key, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return settings{}, fmt.Errorf("read config: %w", err)
		}
	}

	s := settings{
		Backend:  v.GetString(cfgKeyBackend),
		Output:   v.GetString(cfgKeyOutput),
		LogLevel: v.GetString(cfgKeyLogLevel),
		Prompt:   v.GetString(cfgKeyPrompt),
	}

	cfg := types.Config{Backend: s.Backend, Output: s.Output}
	if err := cfg.Validate(); err != nil {
		return settings{}, fmt.Errorf("invalid config (backend %q, output %q): %w", s.Backend, s.Output, err)
	}
	return s, nil
}

// writeConfigIfMissing creates config.yaml in configDir with default
// values. It reports whether a file was written; an existing file is left
// untouched.
func writeConfigIfMissing(configDir string) (bool, error) {
	path := paths.ConfigFile(configDir)
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return false, fmt.Errorf("create config directory: %w", err)
	}

	def := defaultSettings()
	body, err := yaml.Marshal(&def)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}

	data := append([]byte(configHeader), body...)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, fmt.Errorf("write config: %w", err)
	}
	return true, nil
}
