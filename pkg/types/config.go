package types

import "errors"

// Config selects the storage backend and display format for a session.
type Config struct {
	Backend string `json:"backend" yaml:"backend"`
	Output  string `json:"output" yaml:"output"`
}

// Supported backend names.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// Supported output formats.
const (
	OutputConsole = "console"
	OutputJSON    = "json"
	OutputYAML    = "yaml"
)

// Config validation errors.
var (
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
	ErrOutputUnknown  = errors.New("unknown output format")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendMemory: true,
	BackendSQLite: true,
}

// knownOutputs lists the output formats that Validate accepts.
var knownOutputs = map[string]bool{
	OutputConsole: true,
	OutputJSON:    true,
	OutputYAML:    true,
}

// Validate checks that the Config is well-formed. An empty Output means
// OutputConsole.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	if c.Output != "" && !knownOutputs[c.Output] {
		return ErrOutputUnknown
	}
	return nil
}
