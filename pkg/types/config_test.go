package types

import (
	"errors"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:    "empty backend returns ErrBackendEmpty",
			config:  Config{Backend: "", Output: OutputConsole},
			wantErr: ErrBackendEmpty,
		},
		{
			name:    "unknown backend returns ErrBackendUnknown",
			config:  Config{Backend: "postgres"},
			wantErr: ErrBackendUnknown,
		},
		{
			name:   "valid memory config",
			config: Config{Backend: "memory", Output: "console"},
		},
		{
			name:   "valid sqlite config with json output",
			config: Config{Backend: "sqlite", Output: "json"},
		},
		{
			name:   "empty output is valid at config level",
			config: Config{Backend: "memory"},
		},
		{
			name:    "unknown output returns ErrOutputUnknown",
			config:  Config{Backend: "memory", Output: "xml"},
			wantErr: ErrOutputUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected nil error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error %v, got nil", tt.wantErr)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}
