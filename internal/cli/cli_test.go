package cli

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/contacts/internal/paths"
	"github.com/mesh-intelligence/contacts/pkg/contacts"
	"github.com/mesh-intelligence/contacts/pkg/types"
)

// clearEnv blanks every CONTACTS_* variable the CLI reads so the host
// environment cannot leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		paths.EnvConfigDir,
		"CONTACTS_BACKEND",
		"CONTACTS_OUTPUT",
		"CONTACTS_LOG_LEVEL",
		"CONTACTS_PROMPT",
	} {
		t.Setenv(key, "")
	}
}

// runCLI executes a fresh root command with args, feeding stdin and
// returning what it wrote to stdout.
func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

// writeConfigYAML writes a config.yaml file in the given directory.
func writeConfigYAML(t *testing.T, configDir, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(paths.ConfigFile(configDir), []byte(content), 0o644))
}

func TestVersionCmd(t *testing.T) {
	clearEnv(t)
	out, err := runCLI(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "contacts v"+contacts.Version+"\nmodule: "+contacts.ModulePath+"\n", out)
}

func TestInitCmd(t *testing.T) {
	clearEnv(t)
	dir := filepath.Join(t.TempDir(), "config")

	out, err := runCLI(t, "", "--config-dir", dir, "init")
	require.NoError(t, err)
	path := paths.ConfigFile(dir)
	assert.Equal(t, "Wrote "+path+"\n", out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var got settings
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, defaultSettings(), got)

	t.Run("second run leaves the file alone", func(t *testing.T) {
		writeConfigYAML(t, dir, "backend: sqlite\n")
		out, err := runCLI(t, "", "--config-dir", dir, "init")
		require.NoError(t, err)
		assert.Equal(t, "Config already exists at "+path+"\n", out)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "backend: sqlite\n", string(data))
	})
}

func TestRootCmd_ShellSession(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	input := strings.Join([]string{
		"hello",
		"add Ann 0501234567",
		"add-birthday Ann 15.03.1990",
		"all",
		"exit",
	}, "\n")

	out, err := runCLI(t, input, "--config-dir", dir)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "Welcome to the assistant bot!\n"), out)
	assert.Contains(t, out, "Available commands:")
	assert.Contains(t, out, "Enter a command: ")
	assert.Contains(t, out, "How can I help you?")
	assert.Contains(t, out, "Contact added.")
	assert.Contains(t, out, "Birthday for Ann set: 15.03.1990")
	assert.Contains(t, out, "Ann: Phones: 0501234567, Birthday: 15.03.1990")
	assert.True(t, strings.HasSuffix(out, "Good bye!\n"), out)

	_, err = os.Stat(paths.ConfigFile(dir))
	assert.True(t, os.IsNotExist(err), "running the shell must not write config.yaml")
}

func TestRootCmd_EOFSaysGoodbye(t *testing.T) {
	clearEnv(t)
	out, err := runCLI(t, "add Ann 0501234567\n", "--config-dir", t.TempDir())
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "Good bye!\n"), out)
}

func TestRootCmd_SQLiteBackend(t *testing.T) {
	clearEnv(t)
	input := "add Ann 0501234567\nadd Bob 0671112233\nall\nclose\n"
	out, err := runCLI(t, input, "--config-dir", t.TempDir(), "--backend", "sqlite")
	require.NoError(t, err)

	ann := strings.Index(out, "Ann: Phones: 0501234567, Birthday: not set")
	bob := strings.Index(out, "Bob: Phones: 0671112233, Birthday: not set")
	require.NotEqual(t, -1, ann, out)
	require.NotEqual(t, -1, bob, out)
	assert.Less(t, ann, bob, "contacts list in insertion order")
}

func TestRootCmd_JSONOutput(t *testing.T) {
	clearEnv(t)
	out, err := runCLI(t, "add Ann 0501234567\nall\nexit\n", "--config-dir", t.TempDir(), "--output", "json")
	require.NoError(t, err)
	assert.NotContains(t, out, "Enter a command: ", "prompt is console only")

	var kinds []string
	var contactsDoc struct {
		Kind     string `json:"kind"`
		Contacts []struct {
			Name   string   `json:"name"`
			Phones []string `json:"phones"`
		} `json:"contacts"`
	}
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		var doc map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &doc), "line %q", sc.Text())
		kind, _ := doc["kind"].(string)
		kinds = append(kinds, kind)
		if kind == "contacts" {
			require.NoError(t, json.Unmarshal(sc.Bytes(), &contactsDoc))
		}
	}
	assert.Equal(t, []string{"message", "commands", "message", "contacts", "message"}, kinds)
	require.Len(t, contactsDoc.Contacts, 1)
	assert.Equal(t, "Ann", contactsDoc.Contacts[0].Name)
	assert.Equal(t, []string{"0501234567"}, contactsDoc.Contacts[0].Phones)
}

func TestRootCmd_ConfigPrecedence(t *testing.T) {
	t.Run("config file sets output and prompt", func(t *testing.T) {
		clearEnv(t)
		dir := t.TempDir()
		writeConfigYAML(t, dir, "output: console\nprompt: \"> \"\n")

		out, err := runCLI(t, "exit\n", "--config-dir", dir)
		require.NoError(t, err)
		assert.Contains(t, out, "> Good bye!")
		assert.NotContains(t, out, "Enter a command: ")
	})

	t.Run("env overrides config file", func(t *testing.T) {
		clearEnv(t)
		dir := t.TempDir()
		writeConfigYAML(t, dir, "output: console\n")
		t.Setenv("CONTACTS_OUTPUT", "yaml")

		out, err := runCLI(t, "exit\n", "--config-dir", dir)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "---\n"), out)
	})

	t.Run("flag overrides env", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("CONTACTS_OUTPUT", "yaml")

		out, err := runCLI(t, "exit\n", "--config-dir", t.TempDir(), "--output", "json")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "{"), out)
	})

	t.Run("config dir from env", func(t *testing.T) {
		clearEnv(t)
		dir := t.TempDir()
		t.Setenv(paths.EnvConfigDir, dir)

		_, err := runCLI(t, "", "init")
		require.NoError(t, err)
		_, err = os.Stat(paths.ConfigFile(dir))
		assert.NoError(t, err)
	})
}

func TestRootCmd_InvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		config  string
		wantErr error
	}{
		{
			name:    "unknown backend flag",
			args:    []string{"--backend", "postgres"},
			wantErr: types.ErrBackendUnknown,
		},
		{
			name:    "unknown output in config file",
			config:  "output: xml\n",
			wantErr: types.ErrOutputUnknown,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			dir := t.TempDir()
			if tt.config != "" {
				writeConfigYAML(t, dir, tt.config)
			}
			_, err := runCLI(t, "exit\n", append([]string{"--config-dir", dir}, tt.args...)...)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, exitUserError, exitCode(err))
		})
	}

	t.Run("bad log level", func(t *testing.T) {
		clearEnv(t)
		dir := t.TempDir()
		writeConfigYAML(t, dir, "log_level: loud\n")
		_, err := runCLI(t, "exit\n", "--config-dir", dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log_level")
		assert.Equal(t, exitUserError, exitCode(err))
	})
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	clearEnv(t)
	_, err := runCLI(t, "", "--config-dir", t.TempDir(), "add", "Ann")
	require.Error(t, err)
	assert.Equal(t, exitUserError, exitCode(err))
}

func TestExitCode(t *testing.T) {
	base := errors.New("boom")
	assert.Equal(t, exitSuccess, exitCode(nil))
	assert.Equal(t, exitUserError, exitCode(base))
	assert.Equal(t, exitUserError, exitCode(userError(base)))
	assert.Equal(t, exitSysError, exitCode(sysError(base)))
	assert.ErrorIs(t, sysError(base), base)
}

func TestNewLogger(t *testing.T) {
	logger, err := newLogger("warn", false)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel), "debug disabled at warn")

	logger, err = newLogger("warn", true)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel), "verbose enables debug")

	_, err = newLogger("chatty", false)
	assert.Error(t, err)
}

func TestOpenBook(t *testing.T) {
	for _, backend := range []string{types.BackendMemory, types.BackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			book, release, err := openBook(backend)
			require.NoError(t, err)
			r, err := types.NewRecord("Ann")
			require.NoError(t, err)
			require.NoError(t, book.AddRecord(r))
			got, err := book.Find("Ann")
			require.NoError(t, err)
			assert.Equal(t, "Ann", got.Name().String())
			assert.NoError(t, release())
		})
	}

	_, _, err := openBook("postgres")
	assert.ErrorIs(t, err, types.ErrBackendUnknown)
}
