package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/contacts/internal/shell"
	"github.com/mesh-intelligence/contacts/internal/view"
	"github.com/mesh-intelligence/contacts/pkg/sqlite"
	"github.com/mesh-intelligence/contacts/pkg/types"
)

// openBook returns the address book for the configured backend and a
// function that releases it.
func openBook(backend string) (types.Book, func() error, error) {
	switch backend {
	case types.BackendSQLite:
		store := sqlite.NewBackend()
		if err := store.Attach(); err != nil {
			return nil, nil, fmt.Errorf("attach sqlite backend: %w", err)
		}
		return store, store.Detach, nil
	case types.BackendMemory, "":
		return types.NewAddressBook(), func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", types.ErrBackendUnknown, backend)
	}
}

// runShell starts the interactive loop on the command's stdin and stdout.
func (a *app) runShell(cmd *cobra.Command) error {
	book, release, err := openBook(a.settings.Backend)
	if err != nil {
		return sysError(err)
	}
	defer func() {
		if err := release(); err != nil {
			a.logger.Warn("release book", zap.Error(err))
		}
	}()

	out := cmd.OutOrStdout()
	display, err := view.New(a.settings.Output, view.Options{Writer: out, ForcePlain: a.flags.plain})
	if err != nil {
		return userError(err)
	}

	// The prompt is only useful to a person reading console output.
	promptOut := io.Discard
	if a.settings.Output == types.OutputConsole || a.settings.Output == "" {
		promptOut = out
	}

	sh := shell.New(book, display,
		shell.WithLogger(a.logger),
		shell.WithPrompt(a.settings.Prompt, promptOut))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	a.logger.Debug("session started", zap.String("backend", a.settings.Backend))
	if err := sh.Run(ctx, cmd.InOrStdin()); err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return sysError(err)
	}
	return nil
}
