package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/contacts/internal/paths"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Long:  "Create the configuration directory and a config.yaml with default values. An existing config.yaml is left as is.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInit(cmd)
		},
	}
}

func (a *app) runInit(cmd *cobra.Command) error {
	path := paths.ConfigFile(a.configDir)
	written, err := writeConfigIfMissing(a.configDir)
	if err != nil {
		return sysError(err)
	}

	if written {
		a.logger.Info("config written", zap.String("path", path))
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Config already exists at %s\n", path)
	return nil
}
