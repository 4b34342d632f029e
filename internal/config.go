package internal

import (
	"fmt"

	"github.com/MrSnakeDoc/tailwhip/internal/config"
	"github.com/MrSnakeDoc/tailwhip/internal/logger"
	"github.com/MrSnakeDoc/tailwhip/internal/middleware"

	"github.com/spf13/cobra"
)

func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := middleware.Get[*config.Settings](cmd, middleware.CtxKeySettings)
			if err != nil {
				return err
			}

			if len(settings.Files) == 0 {
				logger.Debug("no configuration file found, using defaults")
			}
			for _, f := range settings.Files {
				logger.Info("Loaded %s", f)
			}

			data, err := config.Dump(settings)
			if err != nil {
				return fmt.Errorf("failed to encode configuration: %w", err)
			}

			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	return cmd
}
