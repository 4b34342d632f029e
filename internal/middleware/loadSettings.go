package middleware

import (
	"context"

	"github.com/MrSnakeDoc/tailwhip/internal/config"
	"github.com/spf13/cobra"
)

// LoadSettings loads the layered configuration before the command runs. The
// project file lookup starts from the first path argument of the root
// command, the working directory otherwise.
func LoadSettings(cmd *cobra.Command, args []string, next func(cmd *cobra.Command, args []string) error) error {
	custom, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}

	opts := config.Options{CustomFile: custom}
	if !cmd.HasParent() && len(args) > 0 {
		opts.SearchPath = args[0]
	}

	settings, err := config.Load(opts)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = context.WithValue(ctx, CtxKeySettings, settings)
	ctx = context.WithValue(ctx, CtxKeyLoadOptions, opts)
	cmd.SetContext(ctx)

	return next(cmd, args)
}
