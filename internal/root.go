package internal

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/MrSnakeDoc/tailwhip/internal/logger"
	"github.com/MrSnakeDoc/tailwhip/internal/middleware"

	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags.
var Version = "dev"

func newBaseRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tailwhip [PATH...]",
		Short: "Sort Tailwind CSS classes in HTML and CSS files",
		Long: `tailwhip discovers class attributes and @apply directives and sorts their
utility classes into one consistent, configurable order.

Directories are searched with the configured globs (default **/*.html, **/*.css);
existing files are used as is; anything else is a glob pattern such as 'src/**/*.jsx'.
Without --write nothing is written (dry run).`,
		Example: `tailwhip templates/ --write
tailwhip 'src/**/*.html' -vv
tailwhip . --check`,
		Args: cobra.ArbitraryArgs,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			logger.ConfigureLoggerFromFlags()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if v, _ := cmd.Flags().GetBool("version"); v {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "tailwhip %s\n", Version)
				return err
			}
			return runFormat(cmd, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().BoolP("version", "V", false, "Show version and exit")
	cmd.Flags().BoolP("write", "w", false, "Write changes to files (default: dry run)")
	cmd.Flags().Bool("check", false, "Exit with an error when any file needs sorting")
	cmd.Flags().Bool("watch", false, "Keep running and re-sort files when they or the configuration change")
	cmd.Flags().IntP("jobs", "j", -1, "Number of files processed in parallel (0: one per CPU, default from config)")

	cmd.PersistentFlags().StringP("config", "c", "", "Custom configuration file (overrides project settings)")
	cmd.PersistentFlags().BoolVarP(&logger.FlagQuiet, "quiet", "q", false, "Suppress output except errors")
	cmd.PersistentFlags().CountVarP(&logger.FlagVerboseCount, "verbose", "v", "Increase verbosity (-v: unchanged files, -vv: diff, -vvv: debug)")
	cmd.PersistentFlags().BoolVar(&logger.FlagJSON, "json-logs", false, "Emit logs as JSON")

	return cmd
}

func NewRootCmd() *cobra.Command {
	cmd := middleware.UseMiddlewareChain(
		skipOnVersion(validateFormatFlags),
		skipOnVersion(middleware.LoadSettings),
	)(newBaseRootCmd)()
	RegisterSubCommands(cmd)
	return cmd
}

// skipOnVersion bypasses mw when --version is set, so printing the version
// never depends on valid flags or configuration.
func skipOnVersion(mw middleware.MiddlewareFunc) middleware.MiddlewareFunc {
	return func(cmd *cobra.Command, args []string, next func(*cobra.Command, []string) error) error {
		if v, _ := cmd.Flags().GetBool("version"); v {
			return next(cmd, args)
		}
		return mw(cmd, args, next)
	}
}

func Execute() error {
	root := NewRootCmd()

	if os.Getenv("COMP_LINE") != "" ||
		(len(os.Args) > 1 && strings.HasPrefix(os.Args[1], "__complete")) {
		return root.Execute()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		logger.Debug("Failed to execute root command: %v", err)
		return err
	}
	return nil
}
