package internal

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/MrSnakeDoc/tailwhip/internal/config"
	"github.com/MrSnakeDoc/tailwhip/internal/errs"
	"github.com/MrSnakeDoc/tailwhip/internal/files"
	"github.com/MrSnakeDoc/tailwhip/internal/logger"
	"github.com/MrSnakeDoc/tailwhip/internal/middleware"
	"github.com/MrSnakeDoc/tailwhip/internal/rewrite"
	"github.com/MrSnakeDoc/tailwhip/internal/sorting"
	"github.com/MrSnakeDoc/tailwhip/internal/watch"

	"github.com/spf13/cobra"
)

type formatFlags struct {
	write bool
	check bool
	watch bool
	jobs  int
}

// session is everything one formatting pass needs. Watch mode rebuilds it
// when the configuration changes; the engine is kept and reloaded.
type session struct {
	paths    []string
	opts     config.Options
	flags    formatFlags
	settings *config.Settings
	engine   *sorting.Engine
	targets  []string
	proc     *files.Processor
}

func readFormatFlags(cmd *cobra.Command) (formatFlags, error) {
	var f formatFlags
	var err error

	if f.write, err = cmd.Flags().GetBool("write"); err != nil {
		return f, err
	}
	if f.check, err = cmd.Flags().GetBool("check"); err != nil {
		return f, err
	}
	if f.watch, err = cmd.Flags().GetBool("watch"); err != nil {
		return f, err
	}
	if f.jobs, err = cmd.Flags().GetInt("jobs"); err != nil {
		return f, err
	}
	return f, nil
}

func targetPaths(args []string) []string {
	if len(args) == 0 {
		return []string{"."}
	}
	return args
}

// validateFormatFlags rejects conflicting flags before any configuration is
// loaded, so the error names the flags rather than a broken config file.
func validateFormatFlags(cmd *cobra.Command, args []string, next func(*cobra.Command, []string) error) error {
	flags, err := readFormatFlags(cmd)
	if err != nil {
		return err
	}
	pathList := strings.Join(targetPaths(args), " ")

	switch {
	case flags.write && flags.check:
		return middleware.FlagComboError(errs.WriteWithCheck, pathList)
	case flags.watch && flags.check:
		return middleware.FlagComboError(errs.WatchWithCheck, pathList)
	case flags.jobs < -1:
		return middleware.FlagComboError(errs.InvalidJobs, flags.jobs)
	}
	return next(cmd, args)
}

func runFormat(cmd *cobra.Command, args []string) error {
	flags, err := readFormatFlags(cmd)
	if err != nil {
		return err
	}

	paths := targetPaths(args)
	pathList := strings.Join(paths, " ")

	settings, err := middleware.Get[*config.Settings](cmd, middleware.CtxKeySettings)
	if err != nil {
		return err
	}
	opts, err := middleware.Get[config.Options](cmd, middleware.CtxKeyLoadOptions)
	if err != nil {
		return err
	}

	s := &session{
		paths:  paths,
		opts:   opts,
		flags:  flags,
		engine: sorting.NewEngine(settings.Tables(), settings.CacheSize),
	}
	if err := s.apply(settings); err != nil {
		return err
	}

	if len(s.targets) == 0 {
		return middleware.Logged(errs.NoFilesFound, pathList, strings.Join(settings.Globs, ", "))
	}

	sum, _, runErr := s.proc.Run(cmd.Context(), s.targets)
	printSummary(sum, flags)

	if flags.watch {
		return s.watch(cmd.Context())
	}

	if runErr != nil {
		return fmt.Errorf("%d file(s) failed: %w", sum.Failed, runErr)
	}
	if flags.check && sum.Changed > 0 {
		return middleware.Logged(errs.ChangesRequired, sum.Changed, pathList)
	}
	return nil
}

// apply installs settings: new tables in the engine, a new rewriter and
// processor, and a fresh target list. Everything that can fail runs before
// anything is installed, so on error the session keeps its previous settings.
func (s *session) apply(settings *config.Settings) error {
	patterns, err := settings.Patterns()
	if err != nil {
		return err
	}
	targets, err := files.Find(s.paths, settings.Globs)
	if err != nil {
		return err
	}
	workers := settings.Workers()
	switch {
	case s.flags.jobs > 0:
		workers = s.flags.jobs
	case s.flags.jobs == 0:
		workers = runtime.NumCPU()
	}

	rw := rewrite.New(patterns, settings.SkipExpressions, s.engine)
	proc := files.NewProcessor(rw, files.Options{
		Write:     s.flags.write,
		Workers:   workers,
		Verbosity: logger.Verbosity(),
	})

	if s.settings != nil {
		s.engine.Reload(settings.Tables())
	}
	s.settings = settings
	s.proc = proc
	s.targets = targets
	return nil
}

func (s *session) watch(ctx context.Context) error {
	for {
		w, err := watch.New(watch.DefaultConfig(s.targets, s.settings.Files))
		if err != nil {
			return err
		}
		changes, err := w.Start()
		if err != nil {
			_ = w.Stop()
			return err
		}
		logger.Info("Watching %d file(s), press Ctrl+C to stop", len(s.targets))

		reload, err := s.watchUntilReload(ctx, changes)
		if stopErr := w.Stop(); stopErr != nil {
			logger.Debug("stopping watcher: %v", stopErr)
		}
		if err != nil || !reload {
			return err
		}
	}
}

// watchUntilReload processes change batches until the context ends (false)
// or a configuration change was applied and the watch set must be rebuilt
// (true).
func (s *session) watchUntilReload(ctx context.Context, changes <-chan watch.Change) (bool, error) {
	for {
		select {
		case <-ctx.Done():
			return false, nil

		case ch := <-changes:
			if ch.Config {
				settings, err := config.Load(s.opts)
				if err != nil {
					logger.LogError("configuration not reloaded: %v", err)
					continue
				}
				if err := s.apply(settings); err != nil {
					logger.LogError("configuration not reloaded: %v", err)
					continue
				}
				logger.Info("Configuration reloaded")
				sum, _, err := s.proc.Run(ctx, s.targets)
				logRunError(err)
				printSummary(sum, s.flags)
				return true, nil
			}

			sum, _, err := s.proc.Run(ctx, ch.Files)
			logRunError(err)
			printSummary(sum, s.flags)
		}
	}
}

func logRunError(err error) {
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Debug("batch finished with errors: %v", err)
	}
}

func printSummary(sum files.Summary, flags formatFlags) {
	p := logger.Printer()

	if logger.Verbosity() < logger.VerbosityLoud && !flags.watch {
		logger.Line("\nUse " + p.Warning("-v") + " (show unchanged files) or " +
			p.Warning("-vv") + " (show diff preview) for more detail.")
	}

	if !flags.write {
		logger.Warn("Dry run. No files were written. Use --write to write changes.")
	}

	logger.Line(fmt.Sprintf("⏱ Completed in %s for %s files. %s",
		p.Bold("%.3fs", sum.Duration.Seconds()),
		p.Bold("%d", sum.Changed),
		p.Dim("(%d skipped)", sum.Skipped)))
}
