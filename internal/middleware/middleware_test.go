package middleware

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrSnakeDoc/tailwhip/internal/config"
	"github.com/MrSnakeDoc/tailwhip/internal/errs"
	"github.com/MrSnakeDoc/tailwhip/internal/logger"
)

func TestMain(m *testing.M) {
	logger.UseTestMode()
	os.Exit(m.Run())
}

func TestUseMiddlewareChain_Order(t *testing.T) {
	var calls []string
	record := func(name string) MiddlewareFunc {
		return func(cmd *cobra.Command, args []string, next func(*cobra.Command, []string) error) error {
			calls = append(calls, name)
			return next(cmd, args)
		}
	}

	factory := func() *cobra.Command {
		return &cobra.Command{
			Use: "x",
			PreRunE: func(*cobra.Command, []string) error {
				calls = append(calls, "prerun")
				return nil
			},
			RunE: func(*cobra.Command, []string) error {
				calls = append(calls, "run")
				return nil
			},
		}
	}

	cmd := UseMiddlewareChain(record("a"), record("b"))(factory)()
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, []string{"a", "b", "prerun", "run"}, calls)
}

func TestUseMiddlewareChain_StopsOnError(t *testing.T) {
	ran := false
	failing := func(*cobra.Command, []string, func(*cobra.Command, []string) error) error {
		return FlagComboError(errs.WriteWithCheck, ".")
	}

	cmd := UseMiddlewareChain(failing)(func() *cobra.Command {
		return &cobra.Command{Use: "x", RunE: func(*cobra.Command, []string) error {
			ran = true
			return nil
		}}
	})()
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	assert.ErrorIs(t, err, ErrLogged)
	assert.False(t, ran)
}

func TestGet(t *testing.T) {
	cmd := &cobra.Command{}

	_, err := Get[*config.Settings](cmd, CtxKeySettings)
	assert.Error(t, err, "nil context")

	cmd.SetContext(context.WithValue(context.Background(), CtxKeySettings, "wrong"))
	_, err = Get[*config.Settings](cmd, CtxKeySettings)
	assert.ErrorContains(t, err, "wrong type")

	_, err = Get[config.Options](cmd, CtxKeyLoadOptions)
	assert.ErrorContains(t, err, "is nil")
}

func TestLoadSettings(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".tailwhip.yaml"), []byte("jobs: 3\n"), 0o644))

	var got *config.Settings
	var opts config.Options
	cmd := UseMiddlewareChain(LoadSettings)(func() *cobra.Command {
		c := &cobra.Command{Use: "root", RunE: func(c *cobra.Command, _ []string) error {
			var err error
			if got, err = Get[*config.Settings](c, CtxKeySettings); err != nil {
				return err
			}
			opts, err = Get[config.Options](c, CtxKeyLoadOptions)
			return err
		}}
		c.Flags().String("config", "", "")
		return c
	})()
	cmd.SetArgs([]string{dir})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, 3, got.Jobs)
	assert.Equal(t, dir, opts.SearchPath)
}
