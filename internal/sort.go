package internal

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/MrSnakeDoc/tailwhip/internal/config"
	"github.com/MrSnakeDoc/tailwhip/internal/middleware"
	"github.com/MrSnakeDoc/tailwhip/internal/sorting"

	"github.com/spf13/cobra"
)

func NewSortCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sort [CLASS...]",
		Short: "Sort classes given as arguments or read from stdin",
		Long: `Sort classes given as arguments and print them space separated.
Without arguments every stdin line is sorted on its own.`,
		Example: `tailwhip sort p-4 flex hover:p-2 container
echo "text-red-500 p-4 flex" | tailwhip sort`,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := middleware.Get[*config.Settings](cmd, middleware.CtxKeySettings)
			if err != nil {
				return err
			}

			engine := sorting.NewEngine(settings.Tables(), settings.CacheSize)
			w := cmd.OutOrStdout()

			if len(args) > 0 {
				return printSorted(w, engine, strings.Fields(strings.Join(args, " ")))
			}

			sc := bufio.NewScanner(cmd.InOrStdin())
			sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
			for sc.Scan() {
				if err := printSorted(w, engine, strings.Fields(sc.Text())); err != nil {
					return err
				}
			}
			return sc.Err()
		},
	}
	return cmd
}

func printSorted(w io.Writer, engine *sorting.Engine, classes []string) error {
	_, err := fmt.Fprintln(w, strings.Join(engine.Sort(classes), " "))
	return err
}
