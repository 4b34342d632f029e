package internal

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MrSnakeDoc/tailwhip/internal/config"
	"github.com/MrSnakeDoc/tailwhip/internal/logger"
	"github.com/MrSnakeDoc/tailwhip/internal/middleware"
	"github.com/MrSnakeDoc/tailwhip/internal/sorting"
	"github.com/MrSnakeDoc/tailwhip/internal/utils"

	"github.com/spf13/cobra"
)

func NewExplainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explain CLASS...",
		Short: "Show how classes are parsed and ranked",
		Long: `Print one row per class, in sorted order, with the parsed parts and the
sort key built from them. Unknown parts rank last (` + strconv.Itoa(sorting.MaxRank) + `).`,
		Example: `tailwhip explain "sm:hover:bg-red-500/50 -mx-2 !p-4 w-[100px]"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := middleware.Get[*config.Settings](cmd, middleware.CtxKeySettings)
			if err != nil {
				return err
			}

			engine := sorting.NewEngine(settings.Tables(), settings.CacheSize)
			classes := engine.Sort(strings.Fields(strings.Join(args, " ")))

			table := logger.CreateTable(cmd.OutOrStdout(), []string{
				"Class", "Variants", "Prefix", "Direction", "Size", "Value",
				"Color", "Shade", "Alpha", "Suffix", "Key",
			})

			rows := utils.Map(classes, func(raw string) []string {
				return explainRow(engine.Parse(raw), engine.SortKey(raw))
			})
			for _, r := range rows {
				if err := table.Append(r); err != nil {
					return fmt.Errorf("an error occurred while appending to the table: %w", err)
				}
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("an error occurred while rendering the table: %w", err)
			}
			return nil
		},
	}
	return cmd
}

func explainRow(pc sorting.ParsedClass, key sorting.SortKey) []string {
	alpha := "—"
	if pc.HasAlpha {
		alpha = "/" + pc.Alpha
	}

	prefix := pc.Prefix
	switch {
	case pc.Important && pc.Negated:
		prefix = "!-" + prefix
	case pc.Important:
		prefix = "!" + prefix
	case pc.Negated:
		prefix = "-" + prefix
	}

	return []string{
		pc.Original,
		orDash(strings.Join(pc.Variants, ", ")),
		orDash(prefix),
		orDash(pc.Direction),
		orDash(pc.Size),
		orDash(pc.Value),
		orDash(pc.Color),
		orDash(pc.Shade),
		alpha,
		orDash(pc.Suffix),
		formatKey(key),
	}
}

// formatKey renders the numeric part of a key: variant ranks, prefix rank,
// refinement flag, then the component ranks.
func formatKey(k sorting.SortKey) string {
	idx := func(r sorting.Rank) string { return strconv.Itoa(r.Index) }

	return fmt.Sprintf("[%s] %s %d [%s]",
		strings.Join(utils.Map(k.Variants, idx), " "),
		idx(k.Prefix),
		k.Refined,
		strings.Join(utils.Map(k.Components, idx), " "),
	)
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
