package internal

import (
	"github.com/MrSnakeDoc/tailwhip/internal/middleware"
	"github.com/spf13/cobra"
)

var defaultCommands = []middleware.CommandFactory{
	middleware.UseMiddlewareChain(middleware.LoadSettings)(NewSortCmd),
	middleware.UseMiddlewareChain(middleware.LoadSettings)(NewExplainCmd),
	middleware.UseMiddlewareChain(middleware.LoadSettings)(NewConfigCmd),
}

func RegisterSubCommands(cmd *cobra.Command) {
	for _, factory := range defaultCommands {
		cmd.AddCommand(factory())
	}
}
