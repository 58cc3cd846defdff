// Package cli implements the gridview command-line interface.
//
// The commands load a table from a CSV, Parquet, or Excel file
// or from an SQLite query and bind it to a SlickGrid widget:
//   - render: write a standalone HTML document with the grid
//   - schema: print the column schema JSON of the grid
//   - serve: serve the document and the widget assets over HTTP
//
// All commands support --verbose (-v) for debug logging.
// Loggers are passed to the commands through the context.
package cli

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const appName = "gridview"

// Version is displayed by --version.
var Version = "dev"

// NewRootCommand returns the root command with all subcommands.
func NewRootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "gridview displays tables as interactive SlickGrid widgets",
		Long:         `gridview reads tabular data from CSV, Parquet, Excel, or SQLite sources and renders it as an interactive SlickGrid widget embedded into an HTML document.`,
		Version:      Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newSchemaCmd())
	root.AddCommand(newServeCmd())

	return root
}

// Execute runs the root command with the arguments of the process.
func Execute(ctx context.Context) error {
	root := NewRootCommand()
	root.SetArgs(os.Args[1:])
	return root.ExecuteContext(ctx)
}
