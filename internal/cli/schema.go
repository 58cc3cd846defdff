package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/domonda/go-gridview/slickgrid"
)

func newSchemaCmd() *cobra.Command {
	var c gridCommand
	cmd := &cobra.Command{
		Use:   "schema [file]",
		Short: "Print the column schema of a table as JSON",
		Long: `Schema prints the column schema of the grid as JSON array
of {"field", "type"} objects, including the leading index columns.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, frame, err := c.load(cmd, args)
			if err != nil {
				return err
			}
			grid, err := slickgrid.New(frame, config.gridOptions()...)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(grid.ColumnTypes())
		},
	}
	c.register(cmd)
	return cmd
}
