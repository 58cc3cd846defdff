package cli

import (
	"bytes"
	"errors"
	"io"

	"github.com/spf13/cobra"
	fs "github.com/ungerik/go-fs"

	"github.com/domonda/go-gridview"
	"github.com/domonda/go-gridview/htmlpage"
	"github.com/domonda/go-gridview/slickgrid"
)

// gridCommand holds the flags shared by commands
// that load a table and bind it to a grid.
type gridCommand struct {
	grid   gridFlags
	source sourceFlags
}

func (c *gridCommand) register(cmd *cobra.Command) {
	c.grid.register(cmd)
	c.source.register(cmd)
}

// load returns the config and the frame selected by args and flags.
func (c *gridCommand) load(cmd *cobra.Command, args []string) (*Config, *gridview.Frame, error) {
	if len(args) == 0 && c.source.sqlite == "" {
		return nil, nil, errors.New("missing input file or --sqlite")
	}
	config, err := c.grid.config(cmd)
	if err != nil {
		return nil, nil, err
	}
	var input string
	if len(args) > 0 {
		input = args[0]
	}
	frame, err := loadFrame(cmd.Context(), input, &c.source, config)
	if err != nil {
		return nil, nil, err
	}
	return config, frame, nil
}

func newRenderCmd() *cobra.Command {
	var (
		c      gridCommand
		output string
	)
	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a table as HTML document with a SlickGrid widget",
		Long: `Render reads a CSV, Parquet, or Excel file, or the result of an SQLite query,
and writes a standalone HTML document displaying it as SlickGrid widget.

Examples:
  gridview render prices.csv -o prices.html --remote-assets
  gridview render book.xlsx --sheet Q3 --precision 2 --option rowHeight=32
  gridview render --sqlite shop.db --query "SELECT * FROM orders" --index id`,
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
			doc := htmlpage.Render(cmd.Context(), frame.Title(), grid)
			return writeOutput(cmd, output, doc)
		},
	}
	c.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	return cmd
}

func writeOutput(cmd *cobra.Command, output string, doc io.WriterTo) error {
	if output == "" {
		_, err := doc.WriteTo(cmd.OutOrStdout())
		return err
	}
	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return err
	}
	file := fs.File(output)
	if err := file.WriteAll(buf.Bytes()); err != nil {
		return err
	}
	loggerFromContext(cmd.Context()).Info("Wrote document", "file", file.LocalPath())
	return nil
}
