package cli

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/cobra"
	fs "github.com/ungerik/go-fs"

	"github.com/domonda/go-gridview"
	"github.com/domonda/go-gridview/arrowframe"
	"github.com/domonda/go-gridview/csvframe"
	"github.com/domonda/go-gridview/excelframe"
	"github.com/domonda/go-gridview/sqlframe"
)

// ErrUnsupportedInput is returned for input files
// with an unknown extension.
var ErrUnsupportedInput = errors.New("unsupported input file type")

// sourceFlags select the table to load.
type sourceFlags struct {
	sheet  string
	sqlite string
	query  string
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.sheet, "sheet", "", "Excel sheet name (default: first sheet)")
	flags.StringVar(&f.sqlite, "sqlite", "", "SQLite database file to query instead of reading an input file")
	flags.StringVar(&f.query, "query", "", "SQL query for --sqlite")
}

// loadFrame loads the table from input or from the SQLite query,
// moves the configured index columns into the frame index,
// and selects the configured columns.
func loadFrame(ctx context.Context, input string, src *sourceFlags, config *Config) (*gridview.Frame, error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	var (
		frame *gridview.Frame
		err   error
	)
	if src.sqlite != "" {
		frame, err = querySQLite(ctx, src, config.Title)
	} else {
		frame, err = readFile(ctx, fs.File(input), src.sheet, config)
	}
	if err != nil {
		return nil, err
	}
	if len(config.Index) > 0 {
		frame, err = frame.WithIndex(config.Index...)
		if err != nil {
			return nil, err
		}
	}
	if len(config.Columns) > 0 {
		frame, err = frame.SelectColumns(config.Columns...)
		if err != nil {
			return nil, err
		}
	}
	if len(config.DropColumns) > 0 {
		frame = frame.DropColumns(config.DropColumns...)
	}
	prog.done("Loaded table", "title", frame.Title(), "columns", len(frame.Cols), "rows", frame.NumRows())
	return frame, nil
}

func readFile(ctx context.Context, file fs.File, sheet string, config *Config) (*gridview.Frame, error) {
	title := config.Title
	if title == "" {
		title = strings.TrimSuffix(file.Name(), file.Ext())
	}
	loggerFromContext(ctx).Debug("Reading input", "file", file.LocalPath())

	data, err := file.ReadAllContext(ctx)
	if err != nil {
		return nil, err
	}
	switch ext := strings.ToLower(file.Ext()); ext {
	case ".csv", ".tsv", ".txt":
		return csvframe.ReadFrame(title, data, &csvframe.Config{
			Detection: config.CSVDetection,
			Parser:    config.Parser,
		})

	case ".parquet":
		return arrowframe.ReadParquet(ctx, title, bytes.NewReader(data))

	case ".xlsx", ".xlsm", ".xltm", ".xltx":
		frame, err := excelframe.ReadSheet(bytes.NewReader(data), sheet, &excelframe.Config{Parser: config.Parser})
		if err != nil {
			return nil, err
		}
		if config.Title != "" {
			frame.Tit = config.Title
		}
		return frame, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedInput, ext)
	}
}

func querySQLite(ctx context.Context, src *sourceFlags, title string) (frame *gridview.Frame, err error) {
	if src.query == "" {
		return nil, errors.New("--sqlite requires --query")
	}
	db, err := sql.Open("sqlite3", fs.File(src.sqlite).LocalPath())
	if err != nil {
		return nil, err
	}
	defer func() {
		err = errors.Join(err, db.Close())
	}()

	loggerFromContext(ctx).Debug("Querying SQLite", "db", src.sqlite, "query", src.query)
	if title == "" {
		title = strings.TrimSuffix(fs.File(src.sqlite).Name(), fs.File(src.sqlite).Ext())
	}
	return sqlframe.Query(ctx, db, title, src.query)
}
