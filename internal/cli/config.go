package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	fs "github.com/ungerik/go-fs"

	"github.com/domonda/go-gridview"
	"github.com/domonda/go-gridview/csvframe"
	"github.com/domonda/go-gridview/slickgrid"
)

// Config is read from a TOML file passed with --config.
// Command line flags override the file values.
//
//	title = "Prices"
//	remote_assets = true
//	precision = 2
//	index = ["Item"]
//	drop_columns = ["Internal"]
//
//	[options]
//	rowHeight = 32
//
//	[parser]
//	nil_strings = ["", "-"]
type Config struct {
	Title            string                    `toml:"title"`
	RemoteAssets     bool                      `toml:"remote_assets"`
	Precision        *int                      `toml:"precision"`
	DisplayPrecision int                       `toml:"display_precision"`
	Index            []string                  `toml:"index"`
	Columns          []string                  `toml:"columns"`
	DropColumns      []string                  `toml:"drop_columns"`
	Options          map[string]any            `toml:"options"`
	Parser           *gridview.StringParser    `toml:"parser"`
	CSVDetection     *csvframe.DetectionConfig `toml:"csv_detection"`
}

func defaultConfig() *Config {
	return &Config{DisplayPrecision: gridview.DefaultDisplayPrecision}
}

// loadConfig returns the default config for an empty filename.
func loadConfig(ctx context.Context, filename string) (*Config, error) {
	config := defaultConfig()
	if filename == "" {
		return config, nil
	}
	data, err := fs.File(filename).ReadAllContext(ctx)
	if err != nil {
		return nil, err
	}
	md, err := toml.Decode(string(data), config)
	if err != nil {
		return nil, fmt.Errorf("can't decode config %s: %w", filename, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		loggerFromContext(ctx).Warn("Unknown config keys", "file", filename, "keys", undecoded)
	}
	return config, nil
}

// gridFlags are the flags of commands that create a grid.
type gridFlags struct {
	configFile       string
	title            string
	remoteAssets     bool
	precision        int
	displayPrecision int
	options          []string
	index            []string
	columns          []string
	dropColumns      []string
}

func (f *gridFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.configFile, "config", "", "TOML config file")
	flags.StringVar(&f.title, "title", "", "document title (default: input name)")
	flags.BoolVar(&f.remoteAssets, "remote-assets", false, "load the widget files from the CDN")
	flags.IntVar(&f.precision, "precision", 0, "fractional digits of float values (default: display precision - 1)")
	flags.IntVar(&f.displayPrecision, "display-precision", gridview.DefaultDisplayPrecision, "display precision used to derive --precision")
	flags.StringArrayVar(&f.options, "option", nil, "widget option as key=value, values are parsed as JSON if valid (repeatable)")
	flags.StringSliceVar(&f.index, "index", nil, "columns to use as row index")
	flags.StringSliceVar(&f.columns, "columns", nil, "columns to display in this order (default: all)")
	flags.StringSliceVar(&f.dropColumns, "drop", nil, "columns not to display")
}

// config loads the config file and applies the flags set on cmd.
func (f *gridFlags) config(cmd *cobra.Command) (*Config, error) {
	config, err := loadConfig(cmd.Context(), f.configFile)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("title") {
		config.Title = f.title
	}
	if flags.Changed("remote-assets") {
		config.RemoteAssets = f.remoteAssets
	}
	if flags.Changed("precision") {
		config.Precision = &f.precision
	}
	if flags.Changed("display-precision") {
		config.DisplayPrecision = f.displayPrecision
	}
	if flags.Changed("index") {
		config.Index = f.index
	}
	if flags.Changed("columns") {
		config.Columns = f.columns
	}
	if flags.Changed("drop") {
		config.DropColumns = f.dropColumns
	}
	for _, option := range f.options {
		key, value, err := parseOption(option)
		if err != nil {
			return nil, err
		}
		if config.Options == nil {
			config.Options = make(map[string]any)
		}
		config.Options[key] = value
	}
	return config, nil
}

// parseOption parses "key=value" where value
// is decoded as JSON if it is valid JSON
// and used as string otherwise.
func parseOption(option string) (key string, value any, err error) {
	key, str, ok := strings.Cut(option, "=")
	if !ok || key == "" {
		return "", nil, fmt.Errorf("invalid option %q, expected key=value", option)
	}
	if gjson.Valid(str) {
		return key, gjson.Parse(str).Value(), nil
	}
	return key, str, nil
}

func (c *Config) gridOptions() []slickgrid.Option {
	opts := []slickgrid.Option{
		slickgrid.WithRemoteAssets(c.RemoteAssets),
		slickgrid.WithDisplayPrecision(c.DisplayPrecision),
		slickgrid.WithOptions(c.Options),
	}
	if c.Precision != nil {
		opts = append(opts, slickgrid.WithPrecision(*c.Precision))
	}
	return opts
}
