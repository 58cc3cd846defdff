// Package slickgrid renders a gridview.Frame as SlickGrid widget
// consisting of HTML markup and a script, and displays it in a Host.
//
// Example usage:
//
//	grid, err := slickgrid.New(frame,
//	    slickgrid.WithPrecision(2),
//	    slickgrid.WithOptions(map[string]any{"rowHeight": 32}),
//	)
//	if err != nil {
//	    return err
//	}
//	grid.Display(ctx, host)
package slickgrid

import (
	"github.com/google/uuid"

	"github.com/domonda/go-gridview"
)

// Option configures a Grid in New.
type Option func(*config)

type config struct {
	remoteAssets     bool
	precision        any
	options          any
	displayPrecision int
	newEncoder       func(precision int) gridview.ValueEncoder
}

// WithRemoteAssets loads the widget files from RemoteAssetBaseURL
// instead of LocalAssetBasePath.
func WithRemoteAssets(remote bool) Option {
	return func(c *config) { c.remoteAssets = remote }
}

// WithPrecision sets the number of fractional digits of float values.
// The precision must be a non-negative integer of any Go integer type,
// or nil to derive it from the display precision.
func WithPrecision(precision any) Option {
	return func(c *config) { c.precision = precision }
}

// WithOptions sets widget options overriding the defaults
// returned by gridview.DefaultOptions.
// Accepted are gridview.Options or any map with string keys.
func WithOptions(options any) Option {
	return func(c *config) { c.options = options }
}

// WithDisplayPrecision sets the display precision of the host
// used to derive the precision if no explicit precision is set.
// The default is gridview.DefaultDisplayPrecision.
func WithDisplayPrecision(displayPrecision int) Option {
	return func(c *config) { c.displayPrecision = displayPrecision }
}

// WithValueEncoder replaces gridview.NewRecordEncoder
// for the encoding of cell values.
func WithValueEncoder(newEncoder func(precision int) gridview.ValueEncoder) Option {
	return func(c *config) { c.newEncoder = newEncoder }
}

// Grid is a frame bound to widget settings,
// ready to be rendered any number of times.
// A Grid is immutable and safe for concurrent use.
type Grid struct {
	divID        string
	assetBaseURL string
	frame        *gridview.Frame
	columnTypes  []gridview.ColumnType
	precision    int
	options      gridview.Options
	encoder      gridview.ValueEncoder
}

// New returns a Grid for a copy of frame with its index
// normalized into leading columns.
//
// Errors wrapping gridview.ErrRaggedColumns, gridview.ErrDuplicateColumn,
// gridview.ErrInvalidPrecision, or gridview.ErrInvalidOptions are
// returned for invalid input.
func New(frame *gridview.Frame, opts ...Option) (*Grid, error) {
	c := config{displayPrecision: gridview.DefaultDisplayPrecision}
	for _, opt := range opts {
		opt(&c)
	}

	normalized, err := gridview.NormalizeIndex(frame)
	if err != nil {
		return nil, err
	}
	precision, err := gridview.ResolvePrecision(c.precision, c.displayPrecision)
	if err != nil {
		return nil, err
	}
	options, err := gridview.MergeOptions(c.options)
	if err != nil {
		return nil, err
	}

	var encoder gridview.ValueEncoder
	if c.newEncoder != nil {
		encoder = c.newEncoder(precision)
	} else {
		encoder = gridview.NewRecordEncoder(precision)
	}

	return &Grid{
		divID:        uuid.NewString(),
		assetBaseURL: AssetBaseURL(c.remoteAssets),
		frame:        normalized,
		columnTypes:  gridview.ClassifyColumns(normalized),
		precision:    precision,
		options:      options,
		encoder:      encoder,
	}, nil
}

// DivID returns the unique ID of the DOM element the grid is bound to.
func (g *Grid) DivID() string { return g.divID }

// AssetBaseURL returns the location the widget files are loaded from.
func (g *Grid) AssetBaseURL() string { return g.assetBaseURL }

// Precision returns the number of fractional digits of float values.
func (g *Grid) Precision() int { return g.precision }

// Options returns a copy of the merged widget options.
func (g *Grid) Options() gridview.Options { return g.options.Clone() }

// ColumnTypes returns a copy of the column schema
// including the leading index columns.
func (g *Grid) ColumnTypes() []gridview.ColumnType {
	return append([]gridview.ColumnType(nil), g.columnTypes...)
}

// Frame returns a copy of the normalized frame.
func (g *Grid) Frame() *gridview.Frame { return g.frame.Clone() }
