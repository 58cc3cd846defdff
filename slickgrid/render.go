package slickgrid

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/domonda/go-gridview"
)

// ErrPanic wraps a panic recovered while rendering or displaying a grid.
var ErrPanic = errors.New("panic")

// Payload is one rendering of a Grid.
type Payload struct {
	DivID           string
	AssetBaseURL    string
	ColumnTypesJSON []byte
	RecordsJSON     []byte
	OptionsJSON     []byte

	// Markup is the HTML to be injected before Script.
	Markup string
	// Script binds the widget to the element in Markup.
	Script string
}

// Render serializes the grid data and executes
// MarkupTemplate and ScriptTemplate.
// Either a complete Payload or an error is returned.
func (g *Grid) Render(ctx context.Context) (*Payload, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	columnTypesJSON, err := json.Marshal(g.columnTypes)
	if err != nil {
		return nil, fmt.Errorf("can't encode column types: %w", err)
	}
	var records bytes.Buffer
	err = gridview.WriteRecords(ctx, &records, g.frame, g.encoder)
	if err != nil {
		return nil, fmt.Errorf("can't encode rows: %w", err)
	}
	optionsJSON, err := json.Marshal(g.options)
	if err != nil {
		return nil, fmt.Errorf("can't encode options: %w", err)
	}

	tc := &TemplateContext{
		DivID:           g.divID,
		AssetBaseURL:    g.assetBaseURL,
		ColumnTypesJSON: columnTypesJSON,
		RecordsJSON:     records.Bytes(),
		OptionsJSON:     optionsJSON,
		OptionalModules: optionalModules,
	}
	var markup, script bytes.Buffer
	if err = MarkupTemplate.Execute(&markup, tc); err != nil {
		return nil, err
	}
	if err = ScriptTemplate.Execute(&script, tc); err != nil {
		return nil, err
	}
	return &Payload{
		DivID:           tc.DivID,
		AssetBaseURL:    tc.AssetBaseURL,
		ColumnTypesJSON: tc.ColumnTypesJSON,
		RecordsJSON:     tc.RecordsJSON,
		OptionsJSON:     tc.OptionsJSON,
		Markup:          markup.String(),
		Script:          script.String(),
	}, nil
}

// Display renders the grid and injects the markup
// followed by the script into host.
//
// Display never returns an error or panics.
// If rendering or injecting fails, ErrorMarkup of the error
// is injected with host.DisplayHTML instead.
// The error markup is injected at most once per call.
func (g *Grid) Display(ctx context.Context, host Host) {
	if err := g.display(ctx, host); err != nil {
		displayError(host, err)
	}
}

func (g *Grid) display(ctx context.Context, host Host) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrPanic, r)
		}
	}()

	payload, err := g.Render(ctx)
	if err != nil {
		return err
	}
	if err = host.DisplayHTML(payload.Markup); err != nil {
		return err
	}
	return host.DisplayJavascript(payload.Script)
}

func displayError(host Host, err error) {
	defer func() {
		_ = recover()
	}()
	_ = host.DisplayHTML(ErrorMarkup(err))
}

// Show creates a Grid for frame and displays it in host.
// Errors from New are returned, display errors
// are shown in host as error markup.
func Show(ctx context.Context, host Host, frame *gridview.Frame, opts ...Option) error {
	grid, err := New(frame, opts...)
	if err != nil {
		return err
	}
	grid.Display(ctx, host)
	return nil
}
