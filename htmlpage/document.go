// Package htmlpage implements a slickgrid.Host
// that collects displayed content into a standalone HTML document.
package htmlpage

import (
	"context"
	"html/template"
	"io"
	"strings"
	"sync"

	"github.com/domonda/go-gridview/slickgrid"
)

var _ slickgrid.Host = new(Document)

// DefaultScripts are loaded in the document head
// before any displayed content. The widget script
// expects RequireJS and jQuery as globals.
var DefaultScripts = []string{
	"https://cdnjs.cloudflare.com/ajax/libs/require.js/2.3.6/require.min.js",
	"https://code.jquery.com/jquery-2.2.4.min.js",
}

// Document is a slickgrid.Host that appends every displayed
// markup and script to a list of fragments
// which are written as HTML document by WriteTo.
// Document is safe for concurrent use.
type Document struct {
	Title   string
	Scripts []string

	mtx       sync.Mutex
	fragments []fragment
}

type fragment struct {
	HTML   template.HTML
	Script template.JS
}

// NewDocument returns an empty Document using DefaultScripts.
func NewDocument(title string) *Document {
	return &Document{
		Title:   title,
		Scripts: DefaultScripts,
	}
}

func (d *Document) DisplayHTML(markup string) error {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	d.fragments = append(d.fragments, fragment{HTML: template.HTML(markup)})
	return nil
}

func (d *Document) DisplayJavascript(script string) error {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	d.fragments = append(d.fragments, fragment{Script: template.JS(script)})
	return nil
}

// NumFragments returns the number of displayed markups and scripts.
func (d *Document) NumFragments() int {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	return len(d.fragments)
}

// Reset removes all displayed content.
func (d *Document) Reset() {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	d.fragments = nil
}

// WriteTo writes the document with all displayed content
// in display order to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	d.mtx.Lock()
	data := documentContext{
		Title:     d.Title,
		Scripts:   d.Scripts,
		Fragments: append([]fragment(nil), d.fragments...),
	}
	d.mtx.Unlock()

	cw := &countingWriter{w: w}
	err := DocumentTemplate.Execute(cw, data)
	return cw.n, err
}

// String returns the document as HTML string.
func (d *Document) String() string {
	var b strings.Builder
	_, _ = d.WriteTo(&b)
	return b.String()
}

// Render returns a Document with a single grid
// displayed with Grid.Display.
func Render(ctx context.Context, title string, grid *slickgrid.Grid) *Document {
	doc := NewDocument(title)
	grid.Display(ctx, doc)
	return doc
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
