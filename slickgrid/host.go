package slickgrid

import (
	"errors"
	"html/template"
)

// Host is a document host that embeds rendered grids.
// A host displays content fire-and-forget:
// content injected once can not be taken back.
type Host interface {
	// DisplayHTML injects raw HTML markup.
	DisplayHTML(markup string) error
	// DisplayJavascript injects raw Javascript source to be executed.
	DisplayJavascript(script string) error
}

var _ Host = HostFuncs{}

// HostFuncs implements Host with functions.
// A nil function ignores the content.
type HostFuncs struct {
	HTML       func(markup string) error
	Javascript func(script string) error
}

func (h HostFuncs) DisplayHTML(markup string) error {
	if h.HTML == nil {
		return nil
	}
	return h.HTML(markup)
}

func (h HostFuncs) DisplayJavascript(script string) error {
	if h.Javascript == nil {
		return nil
	}
	return h.Javascript(script)
}

// ErrorMarkupPrefix starts the markup displayed for a failed render.
const ErrorMarkupPrefix = "ERROR: "

// ErrorMarkup returns the markup displayed instead of a grid
// for err: ErrorMarkupPrefix followed by the HTML escaped error message.
func ErrorMarkup(err error) string {
	if err == nil {
		err = errors.New("unknown error")
	}
	return ErrorMarkupPrefix + template.HTMLEscapeString(err.Error())
}
