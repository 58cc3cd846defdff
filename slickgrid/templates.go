package slickgrid

import (
	htmltemplate "html/template"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

var (
	// MarkupTemplate renders the style sheet links
	// and the target element of the grid.
	MarkupTemplate = htmltemplate.Must(htmltemplate.New("markup").Funcs(sprig.HtmlFuncMap()).Parse(`
{{- $base := trimSuffix "/" .AssetBaseURL -}}
<link rel="stylesheet" type="text/css" href="{{$base}}/lib/slick.grid.css">
<link rel="stylesheet" type="text/css" href="{{$base}}/lib/slick-default-theme.css">
<link rel="stylesheet" type="text/css" href="{{$base}}/lib/jquery-ui-1.10.4.custom.min.css">
<link rel="stylesheet" type="text/css" href="{{$base}}/qgrid.css">
<div class="q-grid-container">
  <div id="{{.DivID}}" class="q-grid"></div>
</div>
`))

	// ScriptTemplate renders the script that loads the widget modules
	// and binds the grid to the element rendered by MarkupTemplate.
	//
	// The JSON payloads are inserted verbatim, they must not contain
	// unescaped HTML special characters.
	ScriptTemplate = template.Must(template.New("script").Funcs(sprig.TxtFuncMap()).Parse(`
{{- $base := trimSuffix "/" .AssetBaseURL -}}
var path_dictionary = {
  jquery_drag: "{{$base}}/lib/jquery.event.drag-2.2",
  slick_core: "{{$base}}/lib/slick.core.2.2",
  slick_data_view: "{{$base}}/lib/slick.dataview.2.2",
  slick_grid: "{{$base}}/lib/slick.grid.2.2",
  data_grid: "{{$base}}/qgrid",
  date_filter: "{{$base}}/qgrid.datefilter",
  slider_filter: "{{$base}}/qgrid.sliderfilter",
  filter_base: "{{$base}}/qgrid.filterbase",
  handlebars: "{{$base}}/lib/handlebars-v1.3.0"
};

var existing_config = require.s.contexts._.config;
{{- range $module, $file := .OptionalModules}}
if (!existing_config.paths["{{$module}}"]) {
  path_dictionary["{{$module}}"] = "{{$base}}/{{$file}}";
}
{{- end}}

require.config({
  paths: path_dictionary
});

if (typeof jQuery === "function") {
  define("jquery", function() { return jQuery; });
}

require(["data_grid"], function(dgrid) {
  var grid_elem = $("#{{.DivID}}");
  var data_view = new dgrid.QGrid(grid_elem, {{printf "%s" .RecordsJSON}}, {{printf "%s" .ColumnTypesJSON}});
  data_view.initialize_slick_grid({{printf "%s" .OptionsJSON}});
});
`))
)

// optionalModules are only configured if the page
// has not already configured a module with the same name.
var optionalModules = map[string]string{
	"jquery-ui":  "lib/jquery-ui-1.10.4.custom.min",
	"moment":     "lib/moment.min",
	"underscore": "lib/underscore-min",
}

// TemplateContext is passed to MarkupTemplate and ScriptTemplate.
type TemplateContext struct {
	DivID           string
	AssetBaseURL    string
	ColumnTypesJSON []byte
	RecordsJSON     []byte
	OptionsJSON     []byte
	OptionalModules map[string]string
}
