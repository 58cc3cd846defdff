package htmlpage

import "html/template"

// DocumentTemplate renders a Document.
var DocumentTemplate = template.Must(template.New("document").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>{{.Title}}</title>
{{- range .Scripts}}
  <script src="{{.}}"></script>
{{- end}}
</head>
<body>
{{- if .Title}}
  <h1>{{.Title}}</h1>
{{- end}}
{{- range .Fragments}}
{{- if .HTML}}
{{.HTML}}
{{- end}}
{{- if .Script}}
<script type="text/javascript">
{{.Script}}
</script>
{{- end}}
{{- end}}
</body>
</html>
`))

type documentContext struct {
	Title     string
	Scripts   []string
	Fragments []fragment
}
