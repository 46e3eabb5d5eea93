package report

import (
	"fmt"
	"html/template"
	"io"
	"time"
)

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"title": Title,
	"date":  func(t time.Time) string { return t.UTC().Format("2 January 2006 15:04 MST") },
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Summary.Title}}</title>
<style>
body { font-family: system-ui, sans-serif; max-width: 48rem; margin: 2rem auto; color: #1f2933; }
h1 { border-bottom: 2px solid #3e7c59; padding-bottom: .25rem; }
.meta { color: #616e7c; font-size: .875rem; }
.constitution { background: #f0f7f4; border-left: 4px solid #3e7c59; padding: .75rem 1rem; }
.bar { background: #e4e7eb; border-radius: 4px; height: .5rem; }
.bar span { display: block; background: #3e7c59; border-radius: 4px; height: 100%; }
table { width: 100%; border-collapse: collapse; }
td { padding: .25rem .5rem; }
td.pct { width: 4rem; text-align: right; }
.dominant { font-weight: 600; }
@media print { .bar span { -webkit-print-color-adjust: exact; print-color-adjust: exact; } }
</style>
</head>
<body>
<h1>{{.Summary.Title}}</h1>
<p class="meta">Report {{.ID}} &middot; generated {{date .GeneratedAt}} &middot;
{{.Summary.Answered}} of {{.Summary.Total}} questions answered{{if not .Summary.Complete}} (incomplete){{end}}</p>

<section class="constitution">
<h2>Constitution{{if .Summary.Constitution.Determined}}: {{title .Summary.Constitution.Type}}{{end}}</h2>
<p>{{.Summary.Constitution.Description}}</p>
</section>

{{range .Summary.Dimensions}}
<section>
<h2>{{.Title}}</h2>
<table>
{{- $dom := .Dominant}}
{{- range .Scores}}
<tr{{if eq .Category $dom}} class="dominant"{{end}}>
<td>{{title .Category}}</td>
<td><div class="bar"><span style="width: {{.Percent}}%"></span></div></td>
<td class="pct">{{.Percent}}%</td>
</tr>
{{- end}}
</table>
{{if .Interpretation}}<p>{{.Interpretation}}</p>{{end}}
</section>
{{end}}

{{with .Summary.Recommendations}}
<h2>Recommendations</h2>
{{range .}}
<h3>{{title .Kind}}</h3>
<ul>
{{- range .Items}}
<li>{{.}}</li>
{{- end}}
</ul>
{{end}}
{{end}}
</body>
</html>
`))

// HTML writes a standalone, printable HTML page.
func HTML(w io.Writer, doc Document) error {
	if err := htmlTemplate.Execute(w, doc); err != nil {
		return fmt.Errorf("render html report: %w", err)
	}
	return nil
}
