package batch

import (
	"html/template"
	"io"
)

// chartTemplate renders per-modulus heuristic success rates as a
// self-contained HTML bar chart.
var chartTemplate = template.Must(template.New("chart").Funcs(template.FuncMap{
	"percent": func(rate float64) float64 { return rate * 100 },
}).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Inverse mod heuristic success rate</title>
<style>
body { font-family: sans-serif; margin: 2em; }
.row { display: flex; align-items: center; margin: 2px 0; }
.label { width: 6em; text-align: right; padding-right: 0.5em; color: #333; }
.bar { height: 14px; background: #4c78a8; }
.value { padding-left: 0.5em; font-size: 0.8em; color: #555; }
</style>
</head>
<body>
<h1>Heuristic success rate by modulus</h1>
<p>Share of coprime bases solved without the extended Euclidean fallback.</p>
{{range .}}<div class="row">
  <div class="label">y = {{.Modulus}}</div>
  <div class="bar" style="width: {{percent .HeuristicRate | printf "%.1f"}}%"></div>
  <div class="value">{{percent .HeuristicRate | printf "%.1f"}}% ({{.HeuristicSuccesses}}/{{.Coprime}}), mean steps {{printf "%.2f" .MeanSteps}}</div>
</div>
{{end}}</body>
</html>
`))

// WriteChartHTML writes an HTML visualization of per-modulus stats.
func WriteChartHTML(w io.Writer, stats []ModulusStats) error {
	return chartTemplate.Execute(w, stats)
}
