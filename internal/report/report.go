package report

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"time"

	"github.com/haroonawanofficial/RaceCondition-SecurityToolkit/internal/domain"
)

const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Race-Window Report</title>
<style>
body { font-family: sans-serif; margin: 2rem; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ccc; padding: 6px 10px; text-align: left; }
th { background: #f0f0f0; }
caption { margin-bottom: 1rem; font-size: 1.2rem; }
.note { color: #666; margin-top: 1rem; }
</style>
</head>
<body>
<table>
<caption>Potential race-condition windows ({{len .Records}} rows, generated {{.GeneratedAt}})</caption>
<tr><th>URL</th><th>Status</th><th>Response time (s)</th><th>Suspicion score</th><th>Observed</th></tr>
{{range .Records}}<tr>
<td>{{.URL}}</td>
<td>{{.StatusCode}}</td>
<td>{{printf "%.3f" .ResponseTime}}</td>
<td>{{printf "%.2f" .AIScore}}</td>
<td>{{.ObservedAt.Format "2006-01-02 15:04:05 MST"}}</td>
</tr>
{{end}}</table>
<p class="note">Rows are flagged by a timing heuristic (response faster than the configured
threshold). Treat each entry as a lead for manual investigation, not as a confirmed race
condition.</p>
</body>
</html>
`

var page = template.Must(template.New("report").Parse(pageTemplate))

type pageData struct {
	Records     []domain.Record
	GeneratedAt string
}

// Render writes the HTML report for the given persisted records.
func Render(w io.Writer, records []domain.Record) error {
	return page.Execute(w, pageData{
		Records:     records,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	})
}

// WriteFile renders the report to path, replacing any previous report.
func WriteFile(path string, records []domain.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	defer f.Close()
	if err := Render(f, records); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}
