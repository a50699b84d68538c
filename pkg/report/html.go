package report

import (
	"html/template"
	"io"
)

// WriteHTML renders snap as a single static report page with inline styling.
func WriteHTML(w io.Writer, snap Snapshot) error {
	return htmlTemplate.Execute(w, snap)
}

var htmlTemplate = template.Must(template.New("report").Parse(`<!doctype html>
<html lang="en"><meta charset="utf-8">
<title>Memory Hierarchy Report</title>
<style>
body{font-family:system-ui,Segoe UI,Roboto,Helvetica,Arial,sans-serif;margin:20px}
h1,h2{margin:0 0 8px}
table{border-collapse:collapse;width:100%;font-size:14px}
th,td{border:1px solid #ddd;padding:6px 8px;text-align:right}
th:first-child,td:first-child{text-align:left}
.small{color:#555}
</style>

<h1>Memory Hierarchy Report</h1>
<p class="small">Mode: {{.Mode}}</p>

<h2>Caches</h2>
<table>
<thead>
<tr><th>Cache</th><th>Read Access</th><th>Write Access</th><th>Read Miss</th><th>Write Miss</th><th>Read Miss %</th><th>Write Miss %</th><th>Dirty Evicts</th></tr>
</thead>
<tbody>
{{range .Caches}}
<tr>
<td>{{.Label}}</td><td>{{.ReadAccess}}</td><td>{{.WriteAccess}}</td><td>{{.ReadMiss}}</td><td>{{.WriteMiss}}</td>
<td>{{printf "%.2f" .ReadMissPerc}}</td><td>{{printf "%.2f" .WriteMissPerc}}</td><td>{{.DirtyEvicts}}</td>
</tr>
{{end}}
</tbody>
</table>

{{if .DRAM}}
<h2>DRAM</h2>
<ul>
<li>Read access: {{.DRAM.ReadAccess}}</li>
<li>Write access: {{.DRAM.WriteAccess}}</li>
<li>Read delay avg: {{printf "%.3f" .DRAM.ReadDelayAvg}}</li>
<li>Write delay avg: {{printf "%.3f" .DRAM.WriteDelayAvg}}</li>
</ul>
{{end}}

<h2>System</h2>
<ul>
<li>IFetch: {{.System.IFetchAccess}} accesses, {{printf "%.3f" .System.IFetchAvgDelay}} avg delay</li>
<li>Load: {{.System.LoadAccess}} accesses, {{printf "%.3f" .System.LoadAvgDelay}} avg delay</li>
<li>Store: {{.System.StoreAccess}} accesses, {{printf "%.3f" .System.StoreAvgDelay}} avg delay</li>
</ul>
</html>`))
