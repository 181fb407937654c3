// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package web

// pageTmpl is the single browser page. Search results arrive as a
// pre-rendered fragment from the report package; everything else is
// escaped here.
const pageTmpl = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>hub-scout</title>
<style>
body { font-family: sans-serif; max-width: 860px; margin: 2em auto; }
.error { color: #b00020; border: 1px solid #b00020; padding: 10px; }
.notfound { color: #555; border: 1px dashed #999; padding: 10px; }
.report { background: #f5f5f5; padding: 10px; margin-top: 1em; }
pre.card { background: #f5f5f5; padding: 10px; overflow-x: auto; }
label { margin-right: 1em; }
</style>
</head>
<body>
<h2>Search the Hugging Face Hub</h2>
<form action="/search" method="get">
  <input type="text" name="q" value="{{.Query}}" size="40" placeholder="Search Query">
  {{range .Kinds}}<label><input type="radio" name="type" value="{{.}}"{{if eq . $.Kind}} checked{{end}}> {{.}}</label>{{end}}
  <button type="submit">Search</button>
</form>

{{if .Error}}
<div class="error">{{.Error}}</div>
{{end}}

{{if .NotFound}}
<div class="notfound">No {{.Kind.Singular}} found for &quot;{{.NotFound}}&quot;.</div>
{{end}}

{{if .Card}}
<h3>{{.Card.ID}}</h3>
<table>
  <tr><td>Kind</td><td>{{.Card.Kind.Singular}}</td></tr>
  <tr><td>Author</td><td>{{.Card.Author}}</td></tr>
  {{if .Card.Downloads}}<tr><td>Downloads</td><td>{{.Card.Downloads}}</td></tr>{{end}}
  <tr><td>Likes</td><td>{{.Card.Likes}}</td></tr>
  {{if .Card.LastModified}}<tr><td>Last modified</td><td>{{.Card.LastModified}}</td></tr>{{end}}
  {{if .Card.SHA}}<tr><td>Revision</td><td>{{.Card.SHA}}</td></tr>{{end}}
  {{if .Card.Tags}}<tr><td>Tags</td><td>{{range .Card.Tags}}{{.}} {{end}}</td></tr>{{end}}
</table>
{{if .CardText}}<pre class="card">{{.CardText}}</pre>{{end}}
{{end}}

{{if .Searched}}{{if not .Error}}
{{.Results}}
{{end}}{{end}}

{{if .Report}}
<div class="report">
  <strong>Aggregated Content</strong><br>
  Total items: {{.Report.TotalItems}}<br>
  Unique authors: {{.Report.UniqueAuthors}}<br>
  Total downloads: {{.Report.TotalDownloads}}<br>
  {{range $kind, $count := .Report.ItemTypes}}{{$kind}}: {{$count}}<br>{{end}}
</div>
{{end}}
</body>
</html>
`
