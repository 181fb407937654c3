// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"html/template"
	"io"

	"github.com/awacke1/hub-scout/pkg/types"
)

// fragmentTmpl renders one record as a display fragment: numbered title,
// the primary hub link, the README companion link, and an
// author/downloads caption. The downloads part of the caption is
// omitted when the catalog reported no count.
var fragmentTmpl = template.Must(template.New("fragment").Parse(`<div style="margin-bottom: 10px;">
    <strong>{{.Index}}. {{.ID}}</strong><br>
    <a href="{{.Link}}" target="_blank" style="color: #4a90e2; text-decoration: none;">View {{.Kind.Singular}}</a> |
    <a href="{{.ReadmeLink}}" target="_blank" style="color: #4a90e2; text-decoration: none;">View README</a><br>
    <small>Author: {{.Author}}{{if .Downloads}}, Downloads: {{.Downloads}}{{end}}</small>
</div>
`))

// WriteHTML writes records as an HTML fragment list inside a scrollable
// container, or the no-results paragraph when the sequence is empty.
func WriteHTML(records []types.NormalizedRecord, w io.Writer) error {
	if len(records) == 0 {
		_, err := io.WriteString(w, "<p>No results found.</p>\n")
		return err
	}

	if _, err := io.WriteString(w, "<div style='max-height: 400px; overflow-y: auto;'>\n"); err != nil {
		return err
	}
	for _, r := range records {
		if err := fragmentTmpl.Execute(w, r); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</div>\n")
	return err
}
