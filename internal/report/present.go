// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/awacke1/hub-scout/pkg/types"
)

// WriteTable writes records as a human-readable ranked table to w.
func WriteTable(records []types.NormalizedRecord, w io.Writer) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-40s  %-20s  %-10s  %s\n",
		"Rank", "ID", "Author", "Downloads", "Link")
	fmt.Fprintln(w, strings.Repeat("-", 110))

	for _, r := range records {
		id := r.ID
		if len(id) > 40 {
			id = id[:37] + "..."
		}
		author := r.Author
		if len(author) > 20 {
			author = author[:17] + "..."
		}
		downloads := "-"
		if r.Downloads != nil {
			downloads = fmt.Sprintf("%d", *r.Downloads)
		}
		fmt.Fprintf(w, "%-4d  %-40s  %-20s  %-10s  %s\n",
			r.Index, id, author, downloads, r.Link)
	}

	fmt.Fprintf(w, "\n%d results\n", len(records))
}

// WriteJSON writes records as indented JSON to w.
func WriteJSON(records []types.NormalizedRecord, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

// WriteYAML writes records as YAML to w.
func WriteYAML(records []types.NormalizedRecord, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(records)
}

// WriteReportTable writes the aggregate report as a key-value block to w.
func WriteReportTable(rep types.AggregateReport, w io.Writer) {
	fmt.Fprintf(w, "Total items:     %d\n", rep.TotalItems)
	fmt.Fprintf(w, "Unique authors:  %d\n", rep.UniqueAuthors)
	fmt.Fprintf(w, "Total downloads: %d\n", rep.TotalDownloads)
	for _, kind := range types.Kinds {
		fmt.Fprintf(w, "  %-9s %d\n", string(kind)+":", rep.ItemTypes[kind])
	}
}

// WriteReportJSON writes the aggregate report as indented JSON to w.
func WriteReportJSON(rep types.AggregateReport, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

// WriteReportYAML writes the aggregate report as YAML to w.
func WriteReportYAML(rep types.AggregateReport, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(rep)
}
