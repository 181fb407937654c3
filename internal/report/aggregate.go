// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report computes aggregate statistics over a normalized result
// set and renders records and reports for display.
// See docs/ARCHITECTURE.md § Aggregation and Presentation.
package report

import (
	"github.com/awacke1/hub-scout/pkg/types"
)

// Aggregate reduces an ordered sequence of normalized records to one
// AggregateReport in a single pass. Distinct authors are counted as a
// set (the "Unknown" sentinel is one value like any other), absent
// download counts contribute zero, and the per-kind tally uses each
// record's annotated kind, never a guess from the id.
//
// An empty sequence is not an error: it yields the all-zero report with
// all three kind buckets present. A record with a kind outside the
// three known categories fails with types.InvalidKindError rather than
// being dumped into a default bucket.
func Aggregate(records []types.NormalizedRecord) (types.AggregateReport, error) {
	rep := types.AggregateReport{
		TotalItems: len(records),
		ItemTypes: map[types.Kind]int{
			types.KindModels:   0,
			types.KindDatasets: 0,
			types.KindSpaces:   0,
		},
	}

	authors := make(map[string]struct{}, len(records))
	for _, r := range records {
		if !r.Kind.Valid() {
			return types.AggregateReport{}, &types.InvalidKindError{Kind: r.Kind}
		}

		author := r.Author
		if author == "" {
			author = types.UnknownAuthor
		}
		authors[author] = struct{}{}

		rep.TotalDownloads += r.DownloadCount()
		rep.ItemTypes[r.Kind]++
	}
	rep.UniqueAuthors = len(authors)

	return rep, nil
}
