// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the hub-scout pipeline:
// the searchable kinds, raw catalog items as returned by the Hugging Face
// Hub API, normalized records, metadata cards, and the aggregate report.
// See docs/ARCHITECTURE.md § Data Structures.
package types

import (
	"fmt"
	"strings"
)

// Kind identifies one of the three searchable catalog categories.
type Kind string

const (
	KindModels   Kind = "Models"
	KindDatasets Kind = "Datasets"
	KindSpaces   Kind = "Spaces"
)

// Kinds lists all known kinds in display order.
var Kinds = []Kind{KindModels, KindDatasets, KindSpaces}

// InvalidKindError reports a kind value outside the three known categories.
// Unknown kinds are never defaulted; callers get the error instead.
type InvalidKindError struct {
	Kind Kind
}

func (e *InvalidKindError) Error() string {
	return fmt.Sprintf("invalid kind %q: must be one of Models, Datasets, Spaces", string(e.Kind))
}

// ParseKind converts user input into a Kind. It accepts the display form,
// the API path form, and the singular form, case-insensitively
// ("Models", "models", "model" all parse to KindModels).
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "model", "models":
		return KindModels, nil
	case "dataset", "datasets":
		return KindDatasets, nil
	case "space", "spaces":
		return KindSpaces, nil
	}
	return "", &InvalidKindError{Kind: Kind(s)}
}

// Valid reports whether k is one of the three known kinds.
func (k Kind) Valid() bool {
	return k == KindModels || k == KindDatasets || k == KindSpaces
}

// APIPath returns the Hub API path segment for the kind ("models",
// "datasets", "spaces").
func (k Kind) APIPath() string {
	return strings.ToLower(string(k))
}

// Singular returns the singular display form ("Model", "Dataset", "Space").
func (k Kind) Singular() string {
	return strings.TrimSuffix(string(k), "s")
}

// CatalogItem is one raw search result from the Hub catalog. The shape is
// kind-dependent: Downloads is only reported for models and datasets, and
// Author may be absent entirely.
type CatalogItem struct {
	// Kind is the category the item was searched under.
	Kind Kind `json:"kind" yaml:"kind"`

	// ID is the repository identifier, e.g. "acme/widget". Required.
	ID string `json:"id" yaml:"id"`

	// Author is the owning user or organization. Empty when the catalog
	// did not report one.
	Author string `json:"author,omitempty" yaml:"author,omitempty"`

	// Downloads is the cumulative download count. Nil when the catalog
	// does not track downloads for this kind (spaces).
	Downloads *int64 `json:"downloads,omitempty" yaml:"downloads,omitempty"`
}

// UnknownAuthor is the sentinel substituted for an absent author during
// normalization. It participates in the unique-author count like any
// other author value.
const UnknownAuthor = "Unknown"

// NormalizedRecord is a CatalogItem after normalization: ranked, with the
// author defaulted and the canonical hub link derived. Records are
// immutable request-scoped values; nothing persists them.
type NormalizedRecord struct {
	// Index is the 1-based rank of the record in its result set.
	Index int `json:"number" yaml:"number"`

	// ID is the repository identifier, copied from the catalog item.
	ID string `json:"id" yaml:"id"`

	// Author is the owning user or organization, or UnknownAuthor.
	Author string `json:"author" yaml:"author"`

	// Downloads is copied from the catalog item. Nil means the catalog
	// reported no count, which is distinct from a true zero.
	Downloads *int64 `json:"downloads,omitempty" yaml:"downloads,omitempty"`

	// Link is the canonical hub page for the item.
	Link string `json:"link" yaml:"link"`

	// Kind is the category the record belongs to.
	Kind Kind `json:"kind" yaml:"kind"`
}

// ReadmeLink returns the companion link to the item's README on the hub.
func (r NormalizedRecord) ReadmeLink() string {
	return r.Link + "/blob/main/README.md"
}

// DownloadCount returns the download count with absence treated as zero.
func (r NormalizedRecord) DownloadCount() int64 {
	if r.Downloads == nil {
		return 0
	}
	return *r.Downloads
}

// AggregateReport summarizes one full result set. Produced once per
// search by report.Aggregate.
type AggregateReport struct {
	// TotalItems is the length of the input sequence.
	TotalItems int `json:"total_items" yaml:"total_items"`

	// UniqueAuthors counts distinct author values, sentinel included.
	UniqueAuthors int `json:"unique_authors" yaml:"unique_authors"`

	// TotalDownloads sums downloads across all records, absent as zero.
	TotalDownloads int64 `json:"total_downloads" yaml:"total_downloads"`

	// ItemTypes maps each kind to its record count. All three kinds are
	// always present, zero-valued when unrepresented, so that
	// TotalItems == sum of the values.
	ItemTypes map[Kind]int `json:"item_types" yaml:"item_types"`
}

// MetadataCard is the descriptive record returned by a metadata lookup
// for a single catalog item.
type MetadataCard struct {
	ID           string   `json:"id" yaml:"id"`
	Kind         Kind     `json:"kind" yaml:"kind"`
	Author       string   `json:"author,omitempty" yaml:"author,omitempty"`
	SHA          string   `json:"sha,omitempty" yaml:"sha,omitempty"`
	LastModified string   `json:"last_modified,omitempty" yaml:"last_modified,omitempty"`
	Private      bool     `json:"private" yaml:"private"`
	Downloads    *int64   `json:"downloads,omitempty" yaml:"downloads,omitempty"`
	Likes        int      `json:"likes" yaml:"likes"`
	Tags         []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}
