// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package normalize turns raw catalog search results into uniform,
// ranked records with derived hub links.
// See docs/ARCHITECTURE.md § Normalization.
package normalize

import (
	"fmt"

	"github.com/awacke1/hub-scout/pkg/types"
)

// hubBase is the canonical hub domain used for derived links. Link
// derivation is a pure function of (kind, id); it never touches the
// network.
const hubBase = "https://huggingface.co"

// MalformedRecordError reports a catalog item that cannot be normalized.
// Position is the item's 1-based rank in the input batch.
type MalformedRecordError struct {
	Position int
	Reason   string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed catalog item at position %d: %s", e.Position, e.Reason)
}

// Records normalizes an ordered batch of catalog items searched under
// kind. The output has the same length and order as the input, with
// 1-based indices, the author defaulted to types.UnknownAuthor when
// absent, and the canonical hub link derived from kind and id.
//
// An item with an empty id fails the whole batch with a
// MalformedRecordError; there is no partial output. An unknown kind
// fails with types.InvalidKindError.
func Records(items []types.CatalogItem, kind types.Kind) ([]types.NormalizedRecord, error) {
	if !kind.Valid() {
		return nil, &types.InvalidKindError{Kind: kind}
	}

	records := make([]types.NormalizedRecord, 0, len(items))
	for i, item := range items {
		if item.ID == "" {
			return nil, &MalformedRecordError{Position: i + 1, Reason: "missing id"}
		}

		author := item.Author
		if author == "" {
			author = types.UnknownAuthor
		}

		records = append(records, types.NormalizedRecord{
			Index:     i + 1,
			ID:        item.ID,
			Author:    author,
			Downloads: item.Downloads,
			Link:      Link(kind, item.ID),
			Kind:      kind,
		})
	}
	return records, nil
}

// Link derives the canonical hub page for an item. Models live at the
// hub root; datasets and spaces under their own path prefix:
//
//	Models:   https://huggingface.co/<id>
//	Datasets: https://huggingface.co/datasets/<id>
//	Spaces:   https://huggingface.co/spaces/<id>
func Link(kind types.Kind, id string) string {
	switch kind {
	case types.KindDatasets:
		return hubBase + "/datasets/" + id
	case types.KindSpaces:
		return hubBase + "/spaces/" + id
	default:
		return hubBase + "/" + id
	}
}
