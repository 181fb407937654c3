// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"errors"
	"reflect"
	"testing"

	"github.com/awacke1/hub-scout/pkg/types"
)

func int64p(v int64) *int64 { return &v }

func TestAggregateEmpty(t *testing.T) {
	rep, err := Aggregate(nil)
	if err != nil {
		t.Fatalf("Aggregate(nil) error: %v", err)
	}

	want := types.AggregateReport{
		TotalItems:     0,
		UniqueAuthors:  0,
		TotalDownloads: 0,
		ItemTypes: map[types.Kind]int{
			types.KindModels:   0,
			types.KindDatasets: 0,
			types.KindSpaces:   0,
		},
	}
	if !reflect.DeepEqual(rep, want) {
		t.Errorf("Aggregate(nil) = %+v, want %+v", rep, want)
	}
}

func TestAggregateScenario(t *testing.T) {
	records := []types.NormalizedRecord{
		{Index: 1, ID: "alice/a", Author: "alice", Downloads: int64p(10), Kind: types.KindModels},
		{Index: 2, ID: "alice/b", Author: "alice", Downloads: int64p(5), Kind: types.KindModels},
		{Index: 3, ID: "bob/c", Author: "bob", Kind: types.KindDatasets},
	}

	rep, err := Aggregate(records)
	if err != nil {
		t.Fatalf("Aggregate() error: %v", err)
	}

	if rep.TotalItems != 3 {
		t.Errorf("TotalItems = %d, want 3", rep.TotalItems)
	}
	if rep.UniqueAuthors != 2 {
		t.Errorf("UniqueAuthors = %d, want 2", rep.UniqueAuthors)
	}
	if rep.TotalDownloads != 15 {
		t.Errorf("TotalDownloads = %d, want 15", rep.TotalDownloads)
	}
	wantTypes := map[types.Kind]int{
		types.KindModels:   2,
		types.KindDatasets: 1,
		types.KindSpaces:   0,
	}
	if !reflect.DeepEqual(rep.ItemTypes, wantTypes) {
		t.Errorf("ItemTypes = %v, want %v", rep.ItemTypes, wantTypes)
	}
}

func TestAggregateKindTallySumsToTotal(t *testing.T) {
	records := []types.NormalizedRecord{
		{ID: "a/1", Author: "a", Kind: types.KindSpaces},
		{ID: "a/2", Author: "a", Kind: types.KindModels},
		{ID: "b/3", Author: "b", Kind: types.KindDatasets},
		{ID: "c/4", Author: "c", Kind: types.KindSpaces},
		{ID: "c/5", Author: "c", Kind: types.KindSpaces},
	}

	rep, err := Aggregate(records)
	if err != nil {
		t.Fatalf("Aggregate() error: %v", err)
	}

	sum := 0
	for _, n := range rep.ItemTypes {
		sum += n
	}
	if sum != rep.TotalItems {
		t.Errorf("sum(ItemTypes) = %d, want TotalItems = %d", sum, rep.TotalItems)
	}
	if rep.UniqueAuthors > rep.TotalItems {
		t.Errorf("UniqueAuthors = %d exceeds TotalItems = %d", rep.UniqueAuthors, rep.TotalItems)
	}
}

func TestAggregateTrustsAnnotatedKind(t *testing.T) {
	// A dataset whose id never mentions datasets must still land in the
	// Datasets bucket, because classification uses the record's kind tag.
	records := []types.NormalizedRecord{
		{ID: "acme/raw-text-dump", Author: "acme", Kind: types.KindDatasets},
	}

	rep, err := Aggregate(records)
	if err != nil {
		t.Fatalf("Aggregate() error: %v", err)
	}
	if rep.ItemTypes[types.KindDatasets] != 1 {
		t.Errorf("ItemTypes[Datasets] = %d, want 1", rep.ItemTypes[types.KindDatasets])
	}
	if rep.ItemTypes[types.KindSpaces] != 0 {
		t.Errorf("ItemTypes[Spaces] = %d, want 0", rep.ItemTypes[types.KindSpaces])
	}
}

func TestAggregateUnknownAuthorSentinel(t *testing.T) {
	records := []types.NormalizedRecord{
		{ID: "x/1", Author: types.UnknownAuthor, Kind: types.KindModels},
		{ID: "x/2", Author: types.UnknownAuthor, Kind: types.KindModels},
	}

	rep, err := Aggregate(records)
	if err != nil {
		t.Fatalf("Aggregate() error: %v", err)
	}
	if rep.UniqueAuthors != 1 {
		t.Errorf("UniqueAuthors = %d, want 1 (sentinel counts once)", rep.UniqueAuthors)
	}
}

func TestAggregateRejectsUnknownKind(t *testing.T) {
	records := []types.NormalizedRecord{
		{ID: "a/1", Author: "a", Kind: types.Kind("Notebooks")},
	}

	_, err := Aggregate(records)
	var ike *types.InvalidKindError
	if !errors.As(err, &ike) {
		t.Fatalf("err = %v, want InvalidKindError", err)
	}
}

func TestAggregateDeterministic(t *testing.T) {
	records := []types.NormalizedRecord{
		{ID: "a/1", Author: "a", Downloads: int64p(3), Kind: types.KindModels},
		{ID: "b/2", Author: "b", Kind: types.KindSpaces},
	}

	first, err := Aggregate(records)
	if err != nil {
		t.Fatalf("Aggregate() error: %v", err)
	}
	second, err := Aggregate(records)
	if err != nil {
		t.Fatalf("Aggregate() error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Aggregate not deterministic: %+v vs %+v", first, second)
	}
}
