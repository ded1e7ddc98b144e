package store

import (
	"testing"
)

func TestRecordCatchFirst(t *testing.T) {
	db := testDB(t)

	res, err := db.RecordCatch("g1", "u1", "koi", 12.5)
	if err != nil {
		t.Fatalf("RecordCatch: %v", err)
	}
	if !res.IsNew || !res.IsRecord {
		t.Errorf("first catch: IsNew=%v IsRecord=%v, want true/true", res.IsNew, res.IsRecord)
	}
	if res.MaxLength != 12.5 {
		t.Errorf("MaxLength = %v, want 12.5", res.MaxLength)
	}
	if res.CatchCount != 1 {
		t.Errorf("CatchCount = %d, want 1", res.CatchCount)
	}
}

func TestRecordCatchLengths(t *testing.T) {
	db := testDB(t)

	if _, err := db.RecordCatch("g1", "u1", "koi", 5.0); err != nil {
		t.Fatalf("RecordCatch: %v", err)
	}

	// A shorter repeat catch reports the stored record, not its own length.
	res, err := db.RecordCatch("g1", "u1", "koi", 3.0)
	if err != nil {
		t.Fatalf("RecordCatch: %v", err)
	}
	if res.IsNew || res.IsRecord {
		t.Errorf("repeat catch: IsNew=%v IsRecord=%v, want false/false", res.IsNew, res.IsRecord)
	}
	if res.MaxLength != 5.0 {
		t.Errorf("MaxLength = %v, want 5.0", res.MaxLength)
	}
	if res.CatchCount != 2 {
		t.Errorf("CatchCount = %d, want 2", res.CatchCount)
	}

	// A longer one becomes the new record.
	res, err = db.RecordCatch("g1", "u1", "koi", 7.5)
	if err != nil {
		t.Fatalf("RecordCatch: %v", err)
	}
	if res.IsNew || !res.IsRecord {
		t.Errorf("record catch: IsNew=%v IsRecord=%v, want false/true", res.IsNew, res.IsRecord)
	}
	if res.MaxLength != 7.5 {
		t.Errorf("MaxLength = %v, want 7.5", res.MaxLength)
	}
	if res.CatchCount != 3 {
		t.Errorf("CatchCount = %d, want 3", res.CatchCount)
	}
}

func TestRecordCatchCounts(t *testing.T) {
	db := testDB(t)

	db.RecordCatch("g1", "u1", "koi", 5.0)
	db.RecordCatch("g1", "u1", "koi", 3.0)
	db.RecordCatch("g1", "u1", "perch", 4.0)

	records, err := db.Collection("g1", "u1")
	if err != nil {
		t.Fatalf("Collection: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("collection entries = %d, want 2", len(records))
	}
	if records[0].SpeciesID != "koi" || records[0].CatchCount != 2 {
		t.Errorf("koi record = %+v, want catch_count 2", records[0])
	}

	n, err := db.CollectionCount("g1", "u1")
	if err != nil {
		t.Fatalf("CollectionCount: %v", err)
	}
	if n != 2 {
		t.Errorf("CollectionCount = %d, want 2", n)
	}
}

func TestCollectionScopedToGroup(t *testing.T) {
	db := testDB(t)

	db.RecordCatch("g1", "u1", "koi", 5.0)
	db.RecordCatch("g2", "u1", "koi", 9.0)

	records, err := db.Collection("g1", "u1")
	if err != nil {
		t.Fatalf("Collection: %v", err)
	}
	if len(records) != 1 || records[0].MaxLength != 5.0 {
		t.Errorf("g1 collection = %+v, want single 5.0 koi", records)
	}
}
