package persist

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"
)

func newTestSQLite(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "evocoffee.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	want := testDocument()
	if err := s.Write(ctx, want); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := s.Read(ctx)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestSQLiteStoreEmpty(t *testing.T) {
	s := newTestSQLite(t)
	doc, err := s.Read(context.Background())
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if doc.Inventory != nil || len(doc.Purchases) != 0 || len(doc.InventoryLog) != 0 {
		t.Errorf("fresh database should read as zero document, got %+v", doc)
	}
}

func TestSQLiteStoreWriteReplacesWholeDocument(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	if err := s.Write(ctx, testDocument()); err != nil {
		t.Fatalf("first Write: %v", err)
	}
	second := testDocument()
	second.Purchases = second.Purchases[:1]
	if err := s.Write(ctx, second); err != nil {
		t.Fatalf("second Write: %v", err)
	}

	got, err := s.Read(ctx)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(got.Purchases) != 1 {
		t.Errorf("purchases = %d, want 1: old rows survived the replace", len(got.Purchases))
	}
}
