package main

import (
	"path/filepath"
	"testing"
)

func newTestDB(t *testing.T) *Database {
	t.Helper()
	db, err := NewDatabase(filepath.Join(t.TempDir(), "favorites_test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestAddFavoriteIdempotent(t *testing.T) {
	db := newTestDB(t)

	if err := db.AddFavorite("U1", "2330"); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	if err := db.AddFavorite("U1", "2330"); err != nil {
		t.Fatalf("second add failed: %v", err)
	}

	codes, err := db.GetFavorites("U1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(codes) != 1 || codes[0] != "2330" {
		t.Fatalf("expected exactly [2330], got %v", codes)
	}
}

func TestGetFavoritesInsertionOrder(t *testing.T) {
	db := newTestDB(t)

	for _, code := range []string{"2330", "0050", "2317"} {
		if err := db.AddFavorite("U1", code); err != nil {
			t.Fatalf("add %s failed: %v", code, err)
		}
	}
	// Another user's favorites must not leak in
	if err := db.AddFavorite("U2", "1101"); err != nil {
		t.Fatalf("add for U2 failed: %v", err)
	}

	codes, err := db.GetFavorites("U1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	want := []string{"2330", "0050", "2317"}
	if len(codes) != len(want) {
		t.Fatalf("expected %v, got %v", want, codes)
	}
	for i := range want {
		if codes[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, codes)
		}
	}
}

func TestGetFavoritesEmpty(t *testing.T) {
	db := newTestDB(t)

	codes, err := db.GetFavorites("nobody")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(codes) != 0 {
		t.Fatalf("expected empty list, got %v", codes)
	}
}

func TestRemoveFavorite(t *testing.T) {
	db := newTestDB(t)

	if err := db.AddFavorite("U1", "2330"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := db.RemoveFavorite("U1", "2330"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}

	codes, err := db.GetFavorites("U1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(codes) != 0 {
		t.Fatalf("expected empty list after remove, got %v", codes)
	}

	// Removing an absent pair must not error
	if err := db.RemoveFavorite("U1", "2330"); err != nil {
		t.Fatalf("remove of absent pair errored: %v", err)
	}
}

func TestAllFavoriteCodesDistinct(t *testing.T) {
	db := newTestDB(t)

	if err := db.AddFavorite("U1", "2330"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := db.AddFavorite("U2", "2330"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := db.AddFavorite("U2", "0050"); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	codes, err := db.AllFavoriteCodes()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(codes) != 2 {
		t.Fatalf("expected 2 distinct codes, got %v", codes)
	}
	if codes[0] != "0050" || codes[1] != "2330" {
		t.Fatalf("expected [0050 2330], got %v", codes)
	}
}
