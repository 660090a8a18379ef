package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.SaveToken(LocalOwner, "abc"); err != nil {
		t.Fatalf("SaveToken() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	token, err := store.Token(LocalOwner)
	if err != nil {
		t.Fatalf("Token() failed: %v", err)
	}
	if token != "abc" {
		t.Errorf("Token() = %q, expected abc", token)
	}
}

func TestTokenLifecycle(t *testing.T) {
	store := openTestStore(t)

	token, err := store.Token(LocalOwner)
	if err != nil {
		t.Fatalf("Token() failed: %v", err)
	}
	if token != "" {
		t.Errorf("Token() = %q before login, expected empty", token)
	}

	if err := store.SaveToken(LocalOwner, "first"); err != nil {
		t.Fatalf("SaveToken() failed: %v", err)
	}
	if err := store.SaveToken(LocalOwner, "second"); err != nil {
		t.Fatalf("SaveToken() failed: %v", err)
	}
	if err := store.SaveToken("alice", "alice-token"); err != nil {
		t.Fatalf("SaveToken() failed: %v", err)
	}

	if token, _ := store.Token(LocalOwner); token != "second" {
		t.Errorf("Token() = %q, expected the latest token", token)
	}
	if token, _ := store.Token("alice"); token != "alice-token" {
		t.Errorf("owners should not share tokens, got %q", token)
	}

	if err := store.ClearToken(LocalOwner); err != nil {
		t.Fatalf("ClearToken() failed: %v", err)
	}
	if token, _ := store.Token(LocalOwner); token != "" {
		t.Errorf("Token() = %q after clear, expected empty", token)
	}
	if token, _ := store.Token("alice"); token != "alice-token" {
		t.Error("ClearToken should not affect other owners")
	}
}

func TestRecentViewsOrder(t *testing.T) {
	store := openTestStore(t)

	for _, v := range []struct{ id, name string }{
		{"p1", "Mug"},
		{"p2", "Lamp"},
		{"p3", "Desk"},
		{"p1", "Mug v2"}, // re-view bumps p1
	} {
		if err := store.RecordView(LocalOwner, v.id, v.name); err != nil {
			t.Fatalf("RecordView() failed: %v", err)
		}
	}
	if err := store.RecordView("bob", "p9", "Chair"); err != nil {
		t.Fatalf("RecordView() failed: %v", err)
	}

	views, err := store.RecentViews(LocalOwner, 10)
	if err != nil {
		t.Fatalf("RecentViews() failed: %v", err)
	}

	want := []string{"p1", "p3", "p2"}
	if len(views) != len(want) {
		t.Fatalf("Expected %d views, got %d", len(want), len(views))
	}
	for i, id := range want {
		if views[i].ProductID != id {
			t.Errorf("views[%d] = %s, expected %s", i, views[i].ProductID, id)
		}
	}
	if views[0].Name != "Mug v2" {
		t.Errorf("re-view should update the name, got %q", views[0].Name)
	}

	limited, err := store.RecentViews(LocalOwner, 2)
	if err != nil {
		t.Fatalf("RecentViews() failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("Expected 2 views with limit, got %d", len(limited))
	}
}

func TestClearViews(t *testing.T) {
	store := openTestStore(t)

	if err := store.RecordView(LocalOwner, "p1", "Mug"); err != nil {
		t.Fatalf("RecordView() failed: %v", err)
	}
	if err := store.ClearViews(LocalOwner); err != nil {
		t.Fatalf("ClearViews() failed: %v", err)
	}

	views, err := store.RecentViews(LocalOwner, 10)
	if err != nil {
		t.Fatalf("RecentViews() failed: %v", err)
	}
	if len(views) != 0 {
		t.Errorf("Expected no views after clear, got %d", len(views))
	}
}
