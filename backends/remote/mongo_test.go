package remote

import (
	"context"
	"os"
	"testing"

	"github.com/botirk38/collabfilter/types"
)

// TestMongoStore requires MongoDB on MONGODB_URI
func TestMongoStore(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping MongoDB tests in short mode")
	}

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		t.Skip("MONGODB_URI not set, skipping MongoDB tests")
	}

	store, err := NewMongoStore[string](types.StoreConfig{
		ConnectionString: uri,
		Options:          map[string]any{"collection": "item_similarities_test"},
	})
	if err != nil {
		t.Skipf("MongoDB not available: %v", err)
	}
	defer func() { _ = store.Close() }()

	ctx := context.Background()
	_ = store.Flush(ctx)
	defer func() { _ = store.Flush(ctx) }()

	matches := types.MatchList[string]{{Score: 0.5, ID: "Superman Returns"}}
	if err := store.Put(ctx, "Lady in the Water", matches); err != nil {
		t.Fatalf("Failed to put: %v", err)
	}
	// Upsert replaces
	if err := store.Put(ctx, "Lady in the Water", matches); err != nil {
		t.Fatalf("Failed to put twice: %v", err)
	}

	got, found, err := store.Get(ctx, "Lady in the Water")
	if err != nil || !found {
		t.Fatalf("Expected document, got found=%v err=%v", found, err)
	}
	if len(got) != 1 || got[0] != matches[0] {
		t.Errorf("Expected %v, got %v", matches, got)
	}

	if n, _ := store.Len(ctx); n != 1 {
		t.Errorf("Expected 1 document, got %d", n)
	}
	keys, _ := store.Keys(ctx)
	if len(keys) != 1 || keys[0] != "Lady in the Water" {
		t.Errorf("Expected one key, got %v", keys)
	}

	if err := store.Delete(ctx, "Lady in the Water"); err != nil {
		t.Fatalf("Failed to delete: %v", err)
	}
	if exists, _ := store.Contains(ctx, "Lady in the Water"); exists {
		t.Error("Expected document to be deleted")
	}
}

func TestNewMongoStoreRequiresURI(t *testing.T) {
	if _, err := NewMongoStore[string](types.StoreConfig{}); err == nil {
		t.Error("Expected error for empty connection string")
	}
}
