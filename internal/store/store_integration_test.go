//go:build integration

package store

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"

	"github.com/jobscout/jobscout/internal/types"
)

func getTestStore(t *testing.T) *Store {
	t.Helper()
	databaseURL := os.Getenv("TEST_DATABASE_URL")
	if databaseURL == "" {
		t.Skip("TEST_DATABASE_URL must be set to run this test")
	}

	store, err := Connect(context.Background(), databaseURL)
	if err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	if err := store.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("EnsureSchema failed: %v", err)
	}
	return store
}

func TestIntegration_SavedJobs_CRUD(t *testing.T) {
	store := getTestStore(t)
	defer store.Close()
	ctx := context.Background()

	userID := uuid.New()
	item := types.ResultItem{
		ID:      "jsearch:" + uuid.NewString(),
		Title:   "Go Developer",
		Company: "Test Corp",
	}
	defer func() {
		_ = store.DeleteJob(ctx, userID, item.ID)
	}()

	t.Run("save job", func(t *testing.T) {
		saved, err := store.SaveJob(ctx, userID, item)
		if err != nil {
			t.Fatalf("SaveJob failed: %v", err)
		}
		if saved.ID == uuid.Nil {
			t.Error("saved ID should not be nil")
		}
		if saved.Applied {
			t.Error("new bookmark should not be applied")
		}
	})

	t.Run("save is idempotent", func(t *testing.T) {
		first, err := store.SaveJob(ctx, userID, item)
		if err != nil {
			t.Fatalf("SaveJob failed: %v", err)
		}
		second, err := store.SaveJob(ctx, userID, item)
		if err != nil {
			t.Fatalf("SaveJob failed: %v", err)
		}
		if first.ID != second.ID {
			t.Errorf("second save created a new record: %s != %s", first.ID, second.ID)
		}
	})

	t.Run("mark applied", func(t *testing.T) {
		saved, err := store.MarkApplied(ctx, userID, item)
		if err != nil {
			t.Fatalf("MarkApplied failed: %v", err)
		}
		if !saved.Applied {
			t.Error("job should be applied")
		}
		if saved.AppliedAt == nil {
			t.Error("AppliedAt should be set")
		}
	})

	t.Run("list saved and applied", func(t *testing.T) {
		saved, err := store.ListSaved(ctx, userID)
		if err != nil {
			t.Fatalf("ListSaved failed: %v", err)
		}
		if len(saved) != 1 {
			t.Fatalf("ListSaved returned %d jobs, want 1", len(saved))
		}
		if saved[0].Posting.Title != item.Title {
			t.Errorf("posting snapshot Title = %q, want %q", saved[0].Posting.Title, item.Title)
		}

		applied, err := store.ListApplied(ctx, userID)
		if err != nil {
			t.Fatalf("ListApplied failed: %v", err)
		}
		if len(applied) != 1 {
			t.Fatalf("ListApplied returned %d jobs, want 1", len(applied))
		}
	})

	t.Run("delete", func(t *testing.T) {
		if err := store.DeleteJob(ctx, userID, item.ID); err != nil {
			t.Fatalf("DeleteJob failed: %v", err)
		}
		got, err := store.GetSaved(ctx, userID, item.ID)
		if err != nil {
			t.Fatalf("GetSaved failed: %v", err)
		}
		if got != nil {
			t.Error("bookmark should be gone")
		}
	})
}
