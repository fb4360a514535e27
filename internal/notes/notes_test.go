package notes

import (
	"path/filepath"
	"testing"

	"github.com/existflow/taskdeck/internal/kv"
)

func openTestRepo(t *testing.T) (*Repo, *kv.Store) {
	t.Helper()
	store, err := kv.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return New(store), store
}

func TestCreateRequiresTitle(t *testing.T) {
	r, _ := openTestRepo(t)

	if _, err := r.Create("", "content", nil); err == nil {
		t.Error("expected error for missing title")
	}
	if len(r.All()) != 0 {
		t.Error("failed create must not write")
	}
}

func TestCreateCleansTags(t *testing.T) {
	r, _ := openTestRepo(t)

	n, err := r.Create("Meeting notes", "discussed roadmap", []string{" work ", "", "q2"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if len(n.Tags) != 2 || n.Tags[0] != "work" || n.Tags[1] != "q2" {
		t.Errorf("tags = %v, want [work q2]", n.Tags)
	}
	if n.CreatedAt.IsZero() || !n.LastModified.Equal(n.CreatedAt) {
		t.Errorf("timestamps: created=%v modified=%v", n.CreatedAt, n.LastModified)
	}
}

func TestUpdateBumpsLastModified(t *testing.T) {
	r, _ := openTestRepo(t)
	n, _ := r.Create("Title", "old", nil)

	if !r.Update(n.ID, "Title", "new", nil) {
		t.Fatal("Update returned false")
	}
	got, _ := r.Get(n.ID)
	if got.Content != "new" {
		t.Errorf("content = %q", got.Content)
	}
	if got.LastModified.Before(n.LastModified) {
		t.Error("lastModified went backwards")
	}
	if !got.CreatedAt.Equal(n.CreatedAt) {
		t.Error("createdAt must not change on update")
	}

	if r.Update("missing", "t", "c", nil) {
		t.Error("Update on unknown id returned true")
	}
}

func TestSearch(t *testing.T) {
	r, _ := openTestRepo(t)
	r.Create("Shopping list", "milk, eggs", []string{"home"})
	r.Create("Sprint plan", "ship the exporter", []string{"work"})

	if got := r.Search("MILK"); len(got) != 1 || got[0].Title != "Shopping list" {
		t.Errorf("content search: %v", got)
	}
	if got := r.Search("sprint"); len(got) != 1 {
		t.Errorf("title search: %v", got)
	}
	if got := r.Search("work"); len(got) != 1 {
		t.Errorf("tag search: %v", got)
	}
	if got := r.Search("nothing"); len(got) != 0 {
		t.Errorf("miss returned %v", got)
	}
}

func TestRemoveAndReload(t *testing.T) {
	r, store := openTestRepo(t)
	n, _ := r.Create("Keep", "c", nil)
	gone, _ := r.Create("Drop", "c", nil)

	if !r.Remove(gone.ID) {
		t.Fatal("Remove returned false")
	}
	if r.Remove(gone.ID) {
		t.Error("second Remove returned true")
	}

	reloaded := New(store)
	if _, ok := reloaded.Get(n.ID); !ok {
		t.Error("surviving note missing after reload")
	}
	if _, ok := reloaded.Get(gone.ID); ok {
		t.Error("removed note present after reload")
	}
}
