package settings

import (
	"path/filepath"
	"testing"

	"github.com/existflow/taskdeck/internal/kv"
	"github.com/existflow/taskdeck/internal/model"
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

func TestLoadDefaults(t *testing.T) {
	r, _ := openTestRepo(t)

	s := r.Load()
	if s.DarkMode || s.Notifications || s.AutoArchive {
		t.Errorf("flags should default to off: %+v", s)
	}
	if s.DefaultView != model.ViewAll {
		t.Errorf("defaultView = %q, want %q", s.DefaultView, model.ViewAll)
	}
}

func TestSetAndReload(t *testing.T) {
	r, store := openTestRepo(t)

	r.SetDarkMode(true)
	r.SetNotifications(true)
	if err := r.SetDefaultView(model.ViewActive); err != nil {
		t.Fatalf("SetDefaultView failed: %v", err)
	}

	s := New(store).Load()
	if !s.DarkMode || !s.Notifications || s.AutoArchive {
		t.Errorf("flags = %+v", s)
	}
	if s.DefaultView != model.ViewActive {
		t.Errorf("defaultView = %q", s.DefaultView)
	}
}

func TestSetDefaultViewRejectsUnknown(t *testing.T) {
	r, _ := openTestRepo(t)

	if err := r.SetDefaultView("sideways"); err == nil {
		t.Error("expected error for unknown view")
	}
	if got := r.Load().DefaultView; got != model.ViewAll {
		t.Errorf("rejected set leaked through: %q", got)
	}
}

func TestLoadIgnoresMalformedFlag(t *testing.T) {
	r, store := openTestRepo(t)

	store.Set(kv.KeyView, 42)
	store.Set(kv.KeyDarkMode, "definitely")

	s := r.Load()
	if s.DefaultView != model.ViewAll || s.DarkMode {
		t.Errorf("malformed flags should fall back to defaults: %+v", s)
	}
}
