// Package settings reads and writes the user preference flags. Each flag
// lives under its own store key.
package settings

import (
	"fmt"

	"github.com/existflow/taskdeck/internal/kv"
	"github.com/existflow/taskdeck/internal/logger"
	"github.com/existflow/taskdeck/internal/model"
)

// Repo reads and writes preference flags.
type Repo struct {
	store *kv.Store
}

// New creates a settings repository over the store.
func New(store *kv.Store) *Repo {
	return &Repo{store: store}
}

// Load returns the current settings, falling back to defaults for any
// flag that is missing or unreadable.
func (r *Repo) Load() model.Settings {
	s := model.Settings{DefaultView: model.ViewAll}
	r.store.Get(kv.KeyDarkMode, &s.DarkMode)
	r.store.Get(kv.KeyNotify, &s.Notifications)
	r.store.Get(kv.KeyArchive, &s.AutoArchive)

	var view string
	if r.store.Get(kv.KeyView, &view) && validView(view) {
		s.DefaultView = view
	}
	return s
}

func validView(v string) bool {
	return v == model.ViewAll || v == model.ViewActive || v == model.ViewArchived
}

// SetDarkMode persists the dark mode flag.
func (r *Repo) SetDarkMode(on bool) {
	r.set(kv.KeyDarkMode, on)
}

// SetNotifications persists the notifications flag.
func (r *Repo) SetNotifications(on bool) {
	r.set(kv.KeyNotify, on)
}

// SetAutoArchive persists the auto-archive flag.
func (r *Repo) SetAutoArchive(on bool) {
	r.set(kv.KeyArchive, on)
}

// SetDefaultView persists the default board view.
func (r *Repo) SetDefaultView(view string) error {
	if !validView(view) {
		return fmt.Errorf("invalid view %q (want all, active or archived)", view)
	}
	r.set(kv.KeyView, view)
	return nil
}

func (r *Repo) set(key string, v any) {
	if err := r.store.Set(key, v); err != nil {
		logger.Error("failed to persist setting", logger.F("key", key), logger.F("error", err))
	}
}
