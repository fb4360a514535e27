// Package notes is the notes repository: same list-plus-persistence shape
// as the task repository, with no cross-entity invariants.
package notes

import (
	"strings"
	"time"

	"github.com/existflow/taskdeck/internal/kv"
	"github.com/existflow/taskdeck/internal/logger"
	"github.com/existflow/taskdeck/internal/model"
	"github.com/google/uuid"
)

// Repo owns the note collection.
type Repo struct {
	store *kv.Store
	notes []model.Note
}

// New creates a repository and loads the collection from the store.
func New(store *kv.Store) *Repo {
	r := &Repo{store: store}
	r.Load()
	return r
}

// Load reads the notes key, resetting to empty on missing or bad data.
func (r *Repo) Load() {
	r.notes = nil
	if !r.store.Get(kv.KeyNotes, &r.notes) {
		r.notes = []model.Note{}
	}
}

func (r *Repo) persist() {
	if err := r.store.Set(kv.KeyNotes, r.notes); err != nil {
		logger.Error("failed to persist notes", logger.F("error", err))
	}
}

// All returns a copy of the collection in insertion order.
func (r *Repo) All() []model.Note {
	out := make([]model.Note, len(r.notes))
	copy(out, r.notes)
	return out
}

// Get returns the note with the given id.
func (r *Repo) Get(id string) (model.Note, bool) {
	if i := r.index(id); i >= 0 {
		return r.notes[i], true
	}
	return model.Note{}, false
}

func (r *Repo) index(id string) int {
	for i := range r.notes {
		if r.notes[i].ID == id {
			return i
		}
	}
	return -1
}

// Create appends and persists a new note. Title is required.
func (r *Repo) Create(title, content string, tags []string) (model.Note, error) {
	if title == "" {
		return model.Note{}, &ValidationError{Field: "title"}
	}
	now := time.Now()
	n := model.Note{
		ID:           uuid.New().String(),
		Title:        title,
		Content:      content,
		Tags:         cleanTags(tags),
		CreatedAt:    now,
		LastModified: now,
	}
	r.notes = append(r.notes, n)
	r.persist()
	return n, nil
}

// Update replaces a note's content and bumps lastModified. Returns false
// on unknown id.
func (r *Repo) Update(id, title, content string, tags []string) bool {
	i := r.index(id)
	if i < 0 {
		return false
	}
	n := &r.notes[i]
	n.Title = title
	n.Content = content
	n.Tags = cleanTags(tags)
	n.LastModified = time.Now()
	r.persist()
	return true
}

// Remove deletes a note by id; unknown ids are a silent no-op.
func (r *Repo) Remove(id string) bool {
	i := r.index(id)
	if i < 0 {
		return false
	}
	r.notes = append(r.notes[:i], r.notes[i+1:]...)
	r.persist()
	return true
}

// Search returns notes whose title, content or any tag contains q,
// case-insensitively.
func (r *Repo) Search(q string) []model.Note {
	q = strings.ToLower(q)
	out := []model.Note{}
	for _, n := range r.notes {
		if strings.Contains(strings.ToLower(n.Title), q) ||
			strings.Contains(strings.ToLower(n.Content), q) ||
			tagMatch(n.Tags, q) {
			out = append(out, n)
		}
	}
	return out
}

func tagMatch(tags []string, q string) bool {
	for _, t := range tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}

// cleanTags trims whitespace and drops empty entries.
func cleanTags(tags []string) []string {
	out := []string{}
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// ValidationError reports a missing required field.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return "note " + e.Field + " is required"
}
