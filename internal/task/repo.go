// Package task implements the task repository: the in-memory task
// collection mirrored to the persistent store. Every mutation rewrites the
// whole collection under the tasks key.
package task

import (
	"fmt"
	"time"

	"github.com/existflow/taskdeck/internal/kv"
	"github.com/existflow/taskdeck/internal/logger"
	"github.com/existflow/taskdeck/internal/model"
	"github.com/google/uuid"
)

// ValidationError reports a missing required field on create. It is
// surfaced to the user and aborts the operation with no partial write.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("task %s is required", e.Field)
}

// Roster receives task-assignment events so member counters stay roughly
// in step with the board. Updates are best effort: the roster write and
// the task write are separate keys with no transaction between them.
type Roster interface {
	TaskAssigned(name string)
	TaskCompleted(name string)
}

// Repo owns the task collection. It is constructed once at startup and
// passed to every consumer; all access is single-goroutine.
type Repo struct {
	store  *kv.Store
	tasks  []model.Task
	rev    uint64
	roster Roster
}

// New creates a repository and loads the collection from the store.
func New(store *kv.Store) *Repo {
	r := &Repo{store: store}
	r.Load()
	return r
}

// SetRoster attaches the team roster for counter updates.
func (r *Repo) SetRoster(roster Roster) {
	r.roster = roster
}

// Load reads the task collection from the store. Missing or malformed
// data resets to an empty collection; Load never fails.
func (r *Repo) Load() {
	r.tasks = nil
	if !r.store.Get(kv.KeyTasks, &r.tasks) {
		r.tasks = []model.Task{}
	}
	r.rev++
}

// persist rewrites the whole collection. The error is returned for
// callers that report the persist step; most mutations log and swallow it.
func (r *Repo) persist() error {
	err := r.store.Set(kv.KeyTasks, r.tasks)
	if err != nil {
		logger.Error("failed to persist tasks", logger.F("error", err), logger.F("count", len(r.tasks)))
	}
	return err
}

// Revision returns a counter incremented by every mutation. Derived-view
// caches key on it to stay provably fresh.
func (r *Repo) Revision() uint64 {
	return r.rev
}

// All returns a copy of the collection in insertion order.
func (r *Repo) All() []model.Task {
	out := make([]model.Task, len(r.tasks))
	copy(out, r.tasks)
	return out
}

// Len returns the number of tasks.
func (r *Repo) Len() int {
	return len(r.tasks)
}

// Get returns the task with the given id.
func (r *Repo) Get(id string) (model.Task, bool) {
	if i := r.index(id); i >= 0 {
		return r.tasks[i], true
	}
	return model.Task{}, false
}

// Find resolves an id or unique id prefix, for CLI convenience.
func (r *Repo) Find(idOrPrefix string) (model.Task, bool) {
	if t, ok := r.Get(idOrPrefix); ok {
		return t, true
	}
	match := -1
	for i, t := range r.tasks {
		if len(idOrPrefix) >= 4 && len(t.ID) > len(idOrPrefix) && t.ID[:len(idOrPrefix)] == idOrPrefix {
			if match >= 0 {
				return model.Task{}, false // ambiguous
			}
			match = i
		}
	}
	if match < 0 {
		return model.Task{}, false
	}
	return r.tasks[match], true
}

func (r *Repo) index(id string) int {
	for i := range r.tasks {
		if r.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// CreateParams are the fields accepted by the full create form.
type CreateParams struct {
	Title       string
	Description string
	Tag         string
	Priority    model.Priority
	Assignee    string
	DueDate     time.Time
}

// Create validates, fills defaults, appends and persists a new task.
func (r *Repo) Create(p CreateParams) (model.Task, error) {
	if p.Title == "" {
		return model.Task{}, &ValidationError{Field: "title"}
	}
	if p.Description == "" {
		return model.Task{}, &ValidationError{Field: "description"}
	}

	t := model.Task{
		ID:          uuid.New().String(),
		Title:       p.Title,
		Description: p.Description,
		Tag:         p.Tag,
		Priority:    p.Priority,
		Assignee:    p.Assignee,
		DueDate:     p.DueDate,
		Status:      model.StatusReady,
		CreatedAt:   time.Now(),
	}
	if t.Tag == "" {
		t.Tag = "general"
	}
	if !t.Priority.Valid() {
		t.Priority = model.PriorityMedium
	}
	if t.Assignee == "" {
		t.Assignee = model.DefaultAssignee
	}

	if r.roster != nil && t.Assignee != model.DefaultAssignee {
		r.roster.TaskAssigned(t.Assignee)
	}

	r.tasks = append(r.tasks, t)
	r.rev++
	if err := r.persist(); err != nil {
		logger.Warn("task created in memory but not persisted", logger.F("id", t.ID))
	}
	logger.Info("task created", logger.F("id", t.ID), logger.F("title", t.Title))
	return t, nil
}

// QuickAddOpts override the quick-add defaults. Zero values keep them.
type QuickAddOpts struct {
	Status   model.Status
	DueDate  time.Time
	Tag      string
	Priority model.Priority
}

// QuickAdd creates a task with the quick-entry defaults: description
// "Quick task", tag general, medium priority, unassigned, due today,
// landing in the ready column.
func (r *Repo) QuickAdd(title string, opts QuickAddOpts) (model.Task, error) {
	if title == "" {
		return model.Task{}, &ValidationError{Field: "title"}
	}

	p := CreateParams{
		Title:       title,
		Description: "Quick task",
		Tag:         opts.Tag,
		Priority:    opts.Priority,
		DueDate:     opts.DueDate,
	}
	if p.DueDate.IsZero() {
		p.DueDate = time.Now()
	}

	t, err := r.Create(p)
	if err != nil {
		return model.Task{}, err
	}
	if opts.Status.Valid() && opts.Status != model.StatusReady {
		r.SetStatus(t.ID, opts.Status)
		t, _ = r.Get(t.ID)
	}
	return t, nil
}

// SetStatus moves a task to a new column. Unknown ids are a silent no-op
// (ok is false). The in-memory move always succeeds once the id resolves;
// the returned error reports only the persist step.
func (r *Repo) SetStatus(id string, status model.Status) (ok bool, err error) {
	if !status.Valid() {
		return false, fmt.Errorf("invalid status %q", status)
	}
	i := r.index(id)
	if i < 0 {
		return false, nil
	}

	t := &r.tasks[i]
	prev := t.Status
	t.Status = status

	if status == model.StatusArchived && t.ArchivedDate == nil {
		now := time.Now()
		t.ArchivedDate = &now
	}
	if status == model.StatusDone && prev != model.StatusDone &&
		r.roster != nil && t.Assignee != model.DefaultAssignee {
		r.roster.TaskCompleted(t.Assignee)
	}

	r.rev++
	logger.Debug("task moved", logger.F("id", id), logger.F("from", prev), logger.F("to", status))
	return true, r.persist()
}

// Patch holds optional field updates; nil fields are left unchanged.
// ID, status and createdAt are not patchable. No cross-field consistency
// is enforced.
type Patch struct {
	Title       *string
	Description *string
	Tag         *string
	Priority    *model.Priority
	Assignee    *string
	DueDate     *time.Time
}

// Update merges patch into the task. Returns false on unknown id.
func (r *Repo) Update(id string, patch Patch) bool {
	i := r.index(id)
	if i < 0 {
		return false
	}

	t := &r.tasks[i]
	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.Tag != nil {
		t.Tag = *patch.Tag
	}
	if patch.Priority != nil {
		t.Priority = *patch.Priority
	}
	if patch.Assignee != nil {
		t.Assignee = *patch.Assignee
	}
	if patch.DueDate != nil {
		t.DueDate = *patch.DueDate
	}

	r.rev++
	r.persist()
	return true
}

// Remove deletes a task by id; unknown ids are a silent no-op.
func (r *Repo) Remove(id string) bool {
	i := r.index(id)
	if i < 0 {
		return false
	}
	r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
	r.rev++
	r.persist()
	logger.Info("task deleted", logger.F("id", id))
	return true
}

// AppendComment appends a comment to the task, creating the list on first
// use. Empty text is ignored. Returns false on unknown id.
func (r *Repo) AppendComment(id, text string) bool {
	i := r.index(id)
	if i < 0 {
		return false
	}
	if text == "" {
		return true
	}
	r.tasks[i].Comments = append(r.tasks[i].Comments, text)
	r.rev++
	r.persist()
	return true
}

// AddTimeSpent accumulates tracked time on a task. Called by the time
// tracker only.
func (r *Repo) AddTimeSpent(id string, d time.Duration) bool {
	i := r.index(id)
	if i < 0 {
		return false
	}
	r.tasks[i].TimeSpent += d
	r.rev++
	r.persist()
	return true
}

// ArchiveStale moves done tasks older than maxAge to the archive. Used by
// the auto-archive preference; returns the number of tasks archived.
func (r *Repo) ArchiveStale(maxAge time.Duration) int {
	cutoff := time.Now().Add(-maxAge)
	archived := 0
	for i := range r.tasks {
		t := &r.tasks[i]
		if t.Status != model.StatusDone || t.CreatedAt.After(cutoff) {
			continue
		}
		t.Status = model.StatusArchived
		if t.ArchivedDate == nil {
			now := time.Now()
			t.ArchivedDate = &now
		}
		archived++
	}
	if archived > 0 {
		r.rev++
		r.persist()
		logger.Info("auto-archived stale tasks", logger.F("count", archived))
	}
	return archived
}
