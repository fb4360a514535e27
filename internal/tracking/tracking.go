// Package tracking implements per-task time tracking. An active session
// is a single timestamp under tracking_<taskId>; stopping adds the elapsed
// time to the task and removes the marker.
package tracking

import (
	"time"

	"github.com/existflow/taskdeck/internal/kv"
	"github.com/existflow/taskdeck/internal/logger"
	"github.com/existflow/taskdeck/internal/task"
)

// Tracker starts and stops tracking sessions.
type Tracker struct {
	store *kv.Store
	tasks *task.Repo
}

// New creates a tracker over the store and task repository.
func New(store *kv.Store, tasks *task.Repo) *Tracker {
	return &Tracker{store: store, tasks: tasks}
}

// Start begins a tracking session for the task. A second Start for the
// same task restarts the session.
func (t *Tracker) Start(id string) error {
	return t.store.Set(kv.TrackingPrefix+id, time.Now().Format(time.RFC3339Nano))
}

// Active returns the session start time if the task is being tracked.
func (t *Tracker) Active(id string) (time.Time, bool) {
	var raw string
	if !t.store.Get(kv.TrackingPrefix+id, &raw) {
		return time.Time{}, false
	}
	start, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		logger.Warn("bad tracking marker", logger.F("id", id), logger.F("value", raw))
		return time.Time{}, false
	}
	return start, true
}

// Stop ends the session, accumulates the elapsed time on the task and
// returns the duration. Without an active session it returns zero.
func (t *Tracker) Stop(id string) time.Duration {
	start, ok := t.Active(id)
	if !ok {
		return 0
	}
	elapsed := time.Since(start)
	t.tasks.AddTimeSpent(id, elapsed)
	if err := t.store.Delete(kv.TrackingPrefix + id); err != nil {
		logger.Error("failed to clear tracking marker", logger.F("id", id), logger.F("error", err))
	}
	return elapsed
}

// ActiveIDs lists task ids with an open tracking session.
func (t *Tracker) ActiveIDs() []string {
	keys, err := t.store.Keys(kv.TrackingPrefix)
	if err != nil {
		logger.Error("failed to list tracking markers", logger.F("error", err))
		return nil
	}
	ids := make([]string, 0, len(keys))
	for _, k := range keys {
		ids = append(ids, k[len(kv.TrackingPrefix):])
	}
	return ids
}
