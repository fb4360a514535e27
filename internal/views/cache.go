package views

import (
	"time"

	"github.com/existflow/taskdeck/internal/model"
)

// Source is the slice of the task repository the cache depends on.
type Source interface {
	All() []model.Task
	Revision() uint64
}

// Cache memoizes the window-filtered task slice the chart builders share.
// Entries are keyed by window and guarded by the repository revision:
// any mutation bumps the revision and empties the cache, so a stale entry
// is unreachable by construction.
type Cache struct {
	src     Source
	rev     uint64
	entries map[Window][]model.Task
}

// NewCache creates a cache over the task source.
func NewCache(src Source) *Cache {
	return &Cache{src: src, entries: map[Window][]model.Task{}}
}

// Window returns the tasks created within w, recomputing when the source
// has mutated since the last call.
func (c *Cache) Window(w Window, now time.Time) []model.Task {
	if rev := c.src.Revision(); rev != c.rev {
		c.entries = map[Window][]model.Task{}
		c.rev = rev
	}
	if cached, ok := c.entries[w]; ok {
		return cached
	}
	filtered := FilterWindow(c.src.All(), w, now)
	c.entries[w] = filtered
	return filtered
}
