package cli

import (
	"fmt"
	"time"

	"github.com/existflow/taskdeck/internal/config"
	"github.com/existflow/taskdeck/internal/kv"
	"github.com/existflow/taskdeck/internal/logger"
	"github.com/existflow/taskdeck/internal/notes"
	"github.com/existflow/taskdeck/internal/settings"
	"github.com/existflow/taskdeck/internal/task"
	"github.com/existflow/taskdeck/internal/team"
	"github.com/existflow/taskdeck/internal/tracking"
)

// autoArchiveAge is how long a done task sits before the auto-archive
// sweep moves it to the archive column.
const autoArchiveAge = 7 * 24 * time.Hour

// appEnv bundles the store and the repositories built over it. Every
// command constructs one explicitly; nothing is looked up from ambient
// scope.
type appEnv struct {
	cfg      *config.Config
	store    *kv.Store
	tasks    *task.Repo
	team     *team.Repo
	notes    *notes.Repo
	settings *settings.Repo
	tracker  *tracking.Tracker
}

// openEnv opens the store and wires the repositories together.
func openEnv() (*appEnv, error) {
	cfg, err := config.Load()
	if err != nil {
		logger.Warn("failed to load config, using defaults", logger.F("error", err))
		cfg = config.DefaultConfig()
	}

	store, err := kv.Open(cfg.StorePath())
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	e := &appEnv{
		cfg:      cfg,
		store:    store,
		team:     team.New(store),
		tasks:    task.New(store),
		notes:    notes.New(store),
		settings: settings.New(store),
	}
	e.tasks.SetRoster(e.team)
	e.tracker = tracking.New(store, e.tasks)

	if e.settings.Load().AutoArchive {
		e.tasks.ArchiveStale(autoArchiveAge)
	}
	return e, nil
}

// Close releases the store.
func (e *appEnv) Close() {
	if err := e.store.Close(); err != nil {
		logger.Warn("failed to close store", logger.F("error", err))
	}
}
