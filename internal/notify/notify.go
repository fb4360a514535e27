// Package notify polls the task repository for upcoming due dates and
// fires a caller-supplied notification func. Pull only: there is no
// subscribe mechanism on the repository.
package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/existflow/taskdeck/internal/logger"
	"github.com/existflow/taskdeck/internal/model"
)

// Default poll cadences.
const (
	DueSoonInterval  = 5 * time.Minute
	DueTodayInterval = time.Hour
	DueSoonWindow    = time.Hour
)

// Source is the slice of the task repository the poller reads.
type Source interface {
	DueWithin(now time.Time, d time.Duration) []model.Task
	DueOn(day time.Time) []model.Task
}

// SendFunc delivers one notification.
type SendFunc func(title, message string)

// Notifier runs the two due-date checks on independent tickers.
type Notifier struct {
	tasks Source
	send  SendFunc
}

// New creates a notifier over the task source.
func New(tasks Source, send SendFunc) *Notifier {
	return &Notifier{tasks: tasks, send: send}
}

// Run polls until ctx is cancelled: a due-soon check every 5 minutes and
// a due-today check every hour. Checks never overlap; both run on the
// caller's goroutine.
func (n *Notifier) Run(ctx context.Context) {
	soon := time.NewTicker(DueSoonInterval)
	defer soon.Stop()
	today := time.NewTicker(DueTodayInterval)
	defer today.Stop()

	logger.Info("due-date poller started")
	for {
		select {
		case <-ctx.Done():
			logger.Info("due-date poller stopped")
			return
		case now := <-soon.C:
			n.CheckDueSoon(now)
		case now := <-today.C:
			n.CheckDueToday(now)
		}
	}
}

// CheckDueSoon notifies for open tasks due within the next hour and
// returns them.
func (n *Notifier) CheckDueSoon(now time.Time) []model.Task {
	due := n.tasks.DueWithin(now, DueSoonWindow)
	for _, t := range due {
		n.send("Task Due Soon", fmt.Sprintf("%s is due in 1 hour", t.Title))
	}
	return due
}

// CheckDueToday notifies for open tasks due on the current calendar day
// and returns them.
func (n *Notifier) CheckDueToday(now time.Time) []model.Task {
	due := n.tasks.DueOn(now)
	for _, t := range due {
		n.send("Task Due Today", fmt.Sprintf("%s is due today!", t.Title))
	}
	return due
}
