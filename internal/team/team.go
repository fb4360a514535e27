// Package team is the roster repository. Member names are unique; the
// task repository bumps the per-member counters through the Roster
// interface as tasks are assigned and completed.
package team

import (
	"fmt"

	"github.com/existflow/taskdeck/internal/kv"
	"github.com/existflow/taskdeck/internal/logger"
	"github.com/existflow/taskdeck/internal/model"
)

// Repo owns the team roster.
type Repo struct {
	store   *kv.Store
	members []model.TeamMember
}

// New creates a repository and loads the roster from the store.
func New(store *kv.Store) *Repo {
	r := &Repo{store: store}
	r.Load()
	return r
}

// Load reads the roster key, resetting to empty on missing or bad data.
func (r *Repo) Load() {
	r.members = nil
	if !r.store.Get(kv.KeyTeam, &r.members) {
		r.members = []model.TeamMember{}
	}
}

func (r *Repo) persist() {
	if err := r.store.Set(kv.KeyTeam, r.members); err != nil {
		logger.Error("failed to persist team", logger.F("error", err))
	}
}

// All returns a copy of the roster in insertion order.
func (r *Repo) All() []model.TeamMember {
	out := make([]model.TeamMember, len(r.members))
	copy(out, r.members)
	return out
}

// Get returns the member with the given name.
func (r *Repo) Get(name string) (model.TeamMember, bool) {
	if i := r.index(name); i >= 0 {
		return r.members[i], true
	}
	return model.TeamMember{}, false
}

func (r *Repo) index(name string) int {
	for i := range r.members {
		if r.members[i].Name == name {
			return i
		}
	}
	return -1
}

// Add appends a new member. Name and avatar are required and names must
// be unique.
func (r *Repo) Add(name, avatar string) (model.TeamMember, error) {
	if name == "" {
		return model.TeamMember{}, fmt.Errorf("team member name is required")
	}
	if avatar == "" {
		return model.TeamMember{}, fmt.Errorf("avatar URL is required")
	}
	if r.index(name) >= 0 {
		return model.TeamMember{}, fmt.Errorf("team member %q already exists", name)
	}

	m := model.TeamMember{
		Name:   name,
		Avatar: avatar,
		Role:   "Team Member",
	}
	r.members = append(r.members, m)
	r.persist()
	return m, nil
}

// Remove deletes a member by name; unknown names are a silent no-op.
// Tasks assigned to the member keep their dangling assignee name.
func (r *Repo) Remove(name string) bool {
	i := r.index(name)
	if i < 0 {
		return false
	}
	r.members = append(r.members[:i], r.members[i+1:]...)
	r.persist()
	return true
}

// TaskAssigned increments the member's assigned counter. Unknown names
// are ignored: assignees are not a foreign key.
func (r *Repo) TaskAssigned(name string) {
	if i := r.index(name); i >= 0 {
		r.members[i].TasksAssigned++
		r.persist()
	}
}

// TaskCompleted increments the member's completed counter.
func (r *Repo) TaskCompleted(name string) {
	if i := r.index(name); i >= 0 {
		r.members[i].TasksCompleted++
		r.persist()
	}
}
