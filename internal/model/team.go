package model

// TeamMember is a roster entry. Name is the unique key; task counters are
// maintained by the task repository as tasks are assigned and completed.
type TeamMember struct {
	Name           string `json:"name"`
	Avatar         string `json:"avatar"`
	Role           string `json:"role"`
	TasksCompleted int    `json:"tasksCompleted"`
	TasksAssigned  int    `json:"tasksAssigned"`
}
