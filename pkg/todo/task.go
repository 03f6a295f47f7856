// Package todo defines the task record and the fixed set of weekday labels
// shared by the API client, the TUI and the CLI.
package todo

// Task is a single to-do item as the remote API returns it.
type Task struct {
	ID        string `json:"_id"`
	Text      string `json:"text"`
	Day       Day    `json:"day"`
	Completed bool   `json:"completed"`
}

// NewTask is the create payload for a task on the given day.
type NewTask struct {
	Text      string `json:"text"`
	Day       Day    `json:"day"`
	Completed bool   `json:"completed"`
}

// Completion is the update payload that marks a task done.
type Completion struct {
	Completed bool `json:"completed"`
}
