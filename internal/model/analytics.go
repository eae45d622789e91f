package model

// DashboardSummary aggregates the current store state for the dashboard
// screen. The per-status maps always contain a key for every known
// status, zero-filled when no entity carries it.
type DashboardSummary struct {
	TotalProjects      int                   `json:"total_projects"`
	ProjectsByStatus   map[ProjectStatus]int `json:"projects_by_status"`
	TotalTasks         int                   `json:"total_tasks"`
	TasksByStatus      map[TaskStatus]int    `json:"tasks_by_status"`
	OverdueTasks       int                   `json:"overdue_tasks"`
	TaskCompletionRate int                   `json:"task_completion_rate"`
}
