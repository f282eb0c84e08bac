package dto

type TaskQueryDTO struct {
	Search   string `json:"search"`
	Priority string `json:"priority" validate:"enum_filter=priority"`
	Status   string `json:"status" validate:"enum_filter=task"`
	Format   string `json:"format" validate:"omitempty,oneof=json xlsx"`
}

type TaskDTO struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Assignee         string    `json:"assignee"`
	AssigneeInitials string    `json:"assignee_initials"`
	DueDate          string    `json:"due_date"`
	Priority         StatusDTO `json:"priority"`
	Status           StatusDTO `json:"status"`
	Completed        bool      `json:"completed"`
	HandoverID       *string   `json:"handover_id,omitempty"`
	HandoverNumber   *string   `json:"handover_number,omitempty"`
}

type TaskGroupDTO struct {
	Status StatusDTO `json:"status"`
	Count  int       `json:"count"`
	Items  []TaskDTO `json:"items"`
}

// TaskBoardDTO - задачи, разложенные на активные и выполненные.
type TaskBoardDTO struct {
	Total  int            `json:"total"`
	Groups []TaskGroupDTO `json:"groups"`
}
