package entities

import "handover-crm/pkg/constants"

// Task - задача сотрудника, опционально привязанная к хэндоверу.
type Task struct {
	ID             string  `json:"id" yaml:"id" validate:"required"`
	Title          string  `json:"title" yaml:"title" validate:"required"`
	Description    string  `json:"description" yaml:"description"`
	Assignee       string  `json:"assignee" yaml:"assignee"`
	DueDate        string  `json:"due_date" yaml:"due_date" validate:"iso_date"`
	Priority       string  `json:"priority" yaml:"priority" validate:"enum=priority"`
	Status         string  `json:"status" yaml:"status" validate:"enum=task"`
	HandoverID     *string `json:"handover_id,omitempty" yaml:"handover_id,omitempty"`
	HandoverNumber *string `json:"handover_number,omitempty" yaml:"handover_number,omitempty"`
}

// Toggled возвращает копию задачи с противоположным статусом.
func (t Task) Toggled() Task {
	t.Status = constants.ToggleTaskStatus(t.Status)
	return t
}
