package dto

import "time"

type HandoverQueryDTO struct {
	Search string `json:"search"`
	Status string `json:"status" validate:"enum_filter=handover"`
	View   string `json:"view" validate:"omitempty,oneof=kanban list"`
	Format string `json:"format" validate:"omitempty,oneof=json xlsx"`
}

type HandoverClientDTO struct {
	Name string `json:"name"`
	INN  string `json:"inn"`
}

// HandoverCardDTO - карточка хэндовера на доске и в списке.
type HandoverCardDTO struct {
	ID               string            `json:"id"`
	Number           string            `json:"number"`
	Client           HandoverClientDTO `json:"client"`
	Equipment        string            `json:"equipment"`
	SerialNumber     string            `json:"serial_number"`
	Status           StatusDTO         `json:"status"`
	Assignee         *string           `json:"assignee,omitempty"`
	AssigneeInitials string            `json:"assignee_initials,omitempty"`
	StartDate        string            `json:"start_date"`
	EndDate          string            `json:"end_date"`
	IsUrgent         bool              `json:"is_urgent"`
	DaysOverdue      *int              `json:"days_overdue,omitempty"`
}

type KanbanColumnDTO struct {
	Status StatusDTO         `json:"status"`
	Count  int               `json:"count"`
	Items  []HandoverCardDTO `json:"items"`
}

type HandoverBoardDTO struct {
	View    string            `json:"view"`
	Total   int               `json:"total"`
	Columns []KanbanColumnDTO `json:"columns"`
}

type HandoverListDTO struct {
	View  string            `json:"view"`
	Total int               `json:"total"`
	Items []HandoverCardDTO `json:"items"`
}

type HistoryEntryDTO struct {
	TaskID    string    `json:"task_id"`
	TaskTitle string    `json:"task_title"`
	OldStatus StatusDTO `json:"old_status"`
	NewStatus StatusDTO `json:"new_status"`
	CreatedAt time.Time `json:"created_at"`
}

// HandoverDetailDTO - содержимое модального окна хэндовера.
// Client и EquipmentDetails находятся поиском по ИНН и серийному номеру
// и могут отсутствовать.
type HandoverDetailDTO struct {
	Handover         HandoverCardDTO   `json:"handover"`
	Client           *ClientDTO        `json:"client,omitempty"`
	EquipmentDetails *EquipmentDTO     `json:"equipment_details,omitempty"`
	Tasks            []TaskDTO         `json:"tasks"`
	History          []HistoryEntryDTO `json:"history"`
}
