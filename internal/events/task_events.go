package events

import (
	"time"

	"handover-crm/internal/entities"
)

const TaskStatusToggledEventName = "task.status.toggled"

// TaskStatusToggledEvent - возникает после переключения статуса задачи.
// Version - версия снимка задач, в которой переключение стало видно.
type TaskStatusToggledEvent struct {
	Before    entities.Task
	After     entities.Task
	Version   uint64
	ToggledAt time.Time
}

// Name - реализуем интерфейс eventbus.Event
func (e TaskStatusToggledEvent) Name() string {
	return TaskStatusToggledEventName
}
