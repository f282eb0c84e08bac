package entities

import "time"

// HistoryEntry - запись вкладки "История" хэндовера.
// Seq - версия снимка задач после переключения, по ней упорядочен журнал.
type HistoryEntry struct {
	HandoverID string    `json:"handover_id"`
	Seq        uint64    `json:"seq"`
	TaskID     string    `json:"task_id"`
	TaskTitle  string    `json:"task_title"`
	OldStatus  string    `json:"old_status"`
	NewStatus  string    `json:"new_status"`
	CreatedAt  time.Time `json:"created_at"`
}
