package constants

// StatusMeta описывает отображение значения перечисления на дашборде.
type StatusMeta struct {
	Code  string `json:"code"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// --- СТАТУСЫ ХЭНДОВЕРОВ (порядок = порядок колонок канбана) ---
const (
	HandoverStatusNew          = "new"
	HandoverStatusCoordination = "coordination"
	HandoverStatusProcurement  = "procurement"
	HandoverStatusWarehouse    = "warehouse"
	HandoverStatusInProgress   = "in-progress"
	HandoverStatusCompleted    = "completed"
)

var HandoverStatuses = []StatusMeta{
	{Code: HandoverStatusNew, Label: "Новый", Color: "blue"},
	{Code: HandoverStatusCoordination, Label: "Координация", Color: "purple"},
	{Code: HandoverStatusProcurement, Label: "Закупки", Color: "orange"},
	{Code: HandoverStatusWarehouse, Label: "Склад", Color: "yellow"},
	{Code: HandoverStatusInProgress, Label: "В работе", Color: "cyan"},
	{Code: HandoverStatusCompleted, Label: "Завершен", Color: "green"},
}

// --- СТАТУСЫ ТЕХНИКИ ---
const (
	EquipmentStatusActive      = "active"
	EquipmentStatusMaintenance = "maintenance"
	EquipmentStatusInactive    = "inactive"
)

var EquipmentStatuses = []StatusMeta{
	{Code: EquipmentStatusActive, Label: "Активна", Color: "green"},
	{Code: EquipmentStatusMaintenance, Label: "На обслуживании", Color: "orange"},
	{Code: EquipmentStatusInactive, Label: "Неактивна", Color: "gray"},
}

// --- ЗАДАЧИ ---
const (
	TaskStatusPending   = "pending"
	TaskStatusCompleted = "completed"
)

var TaskStatuses = []StatusMeta{
	{Code: TaskStatusPending, Label: "Активные", Color: "blue"},
	{Code: TaskStatusCompleted, Label: "Выполненные", Color: "green"},
}

const (
	TaskPriorityHigh   = "high"
	TaskPriorityMedium = "medium"
	TaskPriorityLow    = "low"
)

var TaskPriorities = []StatusMeta{
	{Code: TaskPriorityHigh, Label: "Высокий", Color: "red"},
	{Code: TaskPriorityMedium, Label: "Средний", Color: "yellow"},
	{Code: TaskPriorityLow, Label: "Низкий", Color: "green"},
}

// Codes возвращает коды перечисления в объявленном порядке.
func Codes(metas []StatusMeta) []string {
	codes := make([]string, len(metas))
	for i, m := range metas {
		codes[i] = m.Code
	}
	return codes
}

// Lookup ищет описание значения. Для неизвестного кода возвращается
// сам код в качестве подписи.
func Lookup(metas []StatusMeta, code string) StatusMeta {
	for _, m := range metas {
		if m.Code == code {
			return m
		}
	}
	return StatusMeta{Code: code, Label: code}
}

// IsValid сообщает, входит ли код в перечисление.
func IsValid(metas []StatusMeta, code string) bool {
	for _, m := range metas {
		if m.Code == code {
			return true
		}
	}
	return false
}

// ToggleTaskStatus возвращает противоположный статус задачи.
func ToggleTaskStatus(status string) string {
	if status == TaskStatusPending {
		return TaskStatusCompleted
	}
	return TaskStatusPending
}
