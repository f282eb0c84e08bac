package entities

// HandoverClient - копия реквизитов клиента внутри хэндовера.
type HandoverClient struct {
	Name string `json:"name" yaml:"name" validate:"required"`
	INN  string `json:"inn" yaml:"inn" validate:"inn"`
}

// Handover - работа по передаче или обслуживанию техники клиента.
type Handover struct {
	ID           string         `json:"id" yaml:"id" validate:"required"`
	Number       string         `json:"number" yaml:"number" validate:"required"`
	Client       HandoverClient `json:"client" yaml:"client"`
	Equipment    string         `json:"equipment" yaml:"equipment"`
	SerialNumber string         `json:"serial_number" yaml:"serial_number"`
	Status       string         `json:"status" yaml:"status" validate:"enum=handover"`
	Assignee     *string        `json:"assignee,omitempty" yaml:"assignee,omitempty"`
	StartDate    string         `json:"start_date" yaml:"start_date" validate:"iso_date"`
	EndDate      string         `json:"end_date" yaml:"end_date" validate:"iso_date"`
	IsUrgent     bool           `json:"is_urgent" yaml:"is_urgent"`
	DaysOverdue  *int           `json:"days_overdue,omitempty" yaml:"days_overdue,omitempty" validate:"omitempty,gte=0"`
}
