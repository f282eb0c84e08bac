package entities

// Client - промышленный клиент сервисной компании.
// EquipmentCount и ActiveHandovers хранятся как есть и не пересчитываются.
type Client struct {
	ID              string `json:"id" yaml:"id" validate:"required"`
	Name            string `json:"name" yaml:"name" validate:"required"`
	INN             string `json:"inn" yaml:"inn" validate:"inn"`
	KPP             string `json:"kpp" yaml:"kpp" validate:"omitempty,kpp"`
	Address         string `json:"address" yaml:"address"`
	ContactPerson   string `json:"contact_person" yaml:"contact_person"`
	Phone           string `json:"phone" yaml:"phone"`
	Email           string `json:"email" yaml:"email" validate:"omitempty,email"`
	EquipmentCount  int    `json:"equipment_count" yaml:"equipment_count" validate:"gte=0"`
	ActiveHandovers int    `json:"active_handovers" yaml:"active_handovers" validate:"gte=0"`
}
