package entities

// Equipment - единица техники. Владелец хранится копией имени и ИНН.
type Equipment struct {
	ID             string `json:"id" yaml:"id" validate:"required"`
	Name           string `json:"name" yaml:"name" validate:"required"`
	SerialNumber   string `json:"serial_number" yaml:"serial_number" validate:"required"`
	Manufacturer   string `json:"manufacturer" yaml:"manufacturer"`
	Model          string `json:"model" yaml:"model"`
	Owner          string `json:"owner" yaml:"owner"`
	OwnerINN       string `json:"owner_inn" yaml:"owner_inn" validate:"omitempty,inn"`
	Status         string `json:"status" yaml:"status" validate:"enum=equipment"`
	LastService    string `json:"last_service" yaml:"last_service" validate:"omitempty,iso_date"`
	HandoversCount int    `json:"handovers_count" yaml:"handovers_count" validate:"gte=0"`
}
