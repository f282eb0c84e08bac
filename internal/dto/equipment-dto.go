package dto

type EquipmentQueryDTO struct {
	Search string `json:"search"`
	Status string `json:"status" validate:"enum_filter=equipment"`
	Format string `json:"format" validate:"omitempty,oneof=json xlsx"`
}

type EquipmentDTO struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	SerialNumber   string    `json:"serial_number"`
	Manufacturer   string    `json:"manufacturer"`
	Model          string    `json:"model"`
	Owner          string    `json:"owner"`
	OwnerINN       string    `json:"owner_inn"`
	Status         StatusDTO `json:"status"`
	LastService    string    `json:"last_service"`
	HandoversCount int       `json:"handovers_count"`
}
