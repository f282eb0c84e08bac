package dto

type ClientQueryDTO struct {
	Search string `json:"search"`
	Format string `json:"format" validate:"omitempty,oneof=json xlsx"`
}

type ClientDTO struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	AvatarLetter    string `json:"avatar_letter"`
	INN             string `json:"inn"`
	KPP             string `json:"kpp"`
	Address         string `json:"address"`
	ContactPerson   string `json:"contact_person"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	EquipmentCount  int    `json:"equipment_count"`
	ActiveHandovers int    `json:"active_handovers"`
}
