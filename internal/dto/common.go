package dto

import "handover-crm/pkg/constants"

// StatusDTO - значение перечисления с подписью и цветом для фронтенда.
type StatusDTO = constants.StatusMeta

// NavigationItemDTO - пункт бокового меню.
type NavigationItemDTO struct {
	Path  string `json:"path"`
	Icon  string `json:"icon"`
	Label string `json:"label"`
	Count *int   `json:"count,omitempty"`
}
