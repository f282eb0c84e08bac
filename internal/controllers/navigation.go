package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"handover-crm/internal/services"
	"handover-crm/pkg/utils"
)

type NavigationController struct {
	navigationService services.NavigationServiceInterface
	logger            *zap.Logger
}

func NewNavigationController(service services.NavigationServiceInterface, logger *zap.Logger) *NavigationController {
	return &NavigationController{navigationService: service, logger: logger}
}

func (c *NavigationController) GetNavigation(ctx echo.Context) error {
	res := c.navigationService.GetNavigation(ctx.Request().Context())
	return utils.SuccessResponse(ctx, res, "Меню успешно получено", http.StatusOK)
}
