package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"handover-crm/internal/controllers"
	"handover-crm/internal/services"
)

func runNavigationRouter(group *echo.Group, navigationService services.NavigationServiceInterface, logger *zap.Logger) {
	navigationCtrl := controllers.NewNavigationController(navigationService, logger)

	group.GET("/navigation", navigationCtrl.GetNavigation)
}
