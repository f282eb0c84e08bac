package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"handover-crm/internal/controllers"
	"handover-crm/internal/services"
)

func runClientRouter(group *echo.Group, clientService services.ClientServiceInterface, logger *zap.Logger) {
	clientCtrl := controllers.NewClientController(clientService, logger)

	group.GET("/clients", clientCtrl.GetClients)
	group.GET("/clients/:id", clientCtrl.FindClient)
}
