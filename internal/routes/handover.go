package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"handover-crm/internal/controllers"
	"handover-crm/internal/services"
)

func runHandoverRouter(group *echo.Group, handoverService services.HandoverServiceInterface, logger *zap.Logger) {
	handoverCtrl := controllers.NewHandoverController(handoverService, logger)

	group.GET("/handovers", handoverCtrl.GetHandovers)
	group.GET("/handovers/:id", handoverCtrl.FindHandover)
	group.GET("/handovers/:id/history", handoverCtrl.GetHistory)
	group.GET("/handover-statuses", handoverCtrl.GetStatuses)
}
