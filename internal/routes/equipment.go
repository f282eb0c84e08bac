package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"handover-crm/internal/controllers"
	"handover-crm/internal/services"
)

func runEquipmentRouter(group *echo.Group, equipmentService services.EquipmentServiceInterface, logger *zap.Logger) {
	equipmentCtrl := controllers.NewEquipmentController(equipmentService, logger)

	group.GET("/equipment", equipmentCtrl.GetEquipment)
	group.GET("/equipment/:id", equipmentCtrl.FindEquipment)
}
