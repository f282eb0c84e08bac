package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"handover-crm/internal/controllers"
	"handover-crm/internal/services"
)

func runTaskRouter(group *echo.Group, taskService services.TaskServiceInterface, logger *zap.Logger) {
	taskCtrl := controllers.NewTaskController(taskService, logger)

	group.GET("/tasks", taskCtrl.GetTasks)
	group.GET("/tasks/:id", taskCtrl.FindTask)
	group.PATCH("/tasks/:id/toggle", taskCtrl.ToggleTask)
}
