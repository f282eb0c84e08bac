package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"handover-crm/internal/dto"
	"handover-crm/internal/services"
	"handover-crm/pkg/utils"
)

type TaskController struct {
	taskService services.TaskServiceInterface
	logger      *zap.Logger
}

func NewTaskController(service services.TaskServiceInterface, logger *zap.Logger) *TaskController {
	return &TaskController{
		taskService: service,
		logger:      logger,
	}
}

func (c *TaskController) GetTasks(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	query := dto.TaskQueryDTO{
		Search:   filter.Search,
		Priority: filter.Value("priority"),
		Status:   filter.Value("status"),
		Format:   queryFormat(ctx),
	}
	if err := ctx.Validate(&query); err != nil {
		c.logger.Warn("GetTasks: некорректные параметры запроса", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	reqCtx := ctx.Request().Context()

	if wantsXLSX(query.Format) {
		res, err := c.taskService.GetTasks(reqCtx, filter)
		if err != nil {
			c.logger.Error("GetTasks: ошибка при выгрузке задач", zap.Error(err))
			return serviceError(ctx, err, "Задачи не найдены", "Не удалось выгрузить задачи", c.logger)
		}
		return respondWithXLSX(ctx, "tasks", "Задачи", taskHeaders, taskRows(res))
	}

	res, err := c.taskService.GetTaskBoard(reqCtx, filter)
	if err != nil {
		c.logger.Error("GetTasks: ошибка при получении задач", zap.Error(err))
		return serviceError(ctx, err, "Задачи не найдены", "Не удалось получить задачи", c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Задачи успешно получены", http.StatusOK)
}

func (c *TaskController) FindTask(ctx echo.Context) error {
	res, err := c.taskService.FindTask(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		c.logger.Warn("FindTask: задача не найдена", zap.String("id", ctx.Param("id")), zap.Error(err))
		return serviceError(ctx, err, "Задача не найдена", "Не удалось найти задачу", c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Задача успешно найдена", http.StatusOK)
}

// ToggleTask переключает статус задачи. Неизвестный id ничего не меняет и даёт 404.
func (c *TaskController) ToggleTask(ctx echo.Context) error {
	id := ctx.Param("id")
	res, err := c.taskService.ToggleTask(ctx.Request().Context(), id)
	if err != nil {
		c.logger.Warn("ToggleTask: не удалось переключить статус", zap.String("id", id), zap.Error(err))
		return serviceError(ctx, err, "Задача не найдена", "Не удалось переключить статус задачи", c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Статус задачи успешно изменён", http.StatusOK)
}
