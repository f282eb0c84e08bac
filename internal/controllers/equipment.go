package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"handover-crm/internal/dto"
	"handover-crm/internal/services"
	"handover-crm/pkg/utils"
)

type EquipmentController struct {
	equipmentService services.EquipmentServiceInterface
	logger           *zap.Logger
}

func NewEquipmentController(
	service services.EquipmentServiceInterface,
	logger *zap.Logger,
) *EquipmentController {
	return &EquipmentController{
		equipmentService: service,
		logger:           logger,
	}
}

func (c *EquipmentController) GetEquipment(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	query := dto.EquipmentQueryDTO{
		Search: filter.Search,
		Status: filter.Value("status"),
		Format: queryFormat(ctx),
	}
	if err := ctx.Validate(&query); err != nil {
		c.logger.Warn("GetEquipment: некорректные параметры запроса", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.equipmentService.GetEquipment(ctx.Request().Context(), filter)
	if err != nil {
		c.logger.Error("GetEquipment: ошибка при получении списка техники", zap.Error(err))
		return serviceError(ctx, err, "Техника не найдена", "Не удалось получить список техники", c.logger)
	}

	if wantsXLSX(query.Format) {
		return respondWithXLSX(ctx, "equipment", "Техника", equipmentHeaders, equipmentRows(res))
	}
	return utils.SuccessResponse(ctx, res, "Список техники успешно получен", http.StatusOK)
}

func (c *EquipmentController) FindEquipment(ctx echo.Context) error {
	res, err := c.equipmentService.FindEquipment(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		c.logger.Warn("FindEquipment: техника не найдена", zap.String("id", ctx.Param("id")), zap.Error(err))
		return serviceError(ctx, err, "Техника не найдена", "Не удалось найти технику", c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Техника успешно найдена", http.StatusOK)
}
