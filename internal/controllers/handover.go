package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"handover-crm/internal/dto"
	"handover-crm/internal/services"
	"handover-crm/pkg/constants"
	"handover-crm/pkg/utils"
)

type HandoverController struct {
	handoverService services.HandoverServiceInterface
	logger          *zap.Logger
}

func NewHandoverController(service services.HandoverServiceInterface, logger *zap.Logger) *HandoverController {
	return &HandoverController{
		handoverService: service,
		logger:          logger,
	}
}

// GetHandovers отдаёт канбан (по умолчанию) или плоский список.
// format=xlsx всегда выгружает плоский список.
func (c *HandoverController) GetHandovers(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	query := dto.HandoverQueryDTO{
		Search: filter.Search,
		Status: filter.Value("status"),
		View:   ctx.QueryParam("view"),
		Format: queryFormat(ctx),
	}
	if err := ctx.Validate(&query); err != nil {
		c.logger.Warn("GetHandovers: некорректные параметры запроса", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	reqCtx := ctx.Request().Context()

	if wantsXLSX(query.Format) || query.View == constants.ViewList {
		res, err := c.handoverService.GetHandoverList(reqCtx, filter)
		if err != nil {
			c.logger.Error("GetHandovers: ошибка при получении списка", zap.Error(err))
			return serviceError(ctx, err, "Хэндоверы не найдены", "Не удалось получить список хэндоверов", c.logger)
		}
		if wantsXLSX(query.Format) {
			return respondWithXLSX(ctx, "handovers", "Хэндоверы", handoverHeaders, handoverRows(res.Items))
		}
		return utils.SuccessResponse(ctx, res, "Список хэндоверов успешно получен", http.StatusOK)
	}

	res, err := c.handoverService.GetHandoverBoard(reqCtx, filter)
	if err != nil {
		c.logger.Error("GetHandovers: ошибка при построении доски", zap.Error(err))
		return serviceError(ctx, err, "Хэндоверы не найдены", "Не удалось получить доску хэндоверов", c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Доска хэндоверов успешно получена", http.StatusOK)
}

func (c *HandoverController) FindHandover(ctx echo.Context) error {
	res, err := c.handoverService.FindHandover(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		c.logger.Warn("FindHandover: ошибка при получении хэндовера", zap.String("id", ctx.Param("id")), zap.Error(err))
		return serviceError(ctx, err, "Хэндовер не найден", "Не удалось получить хэндовер", c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Хэндовер успешно найден", http.StatusOK)
}

func (c *HandoverController) GetHistory(ctx echo.Context) error {
	res, err := c.handoverService.GetHistory(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		c.logger.Warn("GetHistory: ошибка при получении истории", zap.String("id", ctx.Param("id")), zap.Error(err))
		return serviceError(ctx, err, "Хэндовер не найден", "Не удалось получить историю хэндовера", c.logger)
	}
	return utils.SuccessResponse(ctx, res, "История хэндовера успешно получена", http.StatusOK)
}

func (c *HandoverController) GetStatuses(ctx echo.Context) error {
	res := c.handoverService.GetStatuses(ctx.Request().Context())
	return utils.SuccessResponse(ctx, res, "Статусы хэндоверов успешно получены", http.StatusOK)
}
