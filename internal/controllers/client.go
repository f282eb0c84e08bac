package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"handover-crm/internal/dto"
	"handover-crm/internal/services"
	"handover-crm/pkg/utils"
)

type ClientController struct {
	clientService services.ClientServiceInterface
	logger        *zap.Logger
}

func NewClientController(service services.ClientServiceInterface, logger *zap.Logger) *ClientController {
	return &ClientController{
		clientService: service,
		logger:        logger,
	}
}

func (c *ClientController) GetClients(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	query := dto.ClientQueryDTO{Search: filter.Search, Format: queryFormat(ctx)}
	if err := ctx.Validate(&query); err != nil {
		c.logger.Warn("GetClients: некорректные параметры запроса", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.clientService.GetClients(ctx.Request().Context(), filter)
	if err != nil {
		c.logger.Error("GetClients: ошибка при получении клиентов", zap.Error(err))
		return serviceError(ctx, err, "Клиенты не найдены", "Не удалось получить список клиентов", c.logger)
	}

	if wantsXLSX(query.Format) {
		return respondWithXLSX(ctx, "clients", "Клиенты", clientHeaders, clientRows(res))
	}
	return utils.SuccessResponse(ctx, res, "Список клиентов успешно получен", http.StatusOK)
}

func (c *ClientController) FindClient(ctx echo.Context) error {
	res, err := c.clientService.FindClient(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		c.logger.Warn("FindClient: клиент не найден", zap.String("id", ctx.Param("id")), zap.Error(err))
		return serviceError(ctx, err, "Клиент не найден", "Не удалось найти клиента", c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Клиент успешно найден", http.StatusOK)
}
