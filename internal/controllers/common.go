package controllers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "handover-crm/pkg/errors"
	"handover-crm/pkg/utils"
)

// serviceError переводит ошибку сервиса в HTTP-ответ: ErrNotFound -> 404, остальное -> 500.
func serviceError(ctx echo.Context, err error, notFoundMsg, failedMsg string, logger *zap.Logger) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusNotFound, notFoundMsg, err, map[string]interface{}{"id": ctx.Param("id")}),
			logger,
		)
	}
	return utils.ErrorResponse(ctx,
		apperrors.NewHttpError(http.StatusInternalServerError, failedMsg, err, nil),
		logger,
	)
}
