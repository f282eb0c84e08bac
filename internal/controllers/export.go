package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"

	"handover-crm/internal/dto"
	"handover-crm/pkg/constants"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func queryFormat(ctx echo.Context) string {
	return strings.ToLower(strings.TrimSpace(ctx.QueryParam("format")))
}

func wantsXLSX(format string) bool {
	return format == constants.FormatXLSX
}

// buildWorkbook собирает книгу с одним листом: жирная шапка и строки данных.
func buildWorkbook(sheet string, headers []string, rows [][]interface{}) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return nil, err
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", style); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheet, "A", lastCol, 22); err != nil {
		return nil, err
	}

	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func respondWithXLSX(ctx echo.Context, name, sheet string, headers []string, rows [][]interface{}) error {
	f, err := buildWorkbook(sheet, headers, rows)
	if err != nil {
		return err
	}
	defer f.Close()

	fileName := fmt.Sprintf("%s_%s.xlsx", name, time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, xlsxContentType)
	ctx.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}

func deref[T any](p *T) (v T) {
	if p != nil {
		v = *p
	}
	return v
}

func yesNo(b bool) string {
	if b {
		return "Да"
	}
	return "Нет"
}

var handoverHeaders = []string{
	"Номер", "Клиент", "ИНН", "Техника", "Серийный номер", "Статус",
	"Ответственный", "Начало", "Окончание", "Срочно", "Просрочка (дн.)",
}

func handoverRows(items []dto.HandoverCardDTO) [][]interface{} {
	rows := make([][]interface{}, 0, len(items))
	for _, h := range items {
		var overdue interface{}
		if h.DaysOverdue != nil {
			overdue = *h.DaysOverdue
		}
		rows = append(rows, []interface{}{
			h.Number, h.Client.Name, h.Client.INN, h.Equipment, h.SerialNumber, h.Status.Label,
			deref(h.Assignee), h.StartDate, h.EndDate, yesNo(h.IsUrgent), overdue,
		})
	}
	return rows
}

var clientHeaders = []string{
	"Название", "ИНН", "КПП", "Адрес", "Контактное лицо", "Телефон", "Email",
	"Единиц техники", "Активных хэндоверов",
}

func clientRows(items []dto.ClientDTO) [][]interface{} {
	rows := make([][]interface{}, 0, len(items))
	for _, c := range items {
		rows = append(rows, []interface{}{
			c.Name, c.INN, c.KPP, c.Address, c.ContactPerson, c.Phone, c.Email,
			c.EquipmentCount, c.ActiveHandovers,
		})
	}
	return rows
}

var equipmentHeaders = []string{
	"Название", "Серийный номер", "Производитель", "Модель", "Владелец", "ИНН владельца",
	"Статус", "Последнее ТО", "Хэндоверов",
}

func equipmentRows(items []dto.EquipmentDTO) [][]interface{} {
	rows := make([][]interface{}, 0, len(items))
	for _, e := range items {
		rows = append(rows, []interface{}{
			e.Name, e.SerialNumber, e.Manufacturer, e.Model, e.Owner, e.OwnerINN,
			e.Status.Label, e.LastService, e.HandoversCount,
		})
	}
	return rows
}

var taskHeaders = []string{
	"Задача", "Описание", "Исполнитель", "Срок", "Приоритет", "Статус", "Хэндовер",
}

func taskRows(items []dto.TaskDTO) [][]interface{} {
	rows := make([][]interface{}, 0, len(items))
	for _, t := range items {
		rows = append(rows, []interface{}{
			t.Title, t.Description, t.Assignee, t.DueDate, t.Priority.Label, t.Status.Label,
			deref(t.HandoverNumber),
		})
	}
	return rows
}
