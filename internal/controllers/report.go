package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/services"
	"maintenance-system/pkg/utils"
)

var reportHeaders = []string{
	"N° Orden", "Empresa", "Equipo", "Código equipo", "Técnico",
	"Estado", "Prioridad", "Agendada", "Inicio", "Término",
	"Horas trabajadas", "Costo real",
}

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

// GetWorkOrderReport responde el reporte de órdenes en JSON o, con
// ?format=xlsx, como planilla descargable.
func (c *ReportController) GetWorkOrderReport(ctx echo.Context) error {
	reqCtx, cancel := utils.ContextWithTimeout(ctx, 60)
	defer cancel()

	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	format := strings.ToLower(ctx.QueryParam("format"))

	rows, err := c.reportService.GetWorkOrderReport(reqCtx, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if format == "xlsx" {
		return c.respondWithXLSX(ctx, rows)
	}
	return utils.SuccessResponse(ctx, rows, "Reporte de órdenes generado", http.StatusOK)
}

func (c *ReportController) respondWithXLSX(ctx echo.Context, rows []dto.WorkOrderReportRow) error {
	f := excelize.NewFile()
	sheet := "Órdenes de trabajo"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &reportHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "L1", style)

	for i, item := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{
			item.OrderNumber, item.CompanyName, item.EquipmentName, item.EquipmentCode,
			item.Technician, item.Status, item.Priority,
			item.ScheduledAt, item.StartedAt, item.FinishedAt,
			item.WorkedHours, item.RealCost,
		}
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetColWidth(sheet, "A", "A", 16)
	f.SetColWidth(sheet, "B", "E", 25)
	f.SetColWidth(sheet, "H", "J", 18)

	fileName := fmt.Sprintf("ordenes_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}
