package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/services"
	apperrors "maintenance-system/pkg/errors"
	"maintenance-system/pkg/utils"
)

type MaintenancePlanController struct {
	planService services.MaintenancePlanServiceInterface
	logger      *zap.Logger
}

func NewMaintenancePlanController(planService services.MaintenancePlanServiceInterface, logger *zap.Logger) *MaintenancePlanController {
	return &MaintenancePlanController{planService: planService, logger: logger}
}

func (c *MaintenancePlanController) GetPlans(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	res, total, err := c.planService.GetPlans(reqCtx, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Listado de planes obtenido", http.StatusOK, total)
}

// GetPlansByEquipment exige el parámetro ?equipment=<id>.
func (c *MaintenancePlanController) GetPlansByEquipment(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	equipmentParam := ctx.QueryParam("equipment")
	if equipmentParam == "" {
		return utils.ErrorResponse(ctx, apperrors.NewMissingParameterError("equipment"), c.logger)
	}
	equipmentID, err := strconv.ParseUint(equipmentParam, 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "El parámetro 'equipment' debe ser numérico", err, nil),
			c.logger,
		)
	}

	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	if filter.Filter == nil {
		filter.Filter = make(map[string]interface{})
	}
	filter.Filter["equipment"] = equipmentID

	res, total, err := c.planService.GetPlans(reqCtx, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Planes del equipo obtenidos", http.StatusOK, total)
}

// GetActivePlans es el atajo /maintenance-plans/active.
func (c *MaintenancePlanController) GetActivePlans(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	if filter.Filter == nil {
		filter.Filter = make(map[string]interface{})
	}
	filter.Filter["active"] = true

	res, total, err := c.planService.GetPlans(reqCtx, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Listado de planes activos obtenido", http.StatusOK, total)
}

// GetUpcomingDue lista los planes con mantención próxima. Acepta ?days=N
// (por defecto 7).
func (c *MaintenancePlanController) GetUpcomingDue(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	days := 7
	if raw := ctx.QueryParam("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return utils.ErrorResponse(ctx,
				apperrors.NewHttpError(http.StatusBadRequest, "El parámetro 'days' debe ser un entero positivo", err, nil),
				c.logger,
			)
		}
		days = parsed
	}

	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	res, total, err := c.planService.GetUpcomingDue(reqCtx, days, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Planes con mantención próxima obtenidos", http.StatusOK, total)
}

func (c *MaintenancePlanController) FindPlan(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "ID de plan inválido", err,
				map[string]interface{}{"param": ctx.Param("id")}),
			c.logger,
		)
	}

	res, err := c.planService.FindPlan(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Plan encontrado", http.StatusOK)
}

func (c *MaintenancePlanController) CreatePlan(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.CreateMaintenancePlanDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Cuerpo de la petición inválido", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.planService.CreatePlan(reqCtx, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Plan de mantención creado", http.StatusCreated)
}

func (c *MaintenancePlanController) UpdatePlan(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "ID de plan inválido", err, nil),
			c.logger,
		)
	}

	var payload dto.UpdateMaintenancePlanDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Cuerpo de la petición inválido", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.planService.UpdatePlan(reqCtx, id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Plan actualizado", http.StatusOK)
}

func (c *MaintenancePlanController) DeletePlan(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "ID de plan inválido", err, nil),
			c.logger,
		)
	}

	if err := c.planService.DeletePlan(reqCtx, id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Plan eliminado", http.StatusOK)
}
