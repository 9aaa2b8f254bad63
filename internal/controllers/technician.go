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

type TechnicianController struct {
	technicianService services.TechnicianServiceInterface
	logger            *zap.Logger
}

func NewTechnicianController(technicianService services.TechnicianServiceInterface, logger *zap.Logger) *TechnicianController {
	return &TechnicianController{technicianService: technicianService, logger: logger}
}

func (c *TechnicianController) GetTechnicians(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	res, total, err := c.technicianService.GetTechnicians(reqCtx, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Listado de técnicos obtenido", http.StatusOK, total)
}

// GetTechniciansByCompany exige el parámetro ?company=<id>.
func (c *TechnicianController) GetTechniciansByCompany(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	companyParam := ctx.QueryParam("company")
	if companyParam == "" {
		return utils.ErrorResponse(ctx, apperrors.NewMissingParameterError("company"), c.logger)
	}
	companyID, err := strconv.ParseUint(companyParam, 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "El parámetro 'company' debe ser numérico", err, nil),
			c.logger,
		)
	}

	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	res, total, err := c.technicianService.GetTechniciansByCompany(reqCtx, companyID, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Técnicos de la empresa obtenidos", http.StatusOK, total)
}

// GetTechniciansBySpecialty exige el parámetro ?specialty=<código>.
func (c *TechnicianController) GetTechniciansBySpecialty(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	specialty := ctx.QueryParam("specialty")
	if specialty == "" {
		return utils.ErrorResponse(ctx, apperrors.NewMissingParameterError("specialty"), c.logger)
	}

	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	res, total, err := c.technicianService.GetTechniciansBySpecialty(reqCtx, specialty, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Técnicos por especialidad obtenidos", http.StatusOK, total)
}

func (c *TechnicianController) GetAvailableTechnicians(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	res, total, err := c.technicianService.GetAvailableTechnicians(reqCtx, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Técnicos disponibles obtenidos", http.StatusOK, total)
}

func (c *TechnicianController) FindTechnician(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "ID de técnico inválido", err,
				map[string]interface{}{"param": ctx.Param("id")}),
			c.logger,
		)
	}

	res, err := c.technicianService.FindTechnician(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Técnico encontrado", http.StatusOK)
}

func (c *TechnicianController) CreateTechnician(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.CreateTechnicianDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Cuerpo de la petición inválido", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.technicianService.CreateTechnician(reqCtx, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Técnico creado", http.StatusCreated)
}

func (c *TechnicianController) UpdateTechnician(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "ID de técnico inválido", err, nil),
			c.logger,
		)
	}

	var payload dto.UpdateTechnicianDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Cuerpo de la petición inválido", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.technicianService.UpdateTechnician(reqCtx, id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Técnico actualizado", http.StatusOK)
}

func (c *TechnicianController) DeleteTechnician(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "ID de técnico inválido", err, nil),
			c.logger,
		)
	}

	if err := c.technicianService.DeleteTechnician(reqCtx, id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Técnico eliminado", http.StatusOK)
}

func (c *TechnicianController) parseAssignmentIDs(ctx echo.Context) (uint64, uint64, error) {
	technicianID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return 0, 0, apperrors.NewHttpError(http.StatusBadRequest, "ID de técnico inválido", err,
			map[string]interface{}{"param": ctx.Param("id")})
	}
	companyID, err := strconv.ParseUint(ctx.Param("companyId"), 10, 64)
	if err != nil {
		return 0, 0, apperrors.NewHttpError(http.StatusBadRequest, "ID de empresa inválido", err,
			map[string]interface{}{"param": ctx.Param("companyId")})
	}
	return technicianID, companyID, nil
}

// AssignCompany asocia el técnico a una empresa.
func (c *TechnicianController) AssignCompany(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	technicianID, companyID, err := c.parseAssignmentIDs(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.technicianService.AssignCompany(reqCtx, technicianID, companyID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Empresa asignada al técnico", http.StatusOK)
}

// UnassignCompany quita la asociación técnico-empresa.
func (c *TechnicianController) UnassignCompany(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	technicianID, companyID, err := c.parseAssignmentIDs(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.technicianService.UnassignCompany(reqCtx, technicianID, companyID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Empresa desasignada del técnico", http.StatusOK)
}
