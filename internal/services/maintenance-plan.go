package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/entities"
	"maintenance-system/internal/repositories"
	apperrors "maintenance-system/pkg/errors"
	"maintenance-system/pkg/types"
)

type MaintenancePlanServiceInterface interface {
	GetPlans(ctx context.Context, filter types.Filter) ([]*entities.MaintenancePlan, uint64, error)
	GetUpcomingDue(ctx context.Context, days int, filter types.Filter) ([]*entities.MaintenancePlan, uint64, error)
	FindPlan(ctx context.Context, id uint64) (*entities.MaintenancePlan, error)
	CreatePlan(ctx context.Context, payload dto.CreateMaintenancePlanDTO) (*entities.MaintenancePlan, error)
	UpdatePlan(ctx context.Context, id uint64, payload dto.UpdateMaintenancePlanDTO) (*entities.MaintenancePlan, error)
	DeletePlan(ctx context.Context, id uint64) error
}

type maintenancePlanService struct {
	planRepository      repositories.MaintenancePlanRepositoryInterface
	equipmentRepository repositories.EquipmentRepositoryInterface
	logger              *zap.Logger
}

func NewMaintenancePlanService(
	planRepository repositories.MaintenancePlanRepositoryInterface,
	equipmentRepository repositories.EquipmentRepositoryInterface,
	logger *zap.Logger,
) MaintenancePlanServiceInterface {
	return &maintenancePlanService{
		planRepository:      planRepository,
		equipmentRepository: equipmentRepository,
		logger:              logger,
	}
}

func (s *maintenancePlanService) GetPlans(ctx context.Context, filter types.Filter) ([]*entities.MaintenancePlan, uint64, error) {
	return s.planRepository.GetPlans(ctx, filter)
}

func (s *maintenancePlanService) GetUpcomingDue(ctx context.Context, days int, filter types.Filter) ([]*entities.MaintenancePlan, uint64, error) {
	if days <= 0 {
		days = 7
	}
	return s.planRepository.GetUpcomingDue(ctx, time.Duration(days)*24*time.Hour, filter)
}

func (s *maintenancePlanService) FindPlan(ctx context.Context, id uint64) (*entities.MaintenancePlan, error) {
	return s.planRepository.FindPlan(ctx, id)
}

func (s *maintenancePlanService) CreatePlan(ctx context.Context, payload dto.CreateMaintenancePlanDTO) (*entities.MaintenancePlan, error) {
	equipment, err := s.equipmentRepository.FindEquipment(ctx, payload.EquipmentID)
	if err != nil {
		if err == apperrors.ErrNotFound {
			return nil, apperrors.NewValidationError("el equipo %d no existe", payload.EquipmentID)
		}
		return nil, err
	}
	// El plan debe referir un equipo de la misma empresa.
	if equipment.CompanyID != payload.CompanyID {
		return nil, apperrors.NewValidationError("el equipo %d no pertenece a la empresa %d", payload.EquipmentID, payload.CompanyID)
	}

	id, err := s.planRepository.CreatePlan(ctx, payload)
	if err != nil {
		s.logger.Error("error creando el plan de mantención", zap.Error(err))
		return nil, err
	}
	s.logger.Info("plan de mantención creado", zap.Uint64("id", id), zap.String("nombre", payload.Name))
	return s.planRepository.FindPlan(ctx, id)
}

func (s *maintenancePlanService) UpdatePlan(ctx context.Context, id uint64, payload dto.UpdateMaintenancePlanDTO) (*entities.MaintenancePlan, error) {
	if err := s.planRepository.UpdatePlan(ctx, id, payload); err != nil {
		return nil, err
	}
	return s.planRepository.FindPlan(ctx, id)
}

func (s *maintenancePlanService) DeletePlan(ctx context.Context, id uint64) error {
	return s.planRepository.DeletePlan(ctx, id)
}
