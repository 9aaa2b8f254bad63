package services

import (
	"context"

	"go.uber.org/zap"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/entities"
	"maintenance-system/internal/repositories"
	apperrors "maintenance-system/pkg/errors"
	"maintenance-system/pkg/types"
)

type EquipmentServiceInterface interface {
	GetEquipments(ctx context.Context, filter types.Filter) ([]*entities.Equipment, uint64, error)
	FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*entities.Equipment, error)
	UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) (*entities.Equipment, error)
	DeleteEquipment(ctx context.Context, id uint64) error
	GetEquipmentStats(ctx context.Context, id uint64) (*dto.EquipmentStatsDTO, error)
}

type equipmentService struct {
	equipmentRepository repositories.EquipmentRepositoryInterface
	companyRepository   repositories.CompanyRepositoryInterface
	logger              *zap.Logger
}

func NewEquipmentService(
	equipmentRepository repositories.EquipmentRepositoryInterface,
	companyRepository repositories.CompanyRepositoryInterface,
	logger *zap.Logger,
) EquipmentServiceInterface {
	return &equipmentService{
		equipmentRepository: equipmentRepository,
		companyRepository:   companyRepository,
		logger:              logger,
	}
}

func (s *equipmentService) GetEquipments(ctx context.Context, filter types.Filter) ([]*entities.Equipment, uint64, error) {
	return s.equipmentRepository.GetEquipments(ctx, filter)
}

func (s *equipmentService) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	return s.equipmentRepository.FindEquipment(ctx, id)
}

func (s *equipmentService) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*entities.Equipment, error) {
	if _, err := s.companyRepository.FindCompany(ctx, payload.CompanyID); err != nil {
		if err == apperrors.ErrNotFound {
			return nil, apperrors.NewValidationError("la empresa %d no existe", payload.CompanyID)
		}
		return nil, err
	}

	id, err := s.equipmentRepository.CreateEquipment(ctx, payload)
	if err != nil {
		s.logger.Error("error creando el equipo", zap.Error(err))
		return nil, err
	}
	s.logger.Info("equipo creado", zap.Uint64("id", id), zap.String("codigo", payload.Code))
	return s.equipmentRepository.FindEquipment(ctx, id)
}

func (s *equipmentService) UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) (*entities.Equipment, error) {
	if err := s.equipmentRepository.UpdateEquipment(ctx, id, payload); err != nil {
		return nil, err
	}
	return s.equipmentRepository.FindEquipment(ctx, id)
}

func (s *equipmentService) DeleteEquipment(ctx context.Context, id uint64) error {
	return s.equipmentRepository.DeleteEquipment(ctx, id)
}

func (s *equipmentService) GetEquipmentStats(ctx context.Context, id uint64) (*dto.EquipmentStatsDTO, error) {
	return s.equipmentRepository.GetEquipmentStats(ctx, id)
}
