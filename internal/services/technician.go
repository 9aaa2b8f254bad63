package services

import (
	"context"

	"go.uber.org/zap"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/entities"
	"maintenance-system/internal/repositories"
	"maintenance-system/pkg/types"
)

type TechnicianServiceInterface interface {
	GetTechnicians(ctx context.Context, filter types.Filter) ([]*entities.Technician, uint64, error)
	GetTechniciansByCompany(ctx context.Context, companyID uint64, filter types.Filter) ([]*entities.Technician, uint64, error)
	GetTechniciansBySpecialty(ctx context.Context, specialty string, filter types.Filter) ([]*entities.Technician, uint64, error)
	GetAvailableTechnicians(ctx context.Context, filter types.Filter) ([]*entities.Technician, uint64, error)
	FindTechnician(ctx context.Context, id uint64) (*entities.Technician, error)
	CreateTechnician(ctx context.Context, payload dto.CreateTechnicianDTO) (*entities.Technician, error)
	UpdateTechnician(ctx context.Context, id uint64, payload dto.UpdateTechnicianDTO) (*entities.Technician, error)
	DeleteTechnician(ctx context.Context, id uint64) error
	AssignCompany(ctx context.Context, technicianID, companyID uint64) (*entities.Technician, error)
	UnassignCompany(ctx context.Context, technicianID, companyID uint64) (*entities.Technician, error)
}

type technicianService struct {
	technicianRepository repositories.TechnicianRepositoryInterface
	logger               *zap.Logger
}

func NewTechnicianService(
	technicianRepository repositories.TechnicianRepositoryInterface,
	logger *zap.Logger,
) TechnicianServiceInterface {
	return &technicianService{
		technicianRepository: technicianRepository,
		logger:               logger,
	}
}

func (s *technicianService) GetTechnicians(ctx context.Context, filter types.Filter) ([]*entities.Technician, uint64, error) {
	return s.technicianRepository.GetTechnicians(ctx, filter)
}

func (s *technicianService) GetTechniciansByCompany(ctx context.Context, companyID uint64, filter types.Filter) ([]*entities.Technician, uint64, error) {
	return s.technicianRepository.GetTechniciansByCompany(ctx, companyID, filter)
}

func (s *technicianService) GetTechniciansBySpecialty(ctx context.Context, specialty string, filter types.Filter) ([]*entities.Technician, uint64, error) {
	if filter.Filter == nil {
		filter.Filter = make(map[string]interface{})
	}
	filter.Filter["specialty"] = specialty
	return s.technicianRepository.GetTechnicians(ctx, filter)
}

// GetAvailableTechnicians lista los técnicos activos. La "disponibilidad" no
// mira la carga de trabajo actual, solo el flag activo.
func (s *technicianService) GetAvailableTechnicians(ctx context.Context, filter types.Filter) ([]*entities.Technician, uint64, error) {
	if filter.Filter == nil {
		filter.Filter = make(map[string]interface{})
	}
	filter.Filter["active"] = true
	return s.technicianRepository.GetTechnicians(ctx, filter)
}

func (s *technicianService) FindTechnician(ctx context.Context, id uint64) (*entities.Technician, error) {
	return s.technicianRepository.FindTechnician(ctx, id)
}

func (s *technicianService) CreateTechnician(ctx context.Context, payload dto.CreateTechnicianDTO) (*entities.Technician, error) {
	id, err := s.technicianRepository.CreateTechnician(ctx, payload)
	if err != nil {
		s.logger.Error("error creando el técnico", zap.Error(err))
		return nil, err
	}
	s.logger.Info("técnico creado", zap.Uint64("id", id), zap.String("rut", payload.RUT))
	return s.technicianRepository.FindTechnician(ctx, id)
}

func (s *technicianService) UpdateTechnician(ctx context.Context, id uint64, payload dto.UpdateTechnicianDTO) (*entities.Technician, error) {
	if err := s.technicianRepository.UpdateTechnician(ctx, id, payload); err != nil {
		return nil, err
	}
	return s.technicianRepository.FindTechnician(ctx, id)
}

func (s *technicianService) DeleteTechnician(ctx context.Context, id uint64) error {
	return s.technicianRepository.DeleteTechnician(ctx, id)
}

func (s *technicianService) AssignCompany(ctx context.Context, technicianID, companyID uint64) (*entities.Technician, error) {
	if err := s.technicianRepository.AssignCompany(ctx, technicianID, companyID); err != nil {
		return nil, err
	}
	s.logger.Info("empresa asignada al técnico",
		zap.Uint64("tecnico", technicianID), zap.Uint64("empresa", companyID))
	return s.technicianRepository.FindTechnician(ctx, technicianID)
}

func (s *technicianService) UnassignCompany(ctx context.Context, technicianID, companyID uint64) (*entities.Technician, error) {
	if err := s.technicianRepository.UnassignCompany(ctx, technicianID, companyID); err != nil {
		return nil, err
	}
	return s.technicianRepository.FindTechnician(ctx, technicianID)
}
