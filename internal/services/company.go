package services

import (
	"context"

	"go.uber.org/zap"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/entities"
	"maintenance-system/internal/repositories"
	"maintenance-system/pkg/types"
)

type CompanyServiceInterface interface {
	GetCompanies(ctx context.Context, filter types.Filter) ([]*entities.Company, uint64, error)
	FindCompany(ctx context.Context, id uint64) (*entities.Company, error)
	CreateCompany(ctx context.Context, payload dto.CreateCompanyDTO) (*entities.Company, error)
	UpdateCompany(ctx context.Context, id uint64, payload dto.UpdateCompanyDTO) (*entities.Company, error)
	DeleteCompany(ctx context.Context, id uint64) error
	GetCompanyStats(ctx context.Context, id uint64) (*dto.CompanyStatsDTO, error)
}

type companyService struct {
	companyRepository repositories.CompanyRepositoryInterface
	logger            *zap.Logger
}

func NewCompanyService(companyRepository repositories.CompanyRepositoryInterface, logger *zap.Logger) CompanyServiceInterface {
	return &companyService{
		companyRepository: companyRepository,
		logger:            logger,
	}
}

func (s *companyService) GetCompanies(ctx context.Context, filter types.Filter) ([]*entities.Company, uint64, error) {
	return s.companyRepository.GetCompanies(ctx, filter)
}

func (s *companyService) FindCompany(ctx context.Context, id uint64) (*entities.Company, error) {
	return s.companyRepository.FindCompany(ctx, id)
}

func (s *companyService) CreateCompany(ctx context.Context, payload dto.CreateCompanyDTO) (*entities.Company, error) {
	id, err := s.companyRepository.CreateCompany(ctx, payload)
	if err != nil {
		s.logger.Error("error creando la empresa", zap.Error(err))
		return nil, err
	}
	s.logger.Info("empresa creada", zap.Uint64("id", id), zap.String("nombre", payload.Name))
	return s.companyRepository.FindCompany(ctx, id)
}

func (s *companyService) UpdateCompany(ctx context.Context, id uint64, payload dto.UpdateCompanyDTO) (*entities.Company, error) {
	if err := s.companyRepository.UpdateCompany(ctx, id, payload); err != nil {
		return nil, err
	}
	return s.companyRepository.FindCompany(ctx, id)
}

func (s *companyService) DeleteCompany(ctx context.Context, id uint64) error {
	return s.companyRepository.DeleteCompany(ctx, id)
}

func (s *companyService) GetCompanyStats(ctx context.Context, id uint64) (*dto.CompanyStatsDTO, error) {
	// Primero se valida que la empresa exista: el bloque de estadísticas
	// de una empresa inexistente debe ser 404, no un bloque en cero.
	if _, err := s.companyRepository.FindCompany(ctx, id); err != nil {
		return nil, err
	}
	return s.companyRepository.GetCompanyStats(ctx, id)
}
