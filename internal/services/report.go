package services

import (
	"context"

	"go.uber.org/zap"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/repositories"
	"maintenance-system/pkg/types"
)

type ReportServiceInterface interface {
	GetWorkOrderReport(ctx context.Context, filter types.Filter) ([]dto.WorkOrderReportRow, error)
}

type reportService struct {
	reportRepository repositories.ReportRepositoryInterface
	logger           *zap.Logger
}

func NewReportService(reportRepository repositories.ReportRepositoryInterface, logger *zap.Logger) ReportServiceInterface {
	return &reportService{
		reportRepository: reportRepository,
		logger:           logger,
	}
}

func (s *reportService) GetWorkOrderReport(ctx context.Context, filter types.Filter) ([]dto.WorkOrderReportRow, error) {
	rows, err := s.reportRepository.GetWorkOrderReportRows(ctx, filter)
	if err != nil {
		s.logger.Error("error generando el reporte de órdenes", zap.Error(err))
		return nil, err
	}
	return rows, nil
}
