package services

import (
	"context"
	"math"
	"time"

	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/entities"
	"maintenance-system/internal/repositories"
	"maintenance-system/pkg/constants"
	apperrors "maintenance-system/pkg/errors"
	"maintenance-system/pkg/types"
)

type WorkOrderServiceInterface interface {
	GetWorkOrders(ctx context.Context, filter types.Filter) ([]*entities.WorkOrder, uint64, error)
	GetWorkOrdersByTechnician(ctx context.Context, technicianID uint64, filter types.Filter) ([]*entities.WorkOrder, uint64, error)
	GetPendingWorkOrders(ctx context.Context, filter types.Filter) ([]*entities.WorkOrder, uint64, error)
	GetUrgentWorkOrders(ctx context.Context, filter types.Filter) ([]*entities.WorkOrder, uint64, error)
	GetOverdueWorkOrders(ctx context.Context, filter types.Filter) ([]*entities.WorkOrder, uint64, error)
	FindWorkOrder(ctx context.Context, id uint64) (*entities.WorkOrder, error)
	CreateWorkOrder(ctx context.Context, payload dto.CreateWorkOrderDTO) (*entities.WorkOrder, error)
	UpdateWorkOrder(ctx context.Context, id uint64, payload dto.UpdateWorkOrderDTO) (*entities.WorkOrder, error)
	DeleteWorkOrder(ctx context.Context, id uint64) error
	StartWorkOrder(ctx context.Context, id uint64) (*entities.WorkOrder, error)
	PauseWorkOrder(ctx context.Context, id uint64) (*entities.WorkOrder, error)
	CompleteWorkOrder(ctx context.Context, id uint64, payload dto.CompleteWorkOrderDTO) (*entities.WorkOrder, error)
	CancelWorkOrder(ctx context.Context, id uint64) (*entities.WorkOrder, error)
}

type workOrderService struct {
	orderRepository     repositories.WorkOrderRepositoryInterface
	equipmentRepository repositories.EquipmentRepositoryInterface
	logger              *zap.Logger
}

func NewWorkOrderService(
	orderRepository repositories.WorkOrderRepositoryInterface,
	equipmentRepository repositories.EquipmentRepositoryInterface,
	logger *zap.Logger,
) WorkOrderServiceInterface {
	return &workOrderService{
		orderRepository:     orderRepository,
		equipmentRepository: equipmentRepository,
		logger:              logger,
	}
}

func (s *workOrderService) GetWorkOrders(ctx context.Context, filter types.Filter) ([]*entities.WorkOrder, uint64, error) {
	return s.orderRepository.GetWorkOrders(ctx, filter)
}

func (s *workOrderService) GetWorkOrdersByTechnician(ctx context.Context, technicianID uint64, filter types.Filter) ([]*entities.WorkOrder, uint64, error) {
	return s.orderRepository.GetWorkOrders(ctx, filter, sq.Eq{"technician_id": technicianID})
}

// GetPendingWorkOrders lista las órdenes abiertas (agendadas, en curso o en pausa).
func (s *workOrderService) GetPendingWorkOrders(ctx context.Context, filter types.Filter) ([]*entities.WorkOrder, uint64, error) {
	return s.orderRepository.GetWorkOrders(ctx, filter, sq.Eq{"status": constants.OpenOrderStatuses})
}

// GetUrgentWorkOrders lista las órdenes abiertas con prioridad urgente.
func (s *workOrderService) GetUrgentWorkOrders(ctx context.Context, filter types.Filter) ([]*entities.WorkOrder, uint64, error) {
	return s.orderRepository.GetWorkOrders(ctx, filter,
		sq.Eq{"priority": constants.PriorityUrgent},
		sq.Eq{"status": constants.OpenOrderStatuses},
	)
}

// GetOverdueWorkOrders lista las órdenes cuya fecha agendada ya pasó y que
// todavía no empiezan.
func (s *workOrderService) GetOverdueWorkOrders(ctx context.Context, filter types.Filter) ([]*entities.WorkOrder, uint64, error) {
	return s.orderRepository.GetWorkOrders(ctx, filter,
		sq.Lt{"scheduled_at": time.Now()},
		sq.Eq{"status": []string{constants.OrderScheduled, constants.OrderPending}},
	)
}

func (s *workOrderService) FindWorkOrder(ctx context.Context, id uint64) (*entities.WorkOrder, error) {
	return s.orderRepository.FindWorkOrder(ctx, id)
}

func (s *workOrderService) CreateWorkOrder(ctx context.Context, payload dto.CreateWorkOrderDTO) (*entities.WorkOrder, error) {
	equipment, err := s.equipmentRepository.FindEquipment(ctx, payload.EquipmentID)
	if err != nil {
		if err == apperrors.ErrNotFound {
			return nil, apperrors.NewValidationError("el equipo %d no existe", payload.EquipmentID)
		}
		return nil, err
	}
	if equipment.CompanyID != payload.CompanyID {
		return nil, apperrors.NewValidationError("el equipo %d no pertenece a la empresa %d", payload.EquipmentID, payload.CompanyID)
	}
	if err := validateOrderDates(payload.StartedAt, payload.FinishedAt); err != nil {
		return nil, err
	}
	if payload.WorkedHours.Valid && payload.WorkedHours.Float64 < 0 {
		return nil, apperrors.NewValidationError("las horas trabajadas no pueden ser negativas")
	}

	id, orderNumber, err := s.orderRepository.CreateWorkOrder(ctx, payload)
	if err != nil {
		s.logger.Error("error creando la orden de trabajo", zap.Error(err))
		return nil, err
	}
	s.logger.Info("orden de trabajo creada",
		zap.Uint64("id", id), zap.String("numero", orderNumber))
	return s.orderRepository.FindWorkOrder(ctx, id)
}

func (s *workOrderService) UpdateWorkOrder(ctx context.Context, id uint64, payload dto.UpdateWorkOrderDTO) (*entities.WorkOrder, error) {
	order, err := s.orderRepository.FindWorkOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	companyID := order.CompanyID
	if payload.EquipmentID != nil {
		equipment, err := s.equipmentRepository.FindEquipment(ctx, *payload.EquipmentID)
		if err != nil {
			if err == apperrors.ErrNotFound {
				return nil, apperrors.NewValidationError("el equipo %d no existe", *payload.EquipmentID)
			}
			return nil, err
		}
		if equipment.CompanyID != companyID {
			return nil, apperrors.NewValidationError("el equipo %d no pertenece a la empresa %d", *payload.EquipmentID, companyID)
		}
	}

	// Las fechas se validan sobre el estado resultante, no solo sobre el payload.
	startedAt := order.StartedAt
	if payload.StartedAt != nil {
		startedAt = payload.StartedAt
	}
	finishedAt := order.FinishedAt
	if payload.FinishedAt != nil {
		finishedAt = payload.FinishedAt
	}
	if err := validateOrderDates(startedAt, finishedAt); err != nil {
		return nil, err
	}
	if payload.WorkedHours.Valid && payload.WorkedHours.Float64 < 0 {
		return nil, apperrors.NewValidationError("las horas trabajadas no pueden ser negativas")
	}

	if err := s.orderRepository.UpdateWorkOrder(ctx, id, payload); err != nil {
		return nil, err
	}
	return s.orderRepository.FindWorkOrder(ctx, id)
}

func (s *workOrderService) DeleteWorkOrder(ctx context.Context, id uint64) error {
	return s.orderRepository.DeleteWorkOrder(ctx, id)
}

// StartWorkOrder pasa la orden de agendada a en curso y registra el inicio.
func (s *workOrderService) StartWorkOrder(ctx context.Context, id uint64) (*entities.WorkOrder, error) {
	order, err := s.orderRepository.FindWorkOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.Status != constants.OrderScheduled {
		return nil, apperrors.NewInvalidStateError("no se puede iniciar una orden en estado '%s'", order.Status)
	}

	set := map[string]interface{}{
		"status":     constants.OrderInProgress,
		"started_at": time.Now(),
	}
	if err := s.orderRepository.SetStatus(ctx, id, set); err != nil {
		return nil, err
	}
	s.logger.Info("orden iniciada", zap.Uint64("id", id), zap.String("numero", order.OrderNumber))
	return s.orderRepository.FindWorkOrder(ctx, id)
}

func (s *workOrderService) PauseWorkOrder(ctx context.Context, id uint64) (*entities.WorkOrder, error) {
	order, err := s.orderRepository.FindWorkOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.Status != constants.OrderInProgress {
		return nil, apperrors.NewInvalidStateError("solo se puede pausar una orden en curso, no en estado '%s'", order.Status)
	}

	if err := s.orderRepository.SetStatus(ctx, id, map[string]interface{}{"status": constants.OrderPaused}); err != nil {
		return nil, err
	}
	return s.orderRepository.FindWorkOrder(ctx, id)
}

// CompleteWorkOrder cierra la orden. Si no vienen horas trabajadas y hay fecha
// de inicio, las calcula a partir del intervalo real.
func (s *workOrderService) CompleteWorkOrder(ctx context.Context, id uint64, payload dto.CompleteWorkOrderDTO) (*entities.WorkOrder, error) {
	order, err := s.orderRepository.FindWorkOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.Status == constants.OrderCompleted {
		return nil, apperrors.NewInvalidStateError("la orden ya está completada")
	}

	now := time.Now()
	set := map[string]interface{}{
		"status":      constants.OrderCompleted,
		"finished_at": now,
	}

	switch {
	case payload.WorkedHours.Valid:
		if payload.WorkedHours.Float64 < 0 {
			return nil, apperrors.NewValidationError("las horas trabajadas no pueden ser negativas")
		}
		set["worked_hours"] = payload.WorkedHours.Float64
	case order.WorkedHours == nil && order.StartedAt != nil:
		set["worked_hours"] = roundHours(now.Sub(*order.StartedAt))
	}

	if payload.Observations.Valid {
		set["observations"] = payload.Observations.String
	}
	if payload.SparePartsUsed.Valid {
		set["spare_parts_used"] = payload.SparePartsUsed.String
	}
	if payload.RealCost.Valid {
		if payload.RealCost.Float64 < 0 {
			return nil, apperrors.NewValidationError("el costo real no puede ser negativo")
		}
		set["real_cost"] = payload.RealCost.Float64
	}

	if err := s.orderRepository.SetStatus(ctx, id, set); err != nil {
		return nil, err
	}
	s.logger.Info("orden completada", zap.Uint64("id", id), zap.String("numero", order.OrderNumber))
	return s.orderRepository.FindWorkOrder(ctx, id)
}

func (s *workOrderService) CancelWorkOrder(ctx context.Context, id uint64) (*entities.WorkOrder, error) {
	order, err := s.orderRepository.FindWorkOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.Status == constants.OrderCompleted {
		return nil, apperrors.NewInvalidStateError("no se puede cancelar una orden completada")
	}

	if err := s.orderRepository.SetStatus(ctx, id, map[string]interface{}{"status": constants.OrderCancelled}); err != nil {
		return nil, err
	}
	s.logger.Info("orden cancelada", zap.Uint64("id", id), zap.String("numero", order.OrderNumber))
	return s.orderRepository.FindWorkOrder(ctx, id)
}

func validateOrderDates(startedAt, finishedAt *time.Time) error {
	if startedAt != nil && finishedAt != nil && startedAt.After(*finishedAt) {
		return apperrors.NewValidationError("la fecha de inicio no puede ser posterior a la de término")
	}
	return nil
}

// roundHours convierte una duración a horas con dos decimales.
func roundHours(d time.Duration) float64 {
	return math.Round(d.Hours()*100) / 100
}
