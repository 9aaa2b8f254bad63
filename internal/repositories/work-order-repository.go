package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/entities"
	"maintenance-system/pkg/constants"
	apperrors "maintenance-system/pkg/errors"
	"maintenance-system/pkg/types"
)

const (
	workOrderTable  = "work_orders"
	workOrderFields = "id, company_id, equipment_id, plan_id, technician_id, order_number, description, status, priority, scheduled_at, started_at, finished_at, worked_hours, observations, spare_parts_used, real_cost, created_at, updated_at"

	// Reintentos cuando dos inserts compiten por el mismo correlativo.
	orderNumberAttempts = 3
)

// orderNumberExpr calcula el número ORD-<año>-<correlativo> dentro del mismo
// INSERT. El correlativo es global (no por año ni por empresa): máximo sufijo
// existente + 1. La restricción UNIQUE sobre order_number cierra la carrera.
const orderNumberExpr = `'ORD-' || to_char(now(), 'YYYY') || '-' || lpad((SELECT COALESCE(MAX(split_part(order_number, '-', 3)::int), 0) + 1 FROM work_orders)::text, 5, '0')`

var allowedWorkOrderFilters = map[string]string{
	"company":    "company_id",
	"equipment":  "equipment_id",
	"plan":       "plan_id",
	"technician": "technician_id",
	"status":     "status",
	"priority":   "priority",
}

var allowedWorkOrderSortFields = map[string]bool{
	"id":           true,
	"order_number": true,
	"status":       true,
	"priority":     true,
	"scheduled_at": true,
	"started_at":   true,
	"finished_at":  true,
	"created_at":   true,
}

var workOrderSearchCols = []string{"order_number", "description", "observations"}

type WorkOrderRepositoryInterface interface {
	GetWorkOrders(ctx context.Context, filter types.Filter, extra ...sq.Sqlizer) ([]*entities.WorkOrder, uint64, error)
	FindWorkOrder(ctx context.Context, id uint64) (*entities.WorkOrder, error)
	CreateWorkOrder(ctx context.Context, payload dto.CreateWorkOrderDTO) (uint64, string, error)
	UpdateWorkOrder(ctx context.Context, id uint64, payload dto.UpdateWorkOrderDTO) error
	DeleteWorkOrder(ctx context.Context, id uint64) error
	SetStatus(ctx context.Context, id uint64, set map[string]interface{}) error
}

type workOrderRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewWorkOrderRepository(storage *pgxpool.Pool, logger *zap.Logger) WorkOrderRepositoryInterface {
	return &workOrderRepository{storage: storage, logger: logger}
}

func (r *workOrderRepository) scanRow(row pgx.Row) (*entities.WorkOrder, error) {
	var o entities.WorkOrder
	err := row.Scan(
		&o.ID, &o.CompanyID, &o.EquipmentID, &o.PlanID, &o.TechnicianID,
		&o.OrderNumber, &o.Description, &o.Status, &o.Priority,
		&o.ScheduledAt, &o.StartedAt, &o.FinishedAt, &o.WorkedHours,
		&o.Observations, &o.SparePartsUsed, &o.RealCost,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error escaneando work_orders: %w", err)
	}
	return &o, nil
}

func (r *workOrderRepository) GetWorkOrders(ctx context.Context, filter types.Filter, extra ...sq.Sqlizer) ([]*entities.WorkOrder, uint64, error) {
	conds := buildWhere(filter, allowedWorkOrderFilters, workOrderSearchCols)
	conds = append(conds, extra...)

	countBuilder := psql.Select("COUNT(*)").From(workOrderTable)
	listBuilder := psql.Select(workOrderFields).From(workOrderTable)
	for _, c := range conds {
		countBuilder = countBuilder.Where(c)
		listBuilder = listBuilder.Where(c)
	}

	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error armando SQL de conteo: %w", err)
	}
	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	listBuilder = applySort(listBuilder, filter.Sort, allowedWorkOrderSortFields, "scheduled_at DESC")
	listBuilder = listBuilder.Limit(uint64(filter.Limit)).Offset(uint64(filter.Offset))
	query, args, err := listBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error armando SQL de listado: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders := make([]*entities.WorkOrder, 0)
	for rows.Next() {
		o, err := r.scanRow(rows)
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, o)
	}
	return orders, total, rows.Err()
}

func (r *workOrderRepository) FindWorkOrder(ctx context.Context, id uint64) (*entities.WorkOrder, error) {
	query, args, err := psql.Select(workOrderFields).From(workOrderTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	return r.scanRow(r.storage.QueryRow(ctx, query, args...))
}

// CreateWorkOrder inserta la orden asignando el número correlativo en el mismo
// INSERT. Si otra inserción concurrente ganó el número, reintenta.
func (r *workOrderRepository) CreateWorkOrder(ctx context.Context, payload dto.CreateWorkOrderDTO) (uint64, string, error) {
	status := payload.Status
	if status == "" {
		status = constants.OrderScheduled
	}
	priority := payload.Priority
	if priority == "" {
		priority = constants.PriorityMedium
	}

	query, args, err := psql.Insert(workOrderTable).
		Columns("company_id", "equipment_id", "plan_id", "technician_id", "order_number",
			"description", "status", "priority", "scheduled_at", "started_at", "finished_at",
			"worked_hours", "observations", "spare_parts_used", "real_cost").
		Values(payload.CompanyID, payload.EquipmentID, payload.PlanID.Ptr(), payload.TechnicianID.Ptr(),
			sq.Expr(orderNumberExpr), payload.Description, status, priority, payload.ScheduledAt,
			payload.StartedAt, payload.FinishedAt, payload.WorkedHours.Ptr(),
			payload.Observations.Ptr(), payload.SparePartsUsed.Ptr(), payload.RealCost.Ptr()).
		Suffix("RETURNING id, order_number").
		ToSql()
	if err != nil {
		return 0, "", err
	}

	var id uint64
	var orderNumber string
	for attempt := 1; attempt <= orderNumberAttempts; attempt++ {
		err = r.storage.QueryRow(ctx, query, args...).Scan(&id, &orderNumber)
		if err == nil {
			return id, orderNumber, nil
		}
		if isUniqueViolation(err) {
			r.logger.Warn("colisión de número de orden, reintentando",
				zap.Int("intento", attempt))
			continue
		}
		if isForeignKeyViolation(err) {
			return 0, "", apperrors.NewValidationError("la empresa, el equipo, el plan o el técnico indicado no existe")
		}
		return 0, "", err
	}
	return 0, "", fmt.Errorf("no se pudo asignar un número de orden tras %d intentos: %w", orderNumberAttempts, err)
}

func (r *workOrderRepository) UpdateWorkOrder(ctx context.Context, id uint64, payload dto.UpdateWorkOrderDTO) error {
	set := map[string]interface{}{"updated_at": sq.Expr("now()")}
	if payload.EquipmentID != nil {
		set["equipment_id"] = *payload.EquipmentID
	}
	if payload.PlanID.Valid {
		set["plan_id"] = payload.PlanID.Int64
	}
	if payload.TechnicianID.Valid {
		set["technician_id"] = payload.TechnicianID.Int64
	}
	if payload.Description != nil {
		set["description"] = *payload.Description
	}
	if payload.Status != nil {
		set["status"] = *payload.Status
	}
	if payload.Priority != nil {
		set["priority"] = *payload.Priority
	}
	if payload.ScheduledAt != nil {
		set["scheduled_at"] = *payload.ScheduledAt
	}
	if payload.StartedAt != nil {
		set["started_at"] = *payload.StartedAt
	}
	if payload.FinishedAt != nil {
		set["finished_at"] = *payload.FinishedAt
	}
	if payload.WorkedHours.Valid {
		set["worked_hours"] = payload.WorkedHours.Float64
	}
	if payload.Observations.Valid {
		set["observations"] = payload.Observations.String
	}
	if payload.SparePartsUsed.Valid {
		set["spare_parts_used"] = payload.SparePartsUsed.String
	}
	if payload.RealCost.Valid {
		set["real_cost"] = payload.RealCost.Float64
	}

	query, args, err := psql.Update(workOrderTable).SetMap(set).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
	result, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.NewValidationError("el equipo, el plan o el técnico indicado no existe")
		}
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *workOrderRepository) DeleteWorkOrder(ctx context.Context, id uint64) error {
	query, args, err := psql.Delete(workOrderTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
	result, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SetStatus aplica un cambio de estado ya validado por el servicio.
func (r *workOrderRepository) SetStatus(ctx context.Context, id uint64, set map[string]interface{}) error {
	set["updated_at"] = sq.Expr("now()")
	query, args, err := psql.Update(workOrderTable).SetMap(set).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
	result, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
