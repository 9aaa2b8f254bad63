package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

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
	planTable            = "maintenance_plans"
	planFields           = "id, company_id, equipment_id, name, description, type, frequency, frequency_days, estimated_duration_hours, tasks, required_tools, common_spare_parts, estimated_cost, active, starts_at, next_maintenance_at, created_at, updated_at"
	planTechniciansTable = "plan_technicians"
)

var allowedPlanFilters = map[string]string{
	"company":   "company_id",
	"equipment": "equipment_id",
	"type":      "type",
	"frequency": "frequency",
	"active":    "active",
}

var allowedPlanSortFields = map[string]bool{
	"id":                  true,
	"name":                true,
	"type":                true,
	"frequency":           true,
	"starts_at":           true,
	"next_maintenance_at": true,
	"created_at":          true,
}

var planSearchCols = []string{"name", "description", "tasks"}

type MaintenancePlanRepositoryInterface interface {
	GetPlans(ctx context.Context, filter types.Filter, extra ...sq.Sqlizer) ([]*entities.MaintenancePlan, uint64, error)
	FindPlan(ctx context.Context, id uint64) (*entities.MaintenancePlan, error)
	CreatePlan(ctx context.Context, payload dto.CreateMaintenancePlanDTO) (uint64, error)
	UpdatePlan(ctx context.Context, id uint64, payload dto.UpdateMaintenancePlanDTO) error
	DeletePlan(ctx context.Context, id uint64) error
	GetUpcomingDue(ctx context.Context, within time.Duration, filter types.Filter) ([]*entities.MaintenancePlan, uint64, error)
	GetTechnicianIDs(ctx context.Context, planID uint64) ([]uint64, error)
}

type maintenancePlanRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewMaintenancePlanRepository(storage *pgxpool.Pool, logger *zap.Logger) MaintenancePlanRepositoryInterface {
	return &maintenancePlanRepository{storage: storage, logger: logger}
}

func (r *maintenancePlanRepository) scanRow(row pgx.Row) (*entities.MaintenancePlan, error) {
	var p entities.MaintenancePlan
	err := row.Scan(
		&p.ID, &p.CompanyID, &p.EquipmentID, &p.Name, &p.Description,
		&p.Type, &p.Frequency, &p.FrequencyDays, &p.EstimatedDurationHours,
		&p.Tasks, &p.RequiredTools, &p.CommonSpareParts, &p.EstimatedCost,
		&p.Active, &p.StartsAt, &p.NextMaintenanceAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error escaneando maintenance_plans: %w", err)
	}
	return &p, nil
}

func (r *maintenancePlanRepository) GetPlans(ctx context.Context, filter types.Filter, extra ...sq.Sqlizer) ([]*entities.MaintenancePlan, uint64, error) {
	conds := buildWhere(filter, allowedPlanFilters, planSearchCols)
	conds = append(conds, extra...)

	countBuilder := psql.Select("COUNT(*)").From(planTable)
	listBuilder := psql.Select(planFields).From(planTable)
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

	listBuilder = applySort(listBuilder, filter.Sort, allowedPlanSortFields, "next_maintenance_at ASC NULLS LAST")
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

	plans := make([]*entities.MaintenancePlan, 0)
	for rows.Next() {
		p, err := r.scanRow(rows)
		if err != nil {
			return nil, 0, err
		}
		plans = append(plans, p)
	}
	return plans, total, rows.Err()
}

func (r *maintenancePlanRepository) FindPlan(ctx context.Context, id uint64) (*entities.MaintenancePlan, error) {
	query, args, err := psql.Select(planFields).From(planTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	p, err := r.scanRow(r.storage.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, err
	}
	p.TechnicianIDs, err = r.GetTechnicianIDs(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *maintenancePlanRepository) CreatePlan(ctx context.Context, payload dto.CreateMaintenancePlanDTO) (uint64, error) {
	planType := payload.Type
	if planType == "" {
		planType = constants.PlanPreventive
	}
	active := true
	if payload.Active != nil {
		active = *payload.Active
	}

	var id uint64
	err := WithTx(ctx, r.storage, func(tx pgx.Tx) error {
		query, args, err := psql.Insert(planTable).
			Columns("company_id", "equipment_id", "name", "description", "type", "frequency",
				"frequency_days", "estimated_duration_hours", "tasks", "required_tools",
				"common_spare_parts", "estimated_cost", "active", "starts_at", "next_maintenance_at").
			Values(payload.CompanyID, payload.EquipmentID, payload.Name, payload.Description.Ptr(),
				planType, payload.Frequency, payload.FrequencyDays, payload.EstimatedDurationHours,
				payload.Tasks, payload.RequiredTools.Ptr(), payload.CommonSpareParts.Ptr(),
				payload.EstimatedCost.Ptr(), active, payload.StartsAt, payload.NextMaintenanceAt).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return err
		}
		if err := tx.QueryRow(ctx, query, args...).Scan(&id); err != nil {
			if isUniqueViolation(err) {
				return apperrors.NewValidationError("el equipo ya tiene un plan con ese nombre")
			}
			if isForeignKeyViolation(err) {
				return apperrors.ErrNotFound
			}
			return err
		}
		return r.replaceTechnicians(ctx, tx, id, payload.TechnicianIDs)
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *maintenancePlanRepository) UpdatePlan(ctx context.Context, id uint64, payload dto.UpdateMaintenancePlanDTO) error {
	set := map[string]interface{}{"updated_at": sq.Expr("now()")}
	if payload.Name != nil {
		set["name"] = *payload.Name
	}
	if payload.Description.Valid {
		set["description"] = payload.Description.String
	}
	if payload.Type != nil {
		set["type"] = *payload.Type
	}
	if payload.Frequency != nil {
		set["frequency"] = *payload.Frequency
	}
	if payload.FrequencyDays != nil {
		set["frequency_days"] = *payload.FrequencyDays
	}
	if payload.EstimatedDurationHours != nil {
		set["estimated_duration_hours"] = *payload.EstimatedDurationHours
	}
	if payload.Tasks != nil {
		set["tasks"] = *payload.Tasks
	}
	if payload.RequiredTools.Valid {
		set["required_tools"] = payload.RequiredTools.String
	}
	if payload.CommonSpareParts.Valid {
		set["common_spare_parts"] = payload.CommonSpareParts.String
	}
	if payload.EstimatedCost.Valid {
		set["estimated_cost"] = payload.EstimatedCost.Float64
	}
	if payload.Active != nil {
		set["active"] = *payload.Active
	}
	if payload.StartsAt != nil {
		set["starts_at"] = *payload.StartsAt
	}
	if payload.NextMaintenanceAt != nil {
		set["next_maintenance_at"] = *payload.NextMaintenanceAt
	}

	return WithTx(ctx, r.storage, func(tx pgx.Tx) error {
		query, args, err := psql.Update(planTable).SetMap(set).Where(sq.Eq{"id": id}).ToSql()
		if err != nil {
			return err
		}
		result, err := tx.Exec(ctx, query, args...)
		if err != nil {
			if isUniqueViolation(err) {
				return apperrors.NewValidationError("el equipo ya tiene un plan con ese nombre")
			}
			return err
		}
		if result.RowsAffected() == 0 {
			return apperrors.ErrNotFound
		}
		if payload.TechnicianIDs != nil {
			return r.replaceTechnicians(ctx, tx, id, payload.TechnicianIDs)
		}
		return nil
	})
}

func (r *maintenancePlanRepository) DeletePlan(ctx context.Context, id uint64) error {
	query, args, err := psql.Delete(planTable).Where(sq.Eq{"id": id}).ToSql()
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

// GetUpcomingDue lista los planes activos cuya próxima mantención cae entre
// hoy y el fin de la ventana indicada. Los planes ya vencidos quedan fuera.
func (r *maintenancePlanRepository) GetUpcomingDue(ctx context.Context, within time.Duration, filter types.Filter) ([]*entities.MaintenancePlan, uint64, error) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return r.GetPlans(ctx, filter,
		sq.Eq{"active": true},
		sq.NotEq{"next_maintenance_at": nil},
		sq.GtOrEq{"next_maintenance_at": today},
		sq.LtOrEq{"next_maintenance_at": now.Add(within)},
	)
}

func (r *maintenancePlanRepository) GetTechnicianIDs(ctx context.Context, planID uint64) ([]uint64, error) {
	rows, err := r.storage.Query(ctx,
		"SELECT technician_id FROM plan_technicians WHERE plan_id = $1 ORDER BY technician_id", planID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]uint64, 0)
	for rows.Next() {
		var id uint64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *maintenancePlanRepository) replaceTechnicians(ctx context.Context, q Querier, planID uint64, technicianIDs []uint64) error {
	if _, err := q.Exec(ctx, "DELETE FROM plan_technicians WHERE plan_id = $1", planID); err != nil {
		return err
	}
	if len(technicianIDs) == 0 {
		return nil
	}
	builder := psql.Insert(planTechniciansTable).Columns("plan_id", "technician_id")
	for _, technicianID := range technicianIDs {
		builder = builder.Values(planID, technicianID)
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return err
	}
	if _, err := q.Exec(ctx, query, args...); err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.NewValidationError("alguno de los técnicos indicados no existe")
		}
		if isUniqueViolation(err) {
			return apperrors.NewValidationError("hay técnicos repetidos en la lista")
		}
		return err
	}
	return nil
}
