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
	equipmentTable  = "equipments"
	equipmentFields = "id, company_id, name, code, description, type, brand, model, serial_number, location, status, acquired_at, installed_at, last_maintenance_at, critical, active, created_at, updated_at"
)

var allowedEquipmentFilters = map[string]string{
	"company":  "company_id",
	"status":   "status",
	"type":     "type",
	"critical": "critical",
	"active":   "active",
}

var allowedEquipmentSortFields = map[string]bool{
	"id":                  true,
	"name":                true,
	"code":                true,
	"status":              true,
	"last_maintenance_at": true,
	"created_at":          true,
	"updated_at":          true,
}

var equipmentSearchCols = []string{"name", "code", "type", "brand"}

type EquipmentRepositoryInterface interface {
	GetEquipments(ctx context.Context, filter types.Filter) ([]*entities.Equipment, uint64, error)
	FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (uint64, error)
	UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) error
	DeleteEquipment(ctx context.Context, id uint64) error
	GetEquipmentStats(ctx context.Context, id uint64) (*dto.EquipmentStatsDTO, error)
}

type equipmentRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewEquipmentRepository(storage *pgxpool.Pool, logger *zap.Logger) EquipmentRepositoryInterface {
	return &equipmentRepository{storage: storage, logger: logger}
}

func (r *equipmentRepository) scanRow(row pgx.Row) (*entities.Equipment, error) {
	var e entities.Equipment
	err := row.Scan(
		&e.ID, &e.CompanyID, &e.Name, &e.Code, &e.Description, &e.Type,
		&e.Brand, &e.Model, &e.SerialNumber, &e.Location, &e.Status,
		&e.AcquiredAt, &e.InstalledAt, &e.LastMaintenanceAt,
		&e.Critical, &e.Active, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error escaneando equipments: %w", err)
	}
	return &e, nil
}

func (r *equipmentRepository) GetEquipments(ctx context.Context, filter types.Filter) ([]*entities.Equipment, uint64, error) {
	conds := buildWhere(filter, allowedEquipmentFilters, equipmentSearchCols)

	countBuilder := psql.Select("COUNT(*)").From(equipmentTable)
	listBuilder := psql.Select(equipmentFields).From(equipmentTable)
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

	listBuilder = applySort(listBuilder, filter.Sort, allowedEquipmentSortFields, "created_at DESC")
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

	equipments := make([]*entities.Equipment, 0)
	for rows.Next() {
		e, err := r.scanRow(rows)
		if err != nil {
			return nil, 0, err
		}
		equipments = append(equipments, e)
	}
	return equipments, total, rows.Err()
}

func (r *equipmentRepository) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	query, args, err := psql.Select(equipmentFields).From(equipmentTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	return r.scanRow(r.storage.QueryRow(ctx, query, args...))
}

func (r *equipmentRepository) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (uint64, error) {
	status := payload.Status
	if status == "" {
		status = constants.EquipmentOperational
	}
	critical := false
	if payload.Critical != nil {
		critical = *payload.Critical
	}
	active := true
	if payload.Active != nil {
		active = *payload.Active
	}

	query, args, err := psql.Insert(equipmentTable).
		Columns("company_id", "name", "code", "description", "type", "brand", "model",
			"serial_number", "location", "status", "acquired_at", "installed_at", "critical", "active").
		Values(payload.CompanyID, payload.Name, payload.Code, payload.Description.Ptr(),
			payload.Type, payload.Brand.Ptr(), payload.Model.Ptr(), payload.SerialNumber.Ptr(),
			payload.Location.Ptr(), status, payload.AcquiredAt, payload.InstalledAt, critical, active).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, err
	}

	var id uint64
	if err := r.storage.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		if isUniqueViolation(err) {
			return 0, apperrors.NewValidationError("ya existe un equipo con ese código")
		}
		if isForeignKeyViolation(err) {
			return 0, apperrors.ErrNotFound
		}
		return 0, err
	}
	return id, nil
}

func (r *equipmentRepository) UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) error {
	set := map[string]interface{}{"updated_at": sq.Expr("now()")}
	if payload.Name != nil {
		set["name"] = *payload.Name
	}
	if payload.Code != nil {
		set["code"] = *payload.Code
	}
	if payload.Description.Valid {
		set["description"] = payload.Description.String
	}
	if payload.Type != nil {
		set["type"] = *payload.Type
	}
	if payload.Brand.Valid {
		set["brand"] = payload.Brand.String
	}
	if payload.Model.Valid {
		set["model"] = payload.Model.String
	}
	if payload.SerialNumber.Valid {
		set["serial_number"] = payload.SerialNumber.String
	}
	if payload.Location.Valid {
		set["location"] = payload.Location.String
	}
	if payload.Status != nil {
		set["status"] = *payload.Status
	}
	if payload.AcquiredAt != nil {
		set["acquired_at"] = *payload.AcquiredAt
	}
	if payload.InstalledAt != nil {
		set["installed_at"] = *payload.InstalledAt
	}
	if payload.LastMaintenanceAt != nil {
		set["last_maintenance_at"] = *payload.LastMaintenanceAt
	}
	if payload.Critical != nil {
		set["critical"] = *payload.Critical
	}
	if payload.Active != nil {
		set["active"] = *payload.Active
	}

	query, args, err := psql.Update(equipmentTable).SetMap(set).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}

	result, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewValidationError("ya existe un equipo con ese código")
		}
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *equipmentRepository) DeleteEquipment(ctx context.Context, id uint64) error {
	query, args, err := psql.Delete(equipmentTable).Where(sq.Eq{"id": id}).ToSql()
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

// GetEquipmentStats junta los contadores de órdenes con la fecha del último
// mantenimiento. La próxima mantención es la fecha más temprana entre los
// planes activos del equipo.
func (r *equipmentRepository) GetEquipmentStats(ctx context.Context, id uint64) (*dto.EquipmentStatsDTO, error) {
	query := `
		SELECT
			e.name,
			COUNT(o.id),
			COUNT(o.id) FILTER (WHERE o.status = 'completed'),
			COALESCE(SUM(o.real_cost), 0),
			COALESCE(SUM(o.worked_hours), 0),
			e.last_maintenance_at
		FROM equipments e
		LEFT JOIN work_orders o ON o.equipment_id = e.id
		WHERE e.id = $1
		GROUP BY e.id
	`

	var stats dto.EquipmentStatsDTO
	var lastMaintenance *time.Time
	err := r.storage.QueryRow(ctx, query, id).Scan(
		&stats.EquipmentName,
		&stats.TotalOrders,
		&stats.CompletedOrders,
		&stats.TotalMaintenanceCost,
		&stats.TotalWorkedHours,
		&lastMaintenance,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error calculando estadísticas del equipo: %w", err)
	}

	if lastMaintenance != nil {
		stats.DaysWithoutMaintenance = int(time.Since(*lastMaintenance).Hours() / 24)
	}

	nextQuery := `
		SELECT next_maintenance_at
		FROM maintenance_plans
		WHERE equipment_id = $1 AND active = TRUE AND next_maintenance_at IS NOT NULL
		ORDER BY next_maintenance_at ASC
		LIMIT 1
	`
	var next time.Time
	err = r.storage.QueryRow(ctx, nextQuery, id).Scan(&next)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("error buscando la próxima mantención: %w", err)
	}
	if err == nil {
		stats.NextMaintenanceAt = &next
	}

	return &stats, nil
}
