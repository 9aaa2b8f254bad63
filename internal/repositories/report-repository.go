package repositories

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"maintenance-system/internal/dto"
	"maintenance-system/pkg/types"
)

var allowedReportFilters = map[string]string{
	"company":    "o.company_id",
	"equipment":  "o.equipment_id",
	"technician": "o.technician_id",
	"status":     "o.status",
	"priority":   "o.priority",
}

type ReportRepositoryInterface interface {
	GetWorkOrderReportRows(ctx context.Context, filter types.Filter) ([]dto.WorkOrderReportRow, error)
}

type reportRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewReportRepository(storage *pgxpool.Pool, logger *zap.Logger) ReportRepositoryInterface {
	return &reportRepository{storage: storage, logger: logger}
}

// GetWorkOrderReportRows arma las filas planas del reporte de órdenes,
// con los nombres de empresa, equipo y técnico ya resueltos.
func (r *reportRepository) GetWorkOrderReportRows(ctx context.Context, filter types.Filter) ([]dto.WorkOrderReportRow, error) {
	builder := psql.Select(
		"o.order_number",
		"c.name",
		"e.name",
		"e.code",
		"COALESCE(t.name || ' ' || t.surname, '')",
		"o.status",
		"o.priority",
		"o.scheduled_at",
		"o.started_at",
		"o.finished_at",
		"COALESCE(o.worked_hours, 0)",
		"COALESCE(o.real_cost, 0)",
	).
		From(workOrderTable + " o").
		Join("companies c ON c.id = o.company_id").
		Join("equipments e ON e.id = o.equipment_id").
		LeftJoin("technicians t ON t.id = o.technician_id").
		OrderBy("o.scheduled_at DESC")

	for key, val := range filter.Filter {
		col, ok := allowedReportFilters[key]
		if !ok {
			continue
		}
		builder = builder.Where(sq.Eq{col: val})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error armando SQL del reporte: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	report := make([]dto.WorkOrderReportRow, 0)
	for rows.Next() {
		var row dto.WorkOrderReportRow
		var scheduledAt time.Time
		var startedAt, finishedAt *time.Time
		err := rows.Scan(
			&row.OrderNumber, &row.CompanyName, &row.EquipmentName, &row.EquipmentCode,
			&row.Technician, &row.Status, &row.Priority,
			&scheduledAt, &startedAt, &finishedAt,
			&row.WorkedHours, &row.RealCost,
		)
		if err != nil {
			return nil, fmt.Errorf("error escaneando fila del reporte: %w", err)
		}
		row.ScheduledAt = scheduledAt.Format("2006-01-02 15:04")
		if startedAt != nil {
			row.StartedAt = startedAt.Format("2006-01-02 15:04")
		}
		if finishedAt != nil {
			row.FinishedAt = finishedAt.Format("2006-01-02 15:04")
		}
		report = append(report, row)
	}
	return report, rows.Err()
}
