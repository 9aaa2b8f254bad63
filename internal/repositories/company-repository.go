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
	apperrors "maintenance-system/pkg/errors"
	"maintenance-system/pkg/types"
)

const (
	companyTable  = "companies"
	companyFields = "id, name, description, rut, phone, email, address, city, main_contact, active, created_at, updated_at"
)

var allowedCompanyFilters = map[string]string{
	"active": "active",
	"city":   "city",
}

var allowedCompanySortFields = map[string]bool{
	"id":         true,
	"name":       true,
	"created_at": true,
	"updated_at": true,
}

var companySearchCols = []string{"name", "rut", "email", "city"}

type CompanyRepositoryInterface interface {
	GetCompanies(ctx context.Context, filter types.Filter) ([]*entities.Company, uint64, error)
	FindCompany(ctx context.Context, id uint64) (*entities.Company, error)
	CreateCompany(ctx context.Context, payload dto.CreateCompanyDTO) (uint64, error)
	UpdateCompany(ctx context.Context, id uint64, payload dto.UpdateCompanyDTO) error
	DeleteCompany(ctx context.Context, id uint64) error
	GetCompanyStats(ctx context.Context, id uint64) (*dto.CompanyStatsDTO, error)
}

type companyRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewCompanyRepository(storage *pgxpool.Pool, logger *zap.Logger) CompanyRepositoryInterface {
	return &companyRepository{storage: storage, logger: logger}
}

func (r *companyRepository) scanRow(row pgx.Row) (*entities.Company, error) {
	var c entities.Company
	err := row.Scan(
		&c.ID, &c.Name, &c.Description, &c.RUT, &c.Phone, &c.Email,
		&c.Address, &c.City, &c.MainContact, &c.Active,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error escaneando companies: %w", err)
	}
	return &c, nil
}

func (r *companyRepository) GetCompanies(ctx context.Context, filter types.Filter) ([]*entities.Company, uint64, error) {
	conds := buildWhere(filter, allowedCompanyFilters, companySearchCols)

	countBuilder := psql.Select("COUNT(*)").From(companyTable)
	listBuilder := psql.Select(companyFields).From(companyTable)
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

	listBuilder = applySort(listBuilder, filter.Sort, allowedCompanySortFields, "created_at DESC")
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

	companies := make([]*entities.Company, 0)
	for rows.Next() {
		c, err := r.scanRow(rows)
		if err != nil {
			return nil, 0, err
		}
		companies = append(companies, c)
	}
	return companies, total, rows.Err()
}

func (r *companyRepository) FindCompany(ctx context.Context, id uint64) (*entities.Company, error) {
	query, args, err := psql.Select(companyFields).From(companyTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	return r.scanRow(r.storage.QueryRow(ctx, query, args...))
}

func (r *companyRepository) CreateCompany(ctx context.Context, payload dto.CreateCompanyDTO) (uint64, error) {
	active := true
	if payload.Active != nil {
		active = *payload.Active
	}

	query, args, err := psql.Insert(companyTable).
		Columns("name", "description", "rut", "phone", "email", "address", "city", "main_contact", "active").
		Values(payload.Name, payload.Description.Ptr(), payload.RUT, payload.Phone.Ptr(),
			payload.Email.Ptr(), payload.Address.Ptr(), payload.City.Ptr(),
			payload.MainContact.Ptr(), active).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, err
	}

	var id uint64
	if err := r.storage.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		if isUniqueViolation(err) {
			return 0, apperrors.NewValidationError("ya existe una empresa con ese nombre o RUT")
		}
		return 0, err
	}
	return id, nil
}

func (r *companyRepository) UpdateCompany(ctx context.Context, id uint64, payload dto.UpdateCompanyDTO) error {
	set := map[string]interface{}{"updated_at": sq.Expr("now()")}
	if payload.Name != nil {
		set["name"] = *payload.Name
	}
	if payload.Description.Valid {
		set["description"] = payload.Description.String
	}
	if payload.RUT != nil {
		set["rut"] = *payload.RUT
	}
	if payload.Phone.Valid {
		set["phone"] = payload.Phone.String
	}
	if payload.Email.Valid {
		set["email"] = payload.Email.String
	}
	if payload.Address.Valid {
		set["address"] = payload.Address.String
	}
	if payload.City.Valid {
		set["city"] = payload.City.String
	}
	if payload.MainContact.Valid {
		set["main_contact"] = payload.MainContact.String
	}
	if payload.Active != nil {
		set["active"] = *payload.Active
	}

	query, args, err := psql.Update(companyTable).SetMap(set).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}

	result, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewValidationError("ya existe una empresa con ese nombre o RUT")
		}
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *companyRepository) DeleteCompany(ctx context.Context, id uint64) error {
	query, args, err := psql.Delete(companyTable).Where(sq.Eq{"id": id}).ToSql()
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

// GetCompanyStats calcula las estadísticas de la empresa en una sola pasada.
// Lectura puntual, sin caché.
func (r *companyRepository) GetCompanyStats(ctx context.Context, id uint64) (*dto.CompanyStatsDTO, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM equipments WHERE company_id = $1),
			(SELECT COUNT(*) FROM maintenance_plans WHERE company_id = $1),
			COUNT(o.id),
			COUNT(o.id) FILTER (WHERE o.status IN ('scheduled', 'pending')),
			COUNT(o.id) FILTER (WHERE o.status = 'in_progress'),
			COUNT(o.id) FILTER (WHERE o.status = 'completed'),
			COALESCE(SUM(o.real_cost), 0),
			COALESCE(SUM(o.worked_hours), 0)
		FROM work_orders o
		WHERE o.company_id = $1
	`

	var stats dto.CompanyStatsDTO
	err := r.storage.QueryRow(ctx, query, id).Scan(
		&stats.TotalEquipments,
		&stats.TotalPlans,
		&stats.TotalOrders,
		&stats.PendingOrders,
		&stats.InProgressOrders,
		&stats.CompletedOrders,
		&stats.TotalOrdersCost,
		&stats.TotalWorkedHours,
	)
	if err != nil {
		return nil, fmt.Errorf("error calculando estadísticas de la empresa: %w", err)
	}
	return &stats, nil
}
