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
	technicianTable          = "technicians"
	technicianFields         = "id, name, surname, rut, email, phone, specialty, years_experience, certifications, user_id, active, hired_at, created_at, updated_at"
	technicianCompaniesTable = "technician_companies"
)

var allowedTechnicianFilters = map[string]string{
	"specialty": "specialty",
	"active":    "active",
}

var allowedTechnicianSortFields = map[string]bool{
	"id":               true,
	"name":             true,
	"surname":          true,
	"specialty":        true,
	"years_experience": true,
	"hired_at":         true,
	"created_at":       true,
}

var technicianSearchCols = []string{"name", "surname", "rut", "email"}

type TechnicianRepositoryInterface interface {
	GetTechnicians(ctx context.Context, filter types.Filter) ([]*entities.Technician, uint64, error)
	GetTechniciansByCompany(ctx context.Context, companyID uint64, filter types.Filter) ([]*entities.Technician, uint64, error)
	FindTechnician(ctx context.Context, id uint64) (*entities.Technician, error)
	CreateTechnician(ctx context.Context, payload dto.CreateTechnicianDTO) (uint64, error)
	UpdateTechnician(ctx context.Context, id uint64, payload dto.UpdateTechnicianDTO) error
	DeleteTechnician(ctx context.Context, id uint64) error
	GetCompanyIDs(ctx context.Context, technicianID uint64) ([]uint64, error)
	AssignCompany(ctx context.Context, technicianID, companyID uint64) error
	UnassignCompany(ctx context.Context, technicianID, companyID uint64) error
}

type technicianRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewTechnicianRepository(storage *pgxpool.Pool, logger *zap.Logger) TechnicianRepositoryInterface {
	return &technicianRepository{storage: storage, logger: logger}
}

func (r *technicianRepository) scanRow(row pgx.Row) (*entities.Technician, error) {
	var t entities.Technician
	err := row.Scan(
		&t.ID, &t.Name, &t.Surname, &t.RUT, &t.Email, &t.Phone,
		&t.Specialty, &t.YearsExperience, &t.Certifications, &t.UserID,
		&t.Active, &t.HiredAt, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error escaneando technicians: %w", err)
	}
	return &t, nil
}

func (r *technicianRepository) list(ctx context.Context, filter types.Filter, extra ...sq.Sqlizer) ([]*entities.Technician, uint64, error) {
	conds := buildWhere(filter, allowedTechnicianFilters, technicianSearchCols)
	conds = append(conds, extra...)

	countBuilder := psql.Select("COUNT(*)").From(technicianTable)
	listBuilder := psql.Select(technicianFields).From(technicianTable)
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

	listBuilder = applySort(listBuilder, filter.Sort, allowedTechnicianSortFields, "surname ASC, name ASC")
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

	technicians := make([]*entities.Technician, 0)
	for rows.Next() {
		t, err := r.scanRow(rows)
		if err != nil {
			return nil, 0, err
		}
		technicians = append(technicians, t)
	}
	return technicians, total, rows.Err()
}

func (r *technicianRepository) GetTechnicians(ctx context.Context, filter types.Filter) ([]*entities.Technician, uint64, error) {
	return r.list(ctx, filter)
}

func (r *technicianRepository) GetTechniciansByCompany(ctx context.Context, companyID uint64, filter types.Filter) ([]*entities.Technician, uint64, error) {
	sub := sq.Expr("id IN (SELECT technician_id FROM technician_companies WHERE company_id = ?)", companyID)
	return r.list(ctx, filter, sub)
}

func (r *technicianRepository) FindTechnician(ctx context.Context, id uint64) (*entities.Technician, error) {
	query, args, err := psql.Select(technicianFields).From(technicianTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	t, err := r.scanRow(r.storage.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, err
	}
	t.CompanyIDs, err = r.GetCompanyIDs(ctx, t.ID)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *technicianRepository) CreateTechnician(ctx context.Context, payload dto.CreateTechnicianDTO) (uint64, error) {
	active := true
	if payload.Active != nil {
		active = *payload.Active
	}

	var id uint64
	err := WithTx(ctx, r.storage, func(tx pgx.Tx) error {
		query, args, err := psql.Insert(technicianTable).
			Columns("name", "surname", "rut", "email", "phone", "specialty",
				"years_experience", "certifications", "user_id", "active", "hired_at").
			Values(payload.Name, payload.Surname, payload.RUT, payload.Email, payload.Phone,
				payload.Specialty, payload.YearsExperience, payload.Certifications.Ptr(),
				payload.UserID.Ptr(), active, payload.HiredAt).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return err
		}
		if err := tx.QueryRow(ctx, query, args...).Scan(&id); err != nil {
			if isUniqueViolation(err) {
				return apperrors.NewValidationError("ya existe un técnico con ese RUT o email")
			}
			return err
		}
		return r.replaceCompanies(ctx, tx, id, payload.CompanyIDs)
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *technicianRepository) UpdateTechnician(ctx context.Context, id uint64, payload dto.UpdateTechnicianDTO) error {
	set := map[string]interface{}{"updated_at": sq.Expr("now()")}
	if payload.Name != nil {
		set["name"] = *payload.Name
	}
	if payload.Surname != nil {
		set["surname"] = *payload.Surname
	}
	if payload.RUT != nil {
		set["rut"] = *payload.RUT
	}
	if payload.Email != nil {
		set["email"] = *payload.Email
	}
	if payload.Phone != nil {
		set["phone"] = *payload.Phone
	}
	if payload.Specialty != nil {
		set["specialty"] = *payload.Specialty
	}
	if payload.YearsExperience != nil {
		set["years_experience"] = *payload.YearsExperience
	}
	if payload.Certifications.Valid {
		set["certifications"] = payload.Certifications.String
	}
	if payload.UserID.Valid {
		set["user_id"] = payload.UserID.Int64
	}
	if payload.Active != nil {
		set["active"] = *payload.Active
	}
	if payload.HiredAt != nil {
		set["hired_at"] = *payload.HiredAt
	}

	return WithTx(ctx, r.storage, func(tx pgx.Tx) error {
		query, args, err := psql.Update(technicianTable).SetMap(set).Where(sq.Eq{"id": id}).ToSql()
		if err != nil {
			return err
		}
		result, err := tx.Exec(ctx, query, args...)
		if err != nil {
			if isUniqueViolation(err) {
				return apperrors.NewValidationError("ya existe un técnico con ese RUT o email")
			}
			return err
		}
		if result.RowsAffected() == 0 {
			return apperrors.ErrNotFound
		}
		if payload.CompanyIDs != nil {
			return r.replaceCompanies(ctx, tx, id, payload.CompanyIDs)
		}
		return nil
	})
}

func (r *technicianRepository) DeleteTechnician(ctx context.Context, id uint64) error {
	query, args, err := psql.Delete(technicianTable).Where(sq.Eq{"id": id}).ToSql()
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

func (r *technicianRepository) GetCompanyIDs(ctx context.Context, technicianID uint64) ([]uint64, error) {
	rows, err := r.storage.Query(ctx,
		"SELECT company_id FROM technician_companies WHERE technician_id = $1 ORDER BY company_id", technicianID)
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

// AssignCompany agrega una asociación técnico-empresa. Es idempotente.
func (r *technicianRepository) AssignCompany(ctx context.Context, technicianID, companyID uint64) error {
	query, args, err := psql.Insert(technicianCompaniesTable).
		Columns("technician_id", "company_id").
		Values(technicianID, companyID).
		Suffix("ON CONFLICT DO NOTHING").
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.storage.Exec(ctx, query, args...); err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *technicianRepository) UnassignCompany(ctx context.Context, technicianID, companyID uint64) error {
	query, args, err := psql.Delete(technicianCompaniesTable).
		Where(sq.Eq{"technician_id": technicianID, "company_id": companyID}).
		ToSql()
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

// replaceCompanies reemplaza completas las asociaciones técnico-empresa.
func (r *technicianRepository) replaceCompanies(ctx context.Context, q Querier, technicianID uint64, companyIDs []uint64) error {
	if _, err := q.Exec(ctx, "DELETE FROM technician_companies WHERE technician_id = $1", technicianID); err != nil {
		return err
	}
	if len(companyIDs) == 0 {
		return nil
	}
	builder := psql.Insert(technicianCompaniesTable).Columns("technician_id", "company_id")
	for _, companyID := range companyIDs {
		builder = builder.Values(technicianID, companyID)
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return err
	}
	if _, err := q.Exec(ctx, query, args...); err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.NewValidationError("alguna de las empresas indicadas no existe")
		}
		if isUniqueViolation(err) {
			return apperrors.NewValidationError("hay empresas repetidas en la lista")
		}
		return err
	}
	return nil
}
