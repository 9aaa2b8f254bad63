package repositories

import (
	"errors"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"

	"maintenance-system/pkg/types"
)

// psql: todos los queries usan placeholders $1, $2, ...
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildWhere arma las condiciones a partir del filtro, respetando el
// whitelist de columnas (protección contra SQL Injection).
func buildWhere(filter types.Filter, allowed map[string]string, searchCols []string) []sq.Sqlizer {
	conds := []sq.Sqlizer{}

	for key, val := range filter.Filter {
		col, ok := allowed[key]
		if !ok {
			continue
		}
		conds = append(conds, sq.Eq{col: val})
	}

	if filter.Search != "" && len(searchCols) > 0 {
		or := sq.Or{}
		for _, col := range searchCols {
			or = append(or, sq.ILike{col: "%" + filter.Search + "%"})
		}
		conds = append(conds, or)
	}

	return conds
}

func applySort(b sq.SelectBuilder, sort map[string]string, allowed map[string]bool, fallback string) sq.SelectBuilder {
	applied := false
	for field, dir := range sort {
		if !allowed[field] {
			continue
		}
		b = b.OrderBy(field + " " + strings.ToUpper(dir))
		applied = true
	}
	if !applied {
		b = b.OrderBy(fallback)
	}
	return b
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
