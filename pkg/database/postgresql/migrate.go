package postgresql

import (
	"database/sql"
	"fmt"
	"io/fs"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// RunMigrations aplica las migraciones embebidas con goose.
// Usa una conexión database/sql aparte porque goose no habla pgxpool.
func RunMigrations(dsn string, migrations fs.FS) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("no se pudo abrir la conexión para migraciones: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("no se pudo fijar el dialecto de goose: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("error aplicando migraciones: %w", err)
	}
	return nil
}
