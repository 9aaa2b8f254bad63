package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedDemoData llena la base con un set chico de empresas, equipos, técnicos
// y planes para poder probar el API sin cargar datos a mano.
func SeedDemoData(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("▶️  Iniciando la carga de datos de demostración...")

	if err := seedCompanies(ctx, db); err != nil {
		log.Fatalf("❌ Error cargando empresas: %v", err)
	}
	if err := seedEquipments(ctx, db); err != nil {
		log.Fatalf("❌ Error cargando equipos: %v", err)
	}
	if err := seedTechnicians(ctx, db); err != nil {
		log.Fatalf("❌ Error cargando técnicos: %v", err)
	}
	if err := seedPlans(ctx, db); err != nil {
		log.Fatalf("❌ Error cargando planes de mantención: %v", err)
	}

	log.Println("✅ Datos de demostración cargados")
}

func seedCompanies(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Llenando la tabla 'companies'...")

	query := `INSERT INTO companies (name, rut, address, city, phone, email)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          ON CONFLICT (rut) DO NOTHING`
	for _, c := range companiesData {
		if _, err := db.Exec(ctx, query, c.Name, c.RUT, c.Address, c.City, c.Phone, c.Email); err != nil {
			return err
		}
	}
	return nil
}

func seedEquipments(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Llenando la tabla 'equipments'...")

	companiesMap, err := mapCompanyIDsByName(ctx, db)
	if err != nil {
		return err
	}

	query := `INSERT INTO equipments (company_id, name, code, type, brand, location, critical)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          ON CONFLICT (code) DO NOTHING`
	for _, e := range equipmentsData {
		companyID, ok := companiesMap[e.CompanyName]
		if !ok {
			log.Printf("ADVERTENCIA: empresa '%s' no encontrada, se omite el equipo '%s'.", e.CompanyName, e.Code)
			continue
		}
		if _, err := db.Exec(ctx, query, companyID, e.Name, e.Code, e.Type, e.Brand, e.Location, e.Critical); err != nil {
			return err
		}
	}
	return nil
}

func seedTechnicians(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Llenando la tabla 'technicians'...")

	companiesMap, err := mapCompanyIDsByName(ctx, db)
	if err != nil {
		return err
	}

	insert := `INSERT INTO technicians (name, surname, rut, email, phone, specialty, years_experience)
	           VALUES ($1, $2, $3, $4, $5, $6, $7)
	           ON CONFLICT (rut) DO NOTHING`
	link := `INSERT INTO technician_companies (technician_id, company_id)
	         VALUES ($1, $2) ON CONFLICT DO NOTHING`

	for _, t := range techniciansData {
		if _, err := db.Exec(ctx, insert, t.Name, t.Surname, t.RUT, t.Email, t.Phone, t.Specialty, t.YearsExperience); err != nil {
			return err
		}

		var technicianID uint64
		if err := db.QueryRow(ctx, "SELECT id FROM technicians WHERE rut = $1", t.RUT).Scan(&technicianID); err != nil {
			return err
		}
		for _, companyName := range t.Companies {
			companyID, ok := companiesMap[companyName]
			if !ok {
				log.Printf("ADVERTENCIA: empresa '%s' no encontrada para el técnico '%s %s'.", companyName, t.Name, t.Surname)
				continue
			}
			if _, err := db.Exec(ctx, link, technicianID, companyID); err != nil {
				return err
			}
		}
	}
	return nil
}

func seedPlans(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Llenando la tabla 'maintenance_plans'...")

	companiesMap, err := mapCompanyIDsByName(ctx, db)
	if err != nil {
		return err
	}
	equipmentsMap, err := mapEquipmentIDsByCode(ctx, db)
	if err != nil {
		return err
	}

	query := `INSERT INTO maintenance_plans
	          (company_id, equipment_id, name, type, frequency, frequency_days,
	           estimated_duration_hours, tasks, starts_at, next_maintenance_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), $9)
	          ON CONFLICT (equipment_id, name) DO NOTHING`
	for _, p := range plansData {
		companyID, ok := companiesMap[p.CompanyName]
		if !ok {
			log.Printf("ADVERTENCIA: empresa '%s' no encontrada, se omite el plan '%s'.", p.CompanyName, p.Name)
			continue
		}
		equipmentID, ok := equipmentsMap[p.EquipmentCode]
		if !ok {
			log.Printf("ADVERTENCIA: equipo '%s' no encontrado, se omite el plan '%s'.", p.EquipmentCode, p.Name)
			continue
		}
		if _, err := db.Exec(ctx, query, companyID, equipmentID, p.Name, p.Type, p.Frequency,
			p.FrequencyDays, p.DurationHours, p.Tasks, daysFromNow(p.NextInDays)); err != nil {
			return err
		}
	}
	return nil
}

func mapCompanyIDsByName(ctx context.Context, db *pgxpool.Pool) (map[string]uint64, error) {
	return mapIDs(ctx, db, "SELECT name, id FROM companies")
}

func mapEquipmentIDsByCode(ctx context.Context, db *pgxpool.Pool) (map[string]uint64, error) {
	return mapIDs(ctx, db, "SELECT code, id FROM equipments")
}

func mapIDs(ctx context.Context, db *pgxpool.Pool, query string) (map[string]uint64, error) {
	rows, err := db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[string]uint64)
	for rows.Next() {
		var key string
		var id uint64
		if err := rows.Scan(&key, &id); err != nil {
			return nil, err
		}
		result[key] = id
	}
	return result, rows.Err()
}
