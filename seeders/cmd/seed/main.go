package main

import (
	"flag"
	"log"

	"maintenance-system/pkg/config"
	"maintenance-system/pkg/database/postgresql"
	"maintenance-system/seeders"
)

func main() {
	runDemo := flag.Bool("demo", false, "Cargar datos de demostración (empresas, equipos, técnicos, planes)")
	flag.Parse()

	if !*runDemo {
		log.Println("No se indicó ningún seeder.")
		log.Println("")
		flag.PrintDefaults()
		log.Println("")
		log.Println("Ejemplo: go run ./seeders/cmd/seed -demo")
		return
	}

	cfg := config.New()
	log.Println("📦 Usando DSN:", cfg.Postgres.DSN)
	dbPool := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbPool.Close()

	seeders.SeedDemoData(dbPool)
}
