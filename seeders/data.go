package seeders

import (
	"time"

	"maintenance-system/pkg/constants"
)

type companySeed struct {
	Name    string
	RUT     string
	Address string
	City    string
	Phone   string
	Email   string
}

type equipmentSeed struct {
	CompanyName string
	Name        string
	Code        string
	Type        string
	Brand       string
	Location    string
	Critical    bool
}

type technicianSeed struct {
	Name            string
	Surname         string
	RUT             string
	Email           string
	Phone           string
	Specialty       string
	YearsExperience int
	Companies       []string
}

type planSeed struct {
	CompanyName   string
	EquipmentCode string
	Name          string
	Type          string
	Frequency     string
	FrequencyDays int
	DurationHours float64
	Tasks         string
	NextInDays    int
}

var companiesData = []companySeed{
	{"Minera Andina", "76543210-3", "Av. Apoquindo 4500", "Santiago", "+56 2 2345 6700", "contacto@mineraandina.cl"},
	{"Pesquera del Sur", "81234567-2", "Camino Costero 120", "Puerto Montt", "+56 65 223 4455", "operaciones@pesquerasur.cl"},
	{"Agroindustrial Maule", "77889900-0", "Ruta 5 Sur km 250", "Talca", "+56 71 267 8899", "info@agromaule.cl"},
}

var equipmentsData = []equipmentSeed{
	{"Minera Andina", "Chancador primario", "CH-001", "crusher", "Metso", "Planta 1", true},
	{"Minera Andina", "Correa transportadora", "CT-014", "conveyor", "FLSmidth", "Planta 1", false},
	{"Pesquera del Sur", "Compresor de frío", "CF-003", "compressor", "Bitzer", "Sala de máquinas", true},
	{"Pesquera del Sur", "Generador de respaldo", "GE-002", "generator", "Caterpillar", "Patio exterior", false},
	{"Agroindustrial Maule", "Bomba de riego", "BR-010", "pump", "Grundfos", "Sector norte", false},
}

var techniciansData = []technicianSeed{
	{"Pedro", "Soto", "12345678-5", "pedro.soto@mantencion.cl", "+56 9 8765 4321", constants.SpecialtyMechanical, 12, []string{"Minera Andina", "Agroindustrial Maule"}},
	{"Carla", "Muñoz", "15678234-3", "carla.munoz@mantencion.cl", "+56 9 1234 5678", constants.SpecialtyElectrical, 8, []string{"Minera Andina", "Pesquera del Sur"}},
	{"Jorge", "Riquelme", "17890123-0", "jorge.riquelme@mantencion.cl", "+56 9 5555 1212", constants.SpecialtyElectromechanic, 5, []string{"Pesquera del Sur"}},
}

var plansData = []planSeed{
	{"Minera Andina", "CH-001", "Inspección mensual chancador", constants.PlanPreventive, constants.FrequencyMonthly, 30, 6, "Revisar desgaste de mandíbulas; lubricar rodamientos; medir vibraciones", 15},
	{"Pesquera del Sur", "CF-003", "Mantención trimestral compresor", constants.PlanPreventive, constants.FrequencyQuarterly, 90, 4, "Cambiar filtros; revisar carga de refrigerante; probar presostatos", 45},
	{"Agroindustrial Maule", "BR-010", "Revisión semanal bomba", constants.PlanPredictive, constants.FrequencyWeekly, 7, 1, "Verificar caudal y presión; revisar sellos", 5},
}

func daysFromNow(days int) time.Time {
	return time.Now().AddDate(0, 0, days)
}
