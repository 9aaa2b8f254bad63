package constants

// --- ESTADOS DE EQUIPOS (coinciden con el CHECK en la BD) ---
const (
	EquipmentOperational  = "operational"
	EquipmentMaintenance  = "in_maintenance"
	EquipmentRepair       = "in_repair"
	EquipmentOutOfService = "out_of_service"
	EquipmentInactive     = "inactive"
)

// --- ESPECIALIDADES DE TÉCNICOS ---
const (
	SpecialtyMechanical      = "mechanical"
	SpecialtyElectrical      = "electrical"
	SpecialtyHydraulic       = "hydraulic"
	SpecialtyElectromechanic = "electromechanical"
	SpecialtyGeneral         = "general"
	SpecialtyOther           = "other"
)

// --- TIPOS DE PLANES DE MANTENIMIENTO ---
const (
	PlanPreventive = "preventive"
	PlanCorrective = "corrective"
	PlanPredictive = "predictive"
)

// --- FRECUENCIAS DE PLANES ---
const (
	FrequencyDaily      = "daily"
	FrequencyWeekly     = "weekly"
	FrequencyBiweekly   = "biweekly"
	FrequencyMonthly    = "monthly"
	FrequencyQuarterly  = "quarterly"
	FrequencySemiannual = "semiannual"
	FrequencyAnnual     = "annual"
	FrequencyOther      = "other"
)
