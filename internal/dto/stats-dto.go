package dto

import "time"

// CompanyStatsDTO replica el bloque de estadísticas de una empresa.
type CompanyStatsDTO struct {
	TotalEquipments   uint64  `json:"total_equipments"`
	TotalPlans        uint64  `json:"total_plans"`
	TotalOrders       uint64  `json:"total_orders"`
	PendingOrders     uint64  `json:"pending_orders"`
	InProgressOrders  uint64  `json:"in_progress_orders"`
	CompletedOrders   uint64  `json:"completed_orders"`
	TotalOrdersCost   float64 `json:"total_orders_cost"`
	TotalWorkedHours  float64 `json:"total_worked_hours"`
}

// EquipmentStatsDTO replica el bloque de estadísticas de un equipo.
type EquipmentStatsDTO struct {
	EquipmentName          string     `json:"equipment_name"`
	TotalOrders            uint64     `json:"total_orders"`
	CompletedOrders        uint64     `json:"completed_orders"`
	DaysWithoutMaintenance int        `json:"days_without_maintenance"`
	NextMaintenanceAt      *time.Time `json:"next_maintenance_at"`
	TotalMaintenanceCost   float64    `json:"total_maintenance_cost"`
	TotalWorkedHours       float64    `json:"total_worked_hours"`
}
