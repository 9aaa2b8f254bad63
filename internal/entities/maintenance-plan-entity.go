package entities

import (
	"time"

	"maintenance-system/pkg/types"
)

type MaintenancePlan struct {
	ID                     uint64     `json:"id"`
	CompanyID              uint64     `json:"company_id"`
	EquipmentID            uint64     `json:"equipment_id"`
	Name                   string     `json:"name"`
	Description            *string    `json:"description"`
	Type                   string     `json:"type"`
	Frequency              string     `json:"frequency"`
	FrequencyDays          int        `json:"frequency_days"`
	EstimatedDurationHours float64    `json:"estimated_duration_hours"`
	Tasks                  string     `json:"tasks"`
	RequiredTools          *string    `json:"required_tools"`
	CommonSpareParts       *string    `json:"common_spare_parts"`
	EstimatedCost          *float64   `json:"estimated_cost"`
	Active                 bool       `json:"active"`
	StartsAt               time.Time  `json:"starts_at"`
	NextMaintenanceAt      *time.Time `json:"next_maintenance_at"`

	types.BaseEntity

	// Técnicos recomendados (tabla plan_technicians)
	TechnicianIDs []uint64 `db:"-" json:"technician_ids,omitempty"`
}
