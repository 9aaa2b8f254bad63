package dto

import (
	"time"

	"github.com/aarondl/null/v8"
)

type CreateMaintenancePlanDTO struct {
	CompanyID              uint64       `json:"company_id" validate:"required"`
	EquipmentID            uint64       `json:"equipment_id" validate:"required"`
	Name                   string       `json:"name" validate:"required,max=200"`
	Description            null.String  `json:"description"`
	Type                   string       `json:"type" validate:"omitempty,oneof=preventive corrective predictive"`
	Frequency              string       `json:"frequency" validate:"required,oneof=daily weekly biweekly monthly quarterly semiannual annual other"`
	FrequencyDays          int          `json:"frequency_days" validate:"omitempty,gt=0"`
	EstimatedDurationHours float64      `json:"estimated_duration_hours" validate:"omitempty,gte=0"`
	Tasks                  string       `json:"tasks" validate:"required"`
	RequiredTools          null.String  `json:"required_tools"`
	CommonSpareParts       null.String  `json:"common_spare_parts"`
	EstimatedCost          null.Float64 `json:"estimated_cost" validate:"omitempty,gte=0"`
	Active                 *bool        `json:"active"`
	StartsAt               time.Time    `json:"starts_at" validate:"required"`
	NextMaintenanceAt      *time.Time   `json:"next_maintenance_at"`
	TechnicianIDs          []uint64     `json:"technician_ids"`
}

type UpdateMaintenancePlanDTO struct {
	Name                   *string      `json:"name,omitempty" validate:"omitempty,max=200"`
	Description            null.String  `json:"description,omitempty"`
	Type                   *string      `json:"type,omitempty" validate:"omitempty,oneof=preventive corrective predictive"`
	Frequency              *string      `json:"frequency,omitempty" validate:"omitempty,oneof=daily weekly biweekly monthly quarterly semiannual annual other"`
	FrequencyDays          *int         `json:"frequency_days,omitempty" validate:"omitempty,gt=0"`
	EstimatedDurationHours *float64     `json:"estimated_duration_hours,omitempty" validate:"omitempty,gte=0"`
	Tasks                  *string      `json:"tasks,omitempty"`
	RequiredTools          null.String  `json:"required_tools,omitempty"`
	CommonSpareParts       null.String  `json:"common_spare_parts,omitempty"`
	EstimatedCost          null.Float64 `json:"estimated_cost,omitempty" validate:"omitempty,gte=0"`
	Active                 *bool        `json:"active,omitempty"`
	StartsAt               *time.Time   `json:"starts_at,omitempty"`
	NextMaintenanceAt      *time.Time   `json:"next_maintenance_at,omitempty"`
	TechnicianIDs          []uint64     `json:"technician_ids,omitempty"`
}
