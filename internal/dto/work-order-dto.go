package dto

import (
	"time"

	"github.com/aarondl/null/v8"
)

type CreateWorkOrderDTO struct {
	CompanyID      uint64       `json:"company_id" validate:"required"`
	EquipmentID    uint64       `json:"equipment_id" validate:"required"`
	PlanID         null.Int64   `json:"plan_id"`
	TechnicianID   null.Int64   `json:"technician_id"`
	Description    string       `json:"description" validate:"required"`
	Status         string       `json:"status" validate:"omitempty,oneof=scheduled in_progress paused completed cancelled pending"`
	Priority       string       `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	ScheduledAt    time.Time    `json:"scheduled_at" validate:"required"`
	StartedAt      *time.Time   `json:"started_at"`
	FinishedAt     *time.Time   `json:"finished_at"`
	WorkedHours    null.Float64 `json:"worked_hours" validate:"omitempty,gte=0"`
	Observations   null.String  `json:"observations"`
	SparePartsUsed null.String  `json:"spare_parts_used"`
	RealCost       null.Float64 `json:"real_cost" validate:"omitempty,gte=0"`
}

// CompleteWorkOrderDTO es el cuerpo opcional de la acción de completar:
// permite cerrar la orden registrando de una vez el resultado del trabajo.
type CompleteWorkOrderDTO struct {
	WorkedHours    null.Float64 `json:"worked_hours" validate:"omitempty,gte=0"`
	Observations   null.String  `json:"observations"`
	SparePartsUsed null.String  `json:"spare_parts_used"`
	RealCost       null.Float64 `json:"real_cost" validate:"omitempty,gte=0"`
}

type UpdateWorkOrderDTO struct {
	EquipmentID    *uint64      `json:"equipment_id,omitempty" validate:"omitempty,gt=0"`
	PlanID         null.Int64   `json:"plan_id,omitempty"`
	TechnicianID   null.Int64   `json:"technician_id,omitempty"`
	Description    *string      `json:"description,omitempty"`
	Status         *string      `json:"status,omitempty" validate:"omitempty,oneof=scheduled in_progress paused completed cancelled pending"`
	Priority       *string      `json:"priority,omitempty" validate:"omitempty,oneof=low medium high urgent"`
	ScheduledAt    *time.Time   `json:"scheduled_at,omitempty"`
	StartedAt      *time.Time   `json:"started_at,omitempty"`
	FinishedAt     *time.Time   `json:"finished_at,omitempty"`
	WorkedHours    null.Float64 `json:"worked_hours,omitempty" validate:"omitempty,gte=0"`
	Observations   null.String  `json:"observations,omitempty"`
	SparePartsUsed null.String  `json:"spare_parts_used,omitempty"`
	RealCost       null.Float64 `json:"real_cost,omitempty" validate:"omitempty,gte=0"`
}
