package entities

import (
	"time"

	"maintenance-system/pkg/types"
)

type WorkOrder struct {
	ID             uint64     `json:"id"`
	CompanyID      uint64     `json:"company_id"`
	EquipmentID    uint64     `json:"equipment_id"`
	PlanID         *uint64    `json:"plan_id"`
	TechnicianID   *uint64    `json:"technician_id"`
	OrderNumber    string     `json:"order_number"`
	Description    string     `json:"description"`
	Status         string     `json:"status"`
	Priority       string     `json:"priority"`
	ScheduledAt    time.Time  `json:"scheduled_at"`
	StartedAt      *time.Time `json:"started_at"`
	FinishedAt     *time.Time `json:"finished_at"`
	WorkedHours    *float64   `json:"worked_hours"`
	Observations   *string    `json:"observations"`
	SparePartsUsed *string    `json:"spare_parts_used"`
	RealCost       *float64   `json:"real_cost"`

	types.BaseEntity
}
