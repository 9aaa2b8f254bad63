package entities

import (
	"time"

	"maintenance-system/pkg/types"
)

type Equipment struct {
	ID                uint64     `json:"id"`
	CompanyID         uint64     `json:"company_id"`
	Name              string     `json:"name"`
	Code              string     `json:"code"`
	Description       *string    `json:"description"`
	Type              string     `json:"type"`
	Brand             *string    `json:"brand"`
	Model             *string    `json:"model"`
	SerialNumber      *string    `json:"serial_number"`
	Location          *string    `json:"location"`
	Status            string     `json:"status"`
	AcquiredAt        *time.Time `json:"acquired_at"`
	InstalledAt       *time.Time `json:"installed_at"`
	LastMaintenanceAt *time.Time `json:"last_maintenance_at"`
	Critical          bool       `json:"critical"`
	Active            bool       `json:"active"`

	types.BaseEntity
}
