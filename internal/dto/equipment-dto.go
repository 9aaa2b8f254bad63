package dto

import (
	"time"

	"github.com/aarondl/null/v8"
)

type CreateEquipmentDTO struct {
	CompanyID    uint64      `json:"company_id" validate:"required"`
	Name         string      `json:"name" validate:"required,max=200"`
	Code         string      `json:"code" validate:"required,max=50"`
	Description  null.String `json:"description"`
	Type         string      `json:"type" validate:"required,max=100"`
	Brand        null.String `json:"brand" validate:"omitempty,max=100"`
	Model        null.String `json:"model" validate:"omitempty,max=100"`
	SerialNumber null.String `json:"serial_number" validate:"omitempty,max=100"`
	Location     null.String `json:"location" validate:"omitempty,max=300"`
	Status       string      `json:"status" validate:"omitempty,oneof=operational in_maintenance in_repair out_of_service inactive"`
	AcquiredAt   *time.Time  `json:"acquired_at"`
	InstalledAt  *time.Time  `json:"installed_at"`
	Critical     *bool       `json:"critical"`
	Active       *bool       `json:"active"`
}

type UpdateEquipmentDTO struct {
	Name              *string     `json:"name,omitempty" validate:"omitempty,max=200"`
	Code              *string     `json:"code,omitempty" validate:"omitempty,max=50"`
	Description       null.String `json:"description,omitempty"`
	Type              *string     `json:"type,omitempty" validate:"omitempty,max=100"`
	Brand             null.String `json:"brand,omitempty" validate:"omitempty,max=100"`
	Model             null.String `json:"model,omitempty" validate:"omitempty,max=100"`
	SerialNumber      null.String `json:"serial_number,omitempty" validate:"omitempty,max=100"`
	Location          null.String `json:"location,omitempty" validate:"omitempty,max=300"`
	Status            *string     `json:"status,omitempty" validate:"omitempty,oneof=operational in_maintenance in_repair out_of_service inactive"`
	AcquiredAt        *time.Time  `json:"acquired_at,omitempty"`
	InstalledAt       *time.Time  `json:"installed_at,omitempty"`
	LastMaintenanceAt *time.Time  `json:"last_maintenance_at,omitempty"`
	Critical          *bool       `json:"critical,omitempty"`
	Active            *bool       `json:"active,omitempty"`
}
