package entities

import (
	"time"

	"maintenance-system/pkg/types"
)

type Technician struct {
	ID              uint64     `json:"id"`
	Name            string     `json:"name"`
	Surname         string     `json:"surname"`
	RUT             string     `json:"rut"`
	Email           string     `json:"email"`
	Phone           string     `json:"phone"`
	Specialty       string     `json:"specialty"`
	YearsExperience int        `json:"years_experience"`
	Certifications  *string    `json:"certifications"`
	UserID          *uint64    `json:"user_id"`
	Active          bool       `json:"active"`
	HiredAt         *time.Time `json:"hired_at"`

	types.BaseEntity

	// IDs de las empresas asociadas (tabla technician_companies)
	CompanyIDs []uint64 `db:"-" json:"company_ids,omitempty"`
}
