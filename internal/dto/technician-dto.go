package dto

import (
	"time"

	"github.com/aarondl/null/v8"
)

type CreateTechnicianDTO struct {
	Name            string      `json:"name" validate:"required,max=200"`
	Surname         string      `json:"surname" validate:"required,max=200"`
	RUT             string      `json:"rut" validate:"required,rut"`
	Email           string      `json:"email" validate:"required,email"`
	Phone           string      `json:"phone" validate:"required,max=20"`
	Specialty       string      `json:"specialty" validate:"required,oneof=mechanical electrical hydraulic electromechanical general other"`
	YearsExperience int         `json:"years_experience" validate:"gte=0"`
	Certifications  null.String `json:"certifications"`
	UserID          null.Int64  `json:"user_id"`
	Active          *bool       `json:"active"`
	HiredAt         *time.Time  `json:"hired_at"`
	CompanyIDs      []uint64    `json:"company_ids"`
}

type UpdateTechnicianDTO struct {
	Name            *string     `json:"name,omitempty" validate:"omitempty,max=200"`
	Surname         *string     `json:"surname,omitempty" validate:"omitempty,max=200"`
	RUT             *string     `json:"rut,omitempty" validate:"omitempty,rut"`
	Email           *string     `json:"email,omitempty" validate:"omitempty,email"`
	Phone           *string     `json:"phone,omitempty" validate:"omitempty,max=20"`
	Specialty       *string     `json:"specialty,omitempty" validate:"omitempty,oneof=mechanical electrical hydraulic electromechanical general other"`
	YearsExperience *int        `json:"years_experience,omitempty" validate:"omitempty,gte=0"`
	Certifications  null.String `json:"certifications,omitempty"`
	UserID          null.Int64  `json:"user_id,omitempty"`
	Active          *bool       `json:"active,omitempty"`
	HiredAt         *time.Time  `json:"hired_at,omitempty"`
	CompanyIDs      []uint64    `json:"company_ids,omitempty"`
}
