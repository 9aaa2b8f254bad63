package dto

import "github.com/aarondl/null/v8"

type CreateCompanyDTO struct {
	Name        string      `json:"name" validate:"required,max=200"`
	Description null.String `json:"description"`
	RUT         string      `json:"rut" validate:"required,rut"`
	Phone       null.String `json:"phone" validate:"omitempty,max=20"`
	Email       null.String `json:"email" validate:"omitempty,email"`
	Address     null.String `json:"address" validate:"omitempty,max=300"`
	City        null.String `json:"city" validate:"omitempty,max=100"`
	MainContact null.String `json:"main_contact" validate:"omitempty,max=200"`
	Active      *bool       `json:"active"`
}

type UpdateCompanyDTO struct {
	Name        *string     `json:"name,omitempty" validate:"omitempty,max=200"`
	Description null.String `json:"description,omitempty"`
	RUT         *string     `json:"rut,omitempty" validate:"omitempty,rut"`
	Phone       null.String `json:"phone,omitempty" validate:"omitempty,max=20"`
	Email       null.String `json:"email,omitempty" validate:"omitempty,email"`
	Address     null.String `json:"address,omitempty" validate:"omitempty,max=300"`
	City        null.String `json:"city,omitempty" validate:"omitempty,max=100"`
	MainContact null.String `json:"main_contact,omitempty" validate:"omitempty,max=200"`
	Active      *bool       `json:"active,omitempty"`
}
