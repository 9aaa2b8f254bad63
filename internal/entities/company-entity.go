package entities

import (
	"maintenance-system/pkg/types"
)

type Company struct {
	ID          uint64  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	RUT         string  `json:"rut"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	Address     *string `json:"address"`
	City        *string `json:"city"`
	MainContact *string `json:"main_contact"`
	Active      bool    `json:"active"`

	types.BaseEntity
}
