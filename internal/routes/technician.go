package routes

import (
	"github.com/labstack/echo/v4"

	"maintenance-system/internal/controllers"
)

func runTechnicianRouter(api *echo.Group, ctrl *controllers.TechnicianController) {
	api.GET("/technicians/by-company", ctrl.GetTechniciansByCompany)
	api.GET("/technicians/by-specialty", ctrl.GetTechniciansBySpecialty)
	api.GET("/technicians/available", ctrl.GetAvailableTechnicians)

	api.GET("/technicians", ctrl.GetTechnicians)
	api.POST("/technicians", ctrl.CreateTechnician)
	api.GET("/technicians/:id", ctrl.FindTechnician)
	api.PUT("/technicians/:id", ctrl.UpdateTechnician)
	api.PATCH("/technicians/:id", ctrl.UpdateTechnician)
	api.DELETE("/technicians/:id", ctrl.DeleteTechnician)

	// Asociación técnico-empresa
	api.POST("/technicians/:id/companies/:companyId", ctrl.AssignCompany)
	api.DELETE("/technicians/:id/companies/:companyId", ctrl.UnassignCompany)
}
