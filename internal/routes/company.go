package routes

import (
	"github.com/labstack/echo/v4"

	"maintenance-system/internal/controllers"
)

func runCompanyRouter(api *echo.Group, ctrl *controllers.CompanyController) {
	// Las rutas fijas van antes que /:id para que echo no las capture como ID.
	api.GET("/companies/active", ctrl.GetActiveCompanies)

	api.GET("/companies", ctrl.GetCompanies)
	api.POST("/companies", ctrl.CreateCompany)
	api.GET("/companies/:id", ctrl.FindCompany)
	api.PUT("/companies/:id", ctrl.UpdateCompany)
	api.PATCH("/companies/:id", ctrl.UpdateCompany)
	api.DELETE("/companies/:id", ctrl.DeleteCompany)
	api.GET("/companies/:id/statistics", ctrl.GetCompanyStats)
}
