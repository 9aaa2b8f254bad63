package routes

import (
	"github.com/labstack/echo/v4"

	"maintenance-system/internal/controllers"
)

func runMaintenancePlanRouter(api *echo.Group, ctrl *controllers.MaintenancePlanController) {
	api.GET("/maintenance-plans/by-equipment", ctrl.GetPlansByEquipment)
	api.GET("/maintenance-plans/active", ctrl.GetActivePlans)
	api.GET("/maintenance-plans/upcoming-due", ctrl.GetUpcomingDue)

	api.GET("/maintenance-plans", ctrl.GetPlans)
	api.POST("/maintenance-plans", ctrl.CreatePlan)
	api.GET("/maintenance-plans/:id", ctrl.FindPlan)
	api.PUT("/maintenance-plans/:id", ctrl.UpdatePlan)
	api.PATCH("/maintenance-plans/:id", ctrl.UpdatePlan)
	api.DELETE("/maintenance-plans/:id", ctrl.DeletePlan)
}
