package routes

import (
	"github.com/labstack/echo/v4"

	"maintenance-system/internal/controllers"
)

func runEquipmentRouter(api *echo.Group, ctrl *controllers.EquipmentController) {
	api.GET("/equipments/by-company", ctrl.GetEquipmentsByCompany)
	api.GET("/equipments/operational", ctrl.GetOperationalEquipments)

	api.GET("/equipments", ctrl.GetEquipments)
	api.POST("/equipments", ctrl.CreateEquipment)
	api.GET("/equipments/:id", ctrl.FindEquipment)
	api.PUT("/equipments/:id", ctrl.UpdateEquipment)
	api.PATCH("/equipments/:id", ctrl.UpdateEquipment)
	api.DELETE("/equipments/:id", ctrl.DeleteEquipment)
	api.GET("/equipments/:id/statistics", ctrl.GetEquipmentStats)
}
