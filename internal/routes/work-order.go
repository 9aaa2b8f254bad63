package routes

import (
	"github.com/labstack/echo/v4"

	"maintenance-system/internal/controllers"
)

func runWorkOrderRouter(api *echo.Group, ctrl *controllers.WorkOrderController) {
	api.GET("/work-orders/by-technician", ctrl.GetWorkOrdersByTechnician)
	api.GET("/work-orders/pending", ctrl.GetPendingWorkOrders)
	api.GET("/work-orders/urgent", ctrl.GetUrgentWorkOrders)
	api.GET("/work-orders/overdue", ctrl.GetOverdueWorkOrders)

	api.GET("/work-orders", ctrl.GetWorkOrders)
	api.POST("/work-orders", ctrl.CreateWorkOrder)
	api.GET("/work-orders/:id", ctrl.FindWorkOrder)
	api.PUT("/work-orders/:id", ctrl.UpdateWorkOrder)
	api.PATCH("/work-orders/:id", ctrl.UpdateWorkOrder)
	api.DELETE("/work-orders/:id", ctrl.DeleteWorkOrder)

	// Acciones del ciclo de vida
	api.POST("/work-orders/:id/start", ctrl.StartWorkOrder)
	api.POST("/work-orders/:id/pause", ctrl.PauseWorkOrder)
	api.POST("/work-orders/:id/complete", ctrl.CompleteWorkOrder)
	api.POST("/work-orders/:id/cancel", ctrl.CancelWorkOrder)
}
