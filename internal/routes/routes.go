package routes

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"maintenance-system/internal/controllers"
	"maintenance-system/internal/repositories"
	"maintenance-system/internal/services"
)

// InitRouter arma todo el grafo de dependencias (repositorios, servicios,
// controladores) y registra los recursos bajo /api.
func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, logger *zap.Logger) {
	logger.Info("InitRouter: registrando rutas")

	api := e.Group("/api")

	// --- repositorios ---
	companyRepo := repositories.NewCompanyRepository(dbConn, logger)
	equipmentRepo := repositories.NewEquipmentRepository(dbConn, logger)
	technicianRepo := repositories.NewTechnicianRepository(dbConn, logger)
	planRepo := repositories.NewMaintenancePlanRepository(dbConn, logger)
	orderRepo := repositories.NewWorkOrderRepository(dbConn, logger)
	reportRepo := repositories.NewReportRepository(dbConn, logger)

	// --- servicios ---
	companyService := services.NewCompanyService(companyRepo, logger)
	equipmentService := services.NewEquipmentService(equipmentRepo, companyRepo, logger)
	technicianService := services.NewTechnicianService(technicianRepo, logger)
	planService := services.NewMaintenancePlanService(planRepo, equipmentRepo, logger)
	orderService := services.NewWorkOrderService(orderRepo, equipmentRepo, logger)
	reportService := services.NewReportService(reportRepo, logger)

	// --- controladores ---
	companyCtrl := controllers.NewCompanyController(companyService, logger)
	equipmentCtrl := controllers.NewEquipmentController(equipmentService, logger)
	technicianCtrl := controllers.NewTechnicianController(technicianService, logger)
	planCtrl := controllers.NewMaintenancePlanController(planService, logger)
	orderCtrl := controllers.NewWorkOrderController(orderService, logger)
	reportCtrl := controllers.NewReportController(reportService, logger)

	runCompanyRouter(api, companyCtrl)
	runEquipmentRouter(api, equipmentCtrl)
	runTechnicianRouter(api, technicianCtrl)
	runMaintenancePlanRouter(api, planCtrl)
	runWorkOrderRouter(api, orderCtrl)
	runReportRouter(api, reportCtrl)

	logger.Info("InitRouter: rutas registradas")
}
