package dto

// WorkOrderReportRow es una fila del reporte de órdenes exportable a Excel.
type WorkOrderReportRow struct {
	OrderNumber   string  `json:"order_number"`
	CompanyName   string  `json:"company_name"`
	EquipmentName string  `json:"equipment_name"`
	EquipmentCode string  `json:"equipment_code"`
	Technician    string  `json:"technician"`
	Status        string  `json:"status"`
	Priority      string  `json:"priority"`
	ScheduledAt   string  `json:"scheduled_at"`
	StartedAt     string  `json:"started_at"`
	FinishedAt    string  `json:"finished_at"`
	WorkedHours   float64 `json:"worked_hours"`
	RealCost      float64 `json:"real_cost"`
}
