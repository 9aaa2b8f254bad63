package constants

// --- ESTADOS DE ÓRDENES DE TRABAJO (coinciden con los códigos en la BD) ---
const (
	OrderScheduled  = "scheduled"
	OrderInProgress = "in_progress"
	OrderPaused     = "paused"
	OrderCompleted  = "completed"
	OrderCancelled  = "cancelled"
	OrderPending    = "pending"
)

// Estados abiertos: lo que el API expone como "pendientes".
var OpenOrderStatuses = []string{
	OrderScheduled,
	OrderInProgress,
	OrderPaused,
}

// --- PRIORIDADES ---
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)
