package services

import (
	"context"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/entities"
	apperrors "maintenance-system/pkg/errors"
	"maintenance-system/pkg/types"
)

// fakeWorkOrderRepo es un doble en memoria del repositorio de órdenes.
// Guarda las condiciones extra del último listado para poder inspeccionarlas.
type fakeWorkOrderRepo struct {
	orders         map[uint64]*entities.WorkOrder
	nextID         uint64
	lastConditions []sq.Sqlizer
}

func newFakeWorkOrderRepo() *fakeWorkOrderRepo {
	return &fakeWorkOrderRepo{orders: make(map[uint64]*entities.WorkOrder), nextID: 1}
}

func (f *fakeWorkOrderRepo) GetWorkOrders(ctx context.Context, filter types.Filter, extra ...sq.Sqlizer) ([]*entities.WorkOrder, uint64, error) {
	f.lastConditions = extra
	list := make([]*entities.WorkOrder, 0, len(f.orders))
	for _, o := range f.orders {
		list = append(list, o)
	}
	return list, uint64(len(list)), nil
}

func (f *fakeWorkOrderRepo) FindWorkOrder(ctx context.Context, id uint64) (*entities.WorkOrder, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (f *fakeWorkOrderRepo) CreateWorkOrder(ctx context.Context, payload dto.CreateWorkOrderDTO) (uint64, string, error) {
	id := f.nextID
	f.nextID++
	status := payload.Status
	if status == "" {
		status = "scheduled"
	}
	f.orders[id] = &entities.WorkOrder{
		ID:          id,
		CompanyID:   payload.CompanyID,
		EquipmentID: payload.EquipmentID,
		OrderNumber: "ORD-2025-00001",
		Description: payload.Description,
		Status:      status,
		Priority:    "medium",
		ScheduledAt: payload.ScheduledAt,
	}
	return id, "ORD-2025-00001", nil
}

func (f *fakeWorkOrderRepo) UpdateWorkOrder(ctx context.Context, id uint64, payload dto.UpdateWorkOrderDTO) error {
	if _, ok := f.orders[id]; !ok {
		return apperrors.ErrNotFound
	}
	return nil
}

func (f *fakeWorkOrderRepo) DeleteWorkOrder(ctx context.Context, id uint64) error {
	if _, ok := f.orders[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(f.orders, id)
	return nil
}

func (f *fakeWorkOrderRepo) SetStatus(ctx context.Context, id uint64, set map[string]interface{}) error {
	o, ok := f.orders[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	if v, ok := set["status"]; ok {
		o.Status = v.(string)
	}
	if v, ok := set["started_at"]; ok {
		t := v.(time.Time)
		o.StartedAt = &t
	}
	if v, ok := set["finished_at"]; ok {
		t := v.(time.Time)
		o.FinishedAt = &t
	}
	if v, ok := set["worked_hours"]; ok {
		h := v.(float64)
		o.WorkedHours = &h
	}
	if v, ok := set["observations"]; ok {
		s := v.(string)
		o.Observations = &s
	}
	if v, ok := set["spare_parts_used"]; ok {
		s := v.(string)
		o.SparePartsUsed = &s
	}
	if v, ok := set["real_cost"]; ok {
		c := v.(float64)
		o.RealCost = &c
	}
	return nil
}

// fakeEquipmentRepo responde FindEquipment desde un mapa fijo.
type fakeEquipmentRepo struct {
	equipments map[uint64]*entities.Equipment
}

func (f *fakeEquipmentRepo) GetEquipments(ctx context.Context, filter types.Filter) ([]*entities.Equipment, uint64, error) {
	return nil, 0, nil
}

func (f *fakeEquipmentRepo) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	e, ok := f.equipments[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return e, nil
}

func (f *fakeEquipmentRepo) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (uint64, error) {
	return 0, nil
}

func (f *fakeEquipmentRepo) UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) error {
	return nil
}

func (f *fakeEquipmentRepo) DeleteEquipment(ctx context.Context, id uint64) error {
	return nil
}

func (f *fakeEquipmentRepo) GetEquipmentStats(ctx context.Context, id uint64) (*dto.EquipmentStatsDTO, error) {
	return nil, nil
}

func newTestWorkOrderService() (WorkOrderServiceInterface, *fakeWorkOrderRepo) {
	orderRepo := newFakeWorkOrderRepo()
	equipmentRepo := &fakeEquipmentRepo{
		equipments: map[uint64]*entities.Equipment{
			10: {ID: 10, CompanyID: 1, Name: "Bomba A", Code: "P1"},
			20: {ID: 20, CompanyID: 2, Name: "Compresor B", Code: "C1"},
		},
	}
	return NewWorkOrderService(orderRepo, equipmentRepo, zap.NewNop()), orderRepo
}

func scheduledOrder(repo *fakeWorkOrderRepo) uint64 {
	id, _, _ := repo.CreateWorkOrder(context.Background(), dto.CreateWorkOrderDTO{
		CompanyID:   1,
		EquipmentID: 10,
		Description: "Orden de prueba",
		ScheduledAt: time.Now(),
	})
	return id
}

func TestWorkOrderService_Create_EquipmentOtherCompany(t *testing.T) {
	svc, _ := newTestWorkOrderService()

	_, err := svc.CreateWorkOrder(context.Background(), dto.CreateWorkOrderDTO{
		CompanyID:   1,
		EquipmentID: 20, // pertenece a la empresa 2
		Description: "Orden inválida",
		ScheduledAt: time.Now(),
	})

	var vErr *apperrors.ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestWorkOrderService_Create_StartAfterEnd(t *testing.T) {
	svc, _ := newTestWorkOrderService()

	started := time.Now()
	finished := started.Add(-time.Hour)
	_, err := svc.CreateWorkOrder(context.Background(), dto.CreateWorkOrderDTO{
		CompanyID:   1,
		EquipmentID: 10,
		Description: "Fechas al revés",
		ScheduledAt: time.Now(),
		StartedAt:   &started,
		FinishedAt:  &finished,
	})

	var vErr *apperrors.ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestWorkOrderService_Start(t *testing.T) {
	svc, repo := newTestWorkOrderService()
	id := scheduledOrder(repo)

	order, err := svc.StartWorkOrder(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "in_progress", order.Status)
	require.NotNil(t, order.StartedAt)
	assert.WithinDuration(t, time.Now(), *order.StartedAt, time.Second)

	// Una orden ya iniciada no puede volver a iniciarse.
	_, err = svc.StartWorkOrder(context.Background(), id)
	var stateErr *apperrors.InvalidStateError
	require.ErrorAs(t, err, &stateErr)
	assert.Equal(t, "in_progress", repo.orders[id].Status)
}

func TestWorkOrderService_Pause_OnlyFromInProgress(t *testing.T) {
	svc, repo := newTestWorkOrderService()
	id := scheduledOrder(repo)

	_, err := svc.PauseWorkOrder(context.Background(), id)
	var stateErr *apperrors.InvalidStateError
	require.ErrorAs(t, err, &stateErr)
	assert.Equal(t, "scheduled", repo.orders[id].Status, "el estado no debe cambiar")

	_, err = svc.StartWorkOrder(context.Background(), id)
	require.NoError(t, err)

	order, err := svc.PauseWorkOrder(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "paused", order.Status)
}

func TestWorkOrderService_Complete_ComputesWorkedHours(t *testing.T) {
	svc, repo := newTestWorkOrderService()
	id := scheduledOrder(repo)

	// Simula una orden iniciada hace 2,5 horas.
	started := time.Now().Add(-150 * time.Minute)
	repo.orders[id].Status = "in_progress"
	repo.orders[id].StartedAt = &started

	order, err := svc.CompleteWorkOrder(context.Background(), id, dto.CompleteWorkOrderDTO{})
	require.NoError(t, err)
	assert.Equal(t, "completed", order.Status)
	require.NotNil(t, order.FinishedAt)
	require.NotNil(t, order.WorkedHours)
	assert.InDelta(t, 2.5, *order.WorkedHours, 0.02)
}

func TestWorkOrderService_Complete_ExplicitHoursWin(t *testing.T) {
	svc, repo := newTestWorkOrderService()
	id := scheduledOrder(repo)

	started := time.Now().Add(-8 * time.Hour)
	repo.orders[id].Status = "in_progress"
	repo.orders[id].StartedAt = &started

	order, err := svc.CompleteWorkOrder(context.Background(), id, dto.CompleteWorkOrderDTO{
		WorkedHours: null.Float64From(3),
		RealCost:    null.Float64From(85000),
	})
	require.NoError(t, err)
	require.NotNil(t, order.WorkedHours)
	assert.InDelta(t, 3, *order.WorkedHours, 0.001)
	require.NotNil(t, order.RealCost)
	assert.InDelta(t, 85000, *order.RealCost, 0.001)
}

func TestWorkOrderService_Complete_AlreadyCompleted(t *testing.T) {
	svc, repo := newTestWorkOrderService()
	id := scheduledOrder(repo)
	repo.orders[id].Status = "completed"

	_, err := svc.CompleteWorkOrder(context.Background(), id, dto.CompleteWorkOrderDTO{})
	var stateErr *apperrors.InvalidStateError
	require.ErrorAs(t, err, &stateErr)
}

func TestWorkOrderService_Cancel(t *testing.T) {
	svc, repo := newTestWorkOrderService()

	t.Run("se puede cancelar en cualquier estado no completado", func(t *testing.T) {
		for _, status := range []string{"scheduled", "in_progress", "paused", "pending"} {
			id := scheduledOrder(repo)
			repo.orders[id].Status = status

			order, err := svc.CancelWorkOrder(context.Background(), id)
			require.NoError(t, err, "cancelar desde '%s' debe funcionar", status)
			assert.Equal(t, "cancelled", order.Status)
		}
	})

	t.Run("una orden completada no se cancela", func(t *testing.T) {
		id := scheduledOrder(repo)
		repo.orders[id].Status = "completed"

		_, err := svc.CancelWorkOrder(context.Background(), id)
		var stateErr *apperrors.InvalidStateError
		require.ErrorAs(t, err, &stateErr)
		assert.Equal(t, "completed", repo.orders[id].Status)
	})
}

func TestWorkOrderService_Urgent_OnlyOpenStatuses(t *testing.T) {
	svc, repo := newTestWorkOrderService()

	_, _, err := svc.GetUrgentWorkOrders(context.Background(), types.Filter{Limit: 10})
	require.NoError(t, err)
	require.Len(t, repo.lastConditions, 2)

	var args []interface{}
	for _, cond := range repo.lastConditions {
		_, condArgs, err := cond.ToSql()
		require.NoError(t, err)
		args = append(args, condArgs...)
	}
	assert.Contains(t, args, "urgent")
	for _, status := range []string{"scheduled", "in_progress", "paused"} {
		assert.Contains(t, args, status, "las urgentes deben incluir el estado '%s'", status)
	}
	for _, status := range []string{"pending", "completed", "cancelled"} {
		assert.NotContains(t, args, status, "las urgentes no deben incluir el estado '%s'", status)
	}
}

func TestWorkOrderService_Lifecycle_NotFound(t *testing.T) {
	svc, _ := newTestWorkOrderService()

	_, err := svc.StartWorkOrder(context.Background(), 404)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
