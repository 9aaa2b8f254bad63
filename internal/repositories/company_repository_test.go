package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"maintenance-system/internal/dto"
	apperrors "maintenance-system/pkg/errors"
	"maintenance-system/pkg/types"
)

func TestCompanyRepository_Integration_CRUD(t *testing.T) {
	require.NotNil(t, testPool, "testPool no inicializado")
	cleanupTables(t, testPool)
	repo := NewCompanyRepository(testPool, zap.NewNop())
	ctx := context.Background()

	newID, err := repo.CreateCompany(ctx, dto.CreateCompanyDTO{
		Name: "Acme",
		RUT:  "1-9",
		City: null.StringFrom("Santiago"),
	})
	require.NoError(t, err)
	require.True(t, newID > 0)

	t.Run("rut duplicado", func(t *testing.T) {
		_, err := repo.CreateCompany(ctx, dto.CreateCompanyDTO{Name: "Otra", RUT: "1-9"})
		var vErr *apperrors.ValidationError
		assert.ErrorAs(t, err, &vErr)
	})

	t.Run("find y update", func(t *testing.T) {
		company, err := repo.FindCompany(ctx, newID)
		require.NoError(t, err)
		assert.Equal(t, "Acme", company.Name)
		assert.True(t, company.Active)

		active := false
		err = repo.UpdateCompany(ctx, newID, dto.UpdateCompanyDTO{
			Active: &active,
			Email:  null.StringFrom("ventas@acme.cl"),
		})
		require.NoError(t, err)

		company, err = repo.FindCompany(ctx, newID)
		require.NoError(t, err)
		assert.False(t, company.Active)
		require.NotNil(t, company.Email)
		assert.Equal(t, "ventas@acme.cl", *company.Email)
	})

	t.Run("listado filtrado por active", func(t *testing.T) {
		_, err := repo.CreateCompany(ctx, dto.CreateCompanyDTO{Name: "Activa SpA", RUT: "12345678-5"})
		require.NoError(t, err)

		filter := types.Filter{Filter: map[string]interface{}{"active": true}, Limit: 10}
		companies, total, err := repo.GetCompanies(ctx, filter)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), total)
		require.Len(t, companies, 1)
		assert.Equal(t, "Activa SpA", companies[0].Name)
	})

	t.Run("búsqueda por texto", func(t *testing.T) {
		filter := types.Filter{Search: "acme", Limit: 10}
		_, total, err := repo.GetCompanies(ctx, filter)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), total)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.DeleteCompany(ctx, newID))
		_, err := repo.FindCompany(ctx, newID)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestCompanyRepository_Integration_Stats(t *testing.T) {
	cleanupTables(t, testPool)
	repo := NewCompanyRepository(testPool, zap.NewNop())
	ctx := context.Background()

	companyID, equipmentID := seedCompanyAndEquipment(t, testPool)

	t.Run("empresa sin movimientos", func(t *testing.T) {
		stats, err := repo.GetCompanyStats(ctx, companyID)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), stats.TotalEquipments)
		assert.Equal(t, uint64(0), stats.TotalOrders)
		assert.Equal(t, float64(0), stats.TotalOrdersCost)
		assert.Equal(t, float64(0), stats.TotalWorkedHours)
	})

	// Dos órdenes cerradas con costos y una agendada.
	_, err := testPool.Exec(ctx, `
		INSERT INTO work_orders (company_id, equipment_id, order_number, description, status, scheduled_at, worked_hours, real_cost)
		VALUES
			($1, $2, 'ORD-2025-00001', 'cambio de rodamientos', 'completed', $3, 3.5, 150000),
			($1, $2, 'ORD-2025-00002', 'ajuste de correas', 'completed', $3, 1.5, 45000),
			($1, $2, 'ORD-2025-00003', 'inspección general', 'scheduled', $3, NULL, NULL)
	`, companyID, equipmentID, time.Now())
	require.NoError(t, err)

	_, err = testPool.Exec(ctx, `
		INSERT INTO maintenance_plans (company_id, equipment_id, name, frequency, tasks, starts_at)
		VALUES ($1, $2, 'Plan mensual', 'monthly', 'revisar todo', now())
	`, companyID, equipmentID)
	require.NoError(t, err)

	stats, err := repo.GetCompanyStats(ctx, companyID)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), stats.TotalEquipments)
	assert.Equal(t, uint64(1), stats.TotalPlans)
	assert.Equal(t, uint64(3), stats.TotalOrders)
	assert.Equal(t, uint64(1), stats.PendingOrders)
	assert.Equal(t, uint64(0), stats.InProgressOrders)
	assert.Equal(t, uint64(2), stats.CompletedOrders)
	assert.InDelta(t, 195000, stats.TotalOrdersCost, 0.01)
	assert.InDelta(t, 5, stats.TotalWorkedHours, 0.01)
}
