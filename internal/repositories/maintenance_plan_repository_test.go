package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"maintenance-system/pkg/types"
)

func seedPlan(t *testing.T, companyID, equipmentID uint64, name string, active bool, nextAt *time.Time) {
	t.Helper()
	_, err := testPool.Exec(context.Background(), `
		INSERT INTO maintenance_plans (company_id, equipment_id, name, frequency, tasks, starts_at, active, next_maintenance_at)
		VALUES ($1, $2, $3, 'monthly', 'revisar todo', now(), $4, $5)
	`, companyID, equipmentID, name, active, nextAt)
	require.NoError(t, err)
}

func TestMaintenancePlanRepository_Integration_UpcomingDue(t *testing.T) {
	require.NotNil(t, testPool, "testPool no inicializado")
	cleanupTables(t, testPool)
	repo := NewMaintenancePlanRepository(testPool, zap.NewNop())
	ctx := context.Background()

	companyID, equipmentID := seedCompanyAndEquipment(t, testPool)

	inThreeDays := time.Now().AddDate(0, 0, 3)
	inThirtyDays := time.Now().AddDate(0, 0, 30)
	lastWeek := time.Now().AddDate(0, 0, -7)

	seedPlan(t, companyID, equipmentID, "vence pronto", true, &inThreeDays)
	seedPlan(t, companyID, equipmentID, "vence lejos", true, &inThirtyDays)
	seedPlan(t, companyID, equipmentID, "ya vencido", true, &lastWeek)
	seedPlan(t, companyID, equipmentID, "inactivo", false, &inThreeDays)
	seedPlan(t, companyID, equipmentID, "sin fecha", true, nil)

	plans, total, err := repo.GetUpcomingDue(ctx, 7*24*time.Hour, types.Filter{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), total)
	require.Len(t, plans, 1)
	assert.Equal(t, "vence pronto", plans[0].Name)
}
