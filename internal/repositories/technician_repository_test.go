package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"maintenance-system/internal/dto"
	apperrors "maintenance-system/pkg/errors"
)

func TestTechnicianRepository_Integration_CompanyAssignment(t *testing.T) {
	require.NotNil(t, testPool, "testPool no inicializado")
	cleanupTables(t, testPool)
	repo := NewTechnicianRepository(testPool, zap.NewNop())
	ctx := context.Background()

	companyID, _ := seedCompanyAndEquipment(t, testPool)

	technicianID, err := repo.CreateTechnician(ctx, dto.CreateTechnicianDTO{
		Name:      "Pedro",
		Surname:   "Rojas",
		RUT:       "12345678-5",
		Email:     "projas@acme.cl",
		Phone:     "+56911111111",
		Specialty: "mechanical",
	})
	require.NoError(t, err)

	t.Run("asignar empresa", func(t *testing.T) {
		require.NoError(t, repo.AssignCompany(ctx, technicianID, companyID))

		technician, err := repo.FindTechnician(ctx, technicianID)
		require.NoError(t, err)
		assert.Equal(t, []uint64{companyID}, technician.CompanyIDs)
	})

	t.Run("asignación repetida no duplica", func(t *testing.T) {
		require.NoError(t, repo.AssignCompany(ctx, technicianID, companyID))

		ids, err := repo.GetCompanyIDs(ctx, technicianID)
		require.NoError(t, err)
		assert.Len(t, ids, 1)
	})

	t.Run("empresa inexistente", func(t *testing.T) {
		err := repo.AssignCompany(ctx, technicianID, 99999)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("desasignar", func(t *testing.T) {
		require.NoError(t, repo.UnassignCompany(ctx, technicianID, companyID))

		ids, err := repo.GetCompanyIDs(ctx, technicianID)
		require.NoError(t, err)
		assert.Empty(t, ids)
	})

	t.Run("desasignar inexistente", func(t *testing.T) {
		err := repo.UnassignCompany(ctx, technicianID, companyID)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}
