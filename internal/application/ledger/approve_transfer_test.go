package ledger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanmartincomanda/inventario/internal/application/ledger"
	"github.com/sanmartincomanda/inventario/internal/domain"
	"github.com/sanmartincomanda/inventario/internal/domain/entity"
)

type approveFixture struct {
	store    *memStore
	record   *ledger.RecordMovementUseCase
	approve  *ledger.ApproveTransferUseCase
	branches *memBranchRepo
}

func newApproveFixture(t *testing.T) *approveFixture {
	t.Helper()
	store := newMemStore()
	branches := &memBranchRepo{branches: []*entity.Branch{
		{ID: "suc-1", Name: "San Martín Centro"},
		{ID: "suc-2", Name: "San Martín Norte"},
	}}
	runner := &memTxRunner{s: store}
	return &approveFixture{
		store:    store,
		record:   ledger.NewRecordMovementUseCase(runner, branches, newMemCatalogRepo(), 4),
		approve:  ledger.NewApproveTransferUseCase(runner, branches, 4),
		branches: branches,
	}
}

// registerTransfer crea una salida de traspaso suc-1 -> suc-2 y devuelve el
// espejo que ve la sucursal destino.
func (f *approveFixture) registerTransfer(t *testing.T) *entity.Movement {
	t.Helper()
	_, err := f.record.RecordExit(context.Background(), "suc-1",
		draftWith("San Martín Norte", "12.5", "8.3"))
	require.NoError(t, err)

	mirrors := f.store.movementsOf("suc-2", entity.MovementTypeSalida)
	require.Len(t, mirrors, 1)
	return mirrors[0]
}

func TestApprove_GeneraEntradaYMarcaAmbosLados(t *testing.T) {
	f := newApproveFixture(t)
	mirror := f.registerTransfer(t)

	err := f.approve.Approve(context.Background(), "suc-2", mirror.ID, "  Juan Pérez ")
	require.NoError(t, err)

	// Ambos lados del traspaso quedan aprobados con el receptor registrado.
	for _, branchID := range []string{"suc-1", "suc-2"} {
		exits := f.store.movementsOf(branchID, entity.MovementTypeSalida)
		require.Len(t, exits, 1)
		assert.Equal(t, entity.StatusApproved, exits[0].Status)
		assert.Equal(t, "Juan Pérez", exits[0].ReceivedBy)
		require.NotNil(t, exits[0].ApprovedAt)
	}

	entries := f.store.movementsOf("suc-2", entity.MovementTypeEntrada)
	require.Len(t, entries, 1)
	entry := entries[0]
	assert.Equal(t, "E-0001", entry.Folio, "la entrada consume el consecutivo del destino")
	assert.Equal(t, entity.StatusCompleted, entry.Status)
	assert.Equal(t, "Traspaso de San Martín Centro", entry.Counterparty)
	assert.Equal(t, "Juan Pérez", entry.Actor)
	assert.Contains(t, entry.Observation, mirror.Folio)
	assert.Equal(t, mirror.TransferID, entry.TransferID)

	// Las líneas se copian tal cual, con identidad propia.
	require.Len(t, entry.Lines, len(mirror.Lines))
	for i := range entry.Lines {
		assert.Equal(t, mirror.Lines[i].SKU, entry.Lines[i].SKU)
		assert.True(t, mirror.Lines[i].Quantity.Equal(entry.Lines[i].Quantity))
		assert.NotEqual(t, mirror.Lines[i].ID, entry.Lines[i].ID)
	}
}

func TestApprove_DobleAprobacionNoDuplicaEntrada(t *testing.T) {
	f := newApproveFixture(t)
	mirror := f.registerTransfer(t)
	ctx := context.Background()

	require.NoError(t, f.approve.Approve(ctx, "suc-2", mirror.ID, "Juan"))

	err := f.approve.Approve(ctx, "suc-2", mirror.ID, "Pedro")
	assert.ErrorIs(t, err, domain.ErrConflict)

	entries := f.store.movementsOf("suc-2", entity.MovementTypeEntrada)
	assert.Len(t, entries, 1, "la segunda aprobación no genera otra entrada")
	assert.Equal(t, "Juan", entries[0].Actor)

	counter, _ := (&memCounterRepo{s: f.store}).Get("suc-2")
	assert.Equal(t, 1, counter.Entrada, "el conflicto no consume consecutivo")
}

func TestApprove_ReceptorVacio(t *testing.T) {
	f := newApproveFixture(t)
	mirror := f.registerTransfer(t)

	err := f.approve.Approve(context.Background(), "suc-2", mirror.ID, "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	exits := f.store.movementsOf("suc-2", entity.MovementTypeSalida)
	require.Len(t, exits, 1)
	assert.Equal(t, entity.StatusPendingApproval, exits[0].Status)
}

func TestApprove_MovimientoInexistente(t *testing.T) {
	f := newApproveFixture(t)

	err := f.approve.Approve(context.Background(), "suc-2", "no-existe", "Juan")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestApprove_SalidaSinTraspasoNoEsAprobable(t *testing.T) {
	f := newApproveFixture(t)

	// Salida común (destino que no es sucursal) en la propia sucursal.
	res, err := f.record.RecordExit(context.Background(), "suc-2", draftWith("Mermas", "3"))
	require.NoError(t, err)

	err = f.approve.Approve(context.Background(), "suc-2", res.ID, "Juan")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestApprove_LadoOrigenNoEsAprobable(t *testing.T) {
	f := newApproveFixture(t)
	f.registerTransfer(t)

	origin := f.store.movementsOf("suc-1", entity.MovementTypeSalida)[0]
	err := f.approve.Approve(context.Background(), "suc-1", origin.ID, "Juan")
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"la aprobación solo opera sobre el espejo de la sucursal receptora")
}

func TestApprove_EnOtraSucursalNoEncuentraElEspejo(t *testing.T) {
	f := newApproveFixture(t)
	mirror := f.registerTransfer(t)

	// El espejo vive en suc-2; aprobar desde suc-1 con ese id no lo ve.
	err := f.approve.Approve(context.Background(), "suc-1", mirror.ID, "Juan")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
