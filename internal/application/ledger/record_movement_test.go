package ledger_test

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanmartincomanda/inventario/internal/application/ledger"
	"github.com/sanmartincomanda/inventario/internal/domain"
	"github.com/sanmartincomanda/inventario/internal/domain/entity"
	"github.com/sanmartincomanda/inventario/internal/domain/repository"
)

func newRecordFixture() (*ledger.RecordMovementUseCase, *memStore, *memBranchRepo, *memCatalogRepo) {
	store := newMemStore()
	branches := &memBranchRepo{}
	catalog := newMemCatalogRepo()
	uc := ledger.NewRecordMovementUseCase(&memTxRunner{s: store}, branches, catalog, 4)
	return uc, store, branches, catalog
}

func draftWith(counterparty string, weights ...string) ledger.MovementDraft {
	ws := make([]decimal.Decimal, len(weights))
	for i, w := range weights {
		ws[i] = decimal.RequireFromString(w)
	}
	return ledger.MovementDraft{
		Counterparty: counterparty,
		Actor:        "Carlos",
		Lines:        []ledger.LineDraft{{SKU: "arrachera", Weights: ws}},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Folios y consecutivos
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordEntry_FoliosConsecutivos(t *testing.T) {
	uc, store, _, _ := newRecordFixture()
	ctx := context.Background()

	first, err := uc.RecordEntry(ctx, "suc-1", draftWith("Proveedor Norte", "12.5"))
	require.NoError(t, err)
	assert.Equal(t, "E-0001", first.Folio)
	assert.Equal(t, entity.StatusCompleted, first.Status)

	second, err := uc.RecordEntry(ctx, "suc-1", draftWith("Proveedor Norte", "8.3"))
	require.NoError(t, err)
	assert.Equal(t, "E-0002", second.Folio)

	counter, err := (&memCounterRepo{s: store}).Get("suc-1")
	require.NoError(t, err)
	assert.Equal(t, 2, counter.Entrada)
	assert.Equal(t, 0, counter.Salida)
}

func TestRecord_ContadoresIndependientesPorTipo(t *testing.T) {
	uc, _, _, _ := newRecordFixture()
	ctx := context.Background()

	entry, err := uc.RecordEntry(ctx, "suc-1", draftWith("Proveedor Norte", "5"))
	require.NoError(t, err)
	exit, err := uc.RecordExit(ctx, "suc-1", draftWith("Mermas", "2"))
	require.NoError(t, err)

	// Cada tipo arranca en 1 aunque el otro ya haya consumido folios.
	assert.Equal(t, "E-0001", entry.Folio)
	assert.Equal(t, "S-0001", exit.Folio)
}

func TestRecord_ConsecutivosConcurrentesSinHuecosNiDuplicados(t *testing.T) {
	const n = 50
	store := newMemStore()
	runner := &memTxRunner{s: store}

	seqs := make(chan int, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := runner.Run(context.Background(), func(
				_ repository.MovementRepository, counterRepo repository.CounterRepository,
			) error {
				seq, err := counterRepo.Next("suc-1", entity.MovementTypeEntrada)
				if err != nil {
					return err
				}
				seqs <- seq
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	close(seqs)

	seen := make(map[int]bool, n)
	for seq := range seqs {
		assert.False(t, seen[seq], "consecutivo duplicado: %d", seq)
		seen[seq] = true
	}
	for i := 1; i <= n; i++ {
		assert.True(t, seen[i], "falta el consecutivo %d", i)
	}

	counter, err := (&memCounterRepo{s: store}).Get("suc-1")
	require.NoError(t, err)
	assert.Equal(t, n, counter.Entrada)
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación del borrador
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordEntry_ContraparteVaciaNoConsumeFolio(t *testing.T) {
	uc, store, _, _ := newRecordFixture()

	_, err := uc.RecordEntry(context.Background(), "suc-1", draftWith("   ", "12.5"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	counter, _ := (&memCounterRepo{s: store}).Get("suc-1")
	assert.Zero(t, counter.Entrada)
	assert.Empty(t, store.movementsOf("suc-1", entity.MovementTypeEntrada))
}

func TestRecordEntry_SinLineasValidasNoConsumeFolio(t *testing.T) {
	uc, store, _, _ := newRecordFixture()

	draft := ledger.MovementDraft{
		Counterparty: "Proveedor Norte",
		Lines: []ledger.LineDraft{
			{SKU: "", Weights: []decimal.Decimal{decimal.RequireFromString("5")}},
			{SKU: "arrachera", Weights: nil},
			{SKU: "costilla", Weights: []decimal.Decimal{decimal.Zero}},
		},
	}
	_, err := uc.RecordEntry(context.Background(), "suc-1", draft)
	assert.ErrorIs(t, err, domain.ErrNoValidLines)

	counter, _ := (&memCounterRepo{s: store}).Get("suc-1")
	assert.Zero(t, counter.Entrada)
}

func TestRecordEntry_LineasInvalidasSeDescartanEnSilencio(t *testing.T) {
	uc, store, _, _ := newRecordFixture()

	draft := ledger.MovementDraft{
		Counterparty: "Proveedor Norte",
		Lines: []ledger.LineDraft{
			{SKU: "  arrachera ", Weights: []decimal.Decimal{
				decimal.RequireFromString("12.5"),
				decimal.RequireFromString("8.3"),
			}},
			{SKU: "", Weights: []decimal.Decimal{decimal.RequireFromString("5")}},
		},
	}
	_, err := uc.RecordEntry(context.Background(), "suc-1", draft)
	require.NoError(t, err)

	movs := store.movementsOf("suc-1", entity.MovementTypeEntrada)
	require.Len(t, movs, 1)
	require.Len(t, movs[0].Lines, 1)

	line := movs[0].Lines[0]
	assert.Equal(t, "ARRACHERA", line.SKU, "el SKU se canoniza a mayúsculas")
	assert.True(t, line.Quantity.Equal(decimal.RequireFromString("20.8")),
		"la cantidad es la suma de los pesos, fue %s", line.Quantity)
	assert.Len(t, line.Weights, 2)
}

func TestRecordEntry_FechaInvalida(t *testing.T) {
	uc, _, _, _ := newRecordFixture()

	draft := draftWith("Proveedor Norte", "12.5")
	draft.Date = "15/01/2026"
	_, err := uc.RecordEntry(context.Background(), "suc-1", draft)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRecord_SinSucursal(t *testing.T) {
	uc, _, _, _ := newRecordFixture()

	_, err := uc.RecordEntry(context.Background(), "", draftWith("Proveedor Norte", "1"))
	assert.ErrorIs(t, err, domain.ErrNoBranch)
}

// ──────────────────────────────────────────────────────────────────────────────
// Advertencias de catálogo
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordEntry_AdvertenciasDeCatalogo(t *testing.T) {
	uc, _, _, catalog := newRecordFixture()
	catalog.put("suc-1", &entity.SKU{Code: "ARRACHERA", Name: "Arrachera", Active: true})
	catalog.put("suc-1", &entity.SKU{Code: "COSTILLA", Name: "Costilla", Active: false})

	draft := ledger.MovementDraft{
		Counterparty: "Proveedor Norte",
		Lines: []ledger.LineDraft{
			{SKU: "arrachera", Weights: []decimal.Decimal{decimal.RequireFromString("5")}},
			{SKU: "costilla", Weights: []decimal.Decimal{decimal.RequireFromString("3")}},
			{SKU: "picanha", Weights: []decimal.Decimal{decimal.RequireFromString("2")}},
		},
	}
	res, err := uc.RecordEntry(context.Background(), "suc-1", draft)
	require.NoError(t, err)

	// Desconocido e inactivo advierten pero no bloquean: las tres líneas entran.
	require.Len(t, res.Warnings, 2)
	assert.Contains(t, res.Warnings[0], "COSTILLA")
	assert.Contains(t, res.Warnings[1], "PICANHA")
}

// ──────────────────────────────────────────────────────────────────────────────
// Traspasos
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordExit_DestinoConocidoCreaTraspasoConEspejo(t *testing.T) {
	uc, store, branches, _ := newRecordFixture()
	branches.branches = []*entity.Branch{
		{ID: "suc-1", Name: "San Martín Centro"},
		{ID: "suc-2", Name: "San Martín Norte"},
	}

	// El destino se resuelve por nombre sin distinguir mayúsculas.
	res, err := uc.RecordExit(context.Background(), "suc-1", draftWith("san martín norte", "12.5"))
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPendingApproval, res.Status)

	origin := store.movementsOf("suc-1", entity.MovementTypeSalida)
	require.Len(t, origin, 1)
	mirrors := store.movementsOf("suc-2", entity.MovementTypeSalida)
	require.Len(t, mirrors, 1)

	assert.True(t, origin[0].Transfer)
	assert.Equal(t, entity.StatusPendingApproval, origin[0].Status)
	assert.Empty(t, origin[0].OriginBranchID)
	assert.Equal(t, 1, origin[0].Seq)

	mirror := mirrors[0]
	assert.Equal(t, origin[0].TransferID, mirror.TransferID)
	assert.Equal(t, origin[0].Folio, mirror.Folio, "el espejo conserva el folio origen")
	assert.Zero(t, mirror.Seq, "el espejo no consume consecutivo del destino")
	assert.Equal(t, "suc-1", mirror.OriginBranchID)
	assert.Equal(t, entity.StatusPendingApproval, mirror.Status)
	require.Len(t, mirror.Lines, 1)
	assert.NotEqual(t, origin[0].Lines[0].ID, mirror.Lines[0].ID)

	// El contador del destino no se toca y se avisa al destino.
	counter, _ := (&memCounterRepo{s: store}).Get("suc-2")
	assert.Zero(t, counter.Salida)
	assert.Equal(t, []string{"suc-2"}, store.announcements)
}

func TestRecordExit_DestinoPorID(t *testing.T) {
	uc, store, branches, _ := newRecordFixture()
	branches.branches = []*entity.Branch{
		{ID: "suc-2", Name: "San Martín Norte"},
	}

	res, err := uc.RecordExit(context.Background(), "suc-1", draftWith("suc-2", "4"))
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPendingApproval, res.Status)
	assert.Len(t, store.movementsOf("suc-2", entity.MovementTypeSalida), 1)
}

func TestRecordExit_DestinoDesconocidoQuedaCompletada(t *testing.T) {
	uc, store, branches, _ := newRecordFixture()
	branches.branches = []*entity.Branch{{ID: "suc-2", Name: "San Martín Norte"}}

	res, err := uc.RecordExit(context.Background(), "suc-1", draftWith("Mermas", "2.1"))
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCompleted, res.Status)

	movs := store.movementsOf("suc-1", entity.MovementTypeSalida)
	require.Len(t, movs, 1)
	assert.False(t, movs[0].Transfer)
	assert.Empty(t, movs[0].TransferID)
	assert.Empty(t, store.announcements)
}

func TestRecordExit_HaciaLaPropiaSucursalNoEsTraspaso(t *testing.T) {
	uc, store, branches, _ := newRecordFixture()
	branches.branches = []*entity.Branch{{ID: "suc-1", Name: "San Martín Centro"}}

	res, err := uc.RecordExit(context.Background(), "suc-1", draftWith("San Martín Centro", "2"))
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCompleted, res.Status)
	require.Len(t, store.movementsOf("suc-1", entity.MovementTypeSalida), 1)
	assert.Empty(t, store.announcements)
}
