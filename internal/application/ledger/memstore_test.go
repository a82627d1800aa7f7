package ledger_test

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/sanmartincomanda/inventario/internal/application/ledger"
	"github.com/sanmartincomanda/inventario/internal/domain/entity"
	"github.com/sanmartincomanda/inventario/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles en memoria de los puertos de persistencia. El mutex del runner
// serializa cada "transacción" completa, igual que el bloqueo de fila en
// PostgreSQL; en caso de error se restaura el estado previo (rollback).
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	mu            sync.Mutex
	counters      map[string]*entity.BranchCounter // por branchID
	movements     map[string]*entity.Movement      // por id
	announcements []string                         // branchID de cada aviso pendiente
}

func newMemStore() *memStore {
	return &memStore{
		counters:  make(map[string]*entity.BranchCounter),
		movements: make(map[string]*entity.Movement),
	}
}

func (s *memStore) snapshot() (map[string]*entity.BranchCounter, map[string]*entity.Movement, []string) {
	counters := make(map[string]*entity.BranchCounter, len(s.counters))
	for k, v := range s.counters {
		c := *v
		counters[k] = &c
	}
	movements := make(map[string]*entity.Movement, len(s.movements))
	for k, v := range s.movements {
		m := *v
		movements[k] = &m
	}
	return counters, movements, append([]string(nil), s.announcements...)
}

// movementsOf lista los movimientos de una sucursal y tipo, para asserts.
func (s *memStore) movementsOf(branchID, movType string) []*entity.Movement {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.Movement
	for _, m := range s.movements {
		if m.BranchID == branchID && m.Type == movType {
			out = append(out, m)
		}
	}
	return out
}

type memTxRunner struct{ s *memStore }

func (r *memTxRunner) Run(_ context.Context, fn func(
	movRepo repository.MovementRepository,
	counterRepo repository.CounterRepository,
) error) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	counters, movements, announcements := r.s.snapshot()
	err := fn(&memMovementRepo{s: r.s}, &memCounterRepo{s: r.s})
	if err != nil {
		r.s.counters = counters
		r.s.movements = movements
		r.s.announcements = announcements
	}
	return err
}

var _ ledger.TxRunner = (*memTxRunner)(nil)

// ── movimientos ───────────────────────────────────────────────────────────────

type memMovementRepo struct{ s *memStore }

func (r *memMovementRepo) Create(m *entity.Movement) error {
	cp := *m
	r.s.movements[m.ID] = &cp
	return nil
}

func (r *memMovementRepo) GetByID(branchID, id string) (*entity.Movement, error) {
	m, ok := r.s.movements[id]
	if !ok || m.BranchID != branchID {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *memMovementRepo) GetForUpdate(branchID, id string) (*entity.Movement, error) {
	return r.GetByID(branchID, id)
}

func (r *memMovementRepo) ListByType(branchID, movType string, _, _ *time.Time, _, _ int) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for _, m := range r.s.movements {
		if m.BranchID == branchID && m.Type == movType {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memMovementRepo) ListPendingTransfers(branchID string) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for _, m := range r.s.movements {
		if m.BranchID == branchID && m.Transfer && m.OriginBranchID != "" &&
			m.Status == entity.StatusPendingApproval {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memMovementRepo) MarkTransferApproved(transferID, receivedBy string, at time.Time) error {
	for _, m := range r.s.movements {
		if m.TransferID == transferID && m.Status == entity.StatusPendingApproval {
			m.Status = entity.StatusApproved
			m.ReceivedBy = receivedBy
			t := at
			m.ApprovedAt = &t
		}
	}
	return nil
}

func (r *memMovementRepo) AnnouncePending(branchID, _ string) error {
	r.s.announcements = append(r.s.announcements, branchID)
	return nil
}

// ── contadores ────────────────────────────────────────────────────────────────

type memCounterRepo struct{ s *memStore }

func (r *memCounterRepo) Next(branchID, docType string) (int, error) {
	c, ok := r.s.counters[branchID]
	if !ok {
		c = &entity.BranchCounter{BranchID: branchID}
		r.s.counters[branchID] = c
	}
	switch docType {
	case entity.MovementTypeEntrada:
		c.Entrada++
		return c.Entrada, nil
	default:
		c.Salida++
		return c.Salida, nil
	}
}

func (r *memCounterRepo) Get(branchID string) (*entity.BranchCounter, error) {
	if c, ok := r.s.counters[branchID]; ok {
		cp := *c
		return &cp, nil
	}
	return &entity.BranchCounter{BranchID: branchID}, nil
}

// ── catálogo y sucursales ─────────────────────────────────────────────────────

type memCatalogRepo struct{ skus map[string]*entity.SKU } // clave branchID|code

func newMemCatalogRepo() *memCatalogRepo {
	return &memCatalogRepo{skus: make(map[string]*entity.SKU)}
}

func (r *memCatalogRepo) put(branchID string, sku *entity.SKU) {
	r.skus[branchID+"|"+sku.Code] = sku
}

func (r *memCatalogRepo) Upsert(branchID string, skus []*entity.SKU) error {
	for _, s := range skus {
		r.put(branchID, s)
	}
	return nil
}

func (r *memCatalogRepo) Get(branchID, code string) (*entity.SKU, error) {
	return r.skus[branchID+"|"+code], nil
}

func (r *memCatalogRepo) List(branchID string, includeInactive bool) ([]*entity.SKU, error) {
	var out []*entity.SKU
	for k, s := range r.skus {
		if strings.HasPrefix(k, branchID+"|") && (includeInactive || s.Active) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *memCatalogRepo) Deactivate(branchID, code string) error {
	if s, ok := r.skus[branchID+"|"+code]; ok {
		s.Active = false
	}
	return nil
}

type memBranchRepo struct{ branches []*entity.Branch }

func (r *memBranchRepo) Create(b *entity.Branch) error {
	r.branches = append(r.branches, b)
	return nil
}

func (r *memBranchRepo) GetByID(id string) (*entity.Branch, error) {
	for _, b := range r.branches {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, nil
}

func (r *memBranchRepo) GetByName(name string) (*entity.Branch, error) {
	for _, b := range r.branches {
		if strings.EqualFold(b.Name, name) {
			return b, nil
		}
	}
	return nil, nil
}

func (r *memBranchRepo) List() ([]*entity.Branch, error) { return r.branches, nil }
