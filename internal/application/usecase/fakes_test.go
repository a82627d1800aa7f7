package usecase_test

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sanmartincomanda/inventario/internal/domain/entity"
)

// Dobles en memoria de los puertos que consumen estos casos de uso.

type fakeCatalogRepo struct {
	skus map[string]*entity.SKU // por código canónico
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{skus: make(map[string]*entity.SKU)}
}

func (r *fakeCatalogRepo) Upsert(_ string, skus []*entity.SKU) error {
	for _, s := range skus {
		r.skus[s.Code] = s
	}
	return nil
}

func (r *fakeCatalogRepo) Get(_, code string) (*entity.SKU, error) {
	return r.skus[code], nil
}

func (r *fakeCatalogRepo) List(_ string, includeInactive bool) ([]*entity.SKU, error) {
	var out []*entity.SKU
	for _, s := range r.skus {
		if includeInactive || s.Active {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeCatalogRepo) Deactivate(_, code string) error {
	if s, ok := r.skus[code]; ok {
		s.Active = false
	}
	return nil
}

type fakeCounterpartyRepo struct {
	items []*entity.Counterparty
}

func (r *fakeCounterpartyRepo) Add(cp *entity.Counterparty) (string, error) {
	for _, it := range r.items {
		if it.Kind == cp.Kind && strings.EqualFold(it.Name, cp.Name) {
			return it.ID, nil
		}
	}
	r.items = append(r.items, cp)
	return cp.ID, nil
}

func (r *fakeCounterpartyRepo) List(_, kind string) ([]*entity.Counterparty, error) {
	var out []*entity.Counterparty
	for _, it := range r.items {
		if it.Kind == kind {
			out = append(out, it)
		}
	}
	return out, nil
}

type fakeBranchRepo struct{ branches []*entity.Branch }

func (r *fakeBranchRepo) Create(b *entity.Branch) error {
	r.branches = append(r.branches, b)
	return nil
}

func (r *fakeBranchRepo) GetByID(id string) (*entity.Branch, error) {
	for _, b := range r.branches {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, nil
}

func (r *fakeBranchRepo) GetByName(name string) (*entity.Branch, error) {
	for _, b := range r.branches {
		if strings.EqualFold(b.Name, name) {
			return b, nil
		}
	}
	return nil, nil
}

func (r *fakeBranchRepo) List() ([]*entity.Branch, error) { return r.branches, nil }

type fakeUserRepo struct{ users map[string]*entity.User }

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	r.users[u.Email] = u
	return nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	return r.users[email], nil
}

// fakeReportRepo captura los argumentos de la última consulta.
type fakeReportRepo struct {
	lastFrom time.Time
	lastTo   time.Time
	result   []*entity.SKUDelta
}

func (r *fakeReportRepo) SKUDifference(_ string, from, to time.Time) ([]*entity.SKUDelta, error) {
	r.lastFrom, r.lastTo = from, to
	return r.result, nil
}
