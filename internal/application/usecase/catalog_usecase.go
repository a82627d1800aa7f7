package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/sanmartincomanda/inventario/internal/domain"
	"github.com/sanmartincomanda/inventario/internal/domain/entity"
	"github.com/sanmartincomanda/inventario/internal/domain/repository"
)

// CatalogUseCase administra el catálogo de SKUs y las contrapartes
// (proveedores y destinos) de una sucursal.
type CatalogUseCase struct {
	catalogRepo repository.CatalogRepository
	cpRepo      repository.CounterpartyRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(catalogRepo repository.CatalogRepository, cpRepo repository.CounterpartyRepository) *CatalogUseCase {
	return &CatalogUseCase{catalogRepo: catalogRepo, cpRepo: cpRepo}
}

// SKUInput es un SKU a insertar o actualizar en el catálogo.
type SKUInput struct {
	Code   string
	Name   string
	Unit   string
	Active *bool // nil conserva true en inserciones nuevas
}

// Upsert inserta o actualiza SKUs por código canónico. Las entradas sin
// código se rechazan completas: un upsert parcial dejaría el catálogo en un
// estado que el llamador no pidió.
func (uc *CatalogUseCase) Upsert(ctx context.Context, branchID string, items []SKUInput) error {
	if branchID == "" {
		return domain.ErrNoBranch
	}
	if len(items) == 0 {
		return domain.ErrInvalidInput
	}

	skus := make([]*entity.SKU, 0, len(items))
	for _, it := range items {
		code := entity.CanonicalSKU(it.Code)
		if code == "" {
			return domain.ErrInvalidInput
		}
		active := true
		if it.Active != nil {
			active = *it.Active
		}
		skus = append(skus, &entity.SKU{
			Code:   code,
			Name:   strings.TrimSpace(it.Name),
			Unit:   strings.TrimSpace(it.Unit),
			Active: active,
		})
	}
	return uc.catalogRepo.Upsert(branchID, skus)
}

// List lista el catálogo de la sucursal.
func (uc *CatalogUseCase) List(ctx context.Context, branchID string, includeInactive bool) ([]*entity.SKU, error) {
	if branchID == "" {
		return nil, domain.ErrNoBranch
	}
	return uc.catalogRepo.List(branchID, includeInactive)
}

// Deactivate desactiva un SKU del catálogo. Los SKUs nunca se eliminan
// porque los movimientos históricos los referencian por código.
func (uc *CatalogUseCase) Deactivate(ctx context.Context, branchID, code string) error {
	if branchID == "" {
		return domain.ErrNoBranch
	}
	code = entity.CanonicalSKU(code)
	if code == "" {
		return domain.ErrInvalidInput
	}
	sku, err := uc.catalogRepo.Get(branchID, code)
	if err != nil {
		return err
	}
	if sku == nil {
		return domain.ErrNotFound
	}
	return uc.catalogRepo.Deactivate(branchID, code)
}

// AddCounterparty registra un proveedor o destino. Devuelve el id existente
// si ya hay una contraparte del mismo tipo con ese nombre.
func (uc *CatalogUseCase) AddCounterparty(ctx context.Context, branchID, kind, name string) (string, error) {
	if branchID == "" {
		return "", domain.ErrNoBranch
	}
	if kind != entity.CounterpartyProveedor && kind != entity.CounterpartyDestino {
		return "", domain.ErrInvalidInput
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", domain.ErrInvalidInput
	}
	return uc.cpRepo.Add(&entity.Counterparty{
		ID:       uuid.New().String(),
		BranchID: branchID,
		Kind:     kind,
		Name:     name,
	})
}

// ListCounterparties lista los proveedores o destinos de la sucursal.
func (uc *CatalogUseCase) ListCounterparties(ctx context.Context, branchID, kind string) ([]*entity.Counterparty, error) {
	if branchID == "" {
		return nil, domain.ErrNoBranch
	}
	if kind != entity.CounterpartyProveedor && kind != entity.CounterpartyDestino {
		return nil, domain.ErrInvalidInput
	}
	return uc.cpRepo.List(branchID, kind)
}
