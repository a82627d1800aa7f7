package repository

import "github.com/sanmartincomanda/inventario/internal/domain/entity"

// CatalogRepository define el puerto del catálogo de SKUs de una sucursal.
type CatalogRepository interface {
	// Upsert inserta o actualiza SKUs (merge por código canónico).
	Upsert(branchID string, skus []*entity.SKU) error
	// Get devuelve el SKU (nil si no existe en el catálogo de la sucursal).
	Get(branchID, code string) (*entity.SKU, error)
	// List lista el catálogo; includeInactive=false omite los desactivados.
	List(branchID string, includeInactive bool) ([]*entity.SKU, error)
	// Deactivate desactiva un SKU. Los SKUs nunca se eliminan.
	Deactivate(branchID, code string) error
}

// CounterpartyRepository define el puerto de proveedores y destinos.
type CounterpartyRepository interface {
	// Add inserta la contraparte si no existe otra del mismo tipo con el
	// mismo nombre (sin distinguir mayúsculas); devuelve el id existente o
	// el recién creado.
	Add(cp *entity.Counterparty) (string, error)
	// List lista las contrapartes de un tipo (proveedor | destino).
	List(branchID, kind string) ([]*entity.Counterparty, error)
}
