package dto

// SKURequest un SKU en el upsert masivo del catálogo.
type SKURequest struct {
	SKU    string `json:"sku"`
	Name   string `json:"name"`
	Unit   string `json:"unit"`
	Active *bool  `json:"active,omitempty"` // nil = true
}

// UpsertCatalogRequest body para POST /api/catalog/skus.
type UpsertCatalogRequest struct {
	SKUs []SKURequest `json:"skus"`
}

// SKUResponse un SKU del catálogo en respuestas.
type SKUResponse struct {
	SKU    string `json:"sku"`
	Name   string `json:"name"`
	Unit   string `json:"unit"`
	Active bool   `json:"active"`
}

// AddCounterpartyRequest body para POST /api/counterparties.
type AddCounterpartyRequest struct {
	Kind string `json:"kind"` // proveedor | destino
	Name string `json:"name"`
}

// CounterpartyResponse contraparte en respuestas.
type CounterpartyResponse struct {
	ID   string `json:"id"`
	Kind string `json:"kind"`
	Name string `json:"name"`
}
