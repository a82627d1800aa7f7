package dto

import "github.com/shopspring/decimal"

// SKUDeltaResponse diferencia consolidada entrada-salida de un SKU.
type SKUDeltaResponse struct {
	SKU        string          `json:"sku"`
	Entradas   decimal.Decimal `json:"entradas"`
	Salidas    decimal.Decimal `json:"salidas"`
	Diferencia decimal.Decimal `json:"diferencia"`
}

// DecodeBarcodeRequest body para POST /api/barcodes/decode.
type DecodeBarcodeRequest struct {
	Device string `json:"device"` // san_martin | bascula
	Code   string `json:"code"`
}

// DecodeBarcodeResponse peso decodificado en libras.
type DecodeBarcodeResponse struct {
	Weight decimal.Decimal `json:"weight"`
}

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token emitido.
type LoginResponse struct {
	Token    string `json:"token"`
	BranchID string `json:"branch_id"`
}

// CreateBranchRequest body para POST /api/branches.
type CreateBranchRequest struct {
	Name string `json:"name"`
}

// BranchResponse sucursal en respuestas.
type BranchResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
