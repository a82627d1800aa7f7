package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/sanmartincomanda/inventario/internal/application/dto"
	"github.com/sanmartincomanda/inventario/internal/domain/barcode"
)

// Dispositivos de captura soportados.
const (
	DeviceSanMartin = "san_martin"
	DeviceBascula   = "bascula"
)

// BarcodeHandler decodifica pesos desde etiquetas de báscula (protegido).
type BarcodeHandler struct{}

// NewBarcodeHandler construye el handler.
func NewBarcodeHandler() *BarcodeHandler { return &BarcodeHandler{} }

// Decode godoc
// @Summary      Decodificar el peso de una etiqueta de báscula
// @Description  device=san_martin acepta etiquetas de 54 o 52 dígitos (peso
//
//	XX.Y); device=bascula acepta 13 dígitos (peso XX.YY).
//
// @Tags         barcodes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DecodeBarcodeRequest  true  "device y código escaneado"
// @Success      200   {object}  dto.DecodeBarcodeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/barcodes/decode [post]
func (h *BarcodeHandler) Decode(c *fiber.Ctx) error {
	var in dto.DecodeBarcodeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	var weight decimal.Decimal
	var err error
	switch in.Device {
	case DeviceSanMartin:
		weight, err = barcode.ExtractSanMartinWeight(in.Code)
	case DeviceBascula:
		weight, err = barcode.ExtractBasculaWeight(in.Code)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNKNOWN_DEVICE", Message: "device debe ser san_martin o bascula"})
	}
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BARCODE", Message: err.Error()})
	}
	return c.JSON(dto.DecodeBarcodeResponse{Weight: weight})
}
