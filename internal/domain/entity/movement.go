package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de documento del libro de movimientos.
const (
	MovementTypeEntrada = "entrada"
	MovementTypeSalida  = "salida"
)

// Estados de un movimiento. Solo las salidas de traspaso pasan por
// pendiente_aprobacion; la única transición válida es
// pendiente_aprobacion -> aprobada (no existe rechazo).
const (
	StatusCompleted       = "completada"
	StatusPendingApproval = "pendiente_aprobacion"
	StatusApproved        = "aprobada"
)

// MovementLine es una línea de un movimiento: un SKU con la lista de pesos
// de sus cajas en libras. Quantity es la suma de Weights al momento del registro.
type MovementLine struct {
	ID       string
	Position int
	SKU      string
	Quantity decimal.Decimal
	Weights  []decimal.Decimal
	Notes    string
}

// Total devuelve la suma de los pesos de la línea.
func (l *MovementLine) Total() decimal.Decimal {
	sum := decimal.Zero
	for _, w := range l.Weights {
		sum = sum.Add(w)
	}
	return sum
}

// Movement es una entrada o salida registrada en una sucursal.
// Identidad lógica: (BranchID, Folio). Inmutable una vez creado, salvo la
// transición de aprobación de salidas de traspaso.
type Movement struct {
	ID       string
	BranchID string
	Type     string // entrada | salida
	Seq      int    // consecutivo por sucursal y tipo; 0 en espejos de traspaso
	Folio    string // E-0001 / S-0001
	Date     time.Time

	// Counterparty: proveedor en entradas, destino en salidas.
	Counterparty string
	// Actor: recibidoPor en entradas, entregadoPor en salidas.
	Actor       string
	Observation string

	// Campos de traspaso entre sucursales.
	Transfer       bool
	Status         string
	OriginBranchID string // en el espejo: sucursal que originó la salida
	TransferID     string // enlaza salida origen, espejo y entrada generada
	ReceivedBy     string
	ApprovedAt     *time.Time

	Lines     []MovementLine
	CreatedAt time.Time
}

// Total devuelve la suma de pesos de todas las líneas del movimiento.
func (m *Movement) Total() decimal.Decimal {
	sum := decimal.Zero
	for i := range m.Lines {
		sum = sum.Add(m.Lines[i].Total())
	}
	return sum
}

// Boxes devuelve el número total de cajas (pesos) del movimiento.
func (m *Movement) Boxes() int {
	n := 0
	for i := range m.Lines {
		n += len(m.Lines[i].Weights)
	}
	return n
}

// SKUDelta consolida la diferencia entrada-salida de un SKU en un rango de fechas.
type SKUDelta struct {
	SKU        string
	Entradas   decimal.Decimal
	Salidas    decimal.Decimal
	Diferencia decimal.Decimal // Entradas - Salidas
}
