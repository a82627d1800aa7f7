package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/sanmartincomanda/inventario/internal/domain"
	"github.com/sanmartincomanda/inventario/internal/domain/entity"
	"github.com/sanmartincomanda/inventario/internal/domain/repository"
)

// ReportUseCase resuelve las consultas consolidadas del libro.
type ReportUseCase struct {
	reportRepo repository.ReportRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(reportRepo repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{reportRepo: reportRepo}
}

// SKUDifference consolida entradas, salidas y diferencia por SKU en el rango
// [from, to]. Las fechas llegan como YYYY-MM-DD; to vacío toma el día de hoy
// y from vacío toma el mismo día que to.
func (uc *ReportUseCase) SKUDifference(ctx context.Context, branchID, fromStr, toStr string) ([]*entity.SKUDelta, error) {
	if branchID == "" {
		return nil, domain.ErrNoBranch
	}

	to, err := parseDateOr(toStr, today())
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	from, err := parseDateOr(fromStr, to)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if from.After(to) {
		return nil, domain.ErrInvalidInput
	}
	return uc.reportRepo.SKUDifference(branchID, from, to)
}

func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func parseDateOr(s string, fallback time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback, nil
	}
	return time.Parse("2006-01-02", s)
}
