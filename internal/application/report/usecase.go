// Package report menyusun laporan inventory untuk diunduh (PDF dan Excel).
package report

import (
	"context"
	"time"

	"github.com/gudangkita/sparepart-api/internal/domain/entity"
	"github.com/gudangkita/sparepart-api/internal/domain/repository"
)

// InventoryPDFGenerator port pembuat PDF laporan stok.
type InventoryPDFGenerator interface {
	Generate(items []*entity.InventoryItem, dicetak time.Time) ([]byte, error)
}

// InventoryExcelWriter port penulis workbook laporan stok.
type InventoryExcelWriter interface {
	Write(items []*entity.InventoryItem) ([]byte, error)
}

// UseCase membangun laporan dari isi proyeksi inventory saat ini.
type UseCase struct {
	invRepo repository.InventoryRepository
	pdfGen  InventoryPDFGenerator
	xlsxGen InventoryExcelWriter
}

// NewUseCase membangun use case laporan.
func NewUseCase(invRepo repository.InventoryRepository, pdfGen InventoryPDFGenerator, xlsxGen InventoryExcelWriter) *UseCase {
	return &UseCase{invRepo: invRepo, pdfGen: pdfGen, xlsxGen: xlsxGen}
}

// InventoryPDF laporan stok sebagai PDF, opsional difilter satu unit.
func (uc *UseCase) InventoryPDF(ctx context.Context, unit string) ([]byte, error) {
	items, err := uc.invRepo.List(filterUnit(unit))
	if err != nil {
		return nil, err
	}
	return uc.pdfGen.Generate(items, time.Now())
}

// InventoryExcel laporan stok sebagai workbook xlsx, opsional difilter satu unit.
func (uc *UseCase) InventoryExcel(ctx context.Context, unit string) ([]byte, error) {
	items, err := uc.invRepo.List(filterUnit(unit))
	if err != nil {
		return nil, err
	}
	return uc.xlsxGen.Write(items)
}

func filterUnit(unit string) string {
	if unit == "Semua Unit" {
		return ""
	}
	return unit
}
