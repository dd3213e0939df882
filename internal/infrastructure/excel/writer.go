package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/gudangkita/sparepart-api/internal/application/report"
	"github.com/gudangkita/sparepart-api/internal/domain/entity"
)

var _ report.InventoryExcelWriter = (*Writer)(nil)

// Writer menulis laporan stok sebagai workbook xlsx satu sheet.
type Writer struct{}

func NewWriter() *Writer { return &Writer{} }

var reportHeaders = []string{"Tanggal", "Kode", "Nama Barang", "Alias", "Jumlah", "Satuan", "Unit"}

// Write menyusun workbook laporan dan mengembalikan byte-nya.
func (w *Writer) Write(items []*entity.InventoryItem) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Inventory"
	f.SetSheetName(f.GetSheetName(0), sheet)

	for i, h := range reportHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("sel header: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("tulis header: %w", err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		last, _ := excelize.CoordinatesToCellName(len(reportHeaders), 1)
		_ = f.SetCellStyle(sheet, "A1", last, headerStyle)
	}

	for rowIdx, it := range items {
		values := []any{it.Tanggal, it.Kode, it.Nama, it.Alias, it.Jumlah, it.Satuan, it.Unit}
		for colIdx, v := range values {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, fmt.Errorf("sel data: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("tulis baris %d: %w", rowIdx+2, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialisasi workbook: %w", err)
	}
	return buf.Bytes(), nil
}
