// Package pdf membangun laporan stok inventory dalam format PDF (Maroto v2).
//
// Layout halaman A4:
//
//	┌─────────────────────────────────────────────────────┐
//	│  HEADER: Judul laporan + tanggal cetak              │
//	│  ───────────────────────────────────────────────    │
//	│  TABEL: Kode | Nama | Alias | Stok | Satuan | Unit  │
//	│  ───────────────────────────────────────────────    │
//	│  FOOTER: jumlah jenis barang + total stok           │
//	└─────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/gudangkita/sparepart-api/internal/application/report"
	"github.com/gudangkita/sparepart-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ report.InventoryPDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementasi report.InventoryPDFGenerator dengan Maroto v2.
type MarotoReportGenerator struct{}

func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// Generate menghasilkan byte PDF laporan stok.
func (g *MarotoReportGenerator) Generate(items []*entity.InventoryItem, dicetak time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Laporan Stok Sparepart", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(dicetak))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, it := range items {
		m.AddRows(itemRow(it))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(summaryRow(items))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate dokumen: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(dicetak time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Laporan Stok Sparepart Gudang", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Dicetak: "+dicetak.Format("02/01/2006 15:04"), props.Text{
				Size: 9, Top: 3, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := func(size int, label string, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: a, Color: colorPrimary,
		}))
	}
	return row.New(7).Add(
		header(2, "Kode", align.Left),
		header(4, "Nama Barang", align.Left),
		header(2, "Alias", align.Left),
		header(1, "Stok", align.Right),
		header(1, "Satuan", align.Left),
		header(2, "Unit", align.Left),
	)
}

func itemRow(it *entity.InventoryItem) core.Row {
	cell := func(size int, value string, a align.Type) core.Col {
		return col.New(size).Add(text.New(value, props.Text{Size: 8, Align: a}))
	}
	return row.New(5).Add(
		cell(2, it.Kode, align.Left),
		cell(4, it.Nama, align.Left),
		cell(2, it.Alias, align.Left),
		cell(1, fmt.Sprintf("%d", it.Jumlah), align.Right),
		cell(1, it.Satuan, align.Left),
		cell(2, it.Unit, align.Left),
	)
}

func summaryRow(items []*entity.InventoryItem) core.Row {
	var total int64
	for _, it := range items {
		total += it.Jumlah
	}
	resume := fmt.Sprintf("%d jenis barang, total stok %d", len(items), total)
	return row.New(8).Add(
		col.New(12).Add(text.New(resume, props.Text{
			Style: fontstyle.Bold, Size: 9, Top: 2, Align: align.Right,
		})),
	)
}
