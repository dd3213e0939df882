package analytics

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gudangkita/sparepart-api/internal/application/dto"
	"github.com/gudangkita/sparepart-api/internal/domain/repository"
)

const dashboardTopItems = 5 // jumlah barang di widget barang keluar terbanyak

// DashboardUseCase ringkasan bulan berjalan untuk halaman dashboard.
// Semua data dari AnalyticsRepository (query read-only); halaman tidak perlu
// lagi menarik tiga tabel penuh dan mengagregasi di klien.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase membangun use case dashboard.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetRingkasan menyusun DashboardSummaryDTO. Empat query dijalankan paralel.
func (uc *DashboardUseCase) GetRingkasan(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Format("2006-01-02")
	to := now.Format("2006-01-02")

	type totalsResult struct {
		masuk, keluar int64
		err           error
	}
	type stockResult struct {
		jenis, total int64
		err          error
	}
	type topResult struct {
		items []repository.TopItemResult
		err   error
	}
	type avgResult struct {
		avg decimal.Decimal
		err error
	}

	totalsCh := make(chan totalsResult, 1)
	stockCh := make(chan stockResult, 1)
	topCh := make(chan topResult, 1)
	avgCh := make(chan avgResult, 1)

	go func() {
		masuk, keluar, err := uc.analyticsRepo.MonthlyTotals(ctx, from, to)
		totalsCh <- totalsResult{masuk, keluar, err}
	}()
	go func() {
		jenis, total, err := uc.analyticsRepo.StockSummary(ctx)
		stockCh <- stockResult{jenis, total, err}
	}()
	go func() {
		items, err := uc.analyticsRepo.TopKeluar(ctx, from, to, dashboardTopItems)
		topCh <- topResult{items, err}
	}()
	go func() {
		avg, err := uc.analyticsRepo.AvgDailyKeluar(ctx, from, to)
		avgCh <- avgResult{avg, err}
	}()

	totals := <-totalsCh
	stock := <-stockCh
	top := <-topCh
	avg := <-avgCh

	for _, err := range []error{totals.err, stock.err, top.err, avg.err} {
		if err != nil {
			return nil, err
		}
	}

	topDTOs := make([]dto.TopItemDTO, len(top.items))
	for i, it := range top.items {
		topDTOs[i] = dto.TopItemDTO{
			Kode:        it.Kode,
			Nama:        it.Nama,
			Unit:        it.Unit,
			TotalKeluar: it.TotalKeluar,
		}
	}

	return &dto.DashboardSummaryDTO{
		TotalMasukBulanIni:   totals.masuk,
		TotalKeluarBulanIni:  totals.keluar,
		RataRataKeluarHarian: avg.avg.Round(2).StringFixed(2),
		JumlahJenisBarang:    stock.jenis,
		TotalStok:            stock.total,
		TopBarangKeluar:      topDTOs,
	}, nil
}
