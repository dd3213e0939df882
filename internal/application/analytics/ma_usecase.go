// Package analytics berisi use case analisis pemakaian suku cadang dan
// ringkasan dashboard.
package analytics

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gudangkita/sparepart-api/internal/application/dto"
	"github.com/gudangkita/sparepart-api/internal/domain"
	"github.com/gudangkita/sparepart-api/internal/domain/entity"
	"github.com/gudangkita/sparepart-api/internal/domain/forecast"
	"github.com/gudangkita/sparepart-api/internal/domain/repository"
)

// historyMonths rentang histori yang dianalisis (bulan penuh ke belakang).
const historyMonths = 6

// MovingAverageUseCase analisis moving average pemakaian satu suku cadang
// pada satu unit alat, arah masuk dan keluar dihitung terpisah.
type MovingAverageUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewMovingAverageUseCase membangun use case analisis MA.
func NewMovingAverageUseCase(analyticsRepo repository.AnalyticsRepository) *MovingAverageUseCase {
	return &MovingAverageUseCase{analyticsRepo: analyticsRepo}
}

// Analyze mengambil histori 6 bulan terakhir (cocok kode+unit case-insensitive),
// menghitung deret MA per arah, dan memakai rata-rata jendela terakhir sebagai
// prediksi t+1. Kedua histori kosong → ErrNotFound, bukan hasil kosong yang valid.
func (uc *MovingAverageUseCase) Analyze(ctx context.Context, kode, unit string, period int) (*dto.MAResponse, error) {
	if strings.TrimSpace(kode) == "" || strings.TrimSpace(unit) == "" || period < 2 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	from := monthStart.AddDate(0, -historyMonths, 0).Format("2006-01-02")
	to := monthStart.AddDate(0, 1, -1).Format("2006-01-02") // akhir bulan berjalan

	keluar, err := uc.analyticsRepo.UsageHistory(ctx, entity.DirectionKeluar, kode, unit, from, to)
	if err != nil {
		return nil, err
	}
	masuk, err := uc.analyticsRepo.UsageHistory(ctx, entity.DirectionMasuk, kode, unit, from, to)
	if err != nil {
		return nil, err
	}
	if len(keluar) == 0 && len(masuk) == 0 {
		return nil, domain.ErrNotFound
	}

	histKeluar, prediksiKeluar := analyzeDirection(keluar, period)
	histMasuk, prediksiMasuk := analyzeDirection(masuk, period)

	return &dto.MAResponse{
		DataHistoriKeluar:    histKeluar,
		PrediksiTPlus1Keluar: prediksiKeluar,
		DataHistoriMasuk:     histMasuk,
		PrediksiTPlus1Masuk:  prediksiMasuk,
		PeriodeMA:            period,
	}, nil
}

func analyzeDirection(points []repository.UsagePoint, period int) ([]dto.MAPointDTO, *string) {
	series := make([]int64, len(points))
	for i, p := range points {
		series[i] = p.Jumlah
	}
	ma := forecast.MovingAverage(series, period)

	hist := make([]dto.MAPointDTO, len(points))
	for i, p := range points {
		hist[i] = dto.MAPointDTO{
			Periode:         p.Tanggal,
			PemakaianAktual: p.Jumlah,
			MovingAverage:   formatMA(ma[i]),
		}
	}

	var prediksi *string
	if next := forecast.NextPeriodForecast(ma); next != nil {
		s := next.StringFixed(2)
		prediksi = &s
	}
	return hist, prediksi
}

// formatMA dua desimal, "-" untuk titik yang jendelanya belum penuh.
func formatMA(v *decimal.Decimal) string {
	if v == nil {
		return "-"
	}
	return v.StringFixed(2)
}
