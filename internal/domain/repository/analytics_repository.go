package repository

import (
	"context"

	"github.com/gudangkita/sparepart-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// UsagePoint satu titik histori pemakaian, urut tanggal naik.
type UsagePoint struct {
	Tanggal string
	Jumlah  int64
}

// TopItemResult agregat barang keluar terbanyak pada satu periode.
type TopItemResult struct {
	Kode        string
	Nama        string
	Unit        string
	TotalKeluar int64
}

// AnalyticsRepository port query read-only untuk analisis MA dan ringkasan dashboard.
type AnalyticsRepository interface {
	// UsageHistory mengambil histori jumlah per transaksi untuk satu pasangan
	// kode+unit (cocok case-insensitive), tanggal dari..sampai inklusif, urut naik.
	UsageHistory(ctx context.Context, direction entity.Direction, kode, unit, from, to string) ([]UsagePoint, error)

	// MonthlyTotals total jumlah masuk dan keluar pada rentang tanggal.
	MonthlyTotals(ctx context.Context, from, to string) (masuk, keluar int64, err error)

	// StockSummary jumlah jenis barang dan total stok di proyeksi inventory.
	StockSummary(ctx context.Context) (jenis, totalStok int64, err error)

	// TopKeluar barang dengan total keluar terbanyak pada rentang tanggal.
	TopKeluar(ctx context.Context, from, to string, limit int) ([]TopItemResult, error)

	// AvgDailyKeluar rata-rata jumlah keluar per hari aktif pada rentang tanggal
	// (agregat NUMERIC, di-scan ke decimal).
	AvgDailyKeluar(ctx context.Context, from, to string) (decimal.Decimal, error)
}
