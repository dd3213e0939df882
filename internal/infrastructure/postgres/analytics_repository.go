package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/gudangkita/sparepart-api/internal/domain/entity"
	"github.com/gudangkita/sparepart-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo query read-only untuk analisis dan dashboard.
type AnalyticsRepo struct {
	q Querier
}

func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

func (r *AnalyticsRepo) UsageHistory(ctx context.Context, direction entity.Direction, kode, unit, from, to string) ([]repository.UsagePoint, error) {
	table, err := tableFor(direction)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`
		SELECT tanggal, jumlah
		FROM %s
		WHERE UPPER(kode) = UPPER($1)
		  AND UPPER(unit) = UPPER($2)
		  AND tanggal BETWEEN $3 AND $4
		ORDER BY tanggal ASC`, table)
	rows, err := r.q.Query(ctx, query, kode, unit, from, to)
	if err != nil {
		return nil, fmt.Errorf("usage history %s: %w", table, err)
	}
	defer rows.Close()

	var points []repository.UsagePoint
	for rows.Next() {
		var p repository.UsagePoint
		if err := rows.Scan(&p.Tanggal, &p.Jumlah); err != nil {
			return nil, fmt.Errorf("scan usage %s: %w", table, err)
		}
		points = append(points, p)
	}
	return points, rows.Err()
}

func (r *AnalyticsRepo) MonthlyTotals(ctx context.Context, from, to string) (int64, int64, error) {
	query := `
		SELECT
			(SELECT COALESCE(SUM(jumlah), 0) FROM barang_masuk  WHERE tanggal BETWEEN $1 AND $2),
			(SELECT COALESCE(SUM(jumlah), 0) FROM barang_keluar WHERE tanggal BETWEEN $1 AND $2)`
	var masuk, keluar int64
	if err := r.q.QueryRow(ctx, query, from, to).Scan(&masuk, &keluar); err != nil {
		return 0, 0, fmt.Errorf("total bulanan: %w", err)
	}
	return masuk, keluar, nil
}

func (r *AnalyticsRepo) StockSummary(ctx context.Context) (int64, int64, error) {
	query := `SELECT COUNT(*), COALESCE(SUM(jumlah), 0) FROM inventory`
	var jenis, total int64
	if err := r.q.QueryRow(ctx, query).Scan(&jenis, &total); err != nil {
		return 0, 0, fmt.Errorf("ringkasan stok: %w", err)
	}
	return jenis, total, nil
}

func (r *AnalyticsRepo) TopKeluar(ctx context.Context, from, to string, limit int) ([]repository.TopItemResult, error) {
	query := `
		SELECT kode, MAX(nama) AS nama, unit, SUM(jumlah) AS total
		FROM barang_keluar
		WHERE tanggal BETWEEN $1 AND $2
		GROUP BY kode, unit
		ORDER BY total DESC
		LIMIT $3`
	rows, err := r.q.Query(ctx, query, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("top keluar: %w", err)
	}
	defer rows.Close()

	var items []repository.TopItemResult
	for rows.Next() {
		var it repository.TopItemResult
		if err := rows.Scan(&it.Kode, &it.Nama, &it.Unit, &it.TotalKeluar); err != nil {
			return nil, fmt.Errorf("scan top keluar: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *AnalyticsRepo) AvgDailyKeluar(ctx context.Context, from, to string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(AVG(total_harian), 0)
		FROM (
			SELECT SUM(jumlah) AS total_harian
			FROM barang_keluar
			WHERE tanggal BETWEEN $1 AND $2
			GROUP BY tanggal
		) harian`
	var avg decimal.Decimal
	if err := r.q.QueryRow(ctx, query, from, to).Scan(&avg); err != nil {
		return decimal.Zero, fmt.Errorf("rata-rata keluar harian: %w", err)
	}
	return avg, nil
}
