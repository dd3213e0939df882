package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gudangkita/sparepart-api/internal/domain/entity"
	"github.com/gudangkita/sparepart-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

const inventoryColumns = "id, tanggal, kode, nama, alias, jumlah, satuan, unit"

// InventoryRepo implementasi InventoryRepository di PostgreSQL.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository membangun adaptor proyeksi stok.
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

func (r *InventoryRepo) GetByID(id string) (*entity.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetForUpdate mengunci baris (kode, unit) selama transaksi berjalan supaya
// dua rekonsiliasi pada kunci yang sama tidak saling menimpa.
func (r *InventoryRepo) GetForUpdate(kode, unit string) (*entity.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory WHERE kode = $1 AND unit = $2 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, kode, unit))
}

func (r *InventoryRepo) scanOne(row pgx.Row) (*entity.InventoryItem, error) {
	var it entity.InventoryItem
	err := row.Scan(&it.ID, &it.Tanggal, &it.Kode, &it.Nama, &it.Alias, &it.Jumlah, &it.Satuan, &it.Unit)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return &it, nil
}

func (r *InventoryRepo) Insert(item *entity.InventoryItem) error {
	query := `
		INSERT INTO inventory (id, tanggal, kode, nama, alias, jumlah, satuan, unit)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Tanggal, item.Kode, item.Nama, item.Alias, item.Jumlah, item.Satuan, item.Unit)
	if err != nil {
		return fmt.Errorf("insert inventory: %w", err)
	}
	return nil
}

// UpdateReconciled menyimpan hasil rekonsiliasi: jumlah baru plus metadata
// tampilan dari transaksi terakhir. Alias tidak disentuh.
func (r *InventoryRepo) UpdateReconciled(item *entity.InventoryItem) error {
	query := `
		UPDATE inventory SET tanggal = $2, nama = $3, jumlah = $4, satuan = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Tanggal, item.Nama, item.Jumlah, item.Satuan)
	if err != nil {
		return fmt.Errorf("update inventory (rekonsiliasi): %w", err)
	}
	return nil
}

func (r *InventoryRepo) UpsertSnapshot(item *entity.InventoryItem) error {
	query := `
		INSERT INTO inventory (id, tanggal, kode, nama, alias, jumlah, satuan, unit)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (kode, unit) DO UPDATE SET
			tanggal = excluded.tanggal,
			nama    = excluded.nama,
			alias   = excluded.alias,
			jumlah  = excluded.jumlah,
			satuan  = excluded.satuan`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Tanggal, item.Kode, item.Nama, item.Alias, item.Jumlah, item.Satuan, item.Unit)
	if err != nil {
		return fmt.Errorf("upsert inventory: %w", err)
	}
	return nil
}

func (r *InventoryRepo) Update(item *entity.InventoryItem) error {
	query := `
		UPDATE inventory
		SET tanggal = $2, kode = $3, nama = $4, alias = $5, jumlah = $6, satuan = $7, unit = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Tanggal, item.Kode, item.Nama, item.Alias, item.Jumlah, item.Satuan, item.Unit)
	if err != nil {
		return fmt.Errorf("update inventory: %w", err)
	}
	return nil
}

func (r *InventoryRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM inventory WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete inventory: %w", err)
	}
	return nil
}

func (r *InventoryRepo) List(unitFilter string) ([]*entity.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory`
	args := []any{}
	if unitFilter != "" {
		query += ` WHERE UPPER(unit) = UPPER($1)`
		args = append(args, unitFilter)
	}
	query += ` ORDER BY kode ASC, unit ASC`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()

	var list []*entity.InventoryItem
	for rows.Next() {
		var it entity.InventoryItem
		if err := rows.Scan(&it.ID, &it.Tanggal, &it.Kode, &it.Nama, &it.Alias, &it.Jumlah, &it.Satuan, &it.Unit); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

func (r *InventoryRepo) ListUnits() ([]string, error) {
	query := `
		SELECT DISTINCT UPPER(unit) AS unit
		FROM inventory
		WHERE unit IS NOT NULL AND unit <> ''
		ORDER BY unit ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}
	defer rows.Close()

	var units []string
	for rows.Next() {
		var u string
		if err := rows.Scan(&u); err != nil {
			return nil, fmt.Errorf("scan unit: %w", err)
		}
		units = append(units, u)
	}
	return units, rows.Err()
}

func (r *InventoryRepo) DeleteAll() error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM inventory`)
	if err != nil {
		return fmt.Errorf("delete all inventory: %w", err)
	}
	return nil
}
