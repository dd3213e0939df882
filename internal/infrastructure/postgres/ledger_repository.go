package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gudangkita/sparepart-api/internal/domain/entity"
	"github.com/gudangkita/sparepart-api/internal/domain/repository"
)

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

// ledgerTables pemetaan arah transaksi ke nama tabel. Nama tabel hanya
// berasal dari peta ini, tidak pernah dari input, jadi aman disisipkan ke SQL.
var ledgerTables = map[entity.Direction]string{
	entity.DirectionMasuk:  "barang_masuk",
	entity.DirectionKeluar: "barang_keluar",
}

// LedgerRepo implementasi LedgerRepository di PostgreSQL (bisa pool atau tx).
type LedgerRepo struct {
	q Querier
}

// NewLedgerRepository membangun adaptor histori. Terima pool atau tx (Querier).
func NewLedgerRepository(q Querier) *LedgerRepo {
	return &LedgerRepo{q: q}
}

func tableFor(direction entity.Direction) (string, error) {
	table, ok := ledgerTables[direction]
	if !ok {
		return "", fmt.Errorf("arah transaksi tidak dikenal: %q", direction)
	}
	return table, nil
}

// Create menyimpan satu baris histori.
func (r *LedgerRepo) Create(direction entity.Direction, e *entity.LedgerEntry) error {
	table, err := tableFor(direction)
	if err != nil {
		return err
	}
	query := fmt.Sprintf(`
		INSERT INTO %s (id, tanggal, kode, nama, jumlah, satuan, unit)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`, table)
	_, err = r.q.Exec(context.Background(), query,
		e.ID, e.Tanggal, e.Kode, e.Nama, e.Jumlah, e.Satuan, e.Unit)
	if err != nil {
		return fmt.Errorf("insert %s: %w", table, err)
	}
	return nil
}

// GetByID mengambil satu baris histori; nil bila tidak ada.
func (r *LedgerRepo) GetByID(direction entity.Direction, id string) (*entity.LedgerEntry, error) {
	table, err := tableFor(direction)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`
		SELECT id, tanggal, kode, nama, jumlah, satuan, unit
		FROM %s WHERE id = $1`, table)
	var e entity.LedgerEntry
	err = r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.Tanggal, &e.Kode, &e.Nama, &e.Jumlah, &e.Satuan, &e.Unit)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s: %w", table, err)
	}
	return &e, nil
}

// Update menimpa satu baris histori berdasarkan id.
func (r *LedgerRepo) Update(direction entity.Direction, e *entity.LedgerEntry) error {
	table, err := tableFor(direction)
	if err != nil {
		return err
	}
	query := fmt.Sprintf(`
		UPDATE %s SET tanggal = $2, kode = $3, nama = $4, jumlah = $5, satuan = $6, unit = $7
		WHERE id = $1`, table)
	_, err = r.q.Exec(context.Background(), query,
		e.ID, e.Tanggal, e.Kode, e.Nama, e.Jumlah, e.Satuan, e.Unit)
	if err != nil {
		return fmt.Errorf("update %s: %w", table, err)
	}
	return nil
}

// Delete menghapus satu baris histori berdasarkan id.
func (r *LedgerRepo) Delete(direction entity.Direction, id string) error {
	table, err := tableFor(direction)
	if err != nil {
		return err
	}
	_, err = r.q.Exec(context.Background(), fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, table), id)
	if err != nil {
		return fmt.Errorf("delete %s: %w", table, err)
	}
	return nil
}

// List seluruh isi tabel histori, urut tanggal lalu kode.
func (r *LedgerRepo) List(direction entity.Direction) ([]*entity.LedgerEntry, error) {
	table, err := tableFor(direction)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`
		SELECT id, tanggal, kode, nama, jumlah, satuan, unit
		FROM %s ORDER BY tanggal ASC, kode ASC`, table)
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", table, err)
	}
	defer rows.Close()

	var list []*entity.LedgerEntry
	for rows.Next() {
		var e entity.LedgerEntry
		if err := rows.Scan(&e.ID, &e.Tanggal, &e.Kode, &e.Nama, &e.Jumlah, &e.Satuan, &e.Unit); err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// DeleteAll mengosongkan tabel histori.
func (r *LedgerRepo) DeleteAll(direction entity.Direction) error {
	table, err := tableFor(direction)
	if err != nil {
		return err
	}
	_, err = r.q.Exec(context.Background(), fmt.Sprintf(`DELETE FROM %s`, table))
	if err != nil {
		return fmt.Errorf("delete all %s: %w", table, err)
	}
	return nil
}
