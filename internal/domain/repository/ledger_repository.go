package repository

import "github.com/gudangkita/sparepart-api/internal/domain/entity"

// LedgerRepository port persistensi untuk dua tabel histori transaksi
// (barang_masuk dan barang_keluar), dipilih lewat Direction.
type LedgerRepository interface {
	Create(direction entity.Direction, e *entity.LedgerEntry) error
	GetByID(direction entity.Direction, id string) (*entity.LedgerEntry, error)
	Update(direction entity.Direction, e *entity.LedgerEntry) error
	Delete(direction entity.Direction, id string) error
	List(direction entity.Direction) ([]*entity.LedgerEntry, error)
	DeleteAll(direction entity.Direction) error
}
