package repository

import "github.com/gudangkita/sparepart-api/internal/domain/entity"

// InventoryRepository port persistensi proyeksi stok (tabel inventory,
// unik per (kode, unit)). Get* mengembalikan nil bila baris tidak ada.
type InventoryRepository interface {
	GetByID(id string) (*entity.InventoryItem, error)
	// GetForUpdate mengunci baris (SELECT FOR UPDATE) supaya rekonsiliasi
	// kunci (kode, unit) yang sama terserialisasi di level store.
	GetForUpdate(kode, unit string) (*entity.InventoryItem, error)
	Insert(item *entity.InventoryItem) error
	// UpdateReconciled menimpa jumlah dan metadata tampilan hasil rekonsiliasi;
	// alias dibiarkan.
	UpdateReconciled(item *entity.InventoryItem) error
	// UpsertSnapshot menimpa seluruh baris per (kode, unit): operasi "set"
	// untuk hasil stock opname, bukan akumulasi delta.
	UpsertSnapshot(item *entity.InventoryItem) error
	Update(item *entity.InventoryItem) error
	Delete(id string) error
	List(unitFilter string) ([]*entity.InventoryItem, error)
	ListUnits() ([]string, error)
	DeleteAll() error
}
