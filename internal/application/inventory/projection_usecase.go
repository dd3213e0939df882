package inventory

import (
	"context"

	"github.com/gudangkita/sparepart-api/internal/application/dto"
	"github.com/gudangkita/sparepart-api/internal/domain"
	"github.com/gudangkita/sparepart-api/internal/domain/entity"
	"github.com/gudangkita/sparepart-api/internal/domain/repository"
)

// ProjectionUseCase operasi langsung pada tabel proyeksi inventory:
// daftar, edit parsial, hapus baris, daftar unit, dan reset seluruh data.
// Jalur ini melewati Reconciler; dipakai untuk koreksi manual dan stock opname.
type ProjectionUseCase struct {
	txRunner TxRunner
	invRepo  repository.InventoryRepository
}

// NewProjectionUseCase membangun use case proyeksi.
func NewProjectionUseCase(txRunner TxRunner, invRepo repository.InventoryRepository) *ProjectionUseCase {
	return &ProjectionUseCase{txRunner: txRunner, invRepo: invRepo}
}

// List mengembalikan isi inventory, opsional difilter satu unit.
// "Semua Unit" atau string kosong berarti tanpa filter.
func (uc *ProjectionUseCase) List(ctx context.Context, unit string) ([]*entity.InventoryItem, error) {
	if unit == "Semua Unit" {
		unit = ""
	}
	return uc.invRepo.List(unit)
}

// Update edit parsial satu baris inventory; field yang tidak dikirim
// mempertahankan nilai lama. ErrNotFound bila id tidak ada.
func (uc *ProjectionUseCase) Update(ctx context.Context, id string, in dto.InventoryUpdateRequest) error {
	old, err := uc.invRepo.GetByID(id)
	if err != nil {
		return err
	}
	if old == nil {
		return domain.ErrNotFound
	}

	if in.Tanggal != nil {
		old.Tanggal = *in.Tanggal
	}
	if k := in.FinalKode(); k != nil {
		old.Kode = *k
	}
	if n := in.FinalNama(); n != nil {
		old.Nama = *n
	}
	if in.Alias != nil {
		old.Alias = *in.Alias
	}
	if j := in.FinalJumlah(); j != nil {
		old.Jumlah = j.Int64()
	}
	if in.Satuan != nil {
		old.Satuan = *in.Satuan
	}
	if in.Unit != nil {
		old.Unit = *in.Unit
	}

	return uc.invRepo.Update(old)
}

// Delete menghapus satu baris inventory. Baris yang tidak ada bukan error
// (idempoten, mengikuti kontrak endpoint lama).
func (uc *ProjectionUseCase) Delete(ctx context.Context, id string) error {
	return uc.invRepo.Delete(id)
}

// ListUnits daftar unit unik (huruf besar) dari inventory, urut naik.
func (uc *ProjectionUseCase) ListUnits(ctx context.Context) ([]string, error) {
	return uc.invRepo.ListUnits()
}

// ResetAll mengosongkan ketiga tabel (histori masuk, histori keluar, inventory)
// dalam satu transaksi.
func (uc *ProjectionUseCase) ResetAll(ctx context.Context) error {
	return uc.txRunner.Run(ctx, func(lr repository.LedgerRepository, ir repository.InventoryRepository) error {
		if err := lr.DeleteAll(entity.DirectionMasuk); err != nil {
			return err
		}
		if err := lr.DeleteAll(entity.DirectionKeluar); err != nil {
			return err
		}
		return ir.DeleteAll()
	})
}
