package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gudangkita/sparepart-api/internal/application/dto"
	"github.com/gudangkita/sparepart-api/internal/domain"
	"github.com/gudangkita/sparepart-api/internal/domain/entity"
	invrules "github.com/gudangkita/sparepart-api/internal/domain/inventory"
	"github.com/gudangkita/sparepart-api/internal/domain/repository"
)

// TransactionUseCase mencatat transaksi barang masuk/keluar dan menjaga
// proyeksi inventory tetap sinkron. Penulisan histori dan rekonsiliasi
// berjalan dalam satu transaksi store (TxRunner), bukan fire-and-forget.
type TransactionUseCase struct {
	txRunner   TxRunner
	ledgerRepo repository.LedgerRepository
}

// NewTransactionUseCase membangun use case transaksi.
func NewTransactionUseCase(txRunner TxRunner, ledgerRepo repository.LedgerRepository) *TransactionUseCase {
	return &TransactionUseCase{txRunner: txRunner, ledgerRepo: ledgerRepo}
}

// RegisterMasuk mencatat barang masuk: baris histori + delta positif ke proyeksi.
func (uc *TransactionUseCase) RegisterMasuk(ctx context.Context, in dto.TransactionRequest) (string, error) {
	return uc.register(ctx, entity.DirectionMasuk, in)
}

// RegisterKeluar mencatat barang keluar: baris histori + delta negatif ke proyeksi.
// Stok yang tidak mencukupi BUKAN alasan penolakan; proyeksi dipangkas di nol.
func (uc *TransactionUseCase) RegisterKeluar(ctx context.Context, in dto.TransactionRequest) (string, error) {
	return uc.register(ctx, entity.DirectionKeluar, in)
}

func (uc *TransactionUseCase) register(ctx context.Context, direction entity.Direction, in dto.TransactionRequest) (string, error) {
	entry, err := buildEntry(in)
	if err != nil {
		return "", err
	}
	entry.ID = uuid.New().String()

	delta := entry.Jumlah
	if direction == entity.DirectionKeluar {
		delta = -entry.Jumlah
	}

	err = uc.txRunner.Run(ctx, func(lr repository.LedgerRepository, ir repository.InventoryRepository) error {
		if err := lr.Create(direction, entry); err != nil {
			return err
		}
		return applyDelta(ir, DeltaInput{
			Tanggal: entry.Tanggal,
			Kode:    entry.Kode,
			Nama:    entry.Nama,
			Satuan:  entry.Satuan,
			Unit:    entry.Unit,
			Delta:   delta,
		})
	})
	if err != nil {
		return "", err
	}
	return entry.ID, nil
}

// UpdateKeluar mengedit baris barang keluar. Dalam satu transaksi: delta lama
// dikembalikan (undo), delta baru diterapkan (redo), baru baris histori
// ditimpa. Proyeksi tidak pernah lepas sinkron dari baris yang diedit.
func (uc *TransactionUseCase) UpdateKeluar(ctx context.Context, id string, in dto.TransactionRequest) error {
	entry, err := buildEntry(in)
	if err != nil {
		return err
	}
	entry.ID = id

	return uc.txRunner.Run(ctx, func(lr repository.LedgerRepository, ir repository.InventoryRepository) error {
		old, err := lr.GetByID(entity.DirectionKeluar, id)
		if err != nil {
			return err
		}
		if old == nil {
			return domain.ErrNotFound
		}
		// Undo: kembalikan stok di kunci lama
		if err := applyDelta(ir, DeltaInput{
			Tanggal: entry.Tanggal,
			Kode:    old.Kode,
			Nama:    old.Nama,
			Satuan:  old.Satuan,
			Unit:    old.Unit,
			Delta:   +old.Jumlah,
		}); err != nil {
			return err
		}
		// Redo: terapkan pengeluaran baru di kunci baru (bisa berbeda bila kode/unit berubah)
		if err := applyDelta(ir, DeltaInput{
			Tanggal: entry.Tanggal,
			Kode:    entry.Kode,
			Nama:    entry.Nama,
			Satuan:  entry.Satuan,
			Unit:    entry.Unit,
			Delta:   -entry.Jumlah,
		}); err != nil {
			return err
		}
		return lr.Update(entity.DirectionKeluar, entry)
	})
}

// DeleteKeluar menghapus baris barang keluar dan mengembalikan stoknya,
// dicap dengan tanggal penghapusan (hari ini), bukan tanggal transaksi asal.
func (uc *TransactionUseCase) DeleteKeluar(ctx context.Context, id string) error {
	today := time.Now().Format("2006-01-02")

	return uc.txRunner.Run(ctx, func(lr repository.LedgerRepository, ir repository.InventoryRepository) error {
		old, err := lr.GetByID(entity.DirectionKeluar, id)
		if err != nil {
			return err
		}
		if old == nil {
			return domain.ErrNotFound
		}
		if err := lr.Delete(entity.DirectionKeluar, id); err != nil {
			return err
		}
		return applyDelta(ir, DeltaInput{
			Tanggal: today,
			Kode:    old.Kode,
			Nama:    old.Nama,
			Satuan:  old.Satuan,
			Unit:    old.Unit,
			Delta:   +old.Jumlah,
		})
	})
}

// ListMasuk seluruh histori barang masuk.
func (uc *TransactionUseCase) ListMasuk(ctx context.Context) ([]*entity.LedgerEntry, error) {
	return uc.ledgerRepo.List(entity.DirectionMasuk)
}

// ListKeluar seluruh histori barang keluar.
func (uc *TransactionUseCase) ListKeluar(ctx context.Context) ([]*entity.LedgerEntry, error) {
	return uc.ledgerRepo.List(entity.DirectionKeluar)
}

// buildEntry memvalidasi request dan membentuk baris histori ternormalisasi.
func buildEntry(in dto.TransactionRequest) (*entity.LedgerEntry, error) {
	tanggal := strings.TrimSpace(in.Tanggal)
	nama := strings.TrimSpace(in.Nama)
	satuan := strings.TrimSpace(in.Satuan)
	kode := invrules.NormalizeKode(in.Kode)
	jumlah := in.Jumlah.Int64()

	if tanggal == "" || kode == "" || nama == "" || satuan == "" || jumlah <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if _, err := time.Parse("2006-01-02", tanggal); err != nil {
		return nil, domain.ErrInvalidInput
	}

	return &entity.LedgerEntry{
		Tanggal: tanggal,
		Kode:    kode,
		Nama:    nama,
		Jumlah:  jumlah,
		Satuan:  satuan,
		Unit:    invrules.NormalizeUnit(in.Unit),
	}, nil
}
