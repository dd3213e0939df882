package inventory

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/gudangkita/sparepart-api/internal/domain/entity"
	invrules "github.com/gudangkita/sparepart-api/internal/domain/inventory"
	"github.com/gudangkita/sparepart-api/internal/domain/repository"
)

// DeltaInput satu rekonsiliasi: delta bertanda untuk kunci (kode, unit)
// plus metadata tampilan yang dicap ke baris proyeksi.
type DeltaInput struct {
	Tanggal string
	Kode    string
	Nama    string
	Satuan  string
	Unit    string
	Delta   int64 // positif = barang masuk / pengembalian, negatif = barang keluar
}

// applyDelta menerapkan delta ke baris proyeksi (kode, unit).
// Harus dipanggil dengan invRepo yang terikat transaksi: GetForUpdate mengunci
// baris sehingga rekonsiliasi kunci yang sama terserialisasi.
// Baris belum ada → dibuat dengan jumlah max(0, delta); delta awal negatif
// menghasilkan baris nol, bukan error. Baris ada → jumlah = max(0, lama+delta);
// pemangkasan ke nol tidak pernah menolak transaksi, hanya dicatat.
func applyDelta(invRepo repository.InventoryRepository, in DeltaInput) error {
	row, err := invRepo.GetForUpdate(in.Kode, in.Unit)
	if err != nil {
		return err
	}

	if row == nil {
		jumlah := invrules.ApplyDelta(0, in.Delta)
		if in.Delta < 0 {
			log.Warn().Str("kode", in.Kode).Str("unit", in.Unit).Int64("delta", in.Delta).
				Msg("rekonsiliasi: delta negatif pada barang baru, stok awal dipangkas ke 0")
		}
		return invRepo.Insert(&entity.InventoryItem{
			ID:      uuid.New().String(),
			Tanggal: in.Tanggal,
			Kode:    in.Kode,
			Nama:    in.Nama,
			Alias:   "",
			Jumlah:  jumlah,
			Satuan:  in.Satuan,
			Unit:    in.Unit,
		})
	}

	next := invrules.ApplyDelta(row.Jumlah, in.Delta)
	if row.Jumlah+in.Delta < 0 {
		log.Warn().Str("kode", in.Kode).Str("unit", in.Unit).
			Int64("stok_lama", row.Jumlah).Int64("delta", in.Delta).
			Msg("rekonsiliasi: stok dipangkas ke 0, histori dan proyeksi tidak lagi setara")
	}
	row.Jumlah = next
	row.Tanggal = in.Tanggal
	row.Nama = in.Nama
	row.Satuan = in.Satuan
	return invRepo.UpdateReconciled(row)
}
