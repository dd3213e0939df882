// Package importer memproses file spreadsheet hasil upload menjadi baris
// histori transaksi atau snapshot inventory.
package importer

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/gudangkita/sparepart-api/internal/domain/entity"
	invrules "github.com/gudangkita/sparepart-api/internal/domain/inventory"
	"github.com/gudangkita/sparepart-api/internal/domain/repository"
)

// Target tujuan import.
type Target string

const (
	TargetBarangMasuk  Target = "barang_masuk"
	TargetBarangKeluar Target = "barang_keluar"
	TargetInventory    Target = "inventory"
)

// SpreadsheetReader port pembaca spreadsheet: sheet pertama sebagai baris
// map header→nilai sel (string). Error berarti file tidak terbaca sama sekali.
type SpreadsheetReader interface {
	Read(path string) ([]map[string]string, error)
}

// Summary hasil satu batch import.
type Summary struct {
	Dibaca   int `json:"dibaca"`
	Masuk    int `json:"masuk"`
	Dilewati int `json:"dilewati"`
}

// UseCase import massal dari spreadsheet. Import histori menambah baris tanpa
// rekonsiliasi; import inventory menimpa baris proyeksi per (kode, unit)
// secara "set" (snapshot stock opname), melewati Reconciler.
type UseCase struct {
	reader     SpreadsheetReader
	ledgerRepo repository.LedgerRepository
	invRepo    repository.InventoryRepository
}

// NewUseCase membangun use case import.
func NewUseCase(reader SpreadsheetReader, ledgerRepo repository.LedgerRepository, invRepo repository.InventoryRepository) *UseCase {
	return &UseCase{reader: reader, ledgerRepo: ledgerRepo, invRepo: invRepo}
}

// Import membaca file di path dan memuatnya ke target. Error baca file
// menggagalkan seluruh batch; masalah per baris hanya melewati baris itu.
// Penghapusan file sementara adalah tanggung jawab pemanggil.
func (uc *UseCase) Import(ctx context.Context, target Target, path string) (Summary, error) {
	rows, err := uc.reader.Read(path)
	if err != nil {
		return Summary{}, err
	}

	sum := Summary{Dibaca: len(rows)}
	for i, row := range rows {
		var ok bool
		switch target {
		case TargetInventory:
			ok = uc.importInventoryRow(row)
		case TargetBarangMasuk:
			ok = uc.importLedgerRow(entity.DirectionMasuk, row)
		case TargetBarangKeluar:
			ok = uc.importLedgerRow(entity.DirectionKeluar, row)
		}
		if ok {
			sum.Masuk++
		} else {
			sum.Dilewati++
			log.Debug().Int("baris", i).Str("target", string(target)).Msg("baris import dilewati")
		}
	}
	return sum, nil
}

func (uc *UseCase) importLedgerRow(direction entity.Direction, row map[string]string) bool {
	kode := invrules.NormalizeKode(cell(row, "Kode"))
	nama := strings.TrimSpace(cell(row, "Nama Barang", "Nama"))
	if kode == "" || nama == "" {
		return false
	}
	jumlah := parseJumlah(cell(row, "Jumlah"))
	if jumlah <= 0 {
		return false
	}

	entry := &entity.LedgerEntry{
		ID:      uuid.New().String(),
		Tanggal: ConvertExcelDate(cell(row, "Tanggal")),
		Kode:    kode,
		Nama:    nama,
		Jumlah:  jumlah,
		Satuan:  strings.TrimSpace(cell(row, "Satuan")),
		Unit:    invrules.NormalizeUnit(cell(row, "Unit")),
	}
	if err := uc.ledgerRepo.Create(direction, entry); err != nil {
		log.Error().Err(err).Str("kode", kode).Msg("gagal menyimpan baris histori import")
		return false
	}
	return true
}

func (uc *UseCase) importInventoryRow(row map[string]string) bool {
	kode := invrules.NormalizeKode(cell(row, "Kode"))
	nama := strings.TrimSpace(cell(row, "Nama Barang", "Nama"))
	if kode == "" || nama == "" {
		return false
	}

	tanggal := ConvertExcelDate(cell(row, "Tanggal"))
	if tanggal == "" {
		tanggal = time.Now().Format("2006-01-02")
	}

	item := &entity.InventoryItem{
		ID:      uuid.New().String(),
		Tanggal: tanggal,
		Kode:    kode,
		Nama:    nama,
		Alias:   strings.TrimSpace(cell(row, "Alias")),
		Jumlah:  parseJumlah(cell(row, "Sisa Akhir", "Jumlah")),
		Satuan:  strings.TrimSpace(cell(row, "Satuan")),
		Unit:    invrules.NormalizeUnit(cell(row, "Unit")),
	}
	if err := uc.invRepo.UpsertSnapshot(item); err != nil {
		log.Error().Err(err).Str("kode", kode).Msg("gagal upsert baris inventory import")
		return false
	}
	return true
}

// cell mengambil nilai kolom pertama yang ada dari daftar nama header.
func cell(row map[string]string, names ...string) string {
	for _, n := range names {
		if v, ok := row[n]; ok && strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// parseJumlah membaca kuantitas sel; nilai tak terbaca menjadi 0.
// Angka dari Excel bisa muncul sebagai "12" maupun "12.0".
func parseJumlah(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int64(f)
	}
	return 0
}

// excelEpochOffset hari antara epoch serial Excel (1900) dan epoch Unix.
const excelEpochOffset = 25569

// ConvertExcelDate menormalkan sel tanggal menjadi YYYY-MM-DD.
// Serial numerik Excel dihitung (serial − 25569) × 86400 detik dari epoch Unix;
// nilai non-numerik dicoba sebagai tanggal kalender; gagal semua → string kosong.
func ConvertExcelDate(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		secs := int64((serial - excelEpochOffset) * 86400)
		return time.Unix(secs, 0).UTC().Format("2006-01-02")
	}
	layouts := []string{
		"2006-01-02",
		time.RFC3339,
		"01/02/2006",
		"1/2/2006",
		"02-01-2006",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return ""
}
