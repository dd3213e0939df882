// Package inventory berisi aturan murni domain gudang: normalisasi kode
// barang dan nama unit alat. Tidak menyentuh store maupun HTTP.
package inventory

import "strings"

// UnitTanpaUnit nilai sentinel untuk transaksi yang tidak terkait alat tertentu.
const UnitTanpaUnit = "Tanpa Unit"

// unitAliases memetakan ejaan bebas nama alat ke nama kanonis.
// Lookup dilakukan case-insensitive pada input yang sudah di-trim.
var unitAliases = map[string]string{
	"bm100":          "BM 100",
	"bm 100":         "BM 100",
	"brokk bm 100":   "BM 100",
	"bm 90":          "BM 90",
	"brokk bm 90":    "BM 90",
	"forklift":       "Forklift",
	"forklift 3t":    "Forklift",
	"forklift 3 ton": "Forklift",
	"hcr 120d":       "HCR 120D",
	"excavator 01":   "Excavator 01",
	"excavator 02":   "Excavator 02",
}

// NormalizeUnit menyeragamkan nama unit alat melalui tabel alias.
// Kosong atau "-" menjadi "Tanpa Unit"; nama di luar tabel dikembalikan apa adanya (di-trim).
func NormalizeUnit(unit string) string {
	trimmed := strings.TrimSpace(unit)
	if trimmed == "" || trimmed == "-" {
		return UnitTanpaUnit
	}
	if canonical, ok := unitAliases[strings.ToLower(trimmed)]; ok {
		return canonical
	}
	return trimmed
}

// NormalizeKode membuang seluruh whitespace dan mengubah kode barang ke huruf besar.
func NormalizeKode(kode string) string {
	return strings.ToUpper(strings.Join(strings.Fields(kode), ""))
}
