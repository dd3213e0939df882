package entity

// Direction membedakan dua tabel histori transaksi.
type Direction string

const (
	DirectionMasuk  Direction = "MASUK"  // barang_masuk
	DirectionKeluar Direction = "KELUAR" // barang_keluar
)

// LedgerEntry satu baris histori transaksi barang masuk atau keluar.
// Tanggal disimpan sebagai string YYYY-MM-DD; Kode sudah dinormalisasi
// (tanpa spasi, huruf besar) dan Unit sudah melewati tabel alias.
type LedgerEntry struct {
	ID      string `json:"id"`
	Tanggal string `json:"tanggal"`
	Kode    string `json:"kode"`
	Nama    string `json:"nama"`
	Jumlah  int64  `json:"jumlah"`
	Satuan  string `json:"satuan"`
	Unit    string `json:"unit"`
}
