package entity

// InventoryItem baris proyeksi stok berjalan, unik per pasangan (kode, unit).
// Jumlah adalah ringkasan turunan dari histori; tidak pernah negatif.
// Tanggal hanya menandai kapan baris terakhir disentuh.
type InventoryItem struct {
	ID      string `json:"id"`
	Tanggal string `json:"tanggal"`
	Kode    string `json:"kode"`
	Nama    string `json:"nama"`
	Alias   string `json:"alias"`
	Jumlah  int64  `json:"jumlah"`
	Satuan  string `json:"satuan"`
	Unit    string `json:"unit"`
}
