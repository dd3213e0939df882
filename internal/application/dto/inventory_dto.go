package dto

// InventoryUpdateRequest body PUT /api/inventory/:id. Semua field opsional;
// field yang tidak dikirim mempertahankan nilai lama. Alias field lama dari
// frontend terdahulu (kode_barang, nama_barang, stok) tetap diterima.
type InventoryUpdateRequest struct {
	Tanggal *string  `json:"tanggal"`
	Kode    *string  `json:"kode"`
	Nama    *string  `json:"nama"`
	Alias   *string  `json:"alias"`
	Jumlah  *FlexInt `json:"jumlah"`
	Satuan  *string  `json:"satuan"`
	Unit    *string  `json:"unit"`

	KodeBarang *string  `json:"kode_barang"`
	NamaBarang *string  `json:"nama_barang"`
	Stok       *FlexInt `json:"stok"`
}

// FinalKode kode efektif: field baru menang atas alias lama.
func (r *InventoryUpdateRequest) FinalKode() *string {
	if r.Kode != nil {
		return r.Kode
	}
	return r.KodeBarang
}

// FinalNama nama efektif.
func (r *InventoryUpdateRequest) FinalNama() *string {
	if r.Nama != nil {
		return r.Nama
	}
	return r.NamaBarang
}

// FinalJumlah jumlah efektif.
func (r *InventoryUpdateRequest) FinalJumlah() *FlexInt {
	if r.Jumlah != nil {
		return r.Jumlah
	}
	return r.Stok
}
