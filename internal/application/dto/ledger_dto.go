package dto

// TransactionRequest body untuk POST /api/barang-masuk, POST /api/barang-keluar,
// dan PUT /api/barang-keluar/:id.
type TransactionRequest struct {
	Tanggal string  `json:"tanggal" validate:"required,datetime=2006-01-02"`
	Kode    string  `json:"kode" validate:"required"`
	Nama    string  `json:"nama" validate:"required"`
	Jumlah  FlexInt `json:"jumlah"`
	Satuan  string  `json:"satuan" validate:"required"`
	Unit    string  `json:"unit"`
}

// TransactionResponse balasan sukses penambahan transaksi.
type TransactionResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}
