package dto

// MAPointDTO satu titik histori beserta nilai moving average-nya.
// MovingAverage berisi "-" untuk titik awal yang jendelanya belum penuh,
// selain itu string angka dengan dua desimal.
type MAPointDTO struct {
	Periode         string `json:"periode"`
	PemakaianAktual int64  `json:"pemakaian_aktual"`
	MovingAverage   string `json:"moving_average"`
}

// MAResponse balasan GET /api/analisis-ma. Prediksi nil bila jendela
// belum pernah penuh pada arah tersebut.
type MAResponse struct {
	DataHistoriKeluar    []MAPointDTO `json:"data_histori_keluar"`
	PrediksiTPlus1Keluar *string      `json:"prediksi_t_plus_1_keluar"`
	DataHistoriMasuk     []MAPointDTO `json:"data_histori_masuk"`
	PrediksiTPlus1Masuk  *string      `json:"prediksi_t_plus_1_masuk"`
	PeriodeMA            int          `json:"periode_ma"`
}

// TopItemDTO barang keluar terbanyak untuk widget dashboard.
type TopItemDTO struct {
	Kode        string `json:"kode"`
	Nama        string `json:"nama"`
	Unit        string `json:"unit"`
	TotalKeluar int64  `json:"total_keluar"`
}

// DashboardSummaryDTO ringkasan bulan berjalan untuk halaman dashboard.
type DashboardSummaryDTO struct {
	TotalMasukBulanIni   int64        `json:"total_masuk_bulan_ini"`
	TotalKeluarBulanIni  int64        `json:"total_keluar_bulan_ini"`
	RataRataKeluarHarian string       `json:"rata_rata_keluar_harian"`
	JumlahJenisBarang    int64        `json:"jumlah_jenis_barang"`
	TotalStok            int64        `json:"total_stok"`
	TopBarangKeluar      []TopItemDTO `json:"top_barang_keluar"`
}
