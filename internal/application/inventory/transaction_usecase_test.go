package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gudangkita/sparepart-api/internal/application/dto"
	"github.com/gudangkita/sparepart-api/internal/application/inventory"
	"github.com/gudangkita/sparepart-api/internal/domain"
	"github.com/gudangkita/sparepart-api/internal/domain/entity"
)

func newTransactionFixture() (*inventory.TransactionUseCase, *fakeLedgerRepo, *fakeInventoryRepo) {
	ledger := newFakeLedgerRepo()
	inv := newFakeInventoryRepo()
	uc := inventory.NewTransactionUseCase(&fakeTxRunner{ledger: ledger, inv: inv}, ledger)
	return uc, ledger, inv
}

func reqMasuk(jumlah int64) dto.TransactionRequest {
	return dto.TransactionRequest{
		Tanggal: "2025-03-01",
		Kode:    "FLT-0234",
		Nama:    "Filter Oli",
		Jumlah:  dto.FlexInt(jumlah),
		Satuan:  "pcs",
		Unit:    "BM100",
	}
}

func TestRegisterMasuk_MembuatHistoriDanProyeksi(t *testing.T) {
	uc, ledger, inv := newTransactionFixture()

	id, err := uc.RegisterMasuk(context.Background(), reqMasuk(10))
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	rows, _ := ledger.List(entity.DirectionMasuk)
	require.Len(t, rows, 1)
	assert.Equal(t, "FLT-0234", rows[0].Kode)
	assert.Equal(t, "BM 100", rows[0].Unit, "unit harus ternormalisasi lewat tabel alias")

	row := inv.find("FLT-0234", "BM 100")
	require.NotNil(t, row, "proyeksi harus ikut dibuat")
	assert.Equal(t, int64(10), row.Jumlah)
}

func TestRegisterKeluar_MenurunkanStok(t *testing.T) {
	uc, _, inv := newTransactionFixture()

	_, err := uc.RegisterMasuk(context.Background(), reqMasuk(10))
	require.NoError(t, err)

	in := reqMasuk(4)
	_, err = uc.RegisterKeluar(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, int64(6), inv.find("FLT-0234", "BM 100").Jumlah)
}

func TestRegisterKeluar_StokTidakCukupDipangkasKeNol(t *testing.T) {
	uc, ledger, inv := newTransactionFixture()

	_, err := uc.RegisterMasuk(context.Background(), reqMasuk(10))
	require.NoError(t, err)

	// Keluar 20 dari stok 10: transaksi tetap sukses, stok jadi 0.
	_, err = uc.RegisterKeluar(context.Background(), reqMasuk(20))
	require.NoError(t, err)

	assert.Equal(t, int64(0), inv.find("FLT-0234", "BM 100").Jumlah)
	rows, _ := ledger.List(entity.DirectionKeluar)
	require.Len(t, rows, 1, "histori tetap mencatat jumlah penuh")
	assert.Equal(t, int64(20), rows[0].Jumlah)
}

func TestRegisterKeluar_BarangBaruMulaiDariNol(t *testing.T) {
	uc, _, inv := newTransactionFixture()

	_, err := uc.RegisterKeluar(context.Background(), reqMasuk(5))
	require.NoError(t, err)

	row := inv.find("FLT-0234", "BM 100")
	require.NotNil(t, row, "baris proyeksi dibuat meski transaksi pertama keluar")
	assert.Equal(t, int64(0), row.Jumlah)
}

func TestRegister_KunciTerpisahPerUnit(t *testing.T) {
	uc, _, inv := newTransactionFixture()

	a := reqMasuk(10)
	b := reqMasuk(3)
	b.Unit = "HCR 120D"

	_, err := uc.RegisterMasuk(context.Background(), a)
	require.NoError(t, err)
	_, err = uc.RegisterMasuk(context.Background(), b)
	require.NoError(t, err)

	assert.Equal(t, int64(10), inv.find("FLT-0234", "BM 100").Jumlah)
	assert.Equal(t, int64(3), inv.find("FLT-0234", "HCR 120D").Jumlah)
}

func TestRegister_ValidasiInput(t *testing.T) {
	uc, _, _ := newTransactionFixture()

	cases := []struct {
		name   string
		mutate func(*dto.TransactionRequest)
	}{
		{"tanggal kosong", func(r *dto.TransactionRequest) { r.Tanggal = "" }},
		{"format tanggal salah", func(r *dto.TransactionRequest) { r.Tanggal = "01-03-2025" }},
		{"kode kosong", func(r *dto.TransactionRequest) { r.Kode = "   " }},
		{"nama kosong", func(r *dto.TransactionRequest) { r.Nama = "" }},
		{"satuan kosong", func(r *dto.TransactionRequest) { r.Satuan = "" }},
		{"jumlah nol", func(r *dto.TransactionRequest) { r.Jumlah = 0 }},
		{"jumlah negatif", func(r *dto.TransactionRequest) { r.Jumlah = -3 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := reqMasuk(5)
			tc.mutate(&in)
			_, err := uc.RegisterMasuk(context.Background(), in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestUpdateKeluar_UndoLaluRedo(t *testing.T) {
	uc, ledger, inv := newTransactionFixture()

	_, err := uc.RegisterMasuk(context.Background(), reqMasuk(10))
	require.NoError(t, err)
	id, err := uc.RegisterKeluar(context.Background(), reqMasuk(4))
	require.NoError(t, err)
	require.Equal(t, int64(6), inv.find("FLT-0234", "BM 100").Jumlah)

	// Edit jumlah keluar 4 -> 7: stok akhir 10 - 7 = 3.
	edited := reqMasuk(7)
	require.NoError(t, uc.UpdateKeluar(context.Background(), id, edited))

	assert.Equal(t, int64(3), inv.find("FLT-0234", "BM 100").Jumlah)
	row, _ := ledger.GetByID(entity.DirectionKeluar, id)
	require.NotNil(t, row)
	assert.Equal(t, int64(7), row.Jumlah)
}

func TestUpdateKeluar_PindahKunci(t *testing.T) {
	uc, _, inv := newTransactionFixture()

	_, err := uc.RegisterMasuk(context.Background(), reqMasuk(10))
	require.NoError(t, err)
	id, err := uc.RegisterKeluar(context.Background(), reqMasuk(4))
	require.NoError(t, err)

	// Pindahkan pengeluaran ke unit lain: stok lama dikembalikan,
	// kunci baru mulai dari nol lalu dipangkas.
	moved := reqMasuk(4)
	moved.Unit = "Excavator 01"
	require.NoError(t, uc.UpdateKeluar(context.Background(), id, moved))

	assert.Equal(t, int64(10), inv.find("FLT-0234", "BM 100").Jumlah)
	assert.Equal(t, int64(0), inv.find("FLT-0234", "Excavator 01").Jumlah)
}

func TestUpdateKeluar_TidakDitemukan(t *testing.T) {
	uc, _, _ := newTransactionFixture()
	err := uc.UpdateKeluar(context.Background(), "tidak-ada", reqMasuk(4))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteKeluar_MengembalikanStok(t *testing.T) {
	uc, ledger, inv := newTransactionFixture()

	_, err := uc.RegisterMasuk(context.Background(), reqMasuk(10))
	require.NoError(t, err)
	id, err := uc.RegisterKeluar(context.Background(), reqMasuk(4))
	require.NoError(t, err)

	require.NoError(t, uc.DeleteKeluar(context.Background(), id))

	row := inv.find("FLT-0234", "BM 100")
	assert.Equal(t, int64(10), row.Jumlah, "jumlah yang dihapus harus kembali ke stok")
	assert.Equal(t, time.Now().Format("2006-01-02"), row.Tanggal,
		"baris proyeksi dicap tanggal penghapusan")

	rows, _ := ledger.List(entity.DirectionKeluar)
	assert.Empty(t, rows)
}

func TestDeleteKeluar_TidakDitemukan(t *testing.T) {
	uc, _, _ := newTransactionFixture()
	err := uc.DeleteKeluar(context.Background(), "tidak-ada")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
