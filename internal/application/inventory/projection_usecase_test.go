package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gudangkita/sparepart-api/internal/application/dto"
	"github.com/gudangkita/sparepart-api/internal/application/inventory"
	"github.com/gudangkita/sparepart-api/internal/domain"
	"github.com/gudangkita/sparepart-api/internal/domain/entity"
)

func newProjectionFixture() (*inventory.ProjectionUseCase, *fakeLedgerRepo, *fakeInventoryRepo) {
	ledger := newFakeLedgerRepo()
	inv := newFakeInventoryRepo()
	uc := inventory.NewProjectionUseCase(&fakeTxRunner{ledger: ledger, inv: inv}, inv)
	return uc, ledger, inv
}

func seedItem(inv *fakeInventoryRepo, id, kode, unit string, jumlah int64) {
	_ = inv.Insert(&entity.InventoryItem{
		ID:      id,
		Tanggal: "2025-02-10",
		Kode:    kode,
		Nama:    "Filter Oli",
		Jumlah:  jumlah,
		Satuan:  "pcs",
		Unit:    unit,
	})
}

func TestProjectionList_FilterUnit(t *testing.T) {
	uc, _, inv := newProjectionFixture()
	seedItem(inv, "a", "FLT-0234", "BM 100", 10)
	seedItem(inv, "b", "SEAL-11", "HCR 120D", 2)

	all, err := uc.List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	semua, err := uc.List(context.Background(), "Semua Unit")
	require.NoError(t, err)
	assert.Len(t, semua, 2, "'Semua Unit' berarti tanpa filter")

	satu, err := uc.List(context.Background(), "BM 100")
	require.NoError(t, err)
	require.Len(t, satu, 1)
	assert.Equal(t, "FLT-0234", satu[0].Kode)
}

func TestProjectionUpdate_Parsial(t *testing.T) {
	uc, _, inv := newProjectionFixture()
	seedItem(inv, "a", "FLT-0234", "BM 100", 10)

	nama := "Filter Oli Mesin"
	jumlah := dto.FlexInt(25)
	err := uc.Update(context.Background(), "a", dto.InventoryUpdateRequest{
		Nama:   &nama,
		Jumlah: &jumlah,
	})
	require.NoError(t, err)

	row, _ := inv.GetByID("a")
	assert.Equal(t, "Filter Oli Mesin", row.Nama)
	assert.Equal(t, int64(25), row.Jumlah)
	assert.Equal(t, "FLT-0234", row.Kode, "field yang tidak dikirim tidak berubah")
	assert.Equal(t, "pcs", row.Satuan)
}

func TestProjectionUpdate_AliasLamaKodeBarang(t *testing.T) {
	uc, _, inv := newProjectionFixture()
	seedItem(inv, "a", "FLT-0234", "BM 100", 10)

	// Klien lama mengirim kode_barang / stok alih-alih kode / jumlah.
	kode := "FLT-0300"
	stok := dto.FlexInt(7)
	err := uc.Update(context.Background(), "a", dto.InventoryUpdateRequest{
		KodeBarang: &kode,
		Stok:       &stok,
	})
	require.NoError(t, err)

	row, _ := inv.GetByID("a")
	assert.Equal(t, "FLT-0300", row.Kode)
	assert.Equal(t, int64(7), row.Jumlah)
}

func TestProjectionUpdate_TidakDitemukan(t *testing.T) {
	uc, _, _ := newProjectionFixture()
	err := uc.Update(context.Background(), "tidak-ada", dto.InventoryUpdateRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProjectionDelete_Idempoten(t *testing.T) {
	uc, _, inv := newProjectionFixture()
	seedItem(inv, "a", "FLT-0234", "BM 100", 10)

	require.NoError(t, uc.Delete(context.Background(), "a"))
	assert.Empty(t, inv.rows)

	// Menghapus id yang sudah tidak ada tetap sukses.
	assert.NoError(t, uc.Delete(context.Background(), "a"))
}

func TestProjectionListUnits(t *testing.T) {
	uc, _, inv := newProjectionFixture()
	seedItem(inv, "a", "FLT-0234", "BM 100", 10)
	seedItem(inv, "b", "SEAL-11", "HCR 120D", 2)
	seedItem(inv, "c", "OLI-40", "BM 100", 5)

	units, err := uc.ListUnits(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"BM 100", "HCR 120D"}, units)
}

func TestResetAll(t *testing.T) {
	uc, ledger, inv := newProjectionFixture()
	seedItem(inv, "a", "FLT-0234", "BM 100", 10)
	_ = ledger.Create(entity.DirectionMasuk, &entity.LedgerEntry{ID: "m1"})
	_ = ledger.Create(entity.DirectionKeluar, &entity.LedgerEntry{ID: "k1"})

	require.NoError(t, uc.ResetAll(context.Background()))

	masuk, _ := ledger.List(entity.DirectionMasuk)
	keluar, _ := ledger.List(entity.DirectionKeluar)
	assert.Empty(t, masuk)
	assert.Empty(t, keluar)
	assert.Empty(t, inv.rows)
}
