package inventory

import (
	"context"

	"github.com/gudangkita/sparepart-api/internal/domain/repository"
)

// TxRunner menjalankan fungsi di dalam satu transaksi store dengan repository
// yang terikat ke transaksi itu. Penulisan histori dan rekonsiliasi proyeksi
// jadi satu unit kerja atomik: gagal salah satu, keduanya batal.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		ledgerRepo repository.LedgerRepository,
		invRepo repository.InventoryRepository,
	) error) error
}
