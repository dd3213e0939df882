package inventory_test

import (
	"context"
	"sort"
	"strings"

	"github.com/gudangkita/sparepart-api/internal/domain/entity"
	"github.com/gudangkita/sparepart-api/internal/domain/repository"
)

// Fake in-memory untuk LedgerRepository, InventoryRepository, dan TxRunner.
// Tidak ada semantik transaksi sungguhan; cukup untuk menguji alur use case.

type fakeLedgerRepo struct {
	rows map[entity.Direction][]*entity.LedgerEntry
}

func newFakeLedgerRepo() *fakeLedgerRepo {
	return &fakeLedgerRepo{rows: map[entity.Direction][]*entity.LedgerEntry{}}
}

func (f *fakeLedgerRepo) Create(direction entity.Direction, e *entity.LedgerEntry) error {
	cp := *e
	f.rows[direction] = append(f.rows[direction], &cp)
	return nil
}

func (f *fakeLedgerRepo) GetByID(direction entity.Direction, id string) (*entity.LedgerEntry, error) {
	for _, e := range f.rows[direction] {
		if e.ID == id {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeLedgerRepo) Update(direction entity.Direction, e *entity.LedgerEntry) error {
	for i, old := range f.rows[direction] {
		if old.ID == e.ID {
			cp := *e
			f.rows[direction][i] = &cp
		}
	}
	return nil
}

func (f *fakeLedgerRepo) Delete(direction entity.Direction, id string) error {
	list := f.rows[direction]
	for i, e := range list {
		if e.ID == id {
			f.rows[direction] = append(list[:i], list[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeLedgerRepo) List(direction entity.Direction) ([]*entity.LedgerEntry, error) {
	out := make([]*entity.LedgerEntry, len(f.rows[direction]))
	for i, e := range f.rows[direction] {
		cp := *e
		out[i] = &cp
	}
	return out, nil
}

func (f *fakeLedgerRepo) DeleteAll(direction entity.Direction) error {
	f.rows[direction] = nil
	return nil
}

type fakeInventoryRepo struct {
	rows []*entity.InventoryItem
}

func newFakeInventoryRepo() *fakeInventoryRepo { return &fakeInventoryRepo{} }

func (f *fakeInventoryRepo) GetByID(id string) (*entity.InventoryItem, error) {
	for _, it := range f.rows {
		if it.ID == id {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeInventoryRepo) GetForUpdate(kode, unit string) (*entity.InventoryItem, error) {
	for _, it := range f.rows {
		if it.Kode == kode && it.Unit == unit {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeInventoryRepo) Insert(item *entity.InventoryItem) error {
	cp := *item
	f.rows = append(f.rows, &cp)
	return nil
}

func (f *fakeInventoryRepo) UpdateReconciled(item *entity.InventoryItem) error {
	for _, it := range f.rows {
		if it.ID == item.ID {
			it.Tanggal = item.Tanggal
			it.Nama = item.Nama
			it.Jumlah = item.Jumlah
			it.Satuan = item.Satuan
		}
	}
	return nil
}

func (f *fakeInventoryRepo) UpsertSnapshot(item *entity.InventoryItem) error {
	for _, it := range f.rows {
		if it.Kode == item.Kode && it.Unit == item.Unit {
			it.Tanggal = item.Tanggal
			it.Nama = item.Nama
			it.Alias = item.Alias
			it.Jumlah = item.Jumlah
			it.Satuan = item.Satuan
			return nil
		}
	}
	cp := *item
	f.rows = append(f.rows, &cp)
	return nil
}

func (f *fakeInventoryRepo) Update(item *entity.InventoryItem) error {
	for i, it := range f.rows {
		if it.ID == item.ID {
			cp := *item
			f.rows[i] = &cp
		}
	}
	return nil
}

func (f *fakeInventoryRepo) Delete(id string) error {
	for i, it := range f.rows {
		if it.ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeInventoryRepo) List(unitFilter string) ([]*entity.InventoryItem, error) {
	var out []*entity.InventoryItem
	for _, it := range f.rows {
		if unitFilter != "" && !strings.EqualFold(it.Unit, unitFilter) {
			continue
		}
		cp := *it
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeInventoryRepo) ListUnits() ([]string, error) {
	seen := map[string]bool{}
	var units []string
	for _, it := range f.rows {
		u := strings.ToUpper(it.Unit)
		if u == "" || seen[u] {
			continue
		}
		seen[u] = true
		units = append(units, u)
	}
	sort.Strings(units)
	return units, nil
}

func (f *fakeInventoryRepo) DeleteAll() error {
	f.rows = nil
	return nil
}

// find cari baris proyeksi per (kode, unit); nil bila tidak ada.
func (f *fakeInventoryRepo) find(kode, unit string) *entity.InventoryItem {
	for _, it := range f.rows {
		if it.Kode == kode && it.Unit == unit {
			return it
		}
	}
	return nil
}

type fakeTxRunner struct {
	ledger *fakeLedgerRepo
	inv    *fakeInventoryRepo
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	ledgerRepo repository.LedgerRepository,
	invRepo repository.InventoryRepository,
) error) error {
	return fn(r.ledger, r.inv)
}
