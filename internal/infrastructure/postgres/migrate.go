package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/gudangkita/sparepart-api/internal/domain/entity"
)

// Skema dibuat saat startup supaya instance baru langsung siap dipakai
// tanpa langkah migrasi terpisah.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            TEXT PRIMARY KEY,
		username      TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS barang_masuk (
		id      TEXT PRIMARY KEY,
		tanggal TEXT NOT NULL,
		kode    TEXT NOT NULL,
		nama    TEXT NOT NULL,
		jumlah  BIGINT NOT NULL,
		satuan  TEXT NOT NULL DEFAULT '',
		unit    TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS barang_keluar (
		id      TEXT PRIMARY KEY,
		tanggal TEXT NOT NULL,
		kode    TEXT NOT NULL,
		nama    TEXT NOT NULL,
		jumlah  BIGINT NOT NULL,
		satuan  TEXT NOT NULL DEFAULT '',
		unit    TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS inventory (
		id      TEXT PRIMARY KEY,
		tanggal TEXT NOT NULL,
		kode    TEXT NOT NULL,
		nama    TEXT NOT NULL,
		alias   TEXT NOT NULL DEFAULT '',
		jumlah  BIGINT NOT NULL,
		satuan  TEXT NOT NULL DEFAULT '',
		unit    TEXT NOT NULL DEFAULT '',
		UNIQUE (kode, unit)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_barang_masuk_kode_unit  ON barang_masuk (kode, unit, tanggal)`,
	`CREATE INDEX IF NOT EXISTS idx_barang_keluar_kode_unit ON barang_keluar (kode, unit, tanggal)`,
	`CREATE INDEX IF NOT EXISTS idx_barang_masuk_tanggal    ON barang_masuk (tanggal)`,
	`CREATE INDEX IF NOT EXISTS idx_barang_keluar_tanggal   ON barang_keluar (tanggal)`,
}

// Migrate membuat tabel dan index bila belum ada.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrasi skema: %w", err)
		}
	}
	return nil
}

// SeedAdmin memastikan akun admin dari konfigurasi tersedia. Password hanya
// di-hash dan disimpan saat akun belum ada; akun lama tidak ditimpa.
func SeedAdmin(ctx context.Context, pool *pgxpool.Pool, username, password string) error {
	if username == "" || password == "" {
		return nil
	}
	repo := NewUserRepository(pool)
	existing, err := repo.FindByUsername(username)
	if err != nil {
		return fmt.Errorf("cek admin: %w", err)
	}
	if existing != nil {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password admin: %w", err)
	}
	return repo.Create(&entity.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	})
}
