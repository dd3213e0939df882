package repository

import "github.com/gudangkita/sparepart-api/internal/domain/entity"

// UserRepository port persistensi pengguna.
type UserRepository interface {
	Create(user *entity.User) error
	FindByUsername(username string) (*entity.User, error)
}
