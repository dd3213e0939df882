package domain

import "errors"

// Error domain (tanpa dependensi eksternal). Dipetakan ke status HTTP di lapisan handler.
var (
	ErrNotFound     = errors.New("data tidak ditemukan")
	ErrInvalidInput = errors.New("input tidak valid")
	ErrUnauthorized = errors.New("tidak terautentikasi")
	ErrDuplicate    = errors.New("data duplikat")
)
