package http

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/gudangkita/sparepart-api/internal/application/dto"
	"github.com/gudangkita/sparepart-api/internal/application/inventory"
	"github.com/gudangkita/sparepart-api/internal/domain"
)

var validate = validator.New()

// LedgerHandler menangani transaksi barang masuk dan keluar.
type LedgerHandler struct {
	uc *inventory.TransactionUseCase
}

// NewLedgerHandler membangun handler transaksi.
func NewLedgerHandler(uc *inventory.TransactionUseCase) *LedgerHandler {
	return &LedgerHandler{uc: uc}
}

// ListMasuk godoc
// @Summary      Daftar seluruh transaksi barang masuk
// @Tags         transaksi
// @Produce      json
// @Success      200  {array}   entity.LedgerEntry
// @Router       /api/barang-masuk [get]
func (h *LedgerHandler) ListMasuk(c *fiber.Ctx) error {
	list, err := h.uc.ListMasuk(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// ListKeluar godoc
// @Summary      Daftar seluruh transaksi barang keluar
// @Tags         transaksi
// @Produce      json
// @Success      200  {array}   entity.LedgerEntry
// @Router       /api/barang-keluar [get]
func (h *LedgerHandler) ListKeluar(c *fiber.Ctx) error {
	list, err := h.uc.ListKeluar(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// CreateMasuk godoc
// @Summary      Catat transaksi barang masuk
// @Description  Menambah baris histori dan menaikkan stok inventory pada kunci (kode, unit)
//
//	dalam satu transaksi database.
//
// @Tags         transaksi
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransactionRequest  true  "tanggal, kode, nama, jumlah, satuan, unit"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/barang-masuk [post]
func (h *LedgerHandler) CreateMasuk(c *fiber.Ctx) error {
	return h.create(c, h.uc.RegisterMasuk, "barang masuk tercatat")
}

// CreateKeluar godoc
// @Summary      Catat transaksi barang keluar
// @Description  Menambah baris histori dan menurunkan stok inventory pada kunci (kode, unit).
//
//	Stok tidak pernah turun di bawah nol.
//
// @Tags         transaksi
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransactionRequest  true  "tanggal, kode, nama, jumlah, satuan, unit"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/barang-keluar [post]
func (h *LedgerHandler) CreateKeluar(c *fiber.Ctx) error {
	return h.create(c, h.uc.RegisterKeluar, "barang keluar tercatat")
}

func (h *LedgerHandler) create(c *fiber.Ctx, register func(ctx context.Context, in dto.TransactionRequest) (string, error), message string) error {
	var in dto.TransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "body tidak valid"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tanggal (YYYY-MM-DD), kode, nama, jumlah, dan satuan wajib diisi"})
	}
	id, err := register(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.TransactionResponse{ID: id, Message: message})
}

// UpdateKeluar godoc
// @Summary      Ubah transaksi barang keluar
// @Description  Membalikkan efek transaksi lama lalu menerapkan transaksi baru pada
//
//	proyeksi inventory, semuanya dalam satu transaksi database.
//
// @Tags         transaksi
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID transaksi"
// @Param        body  body  dto.TransactionRequest  true  "data pengganti"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/barang-keluar/{id} [put]
func (h *LedgerHandler) UpdateKeluar(c *fiber.Ctx) error {
	var in dto.TransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "body tidak valid"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tanggal (YYYY-MM-DD), kode, nama, jumlah, dan satuan wajib diisi"})
	}
	err := h.uc.UpdateKeluar(c.Context(), c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "transaksi tidak ditemukan"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "barang keluar diperbarui"})
}

// DeleteKeluar godoc
// @Summary      Hapus transaksi barang keluar
// @Description  Menghapus baris histori dan mengembalikan jumlahnya ke stok inventory.
// @Tags         transaksi
// @Produce      json
// @Param        id   path  string  true  "ID transaksi"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/barang-keluar/{id} [delete]
func (h *LedgerHandler) DeleteKeluar(c *fiber.Ctx) error {
	err := h.uc.DeleteKeluar(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "transaksi tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "barang keluar dihapus"})
}
