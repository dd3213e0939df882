package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/gudangkita/sparepart-api/internal/application/dto"
	"github.com/gudangkita/sparepart-api/internal/application/inventory"
	"github.com/gudangkita/sparepart-api/internal/domain"
)

// InventoryHandler menangani proyeksi stok inventory.
type InventoryHandler struct {
	uc *inventory.ProjectionUseCase
}

// NewInventoryHandler membangun handler inventory.
func NewInventoryHandler(uc *inventory.ProjectionUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// List godoc
// @Summary      Daftar stok inventory
// @Tags         inventory
// @Produce      json
// @Param        unit  query  string  false  "Filter satu unit. Kosong atau 'Semua Unit' = semua."
// @Success      200   {array}  entity.InventoryItem
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(c.Context(), c.Query("unit"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(items)
}

// Update godoc
// @Summary      Koreksi manual satu baris inventory
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id    path  string                      true  "ID baris inventory"
// @Param        body  body  dto.InventoryUpdateRequest  true  "field yang diubah"
// @Success      200   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [put]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	var in dto.InventoryUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "body tidak valid"})
	}
	err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "barang tidak ditemukan"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "inventory diperbarui"})
}

// Delete godoc
// @Summary      Hapus satu baris inventory
// @Description  Idempoten: menghapus baris yang sudah tidak ada tetap sukses.
// @Tags         inventory
// @Produce      json
// @Param        id   path  string  true  "ID baris inventory"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/inventory/{id} [delete]
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "inventory dihapus"})
}

// ListUnits godoc
// @Summary      Daftar unit alat berat yang dikenal
// @Tags         inventory
// @Produce      json
// @Success      200  {array}  string
// @Router       /api/list-units [get]
func (h *InventoryHandler) ListUnits(c *fiber.Ctx) error {
	units, err := h.uc.ListUnits(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if units == nil {
		units = []string{}
	}
	return c.JSON(units)
}

// ResetData godoc
// @Summary      Kosongkan seluruh data transaksi dan inventory
// @Description  Menghapus isi barang_masuk, barang_keluar, dan inventory dalam satu
//
//	transaksi database. Akun pengguna tidak ikut terhapus.
//
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /reset-data [post]
func (h *InventoryHandler) ResetData(c *fiber.Ctx) error {
	if err := h.uc.ResetAll(c.Context()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "semua data berhasil direset"})
}
