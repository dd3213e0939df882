package http

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/gudangkita/sparepart-api/internal/application/dto"
	"github.com/gudangkita/sparepart-api/internal/application/importer"
)

// UploadHandler menerima file xlsx dan meneruskannya ke importer.
type UploadHandler struct {
	uc        *importer.UseCase
	uploadDir string
}

// NewUploadHandler membangun handler upload. uploadDir dibuat bila belum ada.
func NewUploadHandler(uc *importer.UseCase, uploadDir string) *UploadHandler {
	return &UploadHandler{uc: uc, uploadDir: uploadDir}
}

// UploadBarangMasuk godoc
// @Summary      Import massal barang masuk dari xlsx
// @Tags         upload
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Workbook xlsx"
// @Success      200   {object}  importer.Summary
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /upload-barang-masuk [post]
func (h *UploadHandler) UploadBarangMasuk(c *fiber.Ctx) error {
	return h.handle(c, importer.TargetBarangMasuk)
}

// UploadBarangKeluar godoc
// @Summary      Import massal barang keluar dari xlsx
// @Tags         upload
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Workbook xlsx"
// @Success      200   {object}  importer.Summary
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /upload-barang-keluar [post]
func (h *UploadHandler) UploadBarangKeluar(c *fiber.Ctx) error {
	return h.handle(c, importer.TargetBarangKeluar)
}

// UploadInventory godoc
// @Summary      Import snapshot inventory dari xlsx
// @Description  Menimpa baris proyeksi per (kode, unit) dengan isi file (hasil stock opname).
// @Tags         upload
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Workbook xlsx"
// @Success      200   {object}  importer.Summary
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /upload-inventory [post]
func (h *UploadHandler) UploadInventory(c *fiber.Ctx) error {
	return h.handle(c, importer.TargetInventory)
}

func (h *UploadHandler) handle(c *fiber.Ctx, target importer.Target) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "field form 'file' wajib diisi"})
	}

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "siapkan direktori upload: " + err.Error()})
	}
	tmpPath := filepath.Join(h.uploadDir, fmt.Sprintf("%d-%s", time.Now().UnixNano(), filepath.Base(fileHeader.Filename)))
	if err := c.SaveFile(fileHeader, tmpPath); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "simpan file upload: " + err.Error()})
	}
	// File sementara selalu dibersihkan, sukses maupun gagal.
	defer os.Remove(tmpPath)

	summary, err := h.uc.Import(c.Context(), target, tmpPath)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "file tidak bisa dibaca: " + err.Error()})
	}
	return c.JSON(summary)
}
