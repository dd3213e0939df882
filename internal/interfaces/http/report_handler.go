package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/gudangkita/sparepart-api/internal/application/dto"
	"github.com/gudangkita/sparepart-api/internal/application/report"
)

// ReportHandler menyajikan laporan inventory untuk diunduh.
type ReportHandler struct {
	uc *report.UseCase
}

// NewReportHandler membangun handler laporan.
func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// InventoryPDF godoc
// @Summary      Unduh laporan stok sebagai PDF
// @Tags         laporan
// @Produce      application/pdf
// @Param        unit  query  string  false  "Filter satu unit"
// @Success      200   {file}    file
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/laporan/inventory.pdf [get]
func (h *ReportHandler) InventoryPDF(c *fiber.Ctx) error {
	data, err := h.uc.InventoryPDF(c.Context(), c.Query("unit"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	filename := "laporan-inventory-" + time.Now().Format("2006-01-02") + ".pdf"
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

// InventoryExcel godoc
// @Summary      Unduh laporan stok sebagai xlsx
// @Tags         laporan
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        unit  query  string  false  "Filter satu unit"
// @Success      200   {file}    file
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/laporan/inventory.xlsx [get]
func (h *ReportHandler) InventoryExcel(c *fiber.Ctx) error {
	data, err := h.uc.InventoryExcel(c.Context(), c.Query("unit"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	filename := "laporan-inventory-" + time.Now().Format("2006-01-02") + ".xlsx"
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
