package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/gudangkita/sparepart-api/internal/application/analytics"
	"github.com/gudangkita/sparepart-api/internal/application/dto"
	"github.com/gudangkita/sparepart-api/internal/domain"
)

// AnalyticsHandler menangani analisis moving average dan ringkasan dashboard.
type AnalyticsHandler struct {
	maUC        *analytics.MovingAverageUseCase
	dashboardUC *analytics.DashboardUseCase
}

// NewAnalyticsHandler membangun handler analisis.
func NewAnalyticsHandler(maUC *analytics.MovingAverageUseCase, dashboardUC *analytics.DashboardUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{maUC: maUC, dashboardUC: dashboardUC}
}

// AnalisisMA godoc
// @Summary      Analisis moving average pemakaian barang
// @Description  Histori masuk dan keluar 6 bulan terakhir untuk satu pasangan kode+unit,
//
//	dengan moving average periode N dan prediksi satu periode ke depan.
//
// @Tags         analisis
// @Produce      json
// @Param        kode  query  string  true   "Kode barang"
// @Param        unit  query  string  true   "Unit alat berat"
// @Param        N     query  int     false  "Periode MA, minimal 2 (default 3)"
// @Success      200   {object}  dto.MAResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/analisis-ma [get]
func (h *AnalyticsHandler) AnalisisMA(c *fiber.Ctx) error {
	kode := c.Query("kode")
	unit := c.Query("unit")

	period := 3
	if raw := c.Query("N"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "N harus berupa angka"})
		}
		period = n
	}

	out, err := h.maUC.Analyze(c.Context(), kode, unit, period)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "kode dan unit wajib diisi, N minimal 2"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tidak ada histori untuk kode dan unit tersebut"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Ringkasan godoc
// @Summary      Ringkasan dashboard bulan berjalan
// @Tags         analisis
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/dashboard/ringkasan [get]
func (h *AnalyticsHandler) Ringkasan(c *fiber.Ctx) error {
	out, err := h.dashboardUC.GetRingkasan(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
