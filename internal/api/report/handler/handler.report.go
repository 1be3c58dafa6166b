// Package reporthdl xử lý các request xuất báo cáo PDF.
package reporthdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"newborn_tracking/internal/api/middleware"
	reportsvc "newborn_tracking/internal/api/report/service"
	"newborn_tracking/internal/common"
)

// ReportHandler xử lý các request xuất báo cáo
type ReportHandler struct {
	reportService *reportsvc.ReportService
}

// NewReportHandler tạo instance mới của ReportHandler
func NewReportHandler() (*ReportHandler, error) {
	reportService, err := reportsvc.NewReportService()
	if err != nil {
		return nil, fmt.Errorf("failed to create report service: %v", err)
	}
	return &ReportHandler{reportService: reportService}, nil
}

// sendPDF trả file PDF về client dạng attachment
func sendPDF(c fiber.Ctx, content []byte, filename string) error {
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(content)
}

// HandleVaccinationCard xuất sổ tiêm chủng PDF của một trẻ
func (h *ReportHandler) HandleVaccinationCard(c fiber.Ctx) error {
	newbornID, err := primitive.ObjectIDFromHex(c.Params("newbornId"))
	if err != nil {
		middleware.HandleErrorResponse(c, common.NewError(common.ErrCodeValidationFormat, "ID trẻ không hợp lệ", common.StatusBadRequest, err))
		return nil
	}
	content, filename, err := h.reportService.VaccinationCardPDF(c.Context(), newbornID)
	if err != nil {
		middleware.HandleErrorResponse(c, err)
		return nil
	}
	return sendPDF(c, content, filename)
}

// HandleVaccineStock xuất báo cáo tồn kho vaccine PDF
func (h *ReportHandler) HandleVaccineStock(c fiber.Ctx) error {
	content, filename, err := h.reportService.VaccineStockPDF(c.Context())
	if err != nil {
		middleware.HandleErrorResponse(c, err)
		return nil
	}
	return sendPDF(c, content, filename)
}

// HandleMaintenanceSummary xuất báo cáo tổng hợp bảo trì thiết bị PDF
func (h *ReportHandler) HandleMaintenanceSummary(c fiber.Ctx) error {
	content, filename, err := h.reportService.MaintenanceSummaryPDF(c.Context())
	if err != nil {
		middleware.HandleErrorResponse(c, err)
		return nil
	}
	return sendPDF(c, content, filename)
}
