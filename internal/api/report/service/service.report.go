// Package reportsvc sinh các báo cáo PDF: sổ tiêm chủng của trẻ,
// tồn kho vaccine và tổng hợp bảo trì thiết bị.
package reportsvc

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	facilitysvc "newborn_tracking/internal/api/facility/service"
	newbornsvc "newborn_tracking/internal/api/newborn/service"
	vaccinationmodels "newborn_tracking/internal/api/vaccination/models"
	vaccinationsvc "newborn_tracking/internal/api/vaccination/service"
)

// Font core của PDF không có glyph tiếng Việt nên nội dung báo cáo dùng tiếng Anh
const (
	pdfFont     = "Helvetica"
	pdfTitleSz  = 16.0
	pdfHeaderSz = 11.0
	pdfBodySz   = 10.0
)

// ReportService là cấu trúc chứa các phương thức sinh báo cáo PDF
type ReportService struct {
	newbornService     *newbornsvc.NewbornService
	vaccineService     *vaccinationsvc.VaccineService
	recordService      *vaccinationsvc.RecordService
	maintenanceService *facilitysvc.MaintenanceService
	equipmentService   *facilitysvc.EquipmentService
}

// NewReportService tạo mới ReportService
func NewReportService() (*ReportService, error) {
	newbornService, err := newbornsvc.NewNewbornService()
	if err != nil {
		return nil, err
	}
	vaccineService, err := vaccinationsvc.NewVaccineService()
	if err != nil {
		return nil, err
	}
	recordService, err := vaccinationsvc.NewRecordService()
	if err != nil {
		return nil, err
	}
	maintenanceService, err := facilitysvc.NewMaintenanceService()
	if err != nil {
		return nil, err
	}
	equipmentService, err := facilitysvc.NewEquipmentService()
	if err != nil {
		return nil, err
	}

	return &ReportService{
		newbornService:     newbornService,
		vaccineService:     vaccineService,
		recordService:      recordService,
		maintenanceService: maintenanceService,
		equipmentService:   equipmentService,
	}, nil
}

// formatMilli định dạng UnixMilli thành dd/mm/yyyy, trả về "-" khi rỗng
func formatMilli(ms int64) string {
	if ms <= 0 {
		return "-"
	}
	return time.UnixMilli(ms).Format("02/01/2006")
}

func newReportPDF(title string) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	pdf.SetFont(pdfFont, "B", pdfTitleSz)
	pdf.CellFormat(0, 10, title, "", 1, "C", false, 0, "")
	pdf.SetFont(pdfFont, "", pdfBodySz)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated: %s", time.Now().Format("02/01/2006 15:04")), "", 1, "C", false, 0, "")
	pdf.Ln(4)
	return pdf
}

func tableHeader(pdf *fpdf.Fpdf, widths []float64, labels []string) {
	pdf.SetFont(pdfFont, "B", pdfHeaderSz)
	pdf.SetFillColor(230, 230, 230)
	for i, label := range labels {
		pdf.CellFormat(widths[i], 8, label, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont(pdfFont, "", pdfBodySz)
}

// ==========================================
// SỔ TIÊM CHỦNG CỦA TRẺ
// ==========================================

// VaccinationCardPDF sinh sổ tiêm chủng của một trẻ: thông tin trẻ, thông tin mẹ
// và từng mũi đã tiêm của mỗi vaccine kèm số lô đã dùng.
func (s *ReportService) VaccinationCardPDF(ctx context.Context, newbornID primitive.ObjectID) ([]byte, string, error) {
	detail, err := s.newbornService.FindDetailById(ctx, newbornID)
	if err != nil {
		return nil, "", err
	}
	records, err := s.recordService.FindByNewborn(ctx, newbornID)
	if err != nil {
		return nil, "", err
	}
	vaccineNames, err := s.vaccineNamesByID(ctx, records)
	if err != nil {
		return nil, "", err
	}

	pdf := newReportPDF("Vaccination Card")

	pdf.SetFont(pdfFont, "B", pdfHeaderSz)
	pdf.CellFormat(0, 7, "Newborn Information", "", 1, "L", false, 0, "")
	pdf.SetFont(pdfFont, "", pdfBodySz)
	pdf.CellFormat(0, 6, fmt.Sprintf("Name: %s", detail.Name), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Gender: %s    Date of birth: %s", detail.Gender, formatMilli(detail.BirthDate)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Zone: %s    Place of birth: %s", detail.Zone, detail.PlaceOfBirth), "", 1, "L", false, 0, "")
	if detail.Mother != nil {
		pdf.CellFormat(0, 6, fmt.Sprintf("Mother: %s    Phone: %s", detail.Mother.MotherName, detail.Mother.Phone), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	widths := []float64{55, 15, 30, 30, 35, 25}
	tableHeader(pdf, widths, []string{"Vaccine", "Dose", "Date given", "Next due", "Batch", "Status"})
	for _, record := range records {
		name := vaccineNames[record.VaccineID]
		if name == "" {
			name = record.VaccineID.Hex()
		}
		for _, dose := range record.Doses {
			pdf.CellFormat(widths[0], 7, name, "1", 0, "L", false, 0, "")
			pdf.CellFormat(widths[1], 7, fmt.Sprintf("%d", dose.DoseNumber), "1", 0, "C", false, 0, "")
			pdf.CellFormat(widths[2], 7, formatMilli(dose.DateGiven), "1", 0, "C", false, 0, "")
			pdf.CellFormat(widths[3], 7, formatMilli(dose.NextDueDate), "1", 0, "C", false, 0, "")
			pdf.CellFormat(widths[4], 7, dose.BatchNumber, "1", 0, "C", false, 0, "")
			pdf.CellFormat(widths[5], 7, dose.Status, "1", 0, "C", false, 0, "")
			pdf.Ln(-1)
		}
	}
	if len(records) == 0 {
		pdf.CellFormat(0, 7, "No doses recorded yet", "1", 1, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("vaccination-card-%s.pdf", newbornID.Hex())
	return buf.Bytes(), filename, nil
}

// vaccineNamesByID tra tên vaccine cho các record cần in
func (s *ReportService) vaccineNamesByID(ctx context.Context, records []vaccinationmodels.VaccinationRecord) (map[primitive.ObjectID]string, error) {
	ids := make([]primitive.ObjectID, 0, len(records))
	for _, record := range records {
		ids = append(ids, record.VaccineID)
	}
	names := make(map[primitive.ObjectID]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}
	vaccines, err := s.vaccineService.FindManyByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, vaccine := range vaccines {
		names[vaccine.ID] = vaccine.Name
	}
	return names, nil
}

// ==========================================
// TỒN KHO VACCINE
// ==========================================

// VaccineStockPDF sinh báo cáo tồn kho vaccine theo từng lô,
// sắp theo hạn dùng để thấy ngay lô nào cần tiêu thụ trước.
func (s *ReportService) VaccineStockPDF(ctx context.Context) ([]byte, string, error) {
	vaccines, err := s.vaccineService.Find(ctx, bson.M{}, nil)
	if err != nil {
		return nil, "", err
	}

	pdf := newReportPDF("Vaccine Stock Summary")

	widths := []float64{55, 20, 35, 30, 25, 25}
	tableHeader(pdf, widths, []string{"Vaccine", "Doses", "Batch", "Expires", "Stock", "Total"})
	for _, vaccine := range vaccines {
		total := vaccine.TotalStock()
		if len(vaccine.Batches) == 0 {
			pdf.CellFormat(widths[0], 7, vaccine.Name, "1", 0, "L", false, 0, "")
			pdf.CellFormat(widths[1], 7, fmt.Sprintf("%d", vaccine.TotalDoses), "1", 0, "C", false, 0, "")
			pdf.CellFormat(widths[2]+widths[3]+widths[4], 7, "No batches", "1", 0, "C", false, 0, "")
			pdf.CellFormat(widths[5], 7, "0", "1", 0, "C", false, 0, "")
			pdf.Ln(-1)
			continue
		}
		for i, batch := range vaccine.Batches {
			name, doses, totalStr := "", "", ""
			if i == 0 {
				name = vaccine.Name
				doses = fmt.Sprintf("%d", vaccine.TotalDoses)
				totalStr = fmt.Sprintf("%d", total)
			}
			pdf.CellFormat(widths[0], 7, name, "1", 0, "L", false, 0, "")
			pdf.CellFormat(widths[1], 7, doses, "1", 0, "C", false, 0, "")
			pdf.CellFormat(widths[2], 7, batch.BatchNumber, "1", 0, "C", false, 0, "")
			pdf.CellFormat(widths[3], 7, formatMilli(batch.ExpirationDate), "1", 0, "C", false, 0, "")
			pdf.CellFormat(widths[4], 7, fmt.Sprintf("%d", batch.Stock), "1", 0, "C", false, 0, "")
			pdf.CellFormat(widths[5], 7, totalStr, "1", 0, "C", false, 0, "")
			pdf.Ln(-1)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), "vaccine-stock.pdf", nil
}

// ==========================================
// TỔNG HỢP BẢO TRÌ THIẾT BỊ
// ==========================================

// MaintenanceSummaryPDF sinh báo cáo tổng hợp các yêu cầu bảo trì thiết bị
func (s *ReportService) MaintenanceSummaryPDF(ctx context.Context) ([]byte, string, error) {
	requests, err := s.maintenanceService.Find(ctx, bson.M{}, nil)
	if err != nil {
		return nil, "", err
	}

	equipmentNames := make(map[primitive.ObjectID]string)
	if len(requests) > 0 {
		ids := make([]primitive.ObjectID, 0, len(requests))
		for _, request := range requests {
			ids = append(ids, request.EquipmentID)
		}
		equipments, err := s.equipmentService.FindManyByIds(ctx, ids)
		if err != nil {
			return nil, "", err
		}
		for _, equipment := range equipments {
			equipmentNames[equipment.ID] = fmt.Sprintf("%s (%s)", equipment.Name, equipment.SerialNumber)
		}
	}

	pdf := newReportPDF("Equipment Maintenance Summary")

	widths := []float64{70, 30, 30, 30, 30}
	tableHeader(pdf, widths, []string{"Equipment", "Status", "Scheduled", "Resolved", "Created"})
	for _, request := range requests {
		name := equipmentNames[request.EquipmentID]
		if name == "" {
			name = request.EquipmentID.Hex()
		}
		pdf.CellFormat(widths[0], 7, name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 7, request.Status, "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[2], 7, formatMilli(request.ScheduledAt), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[3], 7, formatMilli(request.ResolvedAt), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[4], 7, formatMilli(request.CreatedAt), "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}
	if len(requests) == 0 {
		pdf.CellFormat(0, 7, "No maintenance requests", "1", 1, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), "maintenance-summary.pdf", nil
}
