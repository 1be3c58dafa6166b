package notification

// Type constants - Loại thông báo (lưu trong field type của collection notifications)
const (
	TypeVaccineCompletion  = "vaccine_completion"  // Hoàn thành toàn bộ lịch tiêm
	TypeUnvaccinatedAlert  = "unvaccinated_alert"  // Chưa tiêm mũi nào theo lịch được gán
	TypeMaintenanceDue     = "maintenance_due"     // Yêu cầu bảo trì đến hạn hoặc quá hạn
	TypeMaintenanceRequest = "maintenance_request" // Yêu cầu bảo trì mới được tạo
)

// Severity constants - Mức độ nghiêm trọng
const (
	SeverityHigh   = "high"   // Cao - cần xử lý sớm (quá hạn tiêm)
	SeverityMedium = "medium" // Trung bình - xử lý trong giờ làm việc
	SeverityInfo   = "info"   // Thông tin - chỉ ghi nhận (hoàn thành lịch tiêm)
)
