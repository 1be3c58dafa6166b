package global

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"newborn_tracking/config"
	"newborn_tracking/internal/registry"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	Users               string // Tên collection cho người dùng (admin, BHW, parent)
	Parents             string // Tên collection cho hồ sơ phụ huynh
	Newborns            string // Tên collection cho hồ sơ trẻ sơ sinh
	Brands              string // Tên collection cho nhãn hiệu vaccine
	Vaccines            string // Tên collection cho vaccine (kèm các lô tồn kho)
	AssignedVaccines    string // Tên collection cho phác đồ tiêm được gán cho trẻ
	VaccinationRecords  string // Tên collection cho hồ sơ tiêm chủng (kèm các mũi tiêm)
	Notifications       string // Tên collection cho thông báo
	Equipments          string // Tên collection cho thiết bị y tế
	Laboratories        string // Tên collection cho phòng xét nghiệm
	MaintenanceRequests string // Tên collection cho yêu cầu bảo trì thiết bị
	AuditLogs           string // Tên collection cho nhật ký audit
}

// Các biến toàn cục
var Validate *validator.Validate               // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client              // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration // Cấu hình của server
var MongoDB_ColNames = MongoDB_CollectionName{
	Users:               "users",
	Parents:             "parents",
	Newborns:            "newborns",
	Brands:              "brands",
	Vaccines:            "vaccines",
	AssignedVaccines:    "assigned_vaccines",
	VaccinationRecords:  "vaccination_records",
	Notifications:       "notifications",
	Equipments:          "equipments",
	Laboratories:        "laboratories",
	MaintenanceRequests: "maintenance_requests",
	AuditLogs:           "audit_logs",
}

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
