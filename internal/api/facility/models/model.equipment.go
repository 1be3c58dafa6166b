// Package models - Equipment thuộc domain facility (equipments).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Equipment status values
const (
	EquipmentStatusAvailable    = "Available"
	EquipmentStatusNotAvailable = "Not Available"
)

// Equipment lưu thông tin thiết bị y tế (equipments).
// Status chuyển sang "Not Available" khi có yêu cầu bảo trì đang mở
// và trở lại "Available" khi yêu cầu được đánh dấu hoàn thành.
type Equipment struct {
	_Relationships struct{}           `relationship:"collection:maintenance_requests,field:equipmentId,message:Không thể xóa thiết bị vì có %d yêu cầu bảo trì tham chiếu tới thiết bị này. Vui lòng xóa các yêu cầu trước."`
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name           string             `json:"name" bson:"name"`
	SerialNumber   string             `json:"serialNumber" bson:"serialNumber" index:"unique"`
	Category       string             `json:"category,omitempty" bson:"category,omitempty" index:"single"`
	LaboratoryID   primitive.ObjectID `json:"laboratoryId,omitempty" bson:"laboratoryId,omitempty" index:"single"`
	Status         string             `json:"status" bson:"status" index:"single"`
	Condition      string             `json:"condition,omitempty" bson:"condition,omitempty"`
	AcquiredAt     int64              `json:"acquiredAt,omitempty" bson:"acquiredAt,omitempty"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}

// EquipmentPaginateResult đại diện cho kết quả phân trang Equipment
type EquipmentPaginateResult struct {
	Page      int64       `json:"page" bson:"page"`
	Limit     int64       `json:"limit" bson:"limit"`
	ItemCount int64       `json:"itemCount" bson:"itemCount"`
	Items     []Equipment `json:"items" bson:"items"`
}
