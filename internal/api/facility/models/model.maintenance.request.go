// Package models - MaintenanceRequest thuộc domain facility (maintenance_requests).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Maintenance request status values
const (
	MaintenanceStatusPending    = "pending"
	MaintenanceStatusInProgress = "in_progress"
	MaintenanceStatusDone       = "done"
)

// MaintenanceRequest lưu yêu cầu bảo trì thiết bị (maintenance_requests).
// NotifiedDue đánh dấu worker đã gửi thông báo đến hạn cho yêu cầu này,
// tránh gửi lặp mỗi lần quét.
type MaintenanceRequest struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	EquipmentID  primitive.ObjectID `json:"equipmentId" bson:"equipmentId"`
	LaboratoryID primitive.ObjectID `json:"laboratoryId,omitempty" bson:"laboratoryId,omitempty"`
	RequestedBy  primitive.ObjectID `json:"requestedBy,omitempty" bson:"requestedBy,omitempty"`
	Description  string             `json:"description,omitempty" bson:"description,omitempty"`
	Status       string             `json:"status" bson:"status"`
	ScheduledAt  int64              `json:"scheduledAt,omitempty" bson:"scheduledAt,omitempty"`
	ResolvedAt   int64              `json:"resolvedAt,omitempty" bson:"resolvedAt,omitempty"`
	NotifiedDue  bool               `json:"notifiedDue" bson:"notifiedDue"`
	CreatedAt    int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64              `json:"updatedAt" bson:"updatedAt"`
}

// MaintenanceRequestPaginateResult đại diện cho kết quả phân trang MaintenanceRequest
type MaintenanceRequestPaginateResult struct {
	Page      int64                `json:"page" bson:"page"`
	Limit     int64                `json:"limit" bson:"limit"`
	ItemCount int64                `json:"itemCount" bson:"itemCount"`
	Items     []MaintenanceRequest `json:"items" bson:"items"`
}
