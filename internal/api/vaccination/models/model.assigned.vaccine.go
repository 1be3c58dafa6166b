// Package models - AssignedVaccine thuộc domain vaccination (assigned_vaccines).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AssignedVaccine là phác đồ tiêm được gán cho một trẻ (assigned_vaccines).
// Mỗi cặp (newbornId, vaccineId) chỉ có một phác đồ (unique index).
// - Completed: trẻ đã tiêm đủ totalDoses mũi của vaccine này
// - Notified: đã gửi cảnh báo chưa tiêm (unvaccinated_alert) cho phác đồ này
// - SentComplete: đã gửi thông báo hoàn thành toàn bộ lịch tiêm
type AssignedVaccine struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	NewbornID    primitive.ObjectID `json:"newbornId" bson:"newbornId"`
	VaccineID    primitive.ObjectID `json:"vaccineId" bson:"vaccineId"`
	TotalDoses   int                `json:"totalDoses" bson:"totalDoses"`
	Completed    bool               `json:"completed" bson:"completed"`
	Notified     bool               `json:"notified" bson:"notified"`
	SentComplete bool               `json:"sentComplete" bson:"sentComplete"`
	CreatedAt    int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64              `json:"updatedAt" bson:"updatedAt"`
}

// AssignedVaccinePaginateResult đại diện cho kết quả phân trang AssignedVaccine
type AssignedVaccinePaginateResult struct {
	Page      int64             `json:"page" bson:"page"`
	Limit     int64             `json:"limit" bson:"limit"`
	ItemCount int64             `json:"itemCount" bson:"itemCount"`
	Items     []AssignedVaccine `json:"items" bson:"items"`
}
