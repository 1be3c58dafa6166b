// Package models - VaccinationRecord và Dose thuộc domain vaccination (vaccination_records).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Dose status values
const (
	DoseStatusCompleted = "completed"
	DoseStatusScheduled = "scheduled"
	DoseStatusMissed    = "missed"
)

// Dose là một mũi tiêm nằm trong mảng doses của VaccinationRecord.
// ExpirationDateUsed và BatchNumber lưu vết lô vaccine đã dùng cho mũi này
// để truy xuất nguồn gốc khi có sự cố về lô.
type Dose struct {
	DoseNumber         int                `json:"doseNumber" bson:"doseNumber"`
	DateGiven          int64              `json:"dateGiven" bson:"dateGiven"`
	NextDueDate        int64              `json:"nextDueDate,omitempty" bson:"nextDueDate,omitempty"`
	Remarks            string             `json:"remarks,omitempty" bson:"remarks,omitempty"`
	AdministeredBy     primitive.ObjectID `json:"administeredBy" bson:"administeredBy"`
	Status             string             `json:"status" bson:"status"`
	ExpirationDateUsed int64              `json:"expirationDateUsed,omitempty" bson:"expirationDateUsed,omitempty"`
	BatchNumber        string             `json:"batchNumber,omitempty" bson:"batchNumber,omitempty"`
}

// VaccinationRecord là hồ sơ tiêm chủng của một trẻ với một vaccine (vaccination_records).
// Mỗi cặp (newbornId, vaccineId) chỉ có một document (unique index), các mũi tiêm
// được append vào mảng doses với doseNumber tăng dần liên tục từ 1.
type VaccinationRecord struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	NewbornID primitive.ObjectID `json:"newbornId" bson:"newbornId"`
	VaccineID primitive.ObjectID `json:"vaccineId" bson:"vaccineId"`
	Doses     []Dose             `json:"doses" bson:"doses"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}

// VaccinationRecordPaginateResult đại diện cho kết quả phân trang VaccinationRecord
type VaccinationRecordPaginateResult struct {
	Page      int64               `json:"page" bson:"page"`
	Limit     int64               `json:"limit" bson:"limit"`
	ItemCount int64               `json:"itemCount" bson:"itemCount"`
	Items     []VaccinationRecord `json:"items" bson:"items"`
}
