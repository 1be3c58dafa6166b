// Package models - Vaccine và Batch thuộc domain vaccination (vaccines).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Batch là một lô vaccine nằm trong mảng batches của Vaccine.
// Stock không bao giờ bị trừ xuống dưới 0 (decrement có điều kiện stock > 0).
type Batch struct {
	BatchNumber    string `json:"batchNumber" bson:"batchNumber"`
	Stock          int    `json:"stock" bson:"stock"`
	ExpirationDate int64  `json:"expirationDate" bson:"expirationDate"`
	AddedAt        int64  `json:"addedAt" bson:"addedAt"`
}

// Vaccine lưu thông tin vaccine kèm các lô tồn kho (vaccines).
// TotalDoses là số mũi trong phác đồ chuẩn, dùng khi gán lịch tiêm cho trẻ mới sinh.
type Vaccine struct {
	_Relationships struct{}           `relationship:"collection:assigned_vaccines,field:vaccineId,message:Không thể xóa vaccine vì có %d phác đồ tiêm đang tham chiếu tới vaccine này.|collection:vaccination_records,field:vaccineId,message:Không thể xóa vaccine vì có %d hồ sơ tiêm chủng tham chiếu tới vaccine này."`
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name           string             `json:"name" bson:"name" index:"unique"`
	BrandID        primitive.ObjectID `json:"brandId,omitempty" bson:"brandId,omitempty" index:"single"`
	Dosage         string             `json:"dosage,omitempty" bson:"dosage,omitempty"`
	Description    string             `json:"description,omitempty" bson:"description,omitempty"`
	TotalDoses     int                `json:"totalDoses" bson:"totalDoses"`
	Batches        []Batch            `json:"batches" bson:"batches"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}

// VaccineDetail là view kết quả $lookup vaccines → brands.
type VaccineDetail struct {
	Vaccine `bson:",inline"`
	Brand   *Brand `json:"brand,omitempty" bson:"brand,omitempty"`
}

// TotalStock tính tổng tồn kho của tất cả các lô.
func (v *Vaccine) TotalStock() int {
	total := 0
	for _, b := range v.Batches {
		total += b.Stock
	}
	return total
}

// VaccinePaginateResult đại diện cho kết quả phân trang Vaccine
type VaccinePaginateResult struct {
	Page      int64     `json:"page" bson:"page"`
	Limit     int64     `json:"limit" bson:"limit"`
	ItemCount int64     `json:"itemCount" bson:"itemCount"`
	Items     []Vaccine `json:"items" bson:"items"`
}
