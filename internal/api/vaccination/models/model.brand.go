// Package models - Brand thuộc domain vaccination (brands).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Brand lưu nhãn hiệu vaccine (brands).
type Brand struct {
	_Relationships struct{}           `relationship:"collection:vaccines,field:brandId,message:Không thể xóa nhãn hiệu vì có %d vaccine đang thuộc nhãn hiệu này. Vui lòng xóa các vaccine trước."`
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name           string             `json:"name" bson:"name" index:"unique"`
	Manufacturer   string             `json:"manufacturer,omitempty" bson:"manufacturer,omitempty"`
	Country        string             `json:"country,omitempty" bson:"country,omitempty"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}

// BrandPaginateResult đại diện cho kết quả phân trang Brand
type BrandPaginateResult struct {
	Page      int64   `json:"page" bson:"page"`
	Limit     int64   `json:"limit" bson:"limit"`
	ItemCount int64   `json:"itemCount" bson:"itemCount"`
	Items     []Brand `json:"items" bson:"items"`
}
