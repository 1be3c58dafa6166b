// Package models - Laboratory thuộc domain facility (laboratories).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Laboratory lưu thông tin phòng xét nghiệm / phòng chức năng (laboratories).
type Laboratory struct {
	_Relationships struct{}           `relationship:"collection:equipments,field:laboratoryId,message:Không thể xóa phòng vì có %d thiết bị đang thuộc phòng này. Vui lòng chuyển hoặc xóa các thiết bị trước."`
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name           string             `json:"name" bson:"name" index:"unique"`
	Location       string             `json:"location,omitempty" bson:"location,omitempty"`
	Description    string             `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}

// LaboratoryPaginateResult đại diện cho kết quả phân trang Laboratory
type LaboratoryPaginateResult struct {
	Page      int64        `json:"page" bson:"page"`
	Limit     int64        `json:"limit" bson:"limit"`
	ItemCount int64        `json:"itemCount" bson:"itemCount"`
	Items     []Laboratory `json:"items" bson:"items"`
}
