// Package models - Newborn thuộc domain newborn (newborns).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Gender values của hồ sơ trẻ
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// Newborn lưu hồ sơ trẻ sơ sinh (newborns).
// Zone copy từ phụ huynh lúc tạo để BHW lọc theo địa bàn mà không cần join.
type Newborn struct {
	_Relationships   struct{}           `relationship:"collection:assigned_vaccines,field:newbornId,message:Không thể xóa hồ sơ trẻ vì có %d phác đồ tiêm đang được gán. Vui lòng gỡ phác đồ trước.|collection:vaccination_records,field:newbornId,message:Không thể xóa hồ sơ trẻ vì có %d hồ sơ tiêm chủng. Dữ liệu tiêm chủng cần được bảo toàn."`
	ID               primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name             string             `json:"name" bson:"name"`
	Gender           string             `json:"gender" bson:"gender"`
	BirthDate        int64              `json:"birthDate" bson:"birthDate"`
	BirthWeightGrams int                `json:"birthWeightGrams,omitempty" bson:"birthWeightGrams,omitempty"`
	BirthHeightCm    float64            `json:"birthHeightCm,omitempty" bson:"birthHeightCm,omitempty"`
	MotherID         primitive.ObjectID `json:"motherId" bson:"motherId"`
	Zone             string             `json:"zone" bson:"zone"`
	PlaceOfBirth     string             `json:"placeOfBirth,omitempty" bson:"placeOfBirth,omitempty"`
	CreatedBy        primitive.ObjectID `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	CreatedAt        int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt        int64              `json:"updatedAt" bson:"updatedAt"`
}

// NewbornDetail là view kết quả $lookup newborns → parents.
// Mother là con trỏ vì pipeline unwind với preserveNullAndEmptyArrays.
type NewbornDetail struct {
	Newborn `bson:",inline"`
	Mother  *Parent `json:"mother,omitempty" bson:"mother,omitempty"`
}

// NewbornPaginateResult đại diện cho kết quả phân trang Newborn
type NewbornPaginateResult struct {
	Page      int64     `json:"page" bson:"page"`
	Limit     int64     `json:"limit" bson:"limit"`
	ItemCount int64     `json:"itemCount" bson:"itemCount"`
	Items     []Newborn `json:"items" bson:"items"`
}
