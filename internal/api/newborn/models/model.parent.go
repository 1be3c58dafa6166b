// Package models - Parent, Newborn thuộc domain newborn (hồ sơ phụ huynh và trẻ sơ sinh).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Parent lưu hồ sơ phụ huynh (parents). MotherEmail dùng làm địa chỉ nhận
// thông báo tiêm chủng; UserID liên kết tới tài khoản đăng nhập nếu phụ huynh
// có tài khoản role parent.
type Parent struct {
	_Relationships struct{}           `relationship:"collection:newborns,field:motherId,message:Không thể xóa phụ huynh vì có %d hồ sơ trẻ đang gắn với phụ huynh này. Vui lòng xóa hồ sơ trẻ trước."`
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	MotherName     string             `json:"motherName" bson:"motherName"`
	MotherEmail    string             `json:"motherEmail,omitempty" bson:"motherEmail,omitempty" index:"single"`
	FatherName     string             `json:"fatherName,omitempty" bson:"fatherName,omitempty"`
	Phone          string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Address        string             `json:"address,omitempty" bson:"address,omitempty"`
	Zone           string             `json:"zone" bson:"zone" index:"single"`
	UserID         primitive.ObjectID `json:"userId,omitempty" bson:"userId,omitempty" index:"single"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}

// ParentPaginateResult đại diện cho kết quả phân trang Parent
type ParentPaginateResult struct {
	Page      int64    `json:"page" bson:"page"`
	Limit     int64    `json:"limit" bson:"limit"`
	ItemCount int64    `json:"itemCount" bson:"itemCount"`
	Items     []Parent `json:"items" bson:"items"`
}
