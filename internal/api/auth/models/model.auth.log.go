// Package models - AuditLog thuộc domain auth.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuditLog lưu vết các thao tác nhạy cảm trên dữ liệu tiêm chủng
// (ghi mũi tiêm, trừ kho lô vaccine, khóa tài khoản...).
type AuditLog struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID     primitive.ObjectID `json:"userId,omitempty" bson:"userId,omitempty" index:"single"`
	Collection string             `json:"collection,omitempty" bson:"collection,omitempty"`
	Action     string             `json:"action,omitempty" bson:"action,omitempty"`
	Describe   string             `json:"describe,omitempty" bson:"describe,omitempty"`
	OldData    string             `json:"oldData,omitempty" bson:"oldData,omitempty"`
	NewData    string             `json:"newData,omitempty" bson:"newData,omitempty"`
	CreatedAt  int64              `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt  int64              `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
