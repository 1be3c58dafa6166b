// Package models - Notification thuộc domain Notification.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Viewer lưu trạng thái đọc của một người nhận thông báo
type Viewer struct {
	UserID   primitive.ObjectID `json:"userId" bson:"userId"`
	IsRead   bool               `json:"isRead" bson:"isRead"`
	ViewedAt int64              `json:"viewedAt,omitempty" bson:"viewedAt,omitempty"`
}

// Notification - Thông báo trong hệ thống.
// Với loại thông báo theo trẻ (vaccine_completion, unvaccinated_alert),
// cặp (newbornId, type) là duy nhất nhờ partial unique index,
// đảm bảo không tạo trùng thông báo cho cùng một trẻ.
type Notification struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	NewbornID primitive.ObjectID `json:"newbornId,omitempty" bson:"newbornId,omitempty"`
	Type      string             `json:"type" bson:"type"`
	Severity  string             `json:"severity" bson:"severity"`
	Message   string             `json:"message" bson:"message"`
	Viewers   []Viewer           `json:"viewers" bson:"viewers"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt" index:"single,order:-1"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}

// NotificationPaginateResult đại diện cho kết quả phân trang Notification
type NotificationPaginateResult struct {
	Page      int64          `json:"page" bson:"page"`
	Limit     int64          `json:"limit" bson:"limit"`
	ItemCount int64          `json:"itemCount" bson:"itemCount"`
	Items     []Notification `json:"items" bson:"items"`
}
