// Package models - model người dùng (User) thuộc domain auth.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các role của hệ thống. Role quyết định phạm vi dữ liệu người dùng được truy cập:
// - admin: toàn quyền
// - staff: nhân viên trạm y tế, xem và thao tác dữ liệu mọi khu vực
// - bhw: nhân viên y tế thôn bản, chỉ thao tác dữ liệu trong khu vực phụ trách (Zone)
// - parent: phụ huynh, chỉ xem dữ liệu con của mình
const (
	RoleAdmin  = "admin"
	RoleStaff  = "staff"
	RoleBHW    = "bhw"
	RoleParent = "parent"
)

// ValidRoles danh sách role hợp lệ, dùng để validate input khi gán role.
var ValidRoles = []string{RoleAdmin, RoleStaff, RoleBHW, RoleParent}

// User định nghĩa mô hình người dùng
// Token chứa token xác thực mới nhất của người dùng
// Tokens chứa danh sách các token, mỗi thiết bị khác nhau sẽ có một token riêng để xác thực (bằng hwid)
// Zone chỉ có ý nghĩa với role bhw: tên khu vực (barangay) mà nhân viên y tế phụ trách
type User struct {
	_Relationships    struct{}           `relationship:"collection:vaccination_records,field:administeredBy,message:Không thể xóa user vì có %d mũi tiêm do user này thực hiện. Dữ liệu tiêm chủng cần được bảo toàn."`
	ID                primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name              string             `json:"name" bson:"name"`
	Email             string             `json:"email,omitempty" bson:"email,omitempty" index:"unique,sparse"`
	Password          string             `json:"-" bson:"password,omitempty"`
	Phone             string             `json:"phone,omitempty" bson:"phone,omitempty" index:"unique,sparse"`
	Role              string             `json:"role" bson:"role" index:"single"`
	Zone              string             `json:"zone,omitempty" bson:"zone,omitempty" index:"single"`
	Verified          bool               `json:"verified" bson:"verified"`
	VerifyToken       string             `json:"-" bson:"verifyToken,omitempty"`
	VerifyTokenExpiry int64              `json:"-" bson:"verifyTokenExpiry,omitempty"`
	AvatarURL         string             `json:"avatarUrl,omitempty" bson:"avatarUrl,omitempty"`
	Token             string             `json:"token,omitempty" bson:"token,omitempty"`
	Tokens            []Token            `json:"-" bson:"tokens"`
	IsBlock           bool               `json:"-" bson:"isBlock"`
	BlockNote         string             `json:"-" bson:"blockNote"`
	IsSystem          bool               `json:"-" bson:"isSystem,omitempty"`
	CreatedAt         int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt         int64              `json:"updatedAt" bson:"updatedAt"`
}

// IsValidRole kiểm tra role có nằm trong danh sách role hợp lệ không.
func IsValidRole(role string) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}

// UserPaginateResult đại diện cho kết quả phân trang User
type UserPaginateResult struct {
	Page      int64  `json:"page" bson:"page"`
	Limit     int64  `json:"limit" bson:"limit"`
	ItemCount int64  `json:"itemCount" bson:"itemCount"`
	Items     []User `json:"items" bson:"items"`
}
