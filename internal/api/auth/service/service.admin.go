// Package authsvc - service quản trị (Admin): block user, set role, v.v.
package authsvc

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	models "newborn_tracking/internal/api/auth/models"
	basesvc "newborn_tracking/internal/api/base/service"
	"newborn_tracking/internal/common"

	"go.mongodb.org/mongo-driver/bson"
)

// AdminService là cấu trúc chứa các phương thức liên quan đến admin
type AdminService struct {
	userService *UserService
}

// NewAdminService tạo mới AdminService
func NewAdminService() (*AdminService, error) {
	userService, err := NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	return &AdminService{
		userService: userService,
	}, nil
}

// SetRole gán role cho user dựa trên email. Role bhw bắt buộc phải kèm zone
// (khu vực phụ trách); các role khác sẽ bị xóa zone nếu có.
func (s *AdminService) SetRole(ctx context.Context, email string, role string, zone string) (*models.User, error) {
	if !models.IsValidRole(role) {
		return nil, common.NewError(common.ErrCodeAuthRole, fmt.Sprintf("Role '%s' không hợp lệ", role), common.StatusBadRequest, map[string]interface{}{
			"validRoles": models.ValidRoles,
		})
	}
	if role == models.RoleBHW && zone == "" {
		return nil, common.NewError(common.ErrCodeValidationInput, "Role bhw bắt buộc phải có zone (khu vực phụ trách)", common.StatusBadRequest, nil)
	}

	filter := bson.M{"email": email}
	user, err := s.userService.FindOne(ctx, filter, nil)
	if err != nil {
		return nil, err
	}

	setData := map[string]interface{}{"role": role}
	updateData := &basesvc.UpdateData{Set: setData}
	if role == models.RoleBHW {
		setData["zone"] = zone
	} else {
		updateData.Unset = map[string]interface{}{"zone": ""}
	}

	updatedUser, err := s.userService.UpdateById(ctx, user.ID, updateData)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"user_id": user.ID.Hex(), "email": email, "role": role, "zone": zone}).Info("✅ SetRole: Gán role thành công")
	return &updatedUser, nil
}

// BlockUser chặn hoặc bỏ chặn User dựa trên Email và trạng thái Block.
// Khi khóa sẽ thu hồi toàn bộ token đang đăng nhập.
func (s *AdminService) BlockUser(ctx context.Context, email string, block bool, note string) (*models.User, error) {
	filter := bson.M{"email": email}
	user, err := s.userService.FindOne(ctx, filter, nil)
	if err != nil {
		return nil, err
	}

	setData := map[string]interface{}{
		"isBlock":   block,
		"blockNote": note,
	}
	if block {
		setData["tokens"] = []models.Token{}
		setData["token"] = ""
	}
	updateData := &basesvc.UpdateData{Set: setData}
	updatedUser, err := s.userService.UpdateById(ctx, user.ID, updateData)
	if err != nil {
		return nil, err
	}
	return &updatedUser, nil
}

// UnBlockUser mở khóa người dùng
func (s *AdminService) UnBlockUser(ctx context.Context, email string) (*models.User, error) {
	return s.BlockUser(ctx, email, false, "")
}
