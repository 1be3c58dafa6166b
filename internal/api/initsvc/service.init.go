// Package initsvc chứa InitService dùng để khởi tạo dữ liệu ban đầu (admin đầu tiên, trạng thái hệ thống).
// Tách ra package riêng để tránh import cycle giữa auth/service và các domain service.
package initsvc

import (
	"context"
	"fmt"
	"time"

	authmodels "newborn_tracking/internal/api/auth/models"
	authsvc "newborn_tracking/internal/api/auth/service"
	basesvc "newborn_tracking/internal/api/base/service"
	"newborn_tracking/internal/common"
	"newborn_tracking/internal/utility"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// InitService là cấu trúc chứa các phương thức khởi tạo dữ liệu ban đầu cho hệ thống
type InitService struct {
	userService *authsvc.UserService
}

// NewInitService tạo mới một đối tượng InitService
func NewInitService() (*InitService, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	return &InitService{userService: userService}, nil
}

// HasAnyAdministrator kiểm tra hệ thống đã có user với role admin chưa
func (s *InitService) HasAnyAdministrator() (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := s.userService.BaseServiceMongoImpl.CountDocuments(ctx, bson.M{"role": authmodels.RoleAdmin})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// SetAdministrator gán role admin cho user theo ID.
// Trả về ErrUserAlreadyAdmin nếu user đã là admin.
func (s *InitService) SetAdministrator(userID primitive.ObjectID) (*authmodels.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user, err := s.userService.BaseServiceMongoImpl.FindOneById(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Role == authmodels.RoleAdmin {
		return nil, common.ErrUserAlreadyAdmin
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"role":     authmodels.RoleAdmin,
			"verified": true,
		},
	}
	updatedUser, err := s.userService.BaseServiceMongoImpl.UpdateById(ctx, userID, updateData)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"user_id": userID.Hex(), "email": updatedUser.Email}).Info("✅ SetAdministrator: Đã gán role admin")
	return &updatedUser, nil
}

// InitAdminUser tạo admin mặc định nếu hệ thống chưa có admin nào.
// Được gọi khi khởi động server ở chế độ INITMODE. Tài khoản seed được đánh dấu
// IsSystem để base service chặn sửa/xóa qua các API CRUD thông thường.
func (s *InitService) InitAdminUser(email string, password string) error {
	hasAdmin, err := s.HasAnyAdministrator()
	if err != nil {
		return err
	}
	if hasAdmin {
		logrus.Debug("InitAdminUser: Hệ thống đã có admin, bỏ qua seed")
		return nil
	}
	if email == "" || password == "" {
		return common.NewError(common.ErrCodeValidationInput, "Thiếu email hoặc mật khẩu admin mặc định", common.StatusBadRequest, nil)
	}
	if err := utility.ValidatePassword(password); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return common.NewError(common.ErrCodeAuth, "Không thể xử lý mật khẩu", common.StatusInternalServerError, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	ctx = basesvc.WithSystemDataInsertAllowed(ctx)

	admin := authmodels.User{
		Name:     "System Administrator",
		Email:    email,
		Password: string(hashed),
		Role:     authmodels.RoleAdmin,
		Verified: true,
		IsSystem: true,
		Tokens:   []authmodels.Token{},
	}
	created, err := s.userService.BaseServiceMongoImpl.InsertOne(ctx, admin)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{"user_id": created.ID.Hex(), "email": email}).Info("✅ InitAdminUser: Đã tạo admin mặc định")
	return nil
}

// GetInitStatus trả về trạng thái khởi tạo hệ thống
func (s *InitService) GetInitStatus() (map[string]interface{}, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	hasAdmin, err := s.HasAnyAdministrator()
	if err != nil {
		return nil, err
	}
	userCount, err := s.userService.BaseServiceMongoImpl.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"hasAdministrator": hasAdmin,
		"userCount":        userCount,
		"initialized":      hasAdmin,
	}, nil
}
