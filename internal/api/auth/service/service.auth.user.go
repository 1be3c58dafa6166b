// Package authsvc - service người dùng (User).
package authsvc

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authdto "newborn_tracking/internal/api/auth/dto"
	models "newborn_tracking/internal/api/auth/models"
	basesvc "newborn_tracking/internal/api/base/service"
	"newborn_tracking/internal/common"
	"newborn_tracking/internal/global"
	"newborn_tracking/internal/notification/channels"
	"newborn_tracking/internal/utility"
)

// UserService là cấu trúc chứa các phương thức liên quan đến người dùng
type UserService struct {
	*basesvc.BaseServiceMongoImpl[models.User]
}

// NewUserService tạo mới UserService
func NewUserService() (*UserService, error) {
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}

	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.User](userCollection),
	}, nil
}

// hashPassword băm mật khẩu bằng bcrypt với cost mặc định.
func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", common.NewError(common.ErrCodeAuth, "Không thể xử lý mật khẩu", common.StatusInternalServerError, err)
	}
	return string(hashed), nil
}

// Register đăng ký tài khoản mới với role parent. Tài khoản sau khi tạo ở trạng thái
// chưa xác thực (verified = false) và sẽ bị worker dọn dẹp nếu không xác thực email kịp hạn.
func (s *UserService) Register(ctx context.Context, input *authdto.RegisterInput) (*models.User, error) {
	if err := utility.ValidatePassword(input.Password); err != nil {
		return nil, err
	}

	if _, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"email": input.Email}, nil); err == nil {
		return nil, common.NewError(common.ErrCodeAuthCredentials, "Email đã được sử dụng", common.StatusConflict, nil)
	} else if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	hashed, err := hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	verifyToken, err := utility.GenerateRandomCode(6)
	if err != nil {
		return nil, common.NewError(common.ErrCodeAuth, "Không thể tạo mã xác thực", common.StatusInternalServerError, err)
	}

	expirySeconds := int64(global.MongoDB_ServerConfig.VerifyTokenExpiry)
	user := models.User{
		Name:              input.Name,
		Email:             input.Email,
		Password:          hashed,
		Phone:             input.Phone,
		Role:              models.RoleParent,
		Verified:          false,
		VerifyToken:       verifyToken,
		VerifyTokenExpiry: utility.CurrentTimeInMilli() + expirySeconds*1000,
		Tokens:            []models.Token{},
	}

	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrMongoDuplicate) {
			return nil, common.NewError(common.ErrCodeAuthCredentials, "Email hoặc số điện thoại đã được sử dụng", common.StatusConflict, nil)
		}
		return nil, err
	}

	// Gửi email xác thực bất đồng bộ, lỗi gửi mail không chặn việc đăng ký
	go utility.GoProtect(func() {
		if mailErr := channels.SendVerificationEmail(created.Email, created.Name, verifyToken); mailErr != nil {
			logrus.WithFields(logrus.Fields{"email": created.Email, "error": mailErr.Error()}).Warn("⚠️ Register: Không gửi được email xác thực")
		}
	})

	logrus.WithFields(logrus.Fields{"user_id": created.ID.Hex(), "email": created.Email}).Info("✅ Register: Tạo tài khoản thành công, chờ xác thực email")
	return &created, nil
}

// Login đăng nhập bằng email/mật khẩu, sinh JWT token mới cho thiết bị (hwid).
func (s *UserService) Login(ctx context.Context, input *authdto.LoginInput) (*models.User, error) {
	user, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return nil, common.ErrInvalidCredentials
	}

	if user.IsBlock {
		return nil, common.ErrAccountDeactive
	}
	if !user.Verified {
		return nil, common.ErrAccountNotVerified
	}

	rdNumber := rand.Intn(100)
	currentTime := time.Now().Unix()
	tokenMap, err := utility.CreateToken(global.MongoDB_ServerConfig.JwtSecret, user.ID.Hex(), strconv.FormatInt(currentTime, 16), strconv.Itoa(rdNumber))
	if err != nil {
		return nil, err
	}

	user.Token = tokenMap["token"]
	var idTokenExist int = -1
	for i, _token := range user.Tokens {
		if _token.Hwid == input.Hwid {
			idTokenExist = i
			break
		}
	}
	if idTokenExist == -1 {
		user.Tokens = append(user.Tokens, models.Token{Hwid: input.Hwid, JwtToken: tokenMap["token"]})
	} else {
		user.Tokens[idTokenExist].JwtToken = tokenMap["token"]
	}

	tokenUpdateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"token":  user.Token,
			"tokens": user.Tokens,
		},
	}
	updatedUser, err := s.BaseServiceMongoImpl.UpdateById(ctx, user.ID, tokenUpdateData)
	if err != nil {
		logrus.WithFields(logrus.Fields{"user_id": user.ID.Hex(), "error": err.Error()}).Error("❌ Login: Lỗi khi cập nhật token vào user")
		return nil, err
	}
	updatedUser.Token = user.Token

	logrus.WithFields(logrus.Fields{"user_id": updatedUser.ID.Hex(), "email": updatedUser.Email, "role": updatedUser.Role}).Info("✅ Login: Đăng nhập thành công")
	return &updatedUser, nil
}

// Logout đăng xuất người dùng (xóa token theo hwid)
func (s *UserService) Logout(ctx context.Context, userID primitive.ObjectID, input *authdto.UserLogoutInput) error {
	user, err := s.BaseServiceMongoImpl.FindOneById(ctx, userID)
	if err != nil {
		return err
	}
	newTokens := make([]models.Token, 0)
	for _, t := range user.Tokens {
		if t.Hwid != input.Hwid {
			newTokens = append(newTokens, t)
		}
	}
	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"tokens": newTokens,
			"token":  "",
		},
	}
	_, err = s.BaseServiceMongoImpl.UpdateById(ctx, userID, updateData)
	return err
}

// VerifyEmail xác thực email bằng token. Token hết hạn hoặc sai đều trả lỗi.
func (s *UserService) VerifyEmail(ctx context.Context, input *authdto.VerifyEmailInput) (*models.User, error) {
	user, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, err
	}

	if user.Verified {
		return &user, nil
	}
	if user.VerifyToken == "" || user.VerifyToken != input.Token {
		return nil, common.NewError(common.ErrCodeAuthToken, "Mã xác thực không chính xác", common.StatusBadRequest, nil)
	}
	if user.VerifyTokenExpiry > 0 && utility.CurrentTimeInMilli() > user.VerifyTokenExpiry {
		return nil, common.NewError(common.ErrCodeAuthToken, "Mã xác thực đã hết hạn, vui lòng yêu cầu gửi lại", common.StatusBadRequest, nil)
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"verified": true,
		},
		Unset: map[string]interface{}{
			"verifyToken":       "",
			"verifyTokenExpiry": "",
		},
	}
	updatedUser, err := s.BaseServiceMongoImpl.UpdateById(ctx, user.ID, updateData)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"user_id": user.ID.Hex(), "email": user.Email}).Info("✅ VerifyEmail: Xác thực email thành công")
	return &updatedUser, nil
}

// ResendVerification sinh token mới và gửi lại email xác thực.
func (s *UserService) ResendVerification(ctx context.Context, input *authdto.ResendVerificationInput) error {
	user, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrUserNotFound
		}
		return err
	}
	if user.Verified {
		return common.NewError(common.ErrCodeAuthCredentials, "Tài khoản đã được xác thực", common.StatusBadRequest, nil)
	}

	verifyToken, err := utility.GenerateRandomCode(6)
	if err != nil {
		return common.NewError(common.ErrCodeAuth, "Không thể tạo mã xác thực", common.StatusInternalServerError, err)
	}

	expirySeconds := int64(global.MongoDB_ServerConfig.VerifyTokenExpiry)
	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"verifyToken":       verifyToken,
			"verifyTokenExpiry": utility.CurrentTimeInMilli() + expirySeconds*1000,
		},
	}
	if _, err := s.BaseServiceMongoImpl.UpdateById(ctx, user.ID, updateData); err != nil {
		return err
	}

	if mailErr := channels.SendVerificationEmail(user.Email, user.Name, verifyToken); mailErr != nil {
		logrus.WithFields(logrus.Fields{"email": user.Email, "error": mailErr.Error()}).Warn("⚠️ ResendVerification: Không gửi được email xác thực")
		return common.NewError(common.ErrCodeEmailSend, "Không gửi được email xác thực", common.StatusInternalServerError, mailErr)
	}
	return nil
}

// ChangePassword đổi mật khẩu, yêu cầu mật khẩu cũ chính xác. Đổi mật khẩu sẽ
// thu hồi toàn bộ token đang đăng nhập trên các thiết bị.
func (s *UserService) ChangePassword(ctx context.Context, userID primitive.ObjectID, input *authdto.ChangePasswordInput) error {
	user, err := s.BaseServiceMongoImpl.FindOneById(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.OldPassword)); err != nil {
		return common.NewError(common.ErrCodeAuthCredentials, "Mật khẩu hiện tại không chính xác", common.StatusUnauthorized, nil)
	}
	if err := utility.ValidatePassword(input.NewPassword); err != nil {
		return err
	}

	hashed, err := hashPassword(input.NewPassword)
	if err != nil {
		return err
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"password": hashed,
			"tokens":   []models.Token{},
			"token":    "",
		},
	}
	if _, err := s.BaseServiceMongoImpl.UpdateById(ctx, userID, updateData); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{"user_id": userID.Hex()}).Info("✅ ChangePassword: Đổi mật khẩu thành công, thu hồi toàn bộ token")
	return nil
}

// ChangeInfo cập nhật thông tin cá nhân của chính người dùng.
func (s *UserService) ChangeInfo(ctx context.Context, userID primitive.ObjectID, input *authdto.UserChangeInfoInput) (*models.User, error) {
	setData := make(map[string]interface{})
	if input.Name != "" {
		setData["name"] = input.Name
	}
	if input.Phone != "" {
		setData["phone"] = input.Phone
	}
	if len(setData) == 0 {
		user, err := s.BaseServiceMongoImpl.FindOneById(ctx, userID)
		if err != nil {
			return nil, err
		}
		return &user, nil
	}

	updatedUser, err := s.BaseServiceMongoImpl.UpdateById(ctx, userID, &basesvc.UpdateData{Set: setData})
	if err != nil {
		return nil, err
	}
	return &updatedUser, nil
}

// PurgeUnverified xóa các tài khoản chưa xác thực đã quá hạn. Được gọi định kỳ bởi worker.
// maxAge là tuổi tối đa (giây) của tài khoản chưa xác thực tính từ lúc tạo.
func (s *UserService) PurgeUnverified(ctx context.Context, maxAge time.Duration) (int64, error) {
	cutoff := utility.UnixMilli(time.Now().Add(-maxAge))
	filter := bson.M{
		"verified":  false,
		"createdAt": bson.M{"$lt": cutoff},
		"isSystem":  bson.M{"$ne": true},
	}
	deleted, err := s.BaseServiceMongoImpl.DeleteMany(ctx, filter)
	if err != nil {
		return 0, err
	}
	if deleted > 0 {
		logrus.WithFields(logrus.Fields{"deleted": deleted}).Info("🔄 PurgeUnverified: Đã xóa tài khoản chưa xác thực quá hạn")
	}
	return deleted, nil
}
