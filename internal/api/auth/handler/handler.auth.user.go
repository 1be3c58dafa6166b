package authhdl

import (
	"fmt"

	authdto "newborn_tracking/internal/api/auth/dto"
	models "newborn_tracking/internal/api/auth/models"
	authsvc "newborn_tracking/internal/api/auth/service"
	basehdl "newborn_tracking/internal/api/base/handler"
	"newborn_tracking/internal/common"
	"newborn_tracking/internal/logger"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserHandler xử lý các request xác thực và quản lý người dùng
type UserHandler struct {
	*basehdl.BaseHandler[models.User, authdto.UserCreateInput, authdto.UserUpdateInput]
	userService *authsvc.UserService
}

// NewUserHandler tạo instance mới của UserHandler
func NewUserHandler() (*UserHandler, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.User, authdto.UserCreateInput, authdto.UserUpdateInput](userService)
	return &UserHandler{
		BaseHandler: baseHandler,
		userService: userService,
	}, nil
}

// scrubUser xóa các field nhạy cảm trước khi trả về client
func scrubUser(user *models.User) {
	user.Password = ""
	user.VerifyToken = ""
	user.Tokens = nil
}

// getAuthenticatedUserID lấy userID đã xác thực từ Locals (được middleware auth gán)
func getAuthenticatedUserID(c fiber.Ctx) (primitive.ObjectID, error) {
	userID := c.Locals("user_id")
	if userID == nil {
		return primitive.NilObjectID, common.NewError(common.ErrCodeAuth, "User not authenticated", common.StatusUnauthorized, nil)
	}
	objID, err := primitive.ObjectIDFromHex(userID.(string))
	if err != nil {
		return primitive.NilObjectID, common.NewError(common.ErrCodeValidationFormat, "Invalid user ID", common.StatusBadRequest, err)
	}
	return objID, nil
}

// HandleRegister đăng ký tài khoản mới (role parent, chờ xác thực email)
func (h *UserHandler) HandleRegister(c fiber.Ctx) error {
	var input authdto.RegisterInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	user, err := h.userService.Register(c.Context(), &input)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	scrubUser(user)
	h.HandleResponse(c, user, nil)
	return nil
}

// HandleLogin đăng nhập bằng email/mật khẩu
func (h *UserHandler) HandleLogin(c fiber.Ctx) error {
	var input authdto.LoginInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	user, err := h.userService.Login(c.Context(), &input)
	if err != nil {
		logger.LogAuth("login_failed", c, map[string]interface{}{"email": input.Email})
		h.HandleResponse(c, nil, err)
		return nil
	}
	logger.LogAuth("login", c, map[string]interface{}{"email": user.Email})
	scrubUser(user)
	h.HandleResponse(c, user, nil)
	return nil
}

// HandleLogout xử lý đăng xuất người dùng
func (h *UserHandler) HandleLogout(c fiber.Ctx) error {
	objID, err := getAuthenticatedUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input authdto.UserLogoutInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	err = h.userService.Logout(c.Context(), objID, &input)
	if err == nil {
		logger.LogAuth("logout", c, nil)
	}
	h.HandleResponse(c, nil, err)
	return nil
}

// HandleVerifyEmail xác thực email bằng token gửi qua mail
func (h *UserHandler) HandleVerifyEmail(c fiber.Ctx) error {
	var input authdto.VerifyEmailInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	user, err := h.userService.VerifyEmail(c.Context(), &input)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	scrubUser(user)
	h.HandleResponse(c, user, nil)
	return nil
}

// HandleResendVerification gửi lại email xác thực
func (h *UserHandler) HandleResendVerification(c fiber.Ctx) error {
	var input authdto.ResendVerificationInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	err := h.userService.ResendVerification(c.Context(), &input)
	h.HandleResponse(c, nil, err)
	return nil
}

// HandleChangePassword đổi mật khẩu của chính người dùng
func (h *UserHandler) HandleChangePassword(c fiber.Ctx) error {
	objID, err := getAuthenticatedUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input authdto.ChangePasswordInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	err = h.userService.ChangePassword(c.Context(), objID, &input)
	h.HandleResponse(c, nil, err)
	return nil
}

// HandleGetProfile lấy thông tin profile của người dùng
func (h *UserHandler) HandleGetProfile(c fiber.Ctx) error {
	objID, err := getAuthenticatedUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	user, err := h.userService.BaseServiceMongoImpl.FindOneById(c.Context(), objID)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	scrubUser(&user)
	h.HandleResponse(c, user, nil)
	return nil
}

// HandleUpdateProfile cập nhật thông tin profile
func (h *UserHandler) HandleUpdateProfile(c fiber.Ctx) error {
	objID, err := getAuthenticatedUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input authdto.UserChangeInfoInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	updatedUser, err := h.userService.ChangeInfo(c.Context(), objID, &input)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	scrubUser(updatedUser)
	h.HandleResponse(c, updatedUser, nil)
	return nil
}
