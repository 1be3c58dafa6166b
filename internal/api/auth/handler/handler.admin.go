// Package authhdl - handler admin (block user, set role).
package authhdl

import (
	"fmt"

	authdto "newborn_tracking/internal/api/auth/dto"
	authmodels "newborn_tracking/internal/api/auth/models"
	authsvc "newborn_tracking/internal/api/auth/service"
	basehdl "newborn_tracking/internal/api/base/handler"
	"newborn_tracking/internal/common"

	"github.com/gofiber/fiber/v3"
)

// AdminHandler xử lý các route liên quan đến quản trị viên
type AdminHandler struct {
	basehdl.BaseHandler[authmodels.User, authdto.UserCreateInput, authdto.UserUpdateInput]
	UserCRUD     *authsvc.UserService
	AdminService *authsvc.AdminService
}

// NewAdminHandler tạo một instance mới của AdminHandler
func NewAdminHandler() (*AdminHandler, error) {
	h := &AdminHandler{}
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	h.UserCRUD = userService
	adminService, err := authsvc.NewAdminService()
	if err != nil {
		return nil, fmt.Errorf("failed to create admin service: %v", err)
	}
	h.AdminService = adminService
	h.BaseService = userService
	return h, nil
}

// HandleSetRole xử lý gán vai trò cho người dùng (role bhw phải kèm zone)
func (h *AdminHandler) HandleSetRole(c fiber.Ctx) error {
	var input authdto.SetRoleInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, err.Error(), common.StatusBadRequest, nil))
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	result, err := h.AdminService.SetRole(c.Context(), input.Email, input.Role, input.Zone)
	if result != nil {
		scrubUser(result)
	}
	h.HandleResponse(c, result, err)
	return nil
}

// HandleBlockUser xử lý khóa người dùng
func (h *AdminHandler) HandleBlockUser(c fiber.Ctx) error {
	var input authdto.BlockUserInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, err.Error(), common.StatusBadRequest, nil))
		return nil
	}
	result, err := h.AdminService.BlockUser(c.Context(), input.Email, true, input.Note)
	if result != nil {
		scrubUser(result)
	}
	h.HandleResponse(c, result, err)
	return nil
}

// HandleUnBlockUser xử lý mở khóa người dùng
func (h *AdminHandler) HandleUnBlockUser(c fiber.Ctx) error {
	var input authdto.UnBlockUserInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, err.Error(), common.StatusBadRequest, nil))
		return nil
	}
	result, err := h.AdminService.BlockUser(c.Context(), input.Email, false, "")
	if result != nil {
		scrubUser(result)
	}
	h.HandleResponse(c, result, err)
	return nil
}
