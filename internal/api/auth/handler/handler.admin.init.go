// Package authhdl - handler init (set admin đầu tiên, trạng thái khởi tạo).
package authhdl

import (
	"fmt"

	basehdl "newborn_tracking/internal/api/base/handler"
	"newborn_tracking/internal/api/initsvc"
	"newborn_tracking/internal/common"
	"newborn_tracking/internal/utility"

	"github.com/gofiber/fiber/v3"
)

// InitHandler xử lý các route khởi tạo hệ thống
type InitHandler struct {
	*basehdl.BaseHandler[interface{}, interface{}, interface{}]
	initService *initsvc.InitService
}

// NewInitHandler tạo một instance mới của InitHandler
func NewInitHandler() (*InitHandler, error) {
	h := &InitHandler{}
	h.BaseHandler = &basehdl.BaseHandler[interface{}, interface{}, interface{}]{}

	initService, err := initsvc.NewInitService()
	if err != nil {
		return nil, fmt.Errorf("failed to create init service: %v", err)
	}
	h.initService = initService
	return h, nil
}

// HandleSetAdministrator thiết lập administrator đầu tiên (chỉ khi chưa có admin)
func (h *InitHandler) HandleSetAdministrator(c fiber.Ctx) error {
	hasAdmin, err := h.initService.HasAnyAdministrator()
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeInternalServer, "Không thể kiểm tra trạng thái admin", common.StatusInternalServerError, err))
		return nil
	}
	if hasAdmin {
		h.HandleResponse(c, nil, common.NewError(
			common.ErrCodeBusinessState,
			"Hệ thống đã có admin. Vui lòng dùng API /admin/user/set-role với tài khoản admin.",
			common.StatusForbidden, nil))
		return nil
	}
	id := h.GetIDFromContext(c)
	if id == "" {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, nil))
		return nil
	}
	result, err := h.initService.SetAdministrator(utility.String2ObjectID(id))
	h.HandleResponse(c, result, err)
	return nil
}

// HandleInitStatus kiểm tra trạng thái khởi tạo hệ thống
func (h *InitHandler) HandleInitStatus(c fiber.Ctx) error {
	status, err := h.initService.GetInitStatus()
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, status, nil)
	return nil
}
