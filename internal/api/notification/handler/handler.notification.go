package notifhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "newborn_tracking/internal/api/base/handler"
	models "newborn_tracking/internal/api/notification/models"
	notifsvc "newborn_tracking/internal/api/notification/service"
	"newborn_tracking/internal/common"
)

// NotificationHandler xử lý các request liên quan đến thông báo
type NotificationHandler struct {
	*basehdl.BaseHandler[models.Notification, interface{}, interface{}]
	notificationService *notifsvc.NotificationService
}

// NewNotificationHandler tạo instance mới của NotificationHandler
func NewNotificationHandler() (*NotificationHandler, error) {
	notificationService, err := notifsvc.NewNotificationService()
	if err != nil {
		return nil, fmt.Errorf("failed to create notification service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Notification, interface{}, interface{}](notificationService)
	return &NotificationHandler{
		BaseHandler:         baseHandler,
		notificationService: notificationService,
	}, nil
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

// HandleListMine trả về danh sách thông báo của user hiện tại, mới nhất trước
func (h *NotificationHandler) HandleListMine(c fiber.Ctx) error {
	userID, err := getAuthenticatedUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	page, limit := h.ParsePagination(c)
	result, err := h.notificationService.FindForUser(c.Context(), userID, page, limit)
	h.HandleResponse(c, result, err)
	return nil
}

// HandleCountUnread trả về số thông báo chưa đọc của user hiện tại
func (h *NotificationHandler) HandleCountUnread(c fiber.Ctx) error {
	userID, err := getAuthenticatedUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	count, err := h.notificationService.CountUnread(c.Context(), userID)
	h.HandleResponse(c, fiber.Map{"unread": count}, err)
	return nil
}

// HandleMarkRead đánh dấu một thông báo là đã đọc đối với user hiện tại
func (h *NotificationHandler) HandleMarkRead(c fiber.Ctx) error {
	userID, err := getAuthenticatedUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	notificationID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID thông báo không hợp lệ", common.StatusBadRequest, err))
		return nil
	}
	notif, err := h.notificationService.MarkRead(c.Context(), notificationID, userID)
	h.HandleResponse(c, notif, err)
	return nil
}

// HandleMarkAllRead đánh dấu toàn bộ thông báo của user hiện tại là đã đọc
func (h *NotificationHandler) HandleMarkAllRead(c fiber.Ctx) error {
	userID, err := getAuthenticatedUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	modified, err := h.notificationService.MarkAllRead(c.Context(), userID)
	h.HandleResponse(c, fiber.Map{"modified": modified}, err)
	return nil
}
