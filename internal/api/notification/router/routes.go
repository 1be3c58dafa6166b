// Package router đăng ký các route thuộc domain notification.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authmodels "newborn_tracking/internal/api/auth/models"
	"newborn_tracking/internal/api/middleware"
	notifhdl "newborn_tracking/internal/api/notification/handler"
	apirouter "newborn_tracking/internal/api/router"
)

// Register đăng ký các route thông báo lên v1.
// Mọi user đã đăng nhập đọc được thông báo của chính mình,
// quản trị CRUD trên toàn bộ collection chỉ dành cho admin.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	notificationHandler, err := notifhdl.NewNotificationHandler()
	if err != nil {
		return fmt.Errorf("failed to create notification handler: %w", err)
	}

	authOnlyMiddleware := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(v1, "/notification", "GET", "/me", []fiber.Handler{authOnlyMiddleware}, notificationHandler.HandleListMine)
	apirouter.RegisterRouteWithMiddleware(v1, "/notification", "GET", "/me/unread-count", []fiber.Handler{authOnlyMiddleware}, notificationHandler.HandleCountUnread)
	apirouter.RegisterRouteWithMiddleware(v1, "/notification", "POST", "/me/mark-all-read", []fiber.Handler{authOnlyMiddleware}, notificationHandler.HandleMarkAllRead)
	apirouter.RegisterRouteWithMiddleware(v1, "/notification", "POST", "/:id/mark-read", []fiber.Handler{authOnlyMiddleware}, notificationHandler.HandleMarkRead)

	r.RegisterCRUDRoutes(v1, "/notification", notificationHandler, apirouter.ReadOnlyConfig, apirouter.RouteRoles{
		Read: []string{authmodels.RoleAdmin, authmodels.RoleStaff},
	})
	return nil
}
