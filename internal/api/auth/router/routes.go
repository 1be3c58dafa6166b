// Package router đăng ký các route thuộc domain auth: Admin, System, Auth, User, Init.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authhdl "newborn_tracking/internal/api/auth/handler"
	authmodels "newborn_tracking/internal/api/auth/models"
	basehdl "newborn_tracking/internal/api/base/handler"
	"newborn_tracking/internal/api/initsvc"
	"newborn_tracking/internal/api/middleware"
	apirouter "newborn_tracking/internal/api/router"
)

// Register đăng ký tất cả route auth (admin, system, auth, user CRUD, init) lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	if err := registerAdminRoutes(v1); err != nil {
		return err
	}
	if err := registerSystemRoutes(v1); err != nil {
		return err
	}
	if err := registerAuthRoutes(v1, r); err != nil {
		return err
	}
	if err := registerUserRoutes(v1, r); err != nil {
		return err
	}
	if err := registerInitRoutes(v1, r); err != nil {
		return err
	}
	return nil
}

func registerAdminRoutes(router fiber.Router) error {
	adminHandler, err := authhdl.NewAdminHandler()
	if err != nil {
		return fmt.Errorf("failed to create admin handler: %w", err)
	}
	adminOnlyMiddleware := middleware.AuthMiddleware(authmodels.RoleAdmin)
	apirouter.RegisterRouteWithMiddleware(router, "/admin/user", "POST", "/block", []fiber.Handler{adminOnlyMiddleware}, adminHandler.HandleBlockUser)
	apirouter.RegisterRouteWithMiddleware(router, "/admin/user", "POST", "/unblock", []fiber.Handler{adminOnlyMiddleware}, adminHandler.HandleUnBlockUser)
	apirouter.RegisterRouteWithMiddleware(router, "/admin/user", "POST", "/set-role", []fiber.Handler{adminOnlyMiddleware}, adminHandler.HandleSetRole)
	return nil
}

func registerSystemRoutes(router fiber.Router) error {
	systemHandler, err := basehdl.NewSystemHandler()
	if err != nil {
		return fmt.Errorf("failed to create system handler: %w", err)
	}
	router.Get("/system/health", systemHandler.HandleHealth)
	return nil
}

func registerAuthRoutes(router fiber.Router, r *apirouter.Router) error {
	userHandler, err := authhdl.NewUserHandler()
	if err != nil {
		return fmt.Errorf("failed to create user handler: %w", err)
	}
	// Các route public (không cần token)
	router.Post("/auth/register", userHandler.HandleRegister)
	router.Post("/auth/login", userHandler.HandleLogin)
	router.Post("/auth/verify-email", userHandler.HandleVerifyEmail)
	router.Post("/auth/resend-verification", userHandler.HandleResendVerification)

	// Các route cần đăng nhập
	authOnlyMiddleware := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "POST", "/logout", []fiber.Handler{authOnlyMiddleware}, userHandler.HandleLogout)
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "GET", "/profile", []fiber.Handler{authOnlyMiddleware}, userHandler.HandleGetProfile)
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "PUT", "/profile", []fiber.Handler{authOnlyMiddleware}, userHandler.HandleUpdateProfile)
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "POST", "/change-password", []fiber.Handler{authOnlyMiddleware}, userHandler.HandleChangePassword)
	return nil
}

func registerUserRoutes(router fiber.Router, r *apirouter.Router) error {
	userHandler, err := authhdl.NewUserHandler()
	if err != nil {
		return fmt.Errorf("failed to create user handler: %w", err)
	}
	// Quản lý user chỉ dành cho admin, staff được đọc danh sách
	r.RegisterCRUDRoutes(router, "/user", userHandler, apirouter.ReadWriteConfig, apirouter.RouteRoles{
		Read:   []string{authmodels.RoleAdmin, authmodels.RoleStaff},
		Write:  []string{authmodels.RoleAdmin},
		Delete: []string{authmodels.RoleAdmin},
	})
	return nil
}

func registerInitRoutes(router fiber.Router, r *apirouter.Router) error {
	initService, err := initsvc.NewInitService()
	if err == nil {
		hasAdmin, err := initService.HasAnyAdministrator()
		if err == nil && hasAdmin {
			return nil
		}
	}
	initHandler, err := authhdl.NewInitHandler()
	if err != nil {
		return fmt.Errorf("failed to create init handler: %w", err)
	}
	router.Get("/init/status", initHandler.HandleInitStatus)
	router.Post("/init/set-administrator/:id", initHandler.HandleSetAdministrator)
	return nil
}
