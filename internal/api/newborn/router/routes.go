// Package router đăng ký các route thuộc domain newborn: Parent, Newborn.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authmodels "newborn_tracking/internal/api/auth/models"
	"newborn_tracking/internal/api/middleware"
	newbornhdl "newborn_tracking/internal/api/newborn/handler"
	apirouter "newborn_tracking/internal/api/router"
)

// Register đăng ký tất cả route newborn lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	if err := registerParentRoutes(v1, r); err != nil {
		return err
	}
	if err := registerNewbornRoutes(v1, r); err != nil {
		return err
	}
	return nil
}

func registerParentRoutes(router fiber.Router, r *apirouter.Router) error {
	parentHandler, err := newbornhdl.NewParentHandler()
	if err != nil {
		return fmt.Errorf("failed to create parent handler: %w", err)
	}
	r.RegisterCRUDRoutes(router, "/parent", parentHandler, apirouter.ReadWriteConfig, apirouter.RouteRoles{
		Write:  []string{authmodels.RoleAdmin, authmodels.RoleStaff, authmodels.RoleBHW},
		Delete: []string{authmodels.RoleAdmin},
	})
	return nil
}

func registerNewbornRoutes(router fiber.Router, r *apirouter.Router) error {
	newbornHandler, err := newbornhdl.NewNewbornHandler()
	if err != nil {
		return fmt.Errorf("failed to create newborn handler: %w", err)
	}

	authOnlyMiddleware := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(router, "/newborn", "GET", "/find-detail", []fiber.Handler{authOnlyMiddleware}, newbornHandler.HandleFindDetail)
	apirouter.RegisterRouteWithMiddleware(router, "/newborn", "GET", "/find-detail-by-id/:id", []fiber.Handler{authOnlyMiddleware}, newbornHandler.HandleFindDetailById)

	r.RegisterCRUDRoutes(router, "/newborn", newbornHandler, apirouter.ReadWriteConfig, apirouter.RouteRoles{
		Write:  []string{authmodels.RoleAdmin, authmodels.RoleStaff, authmodels.RoleBHW},
		Delete: []string{authmodels.RoleAdmin},
	})
	return nil
}
