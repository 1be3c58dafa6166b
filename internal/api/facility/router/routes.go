// Package router đăng ký các route thuộc domain facility:
// Laboratory, Equipment, MaintenanceRequest.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authmodels "newborn_tracking/internal/api/auth/models"
	facilityhdl "newborn_tracking/internal/api/facility/handler"
	"newborn_tracking/internal/api/middleware"
	apirouter "newborn_tracking/internal/api/router"
)

// Register đăng ký tất cả route facility lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	if err := registerLaboratoryRoutes(v1, r); err != nil {
		return err
	}
	if err := registerEquipmentRoutes(v1, r); err != nil {
		return err
	}
	if err := registerMaintenanceRoutes(v1, r); err != nil {
		return err
	}
	return nil
}

func registerLaboratoryRoutes(router fiber.Router, r *apirouter.Router) error {
	labHandler, err := facilityhdl.NewLaboratoryHandler()
	if err != nil {
		return fmt.Errorf("failed to create laboratory handler: %w", err)
	}
	r.RegisterCRUDRoutes(router, "/laboratory", labHandler, apirouter.ReadWriteConfig, apirouter.RouteRoles{
		Write:  []string{authmodels.RoleAdmin, authmodels.RoleStaff},
		Delete: []string{authmodels.RoleAdmin},
	})
	return nil
}

func registerEquipmentRoutes(router fiber.Router, r *apirouter.Router) error {
	equipmentHandler, err := facilityhdl.NewEquipmentHandler()
	if err != nil {
		return fmt.Errorf("failed to create equipment handler: %w", err)
	}
	r.RegisterCRUDRoutes(router, "/equipment", equipmentHandler, apirouter.ReadWriteConfig, apirouter.RouteRoles{
		Write:  []string{authmodels.RoleAdmin, authmodels.RoleStaff},
		Delete: []string{authmodels.RoleAdmin},
	})
	return nil
}

func registerMaintenanceRoutes(router fiber.Router, r *apirouter.Router) error {
	maintenanceHandler, err := facilityhdl.NewMaintenanceHandler()
	if err != nil {
		return fmt.Errorf("failed to create maintenance handler: %w", err)
	}

	maintenanceMiddleware := middleware.AuthMiddleware(authmodels.RoleAdmin, authmodels.RoleStaff)
	apirouter.RegisterRouteWithMiddleware(router, "/maintenance-request", "POST", "/:id/mark-in-progress", []fiber.Handler{maintenanceMiddleware}, maintenanceHandler.HandleMarkInProgress)
	apirouter.RegisterRouteWithMiddleware(router, "/maintenance-request", "POST", "/:id/mark-done", []fiber.Handler{maintenanceMiddleware}, maintenanceHandler.HandleMarkDone)

	r.RegisterCRUDRoutes(router, "/maintenance-request", maintenanceHandler, apirouter.ReadWriteConfig, apirouter.RouteRoles{
		Write:  []string{authmodels.RoleAdmin, authmodels.RoleStaff},
		Delete: []string{authmodels.RoleAdmin},
	})
	return nil
}
