// Package router đăng ký các route thuộc domain vaccination:
// Brand, Vaccine (kèm tồn kho theo lô), AssignedVaccine, VaccinationRecord.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authmodels "newborn_tracking/internal/api/auth/models"
	"newborn_tracking/internal/api/middleware"
	apirouter "newborn_tracking/internal/api/router"
	vaccinationhdl "newborn_tracking/internal/api/vaccination/handler"
)

// Register đăng ký tất cả route vaccination lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	if err := registerBrandRoutes(v1, r); err != nil {
		return err
	}
	if err := registerVaccineRoutes(v1, r); err != nil {
		return err
	}
	if err := registerAssignedVaccineRoutes(v1, r); err != nil {
		return err
	}
	if err := registerRecordRoutes(v1, r); err != nil {
		return err
	}
	return nil
}

func registerBrandRoutes(router fiber.Router, r *apirouter.Router) error {
	brandHandler, err := vaccinationhdl.NewBrandHandler()
	if err != nil {
		return fmt.Errorf("failed to create brand handler: %w", err)
	}
	r.RegisterCRUDRoutes(router, "/brand", brandHandler, apirouter.ReadWriteConfig, apirouter.RouteRoles{
		Write:  []string{authmodels.RoleAdmin, authmodels.RoleStaff},
		Delete: []string{authmodels.RoleAdmin},
	})
	return nil
}

func registerVaccineRoutes(router fiber.Router, r *apirouter.Router) error {
	vaccineHandler, err := vaccinationhdl.NewVaccineHandler()
	if err != nil {
		return fmt.Errorf("failed to create vaccine handler: %w", err)
	}

	authOnlyMiddleware := middleware.AuthMiddleware()
	stockMiddleware := middleware.AuthMiddleware(authmodels.RoleAdmin, authmodels.RoleStaff)
	apirouter.RegisterRouteWithMiddleware(router, "/vaccine", "GET", "/find-detail", []fiber.Handler{authOnlyMiddleware}, vaccineHandler.HandleFindDetail)
	apirouter.RegisterRouteWithMiddleware(router, "/vaccine", "GET", "/find-detail-by-id/:id", []fiber.Handler{authOnlyMiddleware}, vaccineHandler.HandleFindDetailById)
	apirouter.RegisterRouteWithMiddleware(router, "/vaccine", "POST", "/:id/add-batch", []fiber.Handler{stockMiddleware}, vaccineHandler.HandleAddBatch)
	apirouter.RegisterRouteWithMiddleware(router, "/vaccine", "POST", "/:id/update-batch", []fiber.Handler{stockMiddleware}, vaccineHandler.HandleUpdateBatch)

	r.RegisterCRUDRoutes(router, "/vaccine", vaccineHandler, apirouter.ReadWriteConfig, apirouter.RouteRoles{
		Write:  []string{authmodels.RoleAdmin, authmodels.RoleStaff},
		Delete: []string{authmodels.RoleAdmin},
	})
	return nil
}

func registerAssignedVaccineRoutes(router fiber.Router, r *apirouter.Router) error {
	assignedHandler, err := vaccinationhdl.NewAssignedVaccineHandler()
	if err != nil {
		return fmt.Errorf("failed to create assigned vaccine handler: %w", err)
	}

	authOnlyMiddleware := middleware.AuthMiddleware()
	scheduleMiddleware := middleware.AuthMiddleware(authmodels.RoleAdmin, authmodels.RoleStaff, authmodels.RoleBHW)
	apirouter.RegisterRouteWithMiddleware(router, "/assigned-vaccine", "POST", "/assign", []fiber.Handler{scheduleMiddleware}, assignedHandler.HandleAssign)
	apirouter.RegisterRouteWithMiddleware(router, "/assigned-vaccine", "GET", "/by-newborn/:newbornId", []fiber.Handler{authOnlyMiddleware}, assignedHandler.HandleFindByNewborn)

	r.RegisterCRUDRoutes(router, "/assigned-vaccine", assignedHandler, apirouter.ReadOnlyConfig, apirouter.RouteRoles{})
	return nil
}

func registerRecordRoutes(router fiber.Router, r *apirouter.Router) error {
	recordHandler, err := vaccinationhdl.NewRecordHandler()
	if err != nil {
		return fmt.Errorf("failed to create record handler: %w", err)
	}

	authOnlyMiddleware := middleware.AuthMiddleware()
	doseMiddleware := middleware.AuthMiddleware(authmodels.RoleAdmin, authmodels.RoleStaff, authmodels.RoleBHW)
	apirouter.RegisterRouteWithMiddleware(router, "/vaccination-record", "POST", "/record-dose", []fiber.Handler{doseMiddleware}, recordHandler.HandleRecordDose)
	apirouter.RegisterRouteWithMiddleware(router, "/vaccination-record", "GET", "/by-newborn/:newbornId", []fiber.Handler{authOnlyMiddleware}, recordHandler.HandleFindByNewborn)

	r.RegisterCRUDRoutes(router, "/vaccination-record", recordHandler, apirouter.ReadOnlyConfig, apirouter.RouteRoles{})
	return nil
}
