// Package router đăng ký các route xuất báo cáo PDF.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authmodels "newborn_tracking/internal/api/auth/models"
	"newborn_tracking/internal/api/middleware"
	reporthdl "newborn_tracking/internal/api/report/handler"
	apirouter "newborn_tracking/internal/api/router"
)

// Register đăng ký các route báo cáo lên v1.
// Sổ tiêm chủng mở cho mọi user đã đăng nhập, các báo cáo vận hành
// (tồn kho, bảo trì) chỉ dành cho admin và staff.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	reportHandler, err := reporthdl.NewReportHandler()
	if err != nil {
		return fmt.Errorf("failed to create report handler: %w", err)
	}

	authOnlyMiddleware := middleware.AuthMiddleware()
	operationalMiddleware := middleware.AuthMiddleware(authmodels.RoleAdmin, authmodels.RoleStaff)
	apirouter.RegisterRouteWithMiddleware(v1, "/report", "GET", "/vaccination-card/:newbornId", []fiber.Handler{authOnlyMiddleware}, reportHandler.HandleVaccinationCard)
	apirouter.RegisterRouteWithMiddleware(v1, "/report", "GET", "/vaccine-stock", []fiber.Handler{operationalMiddleware}, reportHandler.HandleVaccineStock)
	apirouter.RegisterRouteWithMiddleware(v1, "/report", "GET", "/maintenance-summary", []fiber.Handler{operationalMiddleware}, reportHandler.HandleMaintenanceSummary)
	return nil
}
