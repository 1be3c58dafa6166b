package facilityhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "newborn_tracking/internal/api/base/handler"
	facilitydto "newborn_tracking/internal/api/facility/dto"
	models "newborn_tracking/internal/api/facility/models"
	facilitysvc "newborn_tracking/internal/api/facility/service"
	"newborn_tracking/internal/common"
	"newborn_tracking/internal/logger"
	"newborn_tracking/internal/utility"
)

// MaintenanceHandler xử lý các request liên quan đến yêu cầu bảo trì
type MaintenanceHandler struct {
	*basehdl.BaseHandler[models.MaintenanceRequest, facilitydto.MaintenanceRequestCreateInput, facilitydto.MaintenanceRequestUpdateInput]
	maintenanceService *facilitysvc.MaintenanceService
}

// NewMaintenanceHandler tạo instance mới của MaintenanceHandler
func NewMaintenanceHandler() (*MaintenanceHandler, error) {
	maintenanceService, err := facilitysvc.NewMaintenanceService()
	if err != nil {
		return nil, fmt.Errorf("failed to create maintenance service: %v", err)
	}
	return &MaintenanceHandler{
		BaseHandler:        basehdl.NewBaseHandler[models.MaintenanceRequest, facilitydto.MaintenanceRequestCreateInput, facilitydto.MaintenanceRequestUpdateInput](maintenanceService),
		maintenanceService: maintenanceService,
	}, nil
}

// InsertOne tạo yêu cầu bảo trì, ghi đè InsertOne của BaseHandler
// để chạy nghiệp vụ chuyển trạng thái thiết bị và thông báo admin.
func (h *MaintenanceHandler) InsertOne(c fiber.Ctx) error {
	requestedBy, err := getAuthenticatedUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	var input facilitydto.MaintenanceRequestCreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	equipmentID := utility.String2ObjectID(input.EquipmentID)
	if equipmentID.IsZero() {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "equipmentId không hợp lệ", common.StatusBadRequest, nil))
		return nil
	}
	scheduledAt, err := parseDateInput(input.ScheduledAt)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	request, err := h.maintenanceService.CreateRequest(c.Context(), equipmentID, requestedBy, input.Description, scheduledAt)
	h.HandleResponse(c, request, err)
	return nil
}

// getMaintenanceIDFromParams lấy ObjectID của yêu cầu bảo trì từ path param
func getMaintenanceIDFromParams(c fiber.Ctx) (primitive.ObjectID, error) {
	requestID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return primitive.NilObjectID, common.NewError(common.ErrCodeValidationFormat, "ID yêu cầu bảo trì không hợp lệ", common.StatusBadRequest, err)
	}
	return requestID, nil
}

// HandleMarkInProgress chuyển yêu cầu bảo trì sang trạng thái đang xử lý
func (h *MaintenanceHandler) HandleMarkInProgress(c fiber.Ctx) error {
	requestID, err := getMaintenanceIDFromParams(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	request, err := h.maintenanceService.MarkInProgress(c.Context(), requestID)
	if err == nil {
		logger.LogCRUD("update", "maintenance_request", requestID.Hex(), c, map[string]interface{}{"status": models.MaintenanceStatusInProgress})
	}
	h.HandleResponse(c, request, err)
	return nil
}

// HandleMarkDone hoàn thành yêu cầu bảo trì và trả thiết bị về "Available"
func (h *MaintenanceHandler) HandleMarkDone(c fiber.Ctx) error {
	requestID, err := getMaintenanceIDFromParams(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	request, err := h.maintenanceService.MarkDone(c.Context(), requestID)
	if err == nil {
		logger.LogCRUD("update", "maintenance_request", requestID.Hex(), c, map[string]interface{}{"status": models.MaintenanceStatusDone})
	}
	h.HandleResponse(c, request, err)
	return nil
}
