// Package facilityhdl xử lý các request thuộc domain facility.
package facilityhdl

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "newborn_tracking/internal/api/base/handler"
	facilitydto "newborn_tracking/internal/api/facility/dto"
	models "newborn_tracking/internal/api/facility/models"
	facilitysvc "newborn_tracking/internal/api/facility/service"
	"newborn_tracking/internal/common"
	"newborn_tracking/internal/utility"
)

// LaboratoryHandler xử lý các request liên quan đến phòng xét nghiệm
type LaboratoryHandler struct {
	*basehdl.BaseHandler[models.Laboratory, facilitydto.LaboratoryCreateInput, facilitydto.LaboratoryUpdateInput]
}

// NewLaboratoryHandler tạo instance mới của LaboratoryHandler
func NewLaboratoryHandler() (*LaboratoryHandler, error) {
	labService, err := facilitysvc.NewLaboratoryService()
	if err != nil {
		return nil, fmt.Errorf("failed to create laboratory service: %v", err)
	}
	return &LaboratoryHandler{
		BaseHandler: basehdl.NewBaseHandler[models.Laboratory, facilitydto.LaboratoryCreateInput, facilitydto.LaboratoryUpdateInput](labService),
	}, nil
}

// EquipmentHandler xử lý các request liên quan đến thiết bị y tế
type EquipmentHandler struct {
	*basehdl.BaseHandler[models.Equipment, facilitydto.EquipmentCreateInput, facilitydto.EquipmentUpdateInput]
	equipmentService *facilitysvc.EquipmentService
}

// NewEquipmentHandler tạo instance mới của EquipmentHandler
func NewEquipmentHandler() (*EquipmentHandler, error) {
	equipmentService, err := facilitysvc.NewEquipmentService()
	if err != nil {
		return nil, fmt.Errorf("failed to create equipment service: %v", err)
	}
	return &EquipmentHandler{
		BaseHandler:      basehdl.NewBaseHandler[models.Equipment, facilitydto.EquipmentCreateInput, facilitydto.EquipmentUpdateInput](equipmentService),
		equipmentService: equipmentService,
	}, nil
}

// InsertOne tạo thiết bị mới, ghi đè InsertOne của BaseHandler
// để gán trạng thái mặc định "Available".
func (h *EquipmentHandler) InsertOne(c fiber.Ctx) error {
	var input facilitydto.EquipmentCreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	acquiredAt, err := parseDateInput(input.AcquiredAt)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	now := utility.CurrentTimeInMilli()
	equipment := models.Equipment{
		Name:         input.Name,
		SerialNumber: input.SerialNumber,
		Category:     input.Category,
		LaboratoryID: utility.String2ObjectID(input.LaboratoryID),
		Status:       models.EquipmentStatusAvailable,
		Condition:    input.Condition,
		AcquiredAt:   acquiredAt,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	inserted, err := h.equipmentService.InsertOne(c.Context(), equipment)
	h.HandleResponse(c, inserted, err)
	return nil
}

// parseDateInput chuyển chuỗi "2006-01-02" thành UnixMilli, trả về 0 khi rỗng
func parseDateInput(value string) (int64, error) {
	if value == "" {
		return 0, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return 0, common.NewError(common.ErrCodeValidationFormat, fmt.Sprintf("Ngày %s không đúng định dạng YYYY-MM-DD", value), common.StatusBadRequest, err)
	}
	return utility.UnixMilli(t), nil
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
