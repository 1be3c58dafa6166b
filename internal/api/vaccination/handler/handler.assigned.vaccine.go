package vaccinationhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "newborn_tracking/internal/api/base/handler"
	vaccinationdto "newborn_tracking/internal/api/vaccination/dto"
	models "newborn_tracking/internal/api/vaccination/models"
	vaccinationsvc "newborn_tracking/internal/api/vaccination/service"
	"newborn_tracking/internal/common"
	"newborn_tracking/internal/utility"
)

// AssignedVaccineHandler xử lý các request liên quan đến phác đồ tiêm được gán
type AssignedVaccineHandler struct {
	*basehdl.BaseHandler[models.AssignedVaccine, vaccinationdto.AssignVaccineInput, vaccinationdto.AssignedVaccineUpdateInput]
	assignedService *vaccinationsvc.AssignedVaccineService
}

// NewAssignedVaccineHandler tạo instance mới của AssignedVaccineHandler
func NewAssignedVaccineHandler() (*AssignedVaccineHandler, error) {
	assignedService, err := vaccinationsvc.NewAssignedVaccineService()
	if err != nil {
		return nil, fmt.Errorf("failed to create assigned vaccine service: %v", err)
	}
	return &AssignedVaccineHandler{
		BaseHandler:     basehdl.NewBaseHandler[models.AssignedVaccine, vaccinationdto.AssignVaccineInput, vaccinationdto.AssignedVaccineUpdateInput](assignedService),
		assignedService: assignedService,
	}, nil
}

// HandleAssign gán thêm một vaccine cho trẻ ngoài phác đồ chuẩn
func (h *AssignedVaccineHandler) HandleAssign(c fiber.Ctx) error {
	var input vaccinationdto.AssignVaccineInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	newbornID := utility.String2ObjectID(input.NewbornID)
	vaccineID := utility.String2ObjectID(input.VaccineID)
	if newbornID.IsZero() || vaccineID.IsZero() {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "newbornId hoặc vaccineId không hợp lệ", common.StatusBadRequest, nil))
		return nil
	}

	assigned, err := h.assignedService.AssignVaccine(c.Context(), newbornID, vaccineID, input.TotalDoses)
	h.HandleResponse(c, assigned, err)
	return nil
}

// HandleFindByNewborn trả về toàn bộ phác đồ tiêm của một trẻ
func (h *AssignedVaccineHandler) HandleFindByNewborn(c fiber.Ctx) error {
	newbornID, err := primitive.ObjectIDFromHex(c.Params("newbornId"))
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID trẻ không hợp lệ", common.StatusBadRequest, err))
		return nil
	}
	assignments, err := h.assignedService.FindByNewborn(c.Context(), newbornID)
	h.HandleResponse(c, assignments, err)
	return nil
}
