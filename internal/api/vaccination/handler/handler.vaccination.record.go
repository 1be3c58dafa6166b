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
	"newborn_tracking/internal/logger"
	"newborn_tracking/internal/utility"
)

// RecordHandler xử lý các request liên quan đến hồ sơ tiêm chủng
type RecordHandler struct {
	*basehdl.BaseHandler[models.VaccinationRecord, vaccinationdto.RecordDoseInput, vaccinationdto.RecordDoseInput]
	recordService *vaccinationsvc.RecordService
}

// NewRecordHandler tạo instance mới của RecordHandler
func NewRecordHandler() (*RecordHandler, error) {
	recordService, err := vaccinationsvc.NewRecordService()
	if err != nil {
		return nil, fmt.Errorf("failed to create record service: %v", err)
	}
	return &RecordHandler{
		BaseHandler:   basehdl.NewBaseHandler[models.VaccinationRecord, vaccinationdto.RecordDoseInput, vaccinationdto.RecordDoseInput](recordService),
		recordService: recordService,
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

// HandleRecordDose ghi nhận một mũi tiêm cho trẻ.
// Người thực hiện tiêm lấy từ token của user đang đăng nhập.
func (h *RecordHandler) HandleRecordDose(c fiber.Ctx) error {
	administeredBy, err := getAuthenticatedUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	var input vaccinationdto.RecordDoseInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	dateGiven, err := parseDateInput(input.DateGiven)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	nextDueDate, err := parseDateInput(input.NextDueDate)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	record, err := h.recordService.RecordDose(c.Context(), vaccinationsvc.RecordDoseParams{
		NewbornID:      utility.String2ObjectID(input.NewbornID),
		VaccineID:      utility.String2ObjectID(input.VaccineID),
		AdministeredBy: administeredBy,
		DateGiven:      dateGiven,
		Status:         input.Status,
		NextDueDate:    nextDueDate,
		Remarks:        input.Remarks,
	})
	if err == nil && record != nil {
		details := map[string]interface{}{
			"newborn_id": record.NewbornID.Hex(),
			"vaccine_id": record.VaccineID.Hex(),
		}
		if n := len(record.Doses); n > 0 {
			details["dose_number"] = record.Doses[n-1].DoseNumber
			details["batch_number"] = record.Doses[n-1].BatchNumber
		}
		logger.LogDose("record", record.ID.Hex(), c, details)
	}
	h.HandleResponse(c, record, err)
	return nil
}

// HandleFindByNewborn trả về toàn bộ hồ sơ tiêm chủng của một trẻ
func (h *RecordHandler) HandleFindByNewborn(c fiber.Ctx) error {
	newbornID, err := primitive.ObjectIDFromHex(c.Params("newbornId"))
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID trẻ không hợp lệ", common.StatusBadRequest, err))
		return nil
	}
	records, err := h.recordService.FindByNewborn(c.Context(), newbornID)
	h.HandleResponse(c, records, err)
	return nil
}
