package vaccinationhdl

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "newborn_tracking/internal/api/base/handler"
	vaccinationdto "newborn_tracking/internal/api/vaccination/dto"
	models "newborn_tracking/internal/api/vaccination/models"
	vaccinationsvc "newborn_tracking/internal/api/vaccination/service"
	"newborn_tracking/internal/common"
	"newborn_tracking/internal/utility"
)

// VaccineHandler xử lý các request liên quan đến vaccine và tồn kho theo lô
type VaccineHandler struct {
	*basehdl.BaseHandler[models.Vaccine, vaccinationdto.VaccineCreateInput, vaccinationdto.VaccineUpdateInput]
	vaccineService *vaccinationsvc.VaccineService
}

// NewVaccineHandler tạo instance mới của VaccineHandler
func NewVaccineHandler() (*VaccineHandler, error) {
	vaccineService, err := vaccinationsvc.NewVaccineService()
	if err != nil {
		return nil, fmt.Errorf("failed to create vaccine service: %v", err)
	}
	return &VaccineHandler{
		BaseHandler:    basehdl.NewBaseHandler[models.Vaccine, vaccinationdto.VaccineCreateInput, vaccinationdto.VaccineUpdateInput](vaccineService),
		vaccineService: vaccineService,
	}, nil
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

// getVaccineIDFromParams lấy ObjectID của vaccine từ path param
func getVaccineIDFromParams(c fiber.Ctx) (primitive.ObjectID, error) {
	vaccineID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return primitive.NilObjectID, common.NewError(common.ErrCodeValidationFormat, "ID vaccine không hợp lệ", common.StatusBadRequest, err)
	}
	return vaccineID, nil
}

// HandleAddBatch thêm một lô tồn kho mới vào vaccine
func (h *VaccineHandler) HandleAddBatch(c fiber.Ctx) error {
	vaccineID, err := getVaccineIDFromParams(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input vaccinationdto.BatchAddInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	expirationDate, err := parseDateInput(input.ExpirationDate)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	vaccine, err := h.vaccineService.AddBatch(c.Context(), vaccineID, models.Batch{
		BatchNumber:    input.BatchNumber,
		Stock:          input.Stock,
		ExpirationDate: expirationDate,
	})
	h.HandleResponse(c, vaccine, err)
	return nil
}

// HandleUpdateBatch cập nhật tồn kho hoặc hạn dùng của một lô theo số lô
func (h *VaccineHandler) HandleUpdateBatch(c fiber.Ctx) error {
	vaccineID, err := getVaccineIDFromParams(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input vaccinationdto.BatchUpdateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	expirationDate, err := parseDateInput(input.ExpirationDate)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	vaccine, err := h.vaccineService.UpdateBatch(c.Context(), vaccineID, input.BatchNumber, input.Stock, expirationDate)
	h.HandleResponse(c, vaccine, err)
	return nil
}

// HandleFindDetail trả về danh sách vaccine kèm thông tin nhãn hiệu
func (h *VaccineHandler) HandleFindDetail(c fiber.Ctx) error {
	filter, err := h.ProcessFilter(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	results, err := h.vaccineService.FindDetail(c.Context(), filter)
	h.HandleResponse(c, results, err)
	return nil
}

// HandleFindDetailById trả về một vaccine kèm nhãn hiệu theo ID
func (h *VaccineHandler) HandleFindDetailById(c fiber.Ctx) error {
	vaccineID, err := getVaccineIDFromParams(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	result, err := h.vaccineService.FindDetailById(c.Context(), vaccineID)
	h.HandleResponse(c, result, err)
	return nil
}
