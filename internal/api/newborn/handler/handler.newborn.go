// Package newbornhdl xử lý các request thuộc domain newborn.
package newbornhdl

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "newborn_tracking/internal/api/base/handler"
	newborndto "newborn_tracking/internal/api/newborn/dto"
	models "newborn_tracking/internal/api/newborn/models"
	newbornsvc "newborn_tracking/internal/api/newborn/service"
	vaccinationsvc "newborn_tracking/internal/api/vaccination/service"
	"newborn_tracking/internal/common"
	"newborn_tracking/internal/utility"
)

// NewbornHandler xử lý các request liên quan đến hồ sơ trẻ sơ sinh
type NewbornHandler struct {
	*basehdl.BaseHandler[models.Newborn, newborndto.NewbornCreateInput, newborndto.NewbornUpdateInput]
	newbornService  *newbornsvc.NewbornService
	assignedService *vaccinationsvc.AssignedVaccineService
	checkService    *vaccinationsvc.CheckService
}

// NewNewbornHandler tạo instance mới của NewbornHandler
func NewNewbornHandler() (*NewbornHandler, error) {
	newbornService, err := newbornsvc.NewNewbornService()
	if err != nil {
		return nil, fmt.Errorf("failed to create newborn service: %v", err)
	}
	assignedService, err := vaccinationsvc.NewAssignedVaccineService()
	if err != nil {
		return nil, fmt.Errorf("failed to create assigned vaccine service: %v", err)
	}
	checkService, err := vaccinationsvc.NewCheckService()
	if err != nil {
		return nil, fmt.Errorf("failed to create check service: %v", err)
	}
	return &NewbornHandler{
		BaseHandler:     basehdl.NewBaseHandler[models.Newborn, newborndto.NewbornCreateInput, newborndto.NewbornUpdateInput](newbornService),
		newbornService:  newbornService,
		assignedService: assignedService,
		checkService:    checkService,
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

// InsertOne tạo hồ sơ trẻ mới, ghi đè InsertOne của BaseHandler.
// Sau khi tạo: gán phác đồ tiêm chuẩn cho trẻ và chạy kiểm tra cảnh báo
// chưa tiêm chủng. Hai bước sau chạy nền, lỗi không chặn response.
func (h *NewbornHandler) InsertOne(c fiber.Ctx) error {
	createdBy, err := getAuthenticatedUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	var input newborndto.NewbornCreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	birthDate, err := time.Parse("2006-01-02", input.BirthDate)
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "Ngày sinh không đúng định dạng YYYY-MM-DD", common.StatusBadRequest, err))
		return nil
	}
	motherID := utility.String2ObjectID(input.MotherID)
	if motherID.IsZero() {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "motherId không hợp lệ", common.StatusBadRequest, nil))
		return nil
	}

	now := utility.CurrentTimeInMilli()
	newborn := models.Newborn{
		Name:             input.Name,
		Gender:           input.Gender,
		BirthDate:        utility.UnixMilli(birthDate),
		BirthWeightGrams: input.BirthWeightGrams,
		BirthHeightCm:    input.BirthHeightCm,
		MotherID:         motherID,
		Zone:             input.Zone,
		PlaceOfBirth:     input.PlaceOfBirth,
		CreatedBy:        createdBy,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	// BHW chỉ tạo được hồ sơ trong khu vực phụ trách
	h.SetZoneFromContext(c, &newborn)

	// Zone còn trống thì kế thừa từ hồ sơ của mẹ
	if err := h.newbornService.ResolveZone(c.Context(), &newborn); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	inserted, err := h.newbornService.InsertOne(c.Context(), newborn)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	utility.GoProtect(func() {
		ctx := context.Background()
		if _, err := h.assignedService.AssignDefaultSchedule(ctx, inserted.ID); err != nil {
			logrus.WithField("newbornId", inserted.ID.Hex()).WithError(err).Warn("⚠️ Newborn: Không thể gán phác đồ tiêm chuẩn")
			return
		}
		if err := h.checkService.CheckNonVaccination(ctx, inserted.ID); err != nil {
			logrus.WithField("newbornId", inserted.ID.Hex()).WithError(err).Warn("⚠️ Newborn: Kiểm tra cảnh báo chưa tiêm thất bại")
		}
	})

	h.HandleResponse(c, inserted, nil)
	return nil
}

// HandleFindDetail trả về danh sách hồ sơ trẻ kèm thông tin mẹ
func (h *NewbornHandler) HandleFindDetail(c fiber.Ctx) error {
	filter, err := h.ProcessFilter(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	results, err := h.newbornService.FindDetail(c.Context(), h.ApplyZoneScope(c, filter))
	h.HandleResponse(c, results, err)
	return nil
}

// HandleFindDetailById trả về một hồ sơ trẻ kèm thông tin mẹ theo ID
func (h *NewbornHandler) HandleFindDetailById(c fiber.Ctx) error {
	if err := h.ValidateZoneAccess(c, c.Params("id")); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	newbornID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID trẻ không hợp lệ", common.StatusBadRequest, err))
		return nil
	}
	result, err := h.newbornService.FindDetailById(c.Context(), newbornID)
	h.HandleResponse(c, result, err)
	return nil
}
