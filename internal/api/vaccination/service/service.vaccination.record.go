package vaccinationsvc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authsvc "newborn_tracking/internal/api/auth/service"
	basesvc "newborn_tracking/internal/api/base/service"
	models "newborn_tracking/internal/api/vaccination/models"
	"newborn_tracking/internal/common"
	"newborn_tracking/internal/global"
	"newborn_tracking/internal/utility"
)

// Số lần thử lại khi lô FEFO bị tiêu hết bởi request song song
const fefoRetryAttempts = 3

// RecordDoseParams chứa thông tin một mũi tiêm cần ghi nhận.
// DateGiven là thời điểm tiêm do người nhập cung cấp (UnixMilli),
// cho phép nhập hồi cứu các mũi đã tiêm trong quá khứ.
type RecordDoseParams struct {
	NewbornID      primitive.ObjectID
	VaccineID      primitive.ObjectID
	AdministeredBy primitive.ObjectID
	DateGiven      int64
	Status         string
	NextDueDate    int64
	Remarks        string
}

// RecordService là cấu trúc chứa các phương thức liên quan đến hồ sơ tiêm chủng
type RecordService struct {
	*basesvc.BaseServiceMongoImpl[models.VaccinationRecord]
	vaccineService  *VaccineService
	assignedService *AssignedVaccineService
	auditService    *authsvc.AuditLogService
	checkService    *CheckService
}

// NewRecordService tạo mới RecordService
func NewRecordService() (*RecordService, error) {
	recordCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.VaccinationRecords)
	if !exist {
		return nil, fmt.Errorf("failed to get vaccination_records collection: %v", common.ErrNotFound)
	}

	vaccineService, err := NewVaccineService()
	if err != nil {
		return nil, err
	}
	assignedService, err := NewAssignedVaccineService()
	if err != nil {
		return nil, err
	}
	auditService, err := authsvc.NewAuditLogService()
	if err != nil {
		return nil, err
	}
	checkService, err := NewCheckService()
	if err != nil {
		return nil, err
	}

	return &RecordService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.VaccinationRecord](recordCollection),
		vaccineService:       vaccineService,
		assignedService:      assignedService,
		auditService:         auditService,
		checkService:         checkService,
	}, nil
}

// FindByNewborn trả về toàn bộ hồ sơ tiêm chủng của một trẻ
func (s *RecordService) FindByNewborn(ctx context.Context, newbornID primitive.ObjectID) ([]models.VaccinationRecord, error) {
	return s.Find(ctx, bson.M{"newbornId": newbornID}, nil)
}

// ==========================================
// GHI NHẬN MŨI TIÊM
// ==========================================

// RecordDose ghi nhận một mũi tiêm cho trẻ theo quy trình:
//  1. Trẻ phải được gán phác đồ cho vaccine và chưa tiêm đủ số mũi
//  2. Chặn ghi trùng trong cửa sổ DoseDuplicateWindowMs (mặc định 24h)
//  3. Chọn lô theo FEFO và trừ kho nguyên tử, thử lại khi lô vừa cạn
//  4. Append mũi tiêm với doseNumber liên tục, có guard chống ghi song song;
//     thất bại ở bước này sẽ hoàn trả tồn kho đã trừ
//  5. Ghi audit log và kiểm tra hoàn thành lịch tiêm
func (s *RecordService) RecordDose(ctx context.Context, params RecordDoseParams) (*models.VaccinationRecord, error) {
	if err := validateRecordDoseParams(params); err != nil {
		return nil, err
	}

	// Phác đồ phải tồn tại cho cặp (trẻ, vaccine)
	assigned, err := s.assignedService.FindOne(ctx, bson.M{
		"newbornId": params.NewbornID,
		"vaccineId": params.VaccineID,
	}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NewError(common.ErrCodeBusinessState, "Trẻ chưa được gán phác đồ cho vaccine này", common.StatusBadRequest, err)
		}
		return nil, err
	}

	// Hồ sơ tiêm hiện tại (có thể chưa tồn tại nếu đây là mũi đầu)
	record, err := s.FindOne(ctx, bson.M{
		"newbornId": params.NewbornID,
		"vaccineId": params.VaccineID,
	}, nil)
	recordExists := true
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			return nil, err
		}
		recordExists = false
	}

	doseCount := 0
	if recordExists {
		doseCount = len(record.Doses)

		// Chặn ghi trùng: ngày tiêm mới nằm trong cửa sổ chặn tính từ mũi gần nhất
		if doseCount > 0 {
			lastDose := record.Doses[doseCount-1]
			window := global.MongoDB_ServerConfig.DoseDuplicateWindowMs
			if window > 0 && params.DateGiven-lastDose.DateGiven < window {
				return nil, common.NewError(common.ErrCodeBusinessOperation,
					fmt.Sprintf("Mũi %d của vaccine này vừa được ghi nhận, không thể ghi thêm mũi mới trong vòng 24 giờ", lastDose.DoseNumber),
					common.StatusBadRequest, nil)
			}
		}
	}

	if doseCount >= assigned.TotalDoses {
		return nil, common.NewError(common.ErrCodeBusinessState,
			fmt.Sprintf("Trẻ đã tiêm đủ %d mũi của vaccine này", assigned.TotalDoses),
			common.StatusBadRequest, nil)
	}

	// Chọn lô FEFO và trừ kho nguyên tử. Lô có thể vừa bị request khác
	// tiêu hết giữa lúc chọn và lúc trừ, khi đó chọn lại lô khác.
	batch, err := s.consumeFEFOBatch(ctx, params.VaccineID)
	if err != nil {
		return nil, err
	}

	dose := newDose(params, batch, doseCount)

	updated, err := s.appendDose(ctx, record, recordExists, params, dose, doseCount)
	if err != nil {
		// Hoàn trả liều đã trừ kho
		if restoreErr := s.vaccineService.RestoreBatchStock(ctx, params.VaccineID, batch.BatchNumber); restoreErr != nil {
			logrus.WithFields(logrus.Fields{
				"vaccineId":   params.VaccineID.Hex(),
				"batchNumber": batch.BatchNumber,
			}).Error("❌ RecordDose: Hoàn trả tồn kho thất bại sau khi ghi mũi tiêm lỗi")
		}
		return nil, err
	}

	// Đánh dấu phác đồ hoàn thành khi đã đủ số mũi
	if len(updated.Doses) >= assigned.TotalDoses && !assigned.Completed {
		if _, err := s.assignedService.UpdateById(ctx, assigned.ID, bson.M{
			"$set": bson.M{"completed": true},
		}); err != nil {
			logrus.WithField("assignedId", assigned.ID.Hex()).WithError(err).Warn("⚠️ RecordDose: Không thể đánh dấu phác đồ hoàn thành")
		}
	}

	s.writeAudit(ctx, params, dose)

	// Kiểm tra hoàn thành toàn bộ lịch tiêm, lỗi không chặn response
	utility.GoProtect(func() {
		if err := s.checkService.CheckCompletion(context.Background(), params.NewbornID); err != nil {
			logrus.WithField("newbornId", params.NewbornID.Hex()).WithError(err).Warn("⚠️ RecordDose: Kiểm tra hoàn thành lịch tiêm thất bại")
		}
	})

	logrus.WithFields(logrus.Fields{
		"newbornId":   params.NewbornID.Hex(),
		"vaccineId":   params.VaccineID.Hex(),
		"doseNumber":  dose.DoseNumber,
		"batchNumber": dose.BatchNumber,
	}).Info("✅ RecordDose: Đã ghi nhận mũi tiêm")
	return updated, nil
}

// newDose dựng mũi tiêm kế tiếp: doseNumber nối tiếp số mũi hiện có,
// ngày tiêm và trạng thái lấy từ người nhập, vết lô lấy từ lô FEFO đã trừ kho.
func newDose(params RecordDoseParams, batch *models.Batch, doseCount int) models.Dose {
	return models.Dose{
		DoseNumber:         doseCount + 1,
		DateGiven:          params.DateGiven,
		NextDueDate:        params.NextDueDate,
		Remarks:            params.Remarks,
		AdministeredBy:     params.AdministeredBy,
		Status:             params.Status,
		ExpirationDateUsed: batch.ExpirationDate,
		BatchNumber:        batch.BatchNumber,
	}
}

// validateRecordDoseParams kiểm tra các trường bắt buộc, trả về danh sách trường thiếu
func validateRecordDoseParams(params RecordDoseParams) error {
	var missing []string
	if params.NewbornID.IsZero() {
		missing = append(missing, "newbornId")
	}
	if params.VaccineID.IsZero() {
		missing = append(missing, "vaccineId")
	}
	if params.AdministeredBy.IsZero() {
		missing = append(missing, "administeredBy")
	}
	if params.DateGiven == 0 {
		missing = append(missing, "dateGiven")
	}
	if params.Status == "" {
		missing = append(missing, "status")
	}
	if len(missing) > 0 {
		return common.NewError(common.ErrCodeValidationInput, "Thiếu thông tin bắt buộc", common.StatusBadRequest, map[string]interface{}{"missingFields": missing})
	}
	switch params.Status {
	case models.DoseStatusCompleted, models.DoseStatusScheduled, models.DoseStatusMissed:
	default:
		return common.NewError(common.ErrCodeValidationInput,
			fmt.Sprintf("Trạng thái mũi tiêm %q không hợp lệ", params.Status),
			common.StatusBadRequest, nil)
	}
	return nil
}

// consumeFEFOBatch chọn lô hết hạn sớm nhất còn tồn kho và trừ kho nguyên tử.
// Lặp lại khi trừ kho thất bại do lô vừa cạn, tối đa fefoRetryAttempts lần.
func (s *RecordService) consumeFEFOBatch(ctx context.Context, vaccineID primitive.ObjectID) (*models.Batch, error) {
	for attempt := 0; attempt < fefoRetryAttempts; attempt++ {
		vaccine, err := s.vaccineService.FindOneById(ctx, vaccineID)
		if err != nil {
			return nil, err
		}

		_, batch := SelectFEFOBatch(vaccine.Batches)
		if batch == nil {
			return nil, common.NewError(common.ErrCodeBusinessStock, "Không còn lô vaccine nào có tồn kho", common.StatusBadRequest, nil)
		}

		err = s.vaccineService.DecrementBatchStock(ctx, vaccineID, batch.BatchNumber)
		if err == nil {
			return batch, nil
		}

		var cErr *common.Error
		if errors.As(err, &cErr) && cErr.Code == common.ErrCodeBusinessStock {
			// Lô vừa bị request song song tiêu hết, chọn lại
			continue
		}
		return nil, err
	}
	return nil, common.NewError(common.ErrCodeBusinessStock, "Không còn lô vaccine nào có tồn kho", common.StatusBadRequest, nil)
}

// appendDose ghi mũi tiêm vào hồ sơ. Mũi đầu tiên tạo document mới (unique index
// trên (newbornId, vaccineId) chặn tạo trùng); các mũi sau append có guard
// $size trên mảng doses để hai request song song không tạo doseNumber trùng.
func (s *RecordService) appendDose(ctx context.Context, record models.VaccinationRecord, recordExists bool, params RecordDoseParams, dose models.Dose, expectedCount int) (*models.VaccinationRecord, error) {
	now := utility.CurrentTimeInMilli()

	if !recordExists {
		inserted, err := s.InsertOne(ctx, models.VaccinationRecord{
			NewbornID: params.NewbornID,
			VaccineID: params.VaccineID,
			Doses:     []models.Dose{dose},
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			if errors.Is(err, common.ErrMongoDuplicate) {
				return nil, common.NewError(common.ErrCodeBusinessOperation, "Mũi tiêm đang được ghi nhận bởi một request khác, vui lòng thử lại", common.StatusConflict, err)
			}
			return nil, err
		}
		return &inserted, nil
	}

	updated, err := s.UpdateOne(ctx, bson.M{
		"_id":   record.ID,
		"doses": bson.M{"$size": expectedCount},
	}, &basesvc.UpdateData{
		Push: map[string]interface{}{"doses": dose},
	}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NewError(common.ErrCodeBusinessOperation, "Mũi tiêm đang được ghi nhận bởi một request khác, vui lòng thử lại", common.StatusConflict, err)
		}
		return nil, err
	}
	return &updated, nil
}

// writeAudit lưu vết mũi tiêm vào audit_logs
func (s *RecordService) writeAudit(ctx context.Context, params RecordDoseParams, dose models.Dose) {
	newData, err := json.Marshal(dose)
	if err != nil {
		newData = []byte("{}")
	}
	s.auditService.LogAction(ctx, params.AdministeredBy,
		global.MongoDB_ColNames.VaccinationRecords,
		"record_dose",
		fmt.Sprintf("Ghi nhận mũi %d cho trẻ %s (vaccine %s, lô %s)", dose.DoseNumber, params.NewbornID.Hex(), params.VaccineID.Hex(), dose.BatchNumber),
		"", string(newData))
}
