package facilitysvc

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "newborn_tracking/internal/api/base/service"
	models "newborn_tracking/internal/api/facility/models"
	notifsvc "newborn_tracking/internal/api/notification/service"
	"newborn_tracking/internal/common"
	"newborn_tracking/internal/global"
	"newborn_tracking/internal/notification"
	"newborn_tracking/internal/utility"
)

// MaintenanceService là cấu trúc chứa các phương thức liên quan đến yêu cầu bảo trì thiết bị
type MaintenanceService struct {
	*basesvc.BaseServiceMongoImpl[models.MaintenanceRequest]
	equipmentService    *EquipmentService
	notificationService *notifsvc.NotificationService
}

// NewMaintenanceService tạo mới MaintenanceService
func NewMaintenanceService() (*MaintenanceService, error) {
	maintenanceCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.MaintenanceRequests)
	if !exist {
		return nil, fmt.Errorf("failed to get maintenance_requests collection: %v", common.ErrNotFound)
	}

	equipmentService, err := NewEquipmentService()
	if err != nil {
		return nil, err
	}
	notificationService, err := notifsvc.NewNotificationService()
	if err != nil {
		return nil, err
	}

	return &MaintenanceService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.MaintenanceRequest](maintenanceCollection),
		equipmentService:     equipmentService,
		notificationService:  notificationService,
	}, nil
}

// CreateRequest tạo yêu cầu bảo trì cho một thiết bị.
// Thiết bị được chuyển sang "Not Available" ngay khi yêu cầu được tạo
// và admin nhận thông báo maintenance_request.
func (s *MaintenanceService) CreateRequest(ctx context.Context, equipmentID, requestedBy primitive.ObjectID, description string, scheduledAt int64) (*models.MaintenanceRequest, error) {
	equipment, err := s.equipmentService.FindOneById(ctx, equipmentID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NewError(common.ErrCodeBusinessState, "Thiết bị không tồn tại", common.StatusBadRequest, err)
		}
		return nil, err
	}

	// Một thiết bị chỉ có một yêu cầu bảo trì đang mở
	openCount, err := s.CountDocuments(ctx, bson.M{
		"equipmentId": equipmentID,
		"status":      bson.M{"$ne": models.MaintenanceStatusDone},
	})
	if err != nil {
		return nil, err
	}
	if openCount > 0 {
		return nil, common.NewError(common.ErrCodeBusinessState, "Thiết bị đã có yêu cầu bảo trì đang mở", common.StatusConflict, nil)
	}

	now := utility.CurrentTimeInMilli()
	request := models.MaintenanceRequest{
		EquipmentID:  equipmentID,
		LaboratoryID: equipment.LaboratoryID,
		RequestedBy:  requestedBy,
		Description:  description,
		Status:       models.MaintenanceStatusPending,
		ScheduledAt:  scheduledAt,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	inserted, err := s.InsertOne(ctx, request)
	if err != nil {
		return nil, err
	}

	if _, err := s.equipmentService.SetStatus(ctx, equipmentID, models.EquipmentStatusNotAvailable); err != nil {
		logrus.WithField("equipmentId", equipmentID.Hex()).WithError(err).Warn("⚠️ Maintenance: Không thể chuyển thiết bị sang Not Available")
	}

	// Thông báo cho admin, lỗi không chặn việc tạo yêu cầu
	utility.GoProtect(func() {
		message := fmt.Sprintf("Thiết bị %s (số serial %s) có yêu cầu bảo trì mới: %s", equipment.Name, equipment.SerialNumber, description)
		if _, err := s.notificationService.CreateMaintenanceNotification(context.Background(),
			notification.TypeMaintenanceRequest, notification.SeverityMedium, message); err != nil {
			logrus.WithField("equipmentId", equipmentID.Hex()).WithError(err).Warn("⚠️ Maintenance: Không thể tạo thông báo yêu cầu bảo trì")
		}
	})

	logrus.WithFields(logrus.Fields{
		"equipmentId": equipmentID.Hex(),
		"requestId":   inserted.ID.Hex(),
	}).Info("✅ Maintenance: Đã tạo yêu cầu bảo trì")
	return &inserted, nil
}

// MarkInProgress chuyển yêu cầu bảo trì sang trạng thái đang xử lý
func (s *MaintenanceService) MarkInProgress(ctx context.Context, requestID primitive.ObjectID) (*models.MaintenanceRequest, error) {
	updated, err := s.UpdateOne(ctx,
		bson.M{"_id": requestID, "status": models.MaintenanceStatusPending},
		bson.M{"$set": bson.M{"status": models.MaintenanceStatusInProgress}}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NewError(common.ErrCodeBusinessState, "Yêu cầu bảo trì không tồn tại hoặc không ở trạng thái pending", common.StatusBadRequest, err)
		}
		return nil, err
	}
	return &updated, nil
}

// MarkDone hoàn thành yêu cầu bảo trì: ghi resolvedAt và trả thiết bị về "Available"
func (s *MaintenanceService) MarkDone(ctx context.Context, requestID primitive.ObjectID) (*models.MaintenanceRequest, error) {
	updated, err := s.UpdateOne(ctx,
		bson.M{"_id": requestID, "status": bson.M{"$ne": models.MaintenanceStatusDone}},
		bson.M{"$set": bson.M{
			"status":     models.MaintenanceStatusDone,
			"resolvedAt": utility.CurrentTimeInMilli(),
		}}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NewError(common.ErrCodeBusinessState, "Yêu cầu bảo trì không tồn tại hoặc đã hoàn thành", common.StatusBadRequest, err)
		}
		return nil, err
	}

	if _, err := s.equipmentService.SetStatus(ctx, updated.EquipmentID, models.EquipmentStatusAvailable); err != nil {
		logrus.WithField("equipmentId", updated.EquipmentID.Hex()).WithError(err).Warn("⚠️ Maintenance: Không thể trả thiết bị về Available")
	}

	logrus.WithField("requestId", requestID.Hex()).Info("✅ Maintenance: Yêu cầu bảo trì đã hoàn thành")
	return &updated, nil
}

// FindDueRequests trả về các yêu cầu chưa hoàn thành có lịch bảo trì
// trước mốc thời gian cho trước và chưa được gửi thông báo đến hạn
func (s *MaintenanceService) FindDueRequests(ctx context.Context, dueBefore int64) ([]models.MaintenanceRequest, error) {
	return s.Find(ctx, bson.M{
		"status":      bson.M{"$ne": models.MaintenanceStatusDone},
		"scheduledAt": bson.M{"$gt": 0, "$lte": dueBefore},
		"notifiedDue": false,
	}, nil)
}

// MarkNotifiedDue đánh dấu yêu cầu đã được gửi thông báo đến hạn
func (s *MaintenanceService) MarkNotifiedDue(ctx context.Context, requestID primitive.ObjectID) error {
	_, err := s.UpdateById(ctx, requestID, bson.M{"$set": bson.M{"notifiedDue": true}})
	return err
}
