package authsvc

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	models "newborn_tracking/internal/api/auth/models"
	basesvc "newborn_tracking/internal/api/base/service"
	"newborn_tracking/internal/common"
	"newborn_tracking/internal/global"
	"newborn_tracking/internal/logger"
	"newborn_tracking/internal/utility"
)

// AuditLogService là cấu trúc chứa các phương thức ghi nhật ký audit
type AuditLogService struct {
	*basesvc.BaseServiceMongoImpl[models.AuditLog]
}

// NewAuditLogService tạo mới AuditLogService
func NewAuditLogService() (*AuditLogService, error) {
	auditCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.AuditLogs)
	if !exist {
		return nil, fmt.Errorf("failed to get audit_logs collection: %v", common.ErrNotFound)
	}

	return &AuditLogService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.AuditLog](auditCollection),
	}, nil
}

// LogAction ghi một hành động vào collection audit_logs và file audit log.
// Ghi audit là best effort: lỗi được log ra file error, không chặn nghiệp vụ chính.
func (s *AuditLogService) LogAction(ctx context.Context, userID primitive.ObjectID, collection, action, describe string, oldData, newData string) {
	now := utility.CurrentTimeInMilli()
	entry := models.AuditLog{
		UserID:     userID,
		Collection: collection,
		Action:     action,
		Describe:   describe,
		OldData:    oldData,
		NewData:    newData,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if _, err := s.InsertOne(ctx, entry); err != nil {
		logger.GetErrorLogger().WithFields(logrus.Fields{
			"collection": collection,
			"action":     action,
		}).WithError(err).Error("❌ Audit: Không thể ghi audit log vào database")
	}

	logger.GetAuditLogger().WithFields(logrus.Fields{
		"userId":     userID.Hex(),
		"collection": collection,
		"action":     action,
	}).Info(describe)
}
