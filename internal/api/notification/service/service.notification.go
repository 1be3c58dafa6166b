// Package notifsvc - service quản lý thông báo trong hệ thống.
package notifsvc

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	authmodels "newborn_tracking/internal/api/auth/models"
	authsvc "newborn_tracking/internal/api/auth/service"
	basesvc "newborn_tracking/internal/api/base/service"
	models "newborn_tracking/internal/api/notification/models"
	"newborn_tracking/internal/api/socket"
	"newborn_tracking/internal/common"
	"newborn_tracking/internal/global"
	"newborn_tracking/internal/utility"
)

// NotificationService là cấu trúc chứa các phương thức liên quan đến thông báo
type NotificationService struct {
	*basesvc.BaseServiceMongoImpl[models.Notification]
	userService *authsvc.UserService
}

// NewNotificationService tạo mới NotificationService
func NewNotificationService() (*NotificationService, error) {
	notificationCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Notifications)
	if !exist {
		return nil, fmt.Errorf("failed to get notifications collection: %v", common.ErrNotFound)
	}

	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, err
	}

	return &NotificationService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Notification](notificationCollection),
		userService:          userService,
	}, nil
}

// ==========================================
// TẠO THÔNG BÁO
// ==========================================

// CreateNewbornNotification tạo thông báo gắn với một trẻ sơ sinh.
// Mỗi trẻ chỉ có tối đa một thông báo cho mỗi loại (vaccine_completion,
// unvaccinated_alert); nếu đã tồn tại thì bỏ qua, không coi là lỗi.
// Người nhận gồm: toàn bộ admin, BHW phụ trách zone của trẻ và tài khoản của mẹ.
func (s *NotificationService) CreateNewbornNotification(ctx context.Context, newbornID primitive.ObjectID, notifType, severity, message, zone string, motherUserID primitive.ObjectID) (*models.Notification, error) {
	recipients, err := s.resolveNewbornRecipients(ctx, zone, motherUserID)
	if err != nil {
		return nil, err
	}

	now := utility.CurrentTimeInMilli()
	notif := models.Notification{
		NewbornID: newbornID,
		Type:      notifType,
		Severity:  severity,
		Message:   message,
		Viewers:   buildViewers(recipients),
		CreatedAt: now,
		UpdatedAt: now,
	}

	inserted, err := s.InsertOne(ctx, notif)
	if err != nil {
		if errors.Is(err, common.ErrMongoDuplicate) {
			// Đã có thông báo cùng loại cho trẻ này
			logrus.WithFields(logrus.Fields{
				"newbornId": newbornID.Hex(),
				"type":      notifType,
			}).Debug("Notification: Bỏ qua thông báo trùng")
			return nil, nil
		}
		return nil, err
	}

	s.pushToRecipients(recipients, inserted)
	logrus.WithFields(logrus.Fields{
		"newbornId":  newbornID.Hex(),
		"type":       notifType,
		"recipients": len(recipients),
	}).Info("✅ Notification: Đã tạo thông báo cho trẻ")

	return &inserted, nil
}

// CreateMaintenanceNotification tạo thông báo bảo trì thiết bị, gửi tới toàn bộ admin.
// Thông báo bảo trì không bị ràng buộc duy nhất, mỗi sự kiện tạo một thông báo mới.
func (s *NotificationService) CreateMaintenanceNotification(ctx context.Context, notifType, severity, message string) (*models.Notification, error) {
	admins, err := s.userService.Find(ctx, bson.M{"role": authmodels.RoleAdmin}, nil)
	if err != nil {
		return nil, err
	}
	recipients := make([]primitive.ObjectID, 0, len(admins))
	for _, admin := range admins {
		recipients = append(recipients, admin.ID)
	}

	now := utility.CurrentTimeInMilli()
	notif := models.Notification{
		Type:      notifType,
		Severity:  severity,
		Message:   message,
		Viewers:   buildViewers(recipients),
		CreatedAt: now,
		UpdatedAt: now,
	}

	inserted, err := s.InsertOne(ctx, notif)
	if err != nil {
		return nil, err
	}

	s.pushToRecipients(recipients, inserted)
	logrus.WithFields(logrus.Fields{
		"type":       notifType,
		"recipients": len(recipients),
	}).Info("✅ Notification: Đã tạo thông báo bảo trì")

	return &inserted, nil
}

// findNewbornRecipients truy vấn danh sách user nhận thông báo của một trẻ:
// admin toàn hệ thống, BHW theo zone và tài khoản của mẹ (nếu có liên kết).
func (s *NotificationService) findNewbornRecipients(ctx context.Context, zone string, motherUserID primitive.ObjectID) ([]authmodels.User, error) {
	orConditions := bson.A{
		bson.M{"role": authmodels.RoleAdmin},
	}
	if zone != "" {
		orConditions = append(orConditions, bson.M{"role": authmodels.RoleBHW, "zone": zone})
	}
	if !motherUserID.IsZero() {
		orConditions = append(orConditions, bson.M{"_id": motherUserID})
	}

	return s.userService.Find(ctx, bson.M{"$or": orConditions}, nil)
}

// resolveNewbornRecipients trả về danh sách userId nhận thông báo, đã loại trùng
func (s *NotificationService) resolveNewbornRecipients(ctx context.Context, zone string, motherUserID primitive.ObjectID) ([]primitive.ObjectID, error) {
	users, err := s.findNewbornRecipients(ctx, zone, motherUserID)
	if err != nil {
		return nil, err
	}

	seen := make(map[primitive.ObjectID]bool, len(users))
	recipients := make([]primitive.ObjectID, 0, len(users))
	for _, user := range users {
		if seen[user.ID] {
			continue
		}
		seen[user.ID] = true
		recipients = append(recipients, user.ID)
	}
	return recipients, nil
}

// NewbornRecipientEmails trả về danh sách email nhận cảnh báo của một trẻ:
// email tài khoản của admin, BHW theo zone, mẹ, cộng thêm các email liên hệ
// bổ sung (extra). Danh sách đã loại trùng và loại email rỗng.
func (s *NotificationService) NewbornRecipientEmails(ctx context.Context, zone string, motherUserID primitive.ObjectID, extra ...string) ([]string, error) {
	users, err := s.findNewbornRecipients(ctx, zone, motherUserID)
	if err != nil {
		return nil, err
	}
	return collectRecipientEmails(users, extra...), nil
}

// collectRecipientEmails gom email của người nhận, loại trùng và loại rỗng
func collectRecipientEmails(users []authmodels.User, extra ...string) []string {
	seen := make(map[string]bool, len(users)+len(extra))
	emails := make([]string, 0, len(users)+len(extra))
	add := func(email string) {
		if email == "" || seen[email] {
			return
		}
		seen[email] = true
		emails = append(emails, email)
	}
	for _, user := range users {
		add(user.Email)
	}
	for _, email := range extra {
		add(email)
	}
	return emails
}

// buildViewers khởi tạo trạng thái chưa đọc cho toàn bộ người nhận
func buildViewers(recipients []primitive.ObjectID) []models.Viewer {
	viewers := make([]models.Viewer, 0, len(recipients))
	for _, id := range recipients {
		viewers = append(viewers, models.Viewer{UserID: id, IsRead: false})
	}
	return viewers
}

// pushToRecipients đẩy thông báo realtime qua websocket hub. Best effort,
// hub chưa khởi tạo hoặc client offline đều không chặn luồng nghiệp vụ.
func (s *NotificationService) pushToRecipients(recipients []primitive.ObjectID, notif models.Notification) {
	hub := socket.GetDefaultHub()
	if hub == nil {
		return
	}
	hub.Push(recipients, socket.Event{
		Type:    "notification",
		Payload: notif,
	})
}

// ==========================================
// TRUY VẤN VÀ CẬP NHẬT TRẠNG THÁI ĐỌC
// ==========================================

// FindForUser trả về danh sách thông báo của một user, mới nhất trước
func (s *NotificationService) FindForUser(ctx context.Context, userID primitive.ObjectID, page, limit int64) (*models.NotificationPaginateResult, error) {
	filter := bson.M{"viewers.userId": userID}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	result, err := s.FindWithPagination(ctx, filter, page, limit, opts)
	if err != nil {
		return nil, err
	}

	return &models.NotificationPaginateResult{
		Page:      result.Page,
		Limit:     result.Limit,
		ItemCount: result.ItemCount,
		Items:     result.Items,
	}, nil
}

// CountUnread đếm số thông báo chưa đọc của một user
func (s *NotificationService) CountUnread(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	return s.CountDocuments(ctx, bson.M{
		"viewers": bson.M{"$elemMatch": bson.M{"userId": userID, "isRead": false}},
	})
}

// MarkRead đánh dấu một thông báo là đã đọc đối với user hiện tại.
// Chỉ cập nhật được khi user nằm trong danh sách người nhận.
func (s *NotificationService) MarkRead(ctx context.Context, notificationID, userID primitive.ObjectID) (*models.Notification, error) {
	filter := bson.M{
		"_id":            notificationID,
		"viewers.userId": userID,
	}
	update := bson.M{
		"$set": bson.M{
			"viewers.$.isRead":   true,
			"viewers.$.viewedAt": utility.CurrentTimeInMilli(),
			"updatedAt":          utility.CurrentTimeInMilli(),
		},
	}

	updated, err := s.FindOneAndUpdate(ctx, filter, update, options.FindOneAndUpdate().SetReturnDocument(options.After))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NewError(common.ErrCodeBusinessState, "Thông báo không tồn tại hoặc không thuộc về bạn", common.StatusNotFound, err)
		}
		return nil, err
	}
	return &updated, nil
}

// MarkAllRead đánh dấu toàn bộ thông báo chưa đọc của user là đã đọc
func (s *NotificationService) MarkAllRead(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	now := utility.CurrentTimeInMilli()
	result, err := s.Collection().UpdateMany(ctx,
		bson.M{"viewers": bson.M{"$elemMatch": bson.M{"userId": userID, "isRead": false}}},
		bson.M{"$set": bson.M{
			"viewers.$[elem].isRead":   true,
			"viewers.$[elem].viewedAt": now,
			"updatedAt":                now,
		}},
		options.Update().SetArrayFilters(options.ArrayFilters{
			Filters: bson.A{bson.M{"elem.userId": userID, "elem.isRead": false}},
		}),
	)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return result.ModifiedCount, nil
}
