// Package database - Index bổ sung (nested fields, compound) không thể định nghĩa qua model tags.
package database

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"newborn_tracking/internal/global"
)

// CreateAdditionalIndexes tạo các index bổ sung cho hệ thống.
// Gọi sau khi các collection đã được đăng ký vào registry.
func CreateAdditionalIndexes(ctx context.Context, db *mongo.Database) error {
	// users: email duy nhất trong hệ thống
	users := db.Collection(global.MongoDB_ColNames.Users)
	if _, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName("user_email_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// users: lookup theo token khi xác thực request
	if _, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "tokens.jwtToken", Value: 1}},
		Options: options.Index().SetName("user_tokens_jwt").SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// newborns: (motherId) — danh sách con theo phụ huynh
	newborns := db.Collection(global.MongoDB_ColNames.Newborns)
	if _, err := newborns.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "motherId", Value: 1}},
		Options: options.Index().SetName("newborn_mother"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// newborns: (zone, createdAt) — BHW lọc trẻ theo địa bàn phụ trách
	if _, err := newborns.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "zone", Value: 1},
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("newborn_zone_created"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// assigned_vaccines: (newbornId, vaccineId) duy nhất — mỗi trẻ chỉ được gán một phác đồ cho mỗi vaccine
	assigned := db.Collection(global.MongoDB_ColNames.AssignedVaccines)
	if _, err := assigned.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "newbornId", Value: 1},
			{Key: "vaccineId", Value: 1},
		},
		Options: options.Index().SetName("assigned_newborn_vaccine_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// vaccination_records: (newbornId, vaccineId) duy nhất — một document hồ sơ cho mỗi cặp trẻ/vaccine
	records := db.Collection(global.MongoDB_ColNames.VaccinationRecords)
	if _, err := records.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "newbornId", Value: 1},
			{Key: "vaccineId", Value: 1},
		},
		Options: options.Index().SetName("record_newborn_vaccine_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// notifications: (newbornId, type) duy nhất — chống gửi trùng thông báo hoàn thành/chưa tiêm.
	// Partial index giới hạn vào 2 loại thông báo theo trẻ, các loại khác (bảo trì) không bị ràng buộc.
	notifications := db.Collection(global.MongoDB_ColNames.Notifications)
	if _, err := notifications.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "newbornId", Value: 1},
			{Key: "type", Value: 1},
		},
		Options: options.Index().
			SetName("notification_newborn_type_unique").
			SetUnique(true).
			SetPartialFilterExpression(bson.M{
				"type": bson.M{"$in": bson.A{"vaccine_completion", "unvaccinated_alert"}},
			}),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// maintenance_requests: (status, scheduledAt) — worker quét yêu cầu bảo trì đến hạn
	maintenance := db.Collection(global.MongoDB_ColNames.MaintenanceRequests)
	if _, err := maintenance.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "status", Value: 1},
			{Key: "scheduledAt", Value: 1},
		},
		Options: options.Index().SetName("maintenance_status_due"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// audit_logs: (userId, createdAt) — tra cứu nhật ký theo người thao tác
	auditLogs := db.Collection(global.MongoDB_ColNames.AuditLogs)
	if _, err := auditLogs.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "userId", Value: 1},
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("audit_user_created"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}
