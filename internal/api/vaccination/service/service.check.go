package vaccinationsvc

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "newborn_tracking/internal/api/base/service"
	newbornmodels "newborn_tracking/internal/api/newborn/models"
	newbornsvc "newborn_tracking/internal/api/newborn/service"
	notifsvc "newborn_tracking/internal/api/notification/service"
	models "newborn_tracking/internal/api/vaccination/models"
	"newborn_tracking/internal/common"
	"newborn_tracking/internal/global"
	"newborn_tracking/internal/notification"
	"newborn_tracking/internal/notification/channels"
	"newborn_tracking/internal/utility"
)

// CheckService đánh giá trạng thái lịch tiêm của một trẻ và phát thông báo
// khi hoàn thành toàn bộ lịch hoặc khi trẻ chưa tiêm mũi nào.
type CheckService struct {
	assignedService     *basesvc.BaseServiceMongoImpl[models.AssignedVaccine]
	recordService       *basesvc.BaseServiceMongoImpl[models.VaccinationRecord]
	newbornService      *newbornsvc.NewbornService
	notificationService *notifsvc.NotificationService
}

// NewCheckService tạo mới CheckService
func NewCheckService() (*CheckService, error) {
	assignedCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.AssignedVaccines)
	if !exist {
		return nil, fmt.Errorf("failed to get assigned_vaccines collection: %v", common.ErrNotFound)
	}
	recordCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.VaccinationRecords)
	if !exist {
		return nil, fmt.Errorf("failed to get vaccination_records collection: %v", common.ErrNotFound)
	}

	newbornService, err := newbornsvc.NewNewbornService()
	if err != nil {
		return nil, err
	}
	notificationService, err := notifsvc.NewNotificationService()
	if err != nil {
		return nil, err
	}

	return &CheckService{
		assignedService:     basesvc.NewBaseServiceMongo[models.AssignedVaccine](assignedCollection),
		recordService:       basesvc.NewBaseServiceMongo[models.VaccinationRecord](recordCollection),
		newbornService:      newbornService,
		notificationService: notificationService,
	}, nil
}

// completionStatus là kết quả đánh giá lịch tiêm của một trẻ
type completionStatus int

const (
	completionIncomplete  completionStatus = iota // Còn phác đồ chưa đủ mũi
	completionOverdose                            // Có phác đồ vượt quá số mũi quy định (dữ liệu bất thường)
	completionAlreadySent                         // Đã đủ mũi và đã gửi thông báo hoàn thành trước đó
	completionReady                               // Đủ mũi toàn bộ phác đồ, chưa gửi thông báo
)

// evaluateCompletion so số mũi đã tiêm với phác đồ được gán.
// Trả về trạng thái tổng và phác đồ vượt mũi đầu tiên (nếu có).
func evaluateCompletion(assignments []models.AssignedVaccine, counts map[primitive.ObjectID]int) (completionStatus, *models.AssignedVaccine) {
	if len(assignments) == 0 {
		return completionIncomplete, nil
	}
	allSent := true
	for i := range assignments {
		count := counts[assignments[i].VaccineID]
		if count > assignments[i].TotalDoses {
			return completionOverdose, &assignments[i]
		}
		if count < assignments[i].TotalDoses {
			return completionIncomplete, nil
		}
		if !assignments[i].SentComplete {
			allSent = false
		}
	}
	if allSent {
		return completionAlreadySent, nil
	}
	return completionReady, nil
}

// isUnvaccinated trả về true khi trẻ chưa tiêm mũi nào trong số các phác đồ truyền vào
func isUnvaccinated(assignments []models.AssignedVaccine, counts map[primitive.ObjectID]int) bool {
	if len(assignments) == 0 {
		return false
	}
	for i := range assignments {
		if counts[assignments[i].VaccineID] > 0 {
			return false
		}
	}
	return true
}

// doseCountByVaccine đếm số mũi đã tiêm của trẻ theo từng vaccine
func (s *CheckService) doseCountByVaccine(ctx context.Context, newbornID primitive.ObjectID) (map[primitive.ObjectID]int, error) {
	records, err := s.recordService.Find(ctx, bson.M{"newbornId": newbornID}, nil)
	if err != nil {
		return nil, err
	}
	counts := make(map[primitive.ObjectID]int, len(records))
	for _, record := range records {
		counts[record.VaccineID] = len(record.Doses)
	}
	return counts, nil
}

// CheckCompletion kiểm tra trẻ đã tiêm đủ toàn bộ phác đồ được gán hay chưa.
// Khi mọi phác đồ đều đủ mũi và chưa từng gửi thông báo hoàn thành,
// tạo thông báo vaccine_completion, gửi email cho mẹ và đánh dấu sentComplete.
// Phác đồ có số mũi vượt totalDoses là dữ liệu bất thường: chỉ cảnh báo,
// không phát thông báo hoàn thành.
func (s *CheckService) CheckCompletion(ctx context.Context, newbornID primitive.ObjectID) error {
	assignments, err := s.assignedService.Find(ctx, bson.M{"newbornId": newbornID}, nil)
	if err != nil {
		return err
	}
	if len(assignments) == 0 {
		return nil
	}

	counts, err := s.doseCountByVaccine(ctx, newbornID)
	if err != nil {
		return err
	}

	status, overdose := evaluateCompletion(assignments, counts)
	switch status {
	case completionOverdose:
		logrus.WithFields(logrus.Fields{
			"newbornId":  newbornID.Hex(),
			"vaccineId":  overdose.VaccineID.Hex(),
			"doses":      counts[overdose.VaccineID],
			"totalDoses": overdose.TotalDoses,
		}).Warn("⚠️ CheckCompletion: Số mũi đã tiêm vượt phác đồ, bỏ qua kiểm tra hoàn thành")
		return nil
	case completionIncomplete, completionAlreadySent:
		return nil
	}

	detail, err := s.newbornService.FindDetailById(ctx, newbornID)
	if err != nil {
		return err
	}

	message := fmt.Sprintf("Trẻ %s đã hoàn thành toàn bộ lịch tiêm chủng", detail.Name)
	motherUserID := primitive.NilObjectID
	if detail.Mother != nil {
		motherUserID = detail.Mother.UserID
	}
	if _, err := s.notificationService.CreateNewbornNotification(ctx, newbornID,
		notification.TypeVaccineCompletion, notification.SeverityInfo,
		message, detail.Zone, motherUserID); err != nil {
		return err
	}

	// Email chúc mừng gửi một lần tới toàn bộ người nhận (admin, BHW theo zone
	// và mẹ), lỗi gửi mail không chặn việc đánh dấu sentComplete
	s.sendAlertEmail(ctx, newbornID, detail, &channels.RenderedTemplate{
		Subject: "Hoàn thành lịch tiêm chủng",
		Content: fmt.Sprintf("Chúc mừng! Trẻ %s đã hoàn thành toàn bộ lịch tiêm chủng theo phác đồ.", detail.Name),
	})

	if _, err := s.assignedService.UpdateMany(ctx,
		bson.M{"newbornId": newbornID},
		bson.M{"$set": bson.M{"sentComplete": true}}, nil); err != nil {
		return err
	}

	logrus.WithField("newbornId", newbornID.Hex()).Info("✅ CheckCompletion: Trẻ đã hoàn thành toàn bộ lịch tiêm")
	return nil
}

// CheckNonVaccination kiểm tra trẻ đã được gán phác đồ nhưng chưa tiêm mũi nào.
// Mỗi trẻ chỉ cảnh báo một lần: các phác đồ đã notified bị loại khỏi xét duyệt,
// và partial unique index trên notifications chặn thông báo trùng.
func (s *CheckService) CheckNonVaccination(ctx context.Context, newbornID primitive.ObjectID) error {
	assignments, err := s.assignedService.Find(ctx, bson.M{
		"newbornId": newbornID,
		"notified":  false,
	}, nil)
	if err != nil {
		return err
	}
	if len(assignments) == 0 {
		return nil
	}

	counts, err := s.doseCountByVaccine(ctx, newbornID)
	if err != nil {
		return err
	}
	if !isUnvaccinated(assignments, counts) {
		return nil
	}

	detail, err := s.newbornService.FindDetailById(ctx, newbornID)
	if err != nil {
		return err
	}

	message := fmt.Sprintf("Trẻ %s chưa được tiêm mũi vaccine nào theo lịch được gán", detail.Name)
	motherUserID := primitive.NilObjectID
	if detail.Mother != nil {
		motherUserID = detail.Mother.UserID
	}
	if _, err := s.notificationService.CreateNewbornNotification(ctx, newbornID,
		notification.TypeUnvaccinatedAlert, notification.SeverityHigh,
		message, detail.Zone, motherUserID); err != nil {
		return err
	}

	s.sendAlertEmail(ctx, newbornID, detail, &channels.RenderedTemplate{
		Subject: "Cảnh báo trẻ chưa tiêm chủng",
		Content: fmt.Sprintf("Trẻ %s đã được gán lịch tiêm nhưng chưa được tiêm mũi vaccine nào. Vui lòng liên hệ trạm y tế để sắp xếp lịch tiêm.", detail.Name),
	})

	if _, err := s.assignedService.UpdateMany(ctx,
		bson.M{"newbornId": newbornID, "notified": false},
		bson.M{"$set": bson.M{"notified": true}}, nil); err != nil {
		return err
	}
	return nil
}

// sendAlertEmail gửi một email tới toàn bộ người nhận cảnh báo của trẻ:
// admin toàn hệ thống, BHW theo zone và mẹ (email tài khoản lẫn email liên hệ).
// Best effort: lỗi chỉ ghi log, không chặn luồng nghiệp vụ của caller.
func (s *CheckService) sendAlertEmail(ctx context.Context, newbornID primitive.ObjectID, detail *newbornmodels.NewbornDetail, template *channels.RenderedTemplate) {
	motherUserID := primitive.NilObjectID
	motherEmail := ""
	if detail.Mother != nil {
		motherUserID = detail.Mother.UserID
		motherEmail = detail.Mother.MotherEmail
	}

	recipients, err := s.notificationService.NewbornRecipientEmails(ctx, detail.Zone, motherUserID, motherEmail)
	if err != nil {
		logrus.WithField("newbornId", newbornID.Hex()).WithError(err).Warn("⚠️ CheckService: Không tìm được danh sách email người nhận")
		return
	}
	if len(recipients) == 0 {
		return
	}

	utility.GoProtect(func() {
		if err := channels.SendEmail(recipients, template); err != nil {
			logrus.WithFields(logrus.Fields{
				"newbornId":  newbornID.Hex(),
				"recipients": len(recipients),
			}).WithError(err).Warn("⚠️ CheckService: Không thể gửi email cảnh báo")
		}
	})
}
