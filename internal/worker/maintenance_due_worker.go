package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	facilitysvc "newborn_tracking/internal/api/facility/service"
	notifsvc "newborn_tracking/internal/api/notification/service"
	"newborn_tracking/internal/logger"
	"newborn_tracking/internal/notification"
	"newborn_tracking/internal/utility"
)

// Cửa sổ báo trước: yêu cầu có lịch trong 24h tới (hoặc đã quá hạn) được coi là đến hạn
const maintenanceDueWindow = 24 * time.Hour

// MaintenanceDueWorker quét các yêu cầu bảo trì đến hạn theo lịch cron
// và gửi thông báo maintenance_due cho admin. Mỗi yêu cầu chỉ thông báo
// một lần nhờ cờ notifiedDue.
type MaintenanceDueWorker struct {
	maintenanceService  *facilitysvc.MaintenanceService
	equipmentService    *facilitysvc.EquipmentService
	notificationService *notifsvc.NotificationService
	cronSpec            string
}

// NewMaintenanceDueWorker tạo mới MaintenanceDueWorker
// Tham số:
//   - cronSpec: Lịch quét dạng cron 5 trường (mặc định "0 6 * * *": 6h sáng hàng ngày)
func NewMaintenanceDueWorker(cronSpec string) (*MaintenanceDueWorker, error) {
	maintenanceService, err := facilitysvc.NewMaintenanceService()
	if err != nil {
		return nil, err
	}
	equipmentService, err := facilitysvc.NewEquipmentService()
	if err != nil {
		return nil, err
	}
	notificationService, err := notifsvc.NewNotificationService()
	if err != nil {
		return nil, err
	}

	if cronSpec == "" {
		cronSpec = "0 6 * * *"
	}

	return &MaintenanceDueWorker{
		maintenanceService:  maintenanceService,
		equipmentService:    equipmentService,
		notificationService: notificationService,
		cronSpec:            cronSpec,
	}, nil
}

// Start bắt đầu background worker quét bảo trì đến hạn theo lịch cron.
// Worker chạy cho tới khi ctx bị cancel.
func (w *MaintenanceDueWorker) Start(ctx context.Context) error {
	log := logger.GetWorkerLogger()

	scheduler := cron.New()
	_, err := scheduler.AddFunc(w.cronSpec, func() {
		defer func() {
			if r := recover(); r != nil {
				log.WithFields(map[string]interface{}{
					"panic": r,
				}).Error("🔄 [MAINTENANCE_DUE] Panic khi quét bảo trì đến hạn, sẽ tiếp tục ở lần chạy tiếp theo")
			}
		}()
		w.scan(ctx)
	})
	if err != nil {
		return fmt.Errorf("invalid maintenance scan cron spec %q: %w", w.cronSpec, err)
	}

	log.WithFields(map[string]interface{}{
		"cronSpec": w.cronSpec,
	}).Info("🔄 [MAINTENANCE_DUE] Starting Maintenance Due Worker...")

	scheduler.Start()
	go func() {
		<-ctx.Done()
		scheduler.Stop()
		log.Info("🔄 [MAINTENANCE_DUE] Maintenance Due Worker stopped")
	}()
	return nil
}

// scan tìm các yêu cầu đến hạn và gửi thông báo cho admin.
// Lỗi trên từng yêu cầu được log và bỏ qua, không chặn các yêu cầu còn lại.
func (w *MaintenanceDueWorker) scan(ctx context.Context) {
	log := logger.GetWorkerLogger()

	dueBefore := utility.CurrentTimeInMilli() + maintenanceDueWindow.Milliseconds()
	requests, err := w.maintenanceService.FindDueRequests(ctx, dueBefore)
	if err != nil {
		log.WithError(err).Error("🔄 [MAINTENANCE_DUE] Failed to scan due maintenance requests")
		return
	}
	if len(requests) == 0 {
		return
	}

	notified := 0
	for _, request := range requests {
		equipmentLabel := request.EquipmentID.Hex()
		if equipment, err := w.equipmentService.FindOneById(ctx, request.EquipmentID); err == nil {
			equipmentLabel = fmt.Sprintf("%s (số serial %s)", equipment.Name, equipment.SerialNumber)
		}

		message := fmt.Sprintf("Thiết bị %s đến hạn bảo trì vào %s",
			equipmentLabel, time.UnixMilli(request.ScheduledAt).Format("02/01/2006"))
		if _, err := w.notificationService.CreateMaintenanceNotification(ctx,
			notification.TypeMaintenanceDue, notification.SeverityHigh, message); err != nil {
			log.WithError(err).WithFields(map[string]interface{}{
				"requestId": request.ID.Hex(),
			}).Error("🔄 [MAINTENANCE_DUE] Failed to create due notification")
			continue
		}
		if err := w.maintenanceService.MarkNotifiedDue(ctx, request.ID); err != nil {
			log.WithError(err).WithFields(map[string]interface{}{
				"requestId": request.ID.Hex(),
			}).Error("🔄 [MAINTENANCE_DUE] Failed to mark request as notified")
			continue
		}
		notified++
	}

	log.WithFields(map[string]interface{}{
		"dueCount":      len(requests),
		"notifiedCount": notified,
	}).Info("🔄 [MAINTENANCE_DUE] Đã quét các yêu cầu bảo trì đến hạn")
}
