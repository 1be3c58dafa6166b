package worker

import (
	"context"
	"time"

	authsvc "newborn_tracking/internal/api/auth/service"
	"newborn_tracking/internal/logger"
)

// AccountPurgeWorker dọn các tài khoản đăng ký nhưng không xác thực email.
// Chạy định kỳ và xóa các tài khoản chưa verified quá maxAge.
type AccountPurgeWorker struct {
	userService *authsvc.UserService
	interval    time.Duration // Khoảng thời gian giữa các lần chạy
	maxAge      time.Duration // Tuổi tối đa của tài khoản chưa xác thực
}

// NewAccountPurgeWorker tạo mới AccountPurgeWorker
// Tham số:
//   - interval: Khoảng thời gian giữa các lần chạy (tối thiểu 30 giây)
//   - maxAge: Tuổi tối đa của tài khoản chưa xác thực trước khi bị xóa
func NewAccountPurgeWorker(interval, maxAge time.Duration) (*AccountPurgeWorker, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, err
	}

	if interval < 30*time.Second {
		interval = 1 * time.Minute
	}
	if maxAge < time.Minute {
		maxAge = 5 * time.Minute
	}

	return &AccountPurgeWorker{
		userService: userService,
		interval:    interval,
		maxAge:      maxAge,
	}, nil
}

// Start bắt đầu background worker dọn tài khoản chưa xác thực.
// Worker chạy định kỳ theo interval cho tới khi ctx bị cancel.
func (w *AccountPurgeWorker) Start(ctx context.Context) {
	log := logger.GetWorkerLogger()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.WithFields(map[string]interface{}{
		"interval": w.interval.String(),
		"maxAge":   w.maxAge.String(),
	}).Info("🔄 [ACCOUNT_PURGE] Starting Account Purge Worker...")

	for {
		select {
		case <-ctx.Done():
			log.Info("🔄 [ACCOUNT_PURGE] Account Purge Worker stopped")
			return
		case <-ticker.C:
			func() {
				defer func() {
					if r := recover(); r != nil {
						log.WithFields(map[string]interface{}{
							"panic": r,
						}).Error("🔄 [ACCOUNT_PURGE] Panic khi dọn tài khoản chưa xác thực, sẽ tiếp tục ở lần chạy tiếp theo")
					}
				}()

				purgedCount, err := w.userService.PurgeUnverified(ctx, w.maxAge)
				if err != nil {
					log.WithError(err).Error("🔄 [ACCOUNT_PURGE] Failed to purge unverified accounts")
					return
				}
				if purgedCount > 0 {
					log.WithFields(map[string]interface{}{
						"purgedCount": purgedCount,
					}).Info("🔄 [ACCOUNT_PURGE] Đã xóa các tài khoản chưa xác thực quá hạn")
				}
			}()
		}
	}
}
