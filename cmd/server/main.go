package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v3"

	"newborn_tracking/internal/global"
	"newborn_tracking/internal/logger"
	"newborn_tracking/internal/worker"
)

// initLogger khởi tạo và cấu hình logger cho toàn bộ ứng dụng
func initLogger() {
	// Logger tự đọc environment variables để cấu hình (LOG_LEVEL, LOG_OUTPUT, ...)
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	log := logger.GetAppLogger()
	log.Info("Logger system initialized successfully")
}

// startWorkers khởi động các background worker.
// Trả về hàm cancel để dừng toàn bộ worker khi server tắt.
func startWorkers() context.CancelFunc {
	log := logger.GetAppLogger()
	cfg := global.MongoDB_ServerConfig
	ctx, cancel := context.WithCancel(context.Background())

	// Worker dọn tài khoản chưa xác thực email quá hạn
	purgeWorker, err := worker.NewAccountPurgeWorker(
		time.Duration(cfg.AccountPurgeInterval)*time.Second,
		time.Duration(cfg.AccountPurgeMaxAge)*time.Second,
	)
	if err != nil {
		log.WithError(err).Error("Failed to create account purge worker, continuing without it")
	} else {
		go func() {
			defer func() {
				if r := recover(); r != nil {
					log.WithFields(map[string]interface{}{
						"panic": r,
					}).Error("🔄 [ACCOUNT_PURGE] Worker goroutine panic")
				}
			}()
			purgeWorker.Start(ctx)
		}()
		log.Info("🔄 [ACCOUNT_PURGE] Worker started successfully")
	}

	// Worker quét thiết bị đến hạn bảo trì theo lịch cron
	dueWorker, err := worker.NewMaintenanceDueWorker(cfg.MaintenanceScanCron)
	if err != nil {
		log.WithError(err).Error("Failed to create maintenance due worker, continuing without it")
	} else {
		if err := dueWorker.Start(ctx); err != nil {
			log.WithError(err).Error("Failed to start maintenance due worker, continuing without it")
		} else {
			log.Infof("🔄 [MAINTENANCE_DUE] Worker started successfully (cron: %s)", cfg.MaintenanceScanCron)
		}
	}

	return cancel
}

// main_thread khởi tạo và chạy Fiber server
func main_thread() {
	app := InitFiberApp()

	cfg := global.MongoDB_ServerConfig
	address := cfg.Address

	log := logger.GetAppLogger()
	log.Info("Starting Fiber server...")

	// Helper resolve đường dẫn tương đối từ thư mục chứa config/env
	resolvePath := func(path string) string {
		if filepath.IsAbs(path) {
			return path
		}
		currentDir, err := os.Getwd()
		if err != nil {
			return path
		}
		for {
			envDir := filepath.Join(currentDir, "config", "env")
			if _, err := os.Stat(envDir); err == nil {
				return filepath.Join(currentDir, path)
			}
			parentDir := filepath.Dir(currentDir)
			if parentDir == currentDir {
				return path
			}
			currentDir = parentDir
		}
	}

	if cfg.EnableTLS && cfg.TLSCertFile != "" && cfg.TLSKeyFile != "" {
		certPath := resolvePath(cfg.TLSCertFile)
		keyPath := resolvePath(cfg.TLSKeyFile)

		if _, err := os.Stat(certPath); os.IsNotExist(err) {
			log.Fatalf("TLS certificate file not found: %s (resolved from: %s)", certPath, cfg.TLSCertFile)
		}
		if _, err := os.Stat(keyPath); os.IsNotExist(err) {
			log.Fatalf("TLS key file not found: %s (resolved from: %s)", keyPath, cfg.TLSKeyFile)
		}

		cert, err := tls.LoadX509KeyPair(certPath, keyPath)
		if err != nil {
			log.Fatalf("Error loading TLS certificate: %v", err)
		}

		ln, err := net.Listen("tcp", address)
		if err != nil {
			log.Fatalf("Error creating listener: %v", err)
		}

		tlsConfig := &tls.Config{
			Certificates: []tls.Certificate{cert},
			MinVersion:   tls.VersionTLS12,
		}
		tlsListener := tls.NewListener(ln, tlsConfig)

		log.WithFields(map[string]interface{}{
			"address": address,
			"cert":    certPath,
			"key":     keyPath,
		}).Info("Starting server with HTTPS/TLS")

		if err := app.Listener(tlsListener); err != nil {
			log.Fatalf("Error in Fiber Listener with TLS: %v", err)
		}
	} else {
		log.WithFields(map[string]interface{}{
			"address":  address,
			"protocol": "HTTP",
		}).Info("Starting server with HTTP")

		listenConfig := fiber.ListenConfig{}
		if err := app.Listen(address, listenConfig); err != nil {
			log.Fatalf("Error in Fiber Listen: %v", err)
		}
	}
}

// Hàm main
func main() {
	// Khởi tạo logger
	initLogger()

	// Khởi tạo các biến toàn cục (config, validator, database)
	InitGlobal()

	// Khởi tạo registry collections + indexes
	InitRegistry()

	// Khởi tạo dữ liệu mặc định (admin, danh mục vaccine chuẩn)
	InitDefaultData()

	// Khởi động các background worker
	cancelWorkers := startWorkers()
	defer cancelWorkers()

	// Chạy Fiber server trên main thread
	main_thread()
}
