package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"newborn_tracking/config"
	authmodels "newborn_tracking/internal/api/auth/models"
	facilitymodels "newborn_tracking/internal/api/facility/models"
	newbornmodels "newborn_tracking/internal/api/newborn/models"
	notifmodels "newborn_tracking/internal/api/notification/models"
	vaccinationmodels "newborn_tracking/internal/api/vaccination/models"
	"newborn_tracking/internal/database"
	"newborn_tracking/internal/global"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo validator (dùng global.InitValidator để đăng ký custom validators)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator") // Ghi log thông báo đã khởi tạo validator
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil") // Ghi log lỗi nếu khởi tạo cấu hình thất bại
	}
	logrus.Info("Initialized server config") // Ghi log thông báo đã khởi tạo cấu hình server
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err) // Ghi log lỗi nếu kết nối database thất bại
	}
	logrus.Info("Connected to MongoDB")

	// Khởi tạo các db và collections nếu chưa có
	if err := database.EnsureDatabaseAndCollections(global.MongoDB_Session); err != nil {
		logrus.Fatalf("Failed to ensure database and collections: %v", err)
	}
	logrus.Info("Ensured database and collections")

	// Khởi tạo các index khai báo qua tag `index` trên model
	dbName := global.MongoDB_ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)
	ctx := context.TODO()

	indexTargets := []struct {
		collection string
		model      interface{}
	}{
		{global.MongoDB_ColNames.Users, authmodels.User{}},
		{global.MongoDB_ColNames.Parents, newbornmodels.Parent{}},
		{global.MongoDB_ColNames.Newborns, newbornmodels.Newborn{}},
		{global.MongoDB_ColNames.Brands, vaccinationmodels.Brand{}},
		{global.MongoDB_ColNames.Vaccines, vaccinationmodels.Vaccine{}},
		{global.MongoDB_ColNames.AssignedVaccines, vaccinationmodels.AssignedVaccine{}},
		{global.MongoDB_ColNames.VaccinationRecords, vaccinationmodels.VaccinationRecord{}},
		{global.MongoDB_ColNames.Notifications, notifmodels.Notification{}},
		{global.MongoDB_ColNames.Equipments, facilitymodels.Equipment{}},
		{global.MongoDB_ColNames.Laboratories, facilitymodels.Laboratory{}},
		{global.MongoDB_ColNames.MaintenanceRequests, facilitymodels.MaintenanceRequest{}},
		{global.MongoDB_ColNames.AuditLogs, authmodels.AuditLog{}},
	}
	for _, t := range indexTargets {
		if err := database.CreateIndexes(ctx, db.Collection(t.collection), t.model); err != nil {
			logrus.Errorf("Failed to create indexes for %s: %v", t.collection, err)
		}
	}

	// Index bổ sung (nested fields, compound, partial) không khai báo được qua tag
	if err := database.CreateAdditionalIndexes(ctx, db); err != nil {
		logrus.Errorf("Failed to create additional indexes: %v", err)
	}
	logrus.Info("Initialized database indexes")
}
