package main

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	authsvc "newborn_tracking/internal/api/auth/service"
	basesvc "newborn_tracking/internal/api/base/service"
	"newborn_tracking/internal/api/initsvc"
	vaccinationmodels "newborn_tracking/internal/api/vaccination/models"
	vaccinationsvc "newborn_tracking/internal/api/vaccination/service"
	"newborn_tracking/internal/common"
	"newborn_tracking/internal/global"
	"newborn_tracking/internal/logger"
)

// standardVaccines là phác đồ tiêm chủng chuẩn theo chương trình tiêm chủng mở rộng.
// Seed một lần khi khởi động ở chế độ INITMODE, vaccine đã tồn tại (trùng tên) sẽ bị bỏ qua.
var standardVaccines = []vaccinationmodels.Vaccine{
	{Name: "BCG", Description: "Phòng lao", TotalDoses: 1},
	{Name: "Viêm gan B", Description: "Phòng viêm gan B sơ sinh", TotalDoses: 1},
	{Name: "DPT-VGB-Hib", Description: "Vaccine 5 trong 1 (bạch hầu, ho gà, uốn ván, viêm gan B, Hib)", TotalDoses: 3},
	{Name: "OPV", Description: "Phòng bại liệt (uống)", TotalDoses: 3},
	{Name: "IPV", Description: "Phòng bại liệt (tiêm)", TotalDoses: 1},
	{Name: "PCV", Description: "Phòng phế cầu khuẩn", TotalDoses: 3},
	{Name: "Sởi-Quai bị-Rubella", Description: "Vaccine MMR", TotalDoses: 2},
}

func InitDefaultData() {
	log := logger.GetAppLogger()
	log.Info("🔄 [INIT] Starting InitDefaultData...")

	// Base service cần biết user hiện tại có phải admin không (bỏ qua zone filter, cho phép sửa system data)
	basesvc.SetIsAdminFromContextFunc(authsvc.IsUserAdministratorFromContext)

	cfg := global.MongoDB_ServerConfig
	if !cfg.InitMode {
		log.Info("✅ [INIT] INITMODE disabled, skipping default data seed")
		return
	}

	// 1. Tạo admin mặc định nếu hệ thống chưa có admin nào
	log.Info("🔄 [INIT] Step 1: Initializing admin user...")
	initService, err := initsvc.NewInitService()
	if err != nil {
		log.Fatalf("Failed to initialize init service: %v", err)
	}
	if err := initService.InitAdminUser(cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.WithError(err).Error("❌ [INIT] Step 1: Failed to initialize admin user")
	} else {
		log.Info("✅ [INIT] Step 1: Admin user ensured")
	}

	// 2. Seed danh mục vaccine chuẩn
	log.Info("🔄 [INIT] Step 2: Initializing standard vaccines...")
	if err := initStandardVaccines(); err != nil {
		log.WithError(err).Error("❌ [INIT] Step 2: Failed to initialize standard vaccines")
	} else {
		log.Info("✅ [INIT] Step 2: Standard vaccines ensured")
	}

	log.Info("✅ [INIT] InitDefaultData completed")
}

// initStandardVaccines chèn các vaccine chuẩn chưa có trong hệ thống.
// Vaccine được nhận diện theo tên (unique index), trùng tên thì bỏ qua.
func initStandardVaccines() error {
	log := logger.GetAppLogger()

	vaccineService, err := vaccinationsvc.NewVaccineService()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	seeded := 0
	for _, v := range standardVaccines {
		count, err := vaccineService.CountDocuments(ctx, bson.M{"name": v.Name})
		if err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		v.Batches = []vaccinationmodels.Batch{}
		if _, err := vaccineService.InsertOne(ctx, v); err != nil {
			// Hai instance cùng seed một lúc thì instance sau trúng unique index
			if errors.Is(err, common.ErrMongoDuplicate) {
				continue
			}
			return err
		}
		seeded++
	}

	if seeded > 0 {
		log.Infof("Seeded %d standard vaccines", seeded)
	}
	return nil
}
