package main

import (
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"newborn_tracking/config"
	"newborn_tracking/internal/global"
)

func InitRegistry() {
	// Khởi tạo registry và đăng ký các collections
	err := InitCollections(global.MongoDB_Session, global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to initialize collections: %v", err)
	}
	logrus.Info("Initialized collection registry")
}

// InitCollections khởi tạo và đăng ký các collections MongoDB
func InitCollections(client *mongo.Client, cfg *config.Configuration) error {
	db := client.Database(cfg.MongoDB_DBName)

	if _, err := global.RegistryDatabase.Register(cfg.MongoDB_DBName, db); err != nil {
		logrus.Errorf("Failed to register database %s: %v", cfg.MongoDB_DBName, err)
		return err
	}

	colNames := []string{
		global.MongoDB_ColNames.Users,
		global.MongoDB_ColNames.Parents,
		global.MongoDB_ColNames.Newborns,
		global.MongoDB_ColNames.Brands,
		global.MongoDB_ColNames.Vaccines,
		global.MongoDB_ColNames.AssignedVaccines,
		global.MongoDB_ColNames.VaccinationRecords,
		global.MongoDB_ColNames.Notifications,
		global.MongoDB_ColNames.Equipments,
		global.MongoDB_ColNames.Laboratories,
		global.MongoDB_ColNames.MaintenanceRequests,
		global.MongoDB_ColNames.AuditLogs,
	}

	for _, name := range colNames {
		registered, err := global.RegistryCollections.Register(name, db.Collection(name))
		if err != nil {
			logrus.Errorf("Failed to register collection %s: %v", name, err)
			return err
		}

		if registered {
			logrus.Infof("Collection %s registered successfully", name)
		} else {
			logrus.Warnf("Collection %s already registered", name)
		}
	}

	return nil
}
