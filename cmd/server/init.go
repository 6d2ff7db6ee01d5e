package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/ChiragDawra/BrainBug/config"
	bugmodels "github.com/ChiragDawra/BrainBug/internal/api/bugs/models"
	"github.com/ChiragDawra/BrainBug/internal/database"
	"github.com/ChiragDawra/BrainBug/internal/global"
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
	logrus.Info("Initialized validator")
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	// Khởi tạo db và collections nếu chưa có
	if err := database.EnsureDatabaseAndCollections(global.MongoDB_Session); err != nil {
		logrus.Fatalf("Failed to ensure database and collections: %v", err)
	}
	logrus.Info("Ensured database and collections")

	// Khởi tạo index cho các collection
	dbName := global.ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)
	if err := database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.BugEntries), bugmodels.BugEntry{}); err != nil {
		logrus.Fatalf("Failed to create indexes for %s: %v", global.MongoDB_ColNames.BugEntries, err)
	}
	if err := database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.UserAnalysis), bugmodels.UserAnalysis{}); err != nil {
		logrus.Fatalf("Failed to create indexes for %s: %v", global.MongoDB_ColNames.UserAnalysis, err)
	}
}

// InitRegistry đăng ký các collection dùng chung vào registry toàn cục
func InitRegistry() {
	dbName := global.ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)

	names := []string{
		global.MongoDB_ColNames.BugEntries,
		global.MongoDB_ColNames.UserAnalysis,
	}
	for _, name := range names {
		if _, err := global.RegistryCollections.Register(name, db.Collection(name)); err != nil {
			logrus.Fatalf("Failed to register collection %s: %v", name, err)
		}
	}
	logrus.Info("Registered collections")
}
