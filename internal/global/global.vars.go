package global

import (
	"github.com/ChiragDawra/BrainBug/config"
	"github.com/ChiragDawra/BrainBug/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	BugEntries   string // Tên collection cho các bug entry
	UserAnalysis string // Tên collection cho rollup phân tích theo user
}

// Các biến toàn cục
var Validate *validator.Validate               // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client              // Phiên kết nối tới MongoDB
var ServerConfig *config.Configuration         // Cấu hình của server
var MongoDB_ColNames = MongoDB_CollectionName{ // Tên các collection
	BugEntries:   "bug_entries",
	UserAnalysis: "user_analysis",
}

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
