package database

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"ziada-travel/logger"
	"ziada-travel/models/blog"
	"ziada-travel/models/catalog"
	"ziada-travel/models/inquiry"
	"ziada-travel/models/log"
	"ziada-travel/models/user"
)

var DB *gorm.DB

// InitDB opens the database and brings the schema up to date. Connection
// resolution order: DATABASE_URL, then discrete DB_* settings, then a local
// SQLite file so the site runs with zero configuration in development.
func InitDB() (*gorm.DB, error) {
	if err := godotenv.Load(); err != nil {
		logger.Warning("No .env file found, using process environment")
	}

	dialector := resolveDialector()

	var err error
	DB, err = gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		logger.Error("Failed to connect to the database", err)
		return nil, err
	}
	logger.Success("Successfully connected to the database")

	if err := autoMigrate(); err != nil {
		logger.Error("Failed to migrate schema", err)
		return nil, err
	}
	logger.Success("Schema migration completed successfully")

	if err := createIndexes(); err != nil {
		logger.Error("Failed to create indexes", err)
		return nil, err
	}
	logger.Success("All indexes created successfully")

	if usingPostgres() {
		if err := createForeignKeyConstraints(); err != nil {
			logger.Error("Failed to create foreign key constraints", err)
			return nil, err
		}
		logger.Success("All foreign key constraints created successfully")
	}

	return DB, nil
}

func resolveDialector() gorm.Dialector {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return postgres.Open(url)
	}

	host := os.Getenv("DB_HOST")
	if host != "" {
		port := os.Getenv("DB_PORT")
		database := os.Getenv("DB_DATABASE")
		username := os.Getenv("DB_USERNAME")
		password := os.Getenv("DB_PASSWORD")
		sslmode := os.Getenv("DB_SSLMODE")
		if port == "" {
			port = "5432"
		}
		if sslmode == "" {
			sslmode = "disable"
		}

		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			host, port, username, password, database, sslmode)
		return postgres.Open(dsn)
	}

	path := os.Getenv("SQLITE_PATH")
	if path == "" {
		path = "ziada.db"
	}
	logger.Warning("No Postgres configuration found, falling back to SQLite at " + path)
	return sqlite.Open(path)
}

func usingPostgres() bool {
	return DB != nil && DB.Dialector.Name() == "postgres"
}

// autoMigrate runs auto migration for all models in dependency stages.
func autoMigrate() error {
	// Stage 1: foundation models with no inbound references
	stage1Models := []interface{}{
		&user.User{},
		&blog.Category{},
		&catalog.Package{},
		&catalog.Hotel{},
	}

	for _, model := range stage1Models {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Stage 2: child tables and models referencing stage 1
	stage2Models := []interface{}{
		&catalog.PackageFeature{},
		&catalog.PackageItineraryDay{},
		&catalog.HotelAmenity{},
		&blog.Post{},
		&inquiry.PackageQuoteInquiry{},
	}

	for _, model := range stage2Models {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Stage 3: standalone inquiry tables and logging
	remainingModels := []interface{}{
		&inquiry.ContactInquiry{},
		&inquiry.CorporateInquiry{},
		&inquiry.MICEInquiry{},
		&inquiry.StudentTravelInquiry{},
		&inquiry.NGOTravelInquiry{},
		&log.Log{},
	}

	for _, model := range remainingModels {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	return nil
}

// createIndexes creates additional indexes for better performance
func createIndexes() error {
	indexes := []struct {
		name string
		sql  string
	}{
		{"idx_packages_slug", "CREATE INDEX IF NOT EXISTS idx_packages_slug ON packages(slug)"},
		{"idx_packages_location", "CREATE INDEX IF NOT EXISTS idx_packages_location ON packages(location)"},
		{"idx_packages_active_created_at", "CREATE INDEX IF NOT EXISTS idx_packages_active_created_at ON packages(active, created_at)"},
		{"idx_hotels_slug", "CREATE INDEX IF NOT EXISTS idx_hotels_slug ON hotels(slug)"},
		{"idx_hotels_active_created_at", "CREATE INDEX IF NOT EXISTS idx_hotels_active_created_at ON hotels(active, created_at)"},
		{"idx_posts_slug", "CREATE INDEX IF NOT EXISTS idx_posts_slug ON posts(slug)"},
		{"idx_posts_pid", "CREATE INDEX IF NOT EXISTS idx_posts_pid ON posts(pid)"},
		{"idx_posts_status_created_at", "CREATE INDEX IF NOT EXISTS idx_posts_status_created_at ON posts(status, created_at)"},
		{"idx_categories_slug", "CREATE INDEX IF NOT EXISTS idx_categories_slug ON categories(slug)"},
		{"idx_logs_method", "CREATE INDEX IF NOT EXISTS idx_logs_method ON logs(method)"},
		{"idx_logs_status_code", "CREATE INDEX IF NOT EXISTS idx_logs_status_code ON logs(status_code)"},
		{"idx_logs_created_at", "CREATE INDEX IF NOT EXISTS idx_logs_created_at ON logs(created_at)"},
	}

	for _, index := range indexes {
		if err := DB.Exec(index.sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", index.name, err)
		}
	}

	return nil
}

// createForeignKeyConstraints creates foreign key constraints after auto migration
func createForeignKeyConstraints() error {
	constraints := []struct {
		name string
		sql  string
	}{
		{
			name: "fk_posts_user",
			sql: `ALTER TABLE posts ADD CONSTRAINT fk_posts_user
				  FOREIGN KEY (user_id) REFERENCES users(id)
				  ON UPDATE CASCADE ON DELETE SET NULL`,
		},
		{
			name: "fk_posts_category",
			sql: `ALTER TABLE posts ADD CONSTRAINT fk_posts_category
				  FOREIGN KEY (category_id) REFERENCES categories(id)
				  ON UPDATE CASCADE ON DELETE SET NULL`,
		},
		{
			name: "fk_package_quote_inquiries_package",
			sql: `ALTER TABLE package_quote_inquiries ADD CONSTRAINT fk_package_quote_inquiries_package
				  FOREIGN KEY (package_id) REFERENCES packages(id)
				  ON UPDATE CASCADE ON DELETE SET NULL`,
		},
	}

	for _, constraint := range constraints {
		// Check if constraint already exists
		var exists bool
		checkSQL := `
			SELECT EXISTS (
				SELECT 1 FROM information_schema.table_constraints
				WHERE constraint_name = $1
			)
		`

		err := DB.Raw(checkSQL, constraint.name).Scan(&exists).Error
		if err != nil {
			logger.Warning(fmt.Sprintf("Failed to check constraint existence: %s - Error: %v", constraint.name, err))
			continue
		}

		if !exists {
			if err := DB.Exec(constraint.sql).Error; err != nil {
				logger.Warning(fmt.Sprintf("Failed to create constraint: %s - Error: %v", constraint.name, err))
			} else {
				logger.Success(fmt.Sprintf("Successfully created constraint: %s", constraint.name))
			}
		} else {
			logger.Debug(fmt.Sprintf("Constraint already exists: %s", constraint.name))
		}
	}

	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}
