package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/gecampus/apply-api/config"
	"github.com/gecampus/apply-api/model"
)

type GORMStore struct {
	db *gorm.DB
}

// createEnumsSQL provisions the Postgres enum types the applications table
// depends on. Each block is a no-op when the type already exists, so the
// whole script is safe to re-run on every startup.
const createEnumsSQL = `
	DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'university_name') THEN
			CREATE TYPE university_name AS ENUM ('Graphic Era Deemed to be University', 'Graphic Era Hill University');
		END IF;
	END $$;

	DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'active_backlogs') THEN
			CREATE TYPE active_backlogs AS ENUM ('none', '1 backlog', '2 or more backlogs');
		END IF;
	END $$;

	DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'graduation_plan') THEN
			CREATE TYPE graduation_plan AS ENUM ('Job/Placement', 'Further studies', 'Entrepreneurship/New Venture or Startup', 'Other');
		END IF;
	END $$;
`

// StartGORM initializes a GORM connection to PostgreSQL
func StartGORM() (*GORMStore, error) {
	getEnv, err := config.Get()
	if err != nil {
		return nil, err
	}

	// Build DSN (Data Source Name)
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		getEnv.DB_HOST,
		getEnv.DB_USER_NAME,
		getEnv.DB_PASSWORD,
		getEnv.DB_NAME,
		getEnv.DB_PORT,
		getEnv.DB_SSL_MODE,
	)

	// Configure GORM logger
	gormLogger := logger.Default.LogMode(logger.Info)
	if getEnv.GO_ENV == "production" {
		gormLogger = logger.Default.LogMode(logger.Error)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:      gormLogger,
		PrepareStmt: true,
	})
	if err != nil {
		log.Println("Unable to connect to PostgreSQL with GORM:", err)
		return nil, err
	}

	// Get underlying *sql.DB to configure connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// Submissions beyond the pool bound queue for a free connection
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Println("Successfully connected to PostgreSQL Database with GORM.")

	return &GORMStore{db: db}, nil
}

// Init provisions enum types, the applications table, and any additive
// column migrations. Idempotent; runs on every startup before the server
// accepts traffic.
func (s *GORMStore) Init() error {
	log.Println("Running schema migrations for applications...")

	if err := s.db.Exec(createEnumsSQL).Error; err != nil {
		log.Println("Error creating enum types:", err)
		return err
	}

	if err := s.db.AutoMigrate(&model.Application{}); err != nil {
		log.Println("Error running AutoMigrate:", err)
		return err
	}

	// resume_path arrived after the first release; tables created before
	// then are missing the column
	if !s.db.Migrator().HasColumn(&model.Application{}, "resume_path") {
		if err := s.db.Migrator().AddColumn(&model.Application{}, "ResumePath"); err != nil {
			log.Println("Error adding resume_path column:", err)
			return err
		}
	}

	log.Println("Schema migrations completed successfully!")
	return nil
}

// Close closes the database connection
func (s *GORMStore) Close() error {
	log.Println("Closing GORM PostgreSQL connection...")
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// GetDB returns the GORM DB instance for use in services/handlers
func (s *GORMStore) GetDB() interface{} {
	return s.db
}

// HealthCheck verifies the database connection is alive
func (s *GORMStore) HealthCheck() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// CreateApplication inserts one submitted application as a new row
func (s *GORMStore) CreateApplication(application *model.Application) error {
	result := s.db.Create(application)
	return result.Error
}

// ListResumePaths returns the resume paths of every stored application.
// Used by the orphaned upload sweeper to decide which files are referenced.
func (s *GORMStore) ListResumePaths() ([]string, error) {
	var paths []string
	err := s.db.Model(&model.Application{}).
		Where("resume_path IS NOT NULL").
		Pluck("resume_path", &paths).Error
	return paths, err
}
