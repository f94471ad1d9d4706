package database

import (
	"fmt"
	"log"
	"time"

	"github.com/grigorishin/course-platform-api/config"
	"github.com/grigorishin/course-platform-api/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Storage is the contract the rest of the app has with the database layer.
type Storage interface {
	Init() error
	Close() error
	HealthCheck() error
	DB() *gorm.DB
}

type GORMStore struct {
	db *gorm.DB
}

// StartGORM initializes a GORM connection to PostgreSQL
func StartGORM() (*GORMStore, error) {
	getEnv, err := config.Get()
	if err != nil {
		return nil, err
	}

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		getEnv.DB_HOST,
		getEnv.DB_USER_NAME,
		getEnv.DB_PASSWORD,
		getEnv.DB_NAME,
		getEnv.DB_PORT,
		getEnv.DB_SSL_MODE,
	)

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

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// Connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Println("Successfully connected to PostgreSQL Database with GORM.")

	return &GORMStore{db: db}, nil
}

// Init registers the enrollment join tables and runs AutoMigrate.
func (s *GORMStore) Init() error {
	log.Println("Running GORM AutoMigrate for all models...")

	if err := Migrate(s.db); err != nil {
		log.Println("Error running AutoMigrate:", err)
		return err
	}

	log.Println("GORM AutoMigrate completed successfully!")
	return nil
}

// Migrate sets up join tables and migrates the schema on the given
// connection. Split out so tests can run it against their own store.
func Migrate(db *gorm.DB) error {
	// Join tables keep a surrogate id column, so register explicit models.
	if err := db.SetupJoinTable(&model.User{}, "Courses", &model.UserCourse{}); err != nil {
		return err
	}
	if err := db.SetupJoinTable(&model.Course{}, "Users", &model.UserCourse{}); err != nil {
		return err
	}
	if err := db.SetupJoinTable(&model.Book{}, "Courses", &model.BookCourse{}); err != nil {
		return err
	}
	if err := db.SetupJoinTable(&model.Course{}, "Books", &model.BookCourse{}); err != nil {
		return err
	}

	return db.AutoMigrate(
		// Auth models
		&model.Role{},
		&model.User{},
		&model.PasswordResetToken{},
		&model.TokenBlacklist{},

		// Geography
		&model.CountryBlock{},
		&model.Country{},

		// Courses and enrollment
		&model.Course{},
		&model.UserCourse{},
		&model.Comment{},

		// Library
		&model.Book{},
		&model.BookCourse{},
		&model.LibraryPreview{},

		// Schedule
		&model.Schedule{},
	)
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

// DB returns the GORM DB instance for use in stores and handlers
func (s *GORMStore) DB() *gorm.DB {
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
