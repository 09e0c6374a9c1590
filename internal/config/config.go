package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/THANH290803/companyName/internal/models"
)

type Config struct {
	PORT          string
	DB_HOST       string
	DB_PORT       string
	DB_USER       string
	DB_PASSWORD   string
	DB_NAME       string
	ES_URL        string
	ES_USER       string
	ES_PASSWORD   string
	JWT_SECRET    string
	TOKEN_TTL     time.Duration
	KAFKA_ADDRESS string
	LOG_LEVEL     string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	config := &Config{
		PORT:          EnvDefault("PORT", "8080"),
		DB_HOST:       os.Getenv("DB_HOST"),
		DB_PORT:       os.Getenv("DB_PORT"),
		DB_USER:       os.Getenv("DB_USER"),
		DB_PASSWORD:   os.Getenv("DB_PASSWORD"),
		DB_NAME:       os.Getenv("DB_NAME"),
		ES_URL:        os.Getenv("ES_URL"),
		ES_USER:       os.Getenv("ES_USER"),
		ES_PASSWORD:   os.Getenv("ES_PASSWORD"),
		JWT_SECRET:    os.Getenv("JWT_SECRET"),
		TOKEN_TTL:     EnvDurationDefault("TOKEN_TTL", time.Hour),
		KAFKA_ADDRESS: os.Getenv("KAFKA_ADDRESS"),
		LOG_LEVEL:     EnvDefault("LOG_LEVEL", "info"),
	}

	return config, nil
}

func EnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func EnvDurationDefault(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

// MustNonEmpty hard-fails startup when a required env is missing. The
// signing secret in particular must never fall back to a default.
func MustNonEmpty(value, envName string) {
	if value == "" {
		log.Fatalf("missing required env %s", envName)
	}
}

func InitDB() (*gorm.DB, error) {
	configuration, _ := LoadConfig()

	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		configuration.DB_USER,
		configuration.DB_PASSWORD,
		configuration.DB_HOST,
		configuration.DB_PORT,
		configuration.DB_NAME,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("db connect failed: %w", err)
	}
	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	return db, nil
}

// Migrate creates the schema, including the unique indexes that back the
// duplicate-email and duplicate-name checks at the storage level.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Role{},
		&models.Company{},
		&models.Department{},
		&models.Team{},
		&models.User{},
		&models.Project{},
		&models.TaskStatus{},
		&models.TaskApprovalStatus{},
		&models.TaskStage{},
		&models.Task{},
		&models.TaskPermission{},
		&models.TaskMessage{},
	)
}
