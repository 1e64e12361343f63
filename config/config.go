package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// LoadENV loads variables from .env unless GO_ENV says we are past development
func LoadENV() error {
	goEnv := os.Getenv("GO_ENV")

	if goEnv == "" || goEnv == "development" {
		err := godotenv.Load()
		if err != nil {
			return err
		}
	}

	return nil
}

type EnvironmentVariable struct {
	GO_ENV       string
	DB_USER_NAME string
	DB_PASSWORD  string
	DB_NAME      string
	DB_HOST      string
	DB_PORT      string
	DB_SSL_MODE  string
	PORT         int
	// Extra CORS origins on top of the two localhost defaults, comma separated
	ALLOWED_ORIGINS string
	// Directory resumes are written to and served from
	UPLOAD_DIR   string
	CRON_ENABLED string
}

func Get() (*EnvironmentVariable, error) {

	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil {
		port = 4000
	}

	// Database defaults
	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		dbHost = "localhost"
	}

	dbPort := os.Getenv("DB_PORT")
	if dbPort == "" {
		dbPort = "5432"
	}

	dbUser := os.Getenv("DB_USER_NAME")
	if dbUser == "" {
		dbUser = "postgres"
	}

	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "form"
	}

	sslMode := os.Getenv("DB_SSL_MODE")
	if sslMode == "" {
		sslMode = "disable"
	}

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./uploads"
	}

	envVariables := &EnvironmentVariable{
		GO_ENV:          os.Getenv("GO_ENV"),
		DB_USER_NAME:    dbUser,
		DB_PASSWORD:     os.Getenv("DB_PASSWORD"),
		DB_NAME:         dbName,
		DB_HOST:         dbHost,
		DB_PORT:         dbPort,
		DB_SSL_MODE:     sslMode,
		PORT:            port,
		ALLOWED_ORIGINS: os.Getenv("ALLOWED_ORIGINS"),
		UPLOAD_DIR:      uploadDir,
		CRON_ENABLED:    os.Getenv("CRON_ENABLED"),
	}

	return envVariables, nil
}
