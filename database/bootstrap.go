package database

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/lib/pq"

	"github.com/gecampus/apply-api/config"
)

// EnsureDatabase connects to the postgres maintenance database and creates
// the target database when it does not exist yet. It runs before the GORM
// store is opened, so the application database never needs to be provisioned
// by hand.
func EnsureDatabase() error {
	getEnv, err := config.Get()
	if err != nil {
		return err
	}

	connectStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=postgres sslmode=%s",
		getEnv.DB_HOST,
		getEnv.DB_PORT,
		getEnv.DB_USER_NAME,
		getEnv.DB_PASSWORD,
		getEnv.DB_SSL_MODE,
	)

	db, err := sql.Open("postgres", connectStr)
	if err != nil {
		return err
	}
	defer db.Close()

	return ensureDatabase(db, getEnv.DB_NAME)
}

// ensureDatabase takes the maintenance connection as an argument so the
// check-then-create logic can be exercised against a mock handle.
func ensureDatabase(db *sql.DB, name string) error {
	var one int
	err := db.QueryRow(`SELECT 1 FROM pg_database WHERE datname = $1`, name).Scan(&one)
	if err == sql.ErrNoRows {
		log.Printf("Database %s does not exist, creating it", name)
		// CREATE DATABASE cannot be parameterized; quote the identifier instead
		_, err = db.Exec(fmt.Sprintf("CREATE DATABASE %s", pq.QuoteIdentifier(name)))
		return err
	}
	return err
}
