package config

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnectDB opens the Postgres connection. The client is returned, not
// stored in a package variable; main passes it into the route setup.
func ConnectDB() (*gorm.DB, error) {
	dsn := GetEnv("DATABASE_URL")
	if dsn == "" {
		dsn = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
			GetEnv("DB_HOST"),
			GetEnv("DB_USER"),
			GetEnv("DB_PASSWORD"),
			GetEnvDefault("DB_NAME", "checkins"),
			GetEnvDefault("DB_PORT", "5432"),
			GetEnvDefault("DB_SSLMODE", "require"),
			GetEnvDefault("APP_TIMEZONE", "UTC"),
		)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}
	return db, nil
}
