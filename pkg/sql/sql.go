// Package sql contains helpers for opening and migrating the postgres database.
package sql

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/soapboxsocial/stories/pkg/conf"
)

// Open opens a postgres connection using the config.
func Open(config conf.PostgresConf) (*sql.DB, error) {
	return sql.Open("postgres", DataSourceName(config))
}

// DataSourceName returns the libpq connection string for the config.
func DataSourceName(config conf.PostgresConf) string {
	ssl := config.SSL
	if ssl == "" {
		ssl = "disable"
	}

	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		config.Host, config.Port, config.User, config.Password, config.Database, ssl,
	)
}

// URL returns the connection string in URL form, as expected by the migrator.
func URL(config conf.PostgresConf) string {
	ssl := config.SSL
	if ssl == "" {
		ssl = "disable"
	}

	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		config.User, config.Password, config.Host, config.Port, config.Database, ssl,
	)
}
