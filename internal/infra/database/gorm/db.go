package gorm

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"todo-api/pkg/resource"
)

const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

// NewDB opens the database selected by app.db.dialect.
func NewDB() (*gorm.DB, error) {
	dialector, err := Dialector(resource.GetStringWithDefault("app.db.dialect", DialectPostgres))
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("fail to connect database: %w", err)
	}
	return db, nil
}

// Dialector builds the gorm dialector for dialect from app.db.* properties.
func Dialector(dialect string) (gorm.Dialector, error) {
	switch dialect {
	case DialectPostgres:
		return postgres.Open(PostgresDSN()), nil
	case DialectSQLite:
		return sqlite.Open(resource.GetStringWithDefault("app.db.sqlite-path", "todo.db")), nil
	default:
		return nil, fmt.Errorf("unsupported database dialect %q", dialect)
	}
}

func PostgresDSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable search_path=%s",
		resource.GetString("app.db.host"),
		resource.GetString("app.db.username"),
		resource.GetString("app.db.password"),
		resource.GetString("app.db.database"),
		resource.GetString("app.db.port"),
		resource.GetString("app.db.schema"))
}
