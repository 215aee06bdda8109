package models

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// DB is the database used by the backend.
var DB *gorm.DB

// Connect opens the SQLite database, migrates the schema, seeds the
// default categories and configures the connection pool.
func Connect(dsn string) error {
	config := &gorm.Config{
		Logger: &logger{
			Logger: log.Logger,
		},
	}

	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("%s?_pragma=foreign_keys(1)", dsn)), config)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	err = migrate(db)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// A single connection prevents SQLITE_BUSY errors
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	// Callbacks rewriting raw database errors into user facing ones
	err = errors.Join(
		db.Callback().Query().After("*").Register("spendlens:after_query", queryCallback),
		db.Callback().Query().After("*").Register("spendlens:after_query_general", generalCallback),
		db.Callback().Create().After("*").Register("spendlens:after_create", createUpdateCallback),
		db.Callback().Create().After("*").Register("spendlens:after_create_general", generalCallback),
		db.Callback().Update().After("*").Register("spendlens:after_update", createUpdateCallback),
		db.Callback().Update().After("*").Register("spendlens:after_update_general", generalCallback),
		db.Callback().Delete().After("*").Register("spendlens:after_delete_general", generalCallback),
	)
	if err != nil {
		return fmt.Errorf("error registering database callbacks: %w", err)
	}

	DB = db

	return seedCategories(db)
}

// queryCallback rewrites gorm's generic "record not found" error into a
// message naming the resource.
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		// The table name doubles as the resource name, singularized:
		// "categories" becomes "category", "transactions" becomes
		// "transaction"
		name := strings.ReplaceAll(db.Statement.Table, "_", " ")
		name = regexp.MustCompile("ies$").ReplaceAllString(name, "y")
		name = strings.TrimRight(name, "s")

		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, name)
	}
}

// createUpdateCallback maps unique constraint violations on create and
// update calls to the matching sentinel errors.
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	if strings.Contains(db.Error.Error(), "UNIQUE constraint failed: users.email") {
		db.Error = ErrEmailNotUnique
	}

	if strings.Contains(db.Error.Error(), "UNIQUE constraint failed: categories.name") {
		db.Error = ErrCategoryNameNotUnique
	}
}

// generalCallback handles errors that have no helpful representation
// for API clients: the original error is logged for debugging and
// replaced with a general message.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	// "sql: database is closed" is hard-coded in database/sql and has
	// no exported sentinel to match against
	if db.Error.Error() == "sql: database is closed" || reflect.TypeOf(db.Error) == reflect.TypeOf(&go_sqlite.Error{}) {
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = ErrGeneral
	}
}

// migrate brings the schema up to date with the models.
func migrate(db *gorm.DB) error {
	err := db.AutoMigrate(User{}, Category{}, Transaction{}, Upload{})
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	return nil
}

// seedCategories creates the default categories if they do not exist yet.
// Categories are reference data shared by all users.
func seedCategories(db *gorm.DB) error {
	for _, category := range DefaultCategories() {
		err := db.Where(Category{Name: category.Name}).FirstOrCreate(&category).Error
		if err != nil {
			return fmt.Errorf("error seeding category %q: %w", category.Name, err)
		}
	}

	return nil
}
