package mock

import (
	"context"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"merchdesk/internal/db"
	applog "merchdesk/internal/log"
)

// Demo credentials seeded into the mock database.
const (
	AdminEmail    = "admin@merchdesk.test"
	AdminName     = "Store Admin"
	AdminPassword = "merchdesk"
)

// New returns an in-memory sqlite database seeded with a demo administrator.
func New(ctx context.Context) (*gorm.DB, error) {
	applog.Debug(ctx, "initialising mock database")

	database, err := gorm.Open(sqlite.Open("file:merchdesk-mock?mode=memory&cache=shared"), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		PrepareStmt:            true,
		SkipDefaultTransaction: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(database); err != nil {
		return nil, err
	}

	if _, err := db.EnsureAdmin(ctx, database, AdminEmail, AdminName, AdminPassword); err != nil {
		return nil, err
	}

	applog.Debug(ctx, "mock database ready")
	return database, nil
}
