package db

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"merchdesk/internal/config"
	"merchdesk/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestInitializeRequiresURL(t *testing.T) {
	t.Parallel()

	db, err := Initialize(config.DatabaseConfig{URL: ""})
	if err == nil {
		t.Fatal("expected error when database URL is empty")
	}
	if db != nil {
		t.Fatal("expected returned db handle to be nil on error")
	}
}

func TestAutoMigrateRejectsNilDatabase(t *testing.T) {
	t.Parallel()

	if err := AutoMigrate(nil); err == nil {
		t.Fatal("expected error when database handle is nil")
	}
}

func TestAutoMigrateWithSQLite(t *testing.T) {
	t.Parallel()

	sqliteDB, err := gorm.Open(sqlite.Open("file:memdb?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite database: %v", err)
	}

	if err := AutoMigrate(sqliteDB); err != nil {
		t.Fatalf("automigrate sqlite database: %v", err)
	}
}

func TestConfigurePropagatesInitializationError(t *testing.T) {
	t.Parallel()

	if _, err := Configure(config.DatabaseConfig{}); err == nil {
		t.Fatal("expected configuration error when initialize fails")
	}
}

func TestMustConfigurePanicsOnError(t *testing.T) {
	t.Parallel()

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic when configuration fails")
		}
	}()

	MustConfigure(config.DatabaseConfig{})
}

func TestEnsureAdminIsIdempotent(t *testing.T) {
	t.Parallel()

	sqliteDB, err := gorm.Open(sqlite.Open("file:ensureadmin?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite database: %v", err)
	}
	if err := AutoMigrate(sqliteDB); err != nil {
		t.Fatalf("automigrate sqlite database: %v", err)
	}

	ctx := context.Background()
	first, err := EnsureAdmin(ctx, sqliteDB, " Admin@Example.com ", "Store Admin", "correct-horse")
	if err != nil {
		t.Fatalf("EnsureAdmin() error = %v", err)
	}
	if first.Email != "admin@example.com" {
		t.Fatalf("expected normalized email, got %q", first.Email)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(first.PasswordHash), []byte("correct-horse")); err != nil {
		t.Fatalf("unexpected password hash: %v", err)
	}

	second, err := EnsureAdmin(ctx, sqliteDB, "admin@example.com", "Other", "different-password")
	if err != nil {
		t.Fatalf("EnsureAdmin() second call error = %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("expected existing admin to be returned, got id %d want %d", second.ID, first.ID)
	}

	var count int64
	if err := sqliteDB.Model(&models.User{}).Count(&count).Error; err != nil {
		t.Fatalf("count users: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected one admin account, got %d", count)
	}
}

func TestEnsureAdminRequiresCredentials(t *testing.T) {
	t.Parallel()

	if _, err := EnsureAdmin(context.Background(), nil, "a@example.com", "", "pw"); err == nil {
		t.Fatal("expected error for nil database")
	}
}
