package mock

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"merchdesk/models"
)

func TestNewSeedsAdministrator(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db, err := New(ctx)
	if err != nil {
		t.Fatalf("mock database initialization failed: %v", err)
	}

	var user models.User
	if err := db.WithContext(ctx).Where("email = ?", AdminEmail).First(&user).Error; err != nil {
		t.Fatalf("query user: %v", err)
	}
	if user.Name != AdminName {
		t.Fatalf("unexpected admin name %q", user.Name)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(AdminPassword)); err != nil {
		t.Fatalf("unexpected password hash: %v", err)
	}
}
