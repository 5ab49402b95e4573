package testutil

import (
	"errors"
	"testing"

	apperrors "phonebot/internal/errors"
	"phonebot/internal/models"

	"gorm.io/gorm"
)

// AssertAppError checks that err is an *AppError with the expected error code.
func AssertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError with code %q, got nil", expectedCode)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}

	if appErr.Code != expectedCode {
		t.Errorf("expected error code %q, got %q (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// CountSearches returns the number of search history rows for a user.
func CountSearches(t *testing.T, db *gorm.DB, userID uint) int64 {
	t.Helper()

	var count int64
	if err := db.Model(&models.SearchHistory{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		t.Fatalf("failed to count searches: %v", err)
	}
	return count
}

// ReloadBotUser fetches the current row of a bot user by Telegram ID.
func ReloadBotUser(t *testing.T, db *gorm.DB, telegramID int64) *models.BotUser {
	t.Helper()

	var users []models.BotUser
	if err := db.Where("telegram_id = ?", telegramID).Find(&users).Error; err != nil {
		t.Fatalf("failed to load bot user: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected exactly one bot user for telegram id %d, got %d", telegramID, len(users))
	}
	return &users[0]
}
