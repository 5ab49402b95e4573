package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"phonebot/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestPhoneRecord creates an active record for the given phone number.
func CreateTestPhoneRecord(t *testing.T, db *gorm.DB, phone string) *models.PhoneRecord {
	t.Helper()
	return CreateTestPhoneRecordWithStatus(t, db, phone, models.RecordStatusActive)
}

// CreateTestPhoneRecordWithStatus creates a record with the given status.
func CreateTestPhoneRecordWithStatus(t *testing.T, db *gorm.DB, phone string, status models.RecordStatus) *models.PhoneRecord {
	t.Helper()

	n := nextID()
	record := &models.PhoneRecord{
		Phone:  phone,
		Name:   fmt.Sprintf("Test Person %d", n),
		Info:   fmt.Sprintf("Test info %d", n),
		Status: status,
	}
	if err := db.Create(record).Error; err != nil {
		t.Fatalf("failed to create test phone record: %v", err)
	}
	return record
}

// CreateTestBotUser creates a bot user with a unique Telegram ID.
func CreateTestBotUser(t *testing.T, db *gorm.DB) *models.BotUser {
	t.Helper()

	n := nextID()
	return CreateTestBotUserWithNames(t, db, 100000+n, fmt.Sprintf("user%d", n), "Test", fmt.Sprintf("User%d", n))
}

// CreateTestBotUserWithNames creates a bot user with the given identity.
func CreateTestBotUserWithNames(t *testing.T, db *gorm.DB, telegramID int64, username, firstName, lastName string) *models.BotUser {
	t.Helper()

	user := &models.BotUser{
		TelegramID: telegramID,
		Username:   username,
		FirstName:  firstName,
		LastName:   lastName,
		Status:     models.UserStatusActive,
		LastActive: time.Now(),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test bot user: %v", err)
	}
	return user
}

// CreateTestSearch appends a search history row for the user.
func CreateTestSearch(t *testing.T, db *gorm.DB, userID uint, query string, found bool) *models.SearchHistory {
	t.Helper()

	entry := &models.SearchHistory{UserID: userID, Phone: query, Found: found}
	if err := db.Create(entry).Error; err != nil {
		t.Fatalf("failed to create test search: %v", err)
	}
	return entry
}
