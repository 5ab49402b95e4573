package services

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"phonebot/internal/models"
	"phonebot/internal/pagination"
)

// PhoneRecordServicer defines the contract for the lookup directory.
// Update and lookup return a nil record and a nil error when nothing matches.
type PhoneRecordServicer interface {
	ListPhoneRecords(search string, page pagination.PageRequest) ([]models.PhoneRecord, error)
	CreatePhoneRecord(phone, name, info string, additional []models.AdditionalInfo) (*models.PhoneRecord, error)
	UpdatePhoneRecord(id uint, phone, name, info string, status models.RecordStatus, additional []models.AdditionalInfo) (*models.PhoneRecord, error)
	FindActiveByDigits(digits string) (*models.PhoneRecord, error)
}

// BotUserServicer defines the contract for the bot user roster.
type BotUserServicer interface {
	ListBotUsers(search string, page pagination.PageRequest) ([]models.BotUser, error)
	UpdateBotUserStatus(id uint, status models.UserStatus) (*models.BotUser, error)
	UpsertBotUser(identity models.TelegramIdentity) (*models.BotUser, error)
	RecordSearch(userID uint, query string, found bool) error
}

// Statistics contains the dashboard counters.
type Statistics struct {
	TotalUsers      int64 `json:"totalUsers"`
	TotalSearches   int64 `json:"totalSearches"`
	DatabaseRecords int64 `json:"databaseRecords"`
	ActiveToday     int64 `json:"activeToday"`
}

// StatisticsServicer defines the contract for dashboard aggregates.
type StatisticsServicer interface {
	GetStatistics() (*Statistics, error)
}

// Notifier delivers bot replies to a chat. Delivery is best-effort:
// implementations must not block on the network and never report failures
// to the caller, so a failed send can not change the webhook response.
type Notifier interface {
	Notify(chatID int64, text string)
}

// BotServicer defines the contract for processing Telegram webhook updates.
type BotServicer interface {
	Ready() error
	HandleUpdate(update *tgbotapi.Update) error
}
