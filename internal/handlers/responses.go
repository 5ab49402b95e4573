package handlers

import (
	"time"

	"phonebot/internal/models"
)

const (
	dateLayout     = "02.01.2006"
	dateTimeLayout = "02.01.2006 15:04"
)

// PhoneRecordListItem is a row of the admin records table.
type PhoneRecordListItem struct {
	ID             uint                    `json:"id"`
	Phone          string                  `json:"phone"`
	Name           string                  `json:"name"`
	Info           string                  `json:"info"`
	AdditionalInfo []models.AdditionalInfo `json:"additional_info"`
	Status         models.RecordStatus     `json:"status"`
	CreatedAt      string                  `json:"created_at" example:"31.12.2025"`
}

// PhoneRecordResponse is returned by record create and update.
type PhoneRecordResponse struct {
	ID             uint                    `json:"id"`
	Phone          string                  `json:"phone"`
	Name           string                  `json:"name"`
	Info           string                  `json:"info"`
	AdditionalInfo []models.AdditionalInfo `json:"additional_info"`
	Status         models.RecordStatus     `json:"status"`
}

// BotUserListItem is a row of the admin users table.
type BotUserListItem struct {
	ID          uint              `json:"id"`
	TelegramID  int64             `json:"telegram_id"`
	Username    string            `json:"username"`
	FirstName   string            `json:"first_name"`
	LastName    string            `json:"last_name"`
	SearchCount int64             `json:"search_count"`
	Status      models.UserStatus `json:"status"`
	Joined      string            `json:"joined" example:"31.12.2025"`
	LastActive  string            `json:"last_active" example:"31.12.2025 23:59"`
}

// BotUserStatusResponse is returned by the user status update.
type BotUserStatusResponse struct {
	ID         uint              `json:"id"`
	TelegramID int64             `json:"telegram_id"`
	Username   string            `json:"username"`
	Status     models.UserStatus `json:"status"`
}

func additionalInfoOf(r *models.PhoneRecord) []models.AdditionalInfo {
	if r.AdditionalInfo == nil {
		return []models.AdditionalInfo{}
	}
	return r.AdditionalInfo
}

func newPhoneRecordListItems(records []models.PhoneRecord) []PhoneRecordListItem {
	items := make([]PhoneRecordListItem, 0, len(records))
	for i := range records {
		r := &records[i]
		items = append(items, PhoneRecordListItem{
			ID:             r.ID,
			Phone:          r.Phone,
			Name:           r.Name,
			Info:           r.Info,
			AdditionalInfo: additionalInfoOf(r),
			Status:         r.Status,
			CreatedAt:      formatLocal(r.CreatedAt, dateLayout),
		})
	}
	return items
}

func newPhoneRecordResponse(r *models.PhoneRecord) *PhoneRecordResponse {
	if r == nil {
		return nil
	}
	return &PhoneRecordResponse{
		ID:             r.ID,
		Phone:          r.Phone,
		Name:           r.Name,
		Info:           r.Info,
		AdditionalInfo: additionalInfoOf(r),
		Status:         r.Status,
	}
}

func newBotUserListItems(users []models.BotUser) []BotUserListItem {
	items := make([]BotUserListItem, 0, len(users))
	for i := range users {
		u := &users[i]
		items = append(items, BotUserListItem{
			ID:          u.ID,
			TelegramID:  u.TelegramID,
			Username:    u.Username,
			FirstName:   u.FirstName,
			LastName:    u.LastName,
			SearchCount: u.SearchCount,
			Status:      u.Status,
			Joined:      formatLocal(u.CreatedAt, dateLayout),
			LastActive:  formatLocal(u.LastActive, dateTimeLayout),
		})
	}
	return items
}

func newBotUserStatusResponse(u *models.BotUser) *BotUserStatusResponse {
	if u == nil {
		return nil
	}
	return &BotUserStatusResponse{
		ID:         u.ID,
		TelegramID: u.TelegramID,
		Username:   u.Username,
		Status:     u.Status,
	}
}

func formatLocal(t time.Time, layout string) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format(layout)
}
