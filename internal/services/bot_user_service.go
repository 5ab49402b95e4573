package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "phonebot/internal/errors"
	"phonebot/internal/models"
	"phonebot/internal/pagination"
)

// botUserService handles the roster of Telegram users.
type botUserService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewBotUserService creates a new BotUserServicer.
func NewBotUserService(db *gorm.DB) BotUserServicer {
	return &botUserService{db: db, now: time.Now}
}

// ListBotUsers returns users most recently active first, optionally filtered
// by a case-insensitive substring of username, first or last name.
func (s *botUserService) ListBotUsers(search string, page pagination.PageRequest) ([]models.BotUser, error) {
	query := s.db.Model(&models.BotUser{})
	if search != "" {
		pattern := containsPattern(strings.ToLower(search))
		query = query.Where(`LOWER(username) LIKE ? ESCAPE '\' OR LOWER(first_name) LIKE ? ESCAPE '\' OR LOWER(last_name) LIKE ? ESCAPE '\'`,
			pattern, pattern, pattern)
	}

	var users []models.BotUser
	if err := query.Order("last_active DESC").Scopes(pagination.Paginate(page)).Find(&users).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return users, nil
}

// UpdateBotUserStatus sets the moderation status of a user, returning nil
// when the user does not exist.
func (s *botUserService) UpdateBotUserStatus(id uint, status models.UserStatus) (*models.BotUser, error) {
	var user models.BotUser
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.db.Model(&user).Update("status", status).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	user.Status = status
	return &user, nil
}

// UpsertBotUser registers a sender on first contact and refreshes the name
// fields and last_active afterwards. The insert-or-update is one statement so
// concurrent first messages from the same user can not create two rows;
// search_count, status and created_at are never touched on conflict.
func (s *botUserService) UpsertBotUser(identity models.TelegramIdentity) (*models.BotUser, error) {
	user := &models.BotUser{
		TelegramID: identity.TelegramID,
		Username:   identity.Username,
		FirstName:  identity.FirstName,
		LastName:   identity.LastName,
		Status:     models.UserStatusActive,
		LastActive: s.now(),
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "telegram_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"username", "first_name", "last_name", "last_active"}),
	}).Create(user).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var stored models.BotUser
	if err := s.db.Where("telegram_id = ?", identity.TelegramID).First(&stored).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &stored, nil
}

// RecordSearch appends a search history row and bumps the user's counter
// in a single transaction.
func (s *botUserService) RecordSearch(userID uint, query string, found bool) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		entry := &models.SearchHistory{
			UserID: userID,
			Phone:  query,
			Found:  found,
		}
		if err := tx.Create(entry).Error; err != nil {
			return err
		}

		return tx.Model(&models.BotUser{}).
			Where("id = ?", userID).
			UpdateColumn("search_count", gorm.Expr("search_count + ?", 1)).Error
	})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
