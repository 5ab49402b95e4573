package services

import (
	"time"

	"gorm.io/gorm"

	apperrors "phonebot/internal/errors"
	"phonebot/internal/models"
)

// statisticsService computes the admin dashboard counters.
type statisticsService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewStatisticsService creates a new StatisticsServicer.
func NewStatisticsService(db *gorm.DB) StatisticsServicer {
	return &statisticsService{db: db, now: time.Now}
}

// GetStatistics counts users, searches, active records and users seen since
// local midnight.
func (s *statisticsService) GetStatistics() (*Statistics, error) {
	var stats Statistics

	if err := s.db.Model(&models.BotUser{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.db.Model(&models.SearchHistory{}).Count(&stats.TotalSearches).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.db.Model(&models.PhoneRecord{}).
		Where("status = ?", models.RecordStatusActive).
		Count(&stats.DatabaseRecords).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.db.Model(&models.BotUser{}).
		Where("last_active >= ?", startOfDay(s.now())).
		Count(&stats.ActiveToday).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &stats, nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
