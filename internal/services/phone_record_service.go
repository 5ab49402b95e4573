package services

import (
	"errors"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	apperrors "phonebot/internal/errors"
	"phonebot/internal/models"
	"phonebot/internal/pagination"
	"phonebot/internal/phone"
)

// phoneRecordService handles the lookup directory.
type phoneRecordService struct {
	db *gorm.DB
}

// NewPhoneRecordService creates a new PhoneRecordServicer.
func NewPhoneRecordService(db *gorm.DB) PhoneRecordServicer {
	return &phoneRecordService{db: db}
}

// ListPhoneRecords returns records newest first, optionally filtered by a
// substring of the phone or a case-insensitive substring of the name.
func (s *phoneRecordService) ListPhoneRecords(search string, page pagination.PageRequest) ([]models.PhoneRecord, error) {
	query := s.db.Model(&models.PhoneRecord{})
	if search != "" {
		query = query.Where(`phone LIKE ? ESCAPE '\' OR LOWER(name) LIKE ? ESCAPE '\'`,
			containsPattern(search), containsPattern(strings.ToLower(search)))
	}

	var records []models.PhoneRecord
	if err := query.Order("id DESC").Scopes(pagination.Paginate(page)).Find(&records).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return records, nil
}

// CreatePhoneRecord inserts a new record. New records are always active.
func (s *phoneRecordService) CreatePhoneRecord(phoneNumber, name, info string, additional []models.AdditionalInfo) (*models.PhoneRecord, error) {
	if additional == nil {
		additional = []models.AdditionalInfo{}
	}

	record := &models.PhoneRecord{
		Phone:          phoneNumber,
		PhoneDigits:    phone.Digits(phoneNumber),
		Name:           name,
		Info:           info,
		AdditionalInfo: datatypes.JSONSlice[models.AdditionalInfo](additional),
		Status:         models.RecordStatusActive,
	}

	if err := s.db.Create(record).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return record, nil
}

// UpdatePhoneRecord overwrites every editable field of an existing record and
// refreshes updated_at. A nil additional slice leaves the stored list as is.
func (s *phoneRecordService) UpdatePhoneRecord(id uint, phoneNumber, name, info string, status models.RecordStatus, additional []models.AdditionalInfo) (*models.PhoneRecord, error) {
	updates := map[string]interface{}{
		"phone":        phoneNumber,
		"phone_digits": phone.Digits(phoneNumber),
		"name":         name,
		"info":         info,
		"status":       status,
	}
	if additional != nil {
		updates["additional_info"] = datatypes.JSONSlice[models.AdditionalInfo](additional)
	}

	var updated *models.PhoneRecord
	err := s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.PhoneRecord{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}

		var record models.PhoneRecord
		if err := tx.First(&record, id).Error; err != nil {
			return err
		}
		updated = &record
		return nil
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return updated, nil
}

// FindActiveByDigits returns the first active record whose normalized phone
// contains digits, or nil when there is none.
func (s *phoneRecordService) FindActiveByDigits(digits string) (*models.PhoneRecord, error) {
	var record models.PhoneRecord
	err := s.db.
		Where(`phone_digits LIKE ? ESCAPE '\' AND status = ?`, containsPattern(digits), models.RecordStatusActive).
		Order("id ASC").
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &record, nil
}
