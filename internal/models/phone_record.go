package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"phonebot/internal/phone"
)

// RecordStatus represents the lifecycle state of a phone record
type RecordStatus string

const (
	RecordStatusActive   RecordStatus = "active"
	RecordStatusInactive RecordStatus = "inactive"
)

// Valid reports whether s is a known record status.
func (s RecordStatus) Valid() bool {
	switch s {
	case RecordStatusActive, RecordStatusInactive:
		return true
	}
	return false
}

// AdditionalInfo is a free-form labelled fact attached to a phone record
type AdditionalInfo struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// PhoneRecord represents an entry of the lookup directory
type PhoneRecord struct {
	Base
	Phone          string                              `gorm:"not null" json:"phone"`
	PhoneDigits    string                              `gorm:"index;not null;default:''" json:"-"`
	Name           string                              `gorm:"not null" json:"name"`
	Info           string                              `gorm:"not null;default:''" json:"info"`
	AdditionalInfo datatypes.JSONSlice[AdditionalInfo] `json:"additional_info"`
	Status         RecordStatus                        `gorm:"not null;default:'active';index" json:"status"`
	UpdatedAt      time.Time                           `json:"updated_at"`
}

// BeforeCreate hook derives the digits-only copy used by bot lookups
func (r *PhoneRecord) BeforeCreate(tx *gorm.DB) error {
	if r.PhoneDigits == "" {
		r.PhoneDigits = phone.Digits(r.Phone)
	}
	if r.AdditionalInfo == nil {
		r.AdditionalInfo = datatypes.JSONSlice[AdditionalInfo]{}
	}
	return nil
}
