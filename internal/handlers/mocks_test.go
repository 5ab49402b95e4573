package handlers

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"phonebot/internal/dedup"
	"phonebot/internal/models"
	"phonebot/internal/pagination"
	"phonebot/internal/services"
)

// --- mock phone record service ---

type mockPhoneRecordService struct {
	listPhoneRecordsFn   func(search string, page pagination.PageRequest) ([]models.PhoneRecord, error)
	createPhoneRecordFn  func(phone, name, info string, additional []models.AdditionalInfo) (*models.PhoneRecord, error)
	updatePhoneRecordFn  func(id uint, phone, name, info string, status models.RecordStatus, additional []models.AdditionalInfo) (*models.PhoneRecord, error)
	findActiveByDigitsFn func(digits string) (*models.PhoneRecord, error)
}

func (m *mockPhoneRecordService) ListPhoneRecords(search string, page pagination.PageRequest) ([]models.PhoneRecord, error) {
	if m.listPhoneRecordsFn != nil {
		return m.listPhoneRecordsFn(search, page)
	}
	return []models.PhoneRecord{}, nil
}

func (m *mockPhoneRecordService) CreatePhoneRecord(phone, name, info string, additional []models.AdditionalInfo) (*models.PhoneRecord, error) {
	if m.createPhoneRecordFn != nil {
		return m.createPhoneRecordFn(phone, name, info, additional)
	}
	return &models.PhoneRecord{}, nil
}

func (m *mockPhoneRecordService) UpdatePhoneRecord(id uint, phone, name, info string, status models.RecordStatus, additional []models.AdditionalInfo) (*models.PhoneRecord, error) {
	if m.updatePhoneRecordFn != nil {
		return m.updatePhoneRecordFn(id, phone, name, info, status, additional)
	}
	return &models.PhoneRecord{}, nil
}

func (m *mockPhoneRecordService) FindActiveByDigits(digits string) (*models.PhoneRecord, error) {
	if m.findActiveByDigitsFn != nil {
		return m.findActiveByDigitsFn(digits)
	}
	return nil, nil
}

// --- mock bot user service ---

type mockBotUserService struct {
	listBotUsersFn        func(search string, page pagination.PageRequest) ([]models.BotUser, error)
	updateBotUserStatusFn func(id uint, status models.UserStatus) (*models.BotUser, error)
	upsertBotUserFn       func(identity models.TelegramIdentity) (*models.BotUser, error)
	recordSearchFn        func(userID uint, query string, found bool) error
}

func (m *mockBotUserService) ListBotUsers(search string, page pagination.PageRequest) ([]models.BotUser, error) {
	if m.listBotUsersFn != nil {
		return m.listBotUsersFn(search, page)
	}
	return []models.BotUser{}, nil
}

func (m *mockBotUserService) UpdateBotUserStatus(id uint, status models.UserStatus) (*models.BotUser, error) {
	if m.updateBotUserStatusFn != nil {
		return m.updateBotUserStatusFn(id, status)
	}
	return &models.BotUser{}, nil
}

func (m *mockBotUserService) UpsertBotUser(identity models.TelegramIdentity) (*models.BotUser, error) {
	if m.upsertBotUserFn != nil {
		return m.upsertBotUserFn(identity)
	}
	return &models.BotUser{}, nil
}

func (m *mockBotUserService) RecordSearch(userID uint, query string, found bool) error {
	if m.recordSearchFn != nil {
		return m.recordSearchFn(userID, query, found)
	}
	return nil
}

// --- mock statistics service ---

type mockStatisticsService struct {
	getStatisticsFn func() (*services.Statistics, error)
}

func (m *mockStatisticsService) GetStatistics() (*services.Statistics, error) {
	if m.getStatisticsFn != nil {
		return m.getStatisticsFn()
	}
	return &services.Statistics{}, nil
}

// --- mock bot service ---

type mockBotService struct {
	readyFn        func() error
	handleUpdateFn func(update *tgbotapi.Update) error
}

func (m *mockBotService) Ready() error {
	if m.readyFn != nil {
		return m.readyFn()
	}
	return nil
}

func (m *mockBotService) HandleUpdate(update *tgbotapi.Update) error {
	if m.handleUpdateFn != nil {
		return m.handleUpdateFn(update)
	}
	return nil
}

// --- mock update guard ---

type mockUpdateGuard struct {
	claimFn   func(ctx context.Context, updateID int) (bool, error)
	releaseFn func(ctx context.Context, updateID int) error
}

func (m *mockUpdateGuard) Claim(ctx context.Context, updateID int) (bool, error) {
	if m.claimFn != nil {
		return m.claimFn(ctx, updateID)
	}
	return true, nil
}

func (m *mockUpdateGuard) Release(ctx context.Context, updateID int) error {
	if m.releaseFn != nil {
		return m.releaseFn(ctx, updateID)
	}
	return nil
}

// verify interface compliance
var (
	_ services.PhoneRecordServicer = (*mockPhoneRecordService)(nil)
	_ services.BotUserServicer     = (*mockBotUserService)(nil)
	_ services.StatisticsServicer  = (*mockStatisticsService)(nil)
	_ services.BotServicer         = (*mockBotService)(nil)
	_ dedup.UpdateGuard            = (*mockUpdateGuard)(nil)
)
