package services

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	apperrors "phonebot/internal/errors"
	"phonebot/internal/models"
	"phonebot/internal/phone"
)

const startCommand = "/start"

// botService turns Telegram updates into directory lookups and replies.
type botService struct {
	users    BotUserServicer
	records  PhoneRecordServicer
	notifier Notifier
}

// NewBotService creates a new BotServicer. A nil notifier means no bot token
// is configured and every update is rejected.
func NewBotService(users BotUserServicer, records PhoneRecordServicer, notifier Notifier) BotServicer {
	return &botService{users: users, records: records, notifier: notifier}
}

// Ready reports whether replies can be delivered.
func (s *botService) Ready() error {
	if s.notifier == nil {
		return apperrors.ErrBotNotConfigured
	}
	return nil
}

// HandleUpdate processes one webhook update. Updates without a message, or
// without a sender, are accepted and ignored.
func (s *botService) HandleUpdate(update *tgbotapi.Update) error {
	if err := s.Ready(); err != nil {
		return err
	}

	msg := update.Message
	if msg == nil || msg.From == nil || msg.Chat == nil {
		botUpdatesCounter.WithLabelValues("ignored").Inc()
		return nil
	}

	user, err := s.users.UpsertBotUser(models.TelegramIdentity{
		TelegramID: msg.From.ID,
		Username:   msg.From.UserName,
		FirstName:  msg.From.FirstName,
		LastName:   msg.From.LastName,
	})
	if err != nil {
		return err
	}

	chatID := msg.Chat.ID
	text := msg.Text

	if command, ok := commandOf(text); ok {
		if command == startCommand {
			botUpdatesCounter.WithLabelValues("start").Inc()
			s.notifier.Notify(chatID, welcomeMessage)
			return nil
		}
		botUpdatesCounter.WithLabelValues("help").Inc()
		s.notifier.Notify(chatID, helpMessage)
		return nil
	}

	botUpdatesCounter.WithLabelValues("search").Inc()
	return s.search(user.ID, chatID, text)
}

// search looks up the digits of text among active records, logs the attempt
// and replies. Queries with too few digits are answered without logging.
func (s *botService) search(userID uint, chatID int64, text string) error {
	if !phone.IsSearchable(text) {
		botSearchesCounter.WithLabelValues("invalid").Inc()
		s.notifier.Notify(chatID, invalidPhoneMessage)
		return nil
	}

	record, err := s.records.FindActiveByDigits(phone.Digits(text))
	if err != nil {
		return err
	}

	found := record != nil
	if err := s.users.RecordSearch(userID, text, found); err != nil {
		return err
	}

	if found {
		botSearchesCounter.WithLabelValues("found").Inc()
		s.notifier.Notify(chatID, foundMessage(record))
	} else {
		botSearchesCounter.WithLabelValues("not_found").Inc()
		s.notifier.Notify(chatID, notFoundMessage(text))
	}
	return nil
}

// commandOf returns the command word of a slash command, without any
// "@botname" suffix Telegram appends in group chats.
func commandOf(text string) (string, bool) {
	if !strings.HasPrefix(text, "/") {
		return "", false
	}
	command := strings.Fields(text)[0]
	if i := strings.IndexByte(command, '@'); i > 0 {
		command = command[:i]
	}
	return command, true
}
