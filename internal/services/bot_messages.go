package services

import (
	"html"
	"strings"
	"unicode/utf8"

	"phonebot/internal/models"
)

const (
	welcomeMessage = "👋 <b>Добро пожаловать в бот поиска информации!</b>\n\n" +
		"Отправьте мне номер телефона, и я найду информацию о нём в базе данных.\n\n" +
		"📱 Формат: +7 (999) 123-45-67 или 79991234567"

	helpMessage = "ℹ️ <b>Доступные команды:</b>\n\n" +
		"/start - Начать работу\n" +
		"/help - Показать помощь\n\n" +
		"Просто отправьте номер телефона для поиска!"

	invalidPhoneMessage = "❌ Некорректный номер телефона. Пожалуйста, введите номер в формате: +7 (999) 123-45-67"
)

// maxMessageRunes is Telegram's sendMessage text limit. Longer texts are
// rejected outright, so replies are clipped to fit.
const maxMessageRunes = 4096

// Per-field limits on stored values rendered into a reply, counted after
// HTML escaping. Together with the fixed text they stay well under
// maxMessageRunes, leaving the rest for additional info items.
const (
	maxPhoneRunes = 64
	maxNameRunes  = 256
	maxInfoRunes  = 2048
	maxLabelRunes = 128
	maxValueRunes = 512
	maxQueryRunes = 256
)

const ellipsis = "…"

// foundMessage renders a matched record. Stored values are escaped because
// replies are sent with HTML parse mode. Additional info items that would
// push the reply past maxMessageRunes are replaced by a trailing ellipsis.
func foundMessage(record *models.PhoneRecord) string {
	var b strings.Builder
	b.WriteString("✅ <b>Найдено совпадение!</b>\n\n")
	b.WriteString("📱 Телефон: <code>" + clipEscaped(record.Phone, maxPhoneRunes) + "</code>\n")
	b.WriteString("👤 Имя: " + clipEscaped(record.Name, maxNameRunes) + "\n")
	b.WriteString("📍 Информация: " + clipEscaped(record.Info, maxInfoRunes))

	used := utf8.RuneCountInString(b.String())
	omitted := "\n" + ellipsis
	for i, item := range record.AdditionalInfo {
		line := "\n• " + clipEscaped(item.Label, maxLabelRunes) + ": " + clipEscaped(item.Value, maxValueRunes)
		size := utf8.RuneCountInString(line)

		room := maxMessageRunes - used
		if i < len(record.AdditionalInfo)-1 {
			room -= utf8.RuneCountInString(omitted)
		}
		if size > room {
			b.WriteString(omitted)
			break
		}
		b.WriteString(line)
		used += size
	}
	return b.String()
}

func notFoundMessage(query string) string {
	return "❌ <b>Информация не найдена</b>\n\n" +
		"По номеру <code>" + clipEscaped(query, maxQueryRunes) + "</code> нет данных в базе."
}

// clipEscaped HTML-escapes s and keeps the result within limit runes. Cuts
// fall between escaped runes so no entity is split, and end with an ellipsis.
func clipEscaped(s string, limit int) string {
	escaped := html.EscapeString(s)
	if utf8.RuneCountInString(escaped) <= limit {
		return escaped
	}

	var b strings.Builder
	n := 0
	for _, r := range s {
		part := html.EscapeString(string(r))
		size := utf8.RuneCountInString(part)
		if n+size > limit-1 {
			break
		}
		b.WriteString(part)
		n += size
	}
	b.WriteString(ellipsis)
	return b.String()
}
