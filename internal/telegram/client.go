// Package telegram delivers bot replies through the Telegram Bot API.
package telegram

import (
	"fmt"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Client sends messages on behalf of one bot token.
type Client struct {
	api *tgbotapi.BotAPI
}

// NewClient creates a client for token. endpoint is a format string taking
// the token and the method name, e.g. "https://api.telegram.org/bot%s/%s".
// No request is made until the first send.
func NewClient(token, endpoint string, httpClient *http.Client) *Client {
	api := &tgbotapi.BotAPI{
		Token:  token,
		Client: httpClient,
		Buffer: 100,
	}
	api.SetAPIEndpoint(endpoint)
	return &Client{api: api}
}

// SendHTML sends text to chatID with HTML parse mode.
func (c *Client) SendHTML(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML

	if _, err := c.api.Send(msg); err != nil {
		return fmt.Errorf("sending message to chat %d: %w", chatID, err)
	}
	return nil
}
