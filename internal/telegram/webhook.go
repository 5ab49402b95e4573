package telegram

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// WebhookPath is the route the API server serves Telegram updates on.
const WebhookPath = "/api/telegram/webhook"

// WebhookURL joins the public base URL of the deployment with WebhookPath.
// Telegram only delivers to HTTPS endpoints.
func WebhookURL(publicURL string) (string, error) {
	if publicURL == "" {
		return "", fmt.Errorf("PUBLIC_URL is not set")
	}
	u, err := url.Parse(strings.TrimRight(publicURL, "/"))
	if err != nil {
		return "", fmt.Errorf("invalid public url: %w", err)
	}
	if u.Scheme != "https" || u.Host == "" {
		return "", fmt.Errorf("public url must be an absolute https URL, got %q", publicURL)
	}
	return u.String() + WebhookPath, nil
}

// Registrar manages the bot's webhook registration.
type Registrar struct {
	api *tgbotapi.BotAPI
}

// NewRegistrar authenticates token with getMe.
func NewRegistrar(token, endpoint string, httpClient *http.Client) (*Registrar, error) {
	api, err := tgbotapi.NewBotAPIWithClient(token, endpoint, httpClient)
	if err != nil {
		return nil, fmt.Errorf("checking bot token: %w", err)
	}
	return &Registrar{api: api}, nil
}

// BotUsername returns the username reported by getMe.
func (r *Registrar) BotUsername() string {
	return r.api.Self.UserName
}

// Set points Telegram at link.
func (r *Registrar) Set(link string) error {
	wh, err := tgbotapi.NewWebhook(link)
	if err != nil {
		return fmt.Errorf("building webhook config: %w", err)
	}
	if _, err := r.api.Request(wh); err != nil {
		return fmt.Errorf("setting webhook: %w", err)
	}
	return nil
}

// Delete removes the webhook, optionally dropping queued updates.
func (r *Registrar) Delete(dropPending bool) error {
	if _, err := r.api.Request(tgbotapi.DeleteWebhookConfig{DropPendingUpdates: dropPending}); err != nil {
		return fmt.Errorf("deleting webhook: %w", err)
	}
	return nil
}

// Info returns the current webhook state.
func (r *Registrar) Info() (tgbotapi.WebhookInfo, error) {
	info, err := r.api.GetWebhookInfo()
	if err != nil {
		return tgbotapi.WebhookInfo{}, fmt.Errorf("getting webhook info: %w", err)
	}
	return info, nil
}
