// Package telegram delivers formatted inquiry notifications to a
// staff chat through the Telegram Bot API.
//
// Delivery is best-effort by design: the client never returns an
// error to its caller. Every failure mode (network error, timeout,
// non-2xx status, API-level rejection) collapses into a
// DeliveryResult the orchestrator logs and moves past.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/himawari-kids/inquiry-api/internal/config"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// DeliveryResult reports the outcome of one notification attempt.
//
// Err carries the failure cause for logging; it is never propagated
// as a request error.
type DeliveryResult struct {
	Delivered bool
	Err       error
}

// Client calls the Telegram Bot API sendMessage endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	botToken   string
	chatID     string
	logger     *zerolog.Logger
}

// NewClient creates a Telegram client from explicit config.
//
// The config is passed by parameter, never read from ambient state,
// so tests can point BaseURL at a local server.
func NewClient(cfg config.TelegramConfig, logger *zerolog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
		baseURL:  cfg.APIBaseURL,
		botToken: cfg.BotToken,
		chatID:   cfg.ChatID,
		logger:   logger,
	}
}

// sendMessageRequest is the Bot API request body.
type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// sendMessageResponse is the subset of the Bot API response we care about.
type sendMessageResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// Notify sends one message to the configured chat.
//
// Success means the API answered 200 with `"ok": true`. Anything
// else (including a timeout from the bounded HTTP client) yields
// Delivered=false with the cause in Err. Notify itself never fails.
func (c *Client) Notify(ctx context.Context, text string) DeliveryResult {
	c.logger.Debug().
		Str("chat_id", c.chatID).
		Int("text_len", len(text)).
		Msg("sending telegram notification")

	body, err := json.Marshal(sendMessageRequest{
		ChatID:    c.chatID,
		Text:      text,
		ParseMode: "Markdown",
	})
	if err != nil {
		return DeliveryResult{Err: errors.Wrap(err, "failed to encode sendMessage request")}
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", c.baseURL, c.botToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return DeliveryResult{Err: errors.Wrap(err, "failed to build sendMessage request")}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return DeliveryResult{Err: errors.Wrap(err, "sendMessage request failed")}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain a little of the body for the log; the exact payload is
		// not part of the contract.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return DeliveryResult{Err: errors.Errorf(
			"sendMessage returned status %d: %s", resp.StatusCode, string(snippet),
		)}
	}

	var apiResp sendMessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return DeliveryResult{Err: errors.Wrap(err, "failed to decode sendMessage response")}
	}

	if !apiResp.OK {
		return DeliveryResult{Err: errors.Errorf("sendMessage rejected: %s", apiResp.Description)}
	}

	return DeliveryResult{Delivered: true}
}
