package telegram

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/himawari-kids/inquiry-api/internal/config"
	"github.com/rs/zerolog"
)

func testClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	logger := zerolog.Nop()
	return NewClient(config.TelegramConfig{
		BotToken:       "test-token",
		ChatID:         "12345",
		APIBaseURL:     baseURL,
		TimeoutSeconds: 2,
	}, &logger)
}

func TestNotifyDelivered(t *testing.T) {
	var gotPath string
	var gotBody sendMessageRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	client := testClient(t, srv.URL)
	result := client.Notify(context.Background(), "hello from test")

	if !result.Delivered {
		t.Fatalf("Notify() not delivered, err = %v", result.Err)
	}
	if gotPath != "/bottest-token/sendMessage" {
		t.Errorf("request path = %q, want %q", gotPath, "/bottest-token/sendMessage")
	}
	if gotBody.ChatID != "12345" {
		t.Errorf("chat_id = %q, want %q", gotBody.ChatID, "12345")
	}
	if gotBody.Text != "hello from test" {
		t.Errorf("text = %q, want %q", gotBody.Text, "hello from test")
	}
	if gotBody.ParseMode != "Markdown" {
		t.Errorf("parse_mode = %q, want %q", gotBody.ParseMode, "Markdown")
	}
}

func TestNotifyFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "api-level rejection",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"ok":false,"description":"chat not found"}`))
			},
		},
		{
			name: "garbage body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`not json`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			client := testClient(t, srv.URL)
			result := client.Notify(context.Background(), "text")

			if result.Delivered {
				t.Error("Notify() reported delivered on failure")
			}
			if result.Err == nil {
				t.Error("Notify() failure carries no cause")
			}
		})
	}
}

func TestNotifyNetworkError(t *testing.T) {
	// Point at a server that is already closed.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := testClient(t, srv.URL)
	result := client.Notify(context.Background(), "text")

	if result.Delivered {
		t.Error("Notify() reported delivered on network error")
	}
	if result.Err == nil {
		t.Error("Notify() network failure carries no cause")
	}
}
