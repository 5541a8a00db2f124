package line

import (
	"context"
	"countdown/internal/domain/entity"
	"countdown/internal/pkg/logger"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/line/line-bot-sdk-go/v7/linebot"
)

type pushBody struct {
	To       string `json:"to"`
	Messages []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"messages"`
}

func TestDeliverPushesTitleAndBody(t *testing.T) {
	var got pushBody
	var path, auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		auth = r.Header.Get("Authorization")
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &got)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("{}"))
	}))
	defer srv.Close()

	c, err := NewClient("secret", "token", "U123", logger.Nop(), linebot.WithEndpointBase(srv.URL))
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	if err := c.Deliver(context.Background(), entity.Notification{Title: "Birthday", Body: "Your countdown is ready!"}); err != nil {
		t.Fatalf("Deliver() error = %v", err)
	}

	if path != "/v2/bot/message/push" {
		t.Fatalf("path = %q, want push endpoint", path)
	}
	if auth != "Bearer token" {
		t.Fatalf("Authorization = %q, want bearer token", auth)
	}
	if got.To != "U123" {
		t.Fatalf("to = %q, want U123", got.To)
	}
	if len(got.Messages) != 1 || got.Messages[0].Text != "Birthday\nYour countdown is ready!" {
		t.Fatalf("messages = %+v, want one text message with title and body", got.Messages)
	}
}

func TestDeliverReturnsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"message":"monthly limit reached"}`))
	}))
	defer srv.Close()

	c, err := NewClient("secret", "token", "U123", logger.Nop(), linebot.WithEndpointBase(srv.URL))
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	if err := c.Deliver(context.Background(), entity.Notification{Title: "x"}); err == nil {
		t.Fatalf("Deliver() error = nil, want API error")
	}
}

func TestNewClientRequiresCredentials(t *testing.T) {
	if _, err := NewClient("", "token", "U123", logger.Nop()); err == nil {
		t.Fatalf("NewClient() error = nil, want missing credential error")
	}
}
