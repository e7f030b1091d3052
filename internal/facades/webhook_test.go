package facades

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWebhookFacade_Send(t *testing.T) {
	var got webhookPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	facade := NewWebhookFacade(server.URL, time.Second)

	err := facade.Send(context.Background(), "report", "New report: scam")
	assert.NoError(t, err)
	assert.Equal(t, "report", got.Username)
	assert.Equal(t, "New report: scam", got.Content)
}

func TestWebhookFacade_Send_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	facade := NewWebhookFacade(server.URL, time.Second)

	err := facade.Send(context.Background(), "feedback", "hello")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestWebhookFacade_Send_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // point at a dead address

	facade := NewWebhookFacade(server.URL, time.Second)

	err := facade.Send(context.Background(), "report", "hello")
	assert.Error(t, err)
}
