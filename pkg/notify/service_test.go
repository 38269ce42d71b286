package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServiceRequiresConfig(t *testing.T) {
	assert.Nil(t, NewService(ServiceConfig{}))
	assert.Nil(t, NewService(ServiceConfig{Token: "xoxb-1"}))
	assert.Nil(t, NewService(ServiceConfig{Channel: "C123"}))
	assert.NotNil(t, NewService(ServiceConfig{Token: "xoxb-1", Channel: "C123"}))
}

func TestNilServiceIsNoOp(t *testing.T) {
	var s *Service
	// Must not panic.
	s.NotifyAttemptPassed(context.Background(), AttemptPassedInput{SessionID: "s1"})
}

func TestNotifyAttemptPassed(t *testing.T) {
	var posted struct {
		Channel string `json:"channel"`
		Text    string `json:"text"`
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/chat.postMessage", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		posted.Channel = r.Form.Get("channel")
		posted.Text = r.Form.Get("text")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"ok": true, "channel": posted.Channel})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	s := NewServiceWithAPIURL("xoxb-test", "C123", server.URL+"/")
	s.NotifyAttemptPassed(context.Background(), AttemptPassedInput{
		SessionID:    "s1",
		LabSlug:      "first-image",
		UserEmail:    "ada@example.com",
		AttemptIndex: 3,
		ImageSizeMB:  142.5,
	})

	assert.Equal(t, "C123", posted.Channel)
	assert.Contains(t, posted.Text, "first-image")
	assert.Contains(t, posted.Text, "ada@example.com")
	assert.Contains(t, posted.Text, "attempt 3")
	assert.Contains(t, posted.Text, "142.5 MB")
}
