package push

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientSend(t *testing.T) {
	t.Run("sends notification with heading and url", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/notifications", r.URL.Path)
			assert.Equal(t, "Basic rest-key", r.Header.Get("Authorization"))

			var req map[string]interface{}
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "app-id", req["app_id"])
			assert.Equal(t, []interface{}{"player-1"}, req["include_player_ids"])
			assert.Equal(t, map[string]interface{}{"en": "Time to work on your goal: Run daily"}, req["contents"])
			assert.Equal(t, map[string]interface{}{"en": "🎯 Goal Reminder"}, req["headings"])
			assert.Equal(t, "https://app.example.com/goals", req["url"])

			w.Write([]byte(`{"id":"notif-1"}`))
		}))
		defer srv.Close()

		client := &Client{AppId: "app-id", RestKey: "rest-key", BaseURL: srv.URL, Client: srv.Client()}

		err := client.Send(context.Background(), Notification{
			PlayerIds: []string{"player-1"},
			Heading:   "🎯 Goal Reminder",
			Content:   "Time to work on your goal: Run daily",
			URL:       "https://app.example.com/goals",
		})
		assert.NoError(t, err)
	})

	t.Run("heading is omitted when empty", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var req map[string]interface{}
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			_, hasHeadings := req["headings"]
			assert.False(t, hasHeadings)
			w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		client := &Client{AppId: "app-id", RestKey: "rest-key", BaseURL: srv.URL, Client: srv.Client()}

		err := client.Send(context.Background(), Notification{
			PlayerIds: []string{"player-1"},
			Content:   "hello",
		})
		assert.NoError(t, err)
	})

	t.Run("non-200 status is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"errors":["invalid player id"]}`))
		}))
		defer srv.Close()

		client := &Client{AppId: "app-id", RestKey: "rest-key", BaseURL: srv.URL, Client: srv.Client()}

		err := client.Send(context.Background(), Notification{PlayerIds: []string{"bad"}, Content: "x"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "400")
	})
}
