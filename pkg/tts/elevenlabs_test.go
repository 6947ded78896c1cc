package tts

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientSynthesize(t *testing.T) {
	t.Run("streams audio bytes for the chosen voice", func(t *testing.T) {
		audio := []byte{0xFF, 0xF3, 0x01, 0x02}

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/text-to-speech/voice-123/stream", r.URL.Path)
			assert.Equal(t, "api-key", r.Header.Get("xi-api-key"))

			var req map[string]interface{}
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "Hello there", req["text"])
			assert.Equal(t, "eleven_multilingual_v2", req["model_id"])

			w.Header().Set("Content-Type", "audio/mpeg")
			w.Write(audio)
		}))
		defer srv.Close()

		client := &Client{ApiKey: "api-key", BaseURL: srv.URL, Client: srv.Client()}

		got, err := client.Synthesize(context.Background(), "Hello there", "voice-123")
		assert.NoError(t, err)
		assert.Equal(t, audio, got)
	})

	t.Run("non-200 status is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail":"invalid api key"}`))
		}))
		defer srv.Close()

		client := &Client{ApiKey: "bad", BaseURL: srv.URL, Client: srv.Client()}

		_, err := client.Synthesize(context.Background(), "Hello", "voice-123")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "401")
	})
}
