package embedding

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeminiProviderGenerate(t *testing.T) {
	t.Run("sends task type and returns embedding values", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/models/text-embedding-004:embedContent", r.URL.Path)
			assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

			var req map[string]interface{}
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "models/text-embedding-004", req["model"])
			assert.Equal(t, TaskRetrievalQuery, req["taskType"])

			json.NewEncoder(w).Encode(map[string]interface{}{
				"embedding": map[string]interface{}{
					"values": []float32{0.1, 0.2, 0.3},
				},
			})
		}))
		defer srv.Close()

		provider := &GeminiProvider{ApiKey: "test-key", BaseURL: srv.URL, Client: srv.Client()}

		vec, err := provider.Generate("how was my week", TaskRetrievalQuery)
		assert.NoError(t, err)
		assert.Equal(t, []float32{0.1, 0.2, 0.3}, vec)
	})

	t.Run("non-200 status is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":"quota exceeded"}`))
		}))
		defer srv.Close()

		provider := &GeminiProvider{ApiKey: "test-key", BaseURL: srv.URL, Client: srv.Client()}

		_, err := provider.Generate("text", TaskRetrievalDocument)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "429")
	})

	t.Run("empty embedding is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"embedding": map[string]interface{}{"values": []float32{}},
			})
		}))
		defer srv.Close()

		provider := &GeminiProvider{ApiKey: "test-key", BaseURL: srv.URL, Client: srv.Client()}

		_, err := provider.Generate("text", TaskRetrievalQuery)
		assert.Error(t, err)
	})
}
