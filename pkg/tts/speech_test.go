package tts

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/r3k4ce/discord-summarizer/pkg/config"
)

func TestClient_Synthesize(t *testing.T) {
	var gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "audio/mpeg")
		_, _ = w.Write([]byte("fake-mp3-bytes"))
	}))
	defer ts.Close()

	client := NewClient(
		config.LLMConfig{Endpoint: ts.URL, APIKey: "test-key"},
		config.TTSConfig{Model: "tts-1", Voice: "alloy", Timeout: 5 * time.Second},
	)

	audio, err := client.Synthesize(context.Background(), "hello world")
	require.NoError(t, err)
	assert.Equal(t, []byte("fake-mp3-bytes"), audio)
	assert.Equal(t, "/audio/speech", gotPath)
}

func TestClient_Synthesize_EmptyText(t *testing.T) {
	client := NewClient(config.LLMConfig{APIKey: "test-key"}, config.TTSConfig{Timeout: time.Second})

	_, err := client.Synthesize(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to synthesize")
}

func TestClient_Synthesize_ServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	client := NewClient(
		config.LLMConfig{Endpoint: ts.URL, APIKey: "test-key"},
		config.TTSConfig{Model: "tts-1", Voice: "alloy", Timeout: 5 * time.Second},
	)

	_, err := client.Synthesize(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "speech request failed")
}

func TestClient_Synthesize_EmptyAudio(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "audio/mpeg")
	}))
	defer ts.Close()

	client := NewClient(
		config.LLMConfig{Endpoint: ts.URL, APIKey: "test-key"},
		config.TTSConfig{Model: "tts-1", Voice: "alloy", Timeout: 5 * time.Second},
	)

	_, err := client.Synthesize(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty audio response")
}

func TestClient_Synthesize_Timeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
			_, _ = w.Write([]byte("too late"))
		}
	}))
	defer ts.Close()

	client := NewClient(
		config.LLMConfig{Endpoint: ts.URL, APIKey: "test-key"},
		config.TTSConfig{Model: "tts-1", Voice: "alloy", Timeout: 20 * time.Millisecond},
	)

	_, err := client.Synthesize(context.Background(), "hello")
	require.Error(t, err)
}
