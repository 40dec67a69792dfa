package generator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGeminiClient_Generate(t *testing.T) {
	var receivedPrompt string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Contains(t, r.URL.Path, "models/gemini-1.5-flash-latest:generateContent")
		require.Equal(t, "test-key", r.URL.Query().Get("key"))

		var req geminiRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		receivedPrompt = req.Contents[0].Parts[0].Text

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"parts": []map[string]string{{"text": "generated "}, {"text": "text"}},
				}},
			},
		})
	}))
	defer ts.Close()

	client := NewGeminiClient("test-key", "gemini-1.5-flash-latest")
	client.baseURL = ts.URL

	text, err := client.Generate(context.Background(), "write something")
	require.NoError(t, err)
	require.Equal(t, "generated text", text)
	require.Equal(t, "write something", receivedPrompt)
}

func TestGeminiClient_UpstreamError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{"message": "API key not valid"},
		})
	}))
	defer ts.Close()

	client := NewGeminiClient("bad-key", "gemini-1.5-flash-latest")
	client.baseURL = ts.URL

	_, err := client.Generate(context.Background(), "prompt")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrUpstream)
	require.Contains(t, err.Error(), "API key not valid")
}

func TestGeminiClient_EmptyCandidates(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"candidates": []interface{}{}})
	}))
	defer ts.Close()

	client := NewGeminiClient("key", "model")
	client.baseURL = ts.URL

	_, err := client.Generate(context.Background(), "prompt")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrUpstream)
}

func TestGeminiClient_ContextCancelled(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer ts.Close()

	client := NewGeminiClient("key", "model")
	client.baseURL = ts.URL

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Generate(ctx, "prompt")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrUpstream)
}

func TestBuildPrompts(t *testing.T) {
	articlePrompt := BuildArticlePrompt("topic", "Students", "trend", "tone")
	require.Contains(t, articlePrompt, "'topic'")
	require.Contains(t, articlePrompt, "'Students'")
	require.Contains(t, articlePrompt, "'trend'")
	require.Contains(t, articlePrompt, "'tone'")

	scriptPrompt := BuildScriptPrompt("the article body")
	require.Contains(t, scriptPrompt, "the article body")
	require.Contains(t, scriptPrompt, "10-minute")
}
