package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hearthhq/hearth/sdk"
)

func TestChatClientQuery(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodPost, r.Method)
				require.Equal(t, "/api/v1/chat/query", r.URL.Path)
				query := chatQuery{}
				err := json.NewDecoder(r.Body).Decode(&query)
				require.NoError(t, err)
				require.Equal(t, "How do I handle bedtime battles?", query.Message)
				err = json.NewEncoder(w).Encode(
					sdk.ChatResponse{
						SessionID:   "abc123",
						UserMessage: query.Message,
						AIResponse:  "Consistency is your friend.",
					},
				)
				require.NoError(t, err)
			},
		),
	)
	defer server.Close()
	client := NewChatClient(server.URL, StaticToken(testToken), nil)
	chatResponse, err := client.Query(
		context.Background(),
		"How do I handle bedtime battles?",
		"",
	)
	require.NoError(t, err)
	require.Equal(t, "abc123", chatResponse.SessionID)
}

func TestChatClientQueryContinuesSession(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				query := chatQuery{}
				err := json.NewDecoder(r.Body).Decode(&query)
				require.NoError(t, err)
				require.Equal(t, "abc123", query.SessionID)
				err = json.NewEncoder(w).Encode(
					sdk.ChatResponse{SessionID: query.SessionID},
				)
				require.NoError(t, err)
			},
		),
	)
	defer server.Close()
	client := NewChatClient(server.URL, StaticToken(testToken), nil)
	chatResponse, err := client.Query(
		context.Background(),
		"And what about naps?",
		"abc123",
	)
	require.NoError(t, err)
	require.Equal(t, "abc123", chatResponse.SessionID)
}
