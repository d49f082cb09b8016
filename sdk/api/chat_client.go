package api

import (
	"context"
	"net/http"

	"github.com/hearthhq/hearth/sdk"
)

// ChatClient is the specialized client for the AI parenting assistant.
type ChatClient interface {
	// Query sends a message to the assistant. An empty sessionID starts a new
	// conversation; the server assigns and returns the session id either way.
	Query(
		ctx context.Context,
		message string,
		sessionID string,
	) (sdk.ChatResponse, error)
}

type chatClient struct {
	*BaseClient
}

// NewChatClient returns a specialized client for the AI parenting assistant.
func NewChatClient(
	apiAddress string,
	tokens TokenGetter,
	opts *ClientOptions,
) ChatClient {
	return &chatClient{
		BaseClient: NewBaseClient(apiAddress, tokens, opts),
	}
}

type chatQuery struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"`
}

func (c *chatClient) Query(
	ctx context.Context,
	message string,
	sessionID string,
) (sdk.ChatResponse, error) {
	chatResponse := sdk.ChatResponse{}
	return chatResponse, c.ExecuteRequest(
		ctx,
		OutboundRequest{
			Method:      http.MethodPost,
			Path:        "api/v1/chat/query",
			ReqBodyObj:  chatQuery{Message: message, SessionID: sessionID},
			SuccessCode: http.StatusOK,
			RespObj:     &chatResponse,
		},
	)
}
