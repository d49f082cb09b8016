package api

import (
	"context"
	"net/http"

	"github.com/hearthhq/hearth/sdk"
)

// SessionsClient is the specialized client for managing Hearth API sessions:
// logging in, registering, and logging out.
type SessionsClient interface {
	// Create establishes a new session using email/password credentials.
	Create(ctx context.Context, email, password string) (sdk.AuthResponse, error)
	// CreateFromRegistration creates a new account and establishes a session
	// for it in one step.
	CreateFromRegistration(
		ctx context.Context,
		req sdk.RegisterRequest,
	) (sdk.AuthResponse, error)
	// Delete ends the current session server-side. The response body is
	// ignored; callers treat this as best-effort.
	Delete(ctx context.Context) error
}

type sessionsClient struct {
	*BaseClient
}

// NewSessionsClient returns a specialized client for managing Hearth API
// sessions.
func NewSessionsClient(
	apiAddress string,
	tokens TokenGetter,
	opts *ClientOptions,
) SessionsClient {
	return &sessionsClient{
		BaseClient: NewBaseClient(apiAddress, tokens, opts),
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *sessionsClient) Create(
	ctx context.Context,
	email string,
	password string,
) (sdk.AuthResponse, error) {
	authResponse := sdk.AuthResponse{}
	if err := s.ExecuteRequest(
		ctx,
		OutboundRequest{
			Method:      http.MethodPost,
			Path:        "api/v1/auth/login",
			ReqBodyObj:  loginRequest{Email: email, Password: password},
			SuccessCode: http.StatusOK,
			RespObj:     &authResponse,
		},
	); err != nil {
		return authResponse, err
	}
	return authResponse, validateAuthResponse(authResponse)
}

func (s *sessionsClient) CreateFromRegistration(
	ctx context.Context,
	req sdk.RegisterRequest,
) (sdk.AuthResponse, error) {
	authResponse := sdk.AuthResponse{}
	if err := s.ExecuteRequest(
		ctx,
		OutboundRequest{
			Method:      http.MethodPost,
			Path:        "api/v1/auth/register",
			ReqBodyObj:  req,
			SuccessCode: http.StatusCreated,
			RespObj:     &authResponse,
		},
	); err != nil {
		return authResponse, err
	}
	return authResponse, validateAuthResponse(authResponse)
}

func (s *sessionsClient) Delete(ctx context.Context) error {
	resp, err := s.SubmitRequest(
		ctx,
		OutboundRequest{
			Method:      http.MethodPost,
			Path:        "api/v1/auth/logout",
			SuccessCode: http.StatusOK,
		},
	)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// validateAuthResponse narrows loosely-typed success payloads at the client
// boundary. A 200 that is missing the token or a usable user profile is an
// error; it must not reach the session machinery looking like a success.
func validateAuthResponse(authResponse sdk.AuthResponse) error {
	if authResponse.Token == "" {
		return &ErrMalformedResponse{Reason: "response contained no token"}
	}
	if authResponse.User.ID == 0 || authResponse.User.Email == "" {
		return &ErrMalformedResponse{
			Reason: "response contained no usable user profile",
		}
	}
	return nil
}
