package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hearthhq/hearth/sdk"
)

func TestNewSessionsClient(t *testing.T) {
	client := NewSessionsClient(
		"http://localhost:3003",
		StaticToken(testToken),
		nil,
	)
	require.IsType(t, &sessionsClient{}, client)
}

func TestSessionsClientCreate(t *testing.T) {
	testAuthResponse := sdk.AuthResponse{
		Token: testToken,
		User: sdk.User{
			ID:    42,
			Email: "jamie@example.com",
		},
	}
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodPost, r.Method)
				require.Equal(t, "/api/v1/auth/login", r.URL.Path)
				require.Empty(t, r.Header.Get("Authorization"))
				credentials := loginRequest{}
				err := json.NewDecoder(r.Body).Decode(&credentials)
				require.NoError(t, err)
				require.Equal(t, "jamie@example.com", credentials.Email)
				require.Equal(t, "letmein12", credentials.Password)
				bodyBytes, err := json.Marshal(testAuthResponse)
				require.NoError(t, err)
				fmt.Fprintln(w, string(bodyBytes))
			},
		),
	)
	defer server.Close()
	client := NewSessionsClient(server.URL, StaticToken(""), nil)
	authResponse, err := client.Create(
		context.Background(),
		"jamie@example.com",
		"letmein12",
	)
	require.NoError(t, err)
	require.Equal(t, testAuthResponse, authResponse)
}

func TestSessionsClientCreateBadCredentials(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				fmt.Fprintln(w, `{"error": "invalid email or password"}`)
			},
		),
	)
	defer server.Close()
	client := NewSessionsClient(server.URL, StaticToken(""), nil)
	_, err := client.Create(
		context.Background(),
		"jamie@example.com",
		"wrong",
	)
	require.Error(t, err)
	require.IsType(t, &ErrAuthentication{}, err)
}

func TestSessionsClientCreateMalformedSuccess(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{
			name: "no token",
			body: `{"user": {"id": 42, "email": "jamie@example.com"}}`,
		},
		{
			name: "no user",
			body: fmt.Sprintf(`{"token": %q}`, testToken),
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			server := httptest.NewServer(
				http.HandlerFunc(
					func(w http.ResponseWriter, r *http.Request) {
						fmt.Fprintln(w, testCase.body)
					},
				),
			)
			defer server.Close()
			client := NewSessionsClient(server.URL, StaticToken(""), nil)
			_, err := client.Create(
				context.Background(),
				"jamie@example.com",
				"letmein12",
			)
			require.Error(t, err)
			require.IsType(t, &ErrMalformedResponse{}, err)
		})
	}
}

func TestSessionsClientCreateFromRegistration(t *testing.T) {
	testAuthResponse := sdk.AuthResponse{
		Token: testToken,
		User: sdk.User{
			ID:    43,
			Email: "sam@example.com",
		},
	}
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodPost, r.Method)
				require.Equal(t, "/api/v1/auth/register", r.URL.Path)
				registration := sdk.RegisterRequest{}
				err := json.NewDecoder(r.Body).Decode(&registration)
				require.NoError(t, err)
				require.Equal(t, "sam@example.com", registration.Email)
				require.Equal(
					t,
					registration.Password,
					registration.PasswordConfirmation,
				)
				bodyBytes, err := json.Marshal(testAuthResponse)
				require.NoError(t, err)
				w.WriteHeader(http.StatusCreated)
				fmt.Fprintln(w, string(bodyBytes))
			},
		),
	)
	defer server.Close()
	client := NewSessionsClient(server.URL, StaticToken(""), nil)
	authResponse, err := client.CreateFromRegistration(
		context.Background(),
		sdk.RegisterRequest{
			Email:                "sam@example.com",
			Password:             "letmein12",
			PasswordConfirmation: "letmein12",
			FirstName:            "Sam",
			LastName:             "Rivera",
			Location:             "Maplewood",
		},
	)
	require.NoError(t, err)
	require.Equal(t, testAuthResponse, authResponse)
}

func TestSessionsClientDelete(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodPost, r.Method)
				require.Equal(t, "/api/v1/auth/logout", r.URL.Path)
				fmt.Fprintln(w, `{"message": "logged out"}`)
			},
		),
	)
	defer server.Close()
	client := NewSessionsClient(server.URL, StaticToken(testToken), nil)
	err := client.Delete(context.Background())
	require.NoError(t, err)
}
